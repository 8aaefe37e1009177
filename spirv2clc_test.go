// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv2clc

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/spirv2clc/clc"
	"github.com/gogpu/spirv2clc/spirv"
)

const addOneAssembly = `
OpCapability Addresses
OpCapability Kernel
OpCapability Int64
OpMemoryModel Physical64 OpenCL
OpEntryPoint Kernel %k "k" %gid
OpName %p "p"
OpDecorate %gid BuiltIn GlobalInvocationId
%void = OpTypeVoid
%ulong = OpTypeInt 64 0
%uint = OpTypeInt 32 0
%v3ulong = OpTypeVector %ulong 3
%ptr_in = OpTypePointer Input %v3ulong
%gid = OpVariable %ptr_in Input
%ptr_g = OpTypePointer CrossWorkgroup %uint
%fnty = OpTypeFunction %void %ptr_g
%one = OpConstant %uint 1
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
%gv = OpLoad %v3ulong %gid
%g0 = OpCompositeExtract %ulong %gv 0
%addr = OpInBoundsPtrAccessChain %ptr_g %p %g0
%val = OpLoad %uint %addr
%inc = OpIAdd %uint %val %one
OpStore %addr %inc
OpReturn
OpFunctionEnd
`

func TestTranslateAssembly(t *testing.T) {
	source, err := TranslateAssembly(addOneAssembly)
	if err != nil {
		t.Fatalf("TranslateAssembly: %v", err)
	}
	for _, want := range []string{"kernel", "get_global_id(0)", "uint global* p"} {
		if !strings.Contains(source, want) {
			t.Errorf("source does not contain %q:\n%s", want, source)
		}
	}
}

func TestTranslateBinary(t *testing.T) {
	words, err := spirv.Assemble(addOneAssembly)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	source, err := Translate(words)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.Contains(source, "kernel") {
		t.Errorf("source does not contain a kernel:\n%s", source)
	}
}

func TestValidatorGate(t *testing.T) {
	// A rejected byte sequence produces a failure and no source.
	garbage := []uint32{0xDEADBEEF, 1, 2, 3, 4, 5}
	source, err := Translate(garbage)
	if err == nil {
		t.Fatal("expected a validation failure")
	}
	if source != "" {
		t.Errorf("failure delivered partial source: %q", source)
	}
	var terr *clc.Error
	if !errors.As(err, &terr) || terr.Kind != clc.ErrInvalidModule {
		t.Errorf("error = %v, want InvalidModule", err)
	}
}

func TestTranslatorReuse(t *testing.T) {
	tr := NewTranslator(clc.OpenCL12)
	first, err := tr.TranslateAssembly(addOneAssembly)
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.TranslateAssembly(addOneAssembly)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("reused translator produced different output")
	}
}

func TestILVersion(t *testing.T) {
	if got := NewTranslator(clc.OpenCL12).ILVersion(); got != "SPIR-V_1.0" {
		t.Errorf("ILVersion() = %q", got)
	}
	if got := NewTranslator(clc.OpenCL22).ILVersion(); got != "SPIR-V_1.2" {
		t.Errorf("ILVersion() = %q", got)
	}
}

// rejectAll is a validator that fails every module.
type rejectAll struct{}

func (rejectAll) Validate([]uint32) error {
	return errors.New("rejected")
}

func TestCustomValidator(t *testing.T) {
	tr := NewTranslator(clc.OpenCL12)
	tr.SetValidator(rejectAll{})
	if _, err := tr.TranslateAssembly(addOneAssembly); err == nil {
		t.Fatal("custom validator was not consulted")
	}
}
