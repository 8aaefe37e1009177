// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/spirv2clc/spirv"
)

// compileAsm assembles, validates and translates one module.
func compileAsm(t *testing.T, src string) string {
	t.Helper()
	words, err := spirv.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if err := spirv.Validate(words); err != nil {
		t.Fatalf("validate: %v", err)
	}
	module, err := spirv.Parse(words)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Compile(module, DefaultOptions())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return out
}

// compileAsmErr expects translation to fail and returns the error.
func compileAsmErr(t *testing.T, src string) error {
	t.Helper()
	words, err := spirv.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	module, err := spirv.Parse(words)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Compile(module, DefaultOptions())
	if err == nil {
		t.Fatal("expected a translation error")
	}
	return err
}

func wantContains(t *testing.T, out string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q\noutput:\n%s", s, out)
		}
	}
}

const addOneKernel = `
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

func TestAddOneKernel(t *testing.T) {
	out := compileAsm(t, addOneKernel)
	wantContains(t, out,
		"void kernel k(uint global* p)",
		"get_global_id(0)",
		"((uint)1)",
		"return;",
	)
	if strings.Contains(out, "get_work_dim") {
		t.Errorf("spurious built-in call in output:\n%s", out)
	}
}

func TestDeterministicOutput(t *testing.T) {
	first := compileAsm(t, addOneKernel)
	for i := 0; i < 10; i++ {
		if next := compileAsm(t, addOneKernel); next != first {
			t.Fatalf("translation is not byte-stable:\n--- first\n%s\n--- next\n%s", first, next)
		}
	}
}

func TestSignedDivide(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "div"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%ptr_g = OpTypePointer CrossWorkgroup %uint
%fnty = OpTypeFunction %void %ptr_g %ptr_g
%k = OpFunction %void None %fnty
%a = OpFunctionParameter %ptr_g
%b = OpFunctionParameter %ptr_g
%entry = OpLabel
%av = OpLoad %uint %a
%bv = OpLoad %uint %b
%q = OpSDiv %uint %av %bv
OpStore %a %q
OpReturn
OpFunctionEnd
`)
	// Truncating division happens on the signed reinterpretations and
	// the quotient is reinterpreted back.
	wantContains(t, out, "as_uint(as_int(", ") / as_int(")
}

func TestBarrierReduction(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpCapability Int64
OpMemoryModel Physical64 OpenCL
OpEntryPoint Kernel %k "sum" %lid
OpExecutionMode %k LocalSize 64 1 1
OpDecorate %lid BuiltIn LocalInvocationId
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%ulong = OpTypeInt 64 0
%v3ulong = OpTypeVector %ulong 3
%ptr_in = OpTypePointer Input %v3ulong
%lid = OpVariable %ptr_in Input
%n64 = OpConstant %uint 64
%arr = OpTypeArray %uint %n64
%ptr_l_arr = OpTypePointer Workgroup %arr
%scratch = OpVariable %ptr_l_arr Workgroup
%ptr_l = OpTypePointer Workgroup %uint
%ptr_g = OpTypePointer CrossWorkgroup %uint
%wg = OpConstant %uint 2
%sem = OpConstant %uint 272
%zero = OpConstant %ulong 0
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
%lv = OpLoad %v3ulong %lid
%l0 = OpCompositeExtract %ulong %lv 0
%elem = OpInBoundsPtrAccessChain %ptr_l %scratch %zero %l0
%pv = OpLoad %uint %p
OpStore %elem %pv
OpControlBarrier %wg %wg %sem
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"barrier(CLK_LOCAL_MEM_FENCE)",
		"__attribute((reqd_work_group_size(64,1,1)))",
		"local uint",
	)
	if strings.Contains(out, "CLK_GLOBAL_MEM_FENCE") {
		t.Errorf("unexpected global fence:\n%s", out)
	}

	// The workgroup array is declared inside the kernel, not at file
	// scope, and exactly once.
	body := out[strings.Index(out, "{"):]
	if n := strings.Count(body, "local uint"); n != 1 {
		t.Errorf("workgroup declaration appears %d times in the kernel body", n)
	}
	head := out[:strings.Index(out, "{")]
	if strings.Contains(head, "local uint") {
		t.Errorf("workgroup declaration leaked to file scope:\n%s", out)
	}
}

func TestSaturatedConversion(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpCapability Int8
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "conv"
OpDecorate %r SaturatedConversion
%void = OpTypeVoid
%uchar = OpTypeInt 8 0
%float = OpTypeFloat 32
%ptr_uc = OpTypePointer CrossWorkgroup %uchar
%ptr_f = OpTypePointer CrossWorkgroup %float
%fnty = OpTypeFunction %void %ptr_uc %ptr_f
%k = OpFunction %void None %fnty
%out = OpFunctionParameter %ptr_uc
%in = OpFunctionParameter %ptr_f
%entry = OpLabel
%x = OpLoad %float %in
%r = OpConvertFToU %uchar %x
OpStore %out %r
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "isnan(", "? 0 :", "convert_uchar_sat_rtz(")
}

func TestRoundingModeDecoration(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "conv"
OpDecorate %r FPRoundingMode RTP
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%float = OpTypeFloat 32
%ptr_u = OpTypePointer CrossWorkgroup %uint
%ptr_f = OpTypePointer CrossWorkgroup %float
%fnty = OpTypeFunction %void %ptr_u %ptr_f
%k = OpFunction %void None %fnty
%out = OpFunctionParameter %ptr_u
%in = OpFunctionParameter %ptr_f
%entry = OpLabel
%x = OpLoad %float %in
%r = OpConvertFToU %uint %x
OpStore %out %r
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "convert_uint_rtp(")
}

func TestImageRead(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpCapability ImageBasic
OpCapability LiteralSampler
OpMemoryModel Physical64 OpenCL
OpEntryPoint Kernel %k "rd"
%void = OpTypeVoid
%float = OpTypeFloat 32
%v4f = OpTypeVector %float 4
%int = OpTypeInt 32 0
%v2i = OpTypeVector %int 2
%img = OpTypeImage %void 2D 0 0 0 0 Unknown ReadOnly
%smpty = OpTypeSampler
%sity = OpTypeSampledImage %img
%smp = OpConstantSampler %smpty Clamp 0 Nearest
%zero = OpConstant %int 0
%coord = OpConstantComposite %v2i %zero %zero
%ptr_g = OpTypePointer CrossWorkgroup %v4f
%fnty = OpTypeFunction %void %img %ptr_g
%k = OpFunction %void None %fnty
%i = OpFunctionParameter %img
%out = OpFunctionParameter %ptr_g
%entry = OpLabel
%si = OpSampledImage %sity %i %smp
%texel = OpImageSampleExplicitLod %v4f %si %coord Lod %zero
OpStore %out %texel
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"constant sampler_t",
		"CLK_ADDRESS_CLAMP | CLK_NORMALIZED_COORDS_FALSE | CLK_FILTER_NEAREST",
		"read_only image2d_t",
		"read_imagef(",
		"as_int2(",
	)
}

func TestReservedNameCollision(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "k"
OpName %p "restrict"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%ptr_g = OpTypePointer CrossWorkgroup %uint
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "restrict_MADE_VALID_CLC_IDENT")
	if strings.Contains(out, "* restrict)") {
		t.Errorf("reserved word leaked as an identifier:\n%s", out)
	}
}

func TestPhiLowering(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "loop"
OpName %i "i"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%bool = OpTypeBool
%zero = OpConstant %uint 0
%one = OpConstant %uint 1
%ten = OpConstant %uint 10
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpBranch %loop
%loop = OpLabel
%i = OpPhi %uint %zero %entry %inext %loop
%inext = OpIAdd %uint %i %one
%cmp = OpULessThan %bool %inext %ten
OpLoopMerge %exit %loop None
OpBranchConditional %cmp %loop %exit
%exit = OpLabel
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"  uint i;",          // declared once at function entry
		"i = ((uint)0);",     // entry edge assignment
		"goto",               // flattened control flow
		"int ",               // boolean shadow type for the compare
	)
	if strings.Contains(out, "bool v") {
		t.Errorf("compare produced a hardware bool:\n%s", out)
	}

	// Each predecessor edge assigns the phi before its terminator.
	if got := strings.Count(out, "i = "); got < 2 {
		t.Errorf("expected phi assignments on both edges, found %d:\n%s", got, out)
	}
}

func TestStaticAndLinkageQualifiers(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpCapability Linkage
OpMemoryModel Physical32 OpenCL
OpDecorate %helper LinkageAttributes "helper" Export
OpDecorate %ext LinkageAttributes "ext" Import
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%helper = OpFunction %void None %fnty
%hentry = OpLabel
OpReturn
OpFunctionEnd
%ext = OpFunction %void None %fnty
OpFunctionEnd
%priv = OpFunction %void Inline %fnty
%pentry = OpLabel
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"void helper()",
		"extern void ext();",
		"static inline void",
	)
	if strings.Contains(out, "static void helper") {
		t.Errorf("exported function must not be static:\n%s", out)
	}
}

func TestContractionOffPragmas(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "fma_off"
OpExecutionMode %k ContractionOff
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpReturn
OpFunctionEnd
`)
	off := strings.Index(out, "#pragma OPENCL FP_CONTRACT OFF")
	on := strings.Index(out, "#pragma OPENCL FP_CONTRACT ON")
	if off < 0 || on < 0 || on < off {
		t.Errorf("contraction pragmas missing or out of order:\n%s", out)
	}
}

func TestFloat16PragmaAndLiterals(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpCapability Float16
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "h"
%void = OpTypeVoid
%half = OpTypeFloat 16
%c = OpConstant %half 1.5
%ptr_g = OpTypePointer CrossWorkgroup %half
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
OpStore %p %c
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"#pragma OPENCL EXTENSION cl_khr_fp16 : enable",
		"1.50000000000h",
	)
}

func TestStructTypeEmission(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "s"
OpDecorate %pair CPacked
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%float = OpTypeFloat 32
%pair = OpTypeStruct %uint %float
%ptr_g = OpTypePointer CrossWorkgroup %pair
%zero = OpConstant %uint 0
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
%m0 = OpInBoundsPtrAccessChain %ptr_g %p %zero
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		"  uint m0;",
		"  float m1;",
		"} __attribute__((packed));",
		"struct ",
	)
}

func TestVectorShuffleAndExtInst(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
%std = OpExtInstImport "OpenCL.std"
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "v"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%float = OpTypeFloat 32
%v2f = OpTypeVector %float 2
%v4f = OpTypeVector %float 4
%ptr_g = OpTypePointer CrossWorkgroup %v4f
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
%v = OpLoad %v4f %p
%sh = OpVectorShuffle %v4f %v %v 3 2 4294967295 0
%sq = OpExtInst %v4f %std sqrt %sh
%mx = OpExtInst %v4f %std fmax %sq %v
OpStore %p %mx
OpReturn
OpFunctionEnd
`)
	wantContains(t, out,
		".s3, ", ".s2, ", ", 0, ",
		"sqrt(",
		"fmax(",
	)
}

func TestExtInstShuffle(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
%std = OpExtInstImport "OpenCL.std"
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "sh"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%float = OpTypeFloat 32
%v4f = OpTypeVector %float 4
%v4u = OpTypeVector %uint 4
%ptr_f = OpTypePointer CrossWorkgroup %v4f
%ptr_u = OpTypePointer CrossWorkgroup %v4u
%fnty = OpTypeFunction %void %ptr_f %ptr_u
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_f
%m = OpFunctionParameter %ptr_u
%entry = OpLabel
%v = OpLoad %v4f %p
%mask = OpLoad %v4u %m
%sh = OpExtInst %v4f %std shuffle %v %mask
%sh2 = OpExtInst %v4f %std shuffle2 %sh %v %mask
OpStore %p %sh2
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "shuffle(", "shuffle2(")
}

func TestSignedExtInstBridging(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
%std = OpExtInstImport "OpenCL.std"
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "m"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%ptr_g = OpTypePointer CrossWorkgroup %uint
%fnty = OpTypeFunction %void %ptr_g %ptr_g
%k = OpFunction %void None %fnty
%a = OpFunctionParameter %ptr_g
%b = OpFunctionParameter %ptr_g
%entry = OpLabel
%av = OpLoad %uint %a
%bv = OpLoad %uint %b
%m = OpExtInst %uint %std s_max %av %bv
OpStore %a %m
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "as_uint(max(as_int(", "), as_int(")
}

func TestAtomicLowering(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "a"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%one = OpConstant %uint 1
%dev = OpConstant %uint 1
%sem = OpConstant %uint 0
%ptr_g = OpTypePointer CrossWorkgroup %uint
%fnty = OpTypeFunction %void %ptr_g
%k = OpFunction %void None %fnty
%p = OpFunctionParameter %ptr_g
%entry = OpLabel
%old = OpAtomicIAdd %uint %p %dev %sem %one
%dec = OpAtomicIDecrement %uint %p %dev %sem
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "atomic_add(", "atomic_dec(")
}

func TestUniformConstantGlobal(t *testing.T) {
	out := compileAsm(t, `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "g"
OpName %lut "lut"
%void = OpTypeVoid
%uint = OpTypeInt 32 0
%seven = OpConstant %uint 7
%ptr_c = OpTypePointer UniformConstant %uint
%lut = OpVariable %ptr_c UniformConstant %seven
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
%v = OpLoad %uint %lut
OpReturn
OpFunctionEnd
`)
	wantContains(t, out, "constant uint lut = ((uint)7);")
}

func TestUnsupportedFeatures(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		src  string
	}{
		{
			"capability", ErrUnsupportedCapability, `
OpCapability Shader
OpMemoryModel Physical32 OpenCL
`,
		},
		{
			"memory model", ErrUnsupportedMemoryModel, `
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 GLSL450
`,
		},
		{
			"extension", ErrUnsupportedExtension, `
OpCapability Kernel
OpCapability Addresses
OpExtension "SPV_KHR_storage_buffer_storage_class"
OpMemoryModel Physical32 OpenCL
`,
		},
		{
			"global storage", ErrUnsupportedGlobalStorage, `
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%uint = OpTypeInt 32 0
%ptr_fn = OpTypePointer Function %uint
%g = OpVariable %ptr_fn Function
`,
		},
		{
			"pointer storage", ErrUnsupportedPointerStorage, `
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%uint = OpTypeInt 32 0
%ptr_p = OpTypePointer Private %uint
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := compileAsmErr(t, tt.src)
			var terr *Error
			if !errors.As(err, &terr) {
				t.Fatalf("error %v is not a *clc.Error", err)
			}
			if terr.Kind != tt.kind {
				t.Errorf("error kind = %s, want %s", terr.Kind, tt.kind)
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	words, err := spirv.Assemble(addOneKernel)
	if err != nil {
		b.Fatal(err)
	}
	module, err := spirv.Parse(words)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(module, DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
