// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalModule = `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical64 OpenCL
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpReturn
OpFunctionEnd
`

func TestAssembleHeader(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(words), 5)
	require.Equal(t, uint32(MagicNumber), words[0])
	require.Equal(t, Version1_0.Word(), words[1])
	require.NotZero(t, words[3], "id bound")
}

func TestAssembleParseRoundTrip(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)

	m, err := Parse(words)
	require.NoError(t, err)

	require.Len(t, m.Capabilities, 2)
	require.NotNil(t, m.MemoryModel)
	require.Equal(t, uint32(AddressingPhysical64), m.MemoryModel.Word(0))
	require.Equal(t, uint32(MemoryModelOpenCL), m.MemoryModel.Word(1))
	require.Len(t, m.Functions, 1)
	require.Len(t, m.Functions[0].Blocks, 1)
	require.Equal(t, OpReturn, m.Functions[0].Blocks[0].Terminator.Opcode)
}

func TestAssembleStrings(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "my kernel"
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpReturn
OpFunctionEnd
`)
	require.NoError(t, err)

	m, err := Parse(words)
	require.NoError(t, err)
	require.Len(t, m.EntryPoints, 1)
	name, _ := m.EntryPoints[0].DecodeString(2)
	require.Equal(t, "my kernel", name)
}

func TestAssembleNumericIDsKept(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%1 = OpTypeVoid
%fnty = OpTypeFunction %1
%k = OpFunction %1 None %fnty
%entry = OpLabel
OpReturn
OpFunctionEnd
`)
	require.NoError(t, err)

	m, err := Parse(words)
	require.NoError(t, err)
	def := m.Def(ID(1))
	require.NotNil(t, def)
	require.Equal(t, OpTypeVoid, def.Opcode)
}

func TestAssembleConstants(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpCapability Int64
OpCapability Float64
OpMemoryModel Physical64 OpenCL
%uint = OpTypeInt 32 0
%ulong = OpTypeInt 64 0
%double = OpTypeFloat 64
%a = OpConstant %uint 42
%b = OpConstant %ulong 4294967298
%c = OpConstant %double 1.5
`)
	require.NoError(t, err)

	m, err := Parse(words)
	require.NoError(t, err)

	var small, big uint64
	var found int
	for i := range m.TypesValues {
		inst := &m.TypesValues[i]
		if inst.Opcode != OpConstant {
			continue
		}
		v, ok := m.ConstantValue(inst.Result)
		require.True(t, ok)
		switch inst.NumOperands() {
		case 1:
			small = v
			found++
		case 2:
			if tydef := m.Def(inst.Type); tydef.Opcode == OpTypeInt {
				big = v
				found++
			}
		}
	}
	require.Equal(t, 2, found)
	require.Equal(t, uint64(42), small)
	require.Equal(t, uint64(4294967298), big)
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown opcode", "OpBogus %1"},
		{"missing result", "OpTypeVoid"},
		{"unknown capability", "OpCapability Sorcery"},
		{"unterminated string", `OpName %1 "oops`},
		{"result on resultless op", "%x = OpReturn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.src)
			require.Error(t, err)
		})
	}
}

func TestAssembleComments(t *testing.T) {
	words, err := Assemble(`
; a full-line comment
OpCapability Kernel ; trailing comment
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
`)
	require.NoError(t, err)
	m, err := Parse(words)
	require.NoError(t, err)
	require.Len(t, m.Capabilities, 2)
}
