// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBytesLittleEndian(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)

	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}

	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, words, got)
}

func TestDecodeBytesByteSwapped(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)

	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.BigEndian.PutUint32(data[i*4:], w)
	}

	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, uint32(MagicNumber), got[0])
	require.Equal(t, words, got)
}

func TestDecodeBytesOddLength(t *testing.T) {
	_, err := DecodeBytes(make([]byte, 7))
	require.Error(t, err)
}

func TestParseRejectsBadMagic(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	words[0] = 0xDEADBEEF
	_, err = Parse(words)
	require.Error(t, err)
}

func TestParseRejectsTruncatedInstruction(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	// Claim a longer instruction than the stream holds.
	words[5] = uint32(1000)<<16 | words[5]&0xFFFF
	_, err = Parse(words)
	require.Error(t, err)
}

func TestInstructionDecodeString(t *testing.T) {
	inst := Instruction{Operands: encodeString("OpenCL.std")}
	s, next := inst.DecodeString(0)
	require.Equal(t, "OpenCL.std", s)
	require.Equal(t, len(inst.Operands), next)
}

func TestModuleDefUse(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%uint = OpTypeInt 32 0
%c = OpConstant %uint 7
`)
	require.NoError(t, err)
	m, err := Parse(words)
	require.NoError(t, err)

	var cst *Instruction
	for i := range m.TypesValues {
		if m.TypesValues[i].Opcode == OpConstant {
			cst = &m.TypesValues[i]
		}
	}
	require.NotNil(t, cst)
	require.Equal(t, cst.Type, m.TypeOf(cst.Result))
	require.Equal(t, OpTypeInt, m.Def(cst.Type).Opcode)
}

func TestSignedConstantValue(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%uint = OpTypeInt 32 0
%neg = OpConstant %uint 4294967290
`)
	require.NoError(t, err)
	m, err := Parse(words)
	require.NoError(t, err)

	for i := range m.TypesValues {
		inst := &m.TypesValues[i]
		if inst.Opcode != OpConstant {
			continue
		}
		v, ok := m.SignedConstantValue(inst.Result)
		require.True(t, ok)
		require.Equal(t, int64(-6), v)
	}
}
