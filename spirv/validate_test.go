// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsMinimalModule(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	require.NoError(t, Validate(words))
}

func TestValidateRejectsBadMagic(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	words[0] = 0x12345678
	require.Error(t, Validate(words))
}

func TestValidateRejectsZeroBound(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	words[3] = 0
	require.Error(t, Validate(words))
}

func TestValidateRejectsMissingMemoryModel(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
%void = OpTypeVoid
`)
	require.NoError(t, err)
	require.Error(t, Validate(words))
}

func TestValidateRejectsLayoutViolation(t *testing.T) {
	// A capability after the types section is out of order.
	words, err := Assemble(`
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
%void = OpTypeVoid
OpCapability Addresses
`)
	require.NoError(t, err)
	require.Error(t, Validate(words))
}

func TestValidateRejectsDuplicateResult(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%1 = OpTypeVoid
%1 = OpTypeBool
`)
	require.NoError(t, err)
	require.Error(t, Validate(words))
}

func TestValidateRejectsBranchToNowhere(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpBranch %void
OpFunctionEnd
`)
	require.NoError(t, err)
	require.Error(t, Validate(words))
}

func TestValidateRejectsUnterminatedBlock(t *testing.T) {
	words, err := Assemble(`
OpCapability Kernel
OpCapability Addresses
OpMemoryModel Physical32 OpenCL
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpFunctionEnd
`)
	require.NoError(t, err)
	require.Error(t, Validate(words))
}

func TestValidateDiagnosticIncludesPosition(t *testing.T) {
	words, err := Assemble(minimalModule)
	require.NoError(t, err)
	// Zero the word count of the first instruction, right after the
	// five-word header.
	words[5] &= 0xFFFF

	err = Validate(words)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	require.Equal(t, 5, diag.Index)
}
