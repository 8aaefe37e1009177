package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}

func TestRootCmdRejectsUnknownTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.spv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--target", "9.9", path})
	require.Error(t, cmd.Execute())
}

func TestRootCmdTranslatesAssembly(t *testing.T) {
	src := `
OpCapability Addresses
OpCapability Kernel
OpMemoryModel Physical32 OpenCL
OpEntryPoint Kernel %k "noop"
%void = OpTypeVoid
%fnty = OpTypeFunction %void
%k = OpFunction %void None %fnty
%entry = OpLabel
OpReturn
OpFunctionEnd
`
	path := filepath.Join(t.TempDir(), "noop.spvasm")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--asm", path})
	require.NoError(t, cmd.Execute())
}

func TestRootCmdRejectsTruncatedBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.spv")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{path})
	require.Error(t, cmd.Execute())
}
