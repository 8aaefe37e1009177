// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"testing"
)

func TestTargetEnv_String(t *testing.T) {
	tests := []struct {
		env  TargetEnv
		want string
	}{
		{OpenCL12, "OpenCL 1.2"},
		{OpenCL20, "OpenCL 2.0"},
		{OpenCL21, "OpenCL 2.1"},
		{OpenCL22, "OpenCL 2.2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.env.String(); got != tt.want {
				t.Errorf("TargetEnv.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTargetEnv_ILVersion(t *testing.T) {
	tests := []struct {
		env  TargetEnv
		want string
	}{
		{OpenCL12, "SPIR-V_1.0"},
		{OpenCL20, "SPIR-V_1.0"},
		{OpenCL21, "SPIR-V_1.0"},
		{OpenCL22, "SPIR-V_1.2"},
	}
	for _, tt := range tests {
		if got := tt.env.ILVersion(); got != tt.want {
			t.Errorf("ILVersion(%s) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.TargetEnv != OpenCL12 {
		t.Errorf("DefaultOptions().TargetEnv = %v, want OpenCL12", opts.TargetEnv)
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := map[ErrorKind]string{
		ErrInvalidModule:         "InvalidModule",
		ErrUnsupportedCapability: "UnsupportedCapability",
		ErrUnsupportedBarrier:    "UnsupportedBarrierCombination",
		ErrUnsupportedOpcode:     "UnsupportedOpcode",
		ErrMalformedConstant:     "MalformedConstant",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
