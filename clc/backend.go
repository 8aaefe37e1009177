// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"github.com/gogpu/spirv2clc/spirv"
)

// TargetEnv selects the OpenCL execution environment the module was
// validated against.
type TargetEnv uint8

// Target environments.
const (
	OpenCL12 TargetEnv = iota
	OpenCL20
	OpenCL21
	OpenCL22
)

// String returns the environment as a version string.
func (e TargetEnv) String() string {
	switch e {
	case OpenCL12:
		return "OpenCL 1.2"
	case OpenCL20:
		return "OpenCL 2.0"
	case OpenCL21:
		return "OpenCL 2.1"
	case OpenCL22:
		return "OpenCL 2.2"
	}
	return "unknown"
}

// ILVersion returns the canonical IL version string an embedding layer
// should report for this environment.
func (e TargetEnv) ILVersion() string {
	if e == OpenCL22 {
		return "SPIR-V_1.2"
	}
	return "SPIR-V_1.0"
}

// Options configures OpenCL C generation.
type Options struct {
	// TargetEnv is the OpenCL environment translated for.
	// Defaults to OpenCL 1.2.
	TargetEnv TargetEnv
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{TargetEnv: OpenCL12}
}

// Compile generates OpenCL C source from a loaded SPIR-V module.
// On failure no partial source is returned.
func Compile(module *spirv.Module, options Options) (string, error) {
	w := newWriter(module, &options)
	if err := w.translate(); err != nil {
		return "", err
	}
	return w.out.String(), nil
}
