// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spirv2clc translates SPIR-V modules targeting the OpenCL
// execution environment into OpenCL C source.
//
// The translation pipeline is:
//  1. Decode binary words (or assemble textual assembly) into a module
//  2. Gate the words through the structural validator
//  3. Generate OpenCL C source with the clc backend
//
// Example usage (binary input):
//
//	words, err := spirv.DecodeBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	source, err := spirv2clc.Translate(words)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a specific OpenCL environment, construct a Translator:
//
//	tr := spirv2clc.NewTranslator(clc.OpenCL20)
//	source, err := tr.TranslateBinary(words)
package spirv2clc

import (
	"github.com/gogpu/spirv2clc/clc"
	"github.com/gogpu/spirv2clc/spirv"
)

// Translator turns SPIR-V modules into OpenCL C source for one target
// environment.
//
// A Translator carries no per-module state: each Translate* call runs
// on a fresh backend writer, so a single Translator may be reused
// across modules. Calls are not synchronised; hosts translating
// concurrently must use one Translator per goroutine or serialise.
type Translator struct {
	env       clc.TargetEnv
	validator spirv.Validator
}

// NewTranslator creates a translator for the given OpenCL environment.
func NewTranslator(env clc.TargetEnv) *Translator {
	return &Translator{
		env:       env,
		validator: spirv.StructuralValidator{},
	}
}

// SetValidator replaces the structural validator, letting an embedding
// host gate modules through an external validator instead.
func (t *Translator) SetValidator(v spirv.Validator) {
	t.validator = v
}

// TargetEnv returns the environment the translator was built for.
func (t *Translator) TargetEnv() clc.TargetEnv {
	return t.env
}

// ILVersion returns the canonical IL version string an embedding layer
// should report for this translator.
func (t *Translator) ILVersion() string {
	return t.env.ILVersion()
}

// TranslateBinary translates a SPIR-V word stream. On failure no
// source is returned.
func (t *Translator) TranslateBinary(words []uint32) (string, error) {
	if err := t.validator.Validate(words); err != nil {
		return "", &clc.Error{Kind: clc.ErrInvalidModule, Message: err.Error()}
	}
	module, err := spirv.Parse(words)
	if err != nil {
		return "", &clc.Error{Kind: clc.ErrInvalidModule, Message: err.Error()}
	}
	return clc.Compile(module, clc.Options{TargetEnv: t.env})
}

// TranslateAssembly translates textual SPIR-V assembly. The text is
// re-serialised to binary so the validator sees exactly what a binary
// consumer would.
func (t *Translator) TranslateAssembly(text string) (string, error) {
	words, err := spirv.Assemble(text)
	if err != nil {
		return "", &clc.Error{Kind: clc.ErrInvalidModule, Message: err.Error()}
	}
	return t.TranslateBinary(words)
}

// Translate translates a SPIR-V word stream for the default OpenCL 1.2
// environment.
func Translate(words []uint32) (string, error) {
	return NewTranslator(clc.OpenCL12).TranslateBinary(words)
}

// TranslateAssembly translates textual SPIR-V assembly for the default
// OpenCL 1.2 environment.
func TranslateAssembly(text string) (string, error) {
	return NewTranslator(clc.OpenCL12).TranslateAssembly(text)
}
