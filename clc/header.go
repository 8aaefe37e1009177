// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"sort"
	"strings"

	"github.com/gogpu/spirv2clc/spirv"
)

// translateCapabilities checks every declared capability against the
// OpenCL profile and emits the extension pragmas that the half and
// double types require.
func (w *Writer) translateCapabilities() error {
	for i := range w.module.Capabilities {
		inst := &w.module.Capabilities[i]
		cap := spirv.Capability(inst.Word(0))
		switch cap {
		case spirv.CapabilityAddresses,
			spirv.CapabilityLinkage,
			spirv.CapabilityKernel,
			spirv.CapabilityInt8,
			spirv.CapabilityInt16,
			spirv.CapabilityInt64,
			spirv.CapabilityVector16,
			spirv.CapabilityImageBasic,
			spirv.CapabilityLiteralSampler,
			spirv.CapabilityFloat16Buffer:
			// Implied by the language.
		case spirv.CapabilityFloat16:
			w.writeLine("#pragma OPENCL EXTENSION cl_khr_fp16 : enable")
		case spirv.CapabilityFloat64:
			w.writeLine("#pragma OPENCL EXTENSION cl_khr_fp64 : enable")
		default:
			return errorf(ErrUnsupportedCapability, "capability %d", cap)
		}
	}
	return nil
}

// translateExtensions accepts the one extension that only adds
// decorations the translator already ignores or records.
func (w *Writer) translateExtensions() error {
	for i := range w.module.Extensions {
		inst := &w.module.Extensions[i]
		name, _ := inst.DecodeString(0)
		if name != "SPV_KHR_no_integer_wrap_decoration" {
			return errorf(ErrUnsupportedExtension, "extension %q", name)
		}
	}
	return nil
}

// translateExtInstImports accepts only the OpenCL.std instruction set.
func (w *Writer) translateExtInstImports() error {
	for i := range w.module.ExtInstImports {
		inst := &w.module.ExtInstImports[i]
		name, _ := inst.DecodeString(0)
		if name != spirv.OpenCLStd {
			return errorf(ErrUnsupportedExtInstSet, "extended instruction set %q", name)
		}
	}
	return nil
}

// translateMemoryModel requires the (Physical32|Physical64, OpenCL)
// pair.
func (w *Writer) translateMemoryModel() error {
	mm := w.module.MemoryModel
	if mm == nil {
		return errorf(ErrUnsupportedMemoryModel, "module has no memory model")
	}
	addressing := spirv.AddressingModel(mm.Word(0))
	memory := spirv.MemoryModel(mm.Word(1))
	if addressing != spirv.AddressingPhysical32 && addressing != spirv.AddressingPhysical64 {
		return errorf(ErrUnsupportedMemoryModel, "addressing model %d", addressing)
	}
	if memory != spirv.MemoryModelOpenCL {
		return errorf(ErrUnsupportedMemoryModel, "memory model %d", memory)
	}
	return nil
}

// translateEntryPoints records the kernel name of every entry point.
func (w *Writer) translateEntryPoints() error {
	for i := range w.module.EntryPoints {
		inst := &w.module.EntryPoints[i]
		model := spirv.ExecutionModel(inst.Word(0))
		if model != spirv.ExecutionModelKernel {
			return errorf(ErrUnsupportedExecutionMode, "execution model %d", model)
		}
		fn := inst.IDOperand(1)
		name, _ := inst.DecodeString(2)
		w.entryPoints[fn] = name
	}
	return nil
}

// translateExecutionModes records the modes the translator expresses as
// function attributes and pragmas.
func (w *Writer) translateExecutionModes() error {
	for i := range w.module.ExecutionModes {
		inst := &w.module.ExecutionModes[i]
		ep := inst.IDOperand(0)
		mode := spirv.ExecutionMode(inst.Word(1))
		switch mode {
		case spirv.ExecutionModeLocalSize:
			w.localSize[ep] = [3]uint32{inst.Word(2), inst.Word(3), inst.Word(4)}
		case spirv.ExecutionModeContractionOff:
			w.contractionOff[ep] = struct{}{}
		default:
			return errorf(ErrUnsupportedExecutionMode, "execution mode %d", mode)
		}
	}
	return nil
}

// translateDebug collects OpName strings and sanitises them into valid,
// unique OpenCL C identifiers.
func (w *Writer) translateDebug() error {
	for i := range w.module.Debug {
		inst := &w.module.Debug[i]
		switch inst.Opcode {
		case spirv.OpSource, spirv.OpSourceContinued, spirv.OpSourceExtension,
			spirv.OpString, spirv.OpModuleProcessed, spirv.OpLine, spirv.OpNoLine:
			// Carry no meaning in the output.
		case spirv.OpName:
			id := inst.IDOperand(0)
			name, _ := inst.DecodeString(1)
			name = strings.ReplaceAll(name, ".", "_")
			w.names[id] = name
		case spirv.OpMemberName:
			// Struct members are always named positionally.
		default:
			return errorf(ErrUnsupportedOpcode, "debug instruction %s", inst.Opcode)
		}
	}

	// Re-issue every name so that one colliding with a reserved
	// identifier or with a name issued to a lower id is suffixed. The ids
	// are ordered so suffix numbering stays deterministic.
	ids := make([]spirv.ID, 0, len(w.names))
	for id := range w.names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	requested := w.names
	w.names = make(map[spirv.ID]string, len(requested))
	for _, id := range ids {
		w.names[id] = w.makeValidIdentifier(requested[id])
	}
	return nil
}
