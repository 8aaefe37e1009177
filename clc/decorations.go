// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"github.com/gogpu/spirv2clc/spirv"
)

// translateAnnotations collects every per-id property the later passes
// consult: linkage names, built-ins, memory-object qualifiers, rounding
// and saturation of conversions, and alignment.
func (w *Writer) translateAnnotations() error {
	for i := range w.module.Annotations {
		inst := &w.module.Annotations[i]
		switch inst.Opcode {
		case spirv.OpDecorate:
			if err := w.applyDecoration(inst); err != nil {
				return err
			}
		case spirv.OpDecorationGroup:
			// The group id accumulates properties through OpDecorate
			// like any other target.
		case spirv.OpGroupDecorate:
			w.applyGroupDecoration(inst)
		default:
			return errorf(ErrUnsupportedDecoration, "annotation instruction %s", inst.Opcode)
		}
	}
	return nil
}

func (w *Writer) applyDecoration(inst *spirv.Instruction) error {
	target := inst.IDOperand(0)
	decoration := spirv.Decoration(inst.Word(1))

	switch decoration {
	case spirv.DecorationFuncParamAttr:
		attr := spirv.FunctionParameterAttribute(inst.Word(2))
		switch attr {
		case spirv.FunctionParameterNoCapture:
			// Pointers cannot escape a kernel anyway.
		case spirv.FunctionParameterNoWrite:
			w.noWrites[target] = struct{}{}
		default:
			return errorf(ErrUnsupportedDecoration, "FuncParamAttr %d", attr)
		}

	case spirv.DecorationBuiltIn:
		builtin := spirv.BuiltIn(inst.Word(2))
		switch builtin {
		case spirv.BuiltInGlobalInvocationID,
			spirv.BuiltInGlobalSize,
			spirv.BuiltInGlobalOffset,
			spirv.BuiltInWorkgroupID,
			spirv.BuiltInWorkgroupSize,
			spirv.BuiltInLocalInvocationID,
			spirv.BuiltInNumWorkgroups,
			spirv.BuiltInWorkDim:
			w.builtinVars[target] = builtin
		default:
			return errorf(ErrUnsupportedBuiltIn, "built-in %d", builtin)
		}

	case spirv.DecorationConstant, spirv.DecorationAliased,
		spirv.DecorationCoherent,
		spirv.DecorationNonReadable, spirv.DecorationNonWritable,
		spirv.DecorationNoSignedWrap, spirv.DecorationNoUnsignedWrap,
		spirv.DecorationFPFastMathMode:
		// Always correct to ignore.

	case spirv.DecorationRestrict:
		w.restricts[target] = struct{}{}
	case spirv.DecorationVolatile:
		w.volatiles[target] = struct{}{}
	case spirv.DecorationCPacked:
		w.packed[target] = struct{}{}
	case spirv.DecorationAlignment:
		w.alignments[target] = inst.Word(2)

	case spirv.DecorationLinkageAttributes:
		name, next := inst.DecodeString(2)
		linkage := spirv.LinkageType(inst.Word(next))
		switch linkage {
		case spirv.LinkageExport:
			w.exports[target] = name
		case spirv.LinkageImport:
			w.imports[target] = name
		}

	case spirv.DecorationFPRoundingMode:
		w.roundingModes[target] = spirv.FPRoundingMode(inst.Word(2))
	case spirv.DecorationSaturatedConversion:
		w.saturated[target] = struct{}{}

	default:
		return errorf(ErrUnsupportedDecoration, "decoration %d", decoration)
	}
	return nil
}

// applyGroupDecoration copies the group's recorded properties onto each
// target.
func (w *Writer) applyGroupDecoration(inst *spirv.Instruction) {
	group := inst.IDOperand(0)

	_, restrict := w.restricts[group]
	_, volatile := w.volatiles[group]
	_, packed := w.packed[group]
	_, noWrite := w.noWrites[group]
	_, saturate := w.saturated[group]
	rounding, hasRounding := w.roundingModes[group]
	alignment, hasAlignment := w.alignments[group]

	for i := 1; i < inst.NumOperands(); i++ {
		target := inst.IDOperand(i)
		if restrict {
			w.restricts[target] = struct{}{}
		}
		if volatile {
			w.volatiles[target] = struct{}{}
		}
		if packed {
			w.packed[target] = struct{}{}
		}
		if noWrite {
			w.noWrites[target] = struct{}{}
		}
		if saturate {
			w.saturated[target] = struct{}{}
		}
		if hasRounding {
			w.roundingModes[target] = rounding
		}
		if hasAlignment {
			w.alignments[target] = alignment
		}
	}
}
