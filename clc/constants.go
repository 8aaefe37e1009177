// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/spirv2clc/spirv"
)

// nullConstant renders the zero value of a type.
func (w *Writer) nullConstant(tyid spirv.ID) (string, error) {
	switch w.typeKind(tyid) {
	case spirv.OpTypeInt:
		return w.srcCast(tyid, "0"), nil
	case spirv.OpTypeFloat:
		return "0.0", nil
	case spirv.OpTypeArray, spirv.OpTypeStruct:
		return "{0}", nil
	case spirv.OpTypeBool:
		return "false", nil
	case spirv.OpTypeVector:
		return "((" + w.srcType(tyid) + ")(0))", nil
	case spirv.OpTypeEvent:
		return "0", nil
	}
	return "", errorf(ErrMalformedConstant, "null constant of type %s", w.typeKind(tyid))
}

// formatFloat renders a float constant with width-appropriate precision
// and suffix. Infinities and NaNs map to the INFINITY and NAN macros.
func formatFloat(v float64, width uint32) string {
	if math.IsInf(v, 0) {
		if math.Signbit(v) {
			return "-INFINITY"
		}
		return "INFINITY"
	}
	if math.IsNaN(v) {
		return "NAN"
	}
	switch width {
	case 16:
		return fmt.Sprintf("%.11fh", v)
	case 32:
		return fmt.Sprintf("%.24ff", v)
	default:
		return fmt.Sprintf("%.53f", v)
	}
}

// translateConstant pre-renders an OpConstant into expression text.
func (w *Writer) translateConstant(inst *spirv.Instruction) error {
	tydef := w.typeDef(inst.Type)
	if tydef == nil {
		return errorf(ErrMalformedConstant, "constant %%%d of undeclared type", inst.Result)
	}

	switch tydef.Opcode {
	case spirv.OpTypeInt:
		width := tydef.Word(0)
		switch {
		case width <= 32:
			w.literals[inst.Result] = w.srcCast(inst.Type, strconv.FormatUint(uint64(inst.Word(0)), 10))
		case width == 64:
			if inst.NumOperands() < 2 {
				return errorf(ErrMalformedConstant, "64-bit constant %%%d has one word", inst.Result)
			}
			v := uint64(inst.Word(1))<<32 | uint64(inst.Word(0))
			w.literals[inst.Result] = w.srcCast(inst.Type, strconv.FormatUint(v, 10))
		default:
			return errorf(ErrMalformedConstant, "integer constant width %d", width)
		}

	case spirv.OpTypeFloat:
		width := tydef.Word(0)
		switch width {
		case 16:
			v := spirv.HalfToFloat(uint16(inst.Word(0)))
			w.literals[inst.Result] = formatFloat(float64(v), 16)
		case 32:
			v := math.Float32frombits(inst.Word(0))
			w.literals[inst.Result] = formatFloat(float64(v), 32)
		case 64:
			if inst.NumOperands() < 2 {
				return errorf(ErrMalformedConstant, "64-bit constant %%%d has one word", inst.Result)
			}
			bits := uint64(inst.Word(1))<<32 | uint64(inst.Word(0))
			w.literals[inst.Result] = formatFloat(math.Float64frombits(bits), 64)
		default:
			return errorf(ErrMalformedConstant, "float constant width %d", width)
		}

	default:
		return errorf(ErrMalformedConstant, "OpConstant of type %s", tydef.Opcode)
	}
	return nil
}

// translateConstantComposite pre-renders a composite constant from its
// members' already-rendered literals.
func (w *Writer) translateConstantComposite(inst *spirv.Instruction) error {
	tydef := w.typeDef(inst.Type)
	if tydef == nil {
		return errorf(ErrMalformedConstant, "composite constant %%%d of undeclared type", inst.Result)
	}

	var lit string
	sep := ""
	switch tydef.Opcode {
	case spirv.OpTypeVector:
		lit = "((" + w.srcType(inst.Type) + ")("
		for i := 0; i < inst.NumOperands(); i++ {
			lit += sep + w.literals[inst.IDOperand(i)]
			sep = ", "
		}
		lit += "))"
	case spirv.OpTypeStruct:
		lit = "((" + w.srcType(inst.Type) + "){"
		for i := 0; i < inst.NumOperands(); i++ {
			lit += sep + w.literals[inst.IDOperand(i)]
			sep = ", "
		}
		lit += "})"
	case spirv.OpTypeArray:
		lit = "{"
		for i := 0; i < inst.NumOperands(); i++ {
			lit += sep + w.literals[inst.IDOperand(i)]
			sep = ", "
		}
		lit += "}"
	default:
		return errorf(ErrMalformedConstant, "OpConstantComposite of type %s", tydef.Opcode)
	}
	w.literals[inst.Result] = lit
	return nil
}

// samplerAddressingTokens spells the CLK_ADDRESS_* token of a literal
// sampler.
var samplerAddressingTokens = map[spirv.SamplerAddressingMode]string{
	spirv.SamplerAddressingNone:           "CLK_ADDRESS_NONE",
	spirv.SamplerAddressingClampToEdge:    "CLK_ADDRESS_CLAMP_TO_EDGE",
	spirv.SamplerAddressingClamp:          "CLK_ADDRESS_CLAMP",
	spirv.SamplerAddressingRepeat:         "CLK_ADDRESS_REPEAT",
	spirv.SamplerAddressingRepeatMirrored: "CLK_ADDRESS_MIRRORED_REPEAT",
}

// translateConstantSampler emits a literal sampler as a file-scope
// constant initialised from the OR of its mode tokens.
func (w *Writer) translateConstantSampler(inst *spirv.Instruction) error {
	addressing := spirv.SamplerAddressingMode(inst.Word(0))
	normalised := inst.Word(1)
	filter := spirv.SamplerFilterMode(inst.Word(2))

	token, ok := samplerAddressingTokens[addressing]
	if !ok {
		return errorf(ErrMalformedConstant, "sampler addressing mode %d", addressing)
	}
	w.write("constant sampler_t " + w.varFor(inst.Result) + " = " + token)

	if normalised != 0 {
		w.write(" | CLK_NORMALIZED_COORDS_TRUE")
	} else {
		w.write(" | CLK_NORMALIZED_COORDS_FALSE")
	}

	switch filter {
	case spirv.SamplerFilterNearest:
		w.write(" | CLK_FILTER_NEAREST")
	case spirv.SamplerFilterLinear:
		w.write(" | CLK_FILTER_LINEAR")
	default:
		return errorf(ErrMalformedConstant, "sampler filter mode %d", filter)
	}

	w.writeLine(";")
	return nil
}

// translateGlobalVariable handles a module-scope OpVariable. Workgroup
// storage is stashed for per-kernel re-emission; UniformConstant
// globals appear at file scope.
func (w *Writer) translateGlobalVariable(inst *spirv.Instruction) error {
	if _, ok := w.builtinVars[inst.Result]; ok {
		return nil
	}

	tydef := w.typeDef(inst.Type)
	if tydef == nil || tydef.Opcode != spirv.OpTypePointer {
		return errorf(ErrUnsupportedGlobalStorage, "global variable %%%d of non-pointer type", inst.Result)
	}
	pointee := tydef.IDOperand(1)
	storage := spirv.StorageClass(inst.Word(0))

	switch storage {
	case spirv.StorageClassWorkgroup:
		decl, err := w.srcMemoryObjectDeclaration(pointee, inst.Result, w.varFor(inst.Result))
		if err != nil {
			return err
		}
		w.localVarDecls[inst.Result] = "local " + decl

	case spirv.StorageClassUniformConstant:
		decl, err := w.srcMemoryObjectDeclaration(pointee, inst.Result, w.varFor(inst.Result))
		if err != nil {
			return err
		}
		w.write("constant " + decl)
		if inst.NumOperands() > 1 {
			w.write(" = " + w.varFor(inst.IDOperand(1)))
		}
		w.writeLine(";")

	default:
		return errorf(ErrUnsupportedGlobalStorage, "global variable storage class %d", storage)
	}
	return nil
}

// translateTypesValues walks the types/constants/globals section.
func (w *Writer) translateTypesValues() error {
	for i := range w.module.TypesValues {
		inst := &w.module.TypesValues[i]
		switch inst.Opcode {
		case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeInt,
			spirv.OpTypeFloat, spirv.OpTypeVector, spirv.OpTypePointer,
			spirv.OpTypeStruct, spirv.OpTypeArray, spirv.OpTypeOpaque,
			spirv.OpTypeImage, spirv.OpTypeSampler, spirv.OpTypeSampledImage,
			spirv.OpTypeEvent, spirv.OpTypeFunction:
			if err := w.translateType(inst); err != nil {
				return err
			}

		case spirv.OpConstant:
			if err := w.translateConstant(inst); err != nil {
				return err
			}

		case spirv.OpUndef, spirv.OpConstantNull:
			lit, err := w.nullConstant(inst.Type)
			if err != nil {
				return err
			}
			w.literals[inst.Result] = lit

		case spirv.OpConstantTrue:
			w.literals[inst.Result] = "true"
		case spirv.OpConstantFalse:
			w.literals[inst.Result] = "false"

		case spirv.OpConstantSampler:
			if err := w.translateConstantSampler(inst); err != nil {
				return err
			}

		case spirv.OpConstantComposite:
			if err := w.translateConstantComposite(inst); err != nil {
				return err
			}

		case spirv.OpVariable:
			if err := w.translateGlobalVariable(inst); err != nil {
				return err
			}

		default:
			return errorf(ErrUnsupportedOpcode, "type/value instruction %s", inst.Opcode)
		}
	}
	return nil
}
