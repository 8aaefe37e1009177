// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"

	"github.com/gogpu/spirv2clc/spirv"
)

// intSpellings maps integer widths to the canonical unsigned spelling
// and its signed dual.
var intSpellings = map[uint32][2]string{
	8:  {"uchar", "char"},
	16: {"ushort", "short"},
	32: {"uint", "int"},
	64: {"ulong", "long"},
}

// floatSpellings maps float widths to their OpenCL C spelling.
var floatSpellings = map[uint32]string{
	16: "half",
	32: "float",
	64: "double",
}

// arrayLen returns the literal element count of an array type.
func (w *Writer) arrayLen(tyid spirv.ID) (uint64, error) {
	n, err := w.module.ArrayLength(tyid)
	if err != nil {
		return 0, errorf(ErrMalformedConstant, "%v", err)
	}
	return n, nil
}

// srcPointerType spells a pointer type: pointee, address-space
// qualifier drawn from the storage class, and the trailing star.
// Array pointees decay to their element type.
func (w *Writer) srcPointerType(storage spirv.StorageClass, tyid spirv.ID, signed bool) (string, error) {
	var typestr string
	if w.typeKind(tyid) == spirv.OpTypeArray {
		elem := w.typeDef(tyid).IDOperand(0)
		typestr = w.srcType(elem)
	} else if signed {
		typestr = w.srcTypeSigned(tyid)
	} else {
		typestr = w.srcType(tyid)
	}
	typestr += " "

	switch storage {
	case spirv.StorageClassCrossWorkgroup:
		typestr += "global"
	case spirv.StorageClassUniformConstant:
		typestr += "constant"
	case spirv.StorageClassWorkgroup:
		typestr += "local"
	case spirv.StorageClassInput, spirv.StorageClassFunction:
		// Unqualified.
	default:
		return "", errorf(ErrUnsupportedPointerStorage, "pointer storage class %d", storage)
	}

	return typestr + "*", nil
}

// srcVarDecl spells "type name" for a declaration, expanding array
// types into "elem name[count]". When val names a boolean-producing
// value its shadow type wins.
func (w *Writer) srcVarDecl(tyid spirv.ID, name string, val spirv.ID) (string, error) {
	if w.typeKind(tyid) == spirv.OpTypeArray {
		def := w.typeDef(tyid)
		elem := def.IDOperand(0)
		count, ok := w.module.SignedConstantValue(def.IDOperand(1))
		if !ok {
			return "", errorf(ErrMalformedConstant, "array type %%%d has a non-constant length", tyid)
		}
		return fmt.Sprintf("%s %s[%d]", w.srcType(elem), name, count), nil
	}
	if val != 0 {
		return w.srcTypeForValue(val) + " " + name, nil
	}
	return w.srcType(tyid) + " " + name, nil
}

// srcVarDeclFor spells the declaration of a result id.
func (w *Writer) srcVarDeclFor(val spirv.ID) (string, error) {
	return w.srcVarDecl(w.typeIDFor(val), w.varFor(val), val)
}

// srcMemoryObjectDeclaration spells a memory-object declaration: type,
// the recorded restrict/volatile/aligned qualifiers, the name, and an
// array length when the object is an array.
func (w *Writer) srcMemoryObjectDeclaration(tyid, val spirv.ID, name string) (string, error) {
	var ret string
	isArray := w.typeKind(tyid) == spirv.OpTypeArray
	if isArray {
		ret = w.srcType(w.typeDef(tyid).IDOperand(0))
	} else {
		ret = w.srcType(tyid)
	}
	if _, ok := w.restricts[val]; ok {
		ret += " restrict"
	}
	if _, ok := w.volatiles[val]; ok {
		ret += " volatile"
	}
	if align, ok := w.alignments[val]; ok {
		ret += fmt.Sprintf(" __attribute__((aligned(%d)))", align)
	}
	ret += " " + name
	if isArray {
		count, err := w.arrayLen(tyid)
		if err != nil {
			return "", err
		}
		ret += fmt.Sprintf("[%d]", count)
	}
	return ret, nil
}

// booleanSrcTypeFor chooses the integer type representing a boolean
// derived from val: the stamped shadow type when present, otherwise an
// integer whose lane width matches val's lanes.
func (w *Writer) booleanSrcTypeFor(val spirv.ID) (string, error) {
	if ty, ok := w.booleanSrcTypes[val]; ok {
		return ty, nil
	}
	def := w.typeDef(w.typeIDFor(val))
	if def == nil {
		return "", errorf(ErrInternal, "no type for %%%d", val)
	}
	elem, suffix := def, ""
	if def.Opcode == spirv.OpTypeVector {
		elem = w.typeDef(def.IDOperand(0))
		suffix = fmt.Sprint(def.Word(1))
	}
	switch elem.Opcode {
	case spirv.OpTypeInt:
		if names, ok := intSpellings[elem.Word(0)]; ok {
			return names[1] + suffix, nil
		}
	case spirv.OpTypeFloat:
		switch elem.Word(0) {
		case 16:
			return "short" + suffix, nil
		case 32:
			return "int" + suffix, nil
		case 64:
			return "long" + suffix, nil
		}
	}
	if suffix == "" {
		return "int", nil
	}
	return "", errorf(ErrUnsupportedOpcode, "no boolean representation for values of type %s", elem.Opcode)
}

// translateType computes the OpenCL C spelling of one type declaration
// and, for integers and what contains them, its signed dual. Struct and
// opaque types additionally emit their declarations.
func (w *Writer) translateType(inst *spirv.Instruction) error {
	var typestr, signedstr string
	result := inst.Result

	switch inst.Opcode {
	case spirv.OpTypePointer:
		storage := spirv.StorageClass(inst.Word(0))
		pointee := inst.IDOperand(1)
		var err error
		if _, ok := w.typesSigned[pointee]; ok {
			if signedstr, err = w.srcPointerType(storage, pointee, true); err != nil {
				return err
			}
		}
		if typestr, err = w.srcPointerType(storage, pointee, false); err != nil {
			return err
		}

	case spirv.OpTypeInt:
		width := inst.Word(0)
		names, ok := intSpellings[width]
		if !ok {
			return errorf(ErrUnsupportedOpcode, "OpTypeInt width %d", width)
		}
		typestr, signedstr = names[0], names[1]

	case spirv.OpTypeFloat:
		width := inst.Word(0)
		name, ok := floatSpellings[width]
		if !ok {
			return errorf(ErrUnsupportedOpcode, "OpTypeFloat width %d", width)
		}
		typestr = name

	case spirv.OpTypeVector:
		elem := inst.IDOperand(0)
		count := inst.Word(1)
		typestr = fmt.Sprintf("%s%d", w.srcType(elem), count)
		if signedElem, ok := w.typesSigned[elem]; ok {
			signedstr = fmt.Sprintf("%s%d", signedElem, count)
		}

	case spirv.OpTypeStruct:
		w.writeLine("struct " + w.varFor(result) + " {")
		for i := 0; i < inst.NumOperands(); i++ {
			member := inst.IDOperand(i)
			decl, err := w.srcVarDecl(member, fmt.Sprintf("m%d", i), 0)
			if err != nil {
				return err
			}
			w.writeLine("  " + decl + ";")
		}
		w.write("}")
		if _, ok := w.packed[result]; ok {
			w.write(" __attribute__((packed))")
		}
		w.writeLine(";")
		typestr = "struct " + w.varFor(result)

	case spirv.OpTypeArray:
		// Spelled at use sites: pointee decay and variable
		// declarations are special-cased there.
		return nil

	case spirv.OpTypeImage:
		depth, arrayed, ms, sampled := inst.Word(2), inst.Word(3), inst.Word(4), inst.Word(5)
		if depth != 0 || arrayed != 0 || ms != 0 || sampled != 0 {
			return errorf(ErrUnsupportedImageShape,
				"image type (depth=%d, arrayed=%d, ms=%d, sampled=%d)", depth, arrayed, ms, sampled)
		}

		qual := spirv.AccessQualifierReadOnly
		if inst.NumOperands() > 7 {
			qual = spirv.AccessQualifier(inst.Word(7))
		}
		switch qual {
		case spirv.AccessQualifierReadOnly:
			typestr = "read_only"
		case spirv.AccessQualifierWriteOnly:
			typestr = "write_only"
		case spirv.AccessQualifierReadWrite:
			typestr = "read_write"
		default:
			return errorf(ErrUnsupportedImageShape, "image access qualifier %d", qual)
		}
		typestr += " "

		switch spirv.Dim(inst.Word(1)) {
		case spirv.Dim1D:
			typestr += "image1d_t"
		case spirv.Dim2D:
			typestr += "image2d_t"
		case spirv.Dim3D:
			typestr += "image3d_t"
		default:
			return errorf(ErrUnsupportedImageShape, "image dimensionality %d", inst.Word(1))
		}

	case spirv.OpTypeSampledImage:
		// Lowered instruction by instruction through OpSampledImage.
		return nil

	case spirv.OpTypeSampler:
		typestr = "sampler_t"

	case spirv.OpTypeOpaque:
		name, _ := inst.DecodeString(0)
		typestr = "struct " + name
		w.writeLine(typestr + ";")

	case spirv.OpTypeBool:
		typestr = "bool"

	case spirv.OpTypeVoid:
		typestr = "void"

	case spirv.OpTypeFunction:
		// Function types never appear in the output.
		return nil

	case spirv.OpTypeEvent:
		typestr = "event_t"

	default:
		return errorf(ErrUnsupportedOpcode, "type instruction %s", inst.Opcode)
	}

	w.types[result] = typestr
	if signedstr != "" {
		w.typesSigned[result] = signedstr
	}
	return nil
}
