// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"
	"strconv"

	"github.com/gogpu/spirv2clc/spirv"
)

// binops maps opcodes lowered to a plain C operator over the
// unsigned-canonical operand spellings.
var binops = map[spirv.Opcode]string{
	spirv.OpFMul:                   "*",
	spirv.OpFDiv:                   "/",
	spirv.OpFAdd:                   "+",
	spirv.OpFSub:                   "-",
	spirv.OpISub:                   "-",
	spirv.OpIAdd:                   "+",
	spirv.OpIMul:                   "*",
	spirv.OpUDiv:                   "/",
	spirv.OpUMod:                   "%",
	spirv.OpULessThan:              "<",
	spirv.OpULessThanEqual:         "<=",
	spirv.OpUGreaterThan:           ">",
	spirv.OpUGreaterThanEqual:      ">=",
	spirv.OpLogicalEqual:           "==",
	spirv.OpLogicalNotEqual:        "!=",
	spirv.OpIEqual:                 "==",
	spirv.OpINotEqual:              "!=",
	spirv.OpBitwiseOr:              "|",
	spirv.OpBitwiseXor:             "^",
	spirv.OpBitwiseAnd:             "&",
	spirv.OpLogicalOr:              "||",
	spirv.OpLogicalAnd:             "&&",
	spirv.OpVectorTimesScalar:      "*",
	spirv.OpShiftLeftLogical:       "<<",
	spirv.OpShiftRightLogical:      ">>",
	spirv.OpFOrdEqual:              "==",
	spirv.OpFUnordEqual:            "==",
	spirv.OpFOrdNotEqual:           "!=",
	spirv.OpFUnordNotEqual:         "!=",
	spirv.OpFOrdLessThan:           "<",
	spirv.OpFUnordLessThan:         "<",
	spirv.OpFOrdGreaterThan:        ">",
	spirv.OpFUnordGreaterThan:      ">",
	spirv.OpFOrdLessThanEqual:      "<=",
	spirv.OpFUnordLessThanEqual:    "<=",
	spirv.OpFOrdGreaterThanEqual:   ">=",
	spirv.OpFUnordGreaterThanEqual: ">=",
}

// signedBinops maps opcodes whose semantics require bridging both
// operands through their signed reinterpretations.
var signedBinops = map[spirv.Opcode]string{
	spirv.OpSDiv:                 "/",
	spirv.OpSRem:                 "%",
	spirv.OpShiftRightArithmetic: ">>",
	spirv.OpSLessThan:            "<",
	spirv.OpSLessThanEqual:       "<=",
	spirv.OpSGreaterThan:         ">",
	spirv.OpSGreaterThanEqual:    ">=",
}

// atomicFns maps atomic opcodes onto the scope-free atomic_* family.
// The scope and semantics operands are deliberately ignored.
var atomicFns = map[spirv.Opcode]string{
	spirv.OpAtomicAnd:      "atomic_and",
	spirv.OpAtomicExchange: "atomic_xchg",
	spirv.OpAtomicIAdd:     "atomic_add",
	spirv.OpAtomicISub:     "atomic_sub",
	spirv.OpAtomicOr:       "atomic_or",
	spirv.OpAtomicSMax:     "atomic_max",
	spirv.OpAtomicSMin:     "atomic_min",
	spirv.OpAtomicUMax:     "atomic_max",
	spirv.OpAtomicUMin:     "atomic_min",
	spirv.OpAtomicXor:      "atomic_xor",
}

func (w *Writer) translateBinop(inst *spirv.Instruction) string {
	return w.varFor(inst.IDOperand(0)) + " " + binops[inst.Opcode] + " " + w.varFor(inst.IDOperand(1))
}

func (w *Writer) translateBinopSigned(inst *spirv.Instruction) string {
	return w.srcAsSigned(inst.IDOperand(0)) + " " + signedBinops[inst.Opcode] + " " + w.srcAsSigned(inst.IDOperand(1))
}

// builtinFns maps vector built-ins to their work-item query function.
var builtinFns = map[spirv.BuiltIn]string{
	spirv.BuiltInGlobalInvocationID: "get_global_id",
	spirv.BuiltInGlobalOffset:       "get_global_offset",
	spirv.BuiltInGlobalSize:         "get_global_size",
	spirv.BuiltInWorkgroupID:        "get_group_id",
	spirv.BuiltInWorkgroupSize:      "get_local_size",
	spirv.BuiltInLocalInvocationID:  "get_local_id",
	spirv.BuiltInNumWorkgroups:      "get_num_groups",
}

// builtinVectorExtract lowers a component read of a built-in vector to
// the corresponding work-item function call.
func (w *Writer) builtinVectorExtract(id spirv.ID, idx uint32, constant bool) (string, error) {
	arg := w.varFor(spirv.ID(idx))
	if constant {
		arg = strconv.FormatUint(uint64(idx), 10)
	}
	fn, ok := builtinFns[w.builtinVals[id]]
	if !ok {
		return "", errorf(ErrUnsupportedBuiltIn, "built-in %d in a vector extract", w.builtinVals[id])
	}
	return w.call(fn, arg), nil
}

// isFloatKind reports whether a type id is a float scalar or a float
// vector.
func (w *Writer) isFloatKind(tyid spirv.ID) bool {
	def := w.typeDef(tyid)
	if def == nil {
		return false
	}
	if def.Opcode == spirv.OpTypeVector {
		def = w.typeDef(def.IDOperand(0))
		if def == nil {
			return false
		}
	}
	return def.Opcode == spirv.OpTypeFloat
}

// constantScope resolves a scope operand that must be a constant.
func (w *Writer) constantScope(id spirv.ID) (spirv.Scope, bool) {
	v, ok := w.module.ConstantValue(id)
	return spirv.Scope(v), ok
}

// translateInstruction lowers one non-φ instruction to a statement,
// without the trailing semicolon. An empty result means the
// instruction emits no code of its own.
func (w *Writer) translateInstruction(inst *spirv.Instruction) (string, error) {
	opcode := inst.Opcode
	rtype := inst.Type
	result := inst.Result

	var src, sval string
	assignResult := true
	booleanResult := false
	var booleanSrcType string

	switch {
	case binops[opcode] != "":
		if isCompare(opcode) {
			booleanResult = true
			var err error
			booleanSrcType, err = w.booleanSrcTypeFor(inst.IDOperand(0))
			if err != nil {
				return "", err
			}
		}
		sval = w.translateBinop(inst)

	case signedBinops[opcode] != "":
		if isCompare(opcode) {
			booleanResult = true
			var err error
			booleanSrcType, err = w.booleanSrcTypeFor(inst.IDOperand(0))
			if err != nil {
				return "", err
			}
			sval = w.translateBinopSigned(inst)
		} else {
			sval = w.srcAs(rtype, w.translateBinopSigned(inst))
		}

	case atomicFns[opcode] != "":
		sval = w.callIDs(atomicFns[opcode], inst.IDOperand(0), inst.IDOperand(3))

	default:
		var err error
		src, sval, assignResult, err = w.translateOther(inst)
		if err != nil {
			return "", err
		}
	}

	if booleanResult {
		w.booleanSrcTypes[result] = booleanSrcType
	}

	if result != 0 && assignResult {
		decl, err := w.srcVarDeclFor(result)
		if err != nil {
			return "", err
		}
		src = decl + " = " + sval
	}
	return src, nil
}

// isCompare reports whether a binop produces a boolean.
func isCompare(op spirv.Opcode) bool {
	switch op {
	case spirv.OpULessThan, spirv.OpULessThanEqual,
		spirv.OpUGreaterThan, spirv.OpUGreaterThanEqual,
		spirv.OpSLessThan, spirv.OpSLessThanEqual,
		spirv.OpSGreaterThan, spirv.OpSGreaterThanEqual,
		spirv.OpLogicalEqual, spirv.OpLogicalNotEqual,
		spirv.OpLogicalOr, spirv.OpLogicalAnd,
		spirv.OpIEqual, spirv.OpINotEqual,
		spirv.OpFOrdEqual, spirv.OpFUnordEqual,
		spirv.OpFOrdNotEqual, spirv.OpFUnordNotEqual,
		spirv.OpFOrdLessThan, spirv.OpFUnordLessThan,
		spirv.OpFOrdGreaterThan, spirv.OpFUnordGreaterThan,
		spirv.OpFOrdLessThanEqual, spirv.OpFUnordLessThanEqual,
		spirv.OpFOrdGreaterThanEqual, spirv.OpFUnordGreaterThanEqual:
		return true
	}
	return false
}

// translateOther handles the opcodes outside the operator and atomic
// tables. It returns (src, sval, assignResult): src is a complete
// statement, sval an expression still to be assigned to the result.
func (w *Writer) translateOther(inst *spirv.Instruction) (string, string, bool, error) {
	opcode := inst.Opcode
	rtype := inst.Type
	result := inst.Result

	var src, sval string
	assign := true

	switch opcode {
	case spirv.OpUndef:
		var err error
		if sval, err = w.nullConstant(rtype); err != nil {
			return "", "", false, err
		}

	case spirv.OpUnreachable:
		assign = false

	case spirv.OpReturn:
		src, assign = "return", false

	case spirv.OpReturnValue:
		src, assign = "return "+w.varFor(inst.IDOperand(0)), false

	case spirv.OpFunctionCall:
		fn := inst.IDOperand(0)
		sval = w.varFor(fn) + "("
		sep := ""
		for i := 1; i < inst.NumOperands(); i++ {
			sval += sep + w.varFor(inst.IDOperand(i))
			sep = ", "
		}
		sval += ")"
		if w.typeKind(rtype) == spirv.OpTypeVoid {
			src, assign = sval, false
		}

	case spirv.OpCopyObject:
		sval = w.varFor(inst.IDOperand(0))

	case spirv.OpLifetimeStart, spirv.OpLifetimeStop:
		assign = false

	case spirv.OpVariable:
		var err error
		if src, err = w.translateLocalVariable(inst); err != nil {
			return "", "", false, err
		}
		assign = false

	case spirv.OpLoad:
		ptr := inst.IDOperand(0)
		if builtin, ok := w.builtinVars[ptr]; ok {
			w.builtinVals[result] = builtin
			assign = false
		} else {
			sval = "*" + w.varFor(ptr)
		}

	case spirv.OpStore:
		src = "*" + w.varFor(inst.IDOperand(0)) + " = " + w.varFor(inst.IDOperand(1))
		assign = false

	case spirv.OpConvertPtrToU, spirv.OpConvertUToPtr:
		sval = w.srcCast(rtype, w.varFor(inst.IDOperand(0)))

	case spirv.OpInBoundsPtrAccessChain:
		var err error
		if sval, err = w.translateAccessChain(inst); err != nil {
			return "", "", false, err
		}

	case spirv.OpSampledImage:
		w.sampledImages[result] = [2]spirv.ID{inst.IDOperand(0), inst.IDOperand(1)}
		assign = false

	case spirv.OpImageSampleExplicitLod:
		var err error
		if sval, err = w.translateImageSample(inst); err != nil {
			return "", "", false, err
		}

	case spirv.OpImageQuerySizeLod:
		image := inst.IDOperand(0)
		tyimg := w.typeDef(w.typeIDFor(image))
		sval = "((" + w.srcType(rtype) + ")("
		sval += w.call("get_image_width", w.varFor(image))
		dim := spirv.Dim(tyimg.Word(1))
		if dim == spirv.Dim2D || dim == spirv.Dim3D {
			sval += ", " + w.call("get_image_height", w.varFor(image))
		}
		if dim == spirv.Dim3D {
			sval += ", " + w.call("get_image_depth", w.varFor(image))
		}
		sval += "))"

	case spirv.OpAtomicIIncrement:
		sval = w.callIDs("atomic_inc", inst.IDOperand(0))
	case spirv.OpAtomicIDecrement:
		sval = w.callIDs("atomic_dec", inst.IDOperand(0))
	case spirv.OpAtomicCompareExchange:
		sval = w.callIDs("atomic_cmpxchg", inst.IDOperand(0), inst.IDOperand(5), inst.IDOperand(4))

	case spirv.OpCompositeExtract:
		comp := inst.IDOperand(0)
		if inst.NumOperands() > 2 {
			return "", "", false, errorf(ErrUnsupportedOpcode, "OpCompositeExtract with multiple indices")
		}
		idx := inst.Word(1)
		if _, ok := w.builtinVals[comp]; ok {
			var err error
			if sval, err = w.builtinVectorExtract(comp, idx, true); err != nil {
				return "", "", false, err
			}
			break
		}
		if w.typeKind(w.typeIDFor(comp)) != spirv.OpTypeVector {
			return "", "", false, errorf(ErrUnsupportedOpcode,
				"OpCompositeExtract from a %s", w.typeKind(w.typeIDFor(comp)))
		}
		sval = w.srcVecComp(comp, idx)

	case spirv.OpCompositeInsert:
		object := inst.IDOperand(0)
		composite := inst.IDOperand(1)
		if inst.NumOperands() > 3 {
			return "", "", false, errorf(ErrUnsupportedOpcode, "OpCompositeInsert with multiple indices")
		}
		idx := inst.Word(2)
		if w.typeKind(rtype) != spirv.OpTypeVector {
			return "", "", false, errorf(ErrUnsupportedOpcode,
				"OpCompositeInsert into a %s", w.typeKind(rtype))
		}
		src = w.srcType(rtype) + " " + w.varFor(result) + " = " + w.varFor(composite) + "; "
		src += w.srcVecComp(result, idx) + " = " + w.varFor(object)
		assign = false

	case spirv.OpCompositeConstruct:
		sval = "{"
		sep := ""
		for i := 0; i < inst.NumOperands(); i++ {
			sval += sep + w.varFor(inst.IDOperand(i))
			sep = ", "
		}
		sval += "}"

	case spirv.OpVectorExtractDynamic:
		vec := inst.IDOperand(0)
		idx := inst.IDOperand(1)
		if _, ok := w.builtinVals[vec]; ok {
			var err error
			if sval, err = w.builtinVectorExtract(vec, uint32(idx), false); err != nil {
				return "", "", false, err
			}
		} else {
			sval = "((" + w.srcType(rtype) + "*)&" + w.varFor(vec) + ")[" + w.varFor(idx) + "]"
		}

	case spirv.OpVectorInsertDynamic:
		vec := inst.IDOperand(0)
		comp := inst.IDOperand(1)
		idx := inst.IDOperand(2)
		sval = w.varFor(vec) + "; "
		sval += "((" + w.srcType(w.typeIDFor(comp)) + "*)&" + w.varFor(result) + ")[" +
			w.varFor(idx) + "] = " + w.varFor(comp)

	case spirv.OpVectorShuffle:
		var err error
		if sval, err = w.translateVectorShuffle(inst); err != nil {
			return "", "", false, err
		}

	case spirv.OpFMod, spirv.OpFRem:
		sval = w.callIDs("fmod", inst.IDOperand(0), inst.IDOperand(1))

	case spirv.OpSNegate, spirv.OpFNegate:
		sval = "-" + w.varFor(inst.IDOperand(0))
	case spirv.OpLogicalNot:
		sval = "!" + w.varFor(inst.IDOperand(0))
	case spirv.OpNot:
		sval = "~" + w.varFor(inst.IDOperand(0))

	case spirv.OpLessOrGreater:
		ty, err := w.booleanSrcTypeFor(inst.IDOperand(0))
		if err != nil {
			return "", "", false, err
		}
		w.booleanSrcTypes[result] = ty
		sval = w.callIDs("islessgreater", inst.IDOperand(0), inst.IDOperand(1))

	case spirv.OpAny:
		sval = w.callIDs("any", inst.IDOperand(0))
	case spirv.OpAll:
		sval = w.callIDs("all", inst.IDOperand(0))
	case spirv.OpIsNan:
		sval = w.callIDs("isnan", inst.IDOperand(0))
	case spirv.OpIsInf:
		sval = w.callIDs("isinf", inst.IDOperand(0))
	case spirv.OpIsFinite:
		sval = w.callIDs("isfinite", inst.IDOperand(0))
	case spirv.OpIsNormal:
		sval = w.callIDs("isnormal", inst.IDOperand(0))
	case spirv.OpSignBitSet:
		sval = w.callIDs("signbit", inst.IDOperand(0))
	case spirv.OpBitCount:
		sval = w.callIDs("popcount", inst.IDOperand(0))
	case spirv.OpOrdered:
		sval = w.callIDs("isordered", inst.IDOperand(0), inst.IDOperand(1))
	case spirv.OpUnordered:
		sval = w.callIDs("isunordered", inst.IDOperand(0), inst.IDOperand(1))

	case spirv.OpDot:
		sval = w.callIDs("dot", inst.IDOperand(0), inst.IDOperand(1))

	case spirv.OpConvertFToU, spirv.OpConvertFToS:
		sval = w.translateFloatToInt(inst)

	case spirv.OpConvertUToF, spirv.OpConvertSToF:
		sval = w.translateIntToFloat(inst)

	case spirv.OpSatConvertSToU:
		val := inst.IDOperand(0)
		sval = w.srcAs(rtype, w.call("convert_"+w.srcTypeSigned(rtype)+"_sat", w.varFor(val)))

	case spirv.OpSatConvertUToS:
		val := inst.IDOperand(0)
		sval = w.call("convert_"+w.srcType(rtype)+"_sat", w.srcAsSigned(val))

	case spirv.OpBitcast:
		val := inst.IDOperand(0)
		srcPtr := w.typeKind(w.typeIDFor(val)) == spirv.OpTypePointer
		dstPtr := w.typeKind(rtype) == spirv.OpTypePointer
		if srcPtr || dstPtr {
			sval = w.srcCast(rtype, w.varFor(val))
		} else {
			sval = w.srcAs(rtype, w.varFor(val))
		}

	case spirv.OpSConvert:
		sval = w.srcConvertSigned(inst.IDOperand(0), rtype)
	case spirv.OpFConvert, spirv.OpUConvert:
		sval = w.srcConvert(inst.IDOperand(0), rtype)

	case spirv.OpSelect:
		sval = w.varFor(inst.IDOperand(0)) + " ? " + w.varFor(inst.IDOperand(1)) +
			" : " + w.varFor(inst.IDOperand(2))

	case spirv.OpBranch:
		src = "goto " + w.varFor(inst.IDOperand(0))
		assign = false

	case spirv.OpBranchConditional:
		src = "if (" + w.varFor(inst.IDOperand(0)) + ") { goto " + w.varFor(inst.IDOperand(1)) +
			";} else { goto " + w.varFor(inst.IDOperand(2)) + ";}"
		assign = false

	case spirv.OpLoopMerge, spirv.OpSelectionMerge:
		// Structural hints only.
		assign = false

	case spirv.OpPhi:
		// Declared at function entry, assigned on predecessor edges.
		assign = false

	case spirv.OpSwitch:
		src = "switch (" + w.varFor(inst.IDOperand(0)) + "){"
		src += "default: goto " + w.varFor(inst.IDOperand(1)) + ";"
		for i := 2; i+1 < inst.NumOperands(); i += 2 {
			src += fmt.Sprintf("case %d: goto %s;", inst.Word(i), w.varFor(inst.IDOperand(i+1)))
		}
		src += "}"
		assign = false

	case spirv.OpControlBarrier:
		var err error
		if src, err = w.translateControlBarrier(inst); err != nil {
			return "", "", false, err
		}
		assign = false

	case spirv.OpGroupAsyncCopy:
		var err error
		if sval, err = w.translateAsyncCopy(inst); err != nil {
			return "", "", false, err
		}

	case spirv.OpGroupWaitEvents:
		scope, ok := w.constantScope(inst.IDOperand(0))
		if !ok || scope != spirv.ScopeWorkgroup {
			return "", "", false, errorf(ErrUnsupportedBarrier,
				"OpGroupWaitEvents with a non-workgroup execution scope")
		}
		src = w.callIDs("wait_group_events", inst.IDOperand(1), inst.IDOperand(2))
		assign = false

	case spirv.OpExtInst:
		var err error
		if src, err = w.translateExtendedInstruction(inst); err != nil {
			return "", "", false, err
		}
		assign = false

	default:
		return "", "", false, errorf(ErrUnsupportedOpcode, "instruction %s", opcode)
	}

	return src, sval, assign, nil
}

// translateLocalVariable lowers a function-scope OpVariable into a
// storage declaration plus a pointer binding.
func (w *Writer) translateLocalVariable(inst *spirv.Instruction) (string, error) {
	rtype := inst.Type
	result := inst.Result
	tydef := w.typeDef(rtype)
	if tydef == nil || tydef.Opcode != spirv.OpTypePointer {
		return "", errorf(ErrInternal, "OpVariable %%%d of non-pointer type", result)
	}
	pointee := tydef.IDOperand(1)

	storageName := w.makeValidIdentifier(w.varFor(result) + "_storage")
	decl, err := w.srcMemoryObjectDeclaration(pointee, result, storageName)
	if err != nil {
		return "", err
	}
	src := decl
	if inst.NumOperands() > 1 {
		src += " = " + w.varFor(inst.IDOperand(1))
	}
	src += "; "
	src += w.srcType(rtype) + " " + w.varFor(result) + " = &" + storageName
	return src, nil
}

// translateAccessChain walks an OpInBoundsPtrAccessChain through the
// pointee type, one array or struct step per index.
func (w *Writer) translateAccessChain(inst *spirv.Instruction) (string, error) {
	base := inst.IDOperand(0)
	elem := inst.IDOperand(1)
	sval := "&" + w.varFor(base) + "[" + w.varFor(elem) + "]"

	basety := w.typeDef(w.typeIDFor(base))
	if basety == nil || basety.Opcode != spirv.OpTypePointer {
		return "", errorf(ErrInternal, "access chain base %%%d is not a pointer", base)
	}
	cty := basety.IDOperand(1)

	for i := 2; i < inst.NumOperands(); i++ {
		idx := inst.IDOperand(i)
		ctydef := w.typeDef(cty)
		switch ctydef.Opcode {
		case spirv.OpTypeArray:
			sval = "&((" + sval + ")[" + w.varFor(idx) + "])"
			cty = ctydef.IDOperand(0)
		case spirv.OpTypeStruct:
			member, ok := w.module.ConstantValue(idx)
			if !ok {
				return "", errorf(ErrUnsupportedChainIndex,
					"struct access chain with non-constant index %%%d", idx)
			}
			sval = fmt.Sprintf("&((%s)->m%d)", sval, member)
			cty = ctydef.IDOperand(int(member))
		default:
			return "", errorf(ErrUnsupportedChainIndex,
				"access chain through a %s", ctydef.Opcode)
		}
	}
	return sval, nil
}

// translateImageSample lowers a sampled read. Integer-channel images
// read through read_imagei with the result reinterpreted; integer
// coordinates pass through as_int2.
func (w *Writer) translateImageSample(inst *spirv.Instruction) (string, error) {
	sampled := inst.IDOperand(0)
	coord := inst.IDOperand(1)
	pair, ok := w.sampledImages[sampled]
	if !ok {
		return "", errorf(ErrInternal, "image sample of an unknown OpSampledImage %%%d", sampled)
	}

	isFloat := w.isFloatKind(inst.Type)
	isFloatCoord := w.isFloatKind(w.typeIDFor(coord))

	var sval string
	if !isFloat {
		sval += "as_uint4("
	}
	sval += "read_image"
	if isFloat {
		sval += "f"
	} else {
		sval += "i"
	}
	sval += "(" + w.varFor(pair[0]) + ", " + w.varFor(pair[1]) + ", "
	if !isFloatCoord {
		sval += "as_int2(" + w.varFor(coord) + ")"
	} else {
		sval += w.varFor(coord)
	}
	sval += ")"
	if !isFloat {
		sval += ")"
	}
	return sval, nil
}

// translateVectorShuffle builds the vector-literal form of a shuffle.
// The 0xFFFFFFFF "don't care" lane reads as zero.
func (w *Writer) translateVectorShuffle(inst *spirv.Instruction) (string, error) {
	v1 := inst.IDOperand(0)
	v2 := inst.IDOperand(1)
	ty1 := w.typeDef(w.typeIDFor(v1))
	if ty1 == nil || ty1.Opcode != spirv.OpTypeVector {
		return "", errorf(ErrInternal, "shuffle of a non-vector %%%d", v1)
	}
	n1 := ty1.Word(1)

	sval := "((" + w.srcType(inst.Type) + ")("
	sep := ""
	for i := 2; i < inst.NumOperands(); i++ {
		comp := inst.Word(i)
		sval += sep
		if comp == 0xFFFFFFFF {
			sval += "0"
		} else if comp >= n1 {
			sval += w.srcVecComp(v2, comp-n1)
		} else {
			sval += w.srcVecComp(v1, comp)
		}
		sep = ", "
	}
	return sval + "))", nil
}

// translateFloatToInt renders a float-to-integer conversion with
// saturation and rounding. Without an explicit decoration the rounding
// defaults to rtz, and saturating conversions force NaN inputs to zero
// (SPIR-V requires it where OpenCL C only recommends it).
func (w *Writer) translateFloatToInt(inst *spirv.Instruction) string {
	op := inst.IDOperand(0)
	_, sat := w.saturated[inst.Result]

	sval := "convert_"
	if inst.Opcode == spirv.OpConvertFToU {
		sval += w.srcType(inst.Type)
	} else {
		sval += w.srcTypeSigned(inst.Type)
	}
	if sat {
		sval += "_sat"
	}
	if mode, ok := w.roundingModes[inst.Result]; ok {
		sval += "_" + mode.String()
	} else {
		sval += "_" + spirv.FPRoundingRTZ.String()
	}
	sval += "(" + w.varFor(op) + ")"

	if sat {
		sval = w.callIDs("isnan", op) + " ? 0 : " + sval
	}
	return sval
}

// translateIntToFloat renders an integer-to-float conversion.
func (w *Writer) translateIntToFloat(inst *spirv.Instruction) string {
	op := inst.IDOperand(0)
	_, sat := w.saturated[inst.Result]

	sval := "convert_" + w.srcType(inst.Type)
	if sat {
		sval += "_sat"
	}
	if mode, ok := w.roundingModes[inst.Result]; ok {
		sval += "_" + mode.String()
	}
	return sval + "(" + w.varFor(op) + ")"
}

// translateControlBarrier checks the scope and semantics operands and
// emits the matching barrier() fence flags.
func (w *Writer) translateControlBarrier(inst *spirv.Instruction) (string, error) {
	execScope, ok := w.constantScope(inst.IDOperand(0))
	if !ok {
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier with a non-constant execution scope")
	}
	if execScope != spirv.ScopeWorkgroup {
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier with a non-workgroup execution scope")
	}

	memScope, ok := w.constantScope(inst.IDOperand(1))
	if !ok {
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier with a non-constant memory scope")
	}
	var flags string
	switch memScope {
	case spirv.ScopeWorkgroup:
		flags = "CLK_LOCAL_MEM_FENCE"
	case spirv.ScopeDevice:
		flags = "CLK_GLOBAL_MEM_FENCE"
	default:
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier memory scope %d", memScope)
	}

	semValue, ok := w.module.ConstantValue(inst.IDOperand(2))
	if !ok {
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier with non-constant memory semantics")
	}
	sem := spirv.MemorySemantics(semValue)
	if sem != spirv.MemorySemanticsSequentiallyConsistent|spirv.MemorySemanticsWorkgroupMemory &&
		sem != spirv.MemorySemanticsSequentiallyConsistent|spirv.MemorySemanticsCrossWorkgroupMemory {
		return "", errorf(ErrUnsupportedBarrier, "OpControlBarrier memory semantics %#x", sem)
	}

	return w.call("barrier", flags), nil
}

// translateAsyncCopy lowers OpGroupAsyncCopy, choosing the strided
// variant unless the stride is the constant 1.
func (w *Writer) translateAsyncCopy(inst *spirv.Instruction) (string, error) {
	scope, ok := w.constantScope(inst.IDOperand(0))
	if !ok {
		return "", errorf(ErrUnsupportedBarrier, "OpGroupAsyncCopy with a non-constant execution scope")
	}
	if scope != spirv.ScopeWorkgroup {
		return "", errorf(ErrUnsupportedBarrier, "OpGroupAsyncCopy with a non-workgroup execution scope")
	}

	dst := inst.IDOperand(1)
	src := inst.IDOperand(2)
	numElems := inst.IDOperand(3)
	stride := inst.IDOperand(4)
	event := inst.IDOperand(5)

	if v, ok := w.module.ConstantValue(stride); ok && v == 1 {
		return w.callIDs("async_work_group_copy", dst, src, numElems, event), nil
	}
	return w.callIDs("async_work_group_strided_copy", dst, src, numElems, stride, event), nil
}
