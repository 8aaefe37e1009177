// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"

	"github.com/gogpu/spirv2clc/spirv"
)

// extFn is an OpenCL.std instruction's C spelling plus a flag asking
// for signed reinterpretation of its inputs and output.
type extFn struct {
	name   string
	signed bool
}

// extendedUnary enumerates the one-argument OpenCL.std instructions
// that lower to a like-named builtin call.
var extendedUnary = map[spirv.ExtInst]string{
	spirv.OpenCLStdUAbs:          "abs",
	spirv.OpenCLStdAcos:          "acos",
	spirv.OpenCLStdAcosh:         "acosh",
	spirv.OpenCLStdAcospi:        "acospi",
	spirv.OpenCLStdAsin:          "asin",
	spirv.OpenCLStdAsinh:         "asinh",
	spirv.OpenCLStdAsinpi:        "asinpi",
	spirv.OpenCLStdAtan:          "atan",
	spirv.OpenCLStdAtanh:         "atanh",
	spirv.OpenCLStdAtanpi:        "atanpi",
	spirv.OpenCLStdCbrt:          "cbrt",
	spirv.OpenCLStdCeil:          "ceil",
	spirv.OpenCLStdClz:           "clz",
	spirv.OpenCLStdCos:           "cos",
	spirv.OpenCLStdCosh:          "cosh",
	spirv.OpenCLStdCospi:         "cospi",
	spirv.OpenCLStdDegrees:       "degrees",
	spirv.OpenCLStdExp:           "exp",
	spirv.OpenCLStdExp2:          "exp2",
	spirv.OpenCLStdExp10:         "exp10",
	spirv.OpenCLStdExpm1:         "expm1",
	spirv.OpenCLStdFabs:          "fabs",
	spirv.OpenCLStdFastLength:    "fast_length",
	spirv.OpenCLStdFastNormalize: "fast_normalize",
	spirv.OpenCLStdFloor:         "floor",
	spirv.OpenCLStdHalfCos:       "half_cos",
	spirv.OpenCLStdHalfExp:       "half_exp",
	spirv.OpenCLStdHalfExp2:      "half_exp2",
	spirv.OpenCLStdHalfExp10:     "half_exp10",
	spirv.OpenCLStdHalfLog:       "half_log",
	spirv.OpenCLStdHalfLog2:      "half_log2",
	spirv.OpenCLStdHalfLog10:     "half_log10",
	spirv.OpenCLStdHalfRecip:     "half_recip",
	spirv.OpenCLStdHalfRsqrt:     "half_rsqrt",
	spirv.OpenCLStdHalfSin:       "half_sin",
	spirv.OpenCLStdHalfSqrt:      "half_sqrt",
	spirv.OpenCLStdHalfTan:       "half_tan",
	spirv.OpenCLStdIlogb:         "ilogb",
	spirv.OpenCLStdLength:        "length",
	spirv.OpenCLStdLgamma:        "lgamma",
	spirv.OpenCLStdLog:           "log",
	spirv.OpenCLStdLog2:          "log2",
	spirv.OpenCLStdLog10:         "log10",
	spirv.OpenCLStdLog1p:         "log1p",
	spirv.OpenCLStdLogb:          "logb",
	spirv.OpenCLStdNan:           "nan",
	spirv.OpenCLStdNormalize:     "normalize",
	spirv.OpenCLStdRadians:       "radians",
	spirv.OpenCLStdRint:          "rint",
	spirv.OpenCLStdRound:         "round",
	spirv.OpenCLStdRsqrt:         "rsqrt",
	spirv.OpenCLStdSign:          "sign",
	spirv.OpenCLStdSin:           "sin",
	spirv.OpenCLStdSinh:          "sinh",
	spirv.OpenCLStdSinpi:         "sinpi",
	spirv.OpenCLStdSqrt:          "sqrt",
	spirv.OpenCLStdTan:           "tan",
	spirv.OpenCLStdTanh:          "tanh",
	spirv.OpenCLStdTanpi:         "tanpi",
	spirv.OpenCLStdTrunc:         "trunc",
}

// extendedBinary enumerates the two-argument instructions.
var extendedBinary = map[spirv.ExtInst]extFn{
	spirv.OpenCLStdUAbsDiff:     {"abs_diff", false},
	spirv.OpenCLStdSHadd:        {"hadd", true},
	spirv.OpenCLStdUHadd:        {"hadd", false},
	spirv.OpenCLStdSMulHi:       {"mul_hi", true},
	spirv.OpenCLStdUMulHi:       {"mul_hi", false},
	spirv.OpenCLStdSRhadd:       {"rhadd", true},
	spirv.OpenCLStdURhadd:       {"rhadd", false},
	spirv.OpenCLStdRotate:       {"rotate", false},
	spirv.OpenCLStdSAddSat:      {"add_sat", true},
	spirv.OpenCLStdUAddSat:      {"add_sat", false},
	spirv.OpenCLStdSSubSat:      {"sub_sat", true},
	spirv.OpenCLStdUSubSat:      {"sub_sat", false},
	spirv.OpenCLStdSMul24:       {"mul24", true},
	spirv.OpenCLStdUMul24:       {"mul24", false},
	spirv.OpenCLStdShuffle:      {"shuffle", false},
	spirv.OpenCLStdAtan2:        {"atan2", false},
	spirv.OpenCLStdAtan2pi:      {"atan2pi", false},
	spirv.OpenCLStdCopysign:     {"copysign", false},
	spirv.OpenCLStdFdim:         {"fdim", false},
	spirv.OpenCLStdFmax:         {"fmax", false},
	spirv.OpenCLStdFmin:         {"fmin", false},
	spirv.OpenCLStdFmod:         {"fmod", false},
	spirv.OpenCLStdHypot:        {"hypot", false},
	spirv.OpenCLStdLdexp:        {"ldexp", false},
	spirv.OpenCLStdMaxmag:       {"maxmag", false},
	spirv.OpenCLStdMinmag:       {"minmag", false},
	spirv.OpenCLStdModf:         {"modf", false},
	spirv.OpenCLStdNextafter:    {"nextafter", false},
	spirv.OpenCLStdPow:          {"pow", false},
	spirv.OpenCLStdPown:         {"pown", false},
	spirv.OpenCLStdPowr:         {"powr", false},
	spirv.OpenCLStdRemainder:    {"remainder", false},
	spirv.OpenCLStdRootn:        {"rootn", false},
	spirv.OpenCLStdSincos:       {"sincos", false},
	spirv.OpenCLStdFract:        {"fract", false},
	spirv.OpenCLStdHalfDivide:   {"half_divide", false},
	spirv.OpenCLStdHalfPowr:     {"half_powr", false},
	spirv.OpenCLStdCross:        {"cross", false},
	spirv.OpenCLStdDistance:     {"distance", false},
	spirv.OpenCLStdFastDistance: {"fast_distance", false},
	spirv.OpenCLStdStep:         {"step", false},
	spirv.OpenCLStdSUpsample:    {"upsample", true},
	spirv.OpenCLStdUUpsample:    {"upsample", false},
	spirv.OpenCLStdSMax:         {"max", true},
	spirv.OpenCLStdUMax:         {"max", false},
	spirv.OpenCLStdSMin:         {"min", true},
	spirv.OpenCLStdUMin:         {"min", false},
	spirv.OpenCLStdVloadHalf:    {"vload_half", false},
}

// extendedTernary enumerates the three-argument instructions.
var extendedTernary = map[spirv.ExtInst]extFn{
	spirv.OpenCLStdBitselect:  {"bitselect", false},
	spirv.OpenCLStdFClamp:     {"clamp", false},
	spirv.OpenCLStdSClamp:     {"clamp", true},
	spirv.OpenCLStdUClamp:     {"clamp", false},
	spirv.OpenCLStdFma:        {"fma", false},
	spirv.OpenCLStdMad:        {"mad", false},
	spirv.OpenCLStdMix:        {"mix", false},
	spirv.OpenCLStdSMad24:     {"mad24", true},
	spirv.OpenCLStdUMad24:     {"mad24", false},
	spirv.OpenCLStdSMadHi:     {"mad_hi", true},
	spirv.OpenCLStdUMadHi:     {"mad_hi", false},
	spirv.OpenCLStdSMadSat:    {"mad_sat", true},
	spirv.OpenCLStdUMadSat:    {"mad_sat", false},
	spirv.OpenCLStdSelect:     {"select", false},
	spirv.OpenCLStdShuffle2:   {"shuffle2", false},
	spirv.OpenCLStdSmoothstep: {"smoothstep", false},
}

// translateExtendedInstruction lowers one OpExtInst. The returned text
// is a complete statement, result assignment included.
func (w *Writer) translateExtendedInstruction(inst *spirv.Instruction) (string, error) {
	result := inst.Result
	instruction := spirv.ExtInst(inst.Word(1))
	args := inst.Operands[2:]

	var sval string
	assignResult := true
	var src string

	switch {
	case extendedUnary[instruction] != "":
		sval = w.callIDs(extendedUnary[instruction], spirv.ID(args[0]))

	case extendedBinary[instruction].name != "":
		fn := extendedBinary[instruction]
		if fn.signed {
			sval = w.srcAs(inst.Type, w.callSigned(fn.name, spirv.ID(args[0]), spirv.ID(args[1])))
		} else {
			sval = w.callIDs(fn.name, spirv.ID(args[0]), spirv.ID(args[1]))
		}

	case extendedTernary[instruction].name != "":
		fn := extendedTernary[instruction]
		if fn.signed {
			sval = w.srcAs(inst.Type,
				w.callSigned(fn.name, spirv.ID(args[0]), spirv.ID(args[1]), spirv.ID(args[2])))
		} else {
			sval = w.callIDs(fn.name, spirv.ID(args[0]), spirv.ID(args[1]), spirv.ID(args[2]))
		}

	default:
		var err error
		src, sval, assignResult, err = w.translateExtendedSpecial(instruction, args)
		if err != nil {
			return "", err
		}
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

// translateExtendedSpecial handles the vector load/store family, the
// signed-pointer out-parameter calls, and printf.
func (w *Writer) translateExtendedSpecial(instruction spirv.ExtInst, args []uint32) (string, string, bool, error) {
	id := func(i int) spirv.ID { return spirv.ID(args[i]) }

	var src, sval string
	assign := true

	switch instruction {
	case spirv.OpenCLStdVloadn:
		sval = w.callIDs(fmt.Sprintf("vload%d", args[2]), id(0), id(1))

	case spirv.OpenCLStdVloadHalfn:
		sval = w.callIDs(fmt.Sprintf("vload_half%d", args[2]), id(0), id(1))

	case spirv.OpenCLStdVloadaHalfn:
		sval = w.callIDs(fmt.Sprintf("vloada_half%d", args[2]), id(0), id(1))

	case spirv.OpenCLStdVstoren:
		n, err := w.vectorWidthOf(id(0))
		if err != nil {
			return "", "", false, err
		}
		src = w.callIDs(fmt.Sprintf("vstore%d", n), id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdVstoreHalf:
		src = w.callIDs("vstore_half", id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdVstoreHalfR:
		mode := spirv.FPRoundingMode(args[3])
		src = w.callIDs("vstore_half_"+mode.String(), id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdVstoreHalfn:
		n, err := w.vectorWidthOf(id(0))
		if err != nil {
			return "", "", false, err
		}
		src = w.callIDs(fmt.Sprintf("vstore_half%d", n), id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdVstoreaHalfn:
		n, err := w.vectorWidthOf(id(0))
		if err != nil {
			return "", "", false, err
		}
		src = w.callIDs(fmt.Sprintf("vstorea_half%d", n), id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdVstoreaHalfnR:
		n, err := w.vectorWidthOf(id(0))
		if err != nil {
			return "", "", false, err
		}
		mode := spirv.FPRoundingMode(args[3])
		src = w.callIDs(fmt.Sprintf("vstorea_half%d_%s", n, mode), id(0), id(1), id(2))
		assign = false

	case spirv.OpenCLStdSAbs:
		sval = w.callSigned("abs", id(0))

	case spirv.OpenCLStdSAbsDiff:
		sval = w.callSigned("abs_diff", id(0), id(1))

	case spirv.OpenCLStdFrexp:
		sval = w.call("frexp", w.varFor(id(0)),
			w.srcCastSigned(w.typeIDFor(id(1)), w.varFor(id(1))))

	case spirv.OpenCLStdLgammaR:
		sval = w.call("lgamma_r", w.varFor(id(0)),
			w.srcCastSigned(w.typeIDFor(id(1)), w.varFor(id(1))))

	case spirv.OpenCLStdRemquo:
		sval = w.call("remquo", w.varFor(id(0)), w.varFor(id(1)),
			w.srcCastSigned(w.typeIDFor(id(2)), w.varFor(id(2))))

	case spirv.OpenCLStdPrintf:
		srcArgs := w.varFor(id(0))
		for i := 1; i < len(args); i++ {
			srcArgs += ", " + w.varFor(id(i))
		}
		sval = w.call("printf", srcArgs)

	default:
		return "", "", false, errorf(ErrUnsupportedExtInst, "extended instruction %d", instruction)
	}

	return src, sval, assign, nil
}

// vectorWidthOf returns the element count of a vector value.
func (w *Writer) vectorWidthOf(val spirv.ID) (uint32, error) {
	def := w.typeDef(w.typeIDFor(val))
	if def == nil || def.Opcode != spirv.OpTypeVector {
		return 0, errorf(ErrInternal, "%%%d is not a vector value", val)
	}
	return def.Word(1), nil
}
