// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

// ExtInst is an instruction number in an extended instruction set.
type ExtInst uint32

// OpenCLStd is the name of the only extended instruction set accepted
// in the OpenCL environment.
const OpenCLStd = "OpenCL.std"

// OpenCL.std entry points.
const (
	OpenCLStdAcos           ExtInst = 0
	OpenCLStdAcosh          ExtInst = 1
	OpenCLStdAcospi         ExtInst = 2
	OpenCLStdAsin           ExtInst = 3
	OpenCLStdAsinh          ExtInst = 4
	OpenCLStdAsinpi         ExtInst = 5
	OpenCLStdAtan           ExtInst = 6
	OpenCLStdAtan2          ExtInst = 7
	OpenCLStdAtanh          ExtInst = 8
	OpenCLStdAtanpi         ExtInst = 9
	OpenCLStdAtan2pi        ExtInst = 10
	OpenCLStdCbrt           ExtInst = 11
	OpenCLStdCeil           ExtInst = 12
	OpenCLStdCopysign       ExtInst = 13
	OpenCLStdCos            ExtInst = 14
	OpenCLStdCosh           ExtInst = 15
	OpenCLStdCospi          ExtInst = 16
	OpenCLStdErfc           ExtInst = 17
	OpenCLStdErf            ExtInst = 18
	OpenCLStdExp            ExtInst = 19
	OpenCLStdExp2           ExtInst = 20
	OpenCLStdExp10          ExtInst = 21
	OpenCLStdExpm1          ExtInst = 22
	OpenCLStdFabs           ExtInst = 23
	OpenCLStdFdim           ExtInst = 24
	OpenCLStdFloor          ExtInst = 25
	OpenCLStdFma            ExtInst = 26
	OpenCLStdFmax           ExtInst = 27
	OpenCLStdFmin           ExtInst = 28
	OpenCLStdFmod           ExtInst = 29
	OpenCLStdFract          ExtInst = 30
	OpenCLStdFrexp          ExtInst = 31
	OpenCLStdHypot          ExtInst = 32
	OpenCLStdIlogb          ExtInst = 33
	OpenCLStdLdexp          ExtInst = 34
	OpenCLStdLgamma         ExtInst = 35
	OpenCLStdLgammaR        ExtInst = 36
	OpenCLStdLog            ExtInst = 37
	OpenCLStdLog2           ExtInst = 38
	OpenCLStdLog10          ExtInst = 39
	OpenCLStdLog1p          ExtInst = 40
	OpenCLStdLogb           ExtInst = 41
	OpenCLStdMad            ExtInst = 42
	OpenCLStdMaxmag         ExtInst = 43
	OpenCLStdMinmag         ExtInst = 44
	OpenCLStdModf           ExtInst = 45
	OpenCLStdNan            ExtInst = 46
	OpenCLStdNextafter      ExtInst = 47
	OpenCLStdPow            ExtInst = 48
	OpenCLStdPown           ExtInst = 49
	OpenCLStdPowr           ExtInst = 50
	OpenCLStdRemainder      ExtInst = 51
	OpenCLStdRemquo         ExtInst = 52
	OpenCLStdRint           ExtInst = 53
	OpenCLStdRootn          ExtInst = 54
	OpenCLStdRound          ExtInst = 55
	OpenCLStdRsqrt          ExtInst = 56
	OpenCLStdSin            ExtInst = 57
	OpenCLStdSincos         ExtInst = 58
	OpenCLStdSinh           ExtInst = 59
	OpenCLStdSinpi          ExtInst = 60
	OpenCLStdSqrt           ExtInst = 61
	OpenCLStdTan            ExtInst = 62
	OpenCLStdTanh           ExtInst = 63
	OpenCLStdTanpi          ExtInst = 64
	OpenCLStdTrunc          ExtInst = 65
	OpenCLStdHalfCos        ExtInst = 66
	OpenCLStdHalfDivide     ExtInst = 67
	OpenCLStdHalfExp        ExtInst = 68
	OpenCLStdHalfExp2       ExtInst = 69
	OpenCLStdHalfExp10      ExtInst = 70
	OpenCLStdHalfLog        ExtInst = 71
	OpenCLStdHalfLog2       ExtInst = 72
	OpenCLStdHalfLog10      ExtInst = 73
	OpenCLStdHalfPowr       ExtInst = 74
	OpenCLStdHalfRecip      ExtInst = 75
	OpenCLStdHalfRsqrt      ExtInst = 76
	OpenCLStdHalfSin        ExtInst = 77
	OpenCLStdHalfSqrt       ExtInst = 78
	OpenCLStdHalfTan        ExtInst = 79
	OpenCLStdNativeCos      ExtInst = 80
	OpenCLStdNativeDivide   ExtInst = 81
	OpenCLStdNativeExp      ExtInst = 82
	OpenCLStdNativeExp2     ExtInst = 83
	OpenCLStdNativeExp10    ExtInst = 84
	OpenCLStdNativeLog      ExtInst = 85
	OpenCLStdNativeLog2     ExtInst = 86
	OpenCLStdNativeLog10    ExtInst = 87
	OpenCLStdNativePowr     ExtInst = 88
	OpenCLStdNativeRecip    ExtInst = 89
	OpenCLStdNativeRsqrt    ExtInst = 90
	OpenCLStdNativeSin      ExtInst = 91
	OpenCLStdNativeSqrt     ExtInst = 92
	OpenCLStdNativeTan      ExtInst = 93
	OpenCLStdFClamp         ExtInst = 95
	OpenCLStdDegrees        ExtInst = 96
	OpenCLStdFMaxCommon     ExtInst = 97
	OpenCLStdFMinCommon     ExtInst = 98
	OpenCLStdMix            ExtInst = 99
	OpenCLStdRadians        ExtInst = 100
	OpenCLStdStep           ExtInst = 101
	OpenCLStdSmoothstep     ExtInst = 102
	OpenCLStdSign           ExtInst = 103
	OpenCLStdCross          ExtInst = 104
	OpenCLStdDistance       ExtInst = 105
	OpenCLStdLength         ExtInst = 106
	OpenCLStdNormalize      ExtInst = 107
	OpenCLStdFastDistance   ExtInst = 108
	OpenCLStdFastLength     ExtInst = 109
	OpenCLStdFastNormalize  ExtInst = 110
	OpenCLStdSAbs           ExtInst = 141
	OpenCLStdSAbsDiff       ExtInst = 142
	OpenCLStdSAddSat        ExtInst = 143
	OpenCLStdUAddSat        ExtInst = 144
	OpenCLStdSHadd          ExtInst = 145
	OpenCLStdUHadd          ExtInst = 146
	OpenCLStdSRhadd         ExtInst = 147
	OpenCLStdURhadd         ExtInst = 148
	OpenCLStdSClamp         ExtInst = 149
	OpenCLStdUClamp         ExtInst = 150
	OpenCLStdClz            ExtInst = 151
	OpenCLStdCtz            ExtInst = 152
	OpenCLStdSMadHi         ExtInst = 153
	OpenCLStdUMadSat        ExtInst = 154
	OpenCLStdSMadSat        ExtInst = 155
	OpenCLStdSMax           ExtInst = 156
	OpenCLStdUMax           ExtInst = 157
	OpenCLStdSMin           ExtInst = 158
	OpenCLStdUMin           ExtInst = 159
	OpenCLStdSMulHi         ExtInst = 160
	OpenCLStdRotate         ExtInst = 161
	OpenCLStdSSubSat        ExtInst = 162
	OpenCLStdUSubSat        ExtInst = 163
	OpenCLStdUUpsample      ExtInst = 164
	OpenCLStdSUpsample      ExtInst = 165
	OpenCLStdPopcount       ExtInst = 166
	OpenCLStdSMad24         ExtInst = 167
	OpenCLStdUMad24         ExtInst = 168
	OpenCLStdSMul24         ExtInst = 169
	OpenCLStdUMul24         ExtInst = 170
	OpenCLStdVloadn         ExtInst = 171
	OpenCLStdVstoren        ExtInst = 172
	OpenCLStdVloadHalf      ExtInst = 173
	OpenCLStdVstoreHalf     ExtInst = 174
	OpenCLStdVstoreHalfR    ExtInst = 175
	OpenCLStdVloadHalfn     ExtInst = 176
	OpenCLStdVstoreHalfn    ExtInst = 177
	OpenCLStdVstoreHalfnR   ExtInst = 178
	OpenCLStdVloadaHalfn    ExtInst = 179
	OpenCLStdVstoreaHalfn   ExtInst = 180
	OpenCLStdVstoreaHalfnR  ExtInst = 181
	OpenCLStdShuffle        ExtInst = 182
	OpenCLStdShuffle2       ExtInst = 183
	OpenCLStdPrintf         ExtInst = 184
	OpenCLStdPrefetch       ExtInst = 185
	OpenCLStdBitselect      ExtInst = 186
	OpenCLStdSelect         ExtInst = 187
	OpenCLStdUAbs           ExtInst = 201
	OpenCLStdUAbsDiff       ExtInst = 202
	OpenCLStdUMulHi         ExtInst = 203
	OpenCLStdUMadHi         ExtInst = 204
)

// openclStdNames maps assembly spellings of OpenCL.std entry points to
// their instruction numbers.
var openclStdNames = map[string]ExtInst{
	"acos": OpenCLStdAcos, "acosh": OpenCLStdAcosh, "acospi": OpenCLStdAcospi,
	"asin": OpenCLStdAsin, "asinh": OpenCLStdAsinh, "asinpi": OpenCLStdAsinpi,
	"atan": OpenCLStdAtan, "atan2": OpenCLStdAtan2, "atanh": OpenCLStdAtanh,
	"atanpi": OpenCLStdAtanpi, "atan2pi": OpenCLStdAtan2pi,
	"cbrt": OpenCLStdCbrt, "ceil": OpenCLStdCeil, "copysign": OpenCLStdCopysign,
	"cos": OpenCLStdCos, "cosh": OpenCLStdCosh, "cospi": OpenCLStdCospi,
	"erfc": OpenCLStdErfc, "erf": OpenCLStdErf,
	"exp": OpenCLStdExp, "exp2": OpenCLStdExp2, "exp10": OpenCLStdExp10,
	"expm1": OpenCLStdExpm1, "fabs": OpenCLStdFabs, "fdim": OpenCLStdFdim,
	"floor": OpenCLStdFloor, "fma": OpenCLStdFma, "fmax": OpenCLStdFmax,
	"fmin": OpenCLStdFmin, "fmod": OpenCLStdFmod, "fract": OpenCLStdFract,
	"frexp": OpenCLStdFrexp, "hypot": OpenCLStdHypot, "ilogb": OpenCLStdIlogb,
	"ldexp": OpenCLStdLdexp, "lgamma": OpenCLStdLgamma, "lgamma_r": OpenCLStdLgammaR,
	"log": OpenCLStdLog, "log2": OpenCLStdLog2, "log10": OpenCLStdLog10,
	"log1p": OpenCLStdLog1p, "logb": OpenCLStdLogb, "mad": OpenCLStdMad,
	"maxmag": OpenCLStdMaxmag, "minmag": OpenCLStdMinmag, "modf": OpenCLStdModf,
	"nan": OpenCLStdNan, "nextafter": OpenCLStdNextafter, "pow": OpenCLStdPow,
	"pown": OpenCLStdPown, "powr": OpenCLStdPowr, "remainder": OpenCLStdRemainder,
	"remquo": OpenCLStdRemquo, "rint": OpenCLStdRint, "rootn": OpenCLStdRootn,
	"round": OpenCLStdRound, "rsqrt": OpenCLStdRsqrt, "sin": OpenCLStdSin,
	"sincos": OpenCLStdSincos, "sinh": OpenCLStdSinh, "sinpi": OpenCLStdSinpi,
	"sqrt": OpenCLStdSqrt, "tan": OpenCLStdTan, "tanh": OpenCLStdTanh,
	"tanpi": OpenCLStdTanpi, "trunc": OpenCLStdTrunc,
	"half_cos": OpenCLStdHalfCos, "half_divide": OpenCLStdHalfDivide,
	"half_exp": OpenCLStdHalfExp, "half_exp2": OpenCLStdHalfExp2,
	"half_exp10": OpenCLStdHalfExp10, "half_log": OpenCLStdHalfLog,
	"half_log2": OpenCLStdHalfLog2, "half_log10": OpenCLStdHalfLog10,
	"half_powr": OpenCLStdHalfPowr, "half_recip": OpenCLStdHalfRecip,
	"half_rsqrt": OpenCLStdHalfRsqrt, "half_sin": OpenCLStdHalfSin,
	"half_sqrt": OpenCLStdHalfSqrt, "half_tan": OpenCLStdHalfTan,
	"native_cos": OpenCLStdNativeCos, "native_divide": OpenCLStdNativeDivide,
	"native_exp": OpenCLStdNativeExp, "native_exp2": OpenCLStdNativeExp2,
	"native_exp10": OpenCLStdNativeExp10, "native_log": OpenCLStdNativeLog,
	"native_log2": OpenCLStdNativeLog2, "native_log10": OpenCLStdNativeLog10,
	"native_powr": OpenCLStdNativePowr, "native_recip": OpenCLStdNativeRecip,
	"native_rsqrt": OpenCLStdNativeRsqrt, "native_sin": OpenCLStdNativeSin,
	"native_sqrt": OpenCLStdNativeSqrt, "native_tan": OpenCLStdNativeTan,
	"fclamp": OpenCLStdFClamp, "degrees": OpenCLStdDegrees,
	"fmax_common": OpenCLStdFMaxCommon, "fmin_common": OpenCLStdFMinCommon,
	"mix": OpenCLStdMix, "radians": OpenCLStdRadians, "step": OpenCLStdStep,
	"smoothstep": OpenCLStdSmoothstep, "sign": OpenCLStdSign,
	"cross": OpenCLStdCross, "distance": OpenCLStdDistance,
	"length": OpenCLStdLength, "normalize": OpenCLStdNormalize,
	"fast_distance": OpenCLStdFastDistance, "fast_length": OpenCLStdFastLength,
	"fast_normalize": OpenCLStdFastNormalize,
	"s_abs": OpenCLStdSAbs, "s_abs_diff": OpenCLStdSAbsDiff,
	"s_add_sat": OpenCLStdSAddSat, "u_add_sat": OpenCLStdUAddSat,
	"s_hadd": OpenCLStdSHadd, "u_hadd": OpenCLStdUHadd,
	"s_rhadd": OpenCLStdSRhadd, "u_rhadd": OpenCLStdURhadd,
	"s_clamp": OpenCLStdSClamp, "u_clamp": OpenCLStdUClamp,
	"clz": OpenCLStdClz, "ctz": OpenCLStdCtz,
	"s_mad_hi": OpenCLStdSMadHi, "u_mad_sat": OpenCLStdUMadSat,
	"s_mad_sat": OpenCLStdSMadSat, "s_max": OpenCLStdSMax,
	"u_max": OpenCLStdUMax, "s_min": OpenCLStdSMin, "u_min": OpenCLStdUMin,
	"s_mul_hi": OpenCLStdSMulHi, "rotate": OpenCLStdRotate,
	"s_sub_sat": OpenCLStdSSubSat, "u_sub_sat": OpenCLStdUSubSat,
	"u_upsample": OpenCLStdUUpsample, "s_upsample": OpenCLStdSUpsample,
	"popcount": OpenCLStdPopcount,
	"s_mad24": OpenCLStdSMad24, "u_mad24": OpenCLStdUMad24,
	"s_mul24": OpenCLStdSMul24, "u_mul24": OpenCLStdUMul24,
	"vloadn": OpenCLStdVloadn, "vstoren": OpenCLStdVstoren,
	"vload_half": OpenCLStdVloadHalf, "vstore_half": OpenCLStdVstoreHalf,
	"vstore_half_r": OpenCLStdVstoreHalfR, "vload_halfn": OpenCLStdVloadHalfn,
	"vstore_halfn": OpenCLStdVstoreHalfn, "vstore_halfn_r": OpenCLStdVstoreHalfnR,
	"vloada_halfn": OpenCLStdVloadaHalfn, "vstorea_halfn": OpenCLStdVstoreaHalfn,
	"vstorea_halfn_r": OpenCLStdVstoreaHalfnR,
	"shuffle": OpenCLStdShuffle, "shuffle2": OpenCLStdShuffle2,
	"printf": OpenCLStdPrintf, "prefetch": OpenCLStdPrefetch,
	"bitselect": OpenCLStdBitselect, "select": OpenCLStdSelect,
	"u_abs": OpenCLStdUAbs, "u_abs_diff": OpenCLStdUAbsDiff,
	"u_mul_hi": OpenCLStdUMulHi, "u_mad_hi": OpenCLStdUMadHi,
}
