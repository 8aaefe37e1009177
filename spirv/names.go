// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

// Operand-name tables used by the assembler. Each maps the assembly
// spelling of an enumerant to its word value.

var capabilityNames = map[string]uint32{
	"Matrix":         0,
	"Shader":         1,
	"Geometry":       2,
	"Tessellation":   3,
	"Addresses":      4,
	"Linkage":        5,
	"Kernel":         6,
	"Vector16":       7,
	"Float16Buffer":  8,
	"Float16":        9,
	"Float64":        10,
	"Int64":          11,
	"Int64Atomics":   12,
	"ImageBasic":     13,
	"ImageReadWrite": 14,
	"ImageMipmap":    15,
	"Pipes":          17,
	"Groups":         18,
	"DeviceEnqueue":  19,
	"LiteralSampler": 20,
	"AtomicStorage":  21,
	"Int16":          22,
	"Int8":           39,
}

var addressingModelNames = map[string]uint32{
	"Logical":    0,
	"Physical32": 1,
	"Physical64": 2,
}

var memoryModelNames = map[string]uint32{
	"Simple":  0,
	"GLSL450": 1,
	"OpenCL":  2,
}

var executionModelNames = map[string]uint32{
	"Vertex":    0,
	"Fragment":  4,
	"GLCompute": 5,
	"Kernel":    6,
}

var executionModeNames = map[string]uint32{
	"LocalSize":      17,
	"LocalSizeHint":  18,
	"VecTypeHint":    30,
	"ContractionOff": 31,
}

var storageClassNames = map[string]uint32{
	"UniformConstant": 0,
	"Input":           1,
	"Uniform":         2,
	"Output":          3,
	"Workgroup":       4,
	"CrossWorkgroup":  5,
	"Private":         6,
	"Function":        7,
	"Generic":         8,
}

var dimNames = map[string]uint32{
	"1D":     0,
	"2D":     1,
	"3D":     2,
	"Cube":   3,
	"Rect":   4,
	"Buffer": 5,
}

var samplerAddressingModeNames = map[string]uint32{
	"None":           0,
	"ClampToEdge":    1,
	"Clamp":          2,
	"Repeat":         3,
	"RepeatMirrored": 4,
}

var samplerFilterModeNames = map[string]uint32{
	"Nearest": 0,
	"Linear":  1,
}

var accessQualifierNames = map[string]uint32{
	"ReadOnly":  0,
	"WriteOnly": 1,
	"ReadWrite": 2,
}

var imageFormatNames = map[string]uint32{
	"Unknown":    0,
	"Rgba32f":    1,
	"Rgba16f":    2,
	"R32f":       3,
	"Rgba8":      4,
	"Rgba8Snorm": 5,
	"Rg32f":      6,
	"Rg16f":      7,
	"Rgba32i":    21,
	"Rgba16i":    22,
	"Rgba8i":     23,
	"R32i":       24,
	"Rgba32ui":   30,
	"Rgba16ui":   31,
	"Rgba8ui":    32,
	"R32ui":      33,
}

var decorationNames = map[string]uint32{
	"RelaxedPrecision":    0,
	"SpecId":              1,
	"CPacked":             10,
	"BuiltIn":             11,
	"Restrict":            19,
	"Aliased":             20,
	"Volatile":            21,
	"Constant":            22,
	"Coherent":            23,
	"NonWritable":         24,
	"NonReadable":         25,
	"Uniform":             26,
	"SaturatedConversion": 28,
	"FuncParamAttr":       38,
	"FPRoundingMode":      39,
	"FPFastMathMode":      40,
	"LinkageAttributes":   41,
	"Alignment":           44,
	"NoSignedWrap":        4469,
	"NoUnsignedWrap":      4470,
}

var builtInNames = map[string]uint32{
	"NumWorkgroups":         24,
	"WorkgroupSize":         25,
	"WorkgroupId":           26,
	"LocalInvocationId":     27,
	"GlobalInvocationId":    28,
	"LocalInvocationIndex":  29,
	"WorkDim":               30,
	"GlobalSize":            31,
	"EnqueuedWorkgroupSize": 32,
	"GlobalOffset":          33,
	"GlobalLinearId":        34,
}

var funcParamAttrNames = map[string]uint32{
	"Zext":        0,
	"Sext":        1,
	"ByVal":       2,
	"Sret":        3,
	"NoAlias":     4,
	"NoCapture":   5,
	"NoWrite":     6,
	"NoReadWrite": 7,
}

var fpRoundingModeNames = map[string]uint32{
	"RTE": 0,
	"RTZ": 1,
	"RTP": 2,
	"RTN": 3,
}

var fpFastMathModeNames = map[string]uint32{
	"None":       0,
	"NotNaN":     0x1,
	"NotInf":     0x2,
	"NSZ":        0x4,
	"AllowRecip": 0x8,
	"Fast":       0x10,
}

var linkageTypeNames = map[string]uint32{
	"Export": 0,
	"Import": 1,
}

var functionControlNames = map[string]uint32{
	"None":       0,
	"Inline":     0x1,
	"DontInline": 0x2,
	"Pure":       0x4,
	"Const":      0x8,
}

var memoryAccessNames = map[string]uint32{
	"None":        0,
	"Volatile":    0x1,
	"Aligned":     0x2,
	"Nontemporal": 0x4,
}

var imageOperandsNames = map[string]uint32{
	"None":        0,
	"Bias":        0x1,
	"Lod":         0x2,
	"Grad":        0x4,
	"ConstOffset": 0x8,
	"Offset":      0x10,
	"Sample":      0x40,
}

var loopControlNames = map[string]uint32{
	"None":       0,
	"Unroll":     0x1,
	"DontUnroll": 0x2,
}

var selectionControlNames = map[string]uint32{
	"None":        0,
	"Flatten":     0x1,
	"DontFlatten": 0x2,
}

var sourceLanguageNames = map[string]uint32{
	"Unknown":    0,
	"ESSL":       1,
	"GLSL":       2,
	"OpenCL_C":   3,
	"OpenCL_CPP": 4,
	"HLSL":       5,
}
