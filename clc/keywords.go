// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

// reservedIdentifiers contains every identifier the generated source
// must not shadow: C90 and C99 keywords, the OpenCL C built-in and
// reserved data types, and the address-space, function and access
// qualifiers.
var reservedIdentifiers = map[string]struct{}{
	// ANSI / ISO C90
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extern": {}, "float": {}, "for": {}, "goto": {},
	"if": {}, "int": {}, "long": {}, "register": {}, "return": {},
	"short": {}, "signed": {}, "sizeof": {}, "static": {}, "struct": {},
	"switch": {}, "typedef": {}, "union": {}, "unsigned": {}, "void": {},
	"volatile": {}, "while": {},

	// C99
	"_Bool": {}, "_Complex": {}, "_Imaginary": {}, "inline": {}, "restrict": {},

	// OpenCL C built-in vector data types
	"char2": {}, "char3": {}, "char4": {}, "char8": {}, "char16": {},
	"uchar2": {}, "uchar3": {}, "uchar4": {}, "uchar8": {}, "uchar16": {},
	"short2": {}, "short3": {}, "short4": {}, "short8": {}, "short16": {},
	"ushort2": {}, "ushort3": {}, "ushort4": {}, "ushort8": {}, "ushort16": {},
	"int2": {}, "int3": {}, "int4": {}, "int8": {}, "int16": {},
	"uint2": {}, "uint3": {}, "uint4": {}, "uint8": {}, "uint16": {},
	"long2": {}, "long3": {}, "long4": {}, "long8": {}, "long16": {},
	"ulong2": {}, "ulong3": {}, "ulong4": {}, "ulong8": {}, "ulong16": {},
	"float2": {}, "float3": {}, "float4": {}, "float8": {}, "float16": {},
	"double2": {}, "double3": {}, "double4": {}, "double8": {}, "double16": {},

	// OpenCL C other built-in data types
	"image2d_t": {}, "image3d_t": {}, "image2d_array_t": {}, "image1d_t": {},
	"image1d_buffer_t": {}, "image1d_array_t": {}, "image2d_depth_t": {},
	"image2d_array_depth_t": {}, "sampler_t": {}, "queue_t": {},
	"ndrange_t": {}, "clk_event_t": {}, "reserve_id_t": {}, "event_t": {},
	"clk_mem_fence_flags": {},

	// OpenCL C reserved data types
	"bool2": {}, "bool3": {}, "bool4": {}, "bool8": {}, "bool16": {},
	"half2": {}, "half3": {}, "half4": {}, "half8": {}, "half16": {},
	"quad": {}, "quad2": {}, "quad3": {}, "quad4": {}, "quad8": {}, "quad16": {},
	"complex": {}, "imaginary": {},

	// OpenCL C address space qualifiers
	"__global": {}, "global": {}, "__local": {}, "local": {},
	"__constant": {}, "constant": {}, "__private": {}, "private": {},
	"__generic": {}, "generic": {},

	// OpenCL C function qualifiers
	"__kernel": {}, "kernel": {},

	// OpenCL C access qualifiers
	"__read_only": {}, "read_only": {}, "__write_only": {}, "write_only": {},
	"__read_write": {}, "read_write": {},

	// OpenCL C misc
	"uniform": {}, "pipe": {},
}

// madeValidSuffix is appended to identifiers that collide with a
// reserved word.
const madeValidSuffix = "_MADE_VALID_CLC_IDENT"
