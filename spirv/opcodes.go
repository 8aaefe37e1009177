// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import "fmt"

// Opcode is a SPIR-V instruction opcode.
type Opcode uint16

// Opcodes of the OpenCL-profile subset the loader understands. The
// translator decides which of them it can actually lower.
const (
	OpNop                    Opcode = 0
	OpUndef                  Opcode = 1
	OpSourceContinued        Opcode = 2
	OpSource                 Opcode = 3
	OpSourceExtension        Opcode = 4
	OpName                   Opcode = 5
	OpMemberName             Opcode = 6
	OpString                 Opcode = 7
	OpLine                   Opcode = 8
	OpExtension              Opcode = 10
	OpExtInstImport          Opcode = 11
	OpExtInst                Opcode = 12
	OpMemoryModel            Opcode = 14
	OpEntryPoint             Opcode = 15
	OpExecutionMode          Opcode = 16
	OpCapability             Opcode = 17
	OpTypeVoid               Opcode = 19
	OpTypeBool               Opcode = 20
	OpTypeInt                Opcode = 21
	OpTypeFloat              Opcode = 22
	OpTypeVector             Opcode = 23
	OpTypeMatrix             Opcode = 24
	OpTypeImage              Opcode = 25
	OpTypeSampler            Opcode = 26
	OpTypeSampledImage       Opcode = 27
	OpTypeArray              Opcode = 28
	OpTypeRuntimeArray       Opcode = 29
	OpTypeStruct             Opcode = 30
	OpTypeOpaque             Opcode = 31
	OpTypePointer            Opcode = 32
	OpTypeFunction           Opcode = 33
	OpTypeEvent              Opcode = 34
	OpTypeDeviceEvent        Opcode = 35
	OpTypeReserveID          Opcode = 36
	OpTypeQueue              Opcode = 37
	OpTypePipe               Opcode = 38
	OpTypeForwardPointer     Opcode = 39
	OpConstantTrue           Opcode = 41
	OpConstantFalse          Opcode = 42
	OpConstant               Opcode = 43
	OpConstantComposite      Opcode = 44
	OpConstantSampler        Opcode = 45
	OpConstantNull           Opcode = 46
	OpFunction               Opcode = 54
	OpFunctionParameter      Opcode = 55
	OpFunctionEnd            Opcode = 56
	OpFunctionCall           Opcode = 57
	OpVariable               Opcode = 59
	OpImageTexelPointer      Opcode = 60
	OpLoad                   Opcode = 61
	OpStore                  Opcode = 62
	OpCopyMemory             Opcode = 63
	OpCopyMemorySized        Opcode = 64
	OpAccessChain            Opcode = 65
	OpInBoundsAccessChain    Opcode = 66
	OpPtrAccessChain         Opcode = 67
	OpArrayLength            Opcode = 68
	OpInBoundsPtrAccessChain Opcode = 70
	OpDecorate               Opcode = 71
	OpMemberDecorate         Opcode = 72
	OpDecorationGroup        Opcode = 73
	OpGroupDecorate          Opcode = 74
	OpGroupMemberDecorate    Opcode = 75
	OpVectorExtractDynamic   Opcode = 77
	OpVectorInsertDynamic    Opcode = 78
	OpVectorShuffle          Opcode = 79
	OpCompositeConstruct     Opcode = 80
	OpCompositeExtract       Opcode = 81
	OpCompositeInsert        Opcode = 82
	OpCopyObject             Opcode = 83
	OpSampledImage           Opcode = 86
	OpImageSampleImplicitLod Opcode = 87
	OpImageSampleExplicitLod Opcode = 88
	OpImageRead              Opcode = 98
	OpImageWrite             Opcode = 99
	OpImage                  Opcode = 100
	OpImageQueryFormat       Opcode = 101
	OpImageQueryOrder        Opcode = 102
	OpImageQuerySizeLod      Opcode = 103
	OpImageQuerySize         Opcode = 104
	OpConvertFToU            Opcode = 109
	OpConvertFToS            Opcode = 110
	OpConvertSToF            Opcode = 111
	OpConvertUToF            Opcode = 112
	OpUConvert               Opcode = 113
	OpSConvert               Opcode = 114
	OpFConvert               Opcode = 115
	OpQuantizeToF16          Opcode = 116
	OpConvertPtrToU          Opcode = 117
	OpSatConvertSToU         Opcode = 118
	OpSatConvertUToS         Opcode = 119
	OpConvertUToPtr          Opcode = 120
	OpBitcast                Opcode = 124
	OpSNegate                Opcode = 126
	OpFNegate                Opcode = 127
	OpIAdd                   Opcode = 128
	OpFAdd                   Opcode = 129
	OpISub                   Opcode = 130
	OpFSub                   Opcode = 131
	OpIMul                   Opcode = 132
	OpFMul                   Opcode = 133
	OpUDiv                   Opcode = 134
	OpSDiv                   Opcode = 135
	OpFDiv                   Opcode = 136
	OpUMod                   Opcode = 137
	OpSRem                   Opcode = 138
	OpSMod                   Opcode = 139
	OpFRem                   Opcode = 140
	OpFMod                   Opcode = 141
	OpVectorTimesScalar      Opcode = 142
	OpDot                    Opcode = 148
	OpAny                    Opcode = 154
	OpAll                    Opcode = 155
	OpIsNan                  Opcode = 156
	OpIsInf                  Opcode = 157
	OpIsFinite               Opcode = 158
	OpIsNormal               Opcode = 159
	OpSignBitSet             Opcode = 160
	OpLessOrGreater          Opcode = 161
	OpOrdered                Opcode = 162
	OpUnordered              Opcode = 163
	OpLogicalEqual           Opcode = 164
	OpLogicalNotEqual        Opcode = 165
	OpLogicalOr              Opcode = 166
	OpLogicalAnd             Opcode = 167
	OpLogicalNot             Opcode = 168
	OpSelect                 Opcode = 169
	OpIEqual                 Opcode = 170
	OpINotEqual              Opcode = 171
	OpUGreaterThan           Opcode = 172
	OpSGreaterThan           Opcode = 173
	OpUGreaterThanEqual      Opcode = 174
	OpSGreaterThanEqual      Opcode = 175
	OpULessThan              Opcode = 176
	OpSLessThan              Opcode = 177
	OpULessThanEqual         Opcode = 178
	OpSLessThanEqual         Opcode = 179
	OpFOrdEqual              Opcode = 180
	OpFUnordEqual            Opcode = 181
	OpFOrdNotEqual           Opcode = 182
	OpFUnordNotEqual         Opcode = 183
	OpFOrdLessThan           Opcode = 184
	OpFUnordLessThan         Opcode = 185
	OpFOrdGreaterThan        Opcode = 186
	OpFUnordGreaterThan      Opcode = 187
	OpFOrdLessThanEqual      Opcode = 188
	OpFUnordLessThanEqual    Opcode = 189
	OpFOrdGreaterThanEqual   Opcode = 190
	OpFUnordGreaterThanEqual Opcode = 191
	OpShiftRightLogical      Opcode = 194
	OpShiftRightArithmetic   Opcode = 195
	OpShiftLeftLogical       Opcode = 196
	OpBitwiseOr              Opcode = 197
	OpBitwiseXor             Opcode = 198
	OpBitwiseAnd             Opcode = 199
	OpNot                    Opcode = 200
	OpBitCount               Opcode = 205
	OpControlBarrier         Opcode = 224
	OpMemoryBarrier          Opcode = 225
	OpAtomicLoad             Opcode = 227
	OpAtomicStore            Opcode = 228
	OpAtomicExchange         Opcode = 229
	OpAtomicCompareExchange  Opcode = 230
	OpAtomicIIncrement       Opcode = 232
	OpAtomicIDecrement       Opcode = 233
	OpAtomicIAdd             Opcode = 234
	OpAtomicISub             Opcode = 235
	OpAtomicSMin             Opcode = 236
	OpAtomicUMin             Opcode = 237
	OpAtomicSMax             Opcode = 238
	OpAtomicUMax             Opcode = 239
	OpAtomicAnd              Opcode = 240
	OpAtomicOr               Opcode = 241
	OpAtomicXor              Opcode = 242
	OpPhi                    Opcode = 245
	OpLoopMerge              Opcode = 246
	OpSelectionMerge         Opcode = 247
	OpLabel                  Opcode = 248
	OpBranch                 Opcode = 249
	OpBranchConditional      Opcode = 250
	OpSwitch                 Opcode = 251
	OpKill                   Opcode = 252
	OpReturn                 Opcode = 253
	OpReturnValue            Opcode = 254
	OpUnreachable            Opcode = 255
	OpLifetimeStart          Opcode = 256
	OpLifetimeStop           Opcode = 257
	OpGroupAsyncCopy         Opcode = 259
	OpGroupWaitEvents        Opcode = 260
	OpNoLine                 Opcode = 317
	OpModuleProcessed        Opcode = 330
)

// opInfo describes the fixed frame of an opcode: its assembly name and
// whether the instruction carries a result-type word and a result word.
type opInfo struct {
	name      string
	hasType   bool
	hasResult bool
}

var opcodeTable = map[Opcode]opInfo{
	OpNop:                    {"OpNop", false, false},
	OpUndef:                  {"OpUndef", true, true},
	OpSourceContinued:        {"OpSourceContinued", false, false},
	OpSource:                 {"OpSource", false, false},
	OpSourceExtension:        {"OpSourceExtension", false, false},
	OpName:                   {"OpName", false, false},
	OpMemberName:             {"OpMemberName", false, false},
	OpString:                 {"OpString", false, true},
	OpLine:                   {"OpLine", false, false},
	OpExtension:              {"OpExtension", false, false},
	OpExtInstImport:          {"OpExtInstImport", false, true},
	OpExtInst:                {"OpExtInst", true, true},
	OpMemoryModel:            {"OpMemoryModel", false, false},
	OpEntryPoint:             {"OpEntryPoint", false, false},
	OpExecutionMode:          {"OpExecutionMode", false, false},
	OpCapability:             {"OpCapability", false, false},
	OpTypeVoid:               {"OpTypeVoid", false, true},
	OpTypeBool:               {"OpTypeBool", false, true},
	OpTypeInt:                {"OpTypeInt", false, true},
	OpTypeFloat:              {"OpTypeFloat", false, true},
	OpTypeVector:             {"OpTypeVector", false, true},
	OpTypeMatrix:             {"OpTypeMatrix", false, true},
	OpTypeImage:              {"OpTypeImage", false, true},
	OpTypeSampler:            {"OpTypeSampler", false, true},
	OpTypeSampledImage:       {"OpTypeSampledImage", false, true},
	OpTypeArray:              {"OpTypeArray", false, true},
	OpTypeRuntimeArray:       {"OpTypeRuntimeArray", false, true},
	OpTypeStruct:             {"OpTypeStruct", false, true},
	OpTypeOpaque:             {"OpTypeOpaque", false, true},
	OpTypePointer:            {"OpTypePointer", false, true},
	OpTypeFunction:           {"OpTypeFunction", false, true},
	OpTypeEvent:              {"OpTypeEvent", false, true},
	OpTypeDeviceEvent:        {"OpTypeDeviceEvent", false, true},
	OpTypeReserveID:          {"OpTypeReserveId", false, true},
	OpTypeQueue:              {"OpTypeQueue", false, true},
	OpTypePipe:               {"OpTypePipe", false, true},
	OpTypeForwardPointer:     {"OpTypeForwardPointer", false, false},
	OpConstantTrue:           {"OpConstantTrue", true, true},
	OpConstantFalse:          {"OpConstantFalse", true, true},
	OpConstant:               {"OpConstant", true, true},
	OpConstantComposite:      {"OpConstantComposite", true, true},
	OpConstantSampler:        {"OpConstantSampler", true, true},
	OpConstantNull:           {"OpConstantNull", true, true},
	OpFunction:               {"OpFunction", true, true},
	OpFunctionParameter:      {"OpFunctionParameter", true, true},
	OpFunctionEnd:            {"OpFunctionEnd", false, false},
	OpFunctionCall:           {"OpFunctionCall", true, true},
	OpVariable:               {"OpVariable", true, true},
	OpImageTexelPointer:      {"OpImageTexelPointer", true, true},
	OpLoad:                   {"OpLoad", true, true},
	OpStore:                  {"OpStore", false, false},
	OpCopyMemory:             {"OpCopyMemory", false, false},
	OpCopyMemorySized:        {"OpCopyMemorySized", false, false},
	OpAccessChain:            {"OpAccessChain", true, true},
	OpInBoundsAccessChain:    {"OpInBoundsAccessChain", true, true},
	OpPtrAccessChain:         {"OpPtrAccessChain", true, true},
	OpArrayLength:            {"OpArrayLength", true, true},
	OpInBoundsPtrAccessChain: {"OpInBoundsPtrAccessChain", true, true},
	OpDecorate:               {"OpDecorate", false, false},
	OpMemberDecorate:         {"OpMemberDecorate", false, false},
	OpDecorationGroup:        {"OpDecorationGroup", false, true},
	OpGroupDecorate:          {"OpGroupDecorate", false, false},
	OpGroupMemberDecorate:    {"OpGroupMemberDecorate", false, false},
	OpVectorExtractDynamic:   {"OpVectorExtractDynamic", true, true},
	OpVectorInsertDynamic:    {"OpVectorInsertDynamic", true, true},
	OpVectorShuffle:          {"OpVectorShuffle", true, true},
	OpCompositeConstruct:     {"OpCompositeConstruct", true, true},
	OpCompositeExtract:       {"OpCompositeExtract", true, true},
	OpCompositeInsert:        {"OpCompositeInsert", true, true},
	OpCopyObject:             {"OpCopyObject", true, true},
	OpSampledImage:           {"OpSampledImage", true, true},
	OpImageSampleImplicitLod: {"OpImageSampleImplicitLod", true, true},
	OpImageSampleExplicitLod: {"OpImageSampleExplicitLod", true, true},
	OpImageRead:              {"OpImageRead", true, true},
	OpImageWrite:             {"OpImageWrite", false, false},
	OpImage:                  {"OpImage", true, true},
	OpImageQueryFormat:       {"OpImageQueryFormat", true, true},
	OpImageQueryOrder:        {"OpImageQueryOrder", true, true},
	OpImageQuerySizeLod:      {"OpImageQuerySizeLod", true, true},
	OpImageQuerySize:         {"OpImageQuerySize", true, true},
	OpConvertFToU:            {"OpConvertFToU", true, true},
	OpConvertFToS:            {"OpConvertFToS", true, true},
	OpConvertSToF:            {"OpConvertSToF", true, true},
	OpConvertUToF:            {"OpConvertUToF", true, true},
	OpUConvert:               {"OpUConvert", true, true},
	OpSConvert:               {"OpSConvert", true, true},
	OpFConvert:               {"OpFConvert", true, true},
	OpQuantizeToF16:          {"OpQuantizeToF16", true, true},
	OpConvertPtrToU:          {"OpConvertPtrToU", true, true},
	OpSatConvertSToU:         {"OpSatConvertSToU", true, true},
	OpSatConvertUToS:         {"OpSatConvertUToS", true, true},
	OpConvertUToPtr:          {"OpConvertUToPtr", true, true},
	OpBitcast:                {"OpBitcast", true, true},
	OpSNegate:                {"OpSNegate", true, true},
	OpFNegate:                {"OpFNegate", true, true},
	OpIAdd:                   {"OpIAdd", true, true},
	OpFAdd:                   {"OpFAdd", true, true},
	OpISub:                   {"OpISub", true, true},
	OpFSub:                   {"OpFSub", true, true},
	OpIMul:                   {"OpIMul", true, true},
	OpFMul:                   {"OpFMul", true, true},
	OpUDiv:                   {"OpUDiv", true, true},
	OpSDiv:                   {"OpSDiv", true, true},
	OpFDiv:                   {"OpFDiv", true, true},
	OpUMod:                   {"OpUMod", true, true},
	OpSRem:                   {"OpSRem", true, true},
	OpSMod:                   {"OpSMod", true, true},
	OpFRem:                   {"OpFRem", true, true},
	OpFMod:                   {"OpFMod", true, true},
	OpVectorTimesScalar:      {"OpVectorTimesScalar", true, true},
	OpDot:                    {"OpDot", true, true},
	OpAny:                    {"OpAny", true, true},
	OpAll:                    {"OpAll", true, true},
	OpIsNan:                  {"OpIsNan", true, true},
	OpIsInf:                  {"OpIsInf", true, true},
	OpIsFinite:               {"OpIsFinite", true, true},
	OpIsNormal:               {"OpIsNormal", true, true},
	OpSignBitSet:             {"OpSignBitSet", true, true},
	OpLessOrGreater:          {"OpLessOrGreater", true, true},
	OpOrdered:                {"OpOrdered", true, true},
	OpUnordered:              {"OpUnordered", true, true},
	OpLogicalEqual:           {"OpLogicalEqual", true, true},
	OpLogicalNotEqual:        {"OpLogicalNotEqual", true, true},
	OpLogicalOr:              {"OpLogicalOr", true, true},
	OpLogicalAnd:             {"OpLogicalAnd", true, true},
	OpLogicalNot:             {"OpLogicalNot", true, true},
	OpSelect:                 {"OpSelect", true, true},
	OpIEqual:                 {"OpIEqual", true, true},
	OpINotEqual:              {"OpINotEqual", true, true},
	OpUGreaterThan:           {"OpUGreaterThan", true, true},
	OpSGreaterThan:           {"OpSGreaterThan", true, true},
	OpUGreaterThanEqual:      {"OpUGreaterThanEqual", true, true},
	OpSGreaterThanEqual:      {"OpSGreaterThanEqual", true, true},
	OpULessThan:              {"OpULessThan", true, true},
	OpSLessThan:              {"OpSLessThan", true, true},
	OpULessThanEqual:         {"OpULessThanEqual", true, true},
	OpSLessThanEqual:         {"OpSLessThanEqual", true, true},
	OpFOrdEqual:              {"OpFOrdEqual", true, true},
	OpFUnordEqual:            {"OpFUnordEqual", true, true},
	OpFOrdNotEqual:           {"OpFOrdNotEqual", true, true},
	OpFUnordNotEqual:         {"OpFUnordNotEqual", true, true},
	OpFOrdLessThan:           {"OpFOrdLessThan", true, true},
	OpFUnordLessThan:         {"OpFUnordLessThan", true, true},
	OpFOrdGreaterThan:        {"OpFOrdGreaterThan", true, true},
	OpFUnordGreaterThan:      {"OpFUnordGreaterThan", true, true},
	OpFOrdLessThanEqual:      {"OpFOrdLessThanEqual", true, true},
	OpFUnordLessThanEqual:    {"OpFUnordLessThanEqual", true, true},
	OpFOrdGreaterThanEqual:   {"OpFOrdGreaterThanEqual", true, true},
	OpFUnordGreaterThanEqual: {"OpFUnordGreaterThanEqual", true, true},
	OpShiftRightLogical:      {"OpShiftRightLogical", true, true},
	OpShiftRightArithmetic:   {"OpShiftRightArithmetic", true, true},
	OpShiftLeftLogical:       {"OpShiftLeftLogical", true, true},
	OpBitwiseOr:              {"OpBitwiseOr", true, true},
	OpBitwiseXor:             {"OpBitwiseXor", true, true},
	OpBitwiseAnd:             {"OpBitwiseAnd", true, true},
	OpNot:                    {"OpNot", true, true},
	OpBitCount:               {"OpBitCount", true, true},
	OpControlBarrier:         {"OpControlBarrier", false, false},
	OpMemoryBarrier:          {"OpMemoryBarrier", false, false},
	OpAtomicLoad:             {"OpAtomicLoad", true, true},
	OpAtomicStore:            {"OpAtomicStore", false, false},
	OpAtomicExchange:         {"OpAtomicExchange", true, true},
	OpAtomicCompareExchange:  {"OpAtomicCompareExchange", true, true},
	OpAtomicIIncrement:       {"OpAtomicIIncrement", true, true},
	OpAtomicIDecrement:       {"OpAtomicIDecrement", true, true},
	OpAtomicIAdd:             {"OpAtomicIAdd", true, true},
	OpAtomicISub:             {"OpAtomicISub", true, true},
	OpAtomicSMin:             {"OpAtomicSMin", true, true},
	OpAtomicUMin:             {"OpAtomicUMin", true, true},
	OpAtomicSMax:             {"OpAtomicSMax", true, true},
	OpAtomicUMax:             {"OpAtomicUMax", true, true},
	OpAtomicAnd:              {"OpAtomicAnd", true, true},
	OpAtomicOr:               {"OpAtomicOr", true, true},
	OpAtomicXor:              {"OpAtomicXor", true, true},
	OpPhi:                    {"OpPhi", true, true},
	OpLoopMerge:              {"OpLoopMerge", false, false},
	OpSelectionMerge:         {"OpSelectionMerge", false, false},
	OpLabel:                  {"OpLabel", false, true},
	OpBranch:                 {"OpBranch", false, false},
	OpBranchConditional:      {"OpBranchConditional", false, false},
	OpSwitch:                 {"OpSwitch", false, false},
	OpKill:                   {"OpKill", false, false},
	OpReturn:                 {"OpReturn", false, false},
	OpReturnValue:            {"OpReturnValue", false, false},
	OpUnreachable:            {"OpUnreachable", false, false},
	OpLifetimeStart:          {"OpLifetimeStart", false, false},
	OpLifetimeStop:           {"OpLifetimeStop", false, false},
	OpGroupAsyncCopy:         {"OpGroupAsyncCopy", true, true},
	OpGroupWaitEvents:        {"OpGroupWaitEvents", false, false},
	OpNoLine:                 {"OpNoLine", false, false},
	OpModuleProcessed:        {"OpModuleProcessed", false, false},
}

// opcodeNames maps assembly spellings back to opcodes.
var opcodeNames = make(map[string]Opcode, len(opcodeTable))

func init() {
	for op, info := range opcodeTable {
		opcodeNames[info.name] = op
	}
}

// String returns the assembly spelling of the opcode.
func (op Opcode) String() string {
	if info, ok := opcodeTable[op]; ok {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Known reports whether the loader knows the opcode's instruction frame.
func (op Opcode) Known() bool {
	_, ok := opcodeTable[op]
	return ok
}

// hasResultType reports whether instructions with this opcode carry a
// result-type word.
func (op Opcode) hasResultType() bool {
	return opcodeTable[op].hasType
}

// hasResult reports whether instructions with this opcode carry a
// result word.
func (op Opcode) hasResult() bool {
	return opcodeTable[op].hasResult
}
