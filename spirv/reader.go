// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"encoding/binary"
	"fmt"
)

// DecodeBytes turns a raw SPIR-V byte stream into host-order words,
// honouring the endianness announced by the magic number. The byte
// length must be a multiple of the word size.
func DecodeBytes(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("binary length %d is not a multiple of 4", len(data))
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("binary is too short for a module header")
	}
	words := make([]uint32, len(data)/4)
	order := binary.ByteOrder(binary.LittleEndian)
	if binary.LittleEndian.Uint32(data) == MagicNumberReversed {
		order = binary.BigEndian
	}
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}
	return words, nil
}

// Parse decodes a SPIR-V word stream into a Module. Parse performs only
// the decoding necessary to build the section model; run Validate over
// the words for the structural checks.
func Parse(words []uint32) (*Module, error) {
	if len(words) < 5 {
		return nil, fmt.Errorf("module header is truncated (%d words)", len(words))
	}
	if words[0] != MagicNumber {
		return nil, fmt.Errorf("bad magic number %#x", words[0])
	}

	m := &Module{
		Version: Version{Major: uint8(words[1] >> 16), Minor: uint8(words[1] >> 8)},
		Bound:   words[3],
	}

	r := &reader{module: m}
	pos := 5
	for pos < len(words) {
		first := words[pos]
		count := int(first >> 16)
		opcode := Opcode(first & 0xFFFF)
		if count == 0 {
			return nil, fmt.Errorf("instruction at word %d has a zero word count", pos)
		}
		if pos+count > len(words) {
			return nil, fmt.Errorf("instruction at word %d overruns the module", pos)
		}

		inst := decodeInstruction(opcode, words[pos+1:pos+count])
		if err := r.place(inst); err != nil {
			return nil, err
		}
		pos += count
	}
	if err := r.finish(); err != nil {
		return nil, err
	}

	m.indexDefs()
	return m, nil
}

// decodeInstruction splits an instruction's trailing words into result
// type, result, and operands according to the opcode's frame. Unknown
// opcodes keep all words as operands so the translator can report them.
func decodeInstruction(opcode Opcode, rest []uint32) Instruction {
	inst := Instruction{Opcode: opcode}
	i := 0
	if opcode.Known() {
		if opcode.hasResultType() && i < len(rest) {
			inst.Type = ID(rest[i])
			i++
		}
		if opcode.hasResult() && i < len(rest) {
			inst.Result = ID(rest[i])
			i++
		}
	}
	inst.Operands = append([]uint32(nil), rest[i:]...)
	return inst
}

// reader assigns instructions to module sections, tracking the function
// and block under construction.
type reader struct {
	module *Module

	fn      *Function
	blk     *Block
	inBlock bool
}

func (r *reader) place(inst Instruction) error {
	if r.fn != nil {
		return r.placeInFunction(inst)
	}

	m := r.module
	switch inst.Opcode {
	case OpCapability:
		m.Capabilities = append(m.Capabilities, inst)
	case OpExtension:
		m.Extensions = append(m.Extensions, inst)
	case OpExtInstImport:
		m.ExtInstImports = append(m.ExtInstImports, inst)
	case OpMemoryModel:
		m.MemoryModel = &inst
	case OpEntryPoint:
		m.EntryPoints = append(m.EntryPoints, inst)
	case OpExecutionMode:
		m.ExecutionModes = append(m.ExecutionModes, inst)
	case OpSource, OpSourceContinued, OpSourceExtension, OpString,
		OpName, OpMemberName, OpModuleProcessed, OpLine, OpNoLine:
		m.Debug = append(m.Debug, inst)
	case OpDecorate, OpMemberDecorate, OpDecorationGroup,
		OpGroupDecorate, OpGroupMemberDecorate:
		m.Annotations = append(m.Annotations, inst)
	case OpFunction:
		r.fn = &Function{Def: inst}
	case OpNop:
		// Dropped.
	default:
		// Everything else before the first function belongs to the
		// types/constants/globals section, including opcodes the
		// loader does not know.
		m.TypesValues = append(m.TypesValues, inst)
	}
	return nil
}

func (r *reader) placeInFunction(inst Instruction) error {
	switch inst.Opcode {
	case OpFunctionParameter:
		if r.inBlock || len(r.fn.Blocks) > 0 {
			return fmt.Errorf("OpFunctionParameter after the first block")
		}
		r.fn.Params = append(r.fn.Params, inst)
		return nil
	case OpLabel:
		if r.inBlock {
			return fmt.Errorf("OpLabel %%%d inside an unterminated block", inst.Result)
		}
		r.fn.Blocks = append(r.fn.Blocks, Block{Label: inst})
		r.blk = &r.fn.Blocks[len(r.fn.Blocks)-1]
		r.inBlock = true
		return nil
	case OpFunctionEnd:
		if r.inBlock {
			return fmt.Errorf("OpFunctionEnd inside an unterminated block")
		}
		r.module.Functions = append(r.module.Functions, *r.fn)
		r.fn, r.blk = nil, nil
		return nil
	}

	if !r.inBlock {
		return fmt.Errorf("%s outside a basic block", inst.Opcode)
	}
	if isTerminator(inst.Opcode) {
		r.blk.Terminator = inst
		r.inBlock = false
		return nil
	}
	r.blk.Body = append(r.blk.Body, inst)
	return nil
}

func (r *reader) finish() error {
	if r.fn != nil {
		return fmt.Errorf("module ends inside a function")
	}
	return nil
}

// isTerminator reports whether the opcode ends a basic block.
func isTerminator(op Opcode) bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch, OpKill,
		OpReturn, OpReturnValue, OpUnreachable:
		return true
	}
	return false
}
