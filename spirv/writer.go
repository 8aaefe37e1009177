// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

// generatorMagic identifies the tool that produced a binary. Zero is
// the registry's "unknown tool" value.
const generatorMagic = 0

// Words serialises the module back into a SPIR-V word stream.
func (m *Module) Words() []uint32 {
	words := make([]uint32, 0, 256)
	version := m.Version
	if version == (Version{}) {
		version = Version1_0
	}
	words = append(words, MagicNumber, version.Word(), generatorMagic, m.Bound, 0)

	m.forEachInstruction(func(in *Instruction) {
		count := 1 + len(in.Operands)
		if in.Type != 0 {
			count++
		}
		if in.Result != 0 {
			count++
		}
		words = append(words, uint32(count)<<16|uint32(in.Opcode))
		if in.Type != 0 {
			words = append(words, uint32(in.Type))
		}
		if in.Result != 0 {
			words = append(words, uint32(in.Result))
		}
		words = append(words, in.Operands...)
	})
	return words
}
