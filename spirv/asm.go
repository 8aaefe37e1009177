// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Assemble encodes textual SPIR-V assembly into a binary word stream.
//
// The accepted grammar is the disassembly form: one instruction per
// line, `%result = OpName operands...`, `;` comments, quoted strings,
// named enumerants, and `A|B` masks. Ids may be symbolic (`%entry`) or
// numeric (`%7`); symbolic ids are assigned fresh numbers around the
// numeric ones.
func Assemble(text string) ([]uint32, error) {
	a := &assembler{
		ids:      make(map[string]uint32),
		numTypes: make(map[uint32]numType),
	}

	lines := strings.Split(text, "\n")
	a.reserveNumericIDs(lines)

	for no, raw := range lines {
		toks, err := tokenize(stripComment(raw))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", no+1, err)
		}
		if len(toks) == 0 {
			continue
		}
		if err := a.assembleLine(toks); err != nil {
			return nil, fmt.Errorf("line %d: %w", no+1, err)
		}
	}

	version := a.version
	if version == (Version{}) {
		version = Version1_0
	}
	words := []uint32{MagicNumber, version.Word(), generatorMagic, a.maxID + 1, 0}
	return append(words, a.words...), nil
}

// numType records the shape of an integer or float type so that
// context-dependent constant literals can be encoded.
type numType struct {
	float  bool
	width  uint32
	signed bool
}

type assembler struct {
	words    []uint32
	ids      map[string]uint32
	nextID   uint32
	maxID    uint32
	numTypes map[uint32]numType
	version  Version
}

// reserveNumericIDs walks all tokens once so symbolic ids never collide
// with numerals the module spells out explicitly.
func (a *assembler) reserveNumericIDs(lines []string) {
	for _, raw := range lines {
		toks, err := tokenize(stripComment(raw))
		if err != nil {
			continue
		}
		for _, t := range toks {
			if t.kind != tokID {
				continue
			}
			if n, err := strconv.ParseUint(t.text, 10, 32); err == nil {
				a.ids[t.text] = uint32(n)
				if uint32(n) > a.maxID {
					a.maxID = uint32(n)
				}
			}
		}
	}
	a.nextID = 1
}

// id resolves an id token, assigning a fresh number on first use of a
// symbolic name.
func (a *assembler) id(name string) uint32 {
	if n, ok := a.ids[name]; ok {
		return n
	}
	for {
		candidate := a.nextID
		a.nextID++
		if !a.numericIDUsed(candidate) {
			a.ids[name] = candidate
			if candidate > a.maxID {
				a.maxID = candidate
			}
			return candidate
		}
	}
}

func (a *assembler) numericIDUsed(n uint32) bool {
	existing, ok := a.ids[strconv.FormatUint(uint64(n), 10)]
	return ok && existing == n
}

type tokenKind uint8

const (
	tokWord tokenKind = iota
	tokID
	tokString
	tokEq
)

type token struct {
	kind tokenKind
	text string
}

// stripComment removes a `;` comment, honouring quoted strings.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '\\':
			if inString {
				i++
			}
		case ';':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

func tokenize(line string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '=':
			toks = append(toks, token{tokEq, "="})
			i++
		case c == '%':
			start := i + 1
			i = start
			for i < len(line) && !isSpace(line[i]) {
				i++
			}
			if i == start {
				return nil, fmt.Errorf("empty id")
			}
			toks = append(toks, token{tokID, line[start:i]})
		case c == '"':
			var sb strings.Builder
			i++
			for {
				if i >= len(line) {
					return nil, fmt.Errorf("unterminated string")
				}
				if line[i] == '\\' && i+1 < len(line) {
					sb.WriteByte(line[i+1])
					i += 2
					continue
				}
				if line[i] == '"' {
					i++
					break
				}
				sb.WriteByte(line[i])
				i++
			}
			toks = append(toks, token{tokString, sb.String()})
		default:
			start := i
			for i < len(line) && !isSpace(line[i]) && line[i] != '=' {
				i++
			}
			toks = append(toks, token{tokWord, line[start:i]})
		}
	}
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// assembleLine encodes one instruction.
func (a *assembler) assembleLine(toks []token) error {
	var resultName string
	if len(toks) >= 3 && toks[0].kind == tokID && toks[1].kind == tokEq {
		resultName = toks[0].text
		toks = toks[2:]
	}
	if len(toks) == 0 || toks[0].kind != tokWord {
		return fmt.Errorf("expected an opcode")
	}
	opcode, ok := opcodeNames[toks[0].text]
	if !ok {
		return fmt.Errorf("unknown opcode %q", toks[0].text)
	}
	operands := toks[1:]

	var typeWord, resultWord uint32
	if opcode.hasResultType() {
		if len(operands) == 0 || operands[0].kind != tokID {
			return fmt.Errorf("%s expects a result type id", opcode)
		}
		typeWord = a.id(operands[0].text)
		operands = operands[1:]
	}
	if opcode.hasResult() {
		if resultName == "" {
			return fmt.Errorf("%s expects a result id", opcode)
		}
		resultWord = a.id(resultName)
	} else if resultName != "" {
		return fmt.Errorf("%s does not produce a result", opcode)
	}

	body, err := a.operandWords(opcode, typeWord, resultWord, operands)
	if err != nil {
		return err
	}

	count := 1 + len(body)
	if opcode.hasResultType() {
		count++
	}
	if opcode.hasResult() {
		count++
	}
	a.words = append(a.words, uint32(count)<<16|uint32(opcode))
	if opcode.hasResultType() {
		a.words = append(a.words, typeWord)
	}
	if opcode.hasResult() {
		a.words = append(a.words, resultWord)
	}
	a.words = append(a.words, body...)

	a.recordNumType(opcode, resultWord, body)
	return nil
}

// recordNumType remembers integer/float type shapes for later
// context-dependent constant literals.
func (a *assembler) recordNumType(opcode Opcode, result uint32, body []uint32) {
	switch opcode {
	case OpTypeInt:
		if len(body) >= 2 {
			a.numTypes[result] = numType{width: body[0], signed: body[1] != 0}
		}
	case OpTypeFloat:
		if len(body) >= 1 {
			a.numTypes[result] = numType{float: true, width: body[0]}
		}
	}
}

// operandWords encodes the operand tokens of one instruction.
func (a *assembler) operandWords(opcode Opcode, typeWord, result uint32, toks []token) ([]uint32, error) {
	p := &operandParser{a: a, toks: toks}

	switch opcode {
	case OpCapability:
		p.enum(capabilityNames, "capability")
	case OpMemoryModel:
		p.enum(addressingModelNames, "addressing model")
		p.enum(memoryModelNames, "memory model")
	case OpEntryPoint:
		p.enum(executionModelNames, "execution model")
		p.generic()
	case OpExecutionMode:
		p.idOperand()
		p.enum(executionModeNames, "execution mode")
		p.generic()
	case OpSource:
		p.enum(sourceLanguageNames, "source language")
		p.generic()
	case OpDecorate:
		p.idOperand()
		p.decoration()
	case OpMemberDecorate:
		p.idOperand()
		p.number()
		p.decoration()
	case OpTypePointer:
		p.enum(storageClassNames, "storage class")
		p.idOperand()
	case OpVariable:
		p.enum(storageClassNames, "storage class")
		p.generic()
	case OpTypeImage:
		p.idOperand()
		p.enum(dimNames, "dimensionality")
		p.number()
		p.number()
		p.number()
		p.number()
		p.enum(imageFormatNames, "image format")
		if p.more() {
			p.enum(accessQualifierNames, "access qualifier")
		}
	case OpConstant:
		p.contextNumber(typeWord)
	case OpConstantSampler:
		p.enum(samplerAddressingModeNames, "sampler addressing mode")
		p.number()
		p.enum(samplerFilterModeNames, "sampler filter mode")
	case OpFunction:
		p.mask(functionControlNames, "function control")
		p.idOperand()
	case OpLoad, OpStore, OpCopyMemory:
		p.genericWithMask(memoryAccessNames, "memory access")
	case OpLoopMerge:
		p.idOperand()
		p.idOperand()
		p.mask(loopControlNames, "loop control")
		p.generic()
	case OpSelectionMerge:
		p.idOperand()
		p.mask(selectionControlNames, "selection control")
	case OpExtInst:
		p.idOperand()
		p.extInstOperand()
		p.generic()
	case OpImageSampleExplicitLod, OpImageSampleImplicitLod, OpImageRead, OpImageWrite:
		p.genericWithMask(imageOperandsNames, "image operands")
	default:
		p.generic()
	}

	if p.err != nil {
		return nil, p.err
	}
	if p.more() {
		return nil, fmt.Errorf("%s: unexpected operand %q", opcode, p.toks[p.pos].text)
	}
	return p.out, nil
}

type operandParser struct {
	a    *assembler
	toks []token
	pos  int
	out  []uint32
	err  error
}

func (p *operandParser) more() bool {
	return p.err == nil && p.pos < len(p.toks)
}

func (p *operandParser) next() (token, bool) {
	if !p.more() {
		return token{}, false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

func (p *operandParser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *operandParser) idOperand() {
	t, ok := p.next()
	if !ok || t.kind != tokID {
		p.fail("expected an id operand")
		return
	}
	p.out = append(p.out, p.a.id(t.text))
}

func (p *operandParser) number() {
	t, ok := p.next()
	if !ok || t.kind != tokWord {
		p.fail("expected a literal number")
		return
	}
	w, err := parseLiteralWord(t.text)
	if err != nil {
		p.fail("%v", err)
		return
	}
	p.out = append(p.out, w)
}

func (p *operandParser) enum(names map[string]uint32, what string) {
	t, ok := p.next()
	if !ok {
		p.fail("expected a %s", what)
		return
	}
	if t.kind == tokWord {
		if v, found := names[t.text]; found {
			p.out = append(p.out, v)
			return
		}
		if w, err := parseLiteralWord(t.text); err == nil {
			p.out = append(p.out, w)
			return
		}
	}
	p.fail("unknown %s %q", what, t.text)
}

func (p *operandParser) mask(names map[string]uint32, what string) {
	t, ok := p.next()
	if !ok || t.kind != tokWord {
		p.fail("expected a %s mask", what)
		return
	}
	var v uint32
	for _, part := range strings.Split(t.text, "|") {
		bit, found := names[part]
		if !found {
			p.fail("unknown %s %q", what, part)
			return
		}
		v |= bit
	}
	p.out = append(p.out, v)
}

// generic consumes the remaining operands as ids, literal numbers and
// strings, the form taken by every instruction without named
// enumerants.
func (p *operandParser) generic() {
	for p.more() {
		t, _ := p.next()
		switch t.kind {
		case tokID:
			p.out = append(p.out, p.a.id(t.text))
		case tokString:
			p.out = append(p.out, encodeString(t.text)...)
		case tokWord:
			w, err := parseLiteralWord(t.text)
			if err != nil {
				p.fail("%v", err)
				return
			}
			p.out = append(p.out, w)
		default:
			p.fail("unexpected operand %q", t.text)
			return
		}
	}
}

// genericWithMask is generic but resolves bare words against a mask
// table first (memory access and image operands).
func (p *operandParser) genericWithMask(names map[string]uint32, what string) {
	for p.more() {
		t := p.toks[p.pos]
		if t.kind == tokWord {
			if _, err := parseLiteralWord(t.text); err != nil {
				p.mask(names, what)
				continue
			}
		}
		p.pos++
		switch t.kind {
		case tokID:
			p.out = append(p.out, p.a.id(t.text))
		case tokWord:
			w, _ := parseLiteralWord(t.text)
			p.out = append(p.out, w)
		default:
			p.fail("unexpected operand %q", t.text)
			return
		}
	}
}

// decoration consumes a decoration name and its arguments.
func (p *operandParser) decoration() {
	t, ok := p.next()
	if !ok || t.kind != tokWord {
		p.fail("expected a decoration")
		return
	}
	dec, found := decorationNames[t.text]
	if !found {
		p.fail("unknown decoration %q", t.text)
		return
	}
	p.out = append(p.out, dec)

	switch Decoration(dec) {
	case DecorationBuiltIn:
		p.enum(builtInNames, "built-in")
	case DecorationFuncParamAttr:
		p.enum(funcParamAttrNames, "function parameter attribute")
	case DecorationFPRoundingMode:
		p.enum(fpRoundingModeNames, "rounding mode")
	case DecorationFPFastMathMode:
		p.mask(fpFastMathModeNames, "fast math mode")
	case DecorationLinkageAttributes:
		t, ok := p.next()
		if !ok || t.kind != tokString {
			p.fail("LinkageAttributes expects a name string")
			return
		}
		p.out = append(p.out, encodeString(t.text)...)
		p.enum(linkageTypeNames, "linkage type")
	default:
		p.generic()
	}
}

// extInstOperand resolves an extended-instruction name or number.
func (p *operandParser) extInstOperand() {
	t, ok := p.next()
	if !ok || t.kind != tokWord {
		p.fail("expected an extended instruction")
		return
	}
	if n, found := openclStdNames[t.text]; found {
		p.out = append(p.out, uint32(n))
		return
	}
	w, err := parseLiteralWord(t.text)
	if err != nil {
		p.fail("unknown extended instruction %q", t.text)
		return
	}
	p.out = append(p.out, w)
}

// contextNumber encodes an OpConstant literal according to the shape of
// its result type.
func (p *operandParser) contextNumber(typeWord uint32) {
	t, ok := p.next()
	if !ok || t.kind != tokWord {
		p.fail("expected a constant literal")
		return
	}
	ty, found := p.a.numTypes[typeWord]
	if !found {
		p.fail("constant of a non-numeric or undeclared type %%%d", typeWord)
		return
	}

	if ty.float {
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			p.fail("bad float literal %q", t.text)
			return
		}
		switch ty.width {
		case 16:
			p.out = append(p.out, uint32(HalfFromFloat(float32(v))))
		case 32:
			p.out = append(p.out, math.Float32bits(float32(v)))
		case 64:
			bits := math.Float64bits(v)
			p.out = append(p.out, uint32(bits), uint32(bits>>32))
		default:
			p.fail("unsupported float width %d", ty.width)
		}
		return
	}

	var bits uint64
	if ty.signed || strings.HasPrefix(t.text, "-") {
		v, err := strconv.ParseInt(t.text, 0, 64)
		if err != nil {
			p.fail("bad integer literal %q", t.text)
			return
		}
		bits = uint64(v)
	} else {
		v, err := strconv.ParseUint(t.text, 0, 64)
		if err != nil {
			p.fail("bad integer literal %q", t.text)
			return
		}
		bits = v
	}
	if ty.width <= 32 {
		p.out = append(p.out, uint32(bits))
	} else {
		p.out = append(p.out, uint32(bits), uint32(bits>>32))
	}
}

func parseLiteralWord(text string) (uint32, error) {
	if strings.HasPrefix(text, "-") {
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("bad literal %q", text)
		}
		return uint32(v), nil
	}
	v, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad literal %q", text)
	}
	return uint32(v), nil
}
