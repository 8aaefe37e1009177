// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import "fmt"

// Validator is the gate a binary must pass before translation. The
// package's structural validator is the default implementation; hosts
// embedding an external validator can satisfy the same interface.
type Validator interface {
	Validate(words []uint32) error
}

// Diagnostic is a validation failure at a specific instruction.
type Diagnostic struct {
	// Index is the word offset of the offending instruction, or -1
	// for module-level failures.
	Index   int
	Message string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Index >= 0 {
		return fmt.Sprintf("at word %d: %s", d.Index, d.Message)
	}
	return d.Message
}

// StructuralValidator checks module-level well-formedness: header
// sanity, instruction framing, section ordering, result-id uniqueness,
// and basic-block structure.
type StructuralValidator struct{}

// Validate implements Validator.
func (StructuralValidator) Validate(words []uint32) error {
	return Validate(words)
}

// Section ranks in module layout order.
const (
	rankCapability = iota
	rankExtension
	rankExtInstImport
	rankMemoryModel
	rankEntryPoint
	rankExecutionMode
	rankDebug
	rankName
	rankAnnotation
	rankTypesValues
	rankFunction
)

func sectionRank(op Opcode) int {
	switch op {
	case OpCapability:
		return rankCapability
	case OpExtension:
		return rankExtension
	case OpExtInstImport:
		return rankExtInstImport
	case OpMemoryModel:
		return rankMemoryModel
	case OpEntryPoint:
		return rankEntryPoint
	case OpExecutionMode:
		return rankExecutionMode
	case OpSource, OpSourceContinued, OpSourceExtension, OpString:
		return rankDebug
	case OpName, OpMemberName, OpModuleProcessed:
		return rankName
	case OpDecorate, OpMemberDecorate, OpDecorationGroup,
		OpGroupDecorate, OpGroupMemberDecorate:
		return rankAnnotation
	default:
		return rankTypesValues
	}
}

// Validate runs the structural checks over a word stream.
func Validate(words []uint32) error {
	if len(words) < 5 {
		return &Diagnostic{Index: -1, Message: fmt.Sprintf("module header is truncated (%d words)", len(words))}
	}
	if words[0] != MagicNumber {
		return &Diagnostic{Index: -1, Message: fmt.Sprintf("bad magic number %#x", words[0])}
	}
	version := Version{Major: uint8(words[1] >> 16), Minor: uint8(words[1] >> 8)}
	if version.Major != 1 || version.Minor > 6 {
		return &Diagnostic{Index: -1, Message: fmt.Sprintf("unsupported SPIR-V version %s", version)}
	}
	bound := words[3]
	if bound == 0 {
		return &Diagnostic{Index: -1, Message: "id bound is zero"}
	}

	v := &validation{bound: bound, defined: make(map[ID]bool)}

	pos := 5
	for pos < len(words) {
		first := words[pos]
		count := int(first >> 16)
		opcode := Opcode(first & 0xFFFF)
		if count == 0 {
			return &Diagnostic{Index: pos, Message: "zero instruction word count"}
		}
		if pos+count > len(words) {
			return &Diagnostic{Index: pos, Message: fmt.Sprintf("%s overruns the module", opcode)}
		}
		inst := decodeInstruction(opcode, words[pos+1:pos+count])
		if err := v.check(pos, &inst); err != nil {
			return err
		}
		pos += count
	}

	if v.inFunction {
		return &Diagnostic{Index: pos, Message: "module ends inside a function"}
	}
	if !v.sawMemoryModel {
		return &Diagnostic{Index: -1, Message: "module has no OpMemoryModel"}
	}
	return v.checkBranches()
}

type validation struct {
	bound   uint32
	defined map[ID]bool

	rank           int
	sawMemoryModel bool
	inFunction     bool
	inBlock        bool
	sawLabel       bool

	// Per-function label tracking for branch-target checks.
	labels   map[ID]bool
	branches []branchUse
}

type branchUse struct {
	index   int
	targets []ID
	labels  map[ID]bool
}

func (v *validation) check(index int, inst *Instruction) error {
	if inst.Result != 0 {
		if uint32(inst.Result) >= v.bound {
			return &Diagnostic{Index: index, Message: fmt.Sprintf("result id %%%d exceeds the bound %d", inst.Result, v.bound)}
		}
		if v.defined[inst.Result] {
			return &Diagnostic{Index: index, Message: fmt.Sprintf("result id %%%d is defined twice", inst.Result)}
		}
		v.defined[inst.Result] = true
	}
	if inst.Type != 0 && uint32(inst.Type) >= v.bound {
		return &Diagnostic{Index: index, Message: fmt.Sprintf("type id %%%d exceeds the bound %d", inst.Type, v.bound)}
	}

	if v.inFunction {
		return v.checkInFunction(index, inst)
	}

	switch inst.Opcode {
	case OpMemoryModel:
		if v.sawMemoryModel {
			return &Diagnostic{Index: index, Message: "module has two OpMemoryModel declarations"}
		}
		v.sawMemoryModel = true
	case OpFunction:
		v.inFunction = true
		v.inBlock = false
		v.sawLabel = false
		v.labels = make(map[ID]bool)
		return nil
	}

	r := sectionRank(inst.Opcode)
	if r < v.rank {
		return &Diagnostic{Index: index, Message: fmt.Sprintf("%s out of layout order", inst.Opcode)}
	}
	v.rank = r
	return nil
}

func (v *validation) checkInFunction(index int, inst *Instruction) error {
	switch inst.Opcode {
	case OpFunctionParameter:
		if v.sawLabel {
			return &Diagnostic{Index: index, Message: "OpFunctionParameter after the first block"}
		}
		return nil
	case OpLabel:
		if v.inBlock {
			return &Diagnostic{Index: index, Message: "OpLabel inside an unterminated block"}
		}
		v.inBlock = true
		v.sawLabel = true
		v.labels[inst.Result] = true
		return nil
	case OpFunctionEnd:
		if v.inBlock {
			return &Diagnostic{Index: index, Message: "OpFunctionEnd inside an unterminated block"}
		}
		v.inFunction = false
		v.resolveBranches()
		return nil
	case OpFunction:
		return &Diagnostic{Index: index, Message: "nested OpFunction"}
	}

	if !v.inBlock {
		return &Diagnostic{Index: index, Message: fmt.Sprintf("%s outside a basic block", inst.Opcode)}
	}

	switch inst.Opcode {
	case OpBranch:
		v.recordBranch(index, inst.IDOperand(0))
	case OpBranchConditional:
		if inst.NumOperands() < 3 {
			return &Diagnostic{Index: index, Message: "OpBranchConditional is missing operands"}
		}
		v.recordBranch(index, inst.IDOperand(1), inst.IDOperand(2))
	case OpSwitch:
		if inst.NumOperands() < 2 || inst.NumOperands()%2 != 0 {
			return &Diagnostic{Index: index, Message: "OpSwitch has a malformed operand list"}
		}
		targets := []ID{inst.IDOperand(1)}
		for i := 3; i < inst.NumOperands(); i += 2 {
			targets = append(targets, inst.IDOperand(i))
		}
		v.recordBranch(index, targets...)
	case OpPhi:
		if inst.NumOperands()%2 != 0 {
			return &Diagnostic{Index: index, Message: "OpPhi has an odd operand count"}
		}
	}

	if isTerminator(inst.Opcode) {
		v.inBlock = false
	}
	return nil
}

func (v *validation) recordBranch(index int, targets ...ID) {
	v.branches = append(v.branches, branchUse{index: index, targets: targets, labels: v.labels})
}

// resolveBranches clears branch records whose targets were declared in
// the function that just ended; checkBranches reports the leftovers.
func (v *validation) resolveBranches() {
	kept := v.branches[:0]
	for _, b := range v.branches {
		ok := true
		for _, t := range b.targets {
			if !b.labels[t] {
				ok = false
			}
		}
		if !ok {
			kept = append(kept, b)
		}
	}
	v.branches = kept
}

func (v *validation) checkBranches() error {
	for _, b := range v.branches {
		for _, t := range b.targets {
			if !b.labels[t] {
				return &Diagnostic{Index: b.index, Message: fmt.Sprintf("branch to %%%d, which is not a label in the same function", t)}
			}
		}
	}
	return nil
}
