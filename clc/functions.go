// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"
	"sort"

	"github.com/gogpu/spirv2clc/spirv"
)

// forEachIDOperand visits the operand words of an instruction that are
// id references, skipping the literal positions of the opcodes that
// carry them.
func forEachIDOperand(inst *spirv.Instruction, visit func(spirv.ID)) {
	start, stop := 0, inst.NumOperands()
	switch inst.Opcode {
	case spirv.OpCompositeExtract:
		stop = 1
	case spirv.OpCompositeInsert:
		stop = 2
	case spirv.OpVectorShuffle:
		stop = 2
	case spirv.OpSwitch:
		// Selector and default label only; the case literals
		// alternate with labels and labels never name variables.
		stop = 2
	case spirv.OpVariable:
		// Skip the storage-class word.
		start = 1
	case spirv.OpImageSampleExplicitLod:
		// Skip the image-operands mask and what follows it.
		stop = 2
	case spirv.OpExtInst:
		visit(inst.IDOperand(0))
		for i := 2; i < inst.NumOperands(); i++ {
			visit(inst.IDOperand(i))
		}
		return
	case spirv.OpLoad, spirv.OpStore:
		// Drop the optional trailing memory-access mask.
		if inst.Opcode == spirv.OpLoad && stop > 1 {
			stop = 1
		}
		if inst.Opcode == spirv.OpStore && stop > 2 {
			stop = 2
		}
	}
	for i := start; i < stop; i++ {
		visit(inst.IDOperand(i))
	}
}

// reachableWorkgroupVariables walks the call tree from an entry point
// and collects every module-scope Workgroup variable its functions
// reference, in ascending id order.
func (w *Writer) reachableWorkgroupVariables(root spirv.ID) []spirv.ID {
	seen := make(map[spirv.ID]struct{})
	visited := make(map[spirv.ID]struct{})
	worklist := []spirv.ID{root}

	for len(worklist) > 0 {
		fnID := worklist[0]
		worklist = worklist[1:]
		if _, ok := visited[fnID]; ok {
			continue
		}
		visited[fnID] = struct{}{}

		fn := w.module.Function(fnID)
		if fn == nil {
			continue
		}
		for bi := range fn.Blocks {
			blk := &fn.Blocks[bi]
			insts := append([]*spirv.Instruction{}, &blk.Terminator)
			for ii := range blk.Body {
				insts = append(insts, &blk.Body[ii])
			}
			for _, inst := range insts {
				if inst.Opcode == spirv.OpFunctionCall {
					worklist = append(worklist, inst.IDOperand(0))
				}
				forEachIDOperand(inst, func(id spirv.ID) {
					if _, ok := w.localVarDecls[id]; ok {
						seen[id] = struct{}{}
					}
				})
			}
		}
	}

	ids := make([]spirv.ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// collectPhis fills the φ tables for one function: every OpPhi is
// declared at function entry, and each predecessor edge records the
// assignment it must perform before branching.
func (w *Writer) collectPhis(fn *spirv.Function) {
	for bi := range fn.Blocks {
		blk := &fn.Blocks[bi]
		for ii := range blk.Body {
			inst := &blk.Body[ii]
			if inst.Opcode != spirv.OpPhi {
				continue
			}
			w.phiVals[fn] = append(w.phiVals[fn], inst.Result)
			for i := 0; i+1 < inst.NumOperands(); i += 2 {
				value := inst.IDOperand(i)
				parent := inst.IDOperand(i + 1)
				if pred := fn.Block(parent); pred != nil {
					w.phiAssigns[pred] = append(w.phiAssigns[pred], [2]spirv.ID{inst.Result, value})
				}
			}
		}
	}
}

// translateFunction emits one function declaration or definition.
func (w *Writer) translateFunction(fn *spirv.Function) error {
	rtype := fn.Def.Type
	result := fn.Def.Result
	_, entrypoint := w.entryPoints[result]
	_, contractionOff := w.contractionOff[result]

	if contractionOff {
		w.writeLine("#pragma OPENCL FP_CONTRACT OFF")
	}

	_, imported := w.imports[result]
	_, exported := w.exports[result]
	if imported {
		w.write("extern ")
	} else if !exported && !entrypoint {
		w.write("static ")
	}
	if fn.Control()&spirv.FunctionControlInline != 0 {
		w.write("inline ")
	}

	w.write(w.srcType(rtype) + " ")
	if entrypoint {
		w.write("kernel ")
		if req, ok := w.localSize[result]; ok {
			w.write(fmt.Sprintf("__attribute((reqd_work_group_size(%d,%d,%d))) ", req[0], req[1], req[2]))
		}
		w.write(w.entryPoints[result])
	} else {
		w.write(w.varFor(result))
	}

	w.write("(")
	sep := ""
	for pi := range fn.Params {
		param := &fn.Params[pi]
		w.write(sep)
		if _, ok := w.noWrites[param.Result]; ok {
			w.write("const ")
		}
		decl, err := w.srcMemoryObjectDeclaration(param.Type, param.Result, w.varFor(param.Result))
		if err != nil {
			return err
		}
		w.write(decl)
		sep = ", "
	}
	w.write(")")

	if fn.IsDeclaration() {
		w.writeLine(";")
		return nil
	}
	w.writeLine("{")

	// Workgroup-storage globals reachable from an entry point's call
	// tree are declared at the top of its body.
	if entrypoint {
		for _, id := range w.reachableWorkgroupVariables(result) {
			w.writeLine(w.localVarDecls[id] + ";")
		}
	}

	w.collectPhis(fn)
	for _, phi := range w.phiVals[fn] {
		decl, err := w.srcVarDecl(w.typeIDFor(phi), w.varFor(phi), 0)
		if err != nil {
			return err
		}
		w.writeLine("  " + decl + ";")
	}

	for bi := range fn.Blocks {
		blk := &fn.Blocks[bi]
		w.writeLine(w.varFor(blk.ID()) + ":;")

		for ii := range blk.Body {
			src, err := w.translateInstruction(&blk.Body[ii])
			if err != nil {
				return err
			}
			if src != "" {
				w.writeLine("  " + src + ";")
			}
		}

		for _, assign := range w.phiAssigns[blk] {
			w.writeLine("  " + w.varFor(assign[0]) + " = " + w.varFor(assign[1]) + ";")
		}

		src, err := w.translateInstruction(&blk.Terminator)
		if err != nil {
			return err
		}
		if src != "" {
			w.writeLine("  " + src + ";")
		}
	}

	w.writeLine("}")
	if contractionOff {
		w.writeLine("#pragma OPENCL FP_CONTRACT ON")
	}
	return nil
}
