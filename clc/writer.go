// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package clc

import (
	"fmt"
	"strings"

	"github.com/gogpu/spirv2clc/spirv"
)

// Writer generates OpenCL C source from a SPIR-V module.
//
// A Writer is single-use: translate() resets every per-id table,
// repopulates them while walking the module sections in layout order,
// and accumulates the output buffer. On failure the buffer contents
// are undefined and must not be delivered.
type Writer struct {
	module  *spirv.Module
	options *Options

	// Output buffer
	out strings.Builder

	// Per-id tables. Values reference each other by id only.
	names           map[spirv.ID]string
	types           map[spirv.ID]string
	typesSigned     map[spirv.ID]string
	literals        map[spirv.ID]string
	entryPoints     map[spirv.ID]string
	localSize       map[spirv.ID][3]uint32
	contractionOff  map[spirv.ID]struct{}
	builtinVars     map[spirv.ID]spirv.BuiltIn
	builtinVals     map[spirv.ID]spirv.BuiltIn
	roundingModes   map[spirv.ID]spirv.FPRoundingMode
	saturated       map[spirv.ID]struct{}
	exports         map[spirv.ID]string
	imports         map[spirv.ID]string
	restricts       map[spirv.ID]struct{}
	volatiles       map[spirv.ID]struct{}
	packed          map[spirv.ID]struct{}
	noWrites        map[spirv.ID]struct{}
	alignments      map[spirv.ID]uint32
	sampledImages   map[spirv.ID][2]spirv.ID
	booleanSrcTypes map[spirv.ID]string
	localVarDecls   map[spirv.ID]string

	// φ dataflow, collected per function before its blocks are
	// emitted.
	phiVals    map[*spirv.Function][]spirv.ID
	phiAssigns map[*spirv.Block][][2]spirv.ID
}

// newWriter creates a writer for one module.
func newWriter(module *spirv.Module, options *Options) *Writer {
	return &Writer{module: module, options: options}
}

// reset wipes every per-id table and the output buffer.
func (w *Writer) reset() {
	w.out.Reset()
	w.names = make(map[spirv.ID]string)
	w.types = make(map[spirv.ID]string)
	w.typesSigned = make(map[spirv.ID]string)
	w.literals = make(map[spirv.ID]string)
	w.entryPoints = make(map[spirv.ID]string)
	w.localSize = make(map[spirv.ID][3]uint32)
	w.contractionOff = make(map[spirv.ID]struct{})
	w.builtinVars = make(map[spirv.ID]spirv.BuiltIn)
	w.builtinVals = make(map[spirv.ID]spirv.BuiltIn)
	w.roundingModes = make(map[spirv.ID]spirv.FPRoundingMode)
	w.saturated = make(map[spirv.ID]struct{})
	w.exports = make(map[spirv.ID]string)
	w.imports = make(map[spirv.ID]string)
	w.restricts = make(map[spirv.ID]struct{})
	w.volatiles = make(map[spirv.ID]struct{})
	w.packed = make(map[spirv.ID]struct{})
	w.noWrites = make(map[spirv.ID]struct{})
	w.alignments = make(map[spirv.ID]uint32)
	w.sampledImages = make(map[spirv.ID][2]spirv.ID)
	w.booleanSrcTypes = make(map[spirv.ID]string)
	w.localVarDecls = make(map[spirv.ID]string)
	w.phiVals = make(map[*spirv.Function][]spirv.ID)
	w.phiAssigns = make(map[*spirv.Block][][2]spirv.ID)
}

// translate runs every pass in module layout order.
func (w *Writer) translate() error {
	w.reset()

	if err := w.translateCapabilities(); err != nil {
		return err
	}
	if err := w.translateExtensions(); err != nil {
		return err
	}
	if err := w.translateExtInstImports(); err != nil {
		return err
	}
	if err := w.translateMemoryModel(); err != nil {
		return err
	}
	if err := w.translateEntryPoints(); err != nil {
		return err
	}
	if err := w.translateExecutionModes(); err != nil {
		return err
	}
	if err := w.translateDebug(); err != nil {
		return err
	}
	if err := w.translateAnnotations(); err != nil {
		return err
	}
	if err := w.translateTypesValues(); err != nil {
		return err
	}
	for i := range w.module.Functions {
		if err := w.translateFunction(&w.module.Functions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) write(s string) {
	w.out.WriteString(s)
}

func (w *Writer) writeLine(s string) {
	w.out.WriteString(s)
	w.out.WriteByte('\n')
}

// typeDef returns the defining instruction of a type id.
func (w *Writer) typeDef(tyid spirv.ID) *spirv.Instruction {
	return w.module.Def(tyid)
}

// typeIDFor returns the type id of a value id.
func (w *Writer) typeIDFor(val spirv.ID) spirv.ID {
	return w.module.TypeOf(val)
}

// typeKind returns the opcode of the type declaration behind a type id.
func (w *Writer) typeKind(tyid spirv.ID) spirv.Opcode {
	if def := w.typeDef(tyid); def != nil {
		return def.Opcode
	}
	return spirv.OpNop
}

// varFor resolves an id to the expression naming it in the output:
// a pre-rendered literal, a linkage name, a sanitised OpName, a
// built-in call, or the canonical v<id> fallback.
func (w *Writer) varFor(id spirv.ID) string {
	if lit, ok := w.literals[id]; ok {
		return lit
	}
	if name, ok := w.exports[id]; ok {
		return name
	}
	if name, ok := w.imports[id]; ok {
		return name
	}
	if name, ok := w.names[id]; ok {
		return name
	}
	if builtin, ok := w.builtinVals[id]; ok && builtin == spirv.BuiltInWorkDim {
		return "get_work_dim()"
	}
	return fmt.Sprintf("v%d", id)
}

// srcType returns the unsigned spelling of a type id.
func (w *Writer) srcType(tyid spirv.ID) string {
	return w.types[tyid]
}

// srcTypeSigned returns the signed spelling of a type id.
func (w *Writer) srcTypeSigned(tyid spirv.ID) string {
	return w.typesSigned[tyid]
}

// srcTypeForValue returns the declaration type of a value: its boolean
// shadow type when one was stamped, the unsigned table entry otherwise.
func (w *Writer) srcTypeForValue(val spirv.ID) string {
	if ty, ok := w.booleanSrcTypes[val]; ok {
		return ty
	}
	return w.srcType(w.typeIDFor(val))
}

// srcVecComp returns the hex-suffixed swizzle of one vector component.
func (w *Writer) srcVecComp(val spirv.ID, comp uint32) string {
	return fmt.Sprintf("%s.s%x", w.varFor(val), comp)
}

// srcAs wraps an expression in a reinterpret cast to the unsigned
// spelling of a type.
func (w *Writer) srcAs(tyid spirv.ID, src string) string {
	return "as_" + w.srcType(tyid) + "(" + src + ")"
}

// srcAsSigned reinterprets a value as the signed spelling of its type.
func (w *Writer) srcAsSigned(val spirv.ID) string {
	return "as_" + w.srcTypeSigned(w.typeIDFor(val)) + "(" + w.varFor(val) + ")"
}

// srcCast wraps an expression in a C-style cast.
func (w *Writer) srcCast(tyid spirv.ID, src string) string {
	return "((" + w.srcType(tyid) + ")" + src + ")"
}

// srcCastSigned wraps an expression in a C-style cast to the signed
// spelling.
func (w *Writer) srcCastSigned(tyid spirv.ID, src string) string {
	return "((" + w.srcTypeSigned(tyid) + ")" + src + ")"
}

// srcConvert renders convert_<T>(val).
func (w *Writer) srcConvert(val, tyid spirv.ID) string {
	return "convert_" + w.srcType(tyid) + "(" + w.varFor(val) + ")"
}

// srcConvertSigned renders convert_<signed T>(as_signed(val)).
func (w *Writer) srcConvertSigned(val, tyid spirv.ID) string {
	return "convert_" + w.srcTypeSigned(tyid) + "(" + w.srcAsSigned(val) + ")"
}

// call renders fn(arg, arg, ...) from pre-rendered argument text.
func (w *Writer) call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

// callIDs renders fn(...) over value ids.
func (w *Writer) callIDs(fn string, ids ...spirv.ID) string {
	args := make([]string, len(ids))
	for i, id := range ids {
		args[i] = w.varFor(id)
	}
	return w.call(fn, args...)
}

// callSigned renders fn(...) with every argument bridged through its
// signed reinterpretation.
func (w *Writer) callSigned(fn string, ids ...spirv.ID) string {
	args := make([]string, len(ids))
	for i, id := range ids {
		args[i] = w.srcAsSigned(id)
	}
	return w.call(fn, args...)
}

// isValidIdentifier reports whether name is free: not yet issued and
// not reserved.
func (w *Writer) isValidIdentifier(name string) bool {
	for _, used := range w.names {
		if used == name {
			return false
		}
	}
	_, reserved := reservedIdentifiers[name]
	return !reserved
}

// makeValidIdentifier returns name, suffixed and numbered as needed,
// so that it neither collides with a reserved identifier nor repeats
// an already-issued name.
func (w *Writer) makeValidIdentifier(name string) string {
	newname := name
	if !w.isValidIdentifier(newname) {
		newname += madeValidSuffix
	}
	for iter := 1; !w.isValidIdentifier(newname); iter++ {
		candidate := fmt.Sprintf("%s%d", newname, iter)
		if w.isValidIdentifier(candidate) {
			newname = candidate
			break
		}
	}
	return newname
}
