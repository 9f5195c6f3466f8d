// Package encode implements the interpreted-code Encoder (C2): one
// constructor per opcode (or closely related opcode family), each shaped
// "validate operands, pack word(s), return them" — it never owns a buffer
// and never retains state across calls. Package assembler drives these
// constructors and appends their output.
package encode

import (
	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/schema"
)

// Context carries the two pieces of per-program configuration the encoder
// needs but does not own: the bound table schema (nil if none was supplied)
// and the NULL-comparison policy selected for attribute branches.
type Context struct {
	Table   *schema.Table
	Unknown isa.UnknownHandling
}

// Result is what every encoder constructor returns: the words to append (in
// wire order), and whether the instruction is an attribute write or
// BRANCH_ATTR_OP_* comparison on a disk-backed column (attribute reads and
// NULL-check branches always report false).
type Result struct {
	Words    []isa.Word
	UsesDisk bool
}

func one(w isa.Word) Result { return Result{Words: []isa.Word{w}} }

func checkReg(op string, reg uint32) error {
	if reg > isa.MaxRegister {
		return badRegister(op, reg)
	}
	return nil
}

func checkRegs(op string, regs ...uint32) error {
	for _, r := range regs {
		if err := checkReg(op, r); err != nil {
			return err
		}
	}
	return nil
}

func checkConst16(op string, value uint64) error {
	if value >= isa.MaxImmediate16 {
		return badConstant(op, value)
	}
	return nil
}

func checkLabel(op string, label uint32) error {
	if label > isa.MaxLabel {
		return badLabel(op, label)
	}
	return nil
}

// resolveColumn looks up attrID in ctx.Table, failing with TableNotSet if no
// table is bound and BadAttributeId if the table doesn't know the id.
func (ctx Context) resolveColumn(op string, attrID uint32) (schema.Column, error) {
	if ctx.Table == nil {
		return schema.Column{}, tableNotSet(op)
	}
	col, ok := ctx.Table.Column(attrID)
	if !ok {
		return schema.Column{}, badAttribute(op, attrID)
	}
	return col, nil
}

func (ctx Context) nullSemantics() isa.NullSemantics {
	return isa.NullSemanticsFor(ctx.Unknown)
}
