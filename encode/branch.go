package encode

import (
	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/schema"
)

// Branch encodes unconditional BRANCH(label).
func (ctx Context) Branch(label uint32) (Result, error) {
	if err := checkLabel("BRANCH", label); err != nil {
		return Result{}, err
	}
	return one(isa.BranchUnconditionalWord(label)), nil
}

// BranchRegEqNull encodes BRANCH_REG_EQ_NULL(reg, label).
func (ctx Context) BranchRegEqNull(reg, label uint32) (Result, error) {
	return ctx.branchRegNull("BRANCH_REG_EQ_NULL", isa.BranchRegEqNull, reg, label)
}

// BranchRegNeNull encodes BRANCH_REG_NE_NULL(reg, label).
func (ctx Context) BranchRegNeNull(reg, label uint32) (Result, error) {
	return ctx.branchRegNull("BRANCH_REG_NE_NULL", isa.BranchRegNeNull, reg, label)
}

func (ctx Context) branchRegNull(mnemonic string, op isa.OpCode, reg, label uint32) (Result, error) {
	if err := checkReg(mnemonic, reg); err != nil {
		return Result{}, err
	}
	if err := checkLabel(mnemonic, label); err != nil {
		return Result{}, err
	}
	return one(isa.BranchRegNullWord(op, reg, label)), nil
}

// reverseForCompare reports whether mnemonic is one of the inequality
// comparisons (LT/LE/GT/GE), which the assembler encodes with its operands
// swapped so the executor always evaluates "Lvalue <cond> Rvalue" in a
// single canonical direction; EQ/NE are symmetric and pass through as-is.
func reverseForCompare(mnemonic string) bool {
	switch mnemonic {
	case "LT", "LE", "GT", "GE":
		return true
	default:
		return false
	}
}

func (ctx Context) branchRegReg(mnemonic string, cmp string, op isa.OpCode, reg1, reg2, label uint32) (Result, error) {
	if err := checkRegs(mnemonic, reg1, reg2); err != nil {
		return Result{}, err
	}
	if err := checkLabel(mnemonic, label); err != nil {
		return Result{}, err
	}
	if reverseForCompare(cmp) {
		reg1, reg2 = reg2, reg1
	}
	return one(isa.BranchRegRegWord(op, reg1, reg2, label)), nil
}

func (ctx Context) BranchEqRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_EQ_REG_REG", "EQ", isa.BranchEqRegReg, reg1, reg2, label)
}
func (ctx Context) BranchNeRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_NE_REG_REG", "NE", isa.BranchNeRegReg, reg1, reg2, label)
}
func (ctx Context) BranchLtRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_LT_REG_REG", "LT", isa.BranchLtRegReg, reg1, reg2, label)
}
func (ctx Context) BranchLeRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_LE_REG_REG", "LE", isa.BranchLeRegReg, reg1, reg2, label)
}
func (ctx Context) BranchGtRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_GT_REG_REG", "GT", isa.BranchGtRegReg, reg1, reg2, label)
}
func (ctx Context) BranchGeRegReg(reg1, reg2, label uint32) (Result, error) {
	return ctx.branchRegReg("BRANCH_GE_REG_REG", "GE", isa.BranchGeRegReg, reg1, reg2, label)
}

// branchRegConst packs the register-vs-constant comparison forms. There is
// no second register operand to reverse here — the constant stays on the
// right, and the executor's extended-opcode decoder already knows these
// compare in that fixed direction.
func (ctx Context) branchRegConst(mnemonic string, op isa.OpCode, reg, constant, label uint32) (Result, error) {
	if err := checkReg(mnemonic, reg); err != nil {
		return Result{}, err
	}
	if err := checkConst16(mnemonic, uint64(constant)); err != nil {
		return Result{}, err
	}
	if err := checkLabel(mnemonic, label); err != nil {
		return Result{}, err
	}
	return one(isa.BranchRegConstWord(op, reg, constant, label)), nil
}

func (ctx Context) BranchEqRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_EQ_REG_CONST", isa.BranchEqRegReg, reg, constant, label)
}
func (ctx Context) BranchNeRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_NE_REG_CONST", isa.BranchNeRegReg, reg, constant, label)
}
func (ctx Context) BranchLtRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_LT_REG_CONST", isa.BranchLtRegReg, reg, constant, label)
}
func (ctx Context) BranchLeRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_LE_REG_CONST", isa.BranchLeRegReg, reg, constant, label)
}
func (ctx Context) BranchGtRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_GT_REG_CONST", isa.BranchGtRegReg, reg, constant, label)
}
func (ctx Context) BranchGeRegConst(reg, constant, label uint32) (Result, error) {
	return ctx.branchRegConst("BRANCH_GE_REG_CONST", isa.BranchGeRegReg, reg, constant, label)
}

// BranchAttrOpArg encodes BRANCH_ATTR_OP_ARG(attrId, cond, literal, label):
// compares a column against an inline byte literal. The column's type must
// not be a large object (BLOB/TEXT) — those require the mem-based forms.
func (ctx Context) BranchAttrOpArg(attrID uint32, cond isa.BinaryCondition, literal []byte, label uint32) (Result, error) {
	const op = "BRANCH_ATTR_OP_ARG"
	col, err := ctx.resolveColumn(op, attrID)
	if err != nil {
		return Result{}, err
	}
	if col.IsLargeObject() {
		return Result{}, notBindable(op, attrID, attrID)
	}
	if err := checkLabel(op, label); err != nil {
		return Result{}, err
	}
	if len(literal) == 0 || uint64(len(literal)) >= isa.MaxImmediate16 {
		return Result{}, badLength(op, uint32(len(literal)))
	}
	if col.Type == schema.TypeBit {
		literal = maskBitLiteral(literal, col.BitLength)
	}
	words := make([]isa.Word, 0, 2+isa.WordsForBytes(uint32(len(literal))))
	words = append(words, isa.BranchColOpcodeWord(cond, ctx.nullSemantics())|label<<16)
	words = append(words, isa.BranchColHeaderWord(attrID, uint32(len(literal))))
	words = append(words, packLiteral(literal)...)
	return Result{Words: words, UsesDisk: col.Storage == schema.StorageDisk}, nil
}

// BranchAttrOpParam encodes BRANCH_ATTR_OP_PARAM(attrId, cond, paramNo, label):
// compares a column against an operation parameter resolved at execution time.
func (ctx Context) BranchAttrOpParam(attrID uint32, cond isa.BinaryCondition, paramNo, label uint32) (Result, error) {
	const op = "BRANCH_ATTR_OP_PARAM"
	col, err := ctx.resolveColumn(op, attrID)
	if err != nil {
		return Result{}, err
	}
	if err := checkLabel(op, label); err != nil {
		return Result{}, err
	}
	if err := checkConst16(op, uint64(paramNo)); err != nil {
		return Result{}, err
	}
	words := []isa.Word{
		isa.BranchColParameterOpcodeWord(cond, ctx.nullSemantics()) | label<<16,
		isa.BranchColParameterHeaderWord(attrID, paramNo),
	}
	return Result{Words: words, UsesDisk: col.Storage == schema.StorageDisk}, nil
}

// BranchAttrOpAttr encodes BRANCH_ATTR_OP_ATTR(attrId1, cond, attrId2, label):
// compares two columns of the bound table directly; they must be bindable.
func (ctx Context) BranchAttrOpAttr(attrID1 uint32, cond isa.BinaryCondition, attrID2, label uint32) (Result, error) {
	const op = "BRANCH_ATTR_OP_ATTR"
	col1, err := ctx.resolveColumn(op, attrID1)
	if err != nil {
		return Result{}, err
	}
	col2, err := ctx.resolveColumn(op, attrID2)
	if err != nil {
		return Result{}, err
	}
	if !schema.Bindable(col1, col2) {
		return Result{}, notBindable(op, attrID1, attrID2)
	}
	if err := checkLabel(op, label); err != nil {
		return Result{}, err
	}
	words := []isa.Word{
		isa.BranchColAttrIDOpcodeWord(cond, ctx.nullSemantics()) | label<<16,
		isa.BranchColAttrIDHeaderWord(attrID1, attrID2),
	}
	return Result{Words: words, UsesDisk: col1.Storage == schema.StorageDisk || col2.Storage == schema.StorageDisk}, nil
}

// BranchAttrEqNull encodes BRANCH_ATTR_EQ_NULL(attrId, label).
func (ctx Context) BranchAttrEqNull(attrID, label uint32) (Result, error) {
	return ctx.branchAttrNull("BRANCH_ATTR_EQ_NULL", isa.BranchAttrEqNull, attrID, label)
}

// BranchAttrNeNull encodes BRANCH_ATTR_NE_NULL(attrId, label).
func (ctx Context) BranchAttrNeNull(attrID, label uint32) (Result, error) {
	return ctx.branchAttrNull("BRANCH_ATTR_NE_NULL", isa.BranchAttrNeNull, attrID, label)
}

func (ctx Context) branchAttrNull(mnemonic string, op isa.OpCode, attrID, label uint32) (Result, error) {
	if _, err := ctx.resolveColumn(mnemonic, attrID); err != nil {
		return Result{}, err
	}
	if err := checkLabel(mnemonic, label); err != nil {
		return Result{}, err
	}
	words := []isa.Word{isa.BranchAttrNullWord(op) | label<<16, attrID}
	return Result{Words: words}, nil
}
