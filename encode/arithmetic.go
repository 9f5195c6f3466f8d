package encode

import "github.com/logicalclocks/rondb-sub003/isa"

// regRegOp packs any OP_REG_REG instruction: DstReg := SrcReg1 OP SrcReg2.
type regRegOp func(dst, src1, src2 uint32) isa.Word

func (ctx Context) regReg(op, mnemonic string, dst, src1, src2 uint32, build regRegOp) (Result, error) {
	if err := checkRegs(mnemonic, dst, src1, src2); err != nil {
		return Result{}, err
	}
	return one(build(dst, src1, src2)), nil
}

func (ctx Context) AddRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "ADD_REG_REG", dst, src1, src2, isa.AddWord)
}
func (ctx Context) SubRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "SUB_REG_REG", dst, src1, src2, isa.SubWord)
}
func (ctx Context) LshiftRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "LSHIFT_REG_REG", dst, src1, src2, isa.LshiftWord)
}
func (ctx Context) RshiftRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "RSHIFT_REG_REG", dst, src1, src2, isa.RshiftWord)
}
func (ctx Context) MulRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "MUL_REG_REG", dst, src1, src2, isa.MulWord)
}
func (ctx Context) DivRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "DIV_REG_REG", dst, src1, src2, isa.DivWord)
}
func (ctx Context) AndRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "AND_REG_REG", dst, src1, src2, isa.AndWord)
}
func (ctx Context) OrRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "OR_REG_REG", dst, src1, src2, isa.OrWord)
}
func (ctx Context) XorRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "XOR_REG_REG", dst, src1, src2, isa.XorWord)
}
func (ctx Context) ModRegReg(dst, src1, src2 uint32) (Result, error) {
	return ctx.regReg("", "MOD_REG_REG", dst, src1, src2, isa.ModWord)
}

// NotRegReg encodes NOT_REG_REG(dst, src); it is unary, so it bypasses
// regReg's three-operand shape.
func (ctx Context) NotRegReg(dst, src uint32) (Result, error) {
	if err := checkRegs("NOT_REG_REG", dst, src); err != nil {
		return Result{}, err
	}
	return one(isa.NotWord(dst, src)), nil
}

// constRegOp packs any OP_CONST_REG_TO_REG instruction: DstReg := SrcReg OP
// Constant16.
type constRegOp func(dst, src, constant uint32) isa.Word

func (ctx Context) constReg(mnemonic string, dst, src, constant uint32, build constRegOp) (Result, error) {
	if err := checkRegs(mnemonic, dst, src); err != nil {
		return Result{}, err
	}
	if err := checkConst16(mnemonic, uint64(constant)); err != nil {
		return Result{}, err
	}
	return one(build(dst, src, constant)), nil
}

func (ctx Context) AddConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("ADD_CONST_REG_TO_REG", dst, src, c, isa.AddCWord)
}
func (ctx Context) SubConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("SUB_CONST_REG_TO_REG", dst, src, c, isa.SubCWord)
}
func (ctx Context) LshiftConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("LSHIFT_CONST_REG_TO_REG", dst, src, c, isa.LshiftCWord)
}
func (ctx Context) RshiftConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("RSHIFT_CONST_REG_TO_REG", dst, src, c, isa.RshiftCWord)
}
func (ctx Context) MulConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("MUL_CONST_REG_TO_REG", dst, src, c, isa.MulCWord)
}
func (ctx Context) DivConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("DIV_CONST_REG_TO_REG", dst, src, c, isa.DivCWord)
}
func (ctx Context) AndConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("AND_CONST_REG_TO_REG", dst, src, c, isa.AndCWord)
}
func (ctx Context) OrConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("OR_CONST_REG_TO_REG", dst, src, c, isa.OrCWord)
}
func (ctx Context) XorConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("XOR_CONST_REG_TO_REG", dst, src, c, isa.XorCWord)
}
func (ctx Context) ModConstRegToReg(dst, src, c uint32) (Result, error) {
	return ctx.constReg("MOD_CONST_REG_TO_REG", dst, src, c, isa.ModCWord)
}

// ConvertSize encodes CONVERT_SIZE(dstSizeReg, regOffset): converts a
// program-memory byte offset into the data size still remaining.
func (ctx Context) ConvertSize(dstSizeReg, regOffset uint32) (Result, error) {
	if err := checkRegs("CONVERT_SIZE", dstSizeReg, regOffset); err != nil {
		return Result{}, err
	}
	return one(isa.ConvertSizeWord(dstSizeReg, regOffset)), nil
}

// WriteSizeMem encodes the inverse direction of CONVERT_SIZE.
func (ctx Context) WriteSizeMem(srcSizeReg, regOffset uint32) (Result, error) {
	if err := checkRegs("WRITE_SIZE_MEM", srcSizeReg, regOffset); err != nil {
		return Result{}, err
	}
	return one(isa.WriteSizeMemWord(srcSizeReg, regOffset)), nil
}
