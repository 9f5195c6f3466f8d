package encode

import "github.com/logicalclocks/rondb-sub003/isa"

// Program memory reads and writes come in four widths (8/16/32/64-bit) and
// two addressing forms: a constant byte offset baked into the instruction,
// or a register holding the offset (the "extended", overflow-bit form).

type memConstOp func(reg, constant uint32) isa.Word
type memRegOp func(reg, regOffset uint32) isa.Word

func (ctx Context) memConst(mnemonic string, reg, offset uint32, build memConstOp) (Result, error) {
	if err := checkReg(mnemonic, reg); err != nil {
		return Result{}, err
	}
	if err := checkConst16(mnemonic, uint64(offset)); err != nil {
		return Result{}, err
	}
	return one(build(reg, offset)), nil
}

func (ctx Context) memReg(mnemonic string, reg, regOffset uint32, build memRegOp) (Result, error) {
	if err := checkRegs(mnemonic, reg, regOffset); err != nil {
		return Result{}, err
	}
	return one(build(reg, regOffset)), nil
}

func (ctx Context) ReadUint8MemToRegConst(dst, offset uint32) (Result, error) {
	return ctx.memConst("READ_UINT8_MEM_TO_REG", dst, offset, isa.ReadUint8MemConstWord)
}
func (ctx Context) ReadUint16MemToRegConst(dst, offset uint32) (Result, error) {
	return ctx.memConst("READ_UINT16_MEM_TO_REG", dst, offset, isa.ReadUint16MemConstWord)
}
func (ctx Context) ReadUint32MemToRegConst(dst, offset uint32) (Result, error) {
	return ctx.memConst("READ_UINT32_MEM_TO_REG", dst, offset, isa.ReadUint32MemConstWord)
}
func (ctx Context) ReadInt64MemToRegConst(dst, offset uint32) (Result, error) {
	return ctx.memConst("READ_INT64_MEM_TO_REG", dst, offset, isa.ReadInt64MemConstWord)
}

func (ctx Context) ReadUint8MemToRegReg(dst, regOffset uint32) (Result, error) {
	return ctx.memReg("READ_UINT8_MEM_TO_REG", dst, regOffset, isa.ReadUint8MemRegWord)
}
func (ctx Context) ReadUint16MemToRegReg(dst, regOffset uint32) (Result, error) {
	return ctx.memReg("READ_UINT16_MEM_TO_REG", dst, regOffset, isa.ReadUint16MemRegWord)
}
func (ctx Context) ReadUint32MemToRegReg(dst, regOffset uint32) (Result, error) {
	return ctx.memReg("READ_UINT32_MEM_TO_REG", dst, regOffset, isa.ReadUint32MemRegWord)
}
func (ctx Context) ReadInt64MemToRegReg(dst, regOffset uint32) (Result, error) {
	return ctx.memReg("READ_INT64_MEM_TO_REG", dst, regOffset, isa.ReadInt64MemRegWord)
}

func (ctx Context) WriteUint8RegToMemConst(src, offset uint32) (Result, error) {
	return ctx.memConst("WRITE_UINT8_REG_TO_MEM", src, offset, isa.WriteUint8MemConstWord)
}
func (ctx Context) WriteUint16RegToMemConst(src, offset uint32) (Result, error) {
	return ctx.memConst("WRITE_UINT16_REG_TO_MEM", src, offset, isa.WriteUint16MemConstWord)
}
func (ctx Context) WriteUint32RegToMemConst(src, offset uint32) (Result, error) {
	return ctx.memConst("WRITE_UINT32_REG_TO_MEM", src, offset, isa.WriteUint32MemConstWord)
}
func (ctx Context) WriteInt64RegToMemConst(src, offset uint32) (Result, error) {
	return ctx.memConst("WRITE_INT64_REG_TO_MEM", src, offset, isa.WriteInt64MemConstWord)
}

func (ctx Context) WriteUint8RegToMemReg(src, regOffset uint32) (Result, error) {
	return ctx.memReg("WRITE_UINT8_REG_TO_MEM", src, regOffset, isa.WriteUint8MemRegWord)
}
func (ctx Context) WriteUint16RegToMemReg(src, regOffset uint32) (Result, error) {
	return ctx.memReg("WRITE_UINT16_REG_TO_MEM", src, regOffset, isa.WriteUint16MemRegWord)
}
func (ctx Context) WriteUint32RegToMemReg(src, regOffset uint32) (Result, error) {
	return ctx.memReg("WRITE_UINT32_REG_TO_MEM", src, regOffset, isa.WriteUint32MemRegWord)
}
func (ctx Context) WriteInt64RegToMemReg(src, regOffset uint32) (Result, error) {
	return ctx.memReg("WRITE_INT64_REG_TO_MEM", src, regOffset, isa.WriteInt64MemRegWord)
}
