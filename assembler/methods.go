package assembler

import "github.com/logicalclocks/rondb-sub003/isa"

// Each method below validates and packs one instruction via package encode,
// then appends the result through emit. They are thin by design — all
// instruction-specific logic (bounds checks, bit packing, operand
// reordering) lives in encode; this layer only owns buffer placement,
// UsesDisk aggregation, and the sticky-error discipline.

func (a *Assembler) ReadAttr(attrID, regDst uint32) error {
	return a.emit(a.ctx().ReadAttr(attrID, regDst))
}
func (a *Assembler) WriteAttr(attrID, regSrc uint32) error {
	return a.emit(a.ctx().WriteAttr(attrID, regSrc))
}
func (a *Assembler) ReadAttrToMem(attrID, regMemOffset, regDst uint32) error {
	return a.emit(a.ctx().ReadAttrToMem(attrID, regMemOffset, regDst))
}
func (a *Assembler) ReadPartialAttrToMem(attrID, regMemOffset, regStartPos, regSize, regDst uint32) error {
	return a.emit(a.ctx().ReadPartialAttrToMem(attrID, regMemOffset, regStartPos, regSize, regDst))
}
func (a *Assembler) WriteAttrFromMem(attrID, regMemOffset, regSize uint32) error {
	return a.emit(a.ctx().WriteAttrFromMem(attrID, regMemOffset, regSize))
}
func (a *Assembler) AppendAttrFromMem(attrID, regMemOffset, regSize uint32) error {
	return a.emit(a.ctx().AppendAttrFromMem(attrID, regMemOffset, regSize))
}

func (a *Assembler) LoadConstNull(reg uint32) error { return a.emit(a.ctx().LoadConstNull(reg)) }
func (a *Assembler) LoadConst16(reg, value uint32) error {
	return a.emit(a.ctx().LoadConst16(reg, value))
}
func (a *Assembler) LoadConst32(reg, value uint32) error {
	return a.emit(a.ctx().LoadConst32(reg, value))
}
func (a *Assembler) LoadConst64(reg uint32, value uint64) error {
	return a.emit(a.ctx().LoadConst64(reg, value))
}
func (a *Assembler) LoadConstMem(regMemOffset, regSizeDst uint32, data []byte) error {
	return a.emit(a.ctx().LoadConstMem(regMemOffset, regSizeDst, data))
}

func (a *Assembler) AddRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().AddRegReg(dst, src1, src2))
}
func (a *Assembler) SubRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().SubRegReg(dst, src1, src2))
}
func (a *Assembler) LshiftRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().LshiftRegReg(dst, src1, src2))
}
func (a *Assembler) RshiftRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().RshiftRegReg(dst, src1, src2))
}
func (a *Assembler) MulRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().MulRegReg(dst, src1, src2))
}
func (a *Assembler) DivRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().DivRegReg(dst, src1, src2))
}
func (a *Assembler) AndRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().AndRegReg(dst, src1, src2))
}
func (a *Assembler) OrRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().OrRegReg(dst, src1, src2))
}
func (a *Assembler) XorRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().XorRegReg(dst, src1, src2))
}
func (a *Assembler) ModRegReg(dst, src1, src2 uint32) error {
	return a.emit(a.ctx().ModRegReg(dst, src1, src2))
}
func (a *Assembler) NotRegReg(dst, src uint32) error { return a.emit(a.ctx().NotRegReg(dst, src)) }

func (a *Assembler) AddConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().AddConstRegToReg(dst, src, c))
}
func (a *Assembler) SubConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().SubConstRegToReg(dst, src, c))
}
func (a *Assembler) LshiftConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().LshiftConstRegToReg(dst, src, c))
}
func (a *Assembler) RshiftConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().RshiftConstRegToReg(dst, src, c))
}
func (a *Assembler) MulConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().MulConstRegToReg(dst, src, c))
}
func (a *Assembler) DivConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().DivConstRegToReg(dst, src, c))
}
func (a *Assembler) AndConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().AndConstRegToReg(dst, src, c))
}
func (a *Assembler) OrConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().OrConstRegToReg(dst, src, c))
}
func (a *Assembler) XorConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().XorConstRegToReg(dst, src, c))
}
func (a *Assembler) ModConstRegToReg(dst, src, c uint32) error {
	return a.emit(a.ctx().ModConstRegToReg(dst, src, c))
}

func (a *Assembler) ConvertSize(dstSizeReg, regOffset uint32) error {
	return a.emit(a.ctx().ConvertSize(dstSizeReg, regOffset))
}
func (a *Assembler) WriteSizeMem(srcSizeReg, regOffset uint32) error {
	return a.emit(a.ctx().WriteSizeMem(srcSizeReg, regOffset))
}
func (a *Assembler) WriteInterpreterOutput(reg, outputIndex uint32) error {
	return a.emit(a.ctx().WriteInterpreterOutput(reg, outputIndex))
}

func (a *Assembler) ReadUint8MemToRegConst(dst, offset uint32) error {
	return a.emit(a.ctx().ReadUint8MemToRegConst(dst, offset))
}
func (a *Assembler) ReadUint16MemToRegConst(dst, offset uint32) error {
	return a.emit(a.ctx().ReadUint16MemToRegConst(dst, offset))
}
func (a *Assembler) ReadUint32MemToRegConst(dst, offset uint32) error {
	return a.emit(a.ctx().ReadUint32MemToRegConst(dst, offset))
}
func (a *Assembler) ReadInt64MemToRegConst(dst, offset uint32) error {
	return a.emit(a.ctx().ReadInt64MemToRegConst(dst, offset))
}
func (a *Assembler) ReadUint8MemToRegReg(dst, regOffset uint32) error {
	return a.emit(a.ctx().ReadUint8MemToRegReg(dst, regOffset))
}
func (a *Assembler) ReadUint16MemToRegReg(dst, regOffset uint32) error {
	return a.emit(a.ctx().ReadUint16MemToRegReg(dst, regOffset))
}
func (a *Assembler) ReadUint32MemToRegReg(dst, regOffset uint32) error {
	return a.emit(a.ctx().ReadUint32MemToRegReg(dst, regOffset))
}
func (a *Assembler) ReadInt64MemToRegReg(dst, regOffset uint32) error {
	return a.emit(a.ctx().ReadInt64MemToRegReg(dst, regOffset))
}
func (a *Assembler) WriteUint8RegToMemConst(src, offset uint32) error {
	return a.emit(a.ctx().WriteUint8RegToMemConst(src, offset))
}
func (a *Assembler) WriteUint16RegToMemConst(src, offset uint32) error {
	return a.emit(a.ctx().WriteUint16RegToMemConst(src, offset))
}
func (a *Assembler) WriteUint32RegToMemConst(src, offset uint32) error {
	return a.emit(a.ctx().WriteUint32RegToMemConst(src, offset))
}
func (a *Assembler) WriteInt64RegToMemConst(src, offset uint32) error {
	return a.emit(a.ctx().WriteInt64RegToMemConst(src, offset))
}
func (a *Assembler) WriteUint8RegToMemReg(src, regOffset uint32) error {
	return a.emit(a.ctx().WriteUint8RegToMemReg(src, regOffset))
}
func (a *Assembler) WriteUint16RegToMemReg(src, regOffset uint32) error {
	return a.emit(a.ctx().WriteUint16RegToMemReg(src, regOffset))
}
func (a *Assembler) WriteUint32RegToMemReg(src, regOffset uint32) error {
	return a.emit(a.ctx().WriteUint32RegToMemReg(src, regOffset))
}
func (a *Assembler) WriteInt64RegToMemReg(src, regOffset uint32) error {
	return a.emit(a.ctx().WriteInt64RegToMemReg(src, regOffset))
}

func (a *Assembler) ExitOK() error               { return a.emit(a.ctx().ExitOK()) }
func (a *Assembler) ExitOKLast() error           { return a.emit(a.ctx().ExitOKLast()) }
func (a *Assembler) ExitRefuse(errCode uint32) error {
	return a.emit(a.ctx().ExitRefuse(errCode))
}

// Branch emission records the symbolic label number verbatim in bits
// 16..31 of the opcode word; Finalise resolves it later. Label numbers are
// not validated against a defined-label set here — a program may branch
// forward to a label defined later in the same assembly.

func (a *Assembler) Branch(label uint32) error { return a.emit(a.ctx().Branch(label)) }
func (a *Assembler) BranchRegEqNull(reg, label uint32) error {
	return a.emit(a.ctx().BranchRegEqNull(reg, label))
}
func (a *Assembler) BranchRegNeNull(reg, label uint32) error {
	return a.emit(a.ctx().BranchRegNeNull(reg, label))
}
func (a *Assembler) BranchEqRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchEqRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchNeRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchNeRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchLtRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchLtRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchLeRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchLeRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchGtRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchGtRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchGeRegReg(reg1, reg2, label uint32) error {
	return a.emit(a.ctx().BranchGeRegReg(reg1, reg2, label))
}
func (a *Assembler) BranchEqRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchEqRegConst(reg, constant, label))
}
func (a *Assembler) BranchNeRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchNeRegConst(reg, constant, label))
}
func (a *Assembler) BranchLtRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchLtRegConst(reg, constant, label))
}
func (a *Assembler) BranchLeRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchLeRegConst(reg, constant, label))
}
func (a *Assembler) BranchGtRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchGtRegConst(reg, constant, label))
}
func (a *Assembler) BranchGeRegConst(reg, constant, label uint32) error {
	return a.emit(a.ctx().BranchGeRegConst(reg, constant, label))
}

func (a *Assembler) BranchAttrOpArg(attrID uint32, cond isa.BinaryCondition, literal []byte, label uint32) error {
	return a.emit(a.ctx().BranchAttrOpArg(attrID, cond, literal, label))
}
func (a *Assembler) BranchAttrOpParam(attrID uint32, cond isa.BinaryCondition, paramNo, label uint32) error {
	return a.emit(a.ctx().BranchAttrOpParam(attrID, cond, paramNo, label))
}
func (a *Assembler) BranchAttrOpAttr(attrID1 uint32, cond isa.BinaryCondition, attrID2, label uint32) error {
	return a.emit(a.ctx().BranchAttrOpAttr(attrID1, cond, attrID2, label))
}
func (a *Assembler) BranchAttrEqNull(attrID, label uint32) error {
	return a.emit(a.ctx().BranchAttrEqNull(attrID, label))
}
func (a *Assembler) BranchAttrNeNull(attrID, label uint32) error {
	return a.emit(a.ctx().BranchAttrNeNull(attrID, label))
}
