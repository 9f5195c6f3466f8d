package encode

import (
	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/schema"
)

// ReadAttr encodes READ_ATTR_INTO_REG(attrId, regDst).
func (ctx Context) ReadAttr(attrID, regDst uint32) (Result, error) {
	const op = "READ_ATTR_INTO_REG"
	if _, err := ctx.resolveColumn(op, attrID); err != nil {
		return Result{}, err
	}
	if err := checkReg(op, regDst); err != nil {
		return Result{}, err
	}
	return one(isa.ReadAttrWord(attrID, regDst)), nil
}

// WriteAttr encodes WRITE_ATTR_FROM_REG(attrId, regSrc); it sets UsesDisk
// when the column is disk-backed.
func (ctx Context) WriteAttr(attrID, regSrc uint32) (Result, error) {
	const op = "WRITE_ATTR_FROM_REG"
	col, err := ctx.resolveColumn(op, attrID)
	if err != nil {
		return Result{}, err
	}
	if err := checkReg(op, regSrc); err != nil {
		return Result{}, err
	}
	return Result{Words: []isa.Word{isa.WriteAttrWord(attrID, regSrc)}, UsesDisk: col.Storage == schema.StorageDisk}, nil
}

// ReadAttrToMem encodes READ_ATTR_TO_MEM(attrId, regMemOffset, regDst),
// copying the whole column into program memory.
func (ctx Context) ReadAttrToMem(attrID, regMemOffset, regDst uint32) (Result, error) {
	const op = "READ_ATTR_TO_MEM"
	if _, err := ctx.resolveColumn(op, attrID); err != nil {
		return Result{}, err
	}
	if err := checkRegs(op, regMemOffset, regDst); err != nil {
		return Result{}, err
	}
	return one(isa.ReadAttrToMemWord(attrID, regMemOffset, regDst)), nil
}

// ReadPartialAttrToMem encodes READ_PARTIAL_ATTR_TO_MEM(attrId,
// regMemOffset, regStartPos, regSize, regDst): copies regSize bytes
// starting at regStartPos of the column into program memory.
func (ctx Context) ReadPartialAttrToMem(attrID, regMemOffset, regStartPos, regSize, regDst uint32) (Result, error) {
	const op = "READ_PARTIAL_ATTR_TO_MEM"
	if _, err := ctx.resolveColumn(op, attrID); err != nil {
		return Result{}, err
	}
	if err := checkRegs(op, regMemOffset, regStartPos, regSize, regDst); err != nil {
		return Result{}, err
	}
	return one(isa.ReadPartialAttrToMemWord(attrID, regMemOffset, regStartPos, regSize, regDst)), nil
}

// WriteAttrFromMem encodes WRITE_ATTR_FROM_MEM(attrId, regMemOffset,
// regSize): writes regSize bytes from program memory into the column.
func (ctx Context) WriteAttrFromMem(attrID, regMemOffset, regSize uint32) (Result, error) {
	const op = "WRITE_ATTR_FROM_MEM"
	col, err := ctx.resolveColumn(op, attrID)
	if err != nil {
		return Result{}, err
	}
	if err := checkRegs(op, regMemOffset, regSize); err != nil {
		return Result{}, err
	}
	return Result{
		Words:    []isa.Word{isa.WriteAttrFromMemWord(attrID, regMemOffset, regSize)},
		UsesDisk: col.Storage == schema.StorageDisk,
	}, nil
}

// AppendAttrFromMem encodes APPEND_ATTR_FROM_MEM(attrId, regMemOffset,
// regSize), appending to a variable-length column.
func (ctx Context) AppendAttrFromMem(attrID, regMemOffset, regSize uint32) (Result, error) {
	const op = "APPEND_ATTR_FROM_MEM"
	col, err := ctx.resolveColumn(op, attrID)
	if err != nil {
		return Result{}, err
	}
	if err := checkRegs(op, regMemOffset, regSize); err != nil {
		return Result{}, err
	}
	return Result{
		Words:    []isa.Word{isa.AppendAttrFromMemWord(attrID, regMemOffset, regSize)},
		UsesDisk: col.Storage == schema.StorageDisk,
	}, nil
}
