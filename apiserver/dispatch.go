package apiserver

import (
	"fmt"

	"github.com/logicalclocks/rondb-sub003/assembler"
	"github.com/logicalclocks/rondb-sub003/isa"
)

var conditions = map[string]isa.BinaryCondition{
	"EQ":           isa.CondEQ,
	"NE":           isa.CondNE,
	"LT":           isa.CondLT,
	"LE":           isa.CondLE,
	"GT":           isa.CondGT,
	"GE":           isa.CondGE,
	"LIKE":         isa.CondLIKE,
	"NOT_LIKE":     isa.CondNotLIKE,
	"AND_EQ_MASK":  isa.CondAndEqMask,
	"AND_NE_MASK":  isa.CondAndNeMask,
	"AND_EQ_ZERO":  isa.CondAndEqZero,
	"AND_NE_ZERO":  isa.CondAndNeZero,
}

// argReader walks an instruction's positional Args, converting each to the
// narrower type its target method parameter expects.
type argReader struct {
	op   string
	args []uint64
	pos  int
}

func (r *argReader) u32() (uint32, error) {
	if r.pos >= len(r.args) {
		return 0, fmt.Errorf("%s: expected at least %d argument(s)", r.op, r.pos+1)
	}
	v := r.args[r.pos]
	r.pos++
	return uint32(v), nil
}

func (r *argReader) u64() (uint64, error) {
	if r.pos >= len(r.args) {
		return 0, fmt.Errorf("%s: expected at least %d argument(s)", r.op, r.pos+1)
	}
	v := r.args[r.pos]
	r.pos++
	return v, nil
}

// applyInstruction decodes one wire instruction and invokes the matching
// Assembler method. Unknown op names fail with an ordinary error: they never
// reach the Assembler's sticky-error path, since they aren't its mistake.
func applyInstruction(a *assembler.Assembler, instr InstructionSpec) error {
	r := &argReader{op: instr.Op, args: instr.Args}
	switch instr.Op {
	case "READ_ATTR":
		attrID, err1 := r.u32()
		reg, err2 := r.u32()
		if err := firstErr(err1, err2); err != nil {
			return err
		}
		return a.ReadAttr(attrID, reg)
	case "WRITE_ATTR":
		attrID, err1 := r.u32()
		reg, err2 := r.u32()
		if err := firstErr(err1, err2); err != nil {
			return err
		}
		return a.WriteAttr(attrID, reg)
	case "READ_ATTR_TO_MEM":
		attrID, e1 := r.u32()
		regOff, e2 := r.u32()
		regDst, e3 := r.u32()
		if err := firstErr(e1, e2, e3); err != nil {
			return err
		}
		return a.ReadAttrToMem(attrID, regOff, regDst)
	case "READ_PARTIAL_ATTR_TO_MEM":
		attrID, e1 := r.u32()
		regOff, e2 := r.u32()
		regStart, e3 := r.u32()
		regSize, e4 := r.u32()
		regDst, e5 := r.u32()
		if err := firstErr(e1, e2, e3, e4, e5); err != nil {
			return err
		}
		return a.ReadPartialAttrToMem(attrID, regOff, regStart, regSize, regDst)
	case "WRITE_ATTR_FROM_MEM":
		attrID, e1 := r.u32()
		regOff, e2 := r.u32()
		regSize, e3 := r.u32()
		if err := firstErr(e1, e2, e3); err != nil {
			return err
		}
		return a.WriteAttrFromMem(attrID, regOff, regSize)
	case "APPEND_ATTR_FROM_MEM":
		attrID, e1 := r.u32()
		regOff, e2 := r.u32()
		regSize, e3 := r.u32()
		if err := firstErr(e1, e2, e3); err != nil {
			return err
		}
		return a.AppendAttrFromMem(attrID, regOff, regSize)

	case "LOAD_CONST_NULL":
		reg, err := r.u32()
		if err != nil {
			return err
		}
		return a.LoadConstNull(reg)
	case "LOAD_CONST16":
		reg, e1 := r.u32()
		val, e2 := r.u32()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		return a.LoadConst16(reg, val)
	case "LOAD_CONST32":
		reg, e1 := r.u32()
		val, e2 := r.u32()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		return a.LoadConst32(reg, val)
	case "LOAD_CONST64":
		reg, e1 := r.u32()
		val, e2 := r.u64()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		return a.LoadConst64(reg, val)
	case "LOAD_CONST_MEM":
		regOff, e1 := r.u32()
		regSizeDst, e2 := r.u32()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		return a.LoadConstMem(regOff, regSizeDst, instr.Data)

	case "ADD_REG_REG":
		return regReg3(r, a.AddRegReg)
	case "SUB_REG_REG":
		return regReg3(r, a.SubRegReg)
	case "LSHIFT_REG_REG":
		return regReg3(r, a.LshiftRegReg)
	case "RSHIFT_REG_REG":
		return regReg3(r, a.RshiftRegReg)
	case "MUL_REG_REG":
		return regReg3(r, a.MulRegReg)
	case "DIV_REG_REG":
		return regReg3(r, a.DivRegReg)
	case "AND_REG_REG":
		return regReg3(r, a.AndRegReg)
	case "OR_REG_REG":
		return regReg3(r, a.OrRegReg)
	case "XOR_REG_REG":
		return regReg3(r, a.XorRegReg)
	case "MOD_REG_REG":
		return regReg3(r, a.ModRegReg)
	case "NOT_REG_REG":
		dst, e1 := r.u32()
		src, e2 := r.u32()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		return a.NotRegReg(dst, src)

	case "ADD_CONST_REG_TO_REG":
		return regReg3(r, a.AddConstRegToReg)
	case "SUB_CONST_REG_TO_REG":
		return regReg3(r, a.SubConstRegToReg)
	case "LSHIFT_CONST_REG_TO_REG":
		return regReg3(r, a.LshiftConstRegToReg)
	case "RSHIFT_CONST_REG_TO_REG":
		return regReg3(r, a.RshiftConstRegToReg)
	case "MUL_CONST_REG_TO_REG":
		return regReg3(r, a.MulConstRegToReg)
	case "DIV_CONST_REG_TO_REG":
		return regReg3(r, a.DivConstRegToReg)
	case "AND_CONST_REG_TO_REG":
		return regReg3(r, a.AndConstRegToReg)
	case "OR_CONST_REG_TO_REG":
		return regReg3(r, a.OrConstRegToReg)
	case "XOR_CONST_REG_TO_REG":
		return regReg3(r, a.XorConstRegToReg)
	case "MOD_CONST_REG_TO_REG":
		return regReg3(r, a.ModConstRegToReg)

	case "CONVERT_SIZE":
		return regReg2(r, a.ConvertSize)
	case "WRITE_SIZE_MEM":
		return regReg2(r, a.WriteSizeMem)
	case "WRITE_INTERPRETER_OUTPUT":
		return regReg2(r, a.WriteInterpreterOutput)

	case "READ_UINT8_MEM_TO_REG_CONST":
		return regReg2(r, a.ReadUint8MemToRegConst)
	case "READ_UINT16_MEM_TO_REG_CONST":
		return regReg2(r, a.ReadUint16MemToRegConst)
	case "READ_UINT32_MEM_TO_REG_CONST":
		return regReg2(r, a.ReadUint32MemToRegConst)
	case "READ_INT64_MEM_TO_REG_CONST":
		return regReg2(r, a.ReadInt64MemToRegConst)
	case "READ_UINT8_MEM_TO_REG_REG":
		return regReg2(r, a.ReadUint8MemToRegReg)
	case "READ_UINT16_MEM_TO_REG_REG":
		return regReg2(r, a.ReadUint16MemToRegReg)
	case "READ_UINT32_MEM_TO_REG_REG":
		return regReg2(r, a.ReadUint32MemToRegReg)
	case "READ_INT64_MEM_TO_REG_REG":
		return regReg2(r, a.ReadInt64MemToRegReg)
	case "WRITE_UINT8_REG_TO_MEM_CONST":
		return regReg2(r, a.WriteUint8RegToMemConst)
	case "WRITE_UINT16_REG_TO_MEM_CONST":
		return regReg2(r, a.WriteUint16RegToMemConst)
	case "WRITE_UINT32_REG_TO_MEM_CONST":
		return regReg2(r, a.WriteUint32RegToMemConst)
	case "WRITE_INT64_REG_TO_MEM_CONST":
		return regReg2(r, a.WriteInt64RegToMemConst)
	case "WRITE_UINT8_REG_TO_MEM_REG":
		return regReg2(r, a.WriteUint8RegToMemReg)
	case "WRITE_UINT16_REG_TO_MEM_REG":
		return regReg2(r, a.WriteUint16RegToMemReg)
	case "WRITE_UINT32_REG_TO_MEM_REG":
		return regReg2(r, a.WriteUint32RegToMemReg)
	case "WRITE_INT64_REG_TO_MEM_REG":
		return regReg2(r, a.WriteInt64RegToMemReg)

	case "EXIT_OK":
		return a.ExitOK()
	case "EXIT_OK_LAST":
		return a.ExitOKLast()
	case "EXIT_REFUSE":
		code, err := r.u32()
		if err != nil {
			return err
		}
		return a.ExitRefuse(code)
	case "CALL":
		sub, err := r.u32()
		if err != nil {
			return err
		}
		return a.Call(sub)
	case "DEF_LABEL":
		label, err := r.u32()
		if err != nil {
			return err
		}
		return a.DefLabel(label)
	case "DEF_SUB":
		sub, err := r.u32()
		if err != nil {
			return err
		}
		return a.DefSub(sub)
	case "RET_SUB":
		return a.RetSub()

	case "BRANCH":
		label, err := r.u32()
		if err != nil {
			return err
		}
		return a.Branch(label)
	case "BRANCH_REG_EQ_NULL":
		return regReg2(r, a.BranchRegEqNull)
	case "BRANCH_REG_NE_NULL":
		return regReg2(r, a.BranchRegNeNull)
	case "BRANCH_EQ_REG_REG":
		return regReg3(r, a.BranchEqRegReg)
	case "BRANCH_NE_REG_REG":
		return regReg3(r, a.BranchNeRegReg)
	case "BRANCH_LT_REG_REG":
		return regReg3(r, a.BranchLtRegReg)
	case "BRANCH_LE_REG_REG":
		return regReg3(r, a.BranchLeRegReg)
	case "BRANCH_GT_REG_REG":
		return regReg3(r, a.BranchGtRegReg)
	case "BRANCH_GE_REG_REG":
		return regReg3(r, a.BranchGeRegReg)
	case "BRANCH_EQ_REG_CONST":
		return regReg3(r, a.BranchEqRegConst)
	case "BRANCH_NE_REG_CONST":
		return regReg3(r, a.BranchNeRegConst)
	case "BRANCH_LT_REG_CONST":
		return regReg3(r, a.BranchLtRegConst)
	case "BRANCH_LE_REG_CONST":
		return regReg3(r, a.BranchLeRegConst)
	case "BRANCH_GT_REG_CONST":
		return regReg3(r, a.BranchGtRegConst)
	case "BRANCH_GE_REG_CONST":
		return regReg3(r, a.BranchGeRegConst)

	case "BRANCH_ATTR_OP_ARG":
		attrID, e1 := r.u32()
		label, e2 := r.u32()
		if err := firstErr(e1, e2); err != nil {
			return err
		}
		cond, err := condFor(instr.Cond)
		if err != nil {
			return err
		}
		return a.BranchAttrOpArg(attrID, cond, instr.Data, label)
	case "BRANCH_ATTR_OP_PARAM":
		attrID, e1 := r.u32()
		paramNo, e2 := r.u32()
		label, e3 := r.u32()
		if err := firstErr(e1, e2, e3); err != nil {
			return err
		}
		cond, err := condFor(instr.Cond)
		if err != nil {
			return err
		}
		return a.BranchAttrOpParam(attrID, cond, paramNo, label)
	case "BRANCH_ATTR_OP_ATTR":
		attrID1, e1 := r.u32()
		attrID2, e2 := r.u32()
		label, e3 := r.u32()
		if err := firstErr(e1, e2, e3); err != nil {
			return err
		}
		cond, err := condFor(instr.Cond)
		if err != nil {
			return err
		}
		return a.BranchAttrOpAttr(attrID1, cond, attrID2, label)
	case "BRANCH_ATTR_EQ_NULL":
		return regReg2(r, a.BranchAttrEqNull)
	case "BRANCH_ATTR_NE_NULL":
		return regReg2(r, a.BranchAttrNeNull)

	default:
		return fmt.Errorf("unknown instruction op %q", instr.Op)
	}
}

func condFor(name string) (isa.BinaryCondition, error) {
	cond, ok := conditions[name]
	if !ok {
		return 0, fmt.Errorf("unknown condition %q", name)
	}
	return cond, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func regReg2(r *argReader, f func(a, b uint32) error) error {
	x, e1 := r.u32()
	y, e2 := r.u32()
	if err := firstErr(e1, e2); err != nil {
		return err
	}
	return f(x, y)
}

func regReg3(r *argReader, f func(a, b, c uint32) error) error {
	x, e1 := r.u32()
	y, e2 := r.u32()
	z, e3 := r.u32()
	if err := firstErr(e1, e2, e3); err != nil {
		return err
	}
	return f(x, y, z)
}
