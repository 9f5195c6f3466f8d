package inspector

import (
	"fmt"

	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/preprocess"
)

// mnemonics names every base opcode isa declares, plus the two extended
// aliases with names of their own, for display only — it carries no
// decoding semantics of its own. Other extended forms are shown as their
// base name with an "_EXT" suffix.
var mnemonics = map[isa.OpCode]string{
	isa.ReadAttrIntoReg:      "READ_ATTR",
	isa.WriteAttrFromReg:     "WRITE_ATTR",
	isa.ReadAttrToMem:        "READ_ATTR_TO_MEM",
	isa.ReadPartialAttrToMem: "READ_PARTIAL_ATTR_TO_MEM",
	isa.WriteAttrFromMem:     "WRITE_ATTR_FROM_MEM",
	isa.AppendAttrFromMem:    "APPEND_ATTR_FROM_MEM",

	isa.LoadConstNull: "LOAD_CONST_NULL",
	isa.LoadConst16:   "LOAD_CONST16",
	isa.LoadConst32:   "LOAD_CONST32",
	isa.LoadConst64:   "LOAD_CONST64",
	isa.LoadConstMem:  "LOAD_CONST_MEM",

	isa.AddRegReg:    "ADD_REG_REG",
	isa.SubRegReg:    "SUB_REG_REG",
	isa.LshiftRegReg: "LSHIFT_REG_REG",
	isa.RshiftRegReg: "RSHIFT_REG_REG",
	isa.MulRegReg:    "MUL_REG_REG",
	isa.DivRegReg:    "DIV_REG_REG",
	isa.AndRegReg:    "AND_REG_REG",
	isa.OrRegReg:     "OR_REG_REG",
	isa.XorRegReg:    "XOR_REG_REG",
	isa.NotRegReg:    "NOT_REG_REG",
	isa.ModRegReg:    "MOD_REG_REG",

	isa.AddConstRegToReg:    "ADD_CONST_REG_TO_REG",
	isa.SubConstRegToReg:    "SUB_CONST_REG_TO_REG",
	isa.LshiftConstRegToReg: "LSHIFT_CONST_REG_TO_REG",
	isa.RshiftConstRegToReg: "RSHIFT_CONST_REG_TO_REG",
	isa.MulConstRegToReg:    "MUL_CONST_REG_TO_REG",
	isa.DivConstRegToReg:    "DIV_CONST_REG_TO_REG",
	isa.AndConstRegToReg:    "AND_CONST_REG_TO_REG",
	isa.OrConstRegToReg:     "OR_CONST_REG_TO_REG",
	isa.XorConstRegToReg:    "XOR_CONST_REG_TO_REG",
	isa.ModConstRegToReg:    "MOD_CONST_REG_TO_REG",

	isa.ReadUint8MemToReg:   "READ_UINT8_MEM_TO_REG",
	isa.ReadUint16MemToReg:  "READ_UINT16_MEM_TO_REG",
	isa.ReadUint32MemToReg:  "READ_UINT32_MEM_TO_REG",
	isa.ReadInt64MemToReg:   "READ_INT64_MEM_TO_REG",
	isa.WriteUint8RegToMem:  "WRITE_UINT8_REG_TO_MEM",
	isa.WriteUint16RegToMem: "WRITE_UINT16_REG_TO_MEM",
	isa.WriteUint32RegToMem: "WRITE_UINT32_REG_TO_MEM",
	isa.WriteInt64RegToMem:  "WRITE_INT64_REG_TO_MEM",

	isa.ConvertSize:            "CONVERT_SIZE",
	isa.WriteSizeMem:           "WRITE_SIZE_MEM",
	isa.WriteInterpreterOutput: "WRITE_INTERPRETER_OUTPUT",

	isa.Branch:          "BRANCH",
	isa.BranchRegEqNull: "BRANCH_REG_EQ_NULL",
	isa.BranchRegNeNull: "BRANCH_REG_NE_NULL",
	isa.BranchEqRegReg:  "BRANCH_EQ_REG_REG",
	isa.BranchNeRegReg:  "BRANCH_NE_REG_REG",
	isa.BranchLtRegReg:  "BRANCH_LT_REG_REG",
	isa.BranchLeRegReg:  "BRANCH_LE_REG_REG",
	isa.BranchGtRegReg:  "BRANCH_GT_REG_REG",
	isa.BranchGeRegReg:  "BRANCH_GE_REG_REG",

	isa.ExitOK:            "EXIT_OK",
	isa.ExitOKLast:        "EXIT_OK_LAST",
	isa.ExitRefuse:        "EXIT_REFUSE",
	isa.Call:              "CALL",
	isa.Return:            "RETURN",
	isa.BranchAttrOpArg:   "BRANCH_ATTR_OP_ARG",
	isa.BranchAttrEqNull:  "BRANCH_ATTR_EQ_NULL",
	isa.BranchAttrNeNull:  "BRANCH_ATTR_NE_NULL",
	isa.BranchAttrOpParam: "BRANCH_ATTR_OP_PARAM",
	isa.BranchAttrOpAttr:  "BRANCH_ATTR_OP_ATTR",
}

func mnemonicFor(word isa.Word) string {
	op := isa.Opcode(word)
	if name, ok := mnemonics[op]; ok {
		return name
	}
	if isa.IsExtended(word) {
		if name, ok := mnemonics[isa.BaseOpcode(word)]; ok {
			return name + "_EXT"
		}
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint32(op))
}

// Line is one disassembled instruction, ready for display.
type Line struct {
	Pos    int
	Text   string
	Length int
}

// Disassemble walks words with preprocess.Next and renders one Line per
// instruction. It stops at the first invalid opcode, exactly as the
// Finaliser's own walk would, and reports how far it got via the returned
// slice's length.
func Disassemble(words []isa.Word) []Line {
	var lines []Line
	pos := 0
	for pos < len(words) {
		step, ok := preprocess.Next(words, pos)
		if !ok {
			lines = append(lines, Line{Pos: pos, Text: fmt.Sprintf("<corrupt word 0x%08x>", words[pos])})
			break
		}
		lines = append(lines, Line{
			Pos:    pos,
			Text:   renderInstruction(words, pos, step),
			Length: step.Next - pos,
		})
		pos = step.Next
	}
	return lines
}

func renderInstruction(words []isa.Word, pos int, step preprocess.Step) string {
	word := words[pos]
	name := mnemonicFor(word)

	switch step.Patch {
	case preprocess.PatchLabelOffset:
		return fmt.Sprintf("%s r1=%d r2=%d r3=%d label=%d", name, isa.Reg1(word), isa.Reg2(word), isa.Reg3(word), isa.Immediate16(word))
	case preprocess.PatchSubOffset:
		return fmt.Sprintf("%s sub=%d", name, isa.Immediate16(word))
	default:
		return fmt.Sprintf("%s r1=%d r2=%d r3=%d imm=%d", name, isa.Reg1(word), isa.Reg2(word), isa.Reg3(word), isa.Immediate16(word))
	}
}
