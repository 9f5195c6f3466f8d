// Package preprocess implements the interpreted-code PreProcessor (C3): a
// total, index-based decoder that, given any instruction's position in a
// word stream, reports the position of the next instruction and whether it
// needs label-offset or subroutine-offset patching.
//
// This is the single source of truth for instruction sizing. The
// assembler's Finaliser and any kernel-side verifier or executor must step
// through a program using exactly this logic, or the two halves of the
// system can disagree about where instructions start.
package preprocess

import "github.com/logicalclocks/rondb-sub003/isa"

// PatchClass classifies what rewriting, if any, an instruction's operand
// field requires during finalisation.
type PatchClass int

const (
	// PatchNone means the instruction carries no label or subroutine
	// reference and needs no rewriting.
	PatchNone PatchClass = iota
	// PatchLabelOffset means bits 16..31 hold a symbolic label number that
	// must become a signed relative word offset.
	PatchLabelOffset
	// PatchSubOffset means bits 16..31 hold a symbolic subroutine number
	// that must become an offset within the subroutine section.
	PatchSubOffset
)

// Step is the outcome of decoding one instruction.
type Step struct {
	Next  int        // index of the next instruction
	Patch PatchClass // patching this instruction requires
}

// Next decodes the instruction at words[pos] and returns the position of
// the following instruction plus its patch class. ok is false when pos is
// out of range or the opcode is not one of the closed set isa defines —
// the caller (typically the assembler's Finaliser, or a wire-format
// verifier) must treat that as a corrupt or malicious program and refuse
// it rather than guess a length.
func Next(words []isa.Word, pos int) (step Step, ok bool) {
	if pos < 0 || pos >= len(words) {
		return Step{}, false
	}
	op := isa.Opcode(words[pos])

	switch op {
	case isa.ReadAttrIntoReg, isa.WriteAttrFromReg, isa.WriteAttrFromMem, isa.AppendAttrFromMem,
		isa.LoadConstNull, isa.LoadConst16, isa.WriteInterpreterOutput,
		isa.AddRegReg, isa.SubRegReg, isa.LshiftRegReg, isa.RshiftRegReg,
		isa.MulRegReg, isa.DivRegReg, isa.AndRegReg, isa.OrRegReg, isa.XorRegReg,
		isa.NotRegReg, isa.ModRegReg,
		isa.AddConstRegToReg, isa.SubConstRegToReg, isa.LshiftConstRegToReg,
		isa.RshiftConstRegToReg, isa.MulConstRegToReg, isa.DivConstRegToReg,
		isa.AndConstRegToReg, isa.OrConstRegToReg, isa.XorConstRegToReg, isa.ModConstRegToReg,
		isa.ReadPartialAttrToMem, isa.ReadAttrToMem,
		isa.ConvertSize, isa.WriteSizeMem,
		isa.ReadUint8MemToReg, isa.ReadUint16MemToReg, isa.ReadUint32MemToReg, isa.ReadInt64MemToReg,
		isa.WriteUint8RegToMem, isa.WriteUint16RegToMem, isa.WriteUint32RegToMem, isa.WriteInt64RegToMem,
		isa.ReadUint8MemToReg + isa.OverflowOpcode, isa.ReadUint16MemToReg + isa.OverflowOpcode,
		isa.ReadUint32MemToReg + isa.OverflowOpcode, isa.ReadInt64MemToReg + isa.OverflowOpcode,
		isa.WriteUint8RegToMem + isa.OverflowOpcode, isa.WriteUint16RegToMem + isa.OverflowOpcode,
		isa.WriteUint32RegToMem + isa.OverflowOpcode, isa.WriteInt64RegToMem + isa.OverflowOpcode,
		isa.ExitOK, isa.ExitOKLast, isa.ExitRefuse, isa.Return:
		return Step{Next: pos + 1, Patch: PatchNone}, true

	case isa.LoadConst32:
		return Step{Next: pos + 2, Patch: PatchNone}, true

	case isa.LoadConst64:
		return Step{Next: pos + 3, Patch: PatchNone}, true

	case isa.LoadConstMem:
		byteLen := isa.Immediate16(words[pos])
		return Step{Next: pos + 1 + int(isa.WordsForBytes(byteLen)), Patch: PatchNone}, true

	case isa.Branch, isa.BranchRegEqNull, isa.BranchRegNeNull,
		isa.BranchEqRegReg, isa.BranchNeRegReg, isa.BranchLtRegReg,
		isa.BranchLeRegReg, isa.BranchGtRegReg, isa.BranchGeRegReg,
		isa.BranchEqRegReg + isa.OverflowOpcode, isa.BranchNeRegReg + isa.OverflowOpcode,
		isa.BranchLtRegReg + isa.OverflowOpcode, isa.BranchLeRegReg + isa.OverflowOpcode,
		isa.BranchGtRegReg + isa.OverflowOpcode, isa.BranchGeRegReg + isa.OverflowOpcode:
		return Step{Next: pos + 1, Patch: PatchLabelOffset}, true

	case isa.BranchAttrOpArg, isa.BranchAttrOpArg + isa.OverflowOpcode:
		if pos+1 >= len(words) {
			return Step{}, false
		}
		byteLen := words[pos+1] >> 16
		return Step{Next: pos + 2 + int(isa.WordsForBytes(byteLen)), Patch: PatchLabelOffset}, true

	case isa.BranchAttrOpParam, isa.BranchAttrOpAttr,
		isa.BranchAttrOpParam + isa.OverflowOpcode, isa.BranchAttrOpAttr + isa.OverflowOpcode:
		return Step{Next: pos + 2, Patch: PatchLabelOffset}, true

	case isa.BranchAttrEqNull, isa.BranchAttrNeNull:
		return Step{Next: pos + 2, Patch: PatchLabelOffset}, true

	case isa.Call:
		return Step{Next: pos + 1, Patch: PatchSubOffset}, true

	default:
		return Step{}, false
	}
}

// Walk steps through an entire program from position 0, invoking visit for
// every instruction encountered. It stops at len(words) (success) or the
// first invalid opcode (failure). This is what property P1 in the spec
// exercises: a well-formed program visits every word exactly once and
// lands exactly on len(words).
func Walk(words []isa.Word, visit func(pos int, step Step)) (ok bool) {
	pos := 0
	for pos < len(words) {
		step, stepOK := Next(words, pos)
		if !stepOK {
			return false
		}
		if visit != nil {
			visit(pos, step)
		}
		pos = step.Next
	}
	return pos == len(words)
}
