package assembler

import (
	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/preprocess"
)

// Finalise runs the C5 pass: if nothing was ever emitted it inserts a
// single EXIT_OK, then walks the instruction stream with the PreProcessor,
// rewriting every label- or subroutine-referencing opcode word in place.
// On success, WordsUsed reports the transmittable length (the metainfo
// region is never part of it). A failed finalise leaves the buffer
// partially rewritten; the caller must discard the program.
func (a *Assembler) Finalise() error {
	if a.err != nil {
		return a.err
	}
	if a.finalised {
		return nil
	}
	if a.inSubDef {
		return a.fail(newAsmErr(BadState, "finalise called with an open subroutine definition"))
	}
	if a.instrLen == 0 {
		if err := a.emit(a.ctx().ExitOK()); err != nil {
			return err
		}
	}

	words := a.storage.Words()[:a.instrLen]
	pos := 0
	for pos < len(words) {
		step, ok := preprocess.Next(words, pos)
		if !ok {
			return a.fail(newAsmErr(BadState, "corrupt instruction stream at word %d", pos))
		}
		switch step.Patch {
		case preprocess.PatchLabelOffset:
			if err := a.patchLabel(words, pos); err != nil {
				return err
			}
		case preprocess.PatchSubOffset:
			if err := a.patchSub(words, pos); err != nil {
				return err
			}
		}
		pos = step.Next
	}

	a.finalised = true
	return nil
}

func (a *Assembler) patchLabel(words []uint32, pos int) error {
	label := words[pos] >> 16
	target, ok := a.labelPos[label]
	if !ok {
		return a.fail(newAsmErr(BadLabelBranch, "branch at word %d references undefined label %d", pos, label))
	}
	if target < 0 || target > len(words) {
		return a.fail(newAsmErr(BadBranchToLabel, "label %d resolves outside the program", label))
	}
	words[pos] = isa.BranchOffsetWord(words[pos], pos, target)
	return nil
}

func (a *Assembler) patchSub(words []uint32, pos int) error {
	subNo := words[pos] >> 16
	target, ok := a.subPos[subNo]
	if !ok {
		return a.fail(newAsmErr(SubroutineNotFound, "call at word %d references undefined subroutine %d", pos, subNo))
	}
	if !a.haveFirstSubPos || target < a.firstSubPos {
		return a.fail(newAsmErr(BadSubroutineOffset, "subroutine %d offset is invalid", subNo))
	}
	offset := uint32(target - a.firstSubPos)
	words[pos] = words[pos]&0xFFFF | offset<<16
	return nil
}

// WordsUsed returns the length of the transmittable program. It is only
// meaningful after Finalise succeeds.
func (a *Assembler) WordsUsed() int { return a.instrLen }

// Words returns the transmittable word slice. Only meaningful after
// Finalise succeeds; the returned slice aliases the assembler's storage
// and must not be mutated.
func (a *Assembler) Words() []uint32 {
	return a.storage.Words()[:a.instrLen]
}
