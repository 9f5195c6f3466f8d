package preprocess

import (
	"testing"

	"github.com/logicalclocks/rondb-sub003/isa"
)

func TestNextFixedWidth(t *testing.T) {
	words := []isa.Word{isa.PackOpcodeWord(isa.ReadAttrIntoReg)}
	step, ok := Next(words, 0)
	if !ok || step.Next != 1 || step.Patch != PatchNone {
		t.Fatalf("got %+v, %v", step, ok)
	}
}

func TestNextLoadConst32And64(t *testing.T) {
	words32 := []isa.Word{isa.LoadConst32Word(0), 0}
	if step, ok := Next(words32, 0); !ok || step.Next != 2 {
		t.Fatalf("LOAD_CONST32: got %+v, %v", step, ok)
	}
	words64 := []isa.Word{isa.LoadConst64Word(0), 0, 0}
	if step, ok := Next(words64, 0); !ok || step.Next != 3 {
		t.Fatalf("LOAD_CONST64: got %+v, %v", step, ok)
	}
}

func TestNextLoadConstMemUsesByteLength(t *testing.T) {
	words := []isa.Word{isa.LoadConstMemWord(0, 1, 9), 0, 0, 0}
	step, ok := Next(words, 0)
	if !ok || step.Next != 4 { // header + ceil(9/4)=3 words
		t.Fatalf("got %+v, %v", step, ok)
	}
}

func TestNextBranchRequiresLabelPatch(t *testing.T) {
	words := []isa.Word{isa.BranchUnconditionalWord(3)}
	step, ok := Next(words, 0)
	if !ok || step.Patch != PatchLabelOffset {
		t.Fatalf("got %+v, %v", step, ok)
	}
}

func TestNextBranchAttrOpArgUsesHeaderLength(t *testing.T) {
	words := []isa.Word{
		isa.BranchColOpcodeWord(isa.CondEQ, isa.NullCmpEqual),
		isa.BranchColHeaderWord(1, 5),
		0, 0,
	}
	step, ok := Next(words, 0)
	if !ok || step.Next != 4 || step.Patch != PatchLabelOffset {
		t.Fatalf("got %+v, %v", step, ok)
	}
}

func TestNextCallRequiresSubPatch(t *testing.T) {
	words := []isa.Word{isa.CallWord(4)}
	step, ok := Next(words, 0)
	if !ok || step.Patch != PatchSubOffset {
		t.Fatalf("got %+v, %v", step, ok)
	}
}

func TestNextRejectsUnknownOpcode(t *testing.T) {
	words := []isa.Word{0x7F}
	if _, ok := Next(words, 0); ok {
		t.Fatal("expected unknown opcode to be rejected")
	}
}

func TestNextRejectsOutOfRange(t *testing.T) {
	if _, ok := Next(nil, 0); ok {
		t.Fatal("expected empty word stream to be rejected")
	}
	words := []isa.Word{isa.BranchColOpcodeWord(isa.CondEQ, isa.NullCmpEqual)}
	if _, ok := Next(words, 0); ok {
		t.Fatal("expected truncated BRANCH_ATTR_OP_ARG to be rejected")
	}
}

func TestWalkVisitsEveryWordExactlyOnce(t *testing.T) {
	words := []isa.Word{
		isa.ReadAttrWord(1, 0),
		isa.LoadConst16Word(1, 10),
		isa.BranchUnconditionalWord(0),
		isa.PackOpcodeWord(isa.ExitOK),
	}
	var visited []int
	ok := Walk(words, func(pos int, step Step) { visited = append(visited, pos) })
	if !ok {
		t.Fatal("expected well-formed program to walk cleanly")
	}
	if len(visited) != 4 {
		t.Fatalf("visited %d instructions, want 4", len(visited))
	}
}

func TestWalkFailsOnCorruptTrailingOpcode(t *testing.T) {
	words := []isa.Word{isa.PackOpcodeWord(isa.ExitOK), 0x7F}
	if Walk(words, nil) {
		t.Fatal("expected walk to fail on corrupt trailing word")
	}
}
