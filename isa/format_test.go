package isa

import "testing"

func TestOpcodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		opcode OpCode
	}{
		{"plain", ReadAttrIntoReg},
		{"extended", BranchEqRegReg + OverflowOpcode},
		{"boundary", OverflowOpcode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := PackOpcodeWord(tt.opcode)
			if got := Opcode(word); got != tt.opcode {
				t.Fatalf("Opcode(PackOpcodeWord(%d)) = %d, want %d", tt.opcode, got, tt.opcode)
			}
		})
	}
}

func TestIsExtended(t *testing.T) {
	if IsExtended(PackOpcodeWord(ReadAttrIntoReg)) {
		t.Fatal("plain opcode reported as extended")
	}
	if !IsExtended(PackOpcodeWord(BranchEqRegReg + OverflowOpcode)) {
		t.Fatal("extended opcode not reported as extended")
	}
}

func TestRegisterFields(t *testing.T) {
	var w Word
	w = WithReg1(w, 5)
	w = WithReg2(w, 3)
	w = WithReg3(w, 7)
	w = WithReg4(w, 2)
	if Reg1(w) != 5 || Reg2(w) != 3 || Reg3(w) != 7 || Reg4(w) != 2 {
		t.Fatalf("register fields did not round-trip: %#x", w)
	}
}

func TestImmediate16(t *testing.T) {
	w := WithImmediate16(0, 0xBEEF)
	if got := Immediate16(w); got != 0xBEEF {
		t.Fatalf("Immediate16 = %#x, want 0xBEEF", got)
	}
}

func TestBranchOffsetRoundTrip(t *testing.T) {
	tests := []struct {
		from, to int
		want     int
	}{
		{0, 5, 5},
		{5, 0, -5},
		{10, 10, 0},
	}
	for _, tt := range tests {
		word := BranchOffsetWord(0, tt.from, tt.to)
		if got := BranchDistance(word); got != tt.want {
			t.Fatalf("from=%d to=%d: BranchDistance = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBranchOffsetPreservesLowBits(t *testing.T) {
	base := WithReg1(PackOpcodeWord(BranchEqRegReg), 3)
	word := BranchOffsetWord(base, 2, 9)
	if Opcode(word) != BranchEqRegReg || Reg1(word) != 3 {
		t.Fatalf("BranchOffsetWord clobbered opcode/register bits: %#x", word)
	}
	if BranchDistance(word) != 7 {
		t.Fatalf("BranchDistance = %d, want 7", BranchDistance(word))
	}
}

func TestWordsForBytes(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 0}, {1, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3},
	}
	for _, tt := range tests {
		if got := WordsForBytes(tt.in); got != tt.want {
			t.Fatalf("WordsForBytes(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNullSemanticsFor(t *testing.T) {
	tests := []struct {
		mode UnknownHandling
		want NullSemantics
	}{
		{CmpHasNoUnknowns, NullCmpEqual},
		{BranchIfUnknown, IfNullBreakOut},
		{ContinueIfUnknown, IfNullContinue},
	}
	for _, tt := range tests {
		if got := NullSemanticsFor(tt.mode); got != tt.want {
			t.Fatalf("NullSemanticsFor(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
