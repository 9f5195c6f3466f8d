package inspector

import (
	"strings"
	"testing"

	"github.com/logicalclocks/rondb-sub003/isa"
)

func TestDisassembleSimpleProgram(t *testing.T) {
	words := []isa.Word{
		isa.PackOpcodeWord(isa.LoadConst16), // r1=0 imm=0
		isa.PackOpcodeWord(isa.ExitOK),
	}
	lines := Disassemble(words)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0].Text, "LOAD_CONST16") {
		t.Errorf("line 0 = %q", lines[0].Text)
	}
	if !strings.HasPrefix(lines[1].Text, "EXIT_OK") {
		t.Errorf("line 1 = %q", lines[1].Text)
	}
}

func TestDisassembleStopsAtCorruptOpcode(t *testing.T) {
	words := []isa.Word{0x7F} // opcode bits that decode to no known instruction
	lines := Disassemble(words)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0].Text, "corrupt") {
		t.Errorf("expected corrupt marker, got %q", lines[0].Text)
	}
}

func TestDisassembleBranchShowsLabel(t *testing.T) {
	word := isa.WithImmediate16(isa.PackOpcodeWord(isa.Branch), 42)
	lines := Disassemble([]isa.Word{word})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0].Text, "label=42") {
		t.Errorf("expected label=42 in %q", lines[0].Text)
	}
}

func TestDisassembleCallShowsSub(t *testing.T) {
	word := isa.WithImmediate16(isa.PackOpcodeWord(isa.Call), 3)
	lines := Disassemble([]isa.Word{word})
	if !strings.Contains(lines[0].Text, "sub=3") {
		t.Errorf("expected sub=3 in %q", lines[0].Text)
	}
}
