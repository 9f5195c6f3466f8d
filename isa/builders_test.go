package isa

import "testing"

func TestReadAttrWordFields(t *testing.T) {
	w := ReadAttrWord(42, 3)
	if Opcode(w) != ReadAttrIntoReg {
		t.Fatalf("Opcode = %d, want %d", Opcode(w), ReadAttrIntoReg)
	}
	if Reg1(w) != 3 {
		t.Fatalf("Reg1 = %d, want 3", Reg1(w))
	}
	if Immediate16(w) != 42 {
		t.Fatalf("Immediate16 = %d, want 42", Immediate16(w))
	}
}

func TestReadPartialAttrToMemWordAttrShift(t *testing.T) {
	// This instruction packs attrId at bit 19, not bit 16 like the other
	// attribute-I/O instructions — verify the quirk survives unpacking.
	w := ReadPartialAttrToMemWord(7, 1, 2, 3, 4)
	if got := w >> 19; got != 7 {
		t.Fatalf("attrId at bit 19 = %d, want 7", got)
	}
	if Opcode(w) != ReadPartialAttrToMem {
		t.Fatalf("Opcode = %d, want %d", Opcode(w), ReadPartialAttrToMem)
	}
}

func TestMemRegConstVsRegFormsDiffer(t *testing.T) {
	constForm := ReadUint8MemConstWord(1, 100)
	regForm := ReadUint8MemRegWord(1, 2)
	if !IsExtended(regForm) {
		t.Fatal("register-offset form must set the overflow bit")
	}
	if IsExtended(constForm) {
		t.Fatal("constant-offset form must not set the overflow bit")
	}
	if BaseOpcode(constForm) != BaseOpcode(regForm) {
		t.Fatalf("base opcode must match between addressing forms: %d vs %d", BaseOpcode(constForm), BaseOpcode(regForm))
	}
}

func TestBranchColWordsCarryConditionAndNulls(t *testing.T) {
	w := BranchColOpcodeWord(CondGE, IfNullBreakOut)
	if ConditionOf(w) != CondGE {
		t.Fatalf("ConditionOf = %v, want CondGE", ConditionOf(w))
	}
	if NullSemanticsOf(w) != IfNullBreakOut {
		t.Fatalf("NullSemanticsOf = %v, want IfNullBreakOut", NullSemanticsOf(w))
	}
	if Opcode(w) != BranchAttrOpArg {
		t.Fatalf("Opcode = %d, want %d", Opcode(w), BranchAttrOpArg)
	}
}

func TestBranchColHeaderWordPacksAttrAndLength(t *testing.T) {
	w := BranchColHeaderWord(17, 9)
	if w&0xFFFF != 17 {
		t.Fatalf("attrId = %d, want 17", w&0xFFFF)
	}
	if w>>16 != 9 {
		t.Fatalf("byteLen = %d, want 9", w>>16)
	}
}

func TestWriteSizeMemAndWriteInterpreterOutputAreExtendedAliases(t *testing.T) {
	if BaseOpcode(PackOpcodeWord(WriteSizeMem)) != BaseOpcode(PackOpcodeWord(ConvertSize)) {
		t.Fatal("WriteSizeMem must share CONVERT_SIZE's base opcode")
	}
	if !IsExtended(PackOpcodeWord(WriteSizeMem)) {
		t.Fatal("WriteSizeMem must set the overflow bit")
	}
	if BaseOpcode(PackOpcodeWord(WriteInterpreterOutput)) != BaseOpcode(PackOpcodeWord(LoadConstMem)) {
		t.Fatal("WriteInterpreterOutput must share LOAD_CONST_MEM's base opcode")
	}
}
