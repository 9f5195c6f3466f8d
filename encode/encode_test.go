package encode

import (
	"errors"
	"testing"

	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/schema"
)

func testTable() *schema.Table {
	return schema.NewTable("t", []schema.Column{
		{AttrID: 1, Name: "a", Type: schema.TypeFixedBinary, Length: 4},
		{AttrID: 2, Name: "b", Type: schema.TypeFixedBinary, Length: 4},
		{AttrID: 3, Name: "c", Type: schema.TypeFixedBinary, Length: 8},
		{AttrID: 4, Name: "blob", Type: schema.TypeBlob},
		{AttrID: 5, Name: "disk", Type: schema.TypeFixedBinary, Length: 4, Storage: schema.StorageDisk},
	})
}

func TestReadAttrRejectsBadRegister(t *testing.T) {
	ctx := Context{Table: testTable()}
	if _, err := ctx.ReadAttr(1, 8); err == nil {
		t.Fatal("expected out-of-range register to be rejected")
	}
	var encErr *Error
	if _, err := ctx.ReadAttr(1, 8); !errors.As(err, &encErr) || encErr.Code != BadRegister {
		t.Fatalf("expected BadRegister, got %v", err)
	}
}

func TestReadAttrRequiresTable(t *testing.T) {
	ctx := Context{}
	_, err := ctx.ReadAttr(1, 0)
	var encErr *Error
	if !errors.As(err, &encErr) || encErr.Code != TableNotSet {
		t.Fatalf("expected TableNotSet, got %v", err)
	}
}

func TestReadAttrUnknownAttribute(t *testing.T) {
	ctx := Context{Table: testTable()}
	_, err := ctx.ReadAttr(99, 0)
	var encErr *Error
	if !errors.As(err, &encErr) || encErr.Code != BadAttributeId {
		t.Fatalf("expected BadAttributeId, got %v", err)
	}
}

func TestWriteAttrReportsDiskUsage(t *testing.T) {
	ctx := Context{Table: testTable()}
	r, err := ctx.WriteAttr(5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.UsesDisk {
		t.Fatal("expected UsesDisk for a disk-backed column")
	}
	r2, err := ctx.WriteAttr(1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.UsesDisk {
		t.Fatal("expected UsesDisk=false for a main-memory column")
	}
}

func TestLoadConst16RangeCheck(t *testing.T) {
	ctx := Context{}
	if _, err := ctx.LoadConst16(0, 1<<16); err == nil {
		t.Fatal("expected out-of-range constant to be rejected")
	}
	r, err := ctx.LoadConst16(0, 0xFFFF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isa.Immediate16(r.Words[0]) != 0xFFFF {
		t.Fatalf("Immediate16 = %#x, want 0xFFFF", isa.Immediate16(r.Words[0]))
	}
}

func TestLoadConst64WordOrder(t *testing.T) {
	ctx := Context{}
	r, err := ctx.LoadConst64(0, 0x1122334455667788)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(r.Words))
	}
	if r.Words[1] != 0x55667788 {
		t.Fatalf("low word = %#x, want 0x55667788", r.Words[1])
	}
	if r.Words[2] != 0x11223344 {
		t.Fatalf("high word = %#x, want 0x11223344", r.Words[2])
	}
}

func TestLoadConstMemRejectsEmptyLiteral(t *testing.T) {
	ctx := Context{}
	if _, err := ctx.LoadConstMem(0, 1, nil); err == nil {
		t.Fatal("expected empty literal to be rejected")
	}
}

func TestLoadConstMemPacksLittleEndianWithinWord(t *testing.T) {
	ctx := Context{}
	r, err := ctx.LoadConstMem(0, 1, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Words) != 2 {
		t.Fatalf("expected header + 1 data word, got %d", len(r.Words))
	}
	if r.Words[1] != 0x00030201 {
		t.Fatalf("data word = %#x, want 0x00030201", r.Words[1])
	}
}

func TestBranchLtReversesOperands(t *testing.T) {
	ctx := Context{}
	r, err := ctx.BranchLtRegReg(1, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isa.Reg1(r.Words[0]) != 2 || isa.Reg2(r.Words[0]) != 1 {
		t.Fatalf("expected operands reversed: reg1=%d reg2=%d", isa.Reg1(r.Words[0]), isa.Reg2(r.Words[0]))
	}
}

func TestBranchEqDoesNotReverseOperands(t *testing.T) {
	ctx := Context{}
	r, err := ctx.BranchEqRegReg(1, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isa.Reg1(r.Words[0]) != 1 || isa.Reg2(r.Words[0]) != 2 {
		t.Fatalf("EQ must not reverse operands: reg1=%d reg2=%d", isa.Reg1(r.Words[0]), isa.Reg2(r.Words[0]))
	}
}

func TestBranchAttrOpArgRejectsLargeObject(t *testing.T) {
	ctx := Context{Table: testTable()}
	if _, err := ctx.BranchAttrOpArg(4, isa.CondEQ, []byte{1}, 0); err == nil {
		t.Fatal("expected BLOB column to be rejected")
	}
}

func TestBranchAttrOpAttrRequiresBindable(t *testing.T) {
	ctx := Context{Table: testTable()}
	if _, err := ctx.BranchAttrOpAttr(1, isa.CondEQ, 3, 0); err == nil {
		t.Fatal("expected mismatched-length columns to be rejected")
	}
	if _, err := ctx.BranchAttrOpAttr(1, isa.CondEQ, 2, 0); err != nil {
		t.Fatalf("expected matching columns to bind: %v", err)
	}
}

func TestBranchAttrOpArgEncodesLabelInOpcodeWord(t *testing.T) {
	ctx := Context{Table: testTable()}
	r, err := ctx.BranchAttrOpArg(1, isa.CondGE, []byte{1, 2, 3, 4}, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isa.Immediate16(r.Words[0]) != 42 {
		t.Fatalf("label = %d, want 42", isa.Immediate16(r.Words[0]))
	}
	if isa.ConditionOf(r.Words[0]) != isa.CondGE {
		t.Fatalf("condition = %v, want CondGE", isa.ConditionOf(r.Words[0]))
	}
}
