// Package schema describes the table metadata the encoder and assembler
// consult when validating attribute references. It is a read-only external
// input: the interpreted-code core never mutates a Table or Column.
package schema

// StorageKind distinguishes a column held entirely in main memory from one
// whose large-object payload lives on disk — the assembler surfaces a
// UsesDisk flag whenever a program writes to a disk-backed column, so the
// caller can route the request to the correct executor.
type StorageKind int

const (
	StorageMainMemory StorageKind = iota
	StorageDisk
)

// ColumnType is a coarse type tag sufficient for bindability and
// fixed/variable-width decisions; it deliberately does not model SQL types
// in full (code generation from SQL is out of scope).
type ColumnType int

const (
	TypeFixedBinary ColumnType = iota
	TypeVarBinary
	TypeVarChar
	TypeBit
	TypeBlob
	TypeText
)

// Column is one attribute of a Table, addressed elsewhere by AttrID.
type Column struct {
	AttrID    uint32
	Name      string
	Type      ColumnType
	Length    uint32 // declared width in bytes for fixed types
	ArraySize uint32
	BitLength uint32 // meaningful only for TypeBit
	Scale     int
	Precision int
	Charset   string
	Storage   StorageKind
}

// IsLargeObject reports whether a column's variable-length payload is
// unsuitable for inline literal comparison (BLOB/TEXT).
func (c Column) IsLargeObject() bool {
	return c.Type == TypeBlob || c.Type == TypeText
}

// Table is the attribute-id-indexed schema the assembler binds to.
type Table struct {
	Name    string
	columns map[uint32]Column
}

// NewTable builds a Table from its columns, indexed by AttrID.
func NewTable(name string, columns []Column) *Table {
	t := &Table{Name: name, columns: make(map[uint32]Column, len(columns))}
	for _, c := range columns {
		t.columns[c.AttrID] = c
	}
	return t
}

// Column looks up a column by attribute id.
func (t *Table) Column(attrID uint32) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	c, ok := t.columns[attrID]
	return c, ok
}

// Bindable reports whether two columns may be compared directly by
// BRANCH_ATTR_OP_ATTR: identical type, length, array size, scale, precision
// and charset, and neither a BLOB/TEXT variant.
func Bindable(a, b Column) bool {
	if a.IsLargeObject() || b.IsLargeObject() {
		return false
	}
	return a.Type == b.Type &&
		a.Length == b.Length &&
		a.ArraySize == b.ArraySize &&
		a.Scale == b.Scale &&
		a.Precision == b.Precision &&
		a.Charset == b.Charset
}
