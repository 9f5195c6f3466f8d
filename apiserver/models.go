package apiserver

// ColumnSpec is the wire shape of one schema.Column, decoded from a client's
// table description.
type ColumnSpec struct {
	AttrID    uint32 `json:"attr_id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // fixed_binary, var_binary, var_char, bit, blob, text
	Length    uint32 `json:"length,omitempty"`
	ArraySize uint32 `json:"array_size,omitempty"`
	BitLength uint32 `json:"bit_length,omitempty"`
	Scale     int    `json:"scale,omitempty"`
	Precision int    `json:"precision,omitempty"`
	Charset   string `json:"charset,omitempty"`
	Storage   string `json:"storage,omitempty"` // main_memory (default), disk
}

// TableSpec is the wire shape of a schema.Table.
type TableSpec struct {
	Name    string       `json:"name"`
	Columns []ColumnSpec `json:"columns"`
}

// InstructionSpec is one ordered instruction call: Op names the assembler
// method to invoke (its interpreted-code mnemonic, e.g. "READ_ATTR",
// "BRANCH_LT_REG_REG"), Args carries its register/attribute/label/constant
// operands in the order the method declares them, Cond carries the
// BinaryCondition for the BRANCH_ATTR_OP_* family, and Data carries the
// literal payload for LOAD_CONST_MEM / BRANCH_ATTR_OP_ARG.
type InstructionSpec struct {
	Op   string   `json:"op"`
	Args []uint64 `json:"args,omitempty"`
	Cond string   `json:"cond,omitempty"`
	Data []byte   `json:"data,omitempty"`
}

// AssembleRequest is the body of POST /api/v1/assemble.
type AssembleRequest struct {
	Table           *TableSpec        `json:"table,omitempty"`
	UnknownHandling string            `json:"unknown_handling,omitempty"`
	InitialBufWords int               `json:"initial_buf_words,omitempty"`
	MaxBufWords     int               `json:"max_buf_words,omitempty"`
	Instructions    []InstructionSpec `json:"instructions"`
}

// AssembleResponse reports the assembled word stream or the sticky error
// that killed assembly.
type AssembleResponse struct {
	Success  bool     `json:"success"`
	Words    []uint32 `json:"words,omitempty"`
	UsesDisk bool     `json:"uses_disk,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ErrorResponse is returned for malformed requests (bad JSON, unknown
// table column type, and similar transport-level failures).
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
