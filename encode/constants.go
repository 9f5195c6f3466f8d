package encode

import "github.com/logicalclocks/rondb-sub003/isa"

// LoadConstNull encodes LOAD_CONST_NULL(reg): one word, sets the NULL flag.
func (ctx Context) LoadConstNull(reg uint32) (Result, error) {
	const op = "LOAD_CONST_NULL"
	if err := checkReg(op, reg); err != nil {
		return Result{}, err
	}
	return one(isa.LoadConstNullWord(reg)), nil
}

// LoadConst16 encodes LOAD_CONST16(reg, value): one word, immediate inline.
func (ctx Context) LoadConst16(reg, value uint32) (Result, error) {
	const op = "LOAD_CONST16"
	if err := checkReg(op, reg); err != nil {
		return Result{}, err
	}
	if err := checkConst16(op, uint64(value)); err != nil {
		return Result{}, err
	}
	return one(isa.LoadConst16Word(reg, value)), nil
}

// LoadConst32 encodes LOAD_CONST32(reg, value): opcode word plus the value
// in the following word.
func (ctx Context) LoadConst32(reg, value uint32) (Result, error) {
	const op = "LOAD_CONST32"
	if err := checkReg(op, reg); err != nil {
		return Result{}, err
	}
	return Result{Words: []isa.Word{isa.LoadConst32Word(reg), value}}, nil
}

// LoadConst64 encodes LOAD_CONST64(reg, value): opcode word plus the value
// in the following two words, low-order word first.
func (ctx Context) LoadConst64(reg uint32, value uint64) (Result, error) {
	const op = "LOAD_CONST64"
	if err := checkReg(op, reg); err != nil {
		return Result{}, err
	}
	lo := uint32(value)
	hi := uint32(value >> 32)
	return Result{Words: []isa.Word{isa.LoadConst64Word(reg), lo, hi}}, nil
}

// LoadConstMem encodes LOAD_CONST_MEM(regMemOffset, regSizeDst, data):
// copies data into program memory and sets regSizeDst to its byte length.
// Zero-length literals are rejected — the executor's comparison semantics
// over zero bytes are not documented (spec Open Question, resolved as
// "reject").
func (ctx Context) LoadConstMem(regMemOffset, regSizeDst uint32, data []byte) (Result, error) {
	const op = "LOAD_CONST_MEM"
	if err := checkRegs(op, regMemOffset, regSizeDst); err != nil {
		return Result{}, err
	}
	if len(data) == 0 {
		return Result{}, badLength(op, 0)
	}
	if uint64(len(data)) >= isa.MaxImmediate16 {
		return Result{}, badConstant(op, uint64(len(data)))
	}
	words := make([]isa.Word, 0, 1+isa.WordsForBytes(uint32(len(data))))
	words = append(words, isa.LoadConstMemWord(regMemOffset, regSizeDst, uint32(len(data))))
	words = append(words, packLiteral(data)...)
	return Result{Words: words}, nil
}

// packLiteral packs a byte literal into whole words, little-endian within
// each word, zero-padding the final word out to a word boundary.
func packLiteral(data []byte) []isa.Word {
	n := isa.WordsForBytes(uint32(len(data)))
	words := make([]isa.Word, n)
	for i, b := range data {
		words[i/4] |= isa.Word(b) << uint((i%4)*8)
	}
	return words
}

// maskBitLiteral zeroes the bits of a BIT-column literal beyond bitLength,
// so a literal padded out to a whole byte compares equal regardless of what
// its unused trailing bits happen to hold.
func maskBitLiteral(data []byte, bitLength uint32) []byte {
	if bitLength == 0 || bitLength >= uint32(len(data))*8 {
		return data
	}
	masked := make([]byte, len(data))
	copy(masked, data)
	fullBytes := bitLength / 8
	if rem := bitLength % 8; rem != 0 {
		masked[fullBytes] &= byte(1<<rem - 1)
		fullBytes++
	}
	for i := fullBytes; i < uint32(len(masked)); i++ {
		masked[i] = 0
	}
	return masked
}
