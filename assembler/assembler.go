// Package assembler implements the interpreted-code Assembler (C4) and its
// Finaliser (C5): it owns a dual-end word buffer (instructions growing up
// from index 0, label/subroutine metainfo growing down from the top),
// drives package encode to produce each instruction's words, and resolves
// symbolic label and subroutine references into relative word offsets.
//
// Once any call fails, the Assembler is permanently dead: its sticky error
// is returned by every subsequent call until Reset.
package assembler

import (
	"github.com/logicalclocks/rondb-sub003/encode"
	"github.com/logicalclocks/rondb-sub003/isa"
	"github.com/logicalclocks/rondb-sub003/schema"
)

// metaKind distinguishes the two kinds of metainfo record living at the
// buffer's high end.
type metaKind int

const (
	metaLabel metaKind = iota
	metaSub
)

// metaRecord occupies two words at the top of the buffer: a tagged
// (kind, number) header and the defined instruction position. Storing them
// in the buffer mirrors the original capacity accounting exactly; the
// Assembler also keeps dense maps alongside for O(1) finalise-time lookup,
// replacing the qsort the kernel used to bring same-kind records together.
type metaRecord struct {
	kind   metaKind
	number uint32
	pos    int
}

const metaWordsPerRecord = 2

// Assembler is the C4 component: one instance assembles one program.
type Assembler struct {
	storage Storage

	instrLen int // words used at the low end
	metaLen  int // words used at the high end (in metaRecord units * 2)

	table   *schema.Table
	unknown isa.UnknownHandling

	numLabels, numSubs, numCalls uint32
	firstSubPos                  int
	haveFirstSubPos              bool
	inSubDef                     bool

	usesDisk  bool
	finalised bool
	err       *AsmError

	labelPos map[uint32]int
	subPos   map[uint32]int
	records  []metaRecord
}

// NewOwned creates an Assembler backed by storage that grows by doubling up
// to maxWords, optionally bound to table for attribute validation.
func NewOwned(table *schema.Table, unknown isa.UnknownHandling, initialWords, maxWords int) *Assembler {
	return newAssembler(newOwnedStorage(initialWords, maxWords), table, unknown)
}

// NewBorrowed creates an Assembler backed by a caller-supplied, fixed-size
// buffer that never grows.
func NewBorrowed(buf []isa.Word, table *schema.Table, unknown isa.UnknownHandling) *Assembler {
	return newAssembler(newBorrowedStorage(buf), table, unknown)
}

func newAssembler(storage Storage, table *schema.Table, unknown isa.UnknownHandling) *Assembler {
	return &Assembler{
		storage:  storage,
		table:    table,
		unknown:  unknown,
		labelPos: make(map[uint32]int),
		subPos:   make(map[uint32]int),
	}
}

// Reset clears all assembly state (instructions, metainfo, counters,
// flags, the sticky error) so the same owned storage can be reused for a
// fresh program, mirroring the teacher's Encoder.Reset.
func (a *Assembler) Reset() {
	a.instrLen = 0
	a.metaLen = 0
	a.numLabels, a.numSubs, a.numCalls = 0, 0, 0
	a.firstSubPos = 0
	a.haveFirstSubPos = false
	a.inSubDef = false
	a.usesDisk = false
	a.finalised = false
	a.err = nil
	a.labelPos = make(map[uint32]int)
	a.subPos = make(map[uint32]int)
	a.records = nil
}

// Err returns the sticky error, if any operation has failed.
func (a *Assembler) Err() error {
	if a.err == nil {
		return nil
	}
	return a.err
}

// UsesDisk reports whether any emitted attribute write or BRANCH_ATTR_OP_*
// comparison referenced a disk-backed column. Attribute reads and the
// attribute NULL-check branches do not set it.
func (a *Assembler) UsesDisk() bool { return a.usesDisk }

// Finalised reports whether Finalise has succeeded on this Assembler.
func (a *Assembler) Finalised() bool { return a.finalised }

// Labels returns a snapshot of the label number -> instruction position
// table, for callers that want to inspect a program's structure (e.g. the
// TUI inspector) without reaching into assembler internals.
func (a *Assembler) Labels() map[uint32]int {
	out := make(map[uint32]int, len(a.labelPos))
	for k, v := range a.labelPos {
		out[k] = v
	}
	return out
}

// Subs returns a snapshot of the subroutine number -> instruction position
// table.
func (a *Assembler) Subs() map[uint32]int {
	out := make(map[uint32]int, len(a.subPos))
	for k, v := range a.subPos {
		out[k] = v
	}
	return out
}

func (a *Assembler) ctx() encode.Context {
	return encode.Context{Table: a.table, Unknown: a.unknown}
}

func (a *Assembler) fail(err *AsmError) error {
	if a.err == nil {
		a.err = err
	}
	return a.err
}

// emit is the common tail of every instruction-emitting method: it checks
// the sticky error, surfaces an encode-layer failure, appends the words on
// success, and folds in UsesDisk.
func (a *Assembler) emit(res encode.Result, err error) error {
	if liveErr := a.checkLive(); liveErr != nil {
		return liveErr
	}
	if err != nil {
		return a.fail(fromEncodeError(err))
	}
	if appendErr := a.appendWords(res.Words); appendErr != nil {
		return appendErr
	}
	if res.UsesDisk {
		a.usesDisk = true
	}
	return nil
}

// availableWords is last_meta_pos - instructions_length: the room left
// between the two ends of the buffer.
func (a *Assembler) availableWords() int {
	return len(a.storage.Words()) - a.metaLen - a.instrLen
}

// haveSpaceFor ensures n more words can be appended at the low end,
// growing Owned storage (doubling, capped) or failing TooManyInstructions
// on Borrowed storage or an Owned buffer already at its maximum.
func (a *Assembler) haveSpaceFor(n int) error {
	if a.availableWords() >= n {
		return nil
	}
	next, ok := a.storage.Grow(a.instrLen + a.metaLen + n)
	if !ok {
		return a.fail(newAsmErr(TooManyInstructions, "no room for %d more word(s)", n))
	}
	oldWords := a.storage.Words()
	newWords := next.Words()
	copy(newWords, oldWords[:a.instrLen])
	copy(newWords[len(newWords)-a.metaLen:], oldWords[len(oldWords)-a.metaLen:])
	a.storage = next
	return nil
}

func (a *Assembler) appendWords(words []isa.Word) error {
	if err := a.haveSpaceFor(len(words)); err != nil {
		return err
	}
	copy(a.storage.Words()[a.instrLen:], words)
	a.instrLen += len(words)
	return nil
}

// appendMeta pushes a metainfo record from the high end downward.
func (a *Assembler) appendMeta(rec metaRecord) error {
	if err := a.haveSpaceFor(metaWordsPerRecord); err != nil {
		return err
	}
	a.metaLen += metaWordsPerRecord
	words := a.storage.Words()
	top := len(words) - a.metaLen
	words[top] = uint32(rec.kind)<<16 | rec.number
	words[top+1] = uint32(rec.pos)
	a.records = append(a.records, rec)
	return nil
}

func (a *Assembler) checkLive() error {
	if a.err != nil {
		return a.err
	}
	if a.finalised {
		return a.fail(newAsmErr(BadState, "program already finalised"))
	}
	return nil
}

// DefLabel defines label n at the current instruction position.
func (a *Assembler) DefLabel(n uint32) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if err := checkLabelNumber(n); err != nil {
		return a.fail(err)
	}
	if _, exists := a.labelPos[n]; exists {
		return a.fail(newAsmErr(BadLabelNum, "label %d already defined", n))
	}
	if err := a.appendMeta(metaRecord{kind: metaLabel, number: n, pos: a.instrLen}); err != nil {
		return err
	}
	a.labelPos[n] = a.instrLen
	a.numLabels++
	return nil
}

// DefSub opens subroutine n at the current instruction position. At least
// one Call must already have been emitted; subroutine definitions may not
// nest.
func (a *Assembler) DefSub(n uint32) error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if a.numCalls == 0 {
		return a.fail(newAsmErr(BadState, "def_sub %d before any call", n))
	}
	if a.inSubDef {
		return a.fail(newAsmErr(BadState, "def_sub %d while already inside a subroutine definition", n))
	}
	if err := checkLabelNumber(n); err != nil {
		return a.fail(err)
	}
	if _, exists := a.subPos[n]; exists {
		return a.fail(newAsmErr(BadSubNumber, "subroutine %d already defined", n))
	}
	if !a.haveFirstSubPos {
		a.firstSubPos = a.instrLen
		a.haveFirstSubPos = true
	}
	if err := a.appendMeta(metaRecord{kind: metaSub, number: n, pos: a.instrLen}); err != nil {
		return err
	}
	a.subPos[n] = a.instrLen
	a.numSubs++
	a.inSubDef = true
	return nil
}

// RetSub closes the subroutine definition opened by DefSub, emitting
// RETURN.
func (a *Assembler) RetSub() error {
	if err := a.checkLive(); err != nil {
		return err
	}
	if !a.inSubDef {
		return a.fail(newAsmErr(BadState, "ret_sub outside a subroutine definition"))
	}
	if err := a.emit(a.ctx().Return()); err != nil {
		return err
	}
	a.inSubDef = false
	return nil
}

// Call emits CALL(subNo) and records that a call has occurred, satisfying
// DefSub's precondition.
func (a *Assembler) Call(subNo uint32) error {
	if err := a.emit(a.ctx().Call(subNo)); err != nil {
		return err
	}
	a.numCalls++
	return nil
}

func checkLabelNumber(n uint32) *AsmError {
	if n > isa.MaxLabel {
		return newAsmErr(BadLabelNum, "label/sub number %d exceeds %d", n, isa.MaxLabel)
	}
	return nil
}
