package assembler

import "github.com/logicalclocks/rondb-sub003/isa"

const defaultInitialWords = 64

// Storage is the assembler's backing word array. Borrowed wraps a
// caller-supplied slice of fixed capacity and never grows; Owned grows by
// doubling, capped at a configured maximum. Modelling ownership as an
// interface keeps growth available only where it's legal rather than
// branching on a nullable pointer.
type Storage interface {
	// Words returns the full backing slice; len(Words()) is the current
	// capacity, not the amount used.
	Words() []isa.Word
	// Grow returns a new Storage with capacity at least minWords, or ok=false
	// if this Storage cannot satisfy that (Borrowed never can; Owned fails
	// only once it has hit its configured maximum).
	Grow(minWords int) (next Storage, ok bool)
}

// Borrowed is caller-owned storage: the assembler writes into it but never
// reallocates it.
type Borrowed struct {
	buf []isa.Word
}

// newBorrowedStorage wraps a caller-supplied word slice as fixed-capacity
// storage.
func newBorrowedStorage(buf []isa.Word) Borrowed { return Borrowed{buf: buf} }

func (b Borrowed) Words() []isa.Word          { return b.buf }
func (b Borrowed) Grow(int) (Storage, bool)   { return b, false }

// Owned is assembler-managed storage that grows by doubling, never beyond
// maxWords.
type Owned struct {
	buf      []isa.Word
	maxWords int
}

// newOwnedStorage creates empty, growable storage capped at maxWords.
func newOwnedStorage(initialWords, maxWords int) Owned {
	if initialWords <= 0 {
		initialWords = defaultInitialWords
	}
	if initialWords > maxWords {
		initialWords = maxWords
	}
	return Owned{buf: make([]isa.Word, initialWords), maxWords: maxWords}
}

func (o Owned) Words() []isa.Word { return o.buf }

func (o Owned) Grow(minWords int) (Storage, bool) {
	newCap := len(o.buf)
	if newCap == 0 {
		newCap = defaultInitialWords
	}
	for newCap < minWords {
		newCap *= 2
	}
	if newCap > o.maxWords {
		newCap = o.maxWords
	}
	if newCap < minWords {
		return o, false
	}
	return Owned{buf: make([]isa.Word, newCap), maxWords: o.maxWords}, true
}
