// Package isa defines the word format and closed opcode set of the
// interpreted-code instruction set: a register-based bytecode that client
// nodes push into the data-node kernel to evaluate predicates and edit
// tuple data without a full round trip.
//
// An implementation must accept exactly the opcodes declared here and
// reject any other encoded value read off the wire.
package isa

// Word is the atomic storage and transport unit: instructions and inline
// operands are always whole 32-bit words, word-addressed rather than
// byte-addressed across the wire.
type Word = uint32

// OpCode identifies one of the closed set of instructions the interpreter
// accepts. The low 6 bits of the opcode word hold OpCode&0x3F; bit 15 holds
// the overflow/extended bit, giving a 7-bit opcode space (0..127).
type OpCode uint32

// OverflowOpcode is added to an OpCode's base value to select its
// "extended" form (register-offset memory addressing, register-constant
// comparisons, and the WRITE_SIZE_MEM / WRITE_INTERPRETER_OUTPUT aliases
// of CONVERT_SIZE / LOAD_CONST_MEM).
const OverflowOpcode OpCode = 64

// Attribute I/O.
const (
	ReadAttrIntoReg       OpCode = 1
	WriteAttrFromReg      OpCode = 2
	ReadAttrToMem         OpCode = 48
	ReadPartialAttrToMem  OpCode = 47
	WriteAttrFromMem      OpCode = 57
	AppendAttrFromMem     OpCode = 58
)

// Constant load.
const (
	LoadConstNull OpCode = 3
	LoadConst16   OpCode = 4
	LoadConst32   OpCode = 5
	LoadConst64   OpCode = 6
	LoadConstMem  OpCode = 59
)

// Register-register arithmetic and logic.
const (
	AddRegReg    OpCode = 7
	SubRegReg    OpCode = 8
	LshiftRegReg OpCode = 28
	RshiftRegReg OpCode = 29
	MulRegReg    OpCode = 30
	DivRegReg    OpCode = 31
	AndRegReg    OpCode = 32
	OrRegReg     OpCode = 33
	XorRegReg    OpCode = 34
	NotRegReg    OpCode = 35
	ModRegReg    OpCode = 36
)

// Register-constant arithmetic (NOT has no constant form).
const (
	AddConstRegToReg    OpCode = 37
	SubConstRegToReg    OpCode = 38
	LshiftConstRegToReg OpCode = 39
	RshiftConstRegToReg OpCode = 40
	MulConstRegToReg    OpCode = 41
	DivConstRegToReg    OpCode = 42
	AndConstRegToReg    OpCode = 43
	OrConstRegToReg     OpCode = 44
	XorConstRegToReg    OpCode = 45
	ModConstRegToReg    OpCode = 46
)

// Program memory <-> register. The plain form addresses memory with a
// 16-bit constant offset; OR-ing OverflowOpcode selects the register-offset
// form (bit 15 set).
const (
	ReadUint8MemToReg   OpCode = 49
	ReadUint16MemToReg  OpCode = 50
	ReadUint32MemToReg  OpCode = 51
	ReadInt64MemToReg   OpCode = 52
	WriteUint8RegToMem  OpCode = 53
	WriteUint16RegToMem OpCode = 54
	WriteUint32RegToMem OpCode = 55
	WriteInt64RegToMem  OpCode = 56
)

// Utility. WriteSizeMem and WriteInterpreterOutput reuse CONVERT_SIZE and
// LOAD_CONST_MEM's opcode number with the overflow bit set, exactly as the
// original kernel does — they are not independent opcode numbers.
const (
	ConvertSize            OpCode = 60
	WriteSizeMem                  = ConvertSize + OverflowOpcode
	WriteInterpreterOutput        = LoadConstMem + OverflowOpcode
)

// Control flow.
const (
	Branch             OpCode = 9
	BranchRegEqNull    OpCode = 10
	BranchRegNeNull    OpCode = 11
	BranchEqRegReg     OpCode = 12
	BranchNeRegReg     OpCode = 13
	BranchLtRegReg     OpCode = 14
	BranchLeRegReg     OpCode = 15
	BranchGtRegReg     OpCode = 16
	BranchGeRegReg     OpCode = 17
	ExitOK             OpCode = 18
	ExitRefuse         OpCode = 19
	Call               OpCode = 20
	Return             OpCode = 21
	ExitOKLast         OpCode = 22
	BranchAttrOpArg    OpCode = 23
	BranchAttrEqNull   OpCode = 24
	BranchAttrNeNull   OpCode = 25
	BranchAttrOpParam  OpCode = 26
	BranchAttrOpAttr   OpCode = 27
)

// Register-constant branch forms select the extended opcode bit.
var (
	BranchEqRegConst = BranchEqRegReg + OverflowOpcode
	BranchNeRegConst = BranchNeRegReg + OverflowOpcode
	BranchLtRegConst = BranchLtRegReg + OverflowOpcode
	BranchLeRegConst = BranchLeRegReg + OverflowOpcode
	BranchGtRegConst = BranchGtRegReg + OverflowOpcode
	BranchGeRegConst = BranchGeRegReg + OverflowOpcode
)

// BinaryCondition is the comparison predicate used by the BRANCH_ATTR_*
// family (attribute-vs-literal, attribute-vs-parameter, attribute-vs-attribute).
type BinaryCondition uint32

const (
	CondEQ BinaryCondition = iota
	CondNE
	CondLT
	CondLE
	CondGT
	CondGE
	CondLIKE
	CondNotLIKE
	CondAndEqMask
	CondAndNeMask
	CondAndEqZero
	CondAndNeZero
)

// NullSemantics controls how a NULL operand affects an attribute
// comparison; selected per-program from the assembler's UnknownHandling.
type NullSemantics uint32

const (
	NullCmpEqual    NullSemantics = 0x0 // NULL == NULL, NULL < anything
	nullReserved                  = 0x1 // unused combination, never emitted
	IfNullBreakOut  NullSemantics = 0x2 // branch taken if either operand is NULL
	IfNullContinue  NullSemantics = 0x3 // fall through if either operand is NULL
)

// UnknownHandling is the per-program policy the assembler uses to pick a
// NullSemantics for every attribute comparison it emits.
type UnknownHandling int

const (
	CmpHasNoUnknowns UnknownHandling = iota
	BranchIfUnknown
	ContinueIfUnknown
)

// NullSemanticsFor maps an UnknownHandling mode to the NullSemantics bits
// the encoder packs into bits 6..7 of an attribute-branch opcode word.
func NullSemanticsFor(mode UnknownHandling) NullSemantics {
	switch mode {
	case BranchIfUnknown:
		return IfNullBreakOut
	case ContinueIfUnknown:
		return IfNullContinue
	default:
		return NullCmpEqual
	}
}
