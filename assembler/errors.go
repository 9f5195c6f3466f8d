package assembler

import (
	"errors"
	"fmt"

	"github.com/logicalclocks/rondb-sub003/encode"
)

// ErrorCode is the stable, wire-level identity of an assembler failure,
// covering both the encoder's bounds violations and the assembler's own
// program-structure and finalisation errors.
type ErrorCode int

const (
	TooManyInstructions ErrorCode = iota + 1
	BadRegister
	BadAttributeId
	BadConstant
	BadLabelNum
	BadBranchToLabel
	BadLabelBranch
	BadSubNumber
	SubroutineNotFound
	BadSubroutineOffset
	BadState
	TableNotSet
	ColumnsNotBindable
	BadLength
)

// AsmError is the assembler's sticky error record: once set, it is
// returned by every subsequent operation on the same Assembler, never
// cleared except by Reset.
type AsmError struct {
	Code    ErrorCode
	Message string
}

func (e *AsmError) Error() string {
	return fmt.Sprintf("assembler: %s", e.Message)
}

func newAsmErr(code ErrorCode, format string, args ...any) *AsmError {
	return &AsmError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// fromEncodeError translates a package encode validation failure into the
// assembler's own error code space, preserving the original as the
// message's detail.
func fromEncodeError(err error) *AsmError {
	var ee *encode.Error
	if !errors.As(err, &ee) {
		return newAsmErr(BadState, "%v", err)
	}
	code := map[encode.Code]ErrorCode{
		encode.BadRegister:         BadRegister,
		encode.BadConstant:         BadConstant,
		encode.BadAttributeId:      BadAttributeId,
		encode.BadLabelNum:         BadLabelNum,
		encode.BadLength:           BadLength,
		encode.ColumnsNotBindable:  ColumnsNotBindable,
		encode.TableNotSet:         TableNotSet,
	}[ee.Code]
	if code == 0 {
		code = BadState
	}
	return newAsmErr(code, "%s: %s", ee.Op, ee.Message)
}
