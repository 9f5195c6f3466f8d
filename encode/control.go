package encode

import "github.com/logicalclocks/rondb-sub003/isa"

// Call encodes CALL(subNo): subNo is a symbolic subroutine number, resolved
// to a within-section word offset by the assembler's finalise pass.
func (ctx Context) Call(subNo uint32) (Result, error) {
	if err := checkLabel("CALL", subNo); err != nil {
		return Result{}, err
	}
	return one(isa.CallWord(subNo)), nil
}

// Return encodes RETURN.
func (ctx Context) Return() (Result, error) {
	return one(isa.ReturnWord()), nil
}

// ExitOK encodes EXIT_OK: accept the operation, more instructions may follow
// for a later row.
func (ctx Context) ExitOK() (Result, error) {
	return one(isa.ExitOKWord()), nil
}

// ExitOKLast encodes EXIT_OK_LAST: accept, and no further rows will be
// evaluated by this program.
func (ctx Context) ExitOKLast() (Result, error) {
	return one(isa.ExitOKLastWord()), nil
}

// ExitRefuse encodes EXIT_REFUSE(errCode): reject the operation with a
// caller-supplied error code.
func (ctx Context) ExitRefuse(errCode uint32) (Result, error) {
	if err := checkConst16("EXIT_REFUSE", uint64(errCode)); err != nil {
		return Result{}, err
	}
	return one(isa.ExitRefuseWord(errCode)), nil
}
