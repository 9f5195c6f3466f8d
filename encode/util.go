package encode

import "github.com/logicalclocks/rondb-sub003/isa"

// WriteInterpreterOutput encodes WRITE_INTERPRETER_OUTPUT(reg, outputIndex):
// appends a register's value to the operation's output row at outputIndex.
func (ctx Context) WriteInterpreterOutput(reg, outputIndex uint32) (Result, error) {
	const op = "WRITE_INTERPRETER_OUTPUT"
	if err := checkReg(op, reg); err != nil {
		return Result{}, err
	}
	if err := checkConst16(op, uint64(outputIndex)); err != nil {
		return Result{}, err
	}
	return one(isa.WriteInterpreterOutputWord(reg, outputIndex)), nil
}
