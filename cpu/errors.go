package cpu

import "fmt"

// InvalidOpcodeError reports a code byte with no registered handler.
type InvalidOpcodeError struct {
	Code byte
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode %d", e.Code)
}

// InvalidFieldError reports a (code, field) pairing a handler doesn't
// recognise — e.g. a SHIFT subcode outside 0..5, or a memory-field
// instruction whose F byte doesn't decode to a valid FieldSpec. This is
// surfaced as an error rather than corrupting memory.
type InvalidFieldError struct {
	Code  byte
	Field byte
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("cpu: invalid field %d for opcode %d", e.Field, e.Code)
}
