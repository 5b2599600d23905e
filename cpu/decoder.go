package cpu

import "mix/word"

// decoded is the fully resolved form of an instruction word: its raw
// parts plus the effective address M = A + (I==0 ? 0 : value(I_I)).
// M is not range-checked here; individual handlers decide whether it
// must index memory or is used as a literal operand.
type decoded struct {
	Sign      word.Sign
	Address   int
	IndexSpec int
	Field     word.Byte
	Code      word.Byte
	M         int
}

// decode extracts an instruction's parts from w and resolves M against
// the current Index registers.
func (c *Computer) decode(w word.Word) (decoded, error) {
	inst, err := word.DecodeInstruction(w)
	if err != nil {
		return decoded{}, err
	}

	m := inst.Address
	if inst.Index != 0 {
		m += c.indexRegister(inst.Index).Int()
	}

	return decoded{
		Sign:      inst.Sign,
		Address:   inst.Address,
		IndexSpec: inst.Index,
		Field:     inst.Field,
		Code:      inst.Code,
		M:         m,
	}, nil
}

// fieldSpec interprets d.Field as a memory FieldSpec, failing if it
// doesn't decode to a legal (L, R) pair. Used by every handler family
// that reads or writes select(memory[M], F).
func (d decoded) fieldSpec() (word.FieldSpec, error) {
	f := word.FieldSpecFromByte(d.Field)
	if !f.Valid() {
		return word.FieldSpec{}, &InvalidFieldError{Code: byte(d.Code.Value()), Field: byte(d.Field.Value())}
	}
	return f, nil
}

// operand reads select(memory[M], F), the memory operand most handler
// families consult.
func (c *Computer) operand(d decoded) (word.Word, error) {
	f, err := d.fieldSpec()
	if err != nil {
		return word.Word{}, err
	}
	cell, err := c.Mem.Read(d.M)
	if err != nil {
		return word.Word{}, err
	}
	return word.Select(cell, f), nil
}
