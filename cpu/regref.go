package cpu

import "mix/word"

// regRef is a uniform handle onto one of the eight registers that
// LOAD, LOAD-NEG, JUMP-REG, ADDR-TRANSFER, and COMPARE all enumerate in
// the same order: A, I1..I6, X. Index registers are read as full Words
// via word.Index.AsWord and written back via word.Word.AsIndex, so
// every family can be written
// once against regRef instead of once per concrete register type.
type regRef struct {
	get func() word.Word
	set func(word.Word) error // fails if the value doesn't fit an Index register
}

// regRefs returns the eight regRefs in opcode-offset order: offset 0
// is A, 1..6 are I1..I6, 7 is X. Families whose opcodes span a
// register dimension compute this offset as code - base.
func (c *Computer) regRefs() [8]regRef {
	return [8]regRef{
		0: {
			get: func() word.Word { return c.A },
			set: func(w word.Word) error { c.A = w; return nil },
		},
		1: c.indexRegRef(1),
		2: c.indexRegRef(2),
		3: c.indexRegRef(3),
		4: c.indexRegRef(4),
		5: c.indexRegRef(5),
		6: c.indexRegRef(6),
		7: {
			get: func() word.Word { return c.X },
			set: func(w word.Word) error { c.X = w; return nil },
		},
	}
}

func (c *Computer) indexRegRef(n int) regRef {
	reg := c.indexRegister(n)
	return regRef{
		get: func() word.Word { return reg.AsWord() },
		set: func(w word.Word) error {
			idx, err := w.AsIndex()
			if err != nil {
				return err
			}
			*reg = idx
			return nil
		},
	}
}

// registerName renders the register name for the given offset (0=A,
// 1..6=I1..I6, 7=X), or "?" for an offset outside 0..7.
func registerName(offset int) string {
	names := [8]string{"A", "I1", "I2", "I3", "I4", "I5", "I6", "X"}
	if offset < 0 || offset > 7 {
		return "?"
	}
	return names[offset]
}
