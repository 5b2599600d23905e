package cpu

import "mix/word"

// applyArith delivers the result of an INCr/DECr computation to ref.
// A and X (offsets 0 and 7) behave like ADD/SUB: overflow wraps and
// sets the Computer's overflow toggle. Index registers have no such
// wraparound — a result outside ±4095 is reported as an error by
// regRef.set's underlying AsIndex conversion.
func applyArith(c *Computer, ref regRef, offset int, value int) error {
	if offset == 0 || offset == 7 {
		result, overflowed := addWrapped(ref.get().Sign, value)
		if overflowed {
			c.Overflow = true
		}
		return ref.set(result)
	}
	w, err := word.WordFromInt(value)
	if err != nil {
		return err
	}
	return ref.set(w)
}

// addrTransferHandler builds the INCr/DECr/ENTr/ENNr handler for
// C=48..55 (register at the given regRefs offset), keyed by field
// 0..3. ENTr and ENNr take their sign from the instruction word's own
// sign field when M is 0, since zero otherwise carries no sign of its
// own.
func addrTransferHandler(offset int) handlerFunc {
	return func(c *Computer, d decoded) error {
		ref := c.regRefs()[offset]

		switch d.Field.Value() {
		case 0: // INCr
			return applyArith(c, ref, offset, ref.get().Int()+d.M)
		case 1: // DECr
			return applyArith(c, ref, offset, ref.get().Int()-d.M)
		case 2: // ENTr
			sign := word.SignFromInt(d.M)
			if d.M == 0 {
				sign = d.Sign
			}
			return ref.set(word.WordFromMagnitude(sign, abs(d.M)))
		case 3: // ENNr
			sign := word.SignFromInt(d.M).Opposite()
			if d.M == 0 {
				sign = d.Sign.Opposite()
			}
			return ref.set(word.WordFromMagnitude(sign, abs(d.M)))
		default:
			return &InvalidFieldError{Code: byte(d.Code.Value()), Field: byte(d.Field.Value())}
		}
	}
}
