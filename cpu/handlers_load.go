package cpu

// loadHandler builds the LOAD (C=8..15) or LOAD-NEG (C=16..23) handler
// for the register at the given offset (regRefs order: A, I1..I6, X).
// Both families read select(memory[M], F) and store it into the
// register; LOAD-NEG additionally flips the sign of the loaded value.
// An Index register target that can't hold the loaded magnitude (it
// exceeds ±4095) is reported as an error rather than truncated.
func loadHandler(offset int, negate bool) handlerFunc {
	return func(c *Computer, d decoded) error {
		v, err := c.operand(d)
		if err != nil {
			return err
		}
		if negate {
			v = v.WithSign(v.Sign.Opposite())
		}
		return c.regRefs()[offset].set(v)
	}
}
