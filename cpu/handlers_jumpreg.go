package cpu

// jumpRegHandler builds the JrN/JrZ/JrP/JrNN/JrNZ/JrNP handler for
// C=40..47 (register at the given regRefs offset), keyed by field
// 0..5. Each tests the register's signed value against zero and jumps
// to M when the test holds.
func jumpRegHandler(offset int) handlerFunc {
	return func(c *Computer, d decoded) error {
		v := c.regRefs()[offset].get().Int()

		var jump bool
		switch d.Field.Value() {
		case 0: // JrN
			jump = v < 0
		case 1: // JrZ
			jump = v == 0
		case 2: // JrP
			jump = v > 0
		case 3: // JrNN
			jump = v >= 0
		case 4: // JrNZ
			jump = v != 0
		case 5: // JrNP
			jump = v <= 0
		default:
			return &InvalidFieldError{Code: byte(d.Code.Value()), Field: byte(d.Field.Value())}
		}

		if jump {
			return c.jumpTo(d.M)
		}
		return nil
	}
}
