package cpu

import "mix/word"

// jumpTo sets J to the instruction's post-increment PC and transfers
// control to m. Shared by every jump family that actually jumps.
func (c *Computer) jumpTo(m int) error {
	j, err := word.JumpAddressFromInt(c.PC)
	if err != nil {
		return err
	}
	c.J = j
	c.PC = m
	return nil
}

// handleJump implements C=39: JMP, JSJ, JOV, JNOV, and the six
// comparison-indicator jumps JL/JE/JG/JGE/JNE/JLE, keyed by field 0..9.
func handleJump(c *Computer, d decoded) error {
	switch d.Field.Value() {
	case 0: // JMP
		return c.jumpTo(d.M)
	case 1: // JSJ: transfer control without recording J
		c.PC = d.M
		return nil
	case 2: // JOV
		overflowed := c.Overflow
		c.Overflow = false
		if overflowed {
			return c.jumpTo(d.M)
		}
		return nil
	case 3: // JNOV
		overflowed := c.Overflow
		c.Overflow = false
		if !overflowed {
			return c.jumpTo(d.M)
		}
		return nil
	case 4: // JL
		if c.Comparison == Less {
			return c.jumpTo(d.M)
		}
	case 5: // JE
		if c.Comparison == Equal {
			return c.jumpTo(d.M)
		}
	case 6: // JG
		if c.Comparison == Greater {
			return c.jumpTo(d.M)
		}
	case 7: // JGE
		if c.Comparison == Greater || c.Comparison == Equal {
			return c.jumpTo(d.M)
		}
	case 8: // JNE
		if c.Comparison != Equal {
			return c.jumpTo(d.M)
		}
	case 9: // JLE
		if c.Comparison == Less || c.Comparison == Equal {
			return c.jumpTo(d.M)
		}
	default:
		return &InvalidFieldError{Code: byte(d.Code.Value()), Field: byte(d.Field.Value())}
	}
	return nil
}
