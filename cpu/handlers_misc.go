package cpu

func handleNOP(c *Computer, d decoded) error {
	return nil
}

// handleHalt implements C=5. Only F=2 is defined (HALT); any other
// field is an unrecognised (opcode, field) pairing.
func handleHalt(c *Computer, d decoded) error {
	if d.Field.Value() != 2 {
		return &InvalidFieldError{Code: byte(d.Code.Value()), Field: byte(d.Field.Value())}
	}
	c.Running = false
	return nil
}
