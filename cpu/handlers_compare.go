package cpu

import "mix/word"

// compareHandler builds the COMPARE handler for C=56..63 (register at
// the given regRefs offset). It compares select(register, F) against
// select(memory[M], F) and records the result in the Computer's
// comparison indicator; neither operand is modified.
func compareHandler(offset int) handlerFunc {
	return func(c *Computer, d decoded) error {
		f, err := d.fieldSpec()
		if err != nil {
			return err
		}
		cell, err := c.Mem.Read(d.M)
		if err != nil {
			return err
		}
		regVal := word.Select(c.regRefs()[offset].get(), f)
		memVal := word.Select(cell, f)
		c.Comparison = compare(regVal.Int(), memVal.Int())
		return nil
	}
}
