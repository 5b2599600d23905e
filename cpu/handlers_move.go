package cpu

import "mix/word"

// handleMove implements C=7 (MOVE): the field byte is reused as a plain
// count (not a FieldSpec). It copies that many words, one at a time,
// from M, M+1, ... to the address currently in I1, I1+1, ..., then
// advances I1 by the count. A count of 0 is a no-op.
func handleMove(c *Computer, d decoded) error {
	count := d.Field.Value()
	dest := c.I1.Int()

	for i := 0; i < count; i++ {
		v, err := c.Mem.Read(d.M + i)
		if err != nil {
			return err
		}
		if err := c.Mem.Write(dest+i, v); err != nil {
			return err
		}
	}

	newI1, err := word.IndexFromInt(dest + count)
	if err != nil {
		return err
	}
	c.I1 = newI1
	return nil
}
