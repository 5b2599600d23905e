package cpu

import "mix/word"

// storeHandler builds the STORE handler for C=24..31 (source register
// at the given regRefs offset). STORE writes its register's value into
// select(memory[M], F) = register, i.e. StoreField(memory[M], register,
// F): only the addressed field of the memory word changes.
func storeHandler(offset int) handlerFunc {
	return func(c *Computer, d decoded) error {
		f, err := d.fieldSpec()
		if err != nil {
			return err
		}
		cell, err := c.Mem.Read(d.M)
		if err != nil {
			return err
		}
		src := c.regRefs()[offset].get()
		return c.Mem.Write(d.M, word.StoreField(cell, src, f))
	}
}

// handleSTJ implements C=32 (STJ): store J, extended to a full Word
// with sign Plus, into the addressed field. The default field for STJ
// is (0:2), but any legal field is accepted as decoded.
func handleSTJ(c *Computer, d decoded) error {
	f, err := d.fieldSpec()
	if err != nil {
		return err
	}
	cell, err := c.Mem.Read(d.M)
	if err != nil {
		return err
	}
	return c.Mem.Write(d.M, word.StoreField(cell, c.J.AsWord(), f))
}

// handleSTZ implements C=33 (STZ): store a positive zero word into the
// addressed field.
func handleSTZ(c *Computer, d decoded) error {
	f, err := d.fieldSpec()
	if err != nil {
		return err
	}
	cell, err := c.Mem.Read(d.M)
	if err != nil {
		return err
	}
	return c.Mem.Write(d.M, word.StoreField(cell, word.ZeroWord, f))
}
