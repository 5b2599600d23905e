package cpu

// I/O instructions (C=34..38) reuse the field byte as a unit number and
// M as either a jump target or a device function/block address,
// delegating everything to the Computer's Device.

func handleJBUS(c *Computer, d decoded) error {
	if c.IO.Busy(d.Field.Value()) {
		return c.jumpTo(d.M)
	}
	return nil
}

func handleJRED(c *Computer, d decoded) error {
	if c.IO.Ready(d.Field.Value()) {
		return c.jumpTo(d.M)
	}
	return nil
}

func handleIOC(c *Computer, d decoded) error {
	return c.IO.Control(d.Field.Value(), d.M)
}

func handleIN(c *Computer, d decoded) error {
	return c.IO.ReadBlock(d.Field.Value(), d.M)
}

func handleOUT(c *Computer, d decoded) error {
	return c.IO.WriteBlock(d.Field.Value(), d.M)
}
