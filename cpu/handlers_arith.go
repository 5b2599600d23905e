package cpu

import "mix/word"

// wordMod is 64^5, the modulus ADD/SUB wrap into on overflow.
const wordMod = 1_073_741_824 // 64^5

// addWrapped combines an unwrapped sum with the register's prior sign
// to produce the ADD/SUB result: on overflow the magnitude wraps
// modulo 64^5, and a resulting zero magnitude keeps prevSign rather
// than whatever sign the unwrapped sum would have had.
func addWrapped(prevSign word.Sign, sum int) (word.Word, bool) {
	overflowed := sum > wordMagnitudeMax || sum < -wordMagnitudeMax
	mag := abs(sum) % wordMod
	sign := word.SignFromInt(sum)
	if mag == 0 {
		sign = prevSign
	}
	return word.WordFromMagnitude(sign, mag), overflowed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// signXOR is the sign rule shared by MUL and DIV: same sign
// yields Plus, differing signs yield Minus.
func signXOR(a, b word.Sign) word.Sign {
	return word.Sign(a != b)
}

func handleADD(c *Computer, d decoded) error {
	v, err := c.operand(d)
	if err != nil {
		return err
	}
	result, overflowed := addWrapped(c.A.Sign, c.A.Int()+v.Int())
	c.A = result
	if overflowed {
		c.Overflow = true
	}
	return nil
}

func handleSUB(c *Computer, d decoded) error {
	v, err := c.operand(d)
	if err != nil {
		return err
	}
	result, overflowed := addWrapped(c.A.Sign, c.A.Int()-v.Int())
	c.A = result
	if overflowed {
		c.Overflow = true
	}
	return nil
}

// wordMagnitudeMax is 64^5 - 1, mirrored from the word package's own
// constant so the overflow comparisons here read the same way.
const wordMagnitudeMax = wordMod - 1

func handleMUL(c *Computer, d decoded) error {
	v, err := c.operand(d)
	if err != nil {
		return err
	}
	product := c.A.Magnitude() * v.Magnitude()
	sign := signXOR(c.A.Sign, v.Sign)
	c.A = word.WordFromMagnitude(sign, product/wordMod)
	c.X = word.WordFromMagnitude(sign, product%wordMod)
	return nil
}

func handleDIV(c *Computer, d decoded) error {
	v, err := c.operand(d)
	if err != nil {
		return err
	}

	divisor := v.Magnitude()
	if divisor == 0 {
		c.Overflow = true
		return nil
	}

	oldASign := c.A.Sign
	numerator := c.A.Magnitude()*wordMod + c.X.Magnitude()
	q := numerator / divisor
	r := numerator % divisor

	if q > wordMagnitudeMax {
		c.Overflow = true
		return nil
	}

	c.A = word.WordFromMagnitude(signXOR(oldASign, v.Sign), q)
	c.X = word.WordFromMagnitude(oldASign, r)
	return nil
}
