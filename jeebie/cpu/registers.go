package cpu

import "github.com/dmgcore/emu/jeebie/bit"

// getAF returns the combined accumulator and flag register.
// The lower nibble of F is always read back as zero.
func (c *CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f&0xF0)
}

// setAF writes the accumulator and flag register from a combined value.
// The lower nibble of F is forced to zero, matching hardware behaviour.
func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) getBC() uint16 {
	return bit.Combine(c.b, c.c)
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) getDE() uint16 {
	return bit.Combine(c.d, c.e)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) getHL() uint16 {
	return bit.Combine(c.h, c.l)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}
