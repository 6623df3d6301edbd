package cpu

import "github.com/tkessler/nesgo/status"

// updateZeroAndNegative sets Z iff v == 0 and N iff bit 7 of v is set,
// leaving every other flag untouched.
func (c *CPU) updateZeroAndNegative(v uint8) {
	c.P = c.P.Set(status.Zero, v == 0)
	c.P = c.P.Set(status.Negative, v&0x80 != 0)
}

// addToA implements ADC in binary mode: A, Carry, Overflow, Zero and
// Negative are all derived from a single widened sum.
func (c *CPU) addToA(m uint8) {
	carryIn := uint16(0)
	if c.P.Contains(status.Carry) {
		carryIn = 1
	}

	sum := uint16(c.A) + uint16(m) + carryIn
	result := uint8(sum)

	c.P = c.P.Set(status.Carry, sum > 0xFF)
	overflow := (m^result)&(result^c.A)&0x80 != 0
	c.P = c.P.Set(status.Overflow, overflow)

	c.A = result
	c.updateZeroAndNegative(c.A)
}

// subtractFromA implements SBC as ADC(m XOR 0xFF), the two's-complement
// identity that correctly propagates carry and overflow.
func (c *CPU) subtractFromA(m uint8) {
	c.addToA(m ^ 0xFF)
}

// compare implements CMP/CPX/CPY: Carry is set iff reg >= m, and Z/N are
// derived from the wrapping difference reg - m.
func (c *CPU) compare(reg, m uint8) {
	c.P = c.P.Set(status.Carry, reg >= m)
	c.updateZeroAndNegative(reg - m)
}

// bitTest implements BIT: Zero reflects A&v, while Negative and Overflow
// are copied directly from bits 7 and 6 of v.
func (c *CPU) bitTest(v uint8) {
	c.P = c.P.Set(status.Zero, c.A&v == 0)
	c.P = c.P.Set(status.Negative, v&0x80 != 0)
	c.P = c.P.Set(status.Overflow, v&0x40 != 0)
}

// shiftLeft implements ASL: Carry takes the old bit 7.
func (c *CPU) shiftLeft(v uint8) uint8 {
	c.P = c.P.Set(status.Carry, v&0x80 != 0)
	result := v << 1
	c.updateZeroAndNegative(result)
	return result
}

// shiftRight implements LSR: Carry takes the old bit 0.
func (c *CPU) shiftRight(v uint8) uint8 {
	c.P = c.P.Set(status.Carry, v&0x01 != 0)
	result := v >> 1
	c.updateZeroAndNegative(result)
	return result
}

// rotateLeft implements ROL: the old Carry feeds into bit 0, and the old
// bit 7 becomes the new Carry.
func (c *CPU) rotateLeft(v uint8) uint8 {
	oldCarry := c.P.Contains(status.Carry)
	c.P = c.P.Set(status.Carry, v&0x80 != 0)
	result := v << 1
	if oldCarry {
		result |= 0x01
	}
	c.updateZeroAndNegative(result)
	return result
}

// rotateRight implements ROR: the old Carry feeds into bit 7, and the
// old bit 0 becomes the new Carry.
func (c *CPU) rotateRight(v uint8) uint8 {
	oldCarry := c.P.Contains(status.Carry)
	c.P = c.P.Set(status.Carry, v&0x01 != 0)
	result := v >> 1
	if oldCarry {
		result |= 0x80
	}
	c.updateZeroAndNegative(result)
	return result
}
