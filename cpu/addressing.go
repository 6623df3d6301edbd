package cpu

import "github.com/tkessler/nesgo/opcode"

// operandAddress computes the effective address of the current
// instruction's operand. c.PC must point at the first operand byte (the
// opcode byte has already been consumed). It never mutates PC; the
// caller (Step) advances PC past the whole instruction afterward.
func (c *CPU) operandAddress(mode opcode.AddressingMode) uint16 {
	switch mode {
	case opcode.Immediate:
		return c.PC
	case opcode.ZeroPage:
		return uint16(c.read(c.PC))
	case opcode.ZeroPageX:
		return uint16(c.read(c.PC) + c.X)
	case opcode.ZeroPageY:
		return uint16(c.read(c.PC) + c.Y)
	case opcode.Absolute:
		return c.readU16(c.PC)
	case opcode.AbsoluteX:
		return c.readU16(c.PC) + uint16(c.X)
	case opcode.AbsoluteY:
		return c.readU16(c.PC) + uint16(c.Y)
	case opcode.IndirectX:
		base := c.read(c.PC)
		ptr := base + c.X
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr + 1)))
		return hi<<8 | lo
	case opcode.IndirectY:
		base := c.read(c.PC)
		lo := uint16(c.read(uint16(base)))
		hi := uint16(c.read(uint16(base + 1)))
		deref := hi<<8 | lo
		return deref + uint16(c.Y)
	default:
		panic("cpu: operandAddress called with a mode that has no memory operand: " + mode.String())
	}
}

// operand reads the byte at the operand's effective address.
func (c *CPU) operand(mode opcode.AddressingMode) uint8 {
	return c.read(c.operandAddress(mode))
}

// jumpIndirectTarget resolves JMP ($nnnn), reproducing the documented
// 6502 page-boundary bug: if the pointer sits at the end of a page, the
// high byte is fetched from the start of the *same* page, not the next.
func (c *CPU) jumpIndirectTarget() uint16 {
	ptr := c.readU16(c.PC)
	if ptr&0x00FF == 0x00FF {
		lo := c.read(ptr)
		hi := c.read(ptr & 0xFF00)
		return uint16(hi)<<8 | uint16(lo)
	}
	return c.readU16(ptr)
}
