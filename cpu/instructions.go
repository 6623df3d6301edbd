package cpu

import (
	"fmt"

	"github.com/tkessler/nesgo/opcode"
	"github.com/tkessler/nesgo/status"
)

// handler implements one mnemonic. It returns the number of cycles to
// add on top of the opcode table's base cycle count (only branches use
// this, for a taken branch).
type handler func(c *CPU, mode opcode.AddressingMode) int

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"ADC": (*CPU).execADC,
		"AND": (*CPU).execAND,
		"ASL": (*CPU).execASL,
		"BCC": (*CPU).execBCC,
		"BCS": (*CPU).execBCS,
		"BEQ": (*CPU).execBEQ,
		"BIT": (*CPU).execBIT,
		"BMI": (*CPU).execBMI,
		"BNE": (*CPU).execBNE,
		"BPL": (*CPU).execBPL,
		"BRK": (*CPU).execBRK,
		"BVC": (*CPU).execBVC,
		"BVS": (*CPU).execBVS,
		"CLC": (*CPU).execCLC,
		"CLD": (*CPU).execCLD,
		"CLI": (*CPU).execCLI,
		"CLV": (*CPU).execCLV,
		"CMP": (*CPU).execCMP,
		"CPX": (*CPU).execCPX,
		"CPY": (*CPU).execCPY,
		"DEC": (*CPU).execDEC,
		"DEX": (*CPU).execDEX,
		"DEY": (*CPU).execDEY,
		"EOR": (*CPU).execEOR,
		"INC": (*CPU).execINC,
		"INX": (*CPU).execINX,
		"INY": (*CPU).execINY,
		"JMP": (*CPU).execJMP,
		"JSR": (*CPU).execJSR,
		"LDA": (*CPU).execLDA,
		"LDX": (*CPU).execLDX,
		"LDY": (*CPU).execLDY,
		"LSR": (*CPU).execLSR,
		"NOP": (*CPU).execNOP,
		"ORA": (*CPU).execORA,
		"PHA": (*CPU).execPHA,
		"PHP": (*CPU).execPHP,
		"PLA": (*CPU).execPLA,
		"PLP": (*CPU).execPLP,
		"ROL": (*CPU).execROL,
		"ROR": (*CPU).execROR,
		"RTI": (*CPU).execRTI,
		"RTS": (*CPU).execRTS,
		"SBC": (*CPU).execSBC,
		"SEC": (*CPU).execSEC,
		"SED": (*CPU).execSED,
		"SEI": (*CPU).execSEI,
		"STA": (*CPU).execSTA,
		"STX": (*CPU).execSTX,
		"STY": (*CPU).execSTY,
		"TAX": (*CPU).execTAX,
		"TAY": (*CPU).execTAY,
		"TSX": (*CPU).execTSX,
		"TXA": (*CPU).execTXA,
		"TXS": (*CPU).execTXS,
		"TYA": (*CPU).execTYA,
	}
}

// dispatch looks up and invokes the handler for entry.Mnemonic, returning
// any extra cycles (branch-taken penalty).
func (c *CPU) dispatch(entry opcode.Entry) int {
	h, ok := handlers[entry.Mnemonic]
	if !ok {
		panic(fmt.Sprintf("cpu: opcode table names unimplemented mnemonic %q", entry.Mnemonic))
	}
	return h(c, entry.Mode)
}

func (c *CPU) execADC(mode opcode.AddressingMode) int {
	c.addToA(c.operand(mode))
	return 0
}

func (c *CPU) execAND(mode opcode.AddressingMode) int {
	c.A &= c.operand(mode)
	c.updateZeroAndNegative(c.A)
	return 0
}

func (c *CPU) execASL(mode opcode.AddressingMode) int {
	if mode == opcode.Accumulator {
		c.A = c.shiftLeft(c.A)
		return 0
	}
	addr := c.operandAddress(mode)
	c.write(addr, c.shiftLeft(c.read(addr)))
	return 0
}

// branch implements the shared logic of all eight conditional branches:
// PC advances past the operand either way, and a taken branch adds PC to
// the signed 8-bit displacement found there.
func (c *CPU) branch(take bool) int {
	offset := int8(c.read(c.PC))
	if !take {
		return 0
	}
	c.PC = uint16(int32(c.PC) + 1 + int32(offset))
	return 1
}

func (c *CPU) execBCC(opcode.AddressingMode) int { return c.branch(!c.P.Contains(status.Carry)) }
func (c *CPU) execBCS(opcode.AddressingMode) int { return c.branch(c.P.Contains(status.Carry)) }
func (c *CPU) execBEQ(opcode.AddressingMode) int { return c.branch(c.P.Contains(status.Zero)) }
func (c *CPU) execBNE(opcode.AddressingMode) int { return c.branch(!c.P.Contains(status.Zero)) }
func (c *CPU) execBMI(opcode.AddressingMode) int { return c.branch(c.P.Contains(status.Negative)) }
func (c *CPU) execBPL(opcode.AddressingMode) int { return c.branch(!c.P.Contains(status.Negative)) }
func (c *CPU) execBVC(opcode.AddressingMode) int { return c.branch(!c.P.Contains(status.Overflow)) }
func (c *CPU) execBVS(opcode.AddressingMode) int { return c.branch(c.P.Contains(status.Overflow)) }

func (c *CPU) execBIT(mode opcode.AddressingMode) int {
	c.bitTest(c.operand(mode))
	return 0
}

// execBRK signals program termination to the host; see §4.7. CPU.Step
// marks the CPU halted based on the mnemonic, so this is a no-op by
// design (the simplified core does not implement the full push-PC/push-P/
// vector-through-$FFFE sequence).
func (c *CPU) execBRK(opcode.AddressingMode) int {
	return 0
}

func (c *CPU) execCLC(opcode.AddressingMode) int { c.P = c.P.Remove(status.Carry); return 0 }
func (c *CPU) execCLD(opcode.AddressingMode) int { c.P = c.P.Remove(status.Decimal); return 0 }
func (c *CPU) execCLI(opcode.AddressingMode) int { c.P = c.P.Remove(status.InterruptDisable); return 0 }
func (c *CPU) execCLV(opcode.AddressingMode) int { c.P = c.P.Remove(status.Overflow); return 0 }

func (c *CPU) execCMP(mode opcode.AddressingMode) int { c.compare(c.A, c.operand(mode)); return 0 }
func (c *CPU) execCPX(mode opcode.AddressingMode) int { c.compare(c.X, c.operand(mode)); return 0 }
func (c *CPU) execCPY(mode opcode.AddressingMode) int { c.compare(c.Y, c.operand(mode)); return 0 }

func (c *CPU) execDEC(mode opcode.AddressingMode) int {
	addr := c.operandAddress(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.updateZeroAndNegative(v)
	return 0
}

func (c *CPU) execDEX(opcode.AddressingMode) int {
	c.X--
	c.updateZeroAndNegative(c.X)
	return 0
}

func (c *CPU) execDEY(opcode.AddressingMode) int {
	c.Y--
	c.updateZeroAndNegative(c.Y)
	return 0
}

func (c *CPU) execEOR(mode opcode.AddressingMode) int {
	c.A ^= c.operand(mode)
	c.updateZeroAndNegative(c.A)
	return 0
}

func (c *CPU) execINC(mode opcode.AddressingMode) int {
	addr := c.operandAddress(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.updateZeroAndNegative(v)
	return 0
}

func (c *CPU) execINX(opcode.AddressingMode) int {
	c.X++
	c.updateZeroAndNegative(c.X)
	return 0
}

func (c *CPU) execINY(opcode.AddressingMode) int {
	c.Y++
	c.updateZeroAndNegative(c.Y)
	return 0
}

func (c *CPU) execJMP(mode opcode.AddressingMode) int {
	if mode == opcode.Indirect {
		c.PC = c.jumpIndirectTarget()
		return 0
	}
	c.PC = c.readU16(c.PC)
	return 0
}

// execJSR pushes the address of the last byte of the JSR instruction
// (PC+2-1, since PC currently points at the low byte of the target
// address) and jumps to the absolute target.
func (c *CPU) execJSR(opcode.AddressingMode) int {
	target := c.readU16(c.PC)
	c.pushU16(c.PC + 1)
	c.PC = target
	return 0
}

func (c *CPU) execLDA(mode opcode.AddressingMode) int {
	c.A = c.operand(mode)
	c.updateZeroAndNegative(c.A)
	return 0
}

func (c *CPU) execLDX(mode opcode.AddressingMode) int {
	c.X = c.operand(mode)
	c.updateZeroAndNegative(c.X)
	return 0
}

func (c *CPU) execLDY(mode opcode.AddressingMode) int {
	c.Y = c.operand(mode)
	c.updateZeroAndNegative(c.Y)
	return 0
}

func (c *CPU) execLSR(mode opcode.AddressingMode) int {
	if mode == opcode.Accumulator {
		c.A = c.shiftRight(c.A)
		return 0
	}
	addr := c.operandAddress(mode)
	c.write(addr, c.shiftRight(c.read(addr)))
	return 0
}

func (c *CPU) execNOP(opcode.AddressingMode) int { return 0 }

func (c *CPU) execORA(mode opcode.AddressingMode) int {
	c.A |= c.operand(mode)
	c.updateZeroAndNegative(c.A)
	return 0
}

func (c *CPU) execPHA(opcode.AddressingMode) int { c.push(c.A); return 0 }

// execPHP always sets Break and Break2 in the pushed copy, per the
// documented 6502 behavior; the live P register is untouched.
func (c *CPU) execPHP(opcode.AddressingMode) int {
	c.push(c.P.Insert(status.Break | status.Break2).Bits())
	return 0
}

func (c *CPU) execPLA(opcode.AddressingMode) int {
	c.A = c.pop()
	c.updateZeroAndNegative(c.A)
	return 0
}

// execPLP pops into P, then clears Break and sets Break2, per the
// documented 6502 behavior.
func (c *CPU) execPLP(opcode.AddressingMode) int {
	c.P = status.FromBits(c.pop()).Remove(status.Break).Insert(status.Break2)
	return 0
}

func (c *CPU) execROL(mode opcode.AddressingMode) int {
	if mode == opcode.Accumulator {
		c.A = c.rotateLeft(c.A)
		return 0
	}
	addr := c.operandAddress(mode)
	c.write(addr, c.rotateLeft(c.read(addr)))
	return 0
}

func (c *CPU) execROR(mode opcode.AddressingMode) int {
	if mode == opcode.Accumulator {
		c.A = c.rotateRight(c.A)
		return 0
	}
	addr := c.operandAddress(mode)
	c.write(addr, c.rotateRight(c.read(addr)))
	return 0
}

func (c *CPU) execRTI(opcode.AddressingMode) int {
	c.P = status.FromBits(c.pop()).Remove(status.Break).Insert(status.Break2)
	c.PC = c.popU16()
	return 0
}

func (c *CPU) execRTS(opcode.AddressingMode) int {
	c.PC = c.popU16() + 1
	return 0
}

func (c *CPU) execSBC(mode opcode.AddressingMode) int {
	c.subtractFromA(c.operand(mode))
	return 0
}

func (c *CPU) execSEC(opcode.AddressingMode) int { c.P = c.P.Insert(status.Carry); return 0 }
func (c *CPU) execSED(opcode.AddressingMode) int { c.P = c.P.Insert(status.Decimal); return 0 }
func (c *CPU) execSEI(opcode.AddressingMode) int {
	c.P = c.P.Insert(status.InterruptDisable)
	return 0
}

func (c *CPU) execSTA(mode opcode.AddressingMode) int {
	c.write(c.operandAddress(mode), c.A)
	return 0
}

func (c *CPU) execSTX(mode opcode.AddressingMode) int {
	c.write(c.operandAddress(mode), c.X)
	return 0
}

func (c *CPU) execSTY(mode opcode.AddressingMode) int {
	c.write(c.operandAddress(mode), c.Y)
	return 0
}

func (c *CPU) execTAX(opcode.AddressingMode) int {
	c.X = c.A
	c.updateZeroAndNegative(c.X)
	return 0
}

func (c *CPU) execTAY(opcode.AddressingMode) int {
	c.Y = c.A
	c.updateZeroAndNegative(c.Y)
	return 0
}

func (c *CPU) execTSX(opcode.AddressingMode) int {
	c.X = c.SP
	c.updateZeroAndNegative(c.X)
	return 0
}

func (c *CPU) execTXA(opcode.AddressingMode) int {
	c.A = c.X
	c.updateZeroAndNegative(c.A)
	return 0
}

func (c *CPU) execTXS(opcode.AddressingMode) int {
	c.SP = c.X
	return 0
}

func (c *CPU) execTYA(opcode.AddressingMode) int {
	c.A = c.Y
	c.updateZeroAndNegative(c.A)
	return 0
}
