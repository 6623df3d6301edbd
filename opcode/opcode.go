// Package opcode provides the static 6502 opcode table: for every opcode
// byte, its mnemonic, instruction length in bytes, base cycle count, and
// addressing mode.
package opcode

import "fmt"

// AddressingMode tells the CPU where to find an instruction's operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

var modeNames = [...]string{
	Implied:     "Implied",
	Accumulator: "Accumulator",
	Immediate:   "Immediate",
	ZeroPage:    "ZeroPage",
	ZeroPageX:   "ZeroPageX",
	ZeroPageY:   "ZeroPageY",
	Relative:    "Relative",
	Absolute:    "Absolute",
	AbsoluteX:   "AbsoluteX",
	AbsoluteY:   "AbsoluteY",
	Indirect:    "Indirect",
	IndirectX:   "IndirectX",
	IndirectY:   "IndirectY",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("AddressingMode(%d)", int(m))
}

// Entry describes one opcode: its mnemonic, total instruction length
// (opcode byte included), base cycle count (the CPU adds the taken-branch
// cycle; page-crossing penalties are not modeled), and addressing mode.
type Entry struct {
	Code     uint8
	Mnemonic string
	Len      uint8
	Cycles   uint8
	Mode     AddressingMode
}

func (e Entry) String() string {
	return fmt.Sprintf("{%s, %s}", e.Mnemonic, e.Mode)
}

// Table is the dense opcode lookup, indexed by opcode byte. Entries with
// an empty Mnemonic are unassigned/illegal in this build.
var Table [256]Entry

func define(code uint8, mnemonic string, mode AddressingMode, length, cycles uint8) {
	if Table[code].Mnemonic != "" {
		panic(fmt.Sprintf("opcode 0x%02X already defined as %s", code, Table[code].Mnemonic))
	}
	Table[code] = Entry{Code: code, Mnemonic: mnemonic, Len: length, Cycles: cycles, Mode: mode}
}

// Lookup returns the table entry for code and whether it is a known
// (assigned) opcode.
func Lookup(code uint8) (Entry, bool) {
	e := Table[code]
	return e, e.Mnemonic != ""
}

func init() {
	define(0x69, "ADC", Immediate, 2, 2)
	define(0x65, "ADC", ZeroPage, 2, 3)
	define(0x75, "ADC", ZeroPageX, 2, 4)
	define(0x6D, "ADC", Absolute, 3, 4)
	define(0x7D, "ADC", AbsoluteX, 3, 4)
	define(0x79, "ADC", AbsoluteY, 3, 4)
	define(0x61, "ADC", IndirectX, 2, 6)
	define(0x71, "ADC", IndirectY, 2, 5)

	define(0x29, "AND", Immediate, 2, 2)
	define(0x25, "AND", ZeroPage, 2, 3)
	define(0x35, "AND", ZeroPageX, 2, 4)
	define(0x2D, "AND", Absolute, 3, 4)
	define(0x3D, "AND", AbsoluteX, 3, 4)
	define(0x39, "AND", AbsoluteY, 3, 4)
	define(0x21, "AND", IndirectX, 2, 6)
	define(0x31, "AND", IndirectY, 2, 5)

	define(0x0A, "ASL", Accumulator, 1, 2)
	define(0x06, "ASL", ZeroPage, 2, 5)
	define(0x16, "ASL", ZeroPageX, 2, 6)
	define(0x0E, "ASL", Absolute, 3, 6)
	define(0x1E, "ASL", AbsoluteX, 3, 7)

	define(0x90, "BCC", Relative, 2, 2)
	define(0xB0, "BCS", Relative, 2, 2)
	define(0xF0, "BEQ", Relative, 2, 2)
	define(0x24, "BIT", ZeroPage, 2, 3)
	define(0x2C, "BIT", Absolute, 3, 4)
	define(0x30, "BMI", Relative, 2, 2)
	define(0xD0, "BNE", Relative, 2, 2)
	define(0x10, "BPL", Relative, 2, 2)
	define(0x00, "BRK", Implied, 1, 7)
	define(0x50, "BVC", Relative, 2, 2)
	define(0x70, "BVS", Relative, 2, 2)

	define(0x18, "CLC", Implied, 1, 2)
	define(0xD8, "CLD", Implied, 1, 2)
	define(0x58, "CLI", Implied, 1, 2)
	define(0xB8, "CLV", Implied, 1, 2)

	define(0xC9, "CMP", Immediate, 2, 2)
	define(0xC5, "CMP", ZeroPage, 2, 3)
	define(0xD5, "CMP", ZeroPageX, 2, 4)
	define(0xCD, "CMP", Absolute, 3, 4)
	define(0xDD, "CMP", AbsoluteX, 3, 4)
	define(0xD9, "CMP", AbsoluteY, 3, 4)
	define(0xC1, "CMP", IndirectX, 2, 6)
	define(0xD1, "CMP", IndirectY, 2, 5)

	define(0xE0, "CPX", Immediate, 2, 2)
	define(0xE4, "CPX", ZeroPage, 2, 3)
	define(0xEC, "CPX", Absolute, 3, 4)

	define(0xC0, "CPY", Immediate, 2, 2)
	define(0xC4, "CPY", ZeroPage, 2, 3)
	define(0xCC, "CPY", Absolute, 3, 4)

	define(0xC6, "DEC", ZeroPage, 2, 5)
	define(0xD6, "DEC", ZeroPageX, 2, 6)
	define(0xCE, "DEC", Absolute, 3, 6)
	define(0xDE, "DEC", AbsoluteX, 3, 7)
	define(0xCA, "DEX", Implied, 1, 2)
	define(0x88, "DEY", Implied, 1, 2)

	define(0x49, "EOR", Immediate, 2, 2)
	define(0x45, "EOR", ZeroPage, 2, 3)
	define(0x55, "EOR", ZeroPageX, 2, 4)
	define(0x4D, "EOR", Absolute, 3, 4)
	define(0x5D, "EOR", AbsoluteX, 3, 4)
	define(0x59, "EOR", AbsoluteY, 3, 4)
	define(0x41, "EOR", IndirectX, 2, 6)
	define(0x51, "EOR", IndirectY, 2, 5)

	define(0xE6, "INC", ZeroPage, 2, 5)
	define(0xF6, "INC", ZeroPageX, 2, 6)
	define(0xEE, "INC", Absolute, 3, 6)
	define(0xFE, "INC", AbsoluteX, 3, 7)
	define(0xE8, "INX", Implied, 1, 2)
	define(0xC8, "INY", Implied, 1, 2)

	define(0x4C, "JMP", Absolute, 3, 3)
	define(0x6C, "JMP", Indirect, 3, 5)
	define(0x20, "JSR", Absolute, 3, 6)

	define(0xA9, "LDA", Immediate, 2, 2)
	define(0xA5, "LDA", ZeroPage, 2, 3)
	define(0xB5, "LDA", ZeroPageX, 2, 4)
	define(0xAD, "LDA", Absolute, 3, 4)
	define(0xBD, "LDA", AbsoluteX, 3, 4)
	define(0xB9, "LDA", AbsoluteY, 3, 4)
	define(0xA1, "LDA", IndirectX, 2, 6)
	define(0xB1, "LDA", IndirectY, 2, 5)

	define(0xA2, "LDX", Immediate, 2, 2)
	define(0xA6, "LDX", ZeroPage, 2, 3)
	define(0xB6, "LDX", ZeroPageY, 2, 4)
	define(0xAE, "LDX", Absolute, 3, 4)
	define(0xBE, "LDX", AbsoluteY, 3, 4)

	define(0xA0, "LDY", Immediate, 2, 2)
	define(0xA4, "LDY", ZeroPage, 2, 3)
	define(0xB4, "LDY", ZeroPageX, 2, 4)
	define(0xAC, "LDY", Absolute, 3, 4)
	define(0xBC, "LDY", AbsoluteX, 3, 4)

	define(0x4A, "LSR", Accumulator, 1, 2)
	define(0x46, "LSR", ZeroPage, 2, 5)
	define(0x56, "LSR", ZeroPageX, 2, 6)
	define(0x4E, "LSR", Absolute, 3, 6)
	define(0x5E, "LSR", AbsoluteX, 3, 7)

	define(0xEA, "NOP", Implied, 1, 2)

	define(0x09, "ORA", Immediate, 2, 2)
	define(0x05, "ORA", ZeroPage, 2, 3)
	define(0x15, "ORA", ZeroPageX, 2, 4)
	define(0x0D, "ORA", Absolute, 3, 4)
	define(0x1D, "ORA", AbsoluteX, 3, 4)
	define(0x19, "ORA", AbsoluteY, 3, 4)
	define(0x01, "ORA", IndirectX, 2, 6)
	define(0x11, "ORA", IndirectY, 2, 5)

	define(0x48, "PHA", Implied, 1, 3)
	define(0x08, "PHP", Implied, 1, 3)
	define(0x68, "PLA", Implied, 1, 4)
	define(0x28, "PLP", Implied, 1, 4)

	define(0x2A, "ROL", Accumulator, 1, 2)
	define(0x26, "ROL", ZeroPage, 2, 5)
	define(0x36, "ROL", ZeroPageX, 2, 6)
	define(0x2E, "ROL", Absolute, 3, 6)
	define(0x3E, "ROL", AbsoluteX, 3, 7)

	define(0x6A, "ROR", Accumulator, 1, 2)
	define(0x66, "ROR", ZeroPage, 2, 5)
	define(0x76, "ROR", ZeroPageX, 2, 6)
	define(0x6E, "ROR", Absolute, 3, 6)
	define(0x7E, "ROR", AbsoluteX, 3, 7)

	define(0x40, "RTI", Implied, 1, 6)
	define(0x60, "RTS", Implied, 1, 6)

	define(0xE9, "SBC", Immediate, 2, 2)
	define(0xE5, "SBC", ZeroPage, 2, 3)
	define(0xF5, "SBC", ZeroPageX, 2, 4)
	define(0xED, "SBC", Absolute, 3, 4)
	define(0xFD, "SBC", AbsoluteX, 3, 4)
	define(0xF9, "SBC", AbsoluteY, 3, 4)
	define(0xE1, "SBC", IndirectX, 2, 6)
	define(0xF1, "SBC", IndirectY, 2, 5)

	define(0x38, "SEC", Implied, 1, 2)
	define(0xF8, "SED", Implied, 1, 2)
	define(0x78, "SEI", Implied, 1, 2)

	define(0x85, "STA", ZeroPage, 2, 3)
	define(0x95, "STA", ZeroPageX, 2, 4)
	define(0x8D, "STA", Absolute, 3, 4)
	define(0x9D, "STA", AbsoluteX, 3, 5)
	define(0x99, "STA", AbsoluteY, 3, 5)
	define(0x81, "STA", IndirectX, 2, 6)
	define(0x91, "STA", IndirectY, 2, 6)

	define(0x86, "STX", ZeroPage, 2, 3)
	define(0x96, "STX", ZeroPageY, 2, 4)
	define(0x8E, "STX", Absolute, 3, 4)

	define(0x84, "STY", ZeroPage, 2, 3)
	define(0x94, "STY", ZeroPageX, 2, 4)
	define(0x8C, "STY", Absolute, 3, 4)

	define(0xAA, "TAX", Implied, 1, 2)
	define(0xA8, "TAY", Implied, 1, 2)
	define(0xBA, "TSX", Implied, 1, 2)
	define(0x8A, "TXA", Implied, 1, 2)
	define(0x9A, "TXS", Implied, 1, 2)
	define(0x98, "TYA", Implied, 1, 2)
}
