// Package cpu implements the MOS 6502 CPU interpreter: fetch-decode-
// execute, addressing-mode resolution, the ALU, stack discipline, and
// control transfer. It depends only on its own Memory capability, never
// on a concrete bus implementation.
package cpu

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/tkessler/nesgo/opcode"
	"github.com/tkessler/nesgo/status"
)

const (
	stackBase    = 0x0100
	resetSP      = 0xFD
	resetVector  = 0xFFFC
	resetStatus  = status.InterruptDisable | status.Break2
)

// Memory is the bus capability the CPU needs. bus.Bus satisfies this.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// IllegalOpcodeError is returned by Step when the byte at PC has no
// entry in the opcode table.
type IllegalOpcodeError struct {
	PC   uint16
	Code uint8
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode $%02X at $%04X", e.Code, e.PC)
}

// CPU is the 6502 register file plus a reference to the bus. Only Memory
// is used for bus access; direct stack reads/writes go through it as
// well, at stackBase+SP.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       status.Flags

	mem Memory

	// halted is set by BRK or an illegal opcode; Run stops when true.
	halted bool
}

// New returns a CPU wired to mem. Callers must call Reset (or
// LoadAndPointReset on the bus, followed by Reset) before stepping.
func New(mem Memory) *CPU {
	return &CPU{mem: mem}
}

// Reset sets the power-on/reset register state and loads PC from the
// reset vector at $FFFC, per §4.9.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = resetSP
	c.P = resetStatus
	c.PC = c.readU16(resetVector)
	c.halted = false
}

// Halted reports whether the CPU has executed BRK or hit an illegal
// opcode and Run/Step should stop driving it.
func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) write(addr uint16, v uint8) {
	c.mem.Write(addr, v)
}

func (c *CPU) readU16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// Step executes exactly one instruction and returns its cycle cost (base
// cycles, plus one for a taken branch; page-crossing penalties on
// indexed addressing are not modeled, per the spec's non-goals on
// cycle-accurate timing). It is the callback-driven single-step entry
// point a host loop should call once per tick.
func (c *CPU) Step() (cycles int, err error) {
	if c.halted {
		return 0, nil
	}

	code := c.read(c.PC)
	c.PC++

	entry, ok := opcode.Lookup(code)
	if !ok {
		c.halted = true
		return 0, &IllegalOpcodeError{PC: c.PC - 1, Code: code}
	}

	pcBeforeExec := c.PC
	extra := c.dispatch(entry)

	if entry.Mnemonic == "BRK" {
		c.halted = true
	}

	if c.PC == pcBeforeExec {
		c.PC += uint16(entry.Len) - 1
	}

	return int(entry.Cycles) + extra, nil
}

// Run calls Step until the CPU halts (BRK or an illegal opcode) or the
// supplied stop function returns true. Passing a nil stop runs to
// completion.
func (c *CPU) Run(stop func() bool) error {
	for !c.halted {
		if stop != nil && stop() {
			return nil
		}
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the register file for debugging/disassembly, in the
// same spirit as a hardware monitor's register dump.
func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%s[%08b]",
		c.A, c.X, c.Y, c.SP, c.PC, c.P, c.P.Bits())
}

// DebugDump returns a full field-by-field dump of the register file and
// the pending opcode entry at PC, for use in failing-assertion output
// and interactive debugging where String's one-liner isn't enough.
func (c *CPU) DebugDump() string {
	entry, _ := opcode.Lookup(c.read(c.PC))
	return spew.Sdump(c) + spew.Sdump(entry)
}
