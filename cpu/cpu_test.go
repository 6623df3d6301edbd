package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkessler/nesgo/bus"
	"github.com/tkessler/nesgo/cpu"
	"github.com/tkessler/nesgo/status"
)

// loadAddr is the conventional load address used by the reference "snake"
// demo: low enough to sit in plain (unmirrored) RAM, so tests need no
// cartridge mapper attached.
const loadAddr = 0x0600

// loaded wires program into RAM starting at loadAddr and points the reset
// vector at it, mirroring the fixture style of the teacher's memory tests.
func loaded(t *testing.T, program ...uint8) (*cpu.CPU, *bus.Bus) {
	t.Helper()
	b := bus.New()
	b.LoadAndPointReset(loadAddr, program)
	c := cpu.New(b)
	c.Reset()
	return c, b
}

func runAll(c *cpu.CPU) {
	for !c.Halted() {
		if _, err := c.Step(); err != nil {
			return
		}
	}
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x00, 0x00)
	runAll(c)
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.P.Contains(status.Zero))
}

func TestLDAImmediateSetsNegativeFlag(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x80, 0x00)
	runAll(c)
	assert.True(t, c.P.Contains(status.Negative))
}

func TestTAXTransfersAccumulator(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x0A, 0xAA, 0x00)
	runAll(c)
	assert.Equal(t, uint8(0x0A), c.X)
}

func TestFiveOpsWorkingTogether(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0xC0, 0xAA, 0xE8, 0x00)
	runAll(c)
	assert.Equal(t, uint8(0xC1), c.X)
}

func TestINXOverflowsToZero(t *testing.T) {
	c, _ := loaded(t, 0xE8, 0xE8, 0x00)
	c.X = 0xFF
	runAll(c)
	assert.Equal(t, uint8(1), c.X)
}

func TestLDAFromZeroPage(t *testing.T) {
	c, b := loaded(t, 0xA5, 0x10, 0x00)
	b.Write(0x10, 0x55)
	runAll(c)
	assert.Equal(t, uint8(0x55), c.A)
}

func TestSTAWritesAccumulatorToMemory(t *testing.T) {
	c, b := loaded(t, 0xA9, 0x42, 0x85, 0x20, 0x00)
	runAll(c)
	assert.Equal(t, uint8(0x42), b.Read(0x20))
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	// JSR $0604 ; BRK ; (subroutine at $0604:) INX ; RTS
	c, _ := loaded(t, 0x20, 0x04, 0x06, 0x00, 0xE8, 0x60)
	startPC := c.PC
	require.Equal(t, uint16(loadAddr), startPC)

	// JSR
	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0604), c.PC)

	// INX at the subroutine
	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), c.X)

	// RTS returns to the byte right after JSR's 3-byte encoding
	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0603), c.PC)
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	b := bus.New()
	// data at the program's bank, but the pointer itself sits at $03FF.
	b.LoadAt(loadAddr, []uint8{0x6C, 0xFF, 0x03})
	b.Write(0x03FF, 0x40)
	b.Write(0x0300, 0x06) // wraps to the start of the SAME page, not $0400
	b.Write(0x0400, 0x01) // if the bug were absent, target would be $0140
	b.WriteU16(0xFFFC, loadAddr)

	c := cpu.New(b)
	c.Reset()
	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0640), c.PC)
}

func TestSBCIsAdcOfOnesComplement(t *testing.T) {
	c, _ := loaded(t, 0x38, 0xA9, 0x05, 0xE9, 0x03, 0x00) // SEC; LDA #5; SBC #3
	runAll(c)
	assert.Equal(t, uint8(2), c.A)
	assert.True(t, c.P.Contains(status.Carry))
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x7F, 0x69, 0x01, 0x00) // LDA #$7F; ADC #$01
	runAll(c)
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.P.Contains(status.Overflow))
	assert.True(t, c.P.Contains(status.Negative))
	assert.False(t, c.P.Contains(status.Carry))
}

func TestBranchTakenAddsExtraCycle(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x00, 0xF0, 0x02, 0xA9, 0x01, 0x00) // LDA #0; BEQ +2; LDA #1
	_, err := c.Step() // LDA #0
	require.NoError(t, err)
	cycles, err := c.Step() // BEQ, taken
	require.NoError(t, err)
	assert.Equal(t, 3, cycles) // base 2 + 1 taken
	assert.Equal(t, uint16(loadAddr+6), c.PC)
}

func TestBranchNotTakenAdvancesPastOperand(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x01, 0xF0, 0x02, 0xA9, 0x02, 0x00) // LDA #1; BEQ +2; LDA #2
	_, err := c.Step()
	require.NoError(t, err)
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint16(loadAddr+4), c.PC)
}

func TestRAMMirroringIsVisibleThroughTheCPU(t *testing.T) {
	c, b := loaded(t, 0xA5, 0x00, 0x00)
	b.Write(0x0800, 0x99) // mirrors $0000
	runAll(c)
	assert.Equal(t, uint8(0x99), c.A)
}

func TestIllegalOpcodeHaltsAndReturnsError(t *testing.T) {
	c, _ := loaded(t, 0x02) // unused opcode byte
	_, err := c.Step()
	require.Error(t, err, "dump at failure:\n%s", c.DebugDump())
	var illegal *cpu.IllegalOpcodeError
	require.ErrorAs(t, err, &illegal)
	assert.True(t, c.Halted())
}

func TestPHPSetsBreakBitsInPushedCopyOnly(t *testing.T) {
	c, b := loaded(t, 0x08, 0x00) // PHP
	startSP := c.SP
	runAll(c)
	pushed := b.Read(0x0100 + uint16(startSP))
	assert.NotZero(t, pushed&uint8(status.Break))
	assert.NotZero(t, pushed&uint8(status.Break2))
	assert.False(t, c.P.Contains(status.Break))
}

func TestPLAPopsWhatPHAPushed(t *testing.T) {
	c, _ := loaded(t, 0xA9, 0x33, 0x48, 0xA9, 0x00, 0x68, 0x00) // LDA #$33; PHA; LDA #0; PLA
	runAll(c)
	assert.Equal(t, uint8(0x33), c.A)
}
