package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownOpcode(t *testing.T) {
	e, ok := Lookup(0xA9)
	assert.True(t, ok)
	assert.Equal(t, "LDA", e.Mnemonic)
	assert.Equal(t, Immediate, e.Mode)
	assert.Equal(t, uint8(2), e.Len)
}

func TestLookupUnknownOpcode(t *testing.T) {
	// 0x02 is not a documented opcode in this build.
	_, ok := Lookup(0x02)
	assert.False(t, ok)
}

func TestTableHasNoDuplicateGaps(t *testing.T) {
	known := 0
	for code := 0; code < 256; code++ {
		if Table[code].Mnemonic != "" {
			known++
			assert.Equal(t, uint8(code), Table[code].Code, "code %02x", code)
			assert.Contains(t, []uint8{1, 2, 3}, Table[code].Len, "code %02x", code)
		}
	}
	// The documented 6502 instruction set has 151 opcodes.
	assert.Equal(t, 151, known)
}

func TestBRKIsImplied(t *testing.T) {
	e, ok := Lookup(0x00)
	assert.True(t, ok)
	assert.Equal(t, "BRK", e.Mnemonic)
	assert.Equal(t, Implied, e.Mode)
}
