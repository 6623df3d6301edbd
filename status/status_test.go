package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertRemoveContains(t *testing.T) {
	var f Flags

	f = f.Insert(Carry | Zero)
	assert.True(t, f.Contains(Carry))
	assert.True(t, f.Contains(Zero))
	assert.False(t, f.Contains(Negative))

	f = f.Remove(Carry)
	assert.False(t, f.Contains(Carry))
	assert.True(t, f.Contains(Zero))
}

func TestSet(t *testing.T) {
	var f Flags

	f = f.Set(Negative, true)
	assert.True(t, f.Contains(Negative))

	f = f.Set(Negative, false)
	assert.False(t, f.Contains(Negative))
}

func TestFromBitsRoundTrip(t *testing.T) {
	f := FromBits(0b1010_0101)
	assert.Equal(t, uint8(0b1010_0101), f.Bits())
	assert.True(t, f.Contains(Negative))
	assert.True(t, f.Contains(Break2))
	assert.False(t, f.Contains(Break))
}

func TestCloneIsIndependent(t *testing.T) {
	f := Carry | Zero
	g := f.Clone()
	g = g.Insert(Negative)

	assert.False(t, f.Contains(Negative))
	assert.True(t, g.Contains(Negative))
}

func TestStringDots(t *testing.T) {
	f := Carry | Negative
	assert.Equal(t, "N......C", f.String())
}
