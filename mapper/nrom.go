package mapper

import "github.com/tkessler/nesgo/cartridge"

const prgBankSize = 0x4000

// nrom implements mapper 0: a 16 KiB PRG bank mirrored across the whole
// $8000-$FFFF window, or a 32 KiB bank filling it directly. PRG-ROM is
// read-only; PRGWrite is a no-op.
type nrom struct {
	prg []uint8
	chr []uint8
}

func newNROM(c *cartridge.Cartridge) Mapper {
	return &nrom{prg: c.PRG(), chr: c.CHR()}
}

func (m *nrom) ID() uint8     { return 0 }
func (m *nrom) Name() string  { return "NROM" }

func (m *nrom) PRGRead(addr uint16) uint8 {
	offset := int(addr - 0x8000)
	if len(m.prg) == prgBankSize {
		offset %= prgBankSize
	}
	if offset < 0 || offset >= len(m.prg) {
		return 0
	}
	return m.prg[offset]
}

func (m *nrom) PRGWrite(addr uint16, data uint8) {
	// PRG-ROM is read-only on NROM boards.
}

func (m *nrom) CHRRead(addr uint16) uint8 {
	if int(addr) >= len(m.chr) {
		return 0
	}
	return m.chr[addr]
}

func (m *nrom) CHRWrite(addr uint16, data uint8) {
	// No CHR-RAM support in this build.
}
