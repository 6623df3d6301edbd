package bus

import (
	"github.com/tkessler/nesgo/cartridge"
	"github.com/tkessler/nesgo/mapper"
)

// NewFromCartridge parses an iNES image, resolves its mapper, and returns
// a Bus with the PRG-ROM window wired up. The reset vector is read
// through the bus from the cartridge itself, exactly as on hardware.
func NewFromCartridge(romBytes []byte) (*Bus, error) {
	cart, err := cartridge.Load(romBytes)
	if err != nil {
		return nil, err
	}
	m, err := mapper.New(cart)
	if err != nil {
		return nil, err
	}
	return NewWithMapper(m), nil
}
