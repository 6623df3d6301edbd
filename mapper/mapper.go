// Package mapper implements cartridge-side address translation. This
// build registers only mapper 0 (NROM); the registry shape mirrors a
// full multi-mapper emulator so a new mapper is a pure addition, never a
// rewrite of the dispatch.
package mapper

import (
	"fmt"

	"github.com/tkessler/nesgo/cartridge"
)

// Mapper translates CPU/PPU addresses into a cartridge's PRG/CHR banks.
type Mapper interface {
	ID() uint8
	Name() string
	PRGRead(addr uint16) uint8
	PRGWrite(addr uint16, data uint8)
	CHRRead(addr uint16) uint8
	CHRWrite(addr uint16, data uint8)
}

// Factory constructs a Mapper bound to a specific cartridge.
type Factory func(c *cartridge.Cartridge) Mapper

var registry = map[uint8]Factory{}

// Register adds a mapper factory under id. Panics on a duplicate
// registration, since that can only be a programming error.
func Register(id uint8, f Factory) {
	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = f
}

// UnsupportedMapperError reports a cartridge whose mapper id has no
// registered implementation.
type UnsupportedMapperError struct {
	ID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("mapper: unsupported mapper id %d", e.ID)
}

// New constructs the mapper registered for c's mapper id.
func New(c *cartridge.Cartridge) (Mapper, error) {
	f, ok := registry[c.MapperID()]
	if !ok {
		return nil, &UnsupportedMapperError{ID: c.MapperID()}
	}
	return f(c), nil
}

func init() {
	Register(0, newNROM)
}
