package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tkessler/nesgo/bus"
	"github.com/tkessler/nesgo/cpu"
)

const (
	frameStart = 0x0200
	frameEnd   = 0x05FF
	gridSize   = 32

	addrRandom  = 0x00FE
	addrKeyboard = 0x00FF

	screenWidth  = gridSize
	screenHeight = gridSize
	scale        = 10
)

// palette is the reference NES-book "snake" palette: the low nibble of a
// framebuffer byte selects one of these 16 colors.
var palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0x88, 0x88, 0x88, 0xFF}, // grey
	{0xFF, 0x00, 0x00, 0xFF}, // red
	{0x00, 0xFF, 0x00, 0xFF}, // green
	{0x00, 0x00, 0xFF, 0xFF}, // blue
	{0xFF, 0x00, 0xFF, 0xFF}, // magenta
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0xFF, 0xA5, 0x00, 0xFF}, // orange
	{0x8B, 0x45, 0x13, 0xFF}, // brown
	{0xFF, 0xC0, 0xCB, 0xFF}, // pink
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
	{0x90, 0xEE, 0x90, 0xFF}, // light green
	{0xAD, 0xD8, 0xE6, 0xFF}, // light blue
	{0xD3, 0xD3, 0xD3, 0xFF}, // light grey
	{0x80, 0x00, 0x80, 0xFF}, // purple
}

// keymap drives the reference "snake" input scheme: WASD into $00FF.
var keymap = []struct {
	key   ebiten.Key
	value uint8
}{
	{ebiten.KeyW, 0x77},
	{ebiten.KeyA, 0x61},
	{ebiten.KeyS, 0x73},
	{ebiten.KeyD, 0x64},
}

// game implements ebiten.Game, driving the CPU forward and rendering the
// framebuffer page. It owns no emulator state beyond the CPU and bus it
// was constructed with.
type game struct {
	cpu          *cpu.CPU
	bus          *bus.Bus
	stepsPerTick int
	img          *ebiten.Image
}

func newGame(c *cpu.CPU, b *bus.Bus, stepsPerTick int) *game {
	return &game{
		cpu:          c,
		bus:          b,
		stepsPerTick: stepsPerTick,
		img:          ebiten.NewImage(screenWidth, screenHeight),
	}
}

// Update injects a fresh pseudo-random byte and the last pressed
// direction key, then steps the CPU stepsPerTick times or until it
// halts.
func (g *game) Update() error {
	g.bus.Write(addrRandom, uint8(rand.Intn(256)))

	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			g.bus.Write(addrKeyboard, k.value)
			break
		}
	}

	for i := 0; i < g.stepsPerTick; i++ {
		if g.cpu.Halted() {
			break
		}
		if _, err := g.cpu.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the $0200-$05FF framebuffer page as a 32x32 grid, one
// pixel per byte, colored via palette.
func (g *game) Draw(screen *ebiten.Image) {
	for addr := frameStart; addr <= frameEnd; addr++ {
		offset := addr - frameStart
		x := offset % gridSize
		y := offset / gridSize
		v := g.bus.Read(uint16(addr))
		g.img.Set(x, y, palette[v&0x0F])
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.img, op)
}

// Layout pins the logical screen at the framebuffer's resolution times
// scale; Draw fills it by scaling the 32x32 image with its GeoM.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * scale, screenHeight * scale
}
