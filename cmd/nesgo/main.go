// Command nesgo is the host front end: it parses a ROM or raw program,
// wires up a bus and CPU, and drives them from an ebiten game loop.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/tkessler/nesgo/bus"
	"github.com/tkessler/nesgo/cpu"
)

const snakeLoadAddr = 0x0600

func main() {
	app := &cli.App{
		Name:  "nesgo",
		Usage: "run an iNES ROM or a raw 6502 program under the snake demo harness",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rom",
				Usage: "path to an iNES ROM image",
			},
			&cli.StringFlag{
				Name:  "program",
				Usage: "path to a raw binary 6502 program, loaded at $0600",
			},
			&cli.IntFlag{
				Name:  "hz",
				Usage: "CPU steps per ebiten frame",
				Value: 500,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	romPath := ctx.String("rom")
	programPath := ctx.String("program")
	if romPath == "" && programPath == "" {
		return cli.Exit("exactly one of -rom or -program is required", 1)
	}
	if romPath != "" && programPath != "" {
		return cli.Exit("-rom and -program are mutually exclusive", 1)
	}

	var b *bus.Bus
	switch {
	case romPath != "":
		data, err := os.ReadFile(romPath)
		if err != nil {
			return fmt.Errorf("reading rom: %w", err)
		}
		b, err = bus.NewFromCartridge(data)
		if err != nil {
			return fmt.Errorf("loading cartridge: %w", err)
		}
	case programPath != "":
		data, err := os.ReadFile(programPath)
		if err != nil {
			return fmt.Errorf("reading program: %w", err)
		}
		b = bus.New()
		b.LoadAndPointReset(snakeLoadAddr, data)
	}

	c := cpu.New(b)
	c.Reset()

	hz := ctx.Int("hz")
	if hz <= 0 {
		hz = 1
	}

	g := newGame(c, b, hz)

	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowTitle("nesgo")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
