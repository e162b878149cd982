// gones runs a raw 6502 program image on the emulated CPU and shows
// the classic 32x32 memory-mapped display at 0x0200, with a random
// byte at 0xFE and the last pressed key at 0xFF. It plays the role of
// the external clock driver: the CPU is stepped a cycle budget per
// video frame and paces itself off the returned cycle counts.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quixotrykd/gones/console"
)

var (
	progFile = flag.String("program", "", "Path to a raw 6502 program image to run.")
	loadAddr = flag.Uint("addr", 0x0600, "Address to load the program at.")
	speed    = flag.Uint("speed", 1000, "CPU cycles to run per video frame.")
)

const (
	displayBase = 0x0200 // one byte per pixel, 32 rows of 32
	displaySize = 32

	randAddr = 0x00FE
	keyAddr  = 0x00FF
)

// The 16-color palette of the memory-mapped display; pixel bytes are
// masked to their low nibble.
var palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF}, {0x88, 0x00, 0x00}, {0xAA, 0xFF, 0xEE},
	{0xCC, 0x44, 0xCC}, {0x00, 0xCC, 0x55}, {0x00, 0x00, 0xAA}, {0xEE, 0xEE, 0x77},
	{0xDD, 0x88, 0x55}, {0x66, 0x44, 0x00}, {0xFF, 0x77, 0x77}, {0x33, 0x33, 0x33},
	{0x77, 0x77, 0x77}, {0xAA, 0xFF, 0x66}, {0x00, 0x88, 0xFF}, {0xBB, 0xBB, 0xBB},
}

type game struct {
	mach *console.Machine
	pix  []byte
}

func (g *game) Update() error {
	g.mach.Poke(randAddr, uint8(rand.Intn(256)))
	g.pollKeys()

	budget := int(*speed)
	for budget > 0 {
		cycles, err := g.mach.Step()
		if err != nil {
			return err
		}
		if cycles == 0 {
			// Undefined opcode byte; charge the fallback as one
			// cycle so a runaway program can't stall the frame.
			cycles = 1
		}
		budget -= int(cycles)
	}

	return nil
}

// pollKeys exposes the last pressed movement key as its ASCII code,
// the convention the demo programs expect.
func (g *game) pollKeys() {
	keys := map[ebiten.Key]uint8{
		ebiten.KeyW: 'w',
		ebiten.KeyA: 'a',
		ebiten.KeyS: 's',
		ebiten.KeyD: 'd',
	}
	for key, code := range keys {
		if ebiten.IsKeyPressed(key) {
			g.mach.Poke(keyAddr, code)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	for i := 0; i < displaySize*displaySize; i++ {
		c := palette[g.mach.Peek(displayBase+uint16(i))&0x0F]
		g.pix[4*i] = c[0]
		g.pix[4*i+1] = c[1]
		g.pix[4*i+2] = c[2]
		g.pix[4*i+3] = 0xFF
	}
	screen.WritePixels(g.pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return displaySize, displaySize
}

func main() {
	flag.Parse()

	prog, err := os.ReadFile(*progFile)
	if err != nil {
		log.Fatalf("Couldn't read %q: %v", *progFile, err)
	}

	mach := console.New()
	mach.Load(uint16(*loadAddr), prog)
	mach.Reset()

	ebiten.SetWindowSize(displaySize*10, displaySize*10)
	ebiten.SetWindowTitle("gones")

	g := &game{
		mach: mach,
		pix:  make([]byte, displaySize*displaySize*4),
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("CPU stopped: %v", err)
	}
}
