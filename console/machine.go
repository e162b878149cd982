package console

import (
	"github.com/quixotrykd/gones/mos6502"
)

// Machine owns a CPU and its RAM as one unit. It stands in for the
// external clock driver: callers load a program, hit Reset, and then
// call Step once per tick, pacing themselves with the returned cycle
// counts.
type Machine struct {
	cpu *mos6502.CPU
	ram *RAM
}

func New() *Machine {
	ram := NewRAM()
	return &Machine{
		cpu: mos6502.New(ram),
		ram: ram,
	}
}

// Load copies a raw program image into memory at addr and plants the
// reset vector so the next Reset starts executing there.
func (m *Machine) Load(addr uint16, prog []uint8) {
	for i, b := range prog {
		m.ram.SetByte(addr+uint16(i), b)
	}
	m.ram.SetWord(mos6502.RESET_VECTOR, addr)
}

// Reset hits the reset line: the CPU reloads its program counter from
// the reset vector.
func (m *Machine) Reset() {
	m.cpu.Reset()
}

// Step runs exactly one instruction and reports its cycle charge.
func (m *Machine) Step() (uint8, error) {
	return m.cpu.Step()
}

// Peek reads a byte off the bus without involving the CPU. Front-ends
// use it to scrape framebuffer-style memory regions.
func (m *Machine) Peek(addr uint16) uint8 {
	return m.ram.GetByte(addr)
}

// Poke writes a byte onto the bus behind the CPU's back, the hook for
// input-style memory-mapped values.
func (m *Machine) Poke(addr uint16, val uint8) {
	m.ram.SetByte(addr, val)
}

// CPUState renders the register file for debug display.
func (m *Machine) CPUState() string {
	return m.cpu.String()
}
