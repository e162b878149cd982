// package console provides the reference collaborators the CPU core is
// tested and demoed against: a flat RAM bus and a machine that steps
// the processor once per clock tick.
package console

// RAM implements mos6502.Memory as a flat 64 KiB address space with no
// mirroring and no mapped registers. Address arithmetic wraps at the
// 16-bit boundary, so a word read at 0xFFFF picks its high byte up
// from 0x0000.
type RAM struct {
	cells [0x10000]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) GetByte(addr uint16) uint8 {
	return r.cells[addr]
}

func (r *RAM) SetByte(addr uint16, val uint8) {
	r.cells[addr] = val
}

// GetWord returns the two bytes from memory at addr (lower byte is
// first).
func (r *RAM) GetWord(addr uint16) uint16 {
	lsb := uint16(r.GetByte(addr))
	msb := uint16(r.GetByte(addr + 1))

	return (msb << 8) | lsb
}

// SetWord stores val at addr (lower byte is first).
func (r *RAM) SetWord(addr uint16, val uint16) {
	r.SetByte(addr, uint8(val&0x00FF))
	r.SetByte(addr+1, uint8(val>>8))
}
