// package mos6502 implements the MOS Technologies 6502 processor as
// used in the NES. Decimal mode is carried as a flag but never applied
// to arithmetic; the console's 2A03 variant has it disabled.
package mos6502

import (
	"errors"
	"fmt"
)

// Memory is the bus seam the CPU drives. Words are little-endian: the
// low byte lives at addr, the high byte at addr+1. The CPU is the sole
// accessor for the duration of a fetch/execute pair and re-reads and
// re-writes every resolved address on demand, so memory-mapped
// registers see each access exactly once, in handler order.
type Memory interface {
	GetByte(addr uint16) uint8
	SetByte(addr uint16, val uint8)
	GetWord(addr uint16) uint16
	SetWord(addr uint16, val uint16)
}

// RESET_VECTOR holds the little-endian address loaded into the program
// counter on reset.
const RESET_VECTOR = 0xFFFC

// The stack lives in page 1; sp indexes into it.
const STACK_PAGE = 0x0100

var (
	invalidAddressingMode = errors.New("invalid addressing mode")
	unimplementedOpcode   = errors.New("unimplemented opcode")
)

// Status register bit positions, used when the flags travel as a
// packed byte (PHP/PLP/RTI and the debug view).
const (
	FLAG_C = 1 << iota // carry
	FLAG_Z             // zero
	FLAG_I             // interrupt disable
	FLAG_D             // decimal (never applied)
	FLAG_B             // break
	FLAG_U             // unused, reads as set
	FLAG_V             // overflow
	FLAG_N             // sign/negative
)

// type CPU implements all of the machine state for the 6502.
type CPU struct {
	acc  uint8  // main register
	x, y uint8  // index registers
	sp   uint8  // stack pointer - stack is 0x0100-0x01FF so only 8 bits needed
	pc   uint16 // the program counter

	// Status flags, kept discrete; see status()/setStatus() for the
	// packed form.
	carry, zero, interrupt, decimal, brk, overflow, sign bool

	mem Memory // the borrowed bus
}

// New returns a CPU in its power-on state, attached to mem. The caller
// keeps ownership of mem but must not touch it mid-step.
func New(mem Memory) *CPU {
	return &CPU{
		sp:        0xFD,
		interrupt: true,
		mem:       mem,
	}
}

// Reset loads the program counter from the reset vector and restores
// the power-on register state. The only other entry point is Step.
func (c *CPU) Reset() {
	c.pc = c.mem.GetWord(RESET_VECTOR)
	c.sp = 0xFD
	c.acc = 0
	c.x = 0
	c.y = 0
	c.carry = false
	c.zero = false
	c.interrupt = true
	c.decimal = false
	c.brk = false
	c.overflow = false
	c.sign = false
}

// Step runs one full fetch/execute pair and returns the cycle charge
// for the external clock driver.
func (c *CPU) Step() (uint8, error) {
	return c.ExecuteInstruction(c.FetchNextInstruction())
}

// status packs the discrete flags into the register layout pushed by
// PHP. The unused bit always reads as set.
func (c *CPU) status() uint8 {
	var st uint8 = FLAG_U
	if c.carry {
		st |= FLAG_C
	}
	if c.zero {
		st |= FLAG_Z
	}
	if c.interrupt {
		st |= FLAG_I
	}
	if c.decimal {
		st |= FLAG_D
	}
	if c.brk {
		st |= FLAG_B
	}
	if c.overflow {
		st |= FLAG_V
	}
	if c.sign {
		st |= FLAG_N
	}
	return st
}

// setStatus unpacks a status byte pulled from the stack. B and the
// unused bit only exist on the stack copy, so they're ignored here.
func (c *CPU) setStatus(st uint8) {
	c.carry = st&FLAG_C != 0
	c.zero = st&FLAG_Z != 0
	c.interrupt = st&FLAG_I != 0
	c.decimal = st&FLAG_D != 0
	c.overflow = st&FLAG_V != 0
	c.sign = st&FLAG_N != 0
}

// push stores val at the top of the stack page and grows the stack
// downward.
func (c *CPU) push(val uint8) {
	c.mem.SetByte(STACK_PAGE+uint16(c.sp), val)
	c.sp--
}

// pull is the inverse of push.
func (c *CPU) pull() uint8 {
	c.sp++
	return c.mem.GetByte(STACK_PAGE + uint16(c.sp))
}

// setZN sets the zero and sign flags from val, the common tail of most
// register-affecting operations.
func (c *CPU) setZN(val uint8) {
	c.zero = val == 0
	c.sign = val&0x80 != 0
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC: 0x%04x, SP: 0x%02x, ACC: 0x%02x, X: 0x%02x, Y: 0x%02x, P: 0x%02x",
		c.pc, c.sp, c.acc, c.x, c.y, c.status())
}
