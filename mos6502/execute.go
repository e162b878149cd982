package mos6502

import (
	"fmt"
)

// ExecuteInstruction performs the semantic effect of a previously
// fetched instruction and returns the cycle charge: the table base
// plus any page-crossing or taken-branch penalty. Errors mean the
// decoder/dispatch contract was violated; the step is aborted with no
// cycle charge.
func (c *CPU) ExecuteInstruction(in Instruction) (uint8, error) {
	var extra uint8
	var err error

	switch in.inst {
	case ADC:
		extra, err = c.opADC(in)
	case AND:
		extra, err = c.opAND(in)
	case ASL:
		err = c.opASL(in)
	case BCC:
		extra, err = c.branch(in, !c.carry)
	case BCS:
		extra, err = c.branch(in, c.carry)
	case BEQ:
		extra, err = c.branch(in, c.zero)
	case BIT:
		err = c.opBIT(in)
	case BMI:
		extra, err = c.branch(in, c.sign)
	case BNE:
		extra, err = c.branch(in, !c.zero)
	case BPL:
		extra, err = c.branch(in, !c.sign)
	case BRK:
		// BRK would enter the IRQ path; interrupt lines aren't
		// modeled, so it deliberately does nothing.
	case BVC:
		extra, err = c.branch(in, !c.overflow)
	case BVS:
		extra, err = c.branch(in, c.overflow)
	case CLC:
		c.carry = false
	case CLD:
		c.decimal = false
	case CLI:
		c.interrupt = false
	case CLV:
		c.overflow = false
	case CMP:
		extra, err = c.compare(in, c.acc)
	case CPX:
		extra, err = c.compare(in, c.x)
	case CPY:
		extra, err = c.compare(in, c.y)
	case DEC:
		err = c.rmw(in, func(v uint8) uint8 { return v - 1 })
	case DEX:
		c.x--
		c.setZN(c.x)
	case DEY:
		c.y--
		c.setZN(c.y)
	case EOR:
		extra, err = c.opEOR(in)
	case INC:
		err = c.rmw(in, func(v uint8) uint8 { return v + 1 })
	case INX:
		c.x++
		c.setZN(c.x)
	case INY:
		c.y++
		c.setZN(c.y)
	case JMP:
		err = c.opJMP(in)
	case JSR:
		err = c.opJSR(in)
	case LDA:
		extra, err = c.load(in, &c.acc)
	case LDX:
		extra, err = c.load(in, &c.x)
	case LDY:
		extra, err = c.load(in, &c.y)
	case LSR:
		err = c.opLSR(in)
	case NOP:
		// Includes the fallback decode of undefined opcode bytes.
	case ORA:
		extra, err = c.opORA(in)
	case PHA:
		c.push(c.acc)
	case PHP:
		// The stack copy carries B and the unused bit set.
		c.push(c.status() | FLAG_B)
	case PLA:
		c.acc = c.pull()
		c.setZN(c.acc)
	case PLP:
		c.setStatus(c.pull())
	case ROL:
		err = c.opROL(in)
	case ROR:
		err = c.opROR(in)
	case RTI:
		c.setStatus(c.pull())
		c.pc = c.pullWord()
	case RTS:
		c.pc = c.pullWord() + 1
	case SBC:
		extra, err = c.opSBC(in)
	case SEC:
		c.carry = true
	case SED:
		c.decimal = true
	case SEI:
		c.interrupt = true
	case STA:
		err = c.writeOperand(in, c.acc)
	case STX:
		err = c.writeOperand(in, c.x)
	case STY:
		err = c.writeOperand(in, c.y)
	case TAX:
		c.x = c.acc
		c.setZN(c.x)
	case TAY:
		c.y = c.acc
		c.setZN(c.y)
	case TSX:
		c.x = c.sp
		c.setZN(c.x)
	case TXA:
		c.acc = c.x
		c.setZN(c.acc)
	case TXS:
		c.sp = c.x
	case TYA:
		c.acc = c.y
		c.setZN(c.acc)
	default:
		return 0, fmt.Errorf("%w: no handler for %s", unimplementedOpcode, in)
	}

	if err != nil {
		return 0, err
	}

	return in.cycles + extra, nil
}

// crossPenalty turns a page-crossing report into the cycle penalty for
// opcodes the decode table flags.
func (in Instruction) crossPenalty(crossed bool) uint8 {
	if crossed && in.pageCross {
		return 1
	}
	return 0
}

// addWithCarry implements the shared ADC/SBC core. The operand and the
// carry-in are added to the accumulator in full width; the carry-outs
// of the two stages are ORed. Overflow uses the sign-bit trick against
// the pre-add accumulator.
func (c *CPU) addWithCarry(m uint8) {
	first := c.acc + m
	firstCarry := first < c.acc

	result := first
	var secondCarry bool
	if c.carry {
		result = first + 1
		secondCarry = result == 0
	}

	c.overflow = (c.acc^result)&(m^result)&0x80 != 0
	c.carry = firstCarry || secondCarry
	c.acc = result
	c.setZN(result)
}

func (c *CPU) opADC(in Instruction) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.addWithCarry(m)
	return in.crossPenalty(crossed), nil
}

// SBC is ADC of the one's complement: A - M - (1-C) == A + ^M + C.
func (c *CPU) opSBC(in Instruction) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.addWithCarry(m ^ 0xFF)
	return in.crossPenalty(crossed), nil
}

func (c *CPU) opAND(in Instruction) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.acc &= m
	c.setZN(c.acc)
	return in.crossPenalty(crossed), nil
}

func (c *CPU) opORA(in Instruction) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.acc |= m
	c.setZN(c.acc)
	return in.crossPenalty(crossed), nil
}

func (c *CPU) opEOR(in Instruction) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.acc ^= m
	c.setZN(c.acc)
	return in.crossPenalty(crossed), nil
}

// rmw runs a read-modify-write op through the instruction's addressing
// mode: read, compute, write back to the identical cell, in that
// order. The ACCUMULATOR mode targets the register instead of memory.
// Zero and sign always track the written result; shift handlers set
// carry inside f, from the pre-shift value.
func (c *CPU) rmw(in Instruction, f func(uint8) uint8) error {
	if in.mode == ACCUMULATOR {
		c.acc = f(c.acc)
		c.setZN(c.acc)
		return nil
	}

	addr, _, err := c.operandAddr(in)
	if err != nil {
		return err
	}

	result := f(c.mem.GetByte(addr))
	c.mem.SetByte(addr, result)
	c.setZN(result)
	return nil
}

func (c *CPU) opASL(in Instruction) error {
	return c.rmw(in, func(v uint8) uint8 {
		c.carry = v&0x80 != 0
		return v << 1
	})
}

func (c *CPU) opLSR(in Instruction) error {
	return c.rmw(in, func(v uint8) uint8 {
		c.carry = v&0x01 != 0
		return v >> 1
	})
}

func (c *CPU) opROL(in Instruction) error {
	return c.rmw(in, func(v uint8) uint8 {
		carryIn := c.carry
		c.carry = v&0x80 != 0
		v <<= 1
		if carryIn {
			v |= 0x01
		}
		return v
	})
}

func (c *CPU) opROR(in Instruction) error {
	return c.rmw(in, func(v uint8) uint8 {
		carryIn := c.carry
		c.carry = v&0x01 != 0
		v >>= 1
		if carryIn {
			v |= 0x80
		}
		return v
	})
}

// branch adds the signed relative offset to the program counter when
// cond holds. The offset is relative to pc as already advanced past
// the branch instruction by the fetch. Flags are never touched. Taken
// branches cost one extra cycle, two when the target sits on a new
// page.
func (c *CPU) branch(in Instruction, cond bool) (uint8, error) {
	if in.mode != RELATIVE {
		return 0, fmt.Errorf("%w: cannot branch via %s for %s",
			invalidAddressingMode, modenames[in.mode], in.name)
	}

	if !cond {
		return 0, nil
	}

	from := c.pc
	c.pc = uint16(int32(c.pc) + int32(int8(in.operand)))

	extra := uint8(1)
	if in.pageCross && pageCrossed(from, c.pc) {
		extra++
	}
	return extra, nil
}

// compare subtracts the operand from reg without storing the result.
// Carry tracks reg >= operand, zero tracks equality, and sign tracks
// reg < operand (not bit 7 of the difference).
func (c *CPU) compare(in Instruction, reg uint8) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	c.carry = reg >= m
	c.zero = reg == m
	c.sign = reg < m
	return in.crossPenalty(crossed), nil
}

// BIT tests accumulator bits against memory without keeping the
// result; overflow and sign mirror bits 6 and 7 of the operand.
func (c *CPU) opBIT(in Instruction) error {
	m, _, err := c.readOperand(in)
	if err != nil {
		return err
	}

	c.zero = c.acc&m == 0
	c.overflow = m&0x40 != 0
	c.sign = m&0x80 != 0
	return nil
}

func (c *CPU) load(in Instruction, reg *uint8) (uint8, error) {
	m, crossed, err := c.readOperand(in)
	if err != nil {
		return 0, err
	}

	*reg = m
	c.setZN(m)
	return in.crossPenalty(crossed), nil
}

func (c *CPU) opJMP(in Instruction) error {
	switch in.mode {
	case ABSOLUTE:
		c.pc = in.operand
	case INDIRECT:
		c.pc = c.mem.GetWord(in.operand)
	default:
		return fmt.Errorf("%w: cannot jmp via %s for %s",
			invalidAddressingMode, modenames[in.mode], in.name)
	}
	return nil
}

// JSR pushes the address of the last byte of the JSR instruction
// (pc-after-fetch minus one), high byte first, so RTS can pull low
// then high and add one.
func (c *CPU) opJSR(in Instruction) error {
	if in.mode != ABSOLUTE {
		return fmt.Errorf("%w: cannot jsr via %s for %s",
			invalidAddressingMode, modenames[in.mode], in.name)
	}

	ret := c.pc - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.pc = in.operand
	return nil
}

// pullWord pops a little-endian word pushed high byte first.
func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}
