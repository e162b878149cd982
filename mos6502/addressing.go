package mos6502

import (
	"fmt"
)

// Operand resolution. Each addressing mode maps the raw operand bytes
// carried by the Instruction to an effective memory address. The
// crossed return reports whether an index addition stepped over a
// 256-byte page boundary; callers charge the extra cycle only when the
// decode table flagged the opcode for it.
//
// IMPLICIT, ACCUMULATOR, RELATIVE and INDIRECT never name a generic
// operand cell; asking for one is a decoder/dispatch defect, not a
// runtime condition, and aborts the step.

// operandAddr resolves the effective address for the memory-backed
// addressing modes.
func (c *CPU) operandAddr(in Instruction) (addr uint16, crossed bool, err error) {
	switch in.mode {
	case ZERO_PAGE:
		return in.operand, false, nil
	case ZERO_PAGE_X:
		// Zero page indexing wraps within page 0.
		return uint16(uint8(in.operand) + c.x), false, nil
	case ZERO_PAGE_Y:
		return uint16(uint8(in.operand) + c.y), false, nil
	case ABSOLUTE:
		return in.operand, false, nil
	case ABSOLUTE_X:
		addr = in.operand + uint16(c.x)
		return addr, pageCrossed(in.operand, addr), nil
	case ABSOLUTE_Y:
		addr = in.operand + uint16(c.y)
		return addr, pageCrossed(in.operand, addr), nil
	case INDIRECT_X:
		// The pointer itself lives in page 0; the index addition
		// wraps there too.
		ptr := uint16(uint8(in.operand) + c.x)
		return c.mem.GetWord(ptr), false, nil
	case INDIRECT_Y:
		base := c.mem.GetWord(in.operand)
		addr = base + uint16(c.y)
		return addr, pageCrossed(base, addr), nil
	}

	return 0, false, fmt.Errorf("%w: cannot resolve an address via %s for %s",
		invalidAddressingMode, modenames[in.mode], in.name)
}

// readOperand resolves the effective byte value of an instruction's
// operand.
func (c *CPU) readOperand(in Instruction) (val uint8, crossed bool, err error) {
	if in.mode == IMMEDIATE {
		return uint8(in.operand), false, nil
	}

	addr, crossed, err := c.operandAddr(in)
	if err != nil {
		return 0, false, err
	}

	return c.mem.GetByte(addr), crossed, nil
}

// writeOperand stores val through the instruction's addressing mode.
// Writing through IMMEDIATE is illegal; read and write always resolve
// to the identical effective address for the same mode and operand.
func (c *CPU) writeOperand(in Instruction, val uint8) error {
	if in.mode == IMMEDIATE {
		return fmt.Errorf("%w: cannot write operand via %s for %s",
			invalidAddressingMode, modenames[in.mode], in.name)
	}

	addr, _, err := c.operandAddr(in)
	if err != nil {
		return err
	}

	c.mem.SetByte(addr, val)
	return nil
}

// pageCrossed reports whether two addresses sit on different 256-byte
// pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
