package mos6502

// nopFallback is what an undefined opcode byte decodes to: a harmless
// no-op with zero operand width and a zero cycle charge. Decode is
// total by policy; strict callers can treat Cycles()==0 as the
// undefined-byte sentinel.
var nopFallback = opcode{NOP, "NOP", IMPLICIT, 0, false}

// FetchNextInstruction decodes the opcode byte at pc, pulls however
// many operand bytes its addressing mode calls for, and advances pc
// past the whole instruction. The program counter is the only state it
// touches; registers, flags and memory are left to
// ExecuteInstruction.
func (c *CPU) FetchNextInstruction() Instruction {
	op, ok := opcodes[c.mem.GetByte(c.pc)]
	if !ok {
		op = nopFallback
	}

	var operand uint16
	width := operandWidth(op.mode)
	switch width {
	case 1:
		operand = uint16(c.mem.GetByte(c.pc + 1))
	case 2:
		operand = c.mem.GetWord(c.pc + 1)
	}

	c.pc += 1 + width

	return Instruction{
		inst:      op.inst,
		name:      op.name,
		mode:      op.mode,
		operand:   operand,
		cycles:    op.cycles,
		pageCross: op.pageCross,
	}
}
