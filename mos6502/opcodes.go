package mos6502

import (
	"fmt"
)

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
)

var modenames map[uint8]string = map[uint8]string{IMPLICIT: "IMPLICIT", ACCUMULATOR: "ACCUMULATOR", IMMEDIATE: "IMMEDIATE", ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y", RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X", ABSOLUTE_Y: "ABSOLUTE_Y", INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X", INDIRECT_Y: "INDIRECT_Y"}

// operandWidth returns how many operand bytes follow the opcode byte
// for a given addressing mode. The mode fully determines instruction
// length.
func operandWidth(mode uint8) uint16 {
	switch mode {
	case IMPLICIT, ACCUMULATOR:
		return 0
	case IMMEDIATE, ZERO_PAGE, ZERO_PAGE_X, ZERO_PAGE_Y, RELATIVE, INDIRECT_X, INDIRECT_Y:
		return 1
	case ABSOLUTE, ABSOLUTE_X, ABSOLUTE_Y, INDIRECT:
		return 2
	}

	panic(fmt.Sprintf("unknown addressing mode %d", mode))
}

// 6502 Instructions
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
// https://www.nesdev.org/obelisk-6502-guide/reference.html
const (
	ADC = iota // ADD with Carry
	AND        // Logical AND
	ASL        // Arithmetic Shift Left
	BCC        // Branch if Carry Clear
	BCS        // Branch if Carry Set
	BEQ        // Branch if Equal
	BIT        // Bit Test
	BMI        // Branch if Minus
	BNE        // Branch if Not Equal
	BPL        // Branch if Positive
	BRK        // Force Interrupt
	BVC        // Branch if Overflow Clear
	BVS        // Branch if Overflow Set
	CLC        // Clear Carry Flag
	CLD        // Clear Decimal Mode
	CLI        // Clear Interrupt Disable
	CLV        // Clear Overflow Flag
	CMP        // Compare
	CPX        // Compare X Register
	CPY        // Compare Y Register
	DEC        // Decrement Memory
	DEX        // Decrement X Register
	DEY        // Decrement Y Register
	EOR        // Exclusive OR
	INC        // Increment Memory
	INX        // Increment X Register
	INY        // Increment Y Register
	JMP        // Jump
	JSR        // Jump to Subroutine
	LDA        // Load Accumulator
	LDX        // Load X Register
	LDY        // Load Y Register
	LSR        // Logical Shift Right
	NOP        // No Operation
	ORA        // Logical Inclusive OR
	PHA        // Push Accumulator
	PHP        // Push Processor Status
	PLA        // Pull Accumulator
	PLP        // Pull Processor Status
	ROL        // Rotate Left
	ROR        // Rotate Right
	RTI        // Return from Interrupt
	RTS        // Return from Subroutine
	SBC        // Subtract With Carry
	SEC        // Set Carry Flag
	SED        // Set Decimal Flag
	SEI        // Set Interrupt Disable
	STA        // Store Accumulator
	STX        // Store X Register
	STY        // Store Y Register
	TAX        // Transfer Accumulator to X
	TAY        // Transfer Accumulator to Y
	TSX        // Transfer Stack Pointer to X
	TXA        // Transfer X to Accumulator
	TXS        // Transfer X to Stack Pointer
	TYA        // Transfer Y to Accumulator
)

// opcode is one row of the static decode table: which instruction a
// raw byte names, how its operand is addressed, its base cycle charge
// and whether an indexed page crossing costs one more.
type opcode struct {
	inst      uint8 // The instruction id
	name      string
	mode      uint8 // The memory addressing mode to use
	cycles    uint8 // The number of cycles consumed by the instruction
	pageCross bool  // +1 cycle when address resolution crosses a page
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modenames[o.mode])
}

// Instruction is the fully-resolved product of one fetch: decoded
// instruction, addressing mode with its raw operand already read from
// memory, and the cycle data the clock driver needs.
type Instruction struct {
	inst      uint8
	name      string
	mode      uint8
	operand   uint16 // raw operand bytes; low 8 bits for 1-byte modes
	cycles    uint8
	pageCross bool
}

// Cycles returns the base cycle charge declared in the decode table.
// A zero here marks the fallback decode of an undefined opcode byte.
func (in Instruction) Cycles() uint8 {
	return in.cycles
}

// Mnemonic returns the instruction name, eg "LDA".
func (in Instruction) Mnemonic() string {
	return in.name
}

func (in Instruction) String() string {
	switch operandWidth(in.mode) {
	case 0:
		return fmt.Sprintf("{%s, %s}", in.name, modenames[in.mode])
	case 1:
		return fmt.Sprintf("{%s, %s, 0x%02x}", in.name, modenames[in.mode], in.operand)
	default:
		return fmt.Sprintf("{%s, %s, 0x%04x}", in.name, modenames[in.mode], in.operand)
	}
}

var opcodes map[uint8]opcode = map[uint8]opcode{
	0x69: opcode{ADC, "ADC", IMMEDIATE, 2, false},
	0x65: opcode{ADC, "ADC", ZERO_PAGE, 3, false},
	0x75: opcode{ADC, "ADC", ZERO_PAGE_X, 4, false},
	0x6D: opcode{ADC, "ADC", ABSOLUTE, 4, false},
	0x7D: opcode{ADC, "ADC", ABSOLUTE_X, 4, true},
	0x79: opcode{ADC, "ADC", ABSOLUTE_Y, 4, true},
	0x61: opcode{ADC, "ADC", INDIRECT_X, 6, false},
	0x71: opcode{ADC, "ADC", INDIRECT_Y, 5, true},
	0x29: opcode{AND, "AND", IMMEDIATE, 2, false},
	0x25: opcode{AND, "AND", ZERO_PAGE, 3, false},
	0x35: opcode{AND, "AND", ZERO_PAGE_X, 4, false},
	0x2D: opcode{AND, "AND", ABSOLUTE, 4, false},
	0x3D: opcode{AND, "AND", ABSOLUTE_X, 4, true},
	0x39: opcode{AND, "AND", ABSOLUTE_Y, 4, true},
	0x21: opcode{AND, "AND", INDIRECT_X, 6, false},
	0x31: opcode{AND, "AND", INDIRECT_Y, 5, true},
	0x0A: opcode{ASL, "ASL", ACCUMULATOR, 2, false},
	0x06: opcode{ASL, "ASL", ZERO_PAGE, 5, false},
	0x16: opcode{ASL, "ASL", ZERO_PAGE_X, 6, false},
	0x0E: opcode{ASL, "ASL", ABSOLUTE, 6, false},
	0x1E: opcode{ASL, "ASL", ABSOLUTE_X, 7, false},
	0x90: opcode{BCC, "BCC", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0xB0: opcode{BCS, "BCS", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0xF0: opcode{BEQ, "BEQ", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0x24: opcode{BIT, "BIT", ZERO_PAGE, 3, false},
	0x2C: opcode{BIT, "BIT", ABSOLUTE, 4, false},
	0x30: opcode{BMI, "BMI", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0xD0: opcode{BNE, "BNE", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0x10: opcode{BPL, "BPL", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0x00: opcode{BRK, "BRK", IMPLICIT, 7, false},
	0x50: opcode{BVC, "BVC", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0x70: opcode{BVS, "BVS", RELATIVE, 2, true /* +1 if taken, +2 if to a new page */},
	0x18: opcode{CLC, "CLC", IMPLICIT, 2, false},
	0xD8: opcode{CLD, "CLD", IMPLICIT, 2, false},
	0x58: opcode{CLI, "CLI", IMPLICIT, 2, false},
	0xB8: opcode{CLV, "CLV", IMPLICIT, 2, false},
	0xC9: opcode{CMP, "CMP", IMMEDIATE, 2, false},
	0xC5: opcode{CMP, "CMP", ZERO_PAGE, 3, false},
	0xD5: opcode{CMP, "CMP", ZERO_PAGE_X, 4, false},
	0xCD: opcode{CMP, "CMP", ABSOLUTE, 4, false},
	0xDD: opcode{CMP, "CMP", ABSOLUTE_X, 4, true},
	0xD9: opcode{CMP, "CMP", ABSOLUTE_Y, 4, true},
	0xC1: opcode{CMP, "CMP", INDIRECT_X, 6, false},
	0xD1: opcode{CMP, "CMP", INDIRECT_Y, 5, true},
	0xE0: opcode{CPX, "CPX", IMMEDIATE, 2, false},
	0xE4: opcode{CPX, "CPX", ZERO_PAGE, 3, false},
	0xEC: opcode{CPX, "CPX", ABSOLUTE, 4, false},
	0xC0: opcode{CPY, "CPY", IMMEDIATE, 2, false},
	0xC4: opcode{CPY, "CPY", ZERO_PAGE, 3, false},
	0xCC: opcode{CPY, "CPY", ABSOLUTE, 4, false},
	0xC6: opcode{DEC, "DEC", ZERO_PAGE, 5, false},
	0xD6: opcode{DEC, "DEC", ZERO_PAGE_X, 6, false},
	0xCE: opcode{DEC, "DEC", ABSOLUTE, 6, false},
	0xDE: opcode{DEC, "DEC", ABSOLUTE_X, 7, false},
	0xCA: opcode{DEX, "DEX", IMPLICIT, 2, false},
	0x88: opcode{DEY, "DEY", IMPLICIT, 2, false},
	0x49: opcode{EOR, "EOR", IMMEDIATE, 2, false},
	0x45: opcode{EOR, "EOR", ZERO_PAGE, 3, false},
	0x55: opcode{EOR, "EOR", ZERO_PAGE_X, 4, false},
	0x4D: opcode{EOR, "EOR", ABSOLUTE, 4, false},
	0x5D: opcode{EOR, "EOR", ABSOLUTE_X, 4, true},
	0x59: opcode{EOR, "EOR", ABSOLUTE_Y, 4, true},
	0x41: opcode{EOR, "EOR", INDIRECT_X, 6, false},
	0x51: opcode{EOR, "EOR", INDIRECT_Y, 5, true},
	0xE6: opcode{INC, "INC", ZERO_PAGE, 5, false},
	0xF6: opcode{INC, "INC", ZERO_PAGE_X, 6, false},
	0xEE: opcode{INC, "INC", ABSOLUTE, 6, false},
	0xFE: opcode{INC, "INC", ABSOLUTE_X, 7, false},
	0xE8: opcode{INX, "INX", IMPLICIT, 2, false},
	0xC8: opcode{INY, "INY", IMPLICIT, 2, false},
	0x4C: opcode{JMP, "JMP", ABSOLUTE, 3, false},
	0x6C: opcode{JMP, "JMP", INDIRECT, 5, false},
	0x20: opcode{JSR, "JSR", ABSOLUTE, 6, false},
	0xA9: opcode{LDA, "LDA", IMMEDIATE, 2, false},
	0xA5: opcode{LDA, "LDA", ZERO_PAGE, 3, false},
	0xB5: opcode{LDA, "LDA", ZERO_PAGE_X, 4, false},
	0xAD: opcode{LDA, "LDA", ABSOLUTE, 4, false},
	0xBD: opcode{LDA, "LDA", ABSOLUTE_X, 4, true},
	0xB9: opcode{LDA, "LDA", ABSOLUTE_Y, 4, true},
	0xA1: opcode{LDA, "LDA", INDIRECT_X, 6, false},
	0xB1: opcode{LDA, "LDA", INDIRECT_Y, 5, true},
	0xA2: opcode{LDX, "LDX", IMMEDIATE, 2, false},
	0xA6: opcode{LDX, "LDX", ZERO_PAGE, 3, false},
	0xB6: opcode{LDX, "LDX", ZERO_PAGE_Y, 4, false},
	0xAE: opcode{LDX, "LDX", ABSOLUTE, 4, false},
	0xBE: opcode{LDX, "LDX", ABSOLUTE_Y, 4, true},
	0xA0: opcode{LDY, "LDY", IMMEDIATE, 2, false},
	0xA4: opcode{LDY, "LDY", ZERO_PAGE, 3, false},
	0xB4: opcode{LDY, "LDY", ZERO_PAGE_X, 4, false},
	0xAC: opcode{LDY, "LDY", ABSOLUTE, 4, false},
	0xBC: opcode{LDY, "LDY", ABSOLUTE_X, 4, true},
	0x4A: opcode{LSR, "LSR", ACCUMULATOR, 2, false},
	0x46: opcode{LSR, "LSR", ZERO_PAGE, 5, false},
	0x56: opcode{LSR, "LSR", ZERO_PAGE_X, 6, false},
	0x4E: opcode{LSR, "LSR", ABSOLUTE, 6, false},
	0x5E: opcode{LSR, "LSR", ABSOLUTE_X, 7, false},
	0xEA: opcode{NOP, "NOP", IMPLICIT, 2, false},
	0x09: opcode{ORA, "ORA", IMMEDIATE, 2, false},
	0x05: opcode{ORA, "ORA", ZERO_PAGE, 3, false},
	0x15: opcode{ORA, "ORA", ZERO_PAGE_X, 4, false},
	0x0D: opcode{ORA, "ORA", ABSOLUTE, 4, false},
	0x1D: opcode{ORA, "ORA", ABSOLUTE_X, 4, true},
	0x19: opcode{ORA, "ORA", ABSOLUTE_Y, 4, true},
	0x01: opcode{ORA, "ORA", INDIRECT_X, 6, false},
	0x11: opcode{ORA, "ORA", INDIRECT_Y, 5, true},
	0x48: opcode{PHA, "PHA", IMPLICIT, 3, false},
	0x08: opcode{PHP, "PHP", IMPLICIT, 3, false},
	0x68: opcode{PLA, "PLA", IMPLICIT, 4, false},
	0x28: opcode{PLP, "PLP", IMPLICIT, 4, false},
	0x2A: opcode{ROL, "ROL", ACCUMULATOR, 2, false},
	0x26: opcode{ROL, "ROL", ZERO_PAGE, 5, false},
	0x36: opcode{ROL, "ROL", ZERO_PAGE_X, 6, false},
	0x2E: opcode{ROL, "ROL", ABSOLUTE, 6, false},
	0x3E: opcode{ROL, "ROL", ABSOLUTE_X, 7, false},
	0x6A: opcode{ROR, "ROR", ACCUMULATOR, 2, false},
	0x66: opcode{ROR, "ROR", ZERO_PAGE, 5, false},
	0x76: opcode{ROR, "ROR", ZERO_PAGE_X, 6, false},
	0x6E: opcode{ROR, "ROR", ABSOLUTE, 6, false},
	0x7E: opcode{ROR, "ROR", ABSOLUTE_X, 7, false},
	0x40: opcode{RTI, "RTI", IMPLICIT, 6, false},
	0x60: opcode{RTS, "RTS", IMPLICIT, 6, false},
	0xE9: opcode{SBC, "SBC", IMMEDIATE, 2, false},
	0xE5: opcode{SBC, "SBC", ZERO_PAGE, 3, false},
	0xF5: opcode{SBC, "SBC", ZERO_PAGE_X, 4, false},
	0xED: opcode{SBC, "SBC", ABSOLUTE, 4, false},
	0xFD: opcode{SBC, "SBC", ABSOLUTE_X, 4, true},
	0xF9: opcode{SBC, "SBC", ABSOLUTE_Y, 4, true},
	0xE1: opcode{SBC, "SBC", INDIRECT_X, 6, false},
	0xF1: opcode{SBC, "SBC", INDIRECT_Y, 5, true},
	0x38: opcode{SEC, "SEC", IMPLICIT, 2, false},
	0xF8: opcode{SED, "SED", IMPLICIT, 2, false},
	0x78: opcode{SEI, "SEI", IMPLICIT, 2, false},
	0x85: opcode{STA, "STA", ZERO_PAGE, 3, false},
	0x95: opcode{STA, "STA", ZERO_PAGE_X, 4, false},
	0x8D: opcode{STA, "STA", ABSOLUTE, 4, false},
	0x9D: opcode{STA, "STA", ABSOLUTE_X, 5, false},
	0x99: opcode{STA, "STA", ABSOLUTE_Y, 5, false},
	0x81: opcode{STA, "STA", INDIRECT_X, 6, false},
	0x91: opcode{STA, "STA", INDIRECT_Y, 6, false},
	0x86: opcode{STX, "STX", ZERO_PAGE, 3, false},
	0x96: opcode{STX, "STX", ZERO_PAGE_Y, 4, false},
	0x8E: opcode{STX, "STX", ABSOLUTE, 4, false},
	0x84: opcode{STY, "STY", ZERO_PAGE, 3, false},
	0x94: opcode{STY, "STY", ZERO_PAGE_X, 4, false},
	0x8C: opcode{STY, "STY", ABSOLUTE, 4, false},
	0xAA: opcode{TAX, "TAX", IMPLICIT, 2, false},
	0xA8: opcode{TAY, "TAY", IMPLICIT, 2, false},
	0xBA: opcode{TSX, "TSX", IMPLICIT, 2, false},
	0x8A: opcode{TXA, "TXA", IMPLICIT, 2, false},
	0x9A: opcode{TXS, "TXS", IMPLICIT, 2, false},
	0x98: opcode{TYA, "TYA", IMPLICIT, 2, false},
}
