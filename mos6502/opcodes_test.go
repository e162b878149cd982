package mos6502

import (
	"testing"
)

// Decode must be total: every one of the 256 opcode bytes maps to
// exactly one table row or the NOP fallback, and fetch advances pc by
// 1 + the operand width of the decoded mode.
func TestFetchTotality(t *testing.T) {
	cpu, ram := newTestCPU()

	for b := 0; b < 0x100; b++ {
		cpu.pc = 0x8000
		ram.cells[0x8000] = uint8(b)

		in := cpu.FetchNextInstruction()

		op, defined := opcodes[uint8(b)]
		if !defined {
			op = nopFallback
		}

		if in.inst != op.inst || in.mode != op.mode || in.cycles != op.cycles || in.pageCross != op.pageCross {
			t.Errorf("0x%02x: decoded %s (cycles %d), want %s (cycles %d)",
				b, in, in.cycles, op, op.cycles)
		}

		want := 0x8000 + 1 + operandWidth(op.mode)
		if cpu.pc != want {
			t.Errorf("0x%02x: pc = 0x%04x, want 0x%04x", b, cpu.pc, want)
		}

		if !defined && in.cycles != 0 {
			t.Errorf("0x%02x: undefined byte decoded with %d cycles, want 0 sentinel", b, in.cycles)
		}
	}
}

func TestFetchTriples(t *testing.T) {
	cpu, ram := newTestCPU()
	cases := []struct {
		val    uint8
		inst   uint8
		mode   uint8
		cycles uint8
	}{
		{0x69, ADC, IMMEDIATE, 2},
		{0x7D, ADC, ABSOLUTE_X, 4},
		{0x0A, ASL, ACCUMULATOR, 2},
		{0x1E, ASL, ABSOLUTE_X, 7},
		{0xF0, BEQ, RELATIVE, 2},
		{0x24, BIT, ZERO_PAGE, 3},
		{0x00, BRK, IMPLICIT, 7},
		{0xD1, CMP, INDIRECT_Y, 5},
		{0x6C, JMP, INDIRECT, 5},
		{0x20, JSR, ABSOLUTE, 6},
		{0xB6, LDX, ZERO_PAGE_Y, 4},
		{0xA1, LDA, INDIRECT_X, 6},
		{0x60, RTS, IMPLICIT, 6},
		{0x91, STA, INDIRECT_Y, 6},
	}

	for i, tc := range cases {
		cpu.pc = 0x4000
		ram.cells[0x4000] = tc.val
		in := cpu.FetchNextInstruction()
		if in.inst != tc.inst || in.mode != tc.mode || in.cycles != tc.cycles {
			t.Errorf("%d: 0x%02x decoded %s (cycles %d), want inst %d mode %s cycles %d",
				i, tc.val, in, in.cycles, tc.inst, modenames[tc.mode], tc.cycles)
		}
	}
}

// The operand bytes after the opcode must land in the Instruction
// exactly as fetched, one byte for the short modes and a little-endian
// word for the long ones.
func TestFetchOperands(t *testing.T) {
	cpu, ram := newTestCPU()
	cases := []struct {
		prog    []uint8
		operand uint16
	}{
		{[]uint8{0xA9, 0x42}, 0x0042},       // LDA #$42
		{[]uint8{0xA5, 0xFF}, 0x00FF},       // LDA $FF
		{[]uint8{0xAD, 0x0F, 0x11}, 0x110F}, // LDA $110F
		{[]uint8{0x6C, 0xFE, 0xCA}, 0xCAFE}, // JMP ($CAFE)
		{[]uint8{0xD0, 0xFB}, 0x00FB},       // BNE -5
		{[]uint8{0xEA}, 0x0000},             // NOP carries no operand
	}

	for i, tc := range cases {
		cpu.pc = 0x6000
		copy(ram.cells[0x6000:], tc.prog)
		if in := cpu.FetchNextInstruction(); in.operand != tc.operand {
			t.Errorf("%d: operand = 0x%04x, want 0x%04x", i, in.operand, tc.operand)
		}
	}
}

// Cycles and Mnemonic are what a clock driver reads off a fetched
// instruction; Cycles() == 0 marks the fallback decode of an undefined
// byte.
func TestInstructionAccessors(t *testing.T) {
	cpu, ram := newTestCPU()

	cpu.pc = 0x8000
	ram.cells[0x8000] = 0xA9 // LDA #$01
	ram.cells[0x8001] = 0x01
	in := cpu.FetchNextInstruction()
	if in.Mnemonic() != "LDA" || in.Cycles() != 2 {
		t.Errorf("LDA: Mnemonic %q, Cycles %d, want \"LDA\", 2", in.Mnemonic(), in.Cycles())
	}

	cpu.pc = 0x8000
	ram.cells[0x8000] = 0x02 // undefined byte
	in = cpu.FetchNextInstruction()
	if in.Mnemonic() != "NOP" || in.Cycles() != 0 {
		t.Errorf("0x02: Mnemonic %q, Cycles %d, want \"NOP\", 0", in.Mnemonic(), in.Cycles())
	}
}

// The mode alone fixes instruction length.
func TestOperandWidth(t *testing.T) {
	cases := []struct {
		mode uint8
		want uint16
	}{
		{IMPLICIT, 0},
		{ACCUMULATOR, 0},
		{IMMEDIATE, 1},
		{ZERO_PAGE, 1},
		{ZERO_PAGE_X, 1},
		{ZERO_PAGE_Y, 1},
		{RELATIVE, 1},
		{INDIRECT_X, 1},
		{INDIRECT_Y, 1},
		{ABSOLUTE, 2},
		{ABSOLUTE_X, 2},
		{ABSOLUTE_Y, 2},
		{INDIRECT, 2},
	}

	for i, tc := range cases {
		if got := operandWidth(tc.mode); got != tc.want {
			t.Errorf("%d: operandWidth(%s) = %d, want %d", i, modenames[tc.mode], got, tc.want)
		}
	}
}

// Fetch may move pc and nothing else.
func TestFetchOnlyTouchesPC(t *testing.T) {
	cpu, ram := newTestCPU()
	ram.cells[0x8000] = 0x69 // ADC #$05
	ram.cells[0x8001] = 0x05
	cpu.pc = 0x8000
	cpu.acc, cpu.x, cpu.y, cpu.sp = 0x11, 0x22, 0x33, 0xFD
	cpu.carry = true

	cpu.FetchNextInstruction()

	if cpu.acc != 0x11 || cpu.x != 0x22 || cpu.y != 0x33 || cpu.sp != 0xFD || !cpu.carry {
		t.Errorf("fetch disturbed state: %s", cpu)
	}
	if cpu.pc != 0x8002 {
		t.Errorf("pc = 0x%04x, want 0x8002", cpu.pc)
	}
}
