package cpu

import "testing"

func TestZeroPageXWrapsWithinPageZero(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0xFF)
	c.X = 0x02
	r.loadAt(0x0001, 0x77)
	op := addrZeroPageX(c)
	if op.Addr != 0x0001 {
		t.Errorf("ZPX addr = 0x%04X, want 0x0001 (wrapped)", op.Addr)
	}
	if op.Value != 0x77 {
		t.Errorf("ZPX value = 0x%02X, want 0x77", op.Value)
	}
}

func TestZeroPageYWrapsWithinPageZero(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0x01)
	c.Y = 0xFF
	r.loadAt(0x0000, 0x88)
	op := addrZeroPageY(c)
	if op.Addr != 0x0000 {
		t.Errorf("ZPY addr = 0x%04X, want 0x0000 (wrapped)", op.Addr)
	}
	if op.Value != 0x88 {
		t.Errorf("ZPY value = 0x%02X, want 0x88", op.Value)
	}
}

func TestAbsoluteXIndexing(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0x00, 0x10) // $1000
	c.X = 0x05
	r.loadAt(0x1005, 0x21)
	op := addrAbsoluteX(c)
	if op.Addr != 0x1005 {
		t.Errorf("ABX addr = 0x%04X, want 0x1005", op.Addr)
	}
	if op.Value != 0x21 {
		t.Errorf("ABX value = 0x%02X, want 0x21", op.Value)
	}
	if c.PC != 0x0602 {
		t.Errorf("PC = 0x%04X after ABX operand fetch, want 0x0602", c.PC)
	}
}

func TestAbsoluteYIndexing(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0xFF, 0xFF) // $FFFF
	c.Y = 0x01
	r.loadAt(0x0000, 0x5A) // wraps past 0xFFFF to 0x0000
	op := addrAbsoluteY(c)
	if op.Addr != 0x0000 {
		t.Errorf("ABY addr = 0x%04X, want 0x0000 (16 bit wrap)", op.Addr)
	}
	if op.Value != 0x5A {
		t.Errorf("ABY value = 0x%02X, want 0x5A", op.Value)
	}
}

func TestIndirectYAddsAfterPointerFetch(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0x10) // zero page pointer at $10
	r.loadAt(0x0010, 0x00, 0x30) // points at $3000
	c.Y = 0x05
	r.loadAt(0x3005, 0x64)
	op := addrIndirectY(c)
	if op.Addr != 0x3005 {
		t.Errorf("IDY addr = 0x%04X, want 0x3005", op.Addr)
	}
	if op.Value != 0x64 {
		t.Errorf("IDY value = 0x%02X, want 0x64", op.Value)
	}
}

func TestIndirectYPointerWrapsWithinPageZero(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0xFF) // pointer at $FF, high byte wraps to $00
	r.loadAt(0x00FF, 0x00)
	r.loadAt(0x0000, 0x40)
	c.Y = 0x00
	r.loadAt(0x4000, 0x9A)
	op := addrIndirectY(c)
	if op.Addr != 0x4000 {
		t.Errorf("IDY addr = 0x%04X, want 0x4000", op.Addr)
	}
	if op.Value != 0x9A {
		t.Errorf("IDY value = 0x%02X, want 0x9A", op.Value)
	}
}

func TestIndirectModeReproducesPageWrapBug(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0xFF, 0x30) // pointer $30FF
	r.loadAt(0x30FF, 0x34)
	r.loadAt(0x3000, 0x12) // high byte wrongly read from $3000, not $3100
	r.loadAt(0x3100, 0xFF) // decoy: if the bug weren't reproduced this would be picked up
	op := addrIndirect(c)
	if op.Addr != 0x1234 {
		t.Errorf("IND addr = 0x%04X, want 0x1234 (page-wrap bug)", op.Addr)
	}
}

func TestImmediateAndImplicitAndAccumulator(t *testing.T) {
	c, r := newProgram(0x00)
	c.PC = 0x0600
	r.loadAt(0x0600, 0x99)
	op := addrImmediate(c)
	if op.Kind != Immediate || op.Value != 0x99 {
		t.Errorf("IMM = %+v, want Kind=Immediate Value=0x99", op)
	}
	if c.PC != 0x0601 {
		t.Errorf("PC = 0x%04X after IMM fetch, want 0x0601", c.PC)
	}

	implicit := addrImplicit(c)
	if implicit.Kind != Implicit {
		t.Errorf("IMP kind = %v, want Implicit", implicit.Kind)
	}

	c.A = 0x42
	acc := addrAccumulator(c)
	if acc.Kind != Accumulator || acc.Value != 0x42 {
		t.Errorf("ACC = %+v, want Kind=Accumulator Value=0x42", acc)
	}
}
