package cpu

// OperandKind tags what kind of effective location an addressing mode
// resolved to. This is the tagged union the teacher's design notes ask
// for in place of a shared mutable "operand" record with a hidden
// setAcc bool: addressing-mode resolvers return a value, instruction
// handlers consume it, and there's no coupling beyond that.
type OperandKind int

const (
	// Implicit means the instruction needs no operand (e.g. CLC, TAX).
	Implicit OperandKind = iota
	// Accumulator means the instruction's source/destination is A itself
	// (e.g. ASL with no operand byte).
	Accumulator
	// Immediate means Value is the operand; there is no address to write
	// back to.
	Immediate
	// Memory means Addr/Value are both meaningful; RMW instructions write
	// their result back to Addr.
	Memory
)

// Operand is the effective operand an addressing-mode resolver stages for
// the instruction handler paired with it in the dispatch table.
type Operand struct {
	Kind  OperandKind
	Addr  uint16
	Value uint8
}

// AddrModeFunc computes an addressing mode's effective operand, advancing
// PC past any operand bytes it consumes.
type AddrModeFunc func(c *Chip) Operand

// addrImplicit implements IMP: no operand, nothing to advance beyond the
// opcode byte already consumed by Step.
func addrImplicit(c *Chip) Operand {
	return Operand{Kind: Implicit}
}

// addrAccumulator implements ACC.
func addrAccumulator(c *Chip) Operand {
	return Operand{Kind: Accumulator, Value: c.A}
}

// addrImmediate implements IMM.
func addrImmediate(c *Chip) Operand {
	addr := c.PC
	c.PC++
	return Operand{Kind: Immediate, Value: c.read(addr)}
}

// addrZeroPage implements ZPG.
func addrZeroPage(c *Chip) Operand {
	addr := uint16(c.read(c.PC))
	c.PC++
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrZeroPageX implements ZPX. The index sum is truncated to 8 bits so
// it can never leave page zero, a hardware quirk callers depend on.
func addrZeroPageX(c *Chip) Operand {
	addr := uint16((c.read(c.PC) + c.X) & 0xFF)
	c.PC++
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrZeroPageY implements ZPY, the Y-indexed twin of ZPX.
func addrZeroPageY(c *Chip) Operand {
	addr := uint16((c.read(c.PC) + c.Y) & 0xFF)
	c.PC++
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrRelative implements REL: reads the signed branch displacement and
// sign-extends it to 16 bits. Branch instructions add this to PC; the
// unsigned wraparound of uint16 addition naturally implements the
// modulo-2^16 PC wrap spec.md requires.
func addrRelative(c *Chip) Operand {
	d := c.read(c.PC)
	c.PC++
	off := uint16(d)
	if d&0x80 != 0 {
		off |= 0xFF00
	}
	return Operand{Kind: Memory, Addr: off}
}

// addrAbsolute implements ABS.
func addrAbsolute(c *Chip) Operand {
	addr := c.read16(c.PC)
	c.PC += 2
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrAbsoluteX implements ABX.
func addrAbsoluteX(c *Chip) Operand {
	addr := c.read16(c.PC) + uint16(c.X)
	c.PC += 2
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrAbsoluteY implements ABY.
func addrAbsoluteY(c *Chip) Operand {
	addr := c.read16(c.PC) + uint16(c.Y)
	c.PC += 2
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrIndirect implements IND, used only by JMP (d). It reproduces the
// classic 6502 page-wrap bug: the high byte of the target is fetched from
// the same page as the low byte, so a pointer at a page boundary
// (0xXXFF) wraps back to 0xXX00 instead of carrying into the next page.
func addrIndirect(c *Chip) Operand {
	ptr := c.read16(c.PC)
	c.PC += 2
	lo := c.read(ptr)
	hi := c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
	addr := uint16(hi)<<8 | uint16(lo)
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrIndirectX implements IDX ((d,x)): the zero-page pointer fetch wraps
// within page zero both for the index addition and for the pointer's
// high byte.
func addrIndirectX(c *Chip) Operand {
	ptr := uint16((c.read(c.PC) + c.X) & 0xFF)
	c.PC++
	lo := c.read(ptr)
	hi := c.read((ptr + 1) & 0xFF)
	addr := uint16(hi)<<8 | uint16(lo)
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}

// addrIndirectY implements IDY ((d),y): the zero-page pointer fetch wraps
// within page zero, but Y is added to the resulting 16 bit address
// without any page restriction.
func addrIndirectY(c *Chip) Operand {
	b := uint16(c.read(c.PC))
	c.PC++
	lo := c.read(b)
	hi := c.read((b & 0xFF00) | ((b + 1) & 0xFF))
	addr := (uint16(hi)<<8 | uint16(lo)) + uint16(c.Y)
	return Operand{Kind: Memory, Addr: addr, Value: c.read(addr)}
}
