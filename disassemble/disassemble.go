// Package disassemble renders the documented 6502 opcodes this machine
// executes as human readable assembly listings, driven by the same
// opcode table the cpu package dispatches on.
package disassemble

import (
	"fmt"

	"github.com/corestone/apple2e/cpu"
)

// Reader is the minimal capability the disassembler needs: byte-at-a-time
// access to the address space it's rendering. cpu.Bus and memory.Bus both
// satisfy this trivially.
type Reader interface {
	Read(addr uint16) uint8
}

// Step disassembles the instruction at pc and returns its text rendering
// alongside the number of bytes (opcode plus operand) it occupies, so a
// caller can walk a region of memory one instruction at a time. It does
// not follow jumps or branches; a JMP encountered mid-listing is rendered
// in place like any other instruction.
func Step(pc uint16, r Reader) (string, int) {
	opcode := r.Read(pc)
	mnemonic, mode := cpu.Lookup(opcode)
	operandLen := cpu.OperandBytes(mode)

	b1 := r.Read(pc + 1)
	b2 := r.Read(pc + 2)

	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	switch mode {
	case "IMM":
		out += fmt.Sprintf("%.2X      %s #$%.2X     ", b1, mnemonic, b1)
	case "ZPG":
		out += fmt.Sprintf("%.2X      %s $%.2X      ", b1, mnemonic, b1)
	case "ZPX":
		out += fmt.Sprintf("%.2X      %s $%.2X,X    ", b1, mnemonic, b1)
	case "ZPY":
		out += fmt.Sprintf("%.2X      %s $%.2X,Y    ", b1, mnemonic, b1)
	case "IDX":
		out += fmt.Sprintf("%.2X      %s ($%.2X,X)  ", b1, mnemonic, b1)
	case "IDY":
		out += fmt.Sprintf("%.2X      %s ($%.2X),Y  ", b1, mnemonic, b1)
	case "ABS":
		out += fmt.Sprintf("%.2X %.2X   %s $%.2X%.2X    ", b1, b2, mnemonic, b2, b1)
	case "ABX":
		out += fmt.Sprintf("%.2X %.2X   %s $%.2X%.2X,X  ", b1, b2, mnemonic, b2, b1)
	case "ABY":
		out += fmt.Sprintf("%.2X %.2X   %s $%.2X%.2X,Y  ", b1, b2, mnemonic, b2, b1)
	case "IND":
		out += fmt.Sprintf("%.2X %.2X   %s ($%.2X%.2X)  ", b1, b2, mnemonic, b2, b1)
	case "REL":
		target := pc + 2 + uint16(int16(int8(b1)))
		out += fmt.Sprintf("%.2X      %s $%.2X ($%.4X) ", b1, mnemonic, b1, target)
	case "ACC":
		out += fmt.Sprintf("        %s A           ", mnemonic)
	default: // IMP
		out += fmt.Sprintf("        %s           ", mnemonic)
	}
	return out, operandLen + 1
}
