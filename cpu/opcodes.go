package cpu

// opEntry pairs an opcode byte's addressing mode with its instruction
// semantics, plus the metadata the disassembler needs to render it
// without having to re-derive addressing-mode byte counts from scratch.
type opEntry struct {
	mnemonic string
	mode     AddrModeFunc
	exec     ExecFunc
	// modeName is the addressing-mode tag from spec.md's table (IMP,
	// ACC, IMM, ZPG, ZPX, ZPY, REL, ABS, ABX, ABY, IND, IDX, IDY), used
	// only for disassembly formatting.
	modeName string
}

// undefined is the entry every unassigned opcode byte maps to: an
// implicit no-op, per spec.md §4.4/§4.5.
var undefined = opEntry{mnemonic: "???", mode: addrImplicit, exec: iUND, modeName: "IMP"}

// OperandBytes returns how many bytes follow an opcode byte encoded with
// the given addressing-mode tag (IMP/ACC consume none, most modes
// consume one, the four two-byte-operand modes consume two).
func OperandBytes(modeName string) int {
	switch modeName {
	case "ABS", "ABX", "ABY", "IND":
		return 2
	case "IMP", "ACC":
		return 0
	default:
		return 1
	}
}

// Lookup returns the mnemonic and addressing-mode tag for an opcode byte,
// for callers (the disassembler) that need opcode metadata without
// pulling in execution semantics.
func Lookup(opcode uint8) (mnemonic, modeName string) {
	e := opcodeTable[opcode]
	return e.mnemonic, e.modeName
}

// opcodeTable is the canonical NMOS 6502 documented-opcode encoding:
// http://www.obelisk.me.uk/6502/reference.html and
// http://www.masswerk.at/6502/6502_instruction_set.html agree on this
// mapping. Unassigned bytes keep `undefined`, which init writes into
// every entry before filling in the assigned ones.
var opcodeTable [256]opEntry

func op(b byte, mnemonic string, mode AddrModeFunc, exec ExecFunc, modeName string) {
	opcodeTable[b] = opEntry{mnemonic: mnemonic, mode: mode, exec: exec, modeName: modeName}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = undefined
	}

	// 0x0_
	op(0x00, "BRK", addrImplicit, iBRK, "IMP")
	op(0x01, "ORA", addrIndirectX, iORA, "IDX")
	op(0x05, "ORA", addrZeroPage, iORA, "ZPG")
	op(0x06, "ASL", addrZeroPage, iASL, "ZPG")
	op(0x08, "PHP", addrImplicit, iPHP, "IMP")
	op(0x09, "ORA", addrImmediate, iORA, "IMM")
	op(0x0A, "ASL", addrAccumulator, iASL, "ACC")
	op(0x0D, "ORA", addrAbsolute, iORA, "ABS")
	op(0x0E, "ASL", addrAbsolute, iASL, "ABS")

	// 0x1_
	op(0x10, "BPL", addrRelative, iBPL, "REL")
	op(0x11, "ORA", addrIndirectY, iORA, "IDY")
	op(0x15, "ORA", addrZeroPageX, iORA, "ZPX")
	op(0x16, "ASL", addrZeroPageX, iASL, "ZPX")
	op(0x18, "CLC", addrImplicit, iCLC, "IMP")
	op(0x19, "ORA", addrAbsoluteY, iORA, "ABY")
	op(0x1D, "ORA", addrAbsoluteX, iORA, "ABX")
	op(0x1E, "ASL", addrAbsoluteX, iASL, "ABX")

	// 0x2_
	op(0x20, "JSR", addrAbsolute, iJSR, "ABS")
	op(0x21, "AND", addrIndirectX, iAND, "IDX")
	op(0x24, "BIT", addrZeroPage, iBIT, "ZPG")
	op(0x25, "AND", addrZeroPage, iAND, "ZPG")
	op(0x26, "ROL", addrZeroPage, iROL, "ZPG")
	op(0x28, "PLP", addrImplicit, iPLP, "IMP")
	op(0x29, "AND", addrImmediate, iAND, "IMM")
	op(0x2A, "ROL", addrAccumulator, iROL, "ACC")
	op(0x2C, "BIT", addrAbsolute, iBIT, "ABS")
	op(0x2D, "AND", addrAbsolute, iAND, "ABS")
	op(0x2E, "ROL", addrAbsolute, iROL, "ABS")

	// 0x3_
	op(0x30, "BMI", addrRelative, iBMI, "REL")
	op(0x31, "AND", addrIndirectY, iAND, "IDY")
	op(0x35, "AND", addrZeroPageX, iAND, "ZPX")
	op(0x36, "ROL", addrZeroPageX, iROL, "ZPX")
	op(0x38, "SEC", addrImplicit, iSEC, "IMP")
	op(0x39, "AND", addrAbsoluteY, iAND, "ABY")
	op(0x3D, "AND", addrAbsoluteX, iAND, "ABX")
	op(0x3E, "ROL", addrAbsoluteX, iROL, "ABX")

	// 0x4_
	op(0x40, "RTI", addrImplicit, iRTI, "IMP")
	op(0x41, "EOR", addrIndirectX, iEOR, "IDX")
	op(0x45, "EOR", addrZeroPage, iEOR, "ZPG")
	op(0x46, "LSR", addrZeroPage, iLSR, "ZPG")
	op(0x48, "PHA", addrImplicit, iPHA, "IMP")
	op(0x49, "EOR", addrImmediate, iEOR, "IMM")
	op(0x4A, "LSR", addrAccumulator, iLSR, "ACC")
	op(0x4C, "JMP", addrAbsolute, iJMP, "ABS")
	op(0x4D, "EOR", addrAbsolute, iEOR, "ABS")
	op(0x4E, "LSR", addrAbsolute, iLSR, "ABS")

	// 0x5_
	op(0x50, "BVC", addrRelative, iBVC, "REL")
	op(0x51, "EOR", addrIndirectY, iEOR, "IDY")
	op(0x55, "EOR", addrZeroPageX, iEOR, "ZPX")
	op(0x56, "LSR", addrZeroPageX, iLSR, "ZPX")
	op(0x58, "CLI", addrImplicit, iCLI, "IMP")
	op(0x59, "EOR", addrAbsoluteY, iEOR, "ABY")
	op(0x5D, "EOR", addrAbsoluteX, iEOR, "ABX")
	op(0x5E, "LSR", addrAbsoluteX, iLSR, "ABX")

	// 0x6_
	op(0x60, "RTS", addrImplicit, iRTS, "IMP")
	op(0x61, "ADC", addrIndirectX, iADC, "IDX")
	op(0x65, "ADC", addrZeroPage, iADC, "ZPG")
	op(0x66, "ROR", addrZeroPage, iROR, "ZPG")
	op(0x68, "PLA", addrImplicit, iPLA, "IMP")
	op(0x69, "ADC", addrImmediate, iADC, "IMM")
	op(0x6A, "ROR", addrAccumulator, iROR, "ACC")
	op(0x6C, "JMP", addrIndirect, iJMP, "IND")
	op(0x6D, "ADC", addrAbsolute, iADC, "ABS")
	op(0x6E, "ROR", addrAbsolute, iROR, "ABS")

	// 0x7_
	op(0x70, "BVS", addrRelative, iBVS, "REL")
	op(0x71, "ADC", addrIndirectY, iADC, "IDY")
	op(0x75, "ADC", addrZeroPageX, iADC, "ZPX")
	op(0x76, "ROR", addrZeroPageX, iROR, "ZPX")
	op(0x78, "SEI", addrImplicit, iSEI, "IMP")
	op(0x79, "ADC", addrAbsoluteY, iADC, "ABY")
	op(0x7D, "ADC", addrAbsoluteX, iADC, "ABX")
	op(0x7E, "ROR", addrAbsoluteX, iROR, "ABX")

	// 0x8_
	op(0x81, "STA", addrIndirectX, iSTA, "IDX")
	op(0x84, "STY", addrZeroPage, iSTY, "ZPG")
	op(0x85, "STA", addrZeroPage, iSTA, "ZPG")
	op(0x86, "STX", addrZeroPage, iSTX, "ZPG")
	op(0x88, "DEY", addrImplicit, iDEY, "IMP")
	op(0x8A, "TXA", addrImplicit, iTXA, "IMP")
	op(0x8C, "STY", addrAbsolute, iSTY, "ABS")
	op(0x8D, "STA", addrAbsolute, iSTA, "ABS")
	op(0x8E, "STX", addrAbsolute, iSTX, "ABS")

	// 0x9_
	op(0x90, "BCC", addrRelative, iBCC, "REL")
	op(0x91, "STA", addrIndirectY, iSTA, "IDY")
	op(0x94, "STY", addrZeroPageX, iSTY, "ZPX")
	op(0x95, "STA", addrZeroPageX, iSTA, "ZPX")
	op(0x96, "STX", addrZeroPageY, iSTX, "ZPY")
	op(0x98, "TYA", addrImplicit, iTYA, "IMP")
	op(0x99, "STA", addrAbsoluteY, iSTA, "ABY")
	op(0x9A, "TXS", addrImplicit, iTXS, "IMP")
	op(0x9D, "STA", addrAbsoluteX, iSTA, "ABX")

	// 0xA_
	op(0xA0, "LDY", addrImmediate, iLDY, "IMM")
	op(0xA1, "LDA", addrIndirectX, iLDA, "IDX")
	op(0xA2, "LDX", addrImmediate, iLDX, "IMM")
	op(0xA4, "LDY", addrZeroPage, iLDY, "ZPG")
	op(0xA5, "LDA", addrZeroPage, iLDA, "ZPG")
	op(0xA6, "LDX", addrZeroPage, iLDX, "ZPG")
	op(0xA8, "TAY", addrImplicit, iTAY, "IMP")
	op(0xA9, "LDA", addrImmediate, iLDA, "IMM")
	op(0xAA, "TAX", addrImplicit, iTAX, "IMP")
	op(0xAC, "LDY", addrAbsolute, iLDY, "ABS")
	op(0xAD, "LDA", addrAbsolute, iLDA, "ABS")
	op(0xAE, "LDX", addrAbsolute, iLDX, "ABS")

	// 0xB_
	op(0xB0, "BCS", addrRelative, iBCS, "REL")
	op(0xB1, "LDA", addrIndirectY, iLDA, "IDY")
	op(0xB4, "LDY", addrZeroPageX, iLDY, "ZPX")
	op(0xB5, "LDA", addrZeroPageX, iLDA, "ZPX")
	op(0xB6, "LDX", addrZeroPageY, iLDX, "ZPY")
	op(0xB8, "CLV", addrImplicit, iCLV, "IMP")
	op(0xB9, "LDA", addrAbsoluteY, iLDA, "ABY")
	op(0xBA, "TSX", addrImplicit, iTSX, "IMP")
	op(0xBC, "LDY", addrAbsoluteX, iLDY, "ABX")
	op(0xBD, "LDA", addrAbsoluteX, iLDA, "ABX")
	op(0xBE, "LDX", addrAbsoluteY, iLDX, "ABY")

	// 0xC_
	op(0xC0, "CPY", addrImmediate, iCPY, "IMM")
	op(0xC1, "CMP", addrIndirectX, iCMP, "IDX")
	op(0xC4, "CPY", addrZeroPage, iCPY, "ZPG")
	op(0xC5, "CMP", addrZeroPage, iCMP, "ZPG")
	op(0xC6, "DEC", addrZeroPage, iDEC, "ZPG")
	op(0xC8, "INY", addrImplicit, iINY, "IMP")
	op(0xC9, "CMP", addrImmediate, iCMP, "IMM")
	op(0xCA, "DEX", addrImplicit, iDEX, "IMP")
	op(0xCC, "CPY", addrAbsolute, iCPY, "ABS")
	op(0xCD, "CMP", addrAbsolute, iCMP, "ABS")
	op(0xCE, "DEC", addrAbsolute, iDEC, "ABS")

	// 0xD_
	op(0xD0, "BNE", addrRelative, iBNE, "REL")
	op(0xD1, "CMP", addrIndirectY, iCMP, "IDY")
	op(0xD5, "CMP", addrZeroPageX, iCMP, "ZPX")
	op(0xD6, "DEC", addrZeroPageX, iDEC, "ZPX")
	op(0xD8, "CLD", addrImplicit, iCLD, "IMP")
	op(0xD9, "CMP", addrAbsoluteY, iCMP, "ABY")
	op(0xDD, "CMP", addrAbsoluteX, iCMP, "ABX")
	op(0xDE, "DEC", addrAbsoluteX, iDEC, "ABX")

	// 0xE_
	op(0xE0, "CPX", addrImmediate, iCPX, "IMM")
	op(0xE1, "SBC", addrIndirectX, iSBC, "IDX")
	op(0xE4, "CPX", addrZeroPage, iCPX, "ZPG")
	op(0xE5, "SBC", addrZeroPage, iSBC, "ZPG")
	op(0xE6, "INC", addrZeroPage, iINC, "ZPG")
	op(0xE8, "INX", addrImplicit, iINX, "IMP")
	op(0xE9, "SBC", addrImmediate, iSBC, "IMM")
	op(0xEA, "NOP", addrImplicit, iNOP, "IMP")
	op(0xEC, "CPX", addrAbsolute, iCPX, "ABS")
	op(0xED, "SBC", addrAbsolute, iSBC, "ABS")
	op(0xEE, "INC", addrAbsolute, iINC, "ABS")

	// 0xF_
	op(0xF0, "BEQ", addrRelative, iBEQ, "REL")
	op(0xF1, "SBC", addrIndirectY, iSBC, "IDY")
	op(0xF5, "SBC", addrZeroPageX, iSBC, "ZPX")
	op(0xF6, "INC", addrZeroPageX, iINC, "ZPX")
	op(0xF8, "SED", addrImplicit, iSED, "IMP")
	op(0xF9, "SBC", addrAbsoluteY, iSBC, "ABY")
	op(0xFD, "SBC", addrAbsoluteX, iSBC, "ABX")
	op(0xFE, "INC", addrAbsoluteX, iINC, "ABX")
}
