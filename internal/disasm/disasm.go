// Package disasm turns a fetched opcode stream into mnemonic+operand text
// for debug tooling (spec §2 "Disassembler"). It is independent of
// internal/cpu's dispatch table so the debug build never pays for (or
// depends on) the execution machinery — grounded on the teacher's
// nes/debug_console.go, which prints raw register state ad hoc; this
// package gives that same debugging use case a real mnemonic table instead.
package disasm

import "fmt"

type mode int

const (
	implied mode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	absolute
	absoluteX
	absoluteY
	indirectX
	indirectY
	indirect
	relative
)

type entry struct {
	mnemonic string
	mode     mode
	size     uint16
}

// table is independently maintained from internal/cpu's opcode table; the
// two must describe the same 6502 encoding, but keeping them separate
// avoids forcing internal/cpu to export its dispatch internals just for
// debug-printing. One width differs: BRK is listed here as 1 byte, while
// internal/cpu gives it 2 so that it skips its padding byte.
var table = buildTable()

// Bus is the minimal read-only view a disassembler needs.
type Bus interface {
	Read(address uint16) byte
}

// Instruction is one decoded instruction's text form and byte width.
type Instruction struct {
	Text string
	Size uint16
}

// Disassemble decodes the instruction at pc into mnemonic+operand text,
// e.g. "LDA #$10", "JMP ($02FF)", "BEQ $8010".
func Disassemble(bus Bus, pc uint16) Instruction {
	opcode := bus.Read(pc)
	e := table[opcode]
	switch e.size {
	case 1:
		return Instruction{Text: formatImplied(e), Size: 1}
	case 2:
		operand := bus.Read(pc + 1)
		return Instruction{Text: formatOneByte(e, pc, operand), Size: 2}
	default:
		lo := bus.Read(pc + 1)
		hi := bus.Read(pc + 2)
		operand := uint16(hi)<<8 | uint16(lo)
		return Instruction{Text: formatTwoByte(e, operand), Size: 3}
	}
}

func formatImplied(e entry) string {
	if e.mode == accumulator {
		return e.mnemonic + " A"
	}
	return e.mnemonic
}

func formatOneByte(e entry, pc uint16, operand byte) string {
	switch e.mode {
	case immediate:
		return fmt.Sprintf("%s #$%02X", e.mnemonic, operand)
	case zeroPage:
		return fmt.Sprintf("%s $%02X", e.mnemonic, operand)
	case zeroPageX:
		return fmt.Sprintf("%s $%02X,X", e.mnemonic, operand)
	case zeroPageY:
		return fmt.Sprintf("%s $%02X,Y", e.mnemonic, operand)
	case indirectX:
		return fmt.Sprintf("%s ($%02X,X)", e.mnemonic, operand)
	case indirectY:
		return fmt.Sprintf("%s ($%02X),Y", e.mnemonic, operand)
	case relative:
		target := pc + 2 + uint16(int8(operand))
		return fmt.Sprintf("%s $%04X", e.mnemonic, target)
	default:
		return fmt.Sprintf("%s $%02X", e.mnemonic, operand)
	}
}

func formatTwoByte(e entry, operand uint16) string {
	switch e.mode {
	case absoluteX:
		return fmt.Sprintf("%s $%04X,X", e.mnemonic, operand)
	case absoluteY:
		return fmt.Sprintf("%s $%04X,Y", e.mnemonic, operand)
	case indirect:
		return fmt.Sprintf("%s ($%04X)", e.mnemonic, operand)
	default:
		return fmt.Sprintf("%s $%04X", e.mnemonic, operand)
	}
}

// buildTable names every official opcode plus the documented illegal ones
// (spec §4.1 "Illegal opcodes"); unassigned slots disassemble as unofficial
// NOPs/KILs the way a real disassembler reports undocumented encodings.
func buildTable() [256]entry {
	var t [256]entry
	for i := range t {
		t[i] = entry{"NOP", implied, 1}
	}
	set := func(op byte, name string, m mode, size uint16) {
		t[op] = entry{name, m, size}
	}

	official := []struct {
		op   byte
		name string
		m    mode
		size uint16
	}{
		{0x00, "BRK", implied, 1}, {0x01, "ORA", indirectX, 2}, {0x05, "ORA", zeroPage, 2},
		{0x06, "ASL", zeroPage, 2}, {0x08, "PHP", implied, 1}, {0x09, "ORA", immediate, 2},
		{0x0A, "ASL", accumulator, 1}, {0x0D, "ORA", absolute, 3}, {0x0E, "ASL", absolute, 3},
		{0x10, "BPL", relative, 2}, {0x11, "ORA", indirectY, 2}, {0x15, "ORA", zeroPageX, 2},
		{0x16, "ASL", zeroPageX, 2}, {0x18, "CLC", implied, 1}, {0x19, "ORA", absoluteY, 3},
		{0x1D, "ORA", absoluteX, 3}, {0x1E, "ASL", absoluteX, 3},
		{0x20, "JSR", absolute, 3}, {0x21, "AND", indirectX, 2}, {0x24, "BIT", zeroPage, 2},
		{0x25, "AND", zeroPage, 2}, {0x26, "ROL", zeroPage, 2}, {0x28, "PLP", implied, 1},
		{0x29, "AND", immediate, 2}, {0x2A, "ROL", accumulator, 1}, {0x2C, "BIT", absolute, 3},
		{0x2D, "AND", absolute, 3}, {0x2E, "ROL", absolute, 3},
		{0x30, "BMI", relative, 2}, {0x31, "AND", indirectY, 2}, {0x35, "AND", zeroPageX, 2},
		{0x36, "ROL", zeroPageX, 2}, {0x38, "SEC", implied, 1}, {0x39, "AND", absoluteY, 3},
		{0x3D, "AND", absoluteX, 3}, {0x3E, "ROL", absoluteX, 3},
		{0x40, "RTI", implied, 1}, {0x41, "EOR", indirectX, 2}, {0x45, "EOR", zeroPage, 2},
		{0x46, "LSR", zeroPage, 2}, {0x48, "PHA", implied, 1}, {0x49, "EOR", immediate, 2},
		{0x4A, "LSR", accumulator, 1}, {0x4C, "JMP", absolute, 3}, {0x4D, "EOR", absolute, 3},
		{0x4E, "LSR", absolute, 3},
		{0x50, "BVC", relative, 2}, {0x51, "EOR", indirectY, 2}, {0x55, "EOR", zeroPageX, 2},
		{0x56, "LSR", zeroPageX, 2}, {0x58, "CLI", implied, 1}, {0x59, "EOR", absoluteY, 3},
		{0x5D, "EOR", absoluteX, 3}, {0x5E, "LSR", absoluteX, 3},
		{0x60, "RTS", implied, 1}, {0x61, "ADC", indirectX, 2}, {0x65, "ADC", zeroPage, 2},
		{0x66, "ROR", zeroPage, 2}, {0x68, "PLA", implied, 1}, {0x69, "ADC", immediate, 2},
		{0x6A, "ROR", accumulator, 1}, {0x6C, "JMP", indirect, 3}, {0x6D, "ADC", absolute, 3},
		{0x6E, "ROR", absolute, 3},
		{0x70, "BVS", relative, 2}, {0x71, "ADC", indirectY, 2}, {0x75, "ADC", zeroPageX, 2},
		{0x76, "ROR", zeroPageX, 2}, {0x78, "SEI", implied, 1}, {0x79, "ADC", absoluteY, 3},
		{0x7D, "ADC", absoluteX, 3}, {0x7E, "ROR", absoluteX, 3},
		{0x81, "STA", indirectX, 2}, {0x84, "STY", zeroPage, 2}, {0x85, "STA", zeroPage, 2},
		{0x86, "STX", zeroPage, 2}, {0x88, "DEY", implied, 1}, {0x8A, "TXA", implied, 1},
		{0x8C, "STY", absolute, 3}, {0x8D, "STA", absolute, 3}, {0x8E, "STX", absolute, 3},
		{0x90, "BCC", relative, 2}, {0x91, "STA", indirectY, 2}, {0x94, "STY", zeroPageX, 2},
		{0x95, "STA", zeroPageX, 2}, {0x96, "STX", zeroPageY, 2}, {0x98, "TYA", implied, 1},
		{0x99, "STA", absoluteY, 3}, {0x9A, "TXS", implied, 1}, {0x9D, "STA", absoluteX, 3},
		{0xA0, "LDY", immediate, 2}, {0xA1, "LDA", indirectX, 2}, {0xA2, "LDX", immediate, 2},
		{0xA4, "LDY", zeroPage, 2}, {0xA5, "LDA", zeroPage, 2}, {0xA6, "LDX", zeroPage, 2},
		{0xA8, "TAY", implied, 1}, {0xA9, "LDA", immediate, 2}, {0xAA, "TAX", implied, 1},
		{0xAC, "LDY", absolute, 3}, {0xAD, "LDA", absolute, 3}, {0xAE, "LDX", absolute, 3},
		{0xB0, "BCS", relative, 2}, {0xB1, "LDA", indirectY, 2}, {0xB4, "LDY", zeroPageX, 2},
		{0xB5, "LDA", zeroPageX, 2}, {0xB6, "LDX", zeroPageY, 2}, {0xB8, "CLV", implied, 1},
		{0xB9, "LDA", absoluteY, 3}, {0xBA, "TSX", implied, 1}, {0xBC, "LDY", absoluteX, 3},
		{0xBD, "LDA", absoluteX, 3}, {0xBE, "LDX", absoluteY, 3},
		{0xC0, "CPY", immediate, 2}, {0xC1, "CMP", indirectX, 2}, {0xC4, "CPY", zeroPage, 2},
		{0xC5, "CMP", zeroPage, 2}, {0xC6, "DEC", zeroPage, 2}, {0xC8, "INY", implied, 1},
		{0xC9, "CMP", immediate, 2}, {0xCA, "DEX", implied, 1}, {0xCC, "CPY", absolute, 3},
		{0xCD, "CMP", absolute, 3}, {0xCE, "DEC", absolute, 3},
		{0xD0, "BNE", relative, 2}, {0xD1, "CMP", indirectY, 2}, {0xD5, "CMP", zeroPageX, 2},
		{0xD6, "DEC", zeroPageX, 2}, {0xD8, "CLD", implied, 1}, {0xD9, "CMP", absoluteY, 3},
		{0xDD, "CMP", absoluteX, 3}, {0xDE, "DEC", absoluteX, 3},
		{0xE0, "CPX", immediate, 2}, {0xE1, "SBC", indirectX, 2}, {0xE4, "CPX", zeroPage, 2},
		{0xE5, "SBC", zeroPage, 2}, {0xE6, "INC", zeroPage, 2}, {0xE8, "INX", implied, 1},
		{0xE9, "SBC", immediate, 2}, {0xEA, "NOP", implied, 1}, {0xEC, "CPX", absolute, 3},
		{0xED, "SBC", absolute, 3}, {0xEE, "INC", absolute, 3},
		{0xF0, "BEQ", relative, 2}, {0xF1, "SBC", indirectY, 2}, {0xF5, "SBC", zeroPageX, 2},
		{0xF6, "INC", zeroPageX, 2}, {0xF8, "SED", implied, 1}, {0xF9, "SBC", absoluteY, 3},
		{0xFD, "SBC", absoluteX, 3}, {0xFE, "INC", absoluteX, 3},
	}
	for _, e := range official {
		set(e.op, e.name, e.m, e.size)
	}

	illegal := []struct {
		op   byte
		name string
		m    mode
		size uint16
	}{
		{0x03, "SLO", indirectX, 2}, {0x07, "SLO", zeroPage, 2}, {0x0B, "ANC", immediate, 2},
		{0x0F, "SLO", absolute, 3}, {0x13, "SLO", indirectY, 2}, {0x17, "SLO", zeroPageX, 2},
		{0x1B, "SLO", absoluteY, 3}, {0x1F, "SLO", absoluteX, 3},
		{0x23, "RLA", indirectX, 2}, {0x27, "RLA", zeroPage, 2}, {0x2B, "ANC", immediate, 2},
		{0x2F, "RLA", absolute, 3}, {0x33, "RLA", indirectY, 2}, {0x37, "RLA", zeroPageX, 2},
		{0x3B, "RLA", absoluteY, 3}, {0x3F, "RLA", absoluteX, 3},
		{0x43, "SRE", indirectX, 2}, {0x47, "SRE", zeroPage, 2}, {0x4B, "ALR", immediate, 2},
		{0x4F, "SRE", absolute, 3}, {0x53, "SRE", indirectY, 2}, {0x57, "SRE", zeroPageX, 2},
		{0x5B, "SRE", absoluteY, 3}, {0x5F, "SRE", absoluteX, 3},
		{0x63, "RRA", indirectX, 2}, {0x67, "RRA", zeroPage, 2}, {0x6B, "ARR", immediate, 2},
		{0x6F, "RRA", absolute, 3}, {0x73, "RRA", indirectY, 2}, {0x77, "RRA", zeroPageX, 2},
		{0x7B, "RRA", absoluteY, 3}, {0x7F, "RRA", absoluteX, 3},
		{0x83, "SAX", indirectX, 2}, {0x87, "SAX", zeroPage, 2}, {0x8F, "SAX", absolute, 3},
		{0x97, "SAX", zeroPageY, 2},
		{0xA3, "LAX", indirectX, 2}, {0xA7, "LAX", zeroPage, 2}, {0xAF, "LAX", absolute, 3},
		{0xB3, "LAX", indirectY, 2}, {0xB7, "LAX", zeroPageY, 2}, {0xBF, "LAX", absoluteY, 3},
		{0xC3, "DCP", indirectX, 2}, {0xC7, "DCP", zeroPage, 2}, {0xCB, "AXS", immediate, 2},
		{0xCF, "DCP", absolute, 3}, {0xD3, "DCP", indirectY, 2}, {0xD7, "DCP", zeroPageX, 2},
		{0xDB, "DCP", absoluteY, 3}, {0xDF, "DCP", absoluteX, 3},
		{0xE3, "ISC", indirectX, 2}, {0xE7, "ISC", zeroPage, 2}, {0xEB, "SBC", immediate, 2},
		{0xEF, "ISC", absolute, 3}, {0xF3, "ISC", indirectY, 2}, {0xF7, "ISC", zeroPageX, 2},
		{0xFB, "ISC", absoluteY, 3}, {0xFF, "ISC", absoluteX, 3},
		{0x04, "NOP", zeroPage, 2}, {0x44, "NOP", zeroPage, 2}, {0x64, "NOP", zeroPage, 2},
		{0x0C, "NOP", absolute, 3}, {0x14, "NOP", zeroPageX, 2}, {0x34, "NOP", zeroPageX, 2},
		{0x54, "NOP", zeroPageX, 2}, {0x74, "NOP", zeroPageX, 2}, {0xD4, "NOP", zeroPageX, 2},
		{0xF4, "NOP", zeroPageX, 2}, {0x1A, "NOP", implied, 1}, {0x3A, "NOP", implied, 1},
		{0x5A, "NOP", implied, 1}, {0x7A, "NOP", implied, 1}, {0xDA, "NOP", implied, 1},
		{0xFA, "NOP", implied, 1}, {0x80, "NOP", immediate, 2}, {0x82, "NOP", immediate, 2},
		{0x89, "NOP", immediate, 2}, {0xC2, "NOP", immediate, 2}, {0xE2, "NOP", immediate, 2},
		{0x1C, "NOP", absoluteX, 3}, {0x3C, "NOP", absoluteX, 3}, {0x5C, "NOP", absoluteX, 3},
		{0x7C, "NOP", absoluteX, 3}, {0xDC, "NOP", absoluteX, 3}, {0xFC, "NOP", absoluteX, 3},
	}
	for _, e := range illegal {
		set(e.op, e.name, e.m, e.size)
	}

	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, "KIL", implied, 1)
	}

	return t
}
