package cpu

// buildOpcodeTable returns the 256-entry dispatch table indexed by opcode
// byte, the direct equivalent of the teacher's createInstructions() (spec
// §9 "Opcode dispatch"), generalized to the spec's full cycle-accounting
// and illegal-opcode requirements.
func (c *CPU) buildOpcodeTable() [256]instruction {
	const (
		im = modeImplied
		ac = modeAccumulator
		mm = modeImmediate
		zp = modeZeroPage
		zx = modeZeroPageX
		zy = modeZeroPageY
		ab = modeAbsolute
		ax = modeAbsoluteX
		ay = modeAbsoluteY
		ix = modeIndirectX
		iy = modeIndirectY
		id = modeIndirect
		re = modeRelative
	)
	i := func(name string, mode addressingMode, size uint16, cycles int, pageCross bool, fn func(*CPU, addressingMode, operand)) instruction {
		return instruction{mnemonic: name, mode: mode, size: size, cycles: cycles, pageCrossExtra: pageCross, execute: fn}
	}
	var t [256]instruction
	for idx := range t {
		t[idx] = i("NOP", im, 1, 2, false, opNOP)
	}

	t[0x00] = i("BRK", im, 2, 7, false, opBRK)
	t[0x01] = i("ORA", ix, 2, 6, false, opORA)
	t[0x03] = i("SLO", ix, 2, 8, false, opSLO)
	t[0x04] = i("NOP", zp, 2, 3, false, opNOP)
	t[0x05] = i("ORA", zp, 2, 3, false, opORA)
	t[0x06] = i("ASL", zp, 2, 5, false, opASL)
	t[0x07] = i("SLO", zp, 2, 5, false, opSLO)
	t[0x08] = i("PHP", im, 1, 3, false, opPHP)
	t[0x09] = i("ORA", mm, 2, 2, false, opORA)
	t[0x0A] = i("ASL", ac, 1, 2, false, opASL)
	t[0x0B] = i("ANC", mm, 2, 2, false, opANC)
	t[0x0C] = i("NOP", ab, 3, 4, false, opNOP)
	t[0x0D] = i("ORA", ab, 3, 4, false, opORA)
	t[0x0E] = i("ASL", ab, 3, 6, false, opASL)
	t[0x0F] = i("SLO", ab, 3, 6, false, opSLO)

	t[0x10] = i("BPL", re, 2, 2, false, opBPL)
	t[0x11] = i("ORA", iy, 2, 5, true, opORA)
	t[0x13] = i("SLO", iy, 2, 8, false, opSLO)
	t[0x14] = i("NOP", zx, 2, 4, false, opNOP)
	t[0x15] = i("ORA", zx, 2, 4, false, opORA)
	t[0x16] = i("ASL", zx, 2, 6, false, opASL)
	t[0x17] = i("SLO", zx, 2, 6, false, opSLO)
	t[0x18] = i("CLC", im, 1, 2, false, opCLC)
	t[0x19] = i("ORA", ay, 3, 4, true, opORA)
	t[0x1A] = i("NOP", im, 1, 2, false, opNOP)
	t[0x1B] = i("SLO", ay, 3, 7, false, opSLO)
	t[0x1C] = i("NOP", ax, 3, 4, true, opNOP)
	t[0x1D] = i("ORA", ax, 3, 4, true, opORA)
	t[0x1E] = i("ASL", ax, 3, 7, false, opASL)
	t[0x1F] = i("SLO", ax, 3, 7, false, opSLO)

	t[0x20] = i("JSR", ab, 3, 6, false, opJSR)
	t[0x21] = i("AND", ix, 2, 6, false, opAND)
	t[0x23] = i("RLA", ix, 2, 8, false, opRLA)
	t[0x24] = i("BIT", zp, 2, 3, false, opBIT)
	t[0x25] = i("AND", zp, 2, 3, false, opAND)
	t[0x26] = i("ROL", zp, 2, 5, false, opROL)
	t[0x27] = i("RLA", zp, 2, 5, false, opRLA)
	t[0x28] = i("PLP", im, 1, 4, false, opPLP)
	t[0x29] = i("AND", mm, 2, 2, false, opAND)
	t[0x2A] = i("ROL", ac, 1, 2, false, opROL)
	t[0x2B] = i("ANC", mm, 2, 2, false, opANC)
	t[0x2C] = i("BIT", ab, 3, 4, false, opBIT)
	t[0x2D] = i("AND", ab, 3, 4, false, opAND)
	t[0x2E] = i("ROL", ab, 3, 6, false, opROL)
	t[0x2F] = i("RLA", ab, 3, 6, false, opRLA)

	t[0x30] = i("BMI", re, 2, 2, false, opBMI)
	t[0x31] = i("AND", iy, 2, 5, true, opAND)
	t[0x33] = i("RLA", iy, 2, 8, false, opRLA)
	t[0x34] = i("NOP", zx, 2, 4, false, opNOP)
	t[0x35] = i("AND", zx, 2, 4, false, opAND)
	t[0x36] = i("ROL", zx, 2, 6, false, opROL)
	t[0x37] = i("RLA", zx, 2, 6, false, opRLA)
	t[0x38] = i("SEC", im, 1, 2, false, opSEC)
	t[0x39] = i("AND", ay, 3, 4, true, opAND)
	t[0x3A] = i("NOP", im, 1, 2, false, opNOP)
	t[0x3B] = i("RLA", ay, 3, 7, false, opRLA)
	t[0x3C] = i("NOP", ax, 3, 4, true, opNOP)
	t[0x3D] = i("AND", ax, 3, 4, true, opAND)
	t[0x3E] = i("ROL", ax, 3, 7, false, opROL)
	t[0x3F] = i("RLA", ax, 3, 7, false, opRLA)

	t[0x40] = i("RTI", im, 1, 6, false, opRTI)
	t[0x41] = i("EOR", ix, 2, 6, false, opEOR)
	t[0x43] = i("SRE", ix, 2, 8, false, opSRE)
	t[0x44] = i("NOP", zp, 2, 3, false, opNOP)
	t[0x45] = i("EOR", zp, 2, 3, false, opEOR)
	t[0x46] = i("LSR", zp, 2, 5, false, opLSR)
	t[0x47] = i("SRE", zp, 2, 5, false, opSRE)
	t[0x48] = i("PHA", im, 1, 3, false, opPHA)
	t[0x49] = i("EOR", mm, 2, 2, false, opEOR)
	t[0x4A] = i("LSR", ac, 1, 2, false, opLSR)
	t[0x4B] = i("ALR", mm, 2, 2, false, opUnstable)
	t[0x4C] = i("JMP", ab, 3, 3, false, opJMP)
	t[0x4D] = i("EOR", ab, 3, 4, false, opEOR)
	t[0x4E] = i("LSR", ab, 3, 6, false, opLSR)
	t[0x4F] = i("SRE", ab, 3, 6, false, opSRE)

	t[0x50] = i("BVC", re, 2, 2, false, opBVC)
	t[0x51] = i("EOR", iy, 2, 5, true, opEOR)
	t[0x53] = i("SRE", iy, 2, 8, false, opSRE)
	t[0x54] = i("NOP", zx, 2, 4, false, opNOP)
	t[0x55] = i("EOR", zx, 2, 4, false, opEOR)
	t[0x56] = i("LSR", zx, 2, 6, false, opLSR)
	t[0x57] = i("SRE", zx, 2, 6, false, opSRE)
	t[0x58] = i("CLI", im, 1, 2, false, opCLI)
	t[0x59] = i("EOR", ay, 3, 4, true, opEOR)
	t[0x5A] = i("NOP", im, 1, 2, false, opNOP)
	t[0x5B] = i("SRE", ay, 3, 7, false, opSRE)
	t[0x5C] = i("NOP", ax, 3, 4, true, opNOP)
	t[0x5D] = i("EOR", ax, 3, 4, true, opEOR)
	t[0x5E] = i("LSR", ax, 3, 7, false, opLSR)
	t[0x5F] = i("SRE", ax, 3, 7, false, opSRE)

	t[0x60] = i("RTS", im, 1, 6, false, opRTS)
	t[0x61] = i("ADC", ix, 2, 6, false, opADC)
	t[0x63] = i("RRA", ix, 2, 8, false, opRRA)
	t[0x64] = i("NOP", zp, 2, 3, false, opNOP)
	t[0x65] = i("ADC", zp, 2, 3, false, opADC)
	t[0x66] = i("ROR", zp, 2, 5, false, opROR)
	t[0x67] = i("RRA", zp, 2, 5, false, opRRA)
	t[0x68] = i("PLA", im, 1, 4, false, opPLA)
	t[0x69] = i("ADC", mm, 2, 2, false, opADC)
	t[0x6A] = i("ROR", ac, 1, 2, false, opROR)
	t[0x6B] = i("ARR", mm, 2, 2, false, opUnstable)
	t[0x6C] = i("JMP", id, 3, 5, false, opJMP)
	t[0x6D] = i("ADC", ab, 3, 4, false, opADC)
	t[0x6E] = i("ROR", ab, 3, 6, false, opROR)
	t[0x6F] = i("RRA", ab, 3, 6, false, opRRA)

	t[0x70] = i("BVS", re, 2, 2, false, opBVS)
	t[0x71] = i("ADC", iy, 2, 5, true, opADC)
	t[0x73] = i("RRA", iy, 2, 8, false, opRRA)
	t[0x74] = i("NOP", zx, 2, 4, false, opNOP)
	t[0x75] = i("ADC", zx, 2, 4, false, opADC)
	t[0x76] = i("ROR", zx, 2, 6, false, opROR)
	t[0x77] = i("RRA", zx, 2, 6, false, opRRA)
	t[0x78] = i("SEI", im, 1, 2, false, opSEI)
	t[0x79] = i("ADC", ay, 3, 4, true, opADC)
	t[0x7A] = i("NOP", im, 1, 2, false, opNOP)
	t[0x7B] = i("RRA", ay, 3, 7, false, opRRA)
	t[0x7C] = i("NOP", ax, 3, 4, true, opNOP)
	t[0x7D] = i("ADC", ax, 3, 4, true, opADC)
	t[0x7E] = i("ROR", ax, 3, 7, false, opROR)
	t[0x7F] = i("RRA", ax, 3, 7, false, opRRA)

	t[0x80] = i("NOP", mm, 2, 2, false, opNOP)
	t[0x81] = i("STA", ix, 2, 6, false, opSTA)
	t[0x82] = i("NOP", mm, 2, 2, false, opNOP)
	t[0x83] = i("SAX", ix, 2, 6, false, opSAX)
	t[0x84] = i("STY", zp, 2, 3, false, opSTY)
	t[0x85] = i("STA", zp, 2, 3, false, opSTA)
	t[0x86] = i("STX", zp, 2, 3, false, opSTX)
	t[0x87] = i("SAX", zp, 2, 3, false, opSAX)
	t[0x88] = i("DEY", im, 1, 2, false, opDEY)
	t[0x89] = i("NOP", mm, 2, 2, false, opNOP)
	t[0x8A] = i("TXA", im, 1, 2, false, opTXA)
	t[0x8C] = i("STY", ab, 3, 4, false, opSTY)
	t[0x8D] = i("STA", ab, 3, 4, false, opSTA)
	t[0x8E] = i("STX", ab, 3, 4, false, opSTX)
	t[0x8F] = i("SAX", ab, 3, 4, false, opSAX)

	t[0x90] = i("BCC", re, 2, 2, false, opBCC)
	t[0x91] = i("STA", iy, 2, 6, false, opSTA)
	t[0x94] = i("STY", zx, 2, 4, false, opSTY)
	t[0x95] = i("STA", zx, 2, 4, false, opSTA)
	t[0x96] = i("STX", zy, 2, 4, false, opSTX)
	t[0x97] = i("SAX", zy, 2, 4, false, opSAX)
	t[0x98] = i("TYA", im, 1, 2, false, opTYA)
	t[0x99] = i("STA", ay, 3, 5, false, opSTA)
	t[0x9A] = i("TXS", im, 1, 2, false, opTXS)
	t[0x9D] = i("STA", ax, 3, 5, false, opSTA)

	t[0xA0] = i("LDY", mm, 2, 2, false, opLDY)
	t[0xA1] = i("LDA", ix, 2, 6, false, opLDA)
	t[0xA2] = i("LDX", mm, 2, 2, false, opLDX)
	t[0xA3] = i("LAX", ix, 2, 6, false, opLAX)
	t[0xA4] = i("LDY", zp, 2, 3, false, opLDY)
	t[0xA5] = i("LDA", zp, 2, 3, false, opLDA)
	t[0xA6] = i("LDX", zp, 2, 3, false, opLDX)
	t[0xA7] = i("LAX", zp, 2, 3, false, opLAX)
	t[0xA8] = i("TAY", im, 1, 2, false, opTAY)
	t[0xA9] = i("LDA", mm, 2, 2, false, opLDA)
	t[0xAA] = i("TAX", im, 1, 2, false, opTAX)
	t[0xAC] = i("LDY", ab, 3, 4, false, opLDY)
	t[0xAD] = i("LDA", ab, 3, 4, false, opLDA)
	t[0xAE] = i("LDX", ab, 3, 4, false, opLDX)
	t[0xAF] = i("LAX", ab, 3, 4, false, opLAX)

	t[0xB0] = i("BCS", re, 2, 2, false, opBCS)
	t[0xB1] = i("LDA", iy, 2, 5, true, opLDA)
	t[0xB3] = i("LAX", iy, 2, 5, true, opLAX)
	t[0xB4] = i("LDY", zx, 2, 4, false, opLDY)
	t[0xB5] = i("LDA", zx, 2, 4, false, opLDA)
	t[0xB6] = i("LDX", zy, 2, 4, false, opLDX)
	t[0xB7] = i("LAX", zy, 2, 4, false, opLAX)
	t[0xB8] = i("CLV", im, 1, 2, false, opCLV)
	t[0xB9] = i("LDA", ay, 3, 4, true, opLDA)
	t[0xBA] = i("TSX", im, 1, 2, false, opTSX)
	t[0xBC] = i("LDY", ax, 3, 4, true, opLDY)
	t[0xBD] = i("LDA", ax, 3, 4, true, opLDA)
	t[0xBE] = i("LDX", ay, 3, 4, true, opLDX)
	t[0xBF] = i("LAX", ay, 3, 4, true, opLAX)

	t[0xC0] = i("CPY", mm, 2, 2, false, opCPY)
	t[0xC1] = i("CMP", ix, 2, 6, false, opCMP)
	t[0xC2] = i("NOP", mm, 2, 2, false, opNOP)
	t[0xC3] = i("DCP", ix, 2, 8, false, opDCP)
	t[0xC4] = i("CPY", zp, 2, 3, false, opCPY)
	t[0xC5] = i("CMP", zp, 2, 3, false, opCMP)
	t[0xC6] = i("DEC", zp, 2, 5, false, opDEC)
	t[0xC7] = i("DCP", zp, 2, 5, false, opDCP)
	t[0xC8] = i("INY", im, 1, 2, false, opINY)
	t[0xC9] = i("CMP", mm, 2, 2, false, opCMP)
	t[0xCA] = i("DEX", im, 1, 2, false, opDEX)
	t[0xCB] = i("AXS", mm, 2, 2, false, opUnstable)
	t[0xCC] = i("CPY", ab, 3, 4, false, opCPY)
	t[0xCD] = i("CMP", ab, 3, 4, false, opCMP)
	t[0xCE] = i("DEC", ab, 3, 6, false, opDEC)
	t[0xCF] = i("DCP", ab, 3, 6, false, opDCP)

	t[0xD0] = i("BNE", re, 2, 2, false, opBNE)
	t[0xD1] = i("CMP", iy, 2, 5, true, opCMP)
	t[0xD3] = i("DCP", iy, 2, 8, false, opDCP)
	t[0xD4] = i("NOP", zx, 2, 4, false, opNOP)
	t[0xD5] = i("CMP", zx, 2, 4, false, opCMP)
	t[0xD6] = i("DEC", zx, 2, 6, false, opDEC)
	t[0xD7] = i("DCP", zx, 2, 6, false, opDCP)
	t[0xD8] = i("CLD", im, 1, 2, false, opCLD)
	t[0xD9] = i("CMP", ay, 3, 4, true, opCMP)
	t[0xDA] = i("NOP", im, 1, 2, false, opNOP)
	t[0xDB] = i("DCP", ay, 3, 7, false, opDCP)
	t[0xDC] = i("NOP", ax, 3, 4, true, opNOP)
	t[0xDD] = i("CMP", ax, 3, 4, true, opCMP)
	t[0xDE] = i("DEC", ax, 3, 7, false, opDEC)
	t[0xDF] = i("DCP", ax, 3, 7, false, opDCP)

	t[0xE0] = i("CPX", mm, 2, 2, false, opCPX)
	t[0xE1] = i("SBC", ix, 2, 6, false, opSBC)
	t[0xE2] = i("NOP", mm, 2, 2, false, opNOP)
	t[0xE3] = i("ISC", ix, 2, 8, false, opISC)
	t[0xE4] = i("CPX", zp, 2, 3, false, opCPX)
	t[0xE5] = i("SBC", zp, 2, 3, false, opSBC)
	t[0xE6] = i("INC", zp, 2, 5, false, opINC)
	t[0xE7] = i("ISC", zp, 2, 5, false, opISC)
	t[0xE8] = i("INX", im, 1, 2, false, opINX)
	t[0xE9] = i("SBC", mm, 2, 2, false, opSBC)
	t[0xEA] = i("NOP", im, 1, 2, false, opNOP)
	t[0xEB] = i("SBC", mm, 2, 2, false, opSBC)
	t[0xEC] = i("CPX", ab, 3, 4, false, opCPX)
	t[0xED] = i("SBC", ab, 3, 4, false, opSBC)
	t[0xEE] = i("INC", ab, 3, 6, false, opINC)
	t[0xEF] = i("ISC", ab, 3, 6, false, opISC)

	t[0xF0] = i("BEQ", re, 2, 2, false, opBEQ)
	t[0xF1] = i("SBC", iy, 2, 5, true, opSBC)
	t[0xF3] = i("ISC", iy, 2, 8, false, opISC)
	t[0xF4] = i("NOP", zx, 2, 4, false, opNOP)
	t[0xF5] = i("SBC", zx, 2, 4, false, opSBC)
	t[0xF6] = i("INC", zx, 2, 6, false, opINC)
	t[0xF7] = i("ISC", zx, 2, 6, false, opISC)
	t[0xF8] = i("SED", im, 1, 2, false, opSED)
	t[0xF9] = i("SBC", ay, 3, 4, true, opSBC)
	t[0xFA] = i("NOP", im, 1, 2, false, opNOP)
	t[0xFB] = i("ISC", ay, 3, 7, false, opISC)
	t[0xFC] = i("NOP", ax, 3, 4, true, opNOP)
	t[0xFD] = i("SBC", ax, 3, 4, true, opSBC)
	t[0xFE] = i("INC", ax, 3, 7, false, opINC)
	t[0xFF] = i("ISC", ax, 3, 7, false, opISC)

	// KILL opcodes (real hardware locks the bus up). Listing the well-known
	// ones; any other unassigned slot above already defaults to an
	// unofficial NOP.
	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		t[op] = i("KIL", im, 1, 2, false, opKill)
	}

	return t
}
