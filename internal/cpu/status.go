package cpu

// Flags holds the 6 observable 6502 status bits. Bit 5 (reserved) and the B
// (break) bit are not part of persistent CPU state — per spec §3 they exist
// only in the composed byte at the moment P is pushed to the stack, and B is
// never observable after a PLP/RTI.
type Flags struct {
	N bool // negative
	V bool // overflow
	D bool // decimal (accepted but inert on the NES's 6502 core)
	I bool // IRQ disable
	Z bool // zero
	C bool // carry
}

// Encode composes the status byte as it would be pushed to the stack. Bit 5
// is always set; brk selects whether bit 4 (B) is set, which is true for
// PHP/BRK and false for the hardware NMI/IRQ push.
func (f Flags) Encode(brk bool) byte {
	var b byte
	if f.N {
		b |= 0x80
	}
	if f.V {
		b |= 0x40
	}
	b |= 0x20
	if brk {
		b |= 0x10
	}
	if f.D {
		b |= 0x08
	}
	if f.I {
		b |= 0x04
	}
	if f.Z {
		b |= 0x02
	}
	if f.C {
		b |= 0x01
	}
	return b
}

// Decode restores N/V/D/I/Z/C from a byte pulled off the stack (PLP/RTI).
// Bits 4 and 5 are intentionally discarded: B is not state, and bit 5 is
// always conceptually set.
func (f *Flags) Decode(b byte) {
	f.N = b&0x80 != 0
	f.V = b&0x40 != 0
	f.D = b&0x08 != 0
	f.I = b&0x04 != 0
	f.Z = b&0x02 != 0
	f.C = b&0x01 != 0
}

func (f *Flags) setNZ(v byte) {
	f.N = v&0x80 != 0
	f.Z = v == 0
}
