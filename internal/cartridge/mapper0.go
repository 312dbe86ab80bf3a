package cartridge

// mapper0 implements NROM: no bank switching. PRG is mapped to 0xC000-0xFFFF
// and mirrored down to 0x8000-0xBFFF when only 16 KiB of PRG is present,
// matching spec §3/§4.6. Grounded on the teacher's nes/mapper0.go, which
// maps the same way but without the CPU-address-relative indexing this
// implementation exposes directly (ReadPRG takes the full CPU address).
type mapper0 struct {
	prg []byte
	chr []byte
}

func newMapper0(prg, chr []byte) *mapper0 {
	return &mapper0{prg: prg, chr: chr}
}

func (m *mapper0) ReadPRG(address uint16) byte {
	if address < 0x8000 {
		return 0
	}
	offset := int(address-0x8000) % len(m.prg)
	return m.prg[offset]
}

func (m *mapper0) WritePRG(address uint16, data byte) {
	// PRG ROM is not writable on NROM.
}

func (m *mapper0) ReadCHR(address uint16) byte {
	return m.chr[address%uint16(len(m.chr))]
}

func (m *mapper0) WriteCHR(address uint16, data byte) {
	if len(m.chr) > 0 {
		m.chr[address%uint16(len(m.chr))] = data // only meaningful for CHR RAM
	}
}
