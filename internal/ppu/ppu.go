// Package ppu implements the scanline-at-a-time Picture Processing Unit
// named in spec §4.3: the dot/scanline state machine, the memory-mapped
// register file with its read/write side effects, the NMI line (a level the
// CPU edge-detects), and the background/sprite renderer.
//
// Grounded on the teacher's nes/ppu.go (register layout, palette mirroring,
// OAM record shape) and nes/ppubus.go (nametable mirroring), generalized
// from the teacher's dot-accurate scroll-register renderer to the spec's
// simpler scanline-at-a-time algorithm (spec §1 Non-goals explicitly
// permits this), and corrected against spec §3/§4.3 where the teacher
// diverges (e.g. the teacher returns the *new* NMI state from PPUSTATUS; the
// spec requires the pre-read value, reproduced here by composing the status
// byte from `inVblank` before readStatus clears it).
package ppu

// CHR is the PPU-side view of cartridge pattern tables (0x0000-0x1FFF),
// implemented by a cartridge.Mapper.
type CHR interface {
	ReadCHR(address uint16) byte
	WriteCHR(address uint16, data byte)
}

// Nametable is the PPU-side view of the 2 KiB of physical nametable RAM,
// implemented by machine.VRAM.
type Nametable interface {
	Read(address uint16, verticalMirror bool) byte
	Write(address uint16, verticalMirror bool, data byte)
}

const (
	Width  = 256
	Height = 240

	// MasterTicksPerFrame is 341 dots * 262 scanlines * 4 PPU master-clock
	// divisor, spec §4.5.
	MasterTicksPerFrame = 341 * 262 * 4
)

// PPU is the picture processing unit. It holds non-owning references to the
// cartridge's CHR banks and the machine's nametable RAM (spec §9 "cyclic
// references" — the machine aggregate wires these in, the PPU never reaches
// back into the CPU or bus).
type PPU struct {
	chr            CHR
	nt             Nametable
	verticalMirror bool
	sprites8x16    bool

	Framebuffer []uint32 // 256*240 ARGB8888, lent by the host for the run's duration
	onPresent   func()   // invoked once per completed frame (spec §4.3 "present" signal)

	// $2000 PPUCTRL decode
	nametableBase           uint16
	backgroundTiledataBase  uint16
	spriteTiledataBase      uint16
	ppuaddrIncrement        uint16
	nmiOutput               bool

	// $2001 PPUMASK decode
	showBackground     bool
	showSprites        bool
	showLeftBackground bool
	showLeftSprites    bool

	// $2002 PPUSTATUS
	inVblank      bool
	sprite0Hit    bool
	spriteOverflow bool

	oamAddr byte
	oam     [256]byte

	v uint16 // current VRAM address (PPUADDR, 14 bits effective)
	w bool   // shared write toggle for PPUSCROLL/PPUADDR
	x byte   // fine X scroll (PPUSCROLL first write, low 3 bits)

	scrollY uint16 // coarse+fine Y scroll latched at PPUSCROLL's second write

	readBuffer byte // PPUDATA read buffer
	palette    [32]byte

	scanline int // 0..261
	dot      int // 0..340
}

// New creates a PPU wired to the cartridge's CHR banks and the machine's
// nametable RAM. framebuffer must be exactly Width*Height elements and
// outlives the PPU for the run (spec §3 "video framebuffer owned by the
// host and lent to the PPU").
func New(chr CHR, nt Nametable, verticalMirror bool, framebuffer []uint32, onPresent func()) *PPU {
	return &PPU{
		chr:            chr,
		nt:             nt,
		verticalMirror: verticalMirror,
		Framebuffer:    framebuffer,
		onPresent:      onPresent,
		scanline:       261,
	}
}

// Reset restarts the timing state machine at the pre-render scanline, the
// teacher's nes/ppu.go Reset() convention (it also starts mid-vblank-ish,
// though at a different counter value since this PPU renders scanline-at-
// a-time rather than dot-at-a-time).
func (p *PPU) Reset() {
	p.scanline = 261
	p.dot = 0
}

// InVblank, Sprite0Hit and SpriteOverflow expose PPUSTATUS bits for tests
// and debug tooling without the read side effects of ReadRegister(0x2002).
func (p *PPU) InVblank() bool       { return p.inVblank }
func (p *PPU) Sprite0Hit() bool     { return p.sprite0Hit }
func (p *PPU) SpriteOverflow() bool { return p.spriteOverflow }

// DumpVRAM reconstructs the full 16 KiB PPU address space (pattern tables,
// nametable mirrors, palette mirrors) into one buffer for spec §6's debug
// dump requirement ("write VRAM (0x4000 bytes) to files verbatim").
func (p *PPU) DumpVRAM() []byte {
	buf := make([]byte, 0x4000)
	for addr := 0; addr < 0x4000; addr++ {
		buf[addr] = p.readVRAM(uint16(addr))
	}
	return buf
}

// NMILine reports the live (NMI_occurred && NMI_output) level the CPU
// edge-detects after every instruction (spec §4.1 "NMI").
func (p *PPU) NMILine() bool { return p.inVblank && p.nmiOutput }

// ReadRegister implements the $2000-$2007 CPU-facing register reads (spec
// §4.2 "Reads"). Only $2002/$2004/$2007 are readable; the rest return 0
// (open bus, spec's "simplest conforming choice").
func (p *PPU) ReadRegister(address uint16) byte {
	switch address & 7 {
	case 2:
		return p.readStatus()
	case 4:
		return p.readOAMData()
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister implements the $2000-$2007 CPU-facing register writes (spec
// §4.2 "Writes").
func (p *PPU) WriteRegister(address uint16, data byte) {
	switch address & 7 {
	case 0:
		p.writeCtrl(data)
	case 1:
		p.writeMask(data)
	case 3:
		p.oamAddr = data
	case 4:
		p.writeOAMData(data)
	case 5:
		p.writeScroll(data)
	case 6:
		p.writeAddr(data)
	case 7:
		p.writeData(data)
	}
}

// WriteOAMDMA copies 256 bytes into OAM starting at the current OAMADDR
// (spec §4.2 "0x4014 OAMDMA"); the 513-cycle CPU stall is charged by the
// bus, not here.
func (p *PPU) WriteOAMDMA(page [256]byte) {
	for i := 0; i < 256; i++ {
		p.oam[byte(int(p.oamAddr)+i)] = page[i]
	}
}

func (p *PPU) writeCtrl(data byte) {
	p.nametableBase = 0x2000 + uint16(data&0x03)*0x0400
	if data&0x04 != 0 {
		p.ppuaddrIncrement = 32
	} else {
		p.ppuaddrIncrement = 1
	}
	if data&0x08 != 0 {
		p.spriteTiledataBase = 0x1000
	} else {
		p.spriteTiledataBase = 0x0000
	}
	if data&0x10 != 0 {
		p.backgroundTiledataBase = 0x1000
	} else {
		p.backgroundTiledataBase = 0x0000
	}
	p.sprites8x16 = data&0x20 != 0
	// Writing NMI-output high while already in vblank makes NMILine() true
	// immediately; the CPU's own edge detector (line && !lastNMILine) then
	// fires on its next check since the line was low a moment ago (spec §4.2
	// "Writing NMI-output high during vblank should raise a pending NMI").
	p.nmiOutput = data&0x80 != 0
}

func (p *PPU) writeMask(data byte) {
	p.showLeftBackground = data&0x02 != 0
	p.showLeftSprites = data&0x04 != 0
	p.showBackground = data&0x08 != 0
	p.showSprites = data&0x10 != 0
}

func (p *PPU) readStatus() byte {
	var b byte
	if p.inVblank {
		b |= 0x80
	}
	if p.sprite0Hit {
		b |= 0x40
	}
	if p.spriteOverflow {
		b |= 0x20
	}
	p.inVblank = false
	p.w = false
	return b
}

func (p *PPU) readOAMData() byte {
	v := p.oam[p.oamAddr]
	if !p.inVblank {
		p.oamAddr++
	}
	return v
}

func (p *PPU) writeOAMData(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}

func (p *PPU) writeScroll(data byte) {
	if !p.w {
		p.x = data & 0x07
		p.w = true
	} else {
		p.scrollY = uint16(data)
		p.w = false
	}
}

func (p *PPU) writeAddr(data byte) {
	if !p.w {
		p.v = (p.v & 0x00FF) | (uint16(data&0x3F) << 8)
		p.w = true
	} else {
		p.v = (p.v & 0xFF00) | uint16(data)
		p.w = false
	}
}

// paletteIndex maps a VRAM address in 0x3F00-0x3FFF to a 0-31 palette
// offset, applying the $3F10/14/18/1C -> $3F00/04/08/0C aliases (spec §3
// "Palette mirrors").
func paletteIndex(address uint16) byte {
	a := address & 0x1F
	if a&0x13 == 0x10 { // 0x10, 0x14, 0x18, 0x1C
		a &= ^uint16(0x10)
	}
	return byte(a)
}

func (p *PPU) readVRAM(address uint16) byte {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		return p.chr.ReadCHR(address)
	case address < 0x3F00:
		return p.nt.Read(0x2000+(address-0x2000)%0x1000, p.verticalMirror)
	default:
		return p.palette[paletteIndex(address)]
	}
}

func (p *PPU) writeVRAM(address uint16, data byte) {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		p.chr.WriteCHR(address, data)
	case address < 0x3F00:
		p.nt.Write(0x2000+(address-0x2000)%0x1000, p.verticalMirror, data)
	default:
		p.palette[paletteIndex(address)] = data
	}
}

func (p *PPU) readData() byte {
	var data byte
	if p.v&0x3FFF >= 0x3F00 {
		// Palette reads bypass the read buffer but still refill it with the
		// nametable byte that would be visible underneath (spec §3 "PPUDATA
		// reads").
		data = p.readVRAM(p.v)
		p.readBuffer = p.nt.Read(0x2000+(p.v-0x1000)%0x1000, p.verticalMirror)
	} else {
		data = p.readBuffer
		p.readBuffer = p.readVRAM(p.v)
	}
	p.v += p.ppuaddrIncrement
	return data
}

func (p *PPU) writeData(data byte) {
	p.writeVRAM(p.v, data)
	p.v += p.ppuaddrIncrement
}
