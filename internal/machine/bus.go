package machine

import "github.com/golang/glog"

// ppuRegisters is the PPU's CPU-facing register surface the bus routes
// $2000-$3FFF writes/reads through (spec §4.2).
type ppuRegisters interface {
	ReadRegister(address uint16) byte
	WriteRegister(address uint16, data byte)
	WriteOAMDMA(page [256]byte)
}

// cartridgeMapper is the cartridge's CPU-facing PRG surface the bus routes
// $4020-$0xFFFF through (spec §3 "Bus model").
type cartridgeMapper interface {
	ReadPRG(address uint16) byte
	WritePRG(address uint16, data byte)
}

// Bus is the CPU-side MMIO router (spec §4.2): the single read/write path
// every CPU memory access goes through. Grounded on the teacher's
// nes/cpubus.go dispatch, generalized to the spec's full PPU/APU/controller
// register set (the teacher's version is missing several registers this
// bus implements) and to return the OAM DMA stall cycle count from Write
// rather than special-casing it in the CPU.
type Bus struct {
	ram        *RAM
	ppu        ppuRegisters
	apu        *APU
	cartridge  cartridgeMapper
	controller *Controller
}

// NewBus wires the CPU-side bus to its peers (spec §9 "cyclic references":
// the machine aggregate owns all of these and passes borrowed references
// here, rather than the bus reaching back out to the machine).
func NewBus(ram *RAM, ppu ppuRegisters, apu *APU, cartridge cartridgeMapper, controller *Controller) *Bus {
	return &Bus{ram: ram, ppu: ppu, apu: apu, cartridge: cartridge, controller: controller}
}

// NMILine is forwarded from the PPU so the CPU can treat Bus as its single
// dependency (cpu.Bus interface, spec §9).
func (b *Bus) NMILine() bool {
	type nmiSource interface{ NMILine() bool }
	if src, ok := b.ppu.(nmiSource); ok {
		return src.NMILine()
	}
	return false
}

// Read implements the CPU-side read path (spec §4.2 "Reads").
func (b *Bus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.ram.Read(address)
	case address < 0x4000:
		return b.ppu.ReadRegister(address)
	case address == 0x4015:
		return b.apu.ReadStatus()
	case address == 0x4016:
		return b.controller.Read()
	case address == 0x4017:
		return 0 // controller 2 / frame counter, not modeled (spec §4.4)
	case address < 0x4020:
		return 0 // remaining APU/IO registers are write-only or unmodeled
	default:
		return b.cartridge.ReadPRG(address)
	}
}

// Write implements the CPU-side write path (spec §4.2 "Writes"). It
// returns any extra CPU stall the write caused; only OAMDMA charges one
// (513 cycles, spec §4.1 "Per-instruction cycle table").
func (b *Bus) Write(address uint16, data byte) int {
	switch {
	case address < 0x2000:
		b.ram.Write(address, data)
	case address < 0x4000:
		b.ppu.WriteRegister(address, data)
	case address == 0x4014:
		b.oamDMA(data)
		return 513
	case address == 0x4016:
		b.controller.Write(data)
	case address < 0x4018:
		b.apu.WriteRegister(address, data)
	case address < 0x4020:
		glog.V(2).Infof("bus: unimplemented CPU write address=0x%04X data=0x%02X", address, data)
	default:
		b.cartridge.WritePRG(address, data)
	}
	return 0
}

// oamDMA copies 256 bytes starting at page*0x100 into OAM (spec §4.2
// "0x4014 OAMDMA"). Source bytes are read through the full CPU bus rather
// than assumed to live in RAM, matching real hardware, where the DMA page
// can point anywhere in CPU address space.
func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	var buf [256]byte
	for i := 0; i < 256; i++ {
		buf[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(buf)
}
