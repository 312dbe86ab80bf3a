package machine

// VRAM is the 2 KiB of physical nametable RAM behind the PPU bus
// (0x2000-0x2FFF mirrored down to 2 KiB, spec §3 PPU state). Pattern tables
// live on the cartridge (CHR ROM/RAM via the mapper) and palette RAM lives
// inside the PPU itself (spec §3 "palette mirrors"), so this store only
// needs to hold nametable bytes — grounded on the teacher's nes/ram.go,
// which backs PPU RAM with the same flat-array approach, generalized here
// with the nametable mirroring the teacher's ppubus.go left unfinished.
type VRAM struct {
	data [0x0800]byte
}

// NewVRAM returns zeroed nametable RAM.
func NewVRAM() *VRAM { return &VRAM{} }

// Index maps a nametable address (0x2000-0x2FFF) to a physical offset
// honoring vertical or horizontal mirroring (spec §9 "mirrors or does not
// mirror" — nametable mirroring, unlike the RAM-mirroring open question, is
// required for any scrolling game to render correctly, so it is not
// optional here).
func Index(address uint16, verticalMirror bool) uint16 {
	a := (address - 0x2000) % 0x1000
	table := a / 0x0400  // which of the 4 logical nametables, 0-3
	offset := a % 0x0400 // offset within a nametable
	var physical uint16
	if verticalMirror {
		physical = table % 2 // table 0,2 -> physical 0; table 1,3 -> physical 1
	} else {
		physical = table / 2 // table 0,1 -> physical 0; table 2,3 -> physical 1
	}
	return physical*0x0400 + offset
}

func (v *VRAM) Read(address uint16, verticalMirror bool) byte {
	return v.data[Index(address, verticalMirror)]
}

func (v *VRAM) Write(address uint16, verticalMirror bool, value byte) {
	v.data[Index(address, verticalMirror)] = value
}
