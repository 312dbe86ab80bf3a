package ppu

// ntscPalette is the 64-entry NTSC->RGB table spec §4.3 "scanline renderer"
// step 6 maps 6-bit palette entries through. Values are the same well-known
// NES palette the teacher's nes/ppu.go `colors` table uses (sourced there
// from the Famicom color palette reference), repacked here as ARGB8888
// words since spec §6 specifies an ARGB framebuffer rather than the
// teacher's image/color.RGBA.
var ntscPalette = [64]uint32{
	argb(0x6D, 0x6D, 0x6D), argb(0x00, 0x24, 0x92), argb(0x00, 0x00, 0xDB), argb(0x6D, 0x49, 0xDB),
	argb(0x92, 0x00, 0x6D), argb(0xB6, 0x00, 0x6D), argb(0xB6, 0x24, 0x00), argb(0x92, 0x49, 0x00),
	argb(0x6D, 0x49, 0x00), argb(0x24, 0x49, 0x00), argb(0x00, 0x6D, 0x24), argb(0x00, 0x92, 0x00),
	argb(0x00, 0x49, 0x49), argb(0x00, 0x00, 0x00), argb(0x00, 0x00, 0x00), argb(0x00, 0x00, 0x00),
	argb(0xB6, 0xB6, 0xB6), argb(0x00, 0x6D, 0xDB), argb(0x00, 0x49, 0xFF), argb(0x92, 0x00, 0xFF),
	argb(0xB6, 0x00, 0xFF), argb(0xFF, 0x00, 0x92), argb(0xFF, 0x00, 0x00), argb(0xDB, 0x6D, 0x00),
	argb(0x92, 0x6D, 0x00), argb(0x24, 0x92, 0x00), argb(0x00, 0x92, 0x00), argb(0x00, 0xB6, 0x6D),
	argb(0x00, 0x92, 0x92), argb(0x24, 0x24, 0x24), argb(0x00, 0x00, 0x00), argb(0x00, 0x00, 0x00),
	argb(0xFF, 0xFF, 0xFF), argb(0x6D, 0xB6, 0xFF), argb(0x92, 0x92, 0xFF), argb(0xDB, 0x6D, 0xFF),
	argb(0xFF, 0x00, 0xFF), argb(0xFF, 0x6D, 0xFF), argb(0xFF, 0x92, 0x00), argb(0xFF, 0xB6, 0x00),
	argb(0xDB, 0xDB, 0x00), argb(0x6D, 0xDB, 0x00), argb(0x00, 0xFF, 0x00), argb(0x49, 0xFF, 0xDB),
	argb(0x00, 0xFF, 0xFF), argb(0x49, 0x49, 0x49), argb(0x00, 0x00, 0x00), argb(0x00, 0x00, 0x00),
	argb(0xFF, 0xFF, 0xFF), argb(0xB6, 0xDB, 0xFF), argb(0xDB, 0xB6, 0xFF), argb(0xFF, 0xB6, 0xFF),
	argb(0xFF, 0x92, 0xFF), argb(0xFF, 0xB6, 0xB6), argb(0xFF, 0xDB, 0x92), argb(0xFF, 0xFF, 0x49),
	argb(0xFF, 0xFF, 0x6D), argb(0xB6, 0xFF, 0x49), argb(0x92, 0xFF, 0x6D), argb(0x49, 0xFF, 0xDB),
	argb(0x92, 0xDB, 0xFF), argb(0x92, 0x92, 0x92), argb(0x00, 0x00, 0x00), argb(0x00, 0x00, 0x00),
}

func argb(r, g, b byte) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
