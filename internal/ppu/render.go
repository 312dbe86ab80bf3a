package ppu

// renderScanline draws 256 ARGB pixels for one visible scanline into the
// framebuffer, following the background algorithm of spec §4.3 "Scanline
// renderer" step by step, then composites sprites on top per the same
// section's sprite rules. Only 8x8 sprites are rendered; 8x16 mode is the
// spec's explicitly optional case and is left unimplemented (a 8x16 OAM
// entry renders only its top half, as if 8x8).
func (p *PPU) renderScanline(scanline int) {
	var bgOpaque [Width]bool

	if !p.showBackground {
		entry := p.readVRAM(0x3F00) & 0x3F
		c := ntscPalette[entry]
		row := p.Framebuffer[scanline*Width : scanline*Width+Width]
		for x := range row {
			row[x] = c
		}
	} else {
		for col := 0; col < 32; col++ {
			attrByte := p.readVRAM(p.nametableBase + 0x3C0 + uint16(scanline/32)*8 + uint16(col/4))
			qx := (col / 2) & 1
			qy := (scanline / 16) & 1
			shift := uint((qy*2 + qx) * 2)
			palette := (attrByte >> shift) & 3

			tileIndex := p.readVRAM(p.nametableBase + uint16(scanline/8)*32 + uint16(col))
			rowInTile := uint16(scanline % 8)
			lo := p.readVRAM(p.backgroundTiledataBase + uint16(tileIndex)*16 + rowInTile)
			hi := p.readVRAM(p.backgroundTiledataBase + uint16(tileIndex)*16 + rowInTile + 8)

			for px := 0; px < 8; px++ {
				x := col*8 + px
				if x >= Width {
					break
				}
				bit := uint(7 - px)
				colorIdx := ((lo >> bit) & 1) | (((hi >> bit) & 1) << 1)
				if x < 8 && !p.showLeftBackground {
					colorIdx = 0
				}
				var paletteAddr uint16
				if colorIdx == 0 {
					paletteAddr = 0x3F00
				} else {
					paletteAddr = 0x3F00 + uint16(palette)*4 + uint16(colorIdx)
					bgOpaque[x] = true
				}
				entry := p.readVRAM(paletteAddr) & 0x3F
				p.Framebuffer[scanline*Width+x] = ntscPalette[entry]
			}
		}
	}

	if p.showSprites {
		p.renderSprites(scanline, &bgOpaque)
	}
}

// renderSprites composites up to 8 sprites covering this scanline, in OAM
// order (lower index wins ties), per spec §4.3 "Sprites" and §8's sprite-0
// restriction to OAM index 0.
func (p *PPU) renderSprites(scanline int, bgOpaque *[Width]bool) {
	var written [Width]bool
	visible := 0
	for i := 0; i < 64; i++ {
		base := i * 4
		y := int(p.oam[base])
		if y >= 0xEF {
			continue
		}
		if scanline < y+1 || scanline >= y+9 {
			continue
		}
		visible++
		if visible > 8 {
			p.spriteOverflow = true
			continue
		}
		p.renderSprite(i, y, scanline, &written, bgOpaque)
	}
}

func (p *PPU) renderSprite(index, y, scanline int, written *[Width]bool, bgOpaque *[Width]bool) {
	base := index * 4
	tile := p.oam[base+1]
	attr := p.oam[base+2]
	x := int(p.oam[base+3])

	row := scanline - (y + 1)
	if attr&0x80 != 0 { // vertical flip
		row = 7 - row
	}
	addr := p.spriteTiledataBase + uint16(tile)*16 + uint16(row)
	lo := p.readVRAM(addr)
	hi := p.readVRAM(addr + 8)
	paletteSel := (attr & 0x03) + 4
	behind := attr&0x20 != 0
	flipH := attr&0x40 != 0

	for px := 0; px < 8; px++ {
		sx := x + px
		if sx < 0 || sx >= Width || written[sx] {
			continue
		}
		bit := uint(7 - px)
		if flipH {
			bit = uint(px)
		}
		colorIdx := ((lo >> bit) & 1) | (((hi >> bit) & 1) << 1)
		if colorIdx == 0 {
			continue
		}
		written[sx] = true
		if index == 0 && bgOpaque[sx] && sx < 255 {
			p.sprite0Hit = true
		}
		if sx < 8 && !p.showLeftSprites {
			continue
		}
		if behind && bgOpaque[sx] {
			continue
		}
		paletteAddr := 0x3F00 + uint16(paletteSel)*4 + uint16(colorIdx)
		entry := p.readVRAM(paletteAddr) & 0x3F
		p.Framebuffer[scanline*Width+sx] = ntscPalette[entry]
	}
}
