package ppu

// Step advances the dot/scanline counter by one PPU tick (spec §4.3
// "Timing state machine"). The scanline renderer runs once per visible
// scanline at its last dot rather than dot-by-dot, the simplification spec
// §1's Non-goals explicitly allow ("scanline-at-a-time rendering is
// acceptable").
func (p *PPU) Step() {
	if p.dot == 340 && p.scanline >= 0 && p.scanline <= 239 {
		p.renderScanline(p.scanline)
	}
	if p.scanline == 241 && p.dot == 1 {
		p.inVblank = true
	}
	if p.scanline == 261 && p.dot == 1 {
		p.inVblank = false
		p.sprite0Hit = false
		p.spriteOverflow = false
	}
	frameBoundary := p.scanline == 261 && p.dot == 340

	p.dot++
	if p.dot == 341 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
		}
	}

	if frameBoundary && p.onPresent != nil {
		p.onPresent()
	}
}

// Scanline and Dot expose the timing state for debug dumps and tests; spec
// §8's universal invariant requires both to stay within range at all times.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Dot() int      { return p.dot }
