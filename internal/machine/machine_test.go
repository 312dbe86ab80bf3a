package machine

import "testing"

func TestRAMMirroring(t *testing.T) {
	r := NewRAM()
	r.Write(0x0000, 0x42)
	if got := r.Read(0x0800); got != 0x42 {
		t.Fatalf("RAM not mirrored at +0x0800: got %02X, want 42", got)
	}
	if got := r.Read(0x1800); got != 0x42 {
		t.Fatalf("RAM not mirrored at +0x1800: got %02X, want 42", got)
	}
}

func TestVRAMHorizontalMirroring(t *testing.T) {
	v := NewVRAM()
	v.Write(0x2000, false, 0x11)
	if got := v.Read(0x2400, false); got != 0x11 {
		t.Fatalf("horizontal mirroring: nametable 1 should alias nametable 0, got %02X", got)
	}
	v.Write(0x2800, false, 0x22)
	if got := v.Read(0x2C00, false); got != 0x22 {
		t.Fatalf("horizontal mirroring: nametable 3 should alias nametable 2, got %02X", got)
	}
}

func TestVRAMVerticalMirroring(t *testing.T) {
	v := NewVRAM()
	v.Write(0x2000, true, 0x33)
	if got := v.Read(0x2800, true); got != 0x33 {
		t.Fatalf("vertical mirroring: nametable 2 should alias nametable 0, got %02X", got)
	}
}

func TestControllerStrobeHighReturnsButtonARepeatedly(t *testing.T) {
	c := NewController()
	c.SetState(0x01) // button A held
	c.Write(0x01)     // strobe high
	if got := c.Read(); got != 1 {
		t.Fatalf("strobe high should return button A state, got %d", got)
	}
	if got := c.Read(); got != 1 {
		t.Fatalf("strobe high should return button A on every read, got %d", got)
	}
}

func TestControllerShiftsOutEightButtons(t *testing.T) {
	c := NewController()
	c.SetState(0b10110001) // A, right-most bits set per spec §6 bit layout
	c.Write(0x01)
	c.Write(0x00) // strobe low: subsequent reads shift the buttons out
	var got byte
	for i := 0; i < 8; i++ {
		got |= c.Read() << uint(i)
	}
	if got != 0b10110001 {
		t.Fatalf("shifted-out state = %08b, want %08b", got, 0b10110001)
	}
	if r := c.Read(); r != 1 {
		t.Fatalf("reads past the 8th should shift in 1s, got %d", r)
	}
}

func TestOAMDMAChargesStall(t *testing.T) {
	ram := NewRAM()
	for i := 0; i < 256; i++ {
		ram.Write(uint16(i), byte(i))
	}
	ppu := &fakeOAMTarget{}
	bus := NewBus(ram, ppu, NewAPU(), &fakeCartridge{}, NewController())
	stall := bus.Write(0x4014, 0x00)
	if stall != 513 {
		t.Fatalf("OAMDMA stall = %d, want 513", stall)
	}
	for i := 0; i < 256; i++ {
		if ppu.oam[i] != byte(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, ppu.oam[i], byte(i))
		}
	}
}

type fakeOAMTarget struct{ oam [256]byte }

func (f *fakeOAMTarget) ReadRegister(address uint16) byte   { return 0 }
func (f *fakeOAMTarget) WriteRegister(address uint16, data byte) {}
func (f *fakeOAMTarget) WriteOAMDMA(page [256]byte)          { f.oam = page }

type fakeCartridge struct{}

func (f *fakeCartridge) ReadPRG(address uint16) byte        { return 0 }
func (f *fakeCartridge) WritePRG(address uint16, data byte) {}
