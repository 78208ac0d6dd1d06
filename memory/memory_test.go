package memory

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(16)
	r.Write(0x03, 0x7F)
	if got := r.Read(0x03); got != 0x7F {
		t.Errorf("Read(3) = 0x%02X, want 0x7F", got)
	}
}

func TestRAMAddressesAliasModuloSize(t *testing.T) {
	r := NewRAM(16)
	r.Write(0x01, 0xAB)
	if got := r.Read(0x11); got != 0xAB {
		t.Errorf("Read(0x11) = 0x%02X, want aliased 0xAB from addr 1", got)
	}
}

func TestROMReadsPreloadedImageAndIgnoresWrites(t *testing.T) {
	rom := NewROM([]uint8{0x11, 0x22, 0x33})
	rom.Write(0x01, 0xFF)
	if got := rom.Read(0x01); got != 0x22 {
		t.Errorf("Read(1) = 0x%02X after write, want unchanged 0x22", got)
	}
}

func TestBadSizeErrorMessage(t *testing.T) {
	err := BadSizeError{Got: 10, Want: 20}
	if err.Error() == "" {
		t.Errorf("Error() returned empty string")
	}
}
