package memory

import "github.com/corestone/apple2e/keyboard"

// Address-map constants for the machine this Bus implements: 48 KiB RAM
// low, a 4 KiB I/O aperture in the middle, 12 KiB ROM high.
const (
	RAMSize = 0xC000 // [0x0000, 0xC000)
	IOBase  = 0xC000
	IOEnd   = 0xD000 // [0xC000, 0xD000)
	ROMBase = 0xD000 // [0xD000, 0x10000)
	ROMSize = 0x10000 - ROMBase

	kbdAddr     = 0xC000
	kbdStrbAddr = 0xC010

	// videoPageMask is the bit the real hardware (and this emulator, per
	// the dirty-flag contract) treats as "touched text page 1": every
	// address in [0x0400, 0x0800) has bit 10 set and no higher bit set,
	// so testing the bit alone is a safe, cheap over-approximation since
	// the presenter always redraws the full page on a dirty signal.
	videoPageMask = 0x0400
)

// Bus multiplexes RAM, ROM, and the keyboard soft switches across the
// full 16 bit address space, the way atari2600.controller multiplexed
// TIA/PIA/ROM in the teacher. It also tracks the video-dirty flag that
// lets the presenter avoid polling RAM every frame.
type Bus struct {
	ram   *RAM
	rom   *ROM
	kbd   *keyboard.Latch
	dirty bool
}

// NewBus constructs the machine's address space. rom must be exactly
// ROMSize (12288) bytes; BadSizeError is returned otherwise.
func NewBus(rom []uint8) (*Bus, error) {
	if len(rom) != ROMSize {
		return nil, BadSizeError{Got: len(rom), Want: ROMSize}
	}
	return &Bus{
		ram: NewRAM(RAMSize),
		rom: NewROM(rom),
		kbd: &keyboard.Latch{},
	}, nil
}

// Read dispatches a byte read to RAM, ROM, or the keyboard soft switches.
// Reading 0xC010 has the side effect of clearing the keyboard strobe;
// every other I/O address reads as 0.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < RAMSize:
		return b.ram.Read(addr)
	case addr >= ROMBase:
		return b.rom.Read(addr - ROMBase)
	case addr == kbdAddr:
		return b.kbd.Read()
	case addr == kbdStrbAddr:
		return b.kbd.ClearStrobe()
	default:
		return 0
	}
}

// Write dispatches a byte write to RAM or the keyboard soft switches.
// Writes to ROM are silently discarded. Any write whose address has the
// text-page-1 bit set raises the video-dirty flag before the store takes
// effect, so a reader observing "dirty" always sees RAM at or beyond the
// write that caused it.
func (b *Bus) Write(addr uint16, val uint8) {
	if addr&videoPageMask != 0 {
		b.dirty = true
	}
	switch {
	case addr < RAMSize:
		b.ram.Write(addr, val)
	case addr == kbdStrbAddr:
		b.kbd.ClearStrobe()
	default:
		// ROM writes and unmapped I/O writes are discarded.
	}
}

// SetKey delivers a keystroke from the input adapter to the keyboard
// latch. val should already have bit 7 (the strobe) set.
func (b *Bus) SetKey(val uint8) {
	b.kbd.SetKey(val)
}

// RAMByte is a read helper for the video presenter: it never touches ROM,
// I/O, or the dirty flag, so the presenter can poll arbitrary RAM
// addresses without side effects.
func (b *Bus) RAMByte(addr uint16) uint8 {
	return b.ram.Read(addr)
}

// TakeVideoDirty returns whether the text page has been written since the
// last call and clears the flag, giving the host an edge-triggered signal
// it can poll once per frame instead of diffing RAM.
func (b *Bus) TakeVideoDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}
