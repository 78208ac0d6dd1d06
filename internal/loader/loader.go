// Package loader reads a ROM image off disk and validates its size
// against the machine's fixed 12 KiB ROM aperture before handing it to
// the memory bus.
package loader

import (
	"fmt"
	"os"

	"github.com/corestone/apple2e/memory"
)

// Load reads the file at path and returns its bytes, failing with
// memory.BadSizeError if the image isn't exactly memory.ROMSize bytes —
// the same up-front size check atari2600.Init performs on def.Rom in the
// teacher, surfaced here (memory.NewBus repeats the check) so a loader
// error can be reported before any CPU/Bus state exists.
func Load(path string) ([]uint8, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	if len(rom) != memory.ROMSize {
		return nil, memory.BadSizeError{Got: len(rom), Want: memory.ROMSize}
	}
	return rom, nil
}
