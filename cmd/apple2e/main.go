// Command apple2e boots the machine: it loads a ROM image, wires up the
// memory bus and CPU, and runs the terminal presenter until the user
// quits. It plays the role vcs_main.go plays in the teacher — flag
// parsing, construction, and the top-level run loop — retargeted at a
// text-mode terminal machine instead of an SDL pixel surface.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/corestone/apple2e/cpu"
	"github.com/corestone/apple2e/internal/loader"
	"github.com/corestone/apple2e/internal/presenter"
	"github.com/corestone/apple2e/memory"
)

var (
	rom   = flag.String("rom", "", "Path to a 12288 byte ROM image to load at 0xD000")
	debug = flag.Bool("debug", false, "If true, print CPU register state alongside the text page each frame")
)

func main() {
	flag.Parse()

	if *rom == "" {
		log.Fatalf("-rom is required")
	}

	image, err := loader.Load(*rom)
	if err != nil {
		log.Fatalf("Can't load ROM: %v", err)
	}

	bus, err := memory.NewBus(image)
	if err != nil {
		log.Fatalf("Can't init bus: %v", err)
	}

	chip := cpu.New(bus)
	model := presenter.New(chip, bus, *debug)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatalf("Program error: %v", err)
	}
}
