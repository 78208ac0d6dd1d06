// Package presenter renders the machine's 40x24 text page to a terminal
// as a bubbletea program, translating RAM bytes to glyphs per spec.md
// §6's video encoding rules and driving the CPU forward on each tick —
// the terminal-machine replacement for the teacher's SDL surface loop in
// vcs_main.go.
package presenter

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corestone/apple2e/cpu"
	"github.com/corestone/apple2e/internal/input"
)

const (
	rows = 24
	cols = 40

	// tickRate paces CPU execution independent of terminal redraw cost;
	// spec.md explicitly scopes out cycle-exact timing, so this is a
	// coarse "instructions per frame" host pacer, not a cycle budget.
	tickRate     = 16 * time.Millisecond
	stepsPerTick = 2000
)

// rowOffsets is the canonical interleaved Apple II text-page-1 row map
// from spec.md §6.
var rowOffsets = [rows]uint16{
	0x400, 0x480, 0x500, 0x580, 0x600, 0x680, 0x700, 0x780,
	0x428, 0x4A8, 0x528, 0x5A8, 0x628, 0x6A8, 0x728, 0x7A8,
	0x450, 0x4D0, 0x550, 0x5D0, 0x650, 0x6D0, 0x750, 0x7D0,
}

// VideoSource is the capability the presenter needs from the machine's
// bus: raw RAM access for the text page, the keyboard latch write, and
// the dirty-flag signal. memory.Bus satisfies this.
type VideoSource interface {
	RAMByte(addr uint16) uint8
	SetKey(val uint8)
	TakeVideoDirty() bool
}

// Model is the bubbletea program driving this machine: it owns the CPU
// and steps it forward on a timer, translating key events into the
// keyboard latch and rendering the text page on every update.
type Model struct {
	chip  *cpu.Chip
	bus   VideoSource
	debug bool
	err   error
}

// New builds a presenter Model around an already-reset Chip and its bus.
func New(chip *cpu.Chip, bus VideoSource, debug bool) Model {
	return Model{chip: chip, bus: bus, debug: debug}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the CPU-stepping timer.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update steps the CPU on each tick and forwards recognized key events to
// the keyboard latch.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if b, ok := input.FromKeyMsg(msg); ok {
			m.bus.SetKey(b)
		}
		return m, nil

	case tickMsg:
		m.chip.StepN(stepsPerTick)
		m.bus.TakeVideoDirty() // cleared every tick; View always redraws fresh RAM.
		return m, tick()

	default:
		return m, nil
	}
}

// View renders the 40x24 text page, per spec.md §6's glyph rules.
func (m Model) View() string {
	var out string
	for row := 0; row < rows; row++ {
		base := rowOffsets[row]
		var line string
		for col := 0; col < cols; col++ {
			b := m.bus.RAMByte(base + uint16(col))
			line += renderGlyph(b)
		}
		out += line + "\n"
	}
	if m.debug {
		out += fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X SR=%02X\n",
			m.chip.PC, m.chip.A, m.chip.X, m.chip.Y, m.chip.SP, m.chip.SR)
	}
	return out
}

var (
	styleInverse  = lipgloss.NewStyle().Reverse(true)
	styleBlinking = lipgloss.NewStyle().Blink(true)
	styleNormal   = lipgloss.NewStyle()
)

// renderGlyph applies spec.md §6's per-glyph classification and byte
// masking rules to a single text-page byte and renders the resulting
// character with the matching style.
func renderGlyph(b uint8) string {
	if b == '`' {
		b = '_'
	}

	style := styleBlinking
	switch {
	case b < 0x40:
		style = styleInverse
	case b > 0x7F:
		style = styleNormal
	}

	v := b &^ 0x80
	if v > 0x5F {
		v &= 0x3F
	}
	if v < 0x20 {
		v |= 0x40
	}
	return style.Render(string(rune(v)))
}
