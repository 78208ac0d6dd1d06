// Package input translates host keyboard events into the byte this
// machine's keyboard latch expects: bit 7 set (strobe) plus an
// uppercased, Apple-II-flavored key code in bits 6..0.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	lineFeed       = 0x0A
	carriageReturn = 0x0D
	backspace      = 0x08
	nak            = 0x15
	bell           = 0x07
	strobe         = 0x80
)

// Translate applies spec.md §6's keyboard translation rules to a single
// incoming byte and returns the value ready to store in the latch (bit 7
// already set). The arrow-key rules are not handled here; FromKeyMsg
// maps bubbletea's named keys (arrows included) before falling back to
// Translate for runes.
func Translate(b byte) byte {
	switch {
	case b == lineFeed:
		b = carriageReturn
	case b == bell:
		b = backspace
	case b >= 0x61 && b <= 0x7A:
		b &^= 0x20
	}
	return b | strobe
}

// FromKeyMsg converts a bubbletea key event to a latch byte and reports
// whether the event was one this machine's keyboard understands (e.g. a
// modifier-only event yields ok=false and should be dropped by the
// caller).
func FromKeyMsg(msg tea.KeyMsg) (b byte, ok bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return backspace | strobe, true
	case tea.KeyRight:
		return nak | strobe, true
	case tea.KeyEnter:
		return carriageReturn | strobe, true
	case tea.KeyBackspace:
		return backspace | strobe, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return 0, false
		}
		r := msg.Runes[0]
		if r > 0x7F {
			return 0, false
		}
		return Translate(byte(r)), true
	default:
		return 0, false
	}
}
