package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTranslateLineFeedBecomesCarriageReturn(t *testing.T) {
	assert.Equal(t, byte(carriageReturn|strobe), Translate(lineFeed))
}

func TestTranslateBellBecomesBackspace(t *testing.T) {
	assert.Equal(t, byte(backspace|strobe), Translate(bell))
}

func TestTranslateLowercaseIsUppercased(t *testing.T) {
	assert.Equal(t, byte('A'|strobe), Translate('a'))
	assert.Equal(t, byte('Z'|strobe), Translate('z'))
}

func TestTranslateSetsStrobeOnOrdinaryByte(t *testing.T) {
	got := Translate('5')
	assert.Equal(t, byte(strobe), got&strobe)
	assert.Equal(t, byte('5'), got&^strobe)
}

func TestFromKeyMsgArrowKeys(t *testing.T) {
	b, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, ok)
	assert.Equal(t, byte(backspace|strobe), b)

	b, ok = FromKeyMsg(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, ok)
	assert.Equal(t, byte(nak|strobe), b)
}

func TestFromKeyMsgRune(t *testing.T) {
	b, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, ok)
	assert.Equal(t, byte('Q'|strobe), b)
}

func TestFromKeyMsgUnsupportedType(t *testing.T) {
	_, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, ok)
}
