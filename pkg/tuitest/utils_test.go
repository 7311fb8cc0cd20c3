package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mBold\x1b[0m   \nplain  \n\n"

	assert.Equal(t, "Bold\nplain", StripANSI(in))
}

func TestKeyPress(t *testing.T) {
	assert.Equal(t, "q", KeyPress('q').String())
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "esc", KeyEsc().String())
}

func TestKeyPressString(t *testing.T) {
	msgs := KeyPressString("ab")

	assert.Len(t, msgs, 2)
	assert.Equal(t, "b", msgs[1].(tea.KeyMsg).String())
}
