package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/JovenSoh/bookshelf/pkg/tuitest"
)

func TestKeyMap_GridMode(t *testing.T) {
	k := defaultKeyMap()
	k.gridMode()

	assert.True(t, key.Matches(tuitest.KeyPress('l'), k.Right))
	assert.True(t, key.Matches(tuitest.KeyPress(' '), k.Activate))
	assert.True(t, key.Matches(tuitest.KeyEnter(), k.Activate))
	assert.False(t, k.Back.Enabled())
	assert.False(t, k.Notes.Enabled())
}

func TestKeyMap_DetailMode(t *testing.T) {
	k := defaultKeyMap()
	k.detailMode()

	assert.True(t, key.Matches(tuitest.KeyEsc(), k.Back))
	assert.False(t, key.Matches(tuitest.KeyPress('o'), k.Open))
	assert.False(t, key.Matches(tuitest.KeyEnter(), k.Activate))
	assert.True(t, k.Quit.Enabled())
}

func TestKeyMap_HelpSkipsDisabled(t *testing.T) {
	k := defaultKeyMap()
	k.gridMode()

	var enabled []string
	for _, b := range k.ShortHelp() {
		if b.Enabled() {
			enabled = append(enabled, b.Help().Key)
		}
	}

	assert.Equal(t, []string{"enter", "o", "?", "q"}, enabled)
}
