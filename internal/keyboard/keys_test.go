package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefault_NoDuplicateKeys(t *testing.T) {
	keys := Default()
	seen := map[string]string{}

	for _, group := range keys.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				if prev, ok := seen[k]; ok {
					t.Errorf("key %q bound to both %q and %q", k, prev, b.Help().Desc)
				}
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestDefault_Matches(t *testing.T) {
	keys := Default()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, keys.CopyEmail))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, keys.NextSection))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")}, keys.JumpSection))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, keys.Quit))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "e", Label(Default().CopyEmail))
}
