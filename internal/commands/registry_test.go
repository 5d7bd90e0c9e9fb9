package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termfolio/internal/types"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, types.SectionOrder, registry.Names(CategoryNavigation))
	assert.Equal(t,
		[]string{"email", "phone", "quit"},
		registry.Names(CategoryAction))
	assert.Equal(t,
		[]string{"mail", "github", "linkedin", "leetcode", "resume"},
		registry.Names(CategoryLink))
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name     string
		cmdName  string
		category CommandCategory
		found    bool
	}{
		{"action", "email", CategoryAction, true},
		{"link", "resume", CategoryLink, true},
		{"case insensitive", "GitHub", CategoryLink, true},
		{"link is not an action", "github", CategoryAction, false},
		{"section", "projects", CategoryNavigation, true},
		{"wrong category", "projects", CategoryAction, false},
		{"unknown", "fax", CategoryAction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := registry.Get(tt.cmdName, tt.category)
			if !tt.found {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.NotEmpty(t, cmd.Description)
		})
	}
}

func TestRegistry_Filter(t *testing.T) {
	registry := NewRegistry()

	all := registry.Filter("", CategoryNavigation)
	assert.Len(t, all, len(types.SectionOrder))

	got := registry.Filter("proj", CategoryNavigation)
	require.NotEmpty(t, got)
	assert.Equal(t, "projects", got[0].Name)

	links := registry.Filter("lin", CategoryLink)
	require.NotEmpty(t, links)
	assert.Equal(t, "linkedin", links[0].Name)

	assert.Empty(t, registry.Filter("zzz", CategoryAction))
}

func TestNavigationCommand(t *testing.T) {
	ctx, _, _ := newTestContext(t, false)
	registry := NewRegistry()

	for _, id := range types.SectionOrder {
		cmd := registry.Get(id, CategoryNavigation)
		require.NotNil(t, cmd)
		assert.Equal(t, types.ScrollToSectionMsg{SectionID: id}, cmd.Execute(ctx)())
	}
}

func TestQuitCommand(t *testing.T) {
	ctx, _, _ := newTestContext(t, false)
	quit := NewRegistry().Get("quit", CategoryAction)
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit.Execute(ctx)())
}
