package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/termfolio/internal/types"
)

// NavigationCommand returns execute function for scrolling to a section
func NavigationCommand(sectionID string) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return func() tea.Msg {
			return types.ScrollToSectionMsg{SectionID: sectionID}
		}
	}
}
