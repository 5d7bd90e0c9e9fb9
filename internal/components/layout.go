package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout stacks the header, toast line, scrollable body, filter bar and
// key hints.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the rows left for the page body.
func (l *Layout) CalculateBodyHeight(filterVisible bool, hintsHeight int) int {
	// header (1) + toast line (1) + hints
	reserved := 2 + hintsHeight
	if filterVisible {
		reserved++
	}
	bodyHeight := l.height - reserved
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// Render builds the full layout. Empty filter and hints are skipped.
func (l *Layout) Render(header, toast, body, filter, hints string) string {
	sections := []string{header, toast, body}
	if filter != "" {
		sections = append(sections, filter)
	}
	if hints != "" {
		sections = append(sections, hints)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
