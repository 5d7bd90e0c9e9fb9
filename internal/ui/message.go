package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ToastStyle selects the colours of a toast.
type ToastStyle int

const (
	ToastSuccess ToastStyle = iota
	ToastError
)

// RenderToast renders a notification pill. While entering it is drawn
// faint; long messages are truncated to maxWidth.
func RenderToast(text string, style ToastStyle, theme *Theme, entering bool, maxWidth int) string {
	if text == "" {
		return ""
	}

	prefix := "✓ "
	bg := theme.Success
	if style == ToastError {
		prefix = "✗ "
		bg = theme.Error
	}

	// Padding (2) plus the prefix glyph and space.
	limit := maxWidth - 4
	if limit < 20 {
		limit = 20
	}
	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit-1]) + "…"
	}

	s := lipgloss.NewStyle().
		Background(theme.Color(bg)).
		Foreground(theme.Color(theme.Background)).
		Bold(true).
		Padding(0, 1)
	if entering {
		s = s.Faint(true)
	}
	return s.Render(prefix + text)
}
