package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

// NavItem is one entry of the header navigation.
type NavItem struct {
	ID    string
	Title string
}

// Header shows the owner's name, the section navigation and the theme mode.
type Header struct {
	appName string
	items   []NavItem
	active  string
	width   int
	theme   *ui.Theme
}

func NewHeader(ctx *types.AppContext, items []NavItem) *Header {
	return &Header{
		appName: ctx.Profile.Name(),
		items:   items,
		theme:   ctx.Theme,
	}
}

func (h *Header) SetActive(sectionID string) {
	h.active = sectionID
}

func (h *Header) Active() string {
	return h.active
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	left := h.theme.AppTitle().Render(h.appName)

	modeIcon := "☾"
	if h.theme.Mode == ui.ModeLight {
		modeIcon = "☀"
	}
	right := h.theme.Dim().Render(modeIcon + " " + h.theme.Mode.String())

	// Nav is dropped first when the terminal is narrow.
	nav := h.renderNav()
	if lipgloss.Width(left)+lipgloss.Width(nav)+lipgloss.Width(right)+4 > h.width {
		nav = ""
	}

	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(nav) - lipgloss.Width(right)
	if spacing < 2 {
		spacing = 2
	}
	gapLeft := spacing / 2
	gapRight := spacing - gapLeft

	return left + strings.Repeat(" ", gapLeft) + nav + strings.Repeat(" ", gapRight) + right
}

func (h *Header) renderNav() string {
	parts := make([]string, 0, len(h.items))
	for _, item := range h.items {
		if item.ID == h.active {
			parts = append(parts, h.theme.Highlight().Render(item.Title))
			continue
		}
		parts = append(parts, h.theme.Dim().Render(item.Title))
	}
	return strings.Join(parts, h.theme.Dim().Render(" · "))
}
