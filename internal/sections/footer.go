package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/types"
)

// Footer closes the page with quick links and the copyright line.
type Footer struct {
	ctx  *types.AppContext
	year int
}

func NewFooter(ctx *types.AppContext, year int) *Footer {
	return &Footer{ctx: ctx, year: year}
}

func (f *Footer) View(width int) string {
	w := contentWidth(width)
	theme := f.ctx.Theme
	profile := f.ctx.Profile

	nav := make([]string, 0, len(types.SectionOrder))
	for i, id := range types.SectionOrder {
		nav = append(nav, theme.Dim().Render(fmt.Sprintf("%d %s", i+1, id)))
	}

	links := profile.Links()
	social := make([]string, 0, len(links))
	for _, l := range links {
		social = append(social, theme.Link().Render(l.URL))
	}

	rule := theme.Dim().Render(strings.Repeat("─", w))
	blocks := []string{
		rule,
		theme.AppTitle().Render(profile.Name()),
		wrap(profile.Footer(), w, theme.Dim()),
		flow(nav, "  ", w),
	}
	if len(social) > 0 {
		blocks = append(blocks, flow(social, "  ", w))
	}
	blocks = append(blocks, theme.Dim().Render(
		fmt.Sprintf("© %d %s. All rights reserved.", f.year, profile.Name())))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
