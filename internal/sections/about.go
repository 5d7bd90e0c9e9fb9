package sections

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/types"
)

// About shows the biography paragraphs and the education timeline.
type About struct {
	ctx *types.AppContext
}

func NewAbout(ctx *types.AppContext) *About {
	return &About{ctx: ctx}
}

func (a *About) ID() string    { return types.SectionAbout }
func (a *About) Title() string { return "About Me" }

func (a *About) View(width int) string {
	w := contentWidth(width)
	theme := a.ctx.Theme

	blocks := []string{title(a.ctx, a.ID(), a.Title(), w)}
	for _, p := range a.ctx.Profile.About() {
		blocks = append(blocks, wrap(p, w, theme.Body()), "")
	}

	timeline := a.ctx.Profile.Timeline()
	if len(timeline) > 0 {
		blocks = append(blocks, theme.Heading().Render("Journey"))
		for _, entry := range timeline {
			year := theme.Highlight().Width(12).Render(entry.Year)
			detail := lipgloss.JoinVertical(lipgloss.Left,
				theme.Body().Bold(true).Render(entry.Title),
				theme.Dim().Render(entry.Institution+" · "+entry.Location),
			)
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, year, detail))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
