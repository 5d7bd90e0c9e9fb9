package sections

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/types"
)

type Achievements struct {
	ctx *types.AppContext
}

func NewAchievements(ctx *types.AppContext) *Achievements {
	return &Achievements{ctx: ctx}
}

func (a *Achievements) ID() string    { return types.SectionAchievements }
func (a *Achievements) Title() string { return "Achievements" }

func (a *Achievements) View(width int) string {
	w := contentWidth(width)
	theme := a.ctx.Theme

	blocks := []string{title(a.ctx, a.ID(), a.Title(), w)}
	for _, item := range a.ctx.Profile.Achievements() {
		head := theme.Heading().Render(item.Title)
		if item.Position != "" {
			head += "  " + theme.Highlight().Render(item.Position)
		}
		blocks = append(blocks,
			"",
			head,
			theme.Dim().Render(item.Organization+" · "+item.Date),
			wrap(item.Description, w, theme.Body()),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
