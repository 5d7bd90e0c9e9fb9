package sections

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/types"
)

// Skills lists skill categories with a level badge per skill.
type Skills struct {
	ctx    *types.AppContext
	all    []config.SkillCategory
	shown  []config.SkillCategory
	filter string
}

func NewSkills(ctx *types.AppContext) *Skills {
	all := ctx.Profile.SkillCategories()
	return &Skills{ctx: ctx, all: all, shown: all}
}

func (s *Skills) ID() string    { return types.SectionSkills }
func (s *Skills) Title() string { return "Technical Skills" }

// SetFilter narrows the visible skills.
func (s *Skills) SetFilter(query string) {
	s.filter = query
	s.shown = FilterSkills(s.all, query)
}

// Visible returns the categories currently shown.
func (s *Skills) Visible() []config.SkillCategory {
	return s.shown
}

func (s *Skills) View(width int) string {
	w := contentWidth(width)
	theme := s.ctx.Theme

	blocks := []string{title(s.ctx, s.ID(), s.Title(), w), s.legend()}
	if len(s.shown) == 0 {
		blocks = append(blocks, theme.Dim().Render("No skills match \""+s.filter+"\""))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	for _, category := range s.shown {
		blocks = append(blocks, "", theme.Heading().Render(category.Title))
		for _, skill := range category.Skills {
			name := theme.Body().Bold(true).Render(skill.Name)
			line := name + " " + s.badge(skill.Level)
			blocks = append(blocks, line)
			if skill.Description != "" {
				blocks = append(blocks, wrap("  "+skill.Description, w, theme.Dim()))
			}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (s *Skills) legend() string {
	return s.badge(config.LevelExpert) + " " +
		s.badge(config.LevelProficient) + " " +
		s.badge(config.LevelIntermediate)
}

func (s *Skills) badge(level config.SkillLevel) string {
	theme := s.ctx.Theme
	color := theme.Muted
	switch level {
	case config.LevelExpert:
		color = theme.Success
	case config.LevelProficient:
		color = theme.Primary
	case config.LevelIntermediate:
		color = theme.Warning
	}
	return lipgloss.NewStyle().
		Foreground(theme.Color(color)).
		Render("● " + string(level))
}
