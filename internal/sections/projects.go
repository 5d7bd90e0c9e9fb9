package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/components"
	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/types"
)

// Projects renders one card per project. One card is selected at a time;
// the selected card can be expanded to show its details.
type Projects struct {
	ctx      *types.AppContext
	keys     *keyboard.Keys
	all      []config.Project
	shown    []config.Project
	selected int
	expanded map[string]bool
	filter   string
}

func NewProjects(ctx *types.AppContext, keys *keyboard.Keys) *Projects {
	all := ctx.Profile.Projects()
	return &Projects{
		ctx:      ctx,
		keys:     keys,
		all:      all,
		shown:    all,
		expanded: map[string]bool{},
	}
}

func (p *Projects) ID() string    { return types.SectionProjects }
func (p *Projects) Title() string { return "Featured Projects" }

// SetFilter narrows the visible projects and keeps the selection in range.
func (p *Projects) SetFilter(query string) {
	p.filter = query
	p.shown = FilterProjects(p.all, query)
	p.selected = max(0, min(p.selected, len(p.shown)-1))
}

// Visible returns the projects currently shown.
func (p *Projects) Visible() []config.Project {
	return p.shown
}

// Next moves the selection down, wrapping at the end.
func (p *Projects) Next() {
	if len(p.shown) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.shown)
}

// Prev moves the selection up, wrapping at the start.
func (p *Projects) Prev() {
	if len(p.shown) == 0 {
		return
	}
	p.selected = (p.selected - 1 + len(p.shown)) % len(p.shown)
}

// Selected returns the selected project, if any is visible.
func (p *Projects) Selected() (config.Project, bool) {
	if len(p.shown) == 0 {
		return config.Project{}, false
	}
	return p.shown[p.selected], true
}

// ToggleSelected expands or collapses the selected project and reports
// whether it is now expanded.
func (p *Projects) ToggleSelected() bool {
	project, ok := p.Selected()
	if !ok {
		return false
	}
	p.expanded[project.ID] = !p.expanded[project.ID]
	return p.expanded[project.ID]
}

// IsExpanded reports whether the project with id shows its details.
func (p *Projects) IsExpanded(id string) bool {
	return p.expanded[id]
}

func (p *Projects) View(width int) string {
	w := contentWidth(width)
	theme := p.ctx.Theme

	blocks := []string{
		title(p.ctx, p.ID(), p.Title(), w),
		theme.Dim().Render(fmt.Sprintf("%s/%s select · %s details",
			keyboard.Label(p.keys.PrevProject),
			keyboard.Label(p.keys.NextProject),
			keyboard.Label(p.keys.ToggleProject))),
	}
	if len(p.shown) == 0 {
		blocks = append(blocks, theme.Dim().Render("No projects match \""+p.filter+"\""))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	for i, project := range p.shown {
		blocks = append(blocks, p.card(project, i == p.selected, w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (p *Projects) card(project config.Project, selected bool, width int) string {
	theme := p.ctx.Theme
	// border and padding take four columns
	inner := width - 4

	lines := []string{
		theme.Heading().Render(project.Title) + "  " + theme.Dim().Render(project.Category),
		wrap(project.ShortDescription, inner, theme.Body()),
		TechBadges(theme.Tag().Render, theme.Dim().Render, project.TechStack, components.MaxTechBadges),
	}
	if p.expanded[project.ID] {
		lines = append(lines, p.details(project, inner))
	}
	return theme.Card(selected).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (p *Projects) details(project config.Project, width int) string {
	theme := p.ctx.Theme
	var b []string

	b = append(b, "", wrap(project.FullDescription, width, theme.Body()))
	if project.ProblemStatement != "" {
		b = append(b, "", theme.Highlight().Render("Problem"), wrap(project.ProblemStatement, width, theme.Body()))
	}
	if project.Solution != "" {
		b = append(b, "", theme.Highlight().Render("Solution"), wrap(project.Solution, width, theme.Body()))
	}
	if len(project.Features) > 0 {
		b = append(b, "", theme.Highlight().Render("Key features"), bullets(project.Features, width, theme.Body()))
	}
	if len(project.Achievements) > 0 {
		b = append(b, "", theme.Highlight().Render("Achievements"), bullets(project.Achievements, width, theme.Body()))
	}
	b = append(b, "", theme.Highlight().Render("Tech stack"),
		TechBadges(theme.Tag().Render, theme.Dim().Render, project.TechStack, len(project.TechStack)))
	if project.LiveDemo != "" {
		b = append(b, "", theme.Dim().Render("Live demo: ")+theme.Link().Render(project.LiveDemo))
	}
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

// TechBadges renders up to limit techs as tags followed by "+N more" for
// the remainder.
func TechBadges(tag, more func(...string) string, techs []string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	shown := techs
	if len(techs) > limit {
		shown = techs[:limit]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		parts = append(parts, tag(t))
	}
	if rest := len(techs) - len(shown); rest > 0 {
		parts = append(parts, more(fmt.Sprintf("+%d more", rest)))
	}
	return strings.Join(parts, " ")
}

func bullets(items []string, width int, style lipgloss.Style) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = wrap("• "+item, width, style)
	}
	return strings.Join(out, "\n")
}
