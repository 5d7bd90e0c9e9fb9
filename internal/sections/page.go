// Package sections renders the portfolio page: hero, about, skills,
// projects, achievements, contact and footer, stacked in that order.
package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/types"
)

// maxContentWidth keeps paragraphs readable on wide terminals.
const maxContentWidth = 100

// Section is one block of the page.
type Section interface {
	ID() string
	Title() string
	View(width int) string
}

// Page owns every section and knows where each one starts once rendered.
type Page struct {
	sections []Section
	footer   *Footer
	skills   *Skills
	projects *Projects
	offsets  map[string]int
	filter   string
}

// NewPage builds all sections from the app context. year is printed in
// the footer copyright.
func NewPage(ctx *types.AppContext, keys *keyboard.Keys, year int) *Page {
	skills := NewSkills(ctx)
	projects := NewProjects(ctx, keys)
	return &Page{
		sections: []Section{
			NewHero(ctx, keys),
			NewAbout(ctx),
			skills,
			projects,
			NewAchievements(ctx),
			NewContact(ctx, keys),
		},
		footer:   NewFooter(ctx, year),
		skills:   skills,
		projects: projects,
		offsets:  map[string]int{},
	}
}

// Sections returns the sections in page order.
func (p *Page) Sections() []Section {
	return p.sections
}

// Projects returns the projects section, which carries selection state.
func (p *Page) Projects() *Projects {
	return p.projects
}

// SetFilter narrows skills and projects to those matching query.
func (p *Page) SetFilter(query string) {
	p.filter = query
	p.skills.SetFilter(query)
	p.projects.SetFilter(query)
}

func (p *Page) Filter() string {
	return p.filter
}

// Render draws the whole page at width and records section offsets.
func (p *Page) Render(width int) string {
	blocks := make([]string, 0, len(p.sections)+1)
	line := 0
	for _, s := range p.sections {
		p.offsets[s.ID()] = line
		block := s.View(width)
		blocks = append(blocks, block)
		line += lipgloss.Height(block) + 1
	}
	blocks = append(blocks, p.footer.View(width))
	return strings.Join(blocks, "\n\n")
}

// Offset returns the first line of a section from the last Render.
func (p *Page) Offset(sectionID string) int {
	return p.offsets[sectionID]
}

// SectionAt returns the section containing line.
func (p *Page) SectionAt(line int) string {
	current := p.sections[0].ID()
	for _, s := range p.sections {
		if p.offsets[s.ID()] <= line {
			current = s.ID()
		}
	}
	return current
}

// Neighbour returns the section delta steps away from id, clamped to the
// first and last section.
func (p *Page) Neighbour(id string, delta int) string {
	idx := 0
	for i, s := range p.sections {
		if s.ID() == id {
			idx = i
		}
	}
	idx += delta
	idx = max(0, min(idx, len(p.sections)-1))
	return p.sections[idx].ID()
}

func contentWidth(width int) int {
	w := width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// wrap word-wraps text to width.
func wrap(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(text)
}

// hint renders "[k] label".
func hint(ctx *types.AppContext, keyLabel, label string) string {
	return ctx.Theme.Highlight().Render("["+keyLabel+"]") + " " + ctx.Theme.Body().Render(label)
}

// title renders a section heading with its jump number.
func title(ctx *types.AppContext, id, text string, width int) string {
	n := 0
	for i, s := range types.SectionOrder {
		if s == id {
			n = i + 1
		}
	}
	label := text
	if n > 0 {
		label = ctx.Theme.Dim().Render(string(rune('0'+n))+" ") + text
	}
	return ctx.Theme.SectionTitle().Width(width).Render(label)
}
