package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/device"
	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

func newTestPage(t *testing.T, mobile bool) (*Page, *types.AppContext) {
	t.Helper()
	profile, err := config.Default()
	require.NoError(t, err)
	ctx := types.NewAppContext(ui.ThemeCharm(), profile, nil, device.Static(mobile), nil)
	return NewPage(ctx, keyboard.Default(), 2026), ctx
}

func TestPage_RenderContainsEverySection(t *testing.T) {
	page, ctx := newTestPage(t, false)
	out := page.Render(120)

	// the hero has no heading of its own
	for _, s := range page.Sections()[1:] {
		assert.Contains(t, out, s.Title())
	}
	assert.Contains(t, out, ctx.Profile.Name())
	assert.Contains(t, out, ctx.Profile.Contact().Email)
	assert.Contains(t, out, ctx.Profile.Contact().PhoneDisplay)
	assert.Contains(t, out, "© 2026")
	assert.Contains(t, out, "Copy phone")
}

func TestPage_MobilePhoneLabel(t *testing.T) {
	page, _ := newTestPage(t, true)
	out := page.Render(120)
	assert.Contains(t, out, "Call now")
	assert.NotContains(t, out, "Copy number")
}

func TestPage_Offsets(t *testing.T) {
	page, _ := newTestPage(t, false)
	out := page.Render(100)
	lines := strings.Split(out, "\n")

	prev := -1
	for _, id := range types.SectionOrder {
		off := page.Offset(id)
		assert.Greater(t, off, prev, "section %s starts after the previous one", id)
		assert.Less(t, off, len(lines))
		assert.Equal(t, id, page.SectionAt(off))
		prev = off
	}
	assert.Equal(t, types.SectionHome, page.SectionAt(0))
	assert.Equal(t, types.SectionContact, page.SectionAt(len(lines)-1))
}

func TestPage_OffsetsPointAtTitles(t *testing.T) {
	page, _ := newTestPage(t, false)
	lines := strings.Split(page.Render(100), "\n")

	for _, s := range page.Sections()[1:] {
		assert.Contains(t, lines[page.Offset(s.ID())], s.Title())
	}
}

func TestPage_Neighbour(t *testing.T) {
	page, _ := newTestPage(t, false)

	assert.Equal(t, types.SectionAbout, page.Neighbour(types.SectionHome, 1))
	assert.Equal(t, types.SectionHome, page.Neighbour(types.SectionHome, -1))
	assert.Equal(t, types.SectionContact, page.Neighbour(types.SectionContact, 1))
	assert.Equal(t, types.SectionSkills, page.Neighbour(types.SectionContact, -3))
}

func TestPage_Filter(t *testing.T) {
	page, _ := newTestPage(t, false)

	page.SetFilter("qqqqzzzz")
	out := page.Render(120)
	assert.Equal(t, "qqqqzzzz", page.Filter())
	assert.Contains(t, out, `No projects match "qqqqzzzz"`)
	assert.Contains(t, out, `No skills match "qqqqzzzz"`)

	page.SetFilter("")
	assert.Len(t, page.Projects().Visible(), 4)
}

func TestProjects_Selection(t *testing.T) {
	page, _ := newTestPage(t, false)
	projects := page.Projects()

	first, ok := projects.Selected()
	require.True(t, ok)
	assert.Equal(t, "sentinelguard", first.ID)

	projects.Prev()
	last, _ := projects.Selected()
	assert.Equal(t, projects.Visible()[len(projects.Visible())-1].ID, last.ID)

	projects.Next()
	again, _ := projects.Selected()
	assert.Equal(t, first.ID, again.ID)
}

func TestProjects_ToggleDetails(t *testing.T) {
	page, _ := newTestPage(t, false)
	projects := page.Projects()
	selected, _ := projects.Selected()

	collapsed := page.Render(120)
	assert.True(t, projects.ToggleSelected())
	assert.True(t, projects.IsExpanded(selected.ID))

	expanded := page.Render(120)
	assert.Greater(t, strings.Count(expanded, "\n"), strings.Count(collapsed, "\n"))
	assert.Contains(t, expanded, "Key features")

	assert.False(t, projects.ToggleSelected())
	assert.NotContains(t, page.Render(120), "Key features")
}

func TestProjects_FilterKeepsSelectionInRange(t *testing.T) {
	page, _ := newTestPage(t, false)
	projects := page.Projects()
	projects.Prev() // last project

	page.SetFilter("qqqqzzzz")
	_, ok := projects.Selected()
	assert.False(t, ok)
	assert.False(t, projects.ToggleSelected())
	projects.Next()

	page.SetFilter("")
	_, ok = projects.Selected()
	assert.True(t, ok)
}

func TestTechBadges(t *testing.T) {
	plain := func(s ...string) string { return strings.Join(s, "") }
	techs := []string{"Go", "Rust", "Zig", "C", "Lua", "Nim"}

	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{"collapses the rest", 4, "Go Rust Zig C +2 more"},
		{"exact fit", 6, "Go Rust Zig C Lua Nim"},
		{"limit above length", 10, "Go Rust Zig C Lua Nim"},
		{"zero limit", 0, "+6 more"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TechBadges(plain, plain, techs, tt.limit))
		})
	}
}
