package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/types"
)

// Hero is the landing banner.
type Hero struct {
	ctx  *types.AppContext
	keys *keyboard.Keys
}

func NewHero(ctx *types.AppContext, keys *keyboard.Keys) *Hero {
	return &Hero{ctx: ctx, keys: keys}
}

func (h *Hero) ID() string    { return types.SectionHome }
func (h *Hero) Title() string { return "Home" }

func (h *Hero) View(width int) string {
	w := contentWidth(width)
	theme := h.ctx.Theme
	profile := h.ctx.Profile

	lines := []string{
		theme.Dim().Render(profile.Greeting()),
		theme.AppTitle().Render("Hi, I'm " + profile.Name()),
		theme.Highlight().Render(profile.Role()),
		"",
		wrap(profile.Summary(), w, theme.Body()),
		"",
		h.primaryActions(),
		h.quickActions(w),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (h *Hero) primaryActions() string {
	actions := []string{hint(h.ctx, keyboard.Label(h.keys.ViewWork), "View my work")}
	if h.ctx.Profile.ResumeURL() != "" {
		actions = append(actions, hint(h.ctx, keyboard.Label(h.keys.Resume), "Download resume"))
	}
	return strings.Join(actions, "   ")
}

// quickActions lists the social links and contact shortcuts, wrapping
// onto several lines on narrow terminals.
func (h *Hero) quickActions(width int) string {
	items := []string{}
	for _, link := range []struct {
		id  string
		key string
	}{
		{"github", keyboard.Label(h.keys.GitHub)},
		{"linkedin", keyboard.Label(h.keys.LinkedIn)},
		{"leetcode", keyboard.Label(h.keys.LeetCode)},
	} {
		if l, ok := h.ctx.Profile.Link(link.id); ok {
			items = append(items, hint(h.ctx, link.key, l.Label))
		}
	}
	items = append(items,
		hint(h.ctx, keyboard.Label(h.keys.CopyEmail), "Email"),
		hint(h.ctx, keyboard.Label(h.keys.Phone), phoneActionLabel(h.ctx)),
	)
	return flow(items, "  ", width)
}

// phoneActionLabel reflects what the phone action does on this device.
func phoneActionLabel(ctx *types.AppContext) string {
	if ctx.Device != nil && ctx.Device.IsMobile() {
		return "Call"
	}
	return "Copy phone"
}

// flow lays out items left to right, starting a new line when the next
// item would overflow width.
func flow(items []string, sep string, width int) string {
	var lines []string
	var current string
	for _, item := range items {
		switch {
		case current == "":
			current = item
		case lipgloss.Width(current)+lipgloss.Width(sep)+lipgloss.Width(item) > width:
			lines = append(lines, current)
			current = item
		default:
			current += sep + item
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
