package sections

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/types"
)

// Contact lists every way to reach the profile owner with the key that
// triggers each one.
type Contact struct {
	ctx  *types.AppContext
	keys *keyboard.Keys
}

func NewContact(ctx *types.AppContext, keys *keyboard.Keys) *Contact {
	return &Contact{ctx: ctx, keys: keys}
}

func (c *Contact) ID() string    { return types.SectionContact }
func (c *Contact) Title() string { return "Get In Touch" }

type contactMethod struct {
	key   string
	label string
	value string
	hint  string
}

func (c *Contact) methods() []contactMethod {
	contact := c.ctx.Profile.Contact()
	phoneHint := "Copy number"
	if c.ctx.Device != nil && c.ctx.Device.IsMobile() {
		phoneHint = "Call now"
	}

	methods := []contactMethod{
		{keyboard.Label(c.keys.CopyEmail), "Email", contact.Email, "Copy address"},
		{keyboard.Label(c.keys.OpenMail), "Write", contact.Email, "Open mail client"},
		{keyboard.Label(c.keys.Phone), "Phone", contact.PhoneDisplay, phoneHint},
	}
	for _, link := range []struct {
		id   string
		key  string
		hint string
	}{
		{"linkedin", keyboard.Label(c.keys.LinkedIn), "Connect professionally"},
		{"github", keyboard.Label(c.keys.GitHub), "View repositories"},
		{"leetcode", keyboard.Label(c.keys.LeetCode), "View solutions"},
	} {
		if l, ok := c.ctx.Profile.Link(link.id); ok {
			methods = append(methods, contactMethod{link.key, l.Label, l.URL, link.hint})
		}
	}
	return methods
}

func (c *Contact) View(width int) string {
	w := contentWidth(width)
	theme := c.ctx.Theme

	blocks := []string{title(c.ctx, c.ID(), c.Title(), w)}
	for _, m := range c.methods() {
		key := theme.Highlight().Width(4).Render("[" + m.key + "]")
		label := theme.Heading().Width(10).Render(m.label)
		row := lipgloss.JoinHorizontal(lipgloss.Top, key, label, theme.Body().Render(m.value))
		if lipgloss.Width(row)+lipgloss.Width(m.hint)+3 <= w {
			row += theme.Dim().Render(" · " + m.hint)
		}
		blocks = append(blocks, row)
	}

	profile := c.ctx.Profile
	if profile.Location() != "" || profile.Graduation() != "" {
		note := profile.Location()
		if profile.Graduation() != "" {
			if note != "" {
				note += " · "
			}
			note += profile.Graduation()
		}
		blocks = append(blocks, "", wrap(note, w, theme.Dim()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
