package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which side of each adaptive colour is used.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Theme is a named palette plus the current light/dark mode. Colours are
// stored as light/dark pairs and resolved explicitly so the mode can be
// toggled at runtime instead of following the terminal background.
type Theme struct {
	Name string
	Mode Mode

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor
	Subtle     lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor
}

// Toggle flips between dark and light mode.
func (t *Theme) Toggle() {
	if t.Mode == ModeDark {
		t.Mode = ModeLight
		return
	}
	t.Mode = ModeDark
}

// Color resolves an adaptive colour for the current mode.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.Mode == ModeLight {
		return lipgloss.Color(c.Light)
	}
	return lipgloss.Color(c.Dark)
}

// Fg returns a style with the given foreground.
func (t *Theme) Fg(c lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color(c))
}

func (t *Theme) AppTitle() lipgloss.Style {
	return t.Fg(t.Primary).Bold(true)
}

// SectionTitle styles the heading of each page section.
func (t *Theme) SectionTitle() lipgloss.Style {
	return t.Fg(t.Primary).Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Color(t.Border))
}

func (t *Theme) Heading() lipgloss.Style {
	return t.Fg(t.Foreground).Bold(true)
}

func (t *Theme) Body() lipgloss.Style {
	return t.Fg(t.Foreground)
}

func (t *Theme) Dim() lipgloss.Style {
	return t.Fg(t.Muted)
}

func (t *Theme) Highlight() lipgloss.Style {
	return t.Fg(t.Accent).Bold(true)
}

func (t *Theme) Link() lipgloss.Style {
	return t.Fg(t.Secondary).Underline(true)
}

// Card frames a block of content.
func (t *Theme) Card(selected bool) lipgloss.Style {
	border := t.Border
	if selected {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Color(border)).
		Padding(0, 1)
}

// Tag renders a small pill such as a tech badge.
func (t *Theme) Tag() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Color(t.Background)).
		Background(t.Color(t.Secondary)).
		Padding(0, 1)
}

// Page is the base style painted behind the whole view.
func (t *Theme) Page() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Color(t.Foreground)).
		Background(t.Color(t.Background))
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return &Theme{
		Name:       "charm",
		Primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		Secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		Accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		Foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		Muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		Error:      lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		Success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		Warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		Border:     lipgloss.AdaptiveColor{Light: "250", Dark: "240"},
		Subtle:     lipgloss.AdaptiveColor{Light: "252", Dark: "237"},
		Background: lipgloss.AdaptiveColor{Light: "255", Dark: "235"},
	}
}

// ThemeDracula returns a Dracula-inspired theme. The light side uses
// Alucard, Dracula's official light variant.
func ThemeDracula() *Theme {
	return &Theme{
		Name:       "dracula",
		Primary:    lipgloss.AdaptiveColor{Light: "#644AC9", Dark: "#bd93f9"},
		Secondary:  lipgloss.AdaptiveColor{Light: "#036A96", Dark: "#8be9fd"},
		Accent:     lipgloss.AdaptiveColor{Light: "#A3144D", Dark: "#ff79c6"},
		Foreground: lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#f8f8f2"},
		Muted:      lipgloss.AdaptiveColor{Light: "#635D97", Dark: "#6272a4"},
		Error:      lipgloss.AdaptiveColor{Light: "#CB3A2A", Dark: "#ff5555"},
		Success:    lipgloss.AdaptiveColor{Light: "#14710A", Dark: "#50fa7b"},
		Warning:    lipgloss.AdaptiveColor{Light: "#846E15", Dark: "#f1fa8c"},
		Border:     lipgloss.AdaptiveColor{Light: "#CFCFDE", Dark: "#44475a"},
		Subtle:     lipgloss.AdaptiveColor{Light: "#ECE9DF", Dark: "#343746"},
		Background: lipgloss.AdaptiveColor{Light: "#FFFBEB", Dark: "#282a36"},
	}
}

// ThemeCatppuccin pairs Catppuccin Latte (light) with Mocha (dark).
func ThemeCatppuccin() *Theme {
	return &Theme{
		Name:       "catppuccin",
		Primary:    lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#cba6f7"}, // Mauve
		Secondary:  lipgloss.AdaptiveColor{Light: "#179299", Dark: "#89dceb"}, // Sky
		Accent:     lipgloss.AdaptiveColor{Light: "#ea76cb", Dark: "#f5c2e7"}, // Pink
		Foreground: lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"},
		Muted:      lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#7f849c"},
		Error:      lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"},
		Success:    lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"},
		Warning:    lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"},
		Border:     lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#45475a"},
		Subtle:     lipgloss.AdaptiveColor{Light: "#ccd0da", Dark: "#313244"},
		Background: lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"},
	}
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return &Theme{
		Name:       "nord",
		Primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}, // Frost blue
		Secondary:  lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		Accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}, // Aurora purple
		Foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		Muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		Error:      lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		Success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		Warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},
		Border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		Subtle:     lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#434c5e"},
		Background: lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"},
	}
}

// ThemeGruvbox returns a Gruvbox-inspired theme
func ThemeGruvbox() *Theme {
	return &Theme{
		Name:       "gruvbox",
		Primary:    lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}, // Orange
		Secondary:  lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}, // Green
		Accent:     lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"}, // Purple
		Foreground: lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"},
		Muted:      lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"},
		Error:      lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"},
		Success:    lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"},
		Warning:    lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"},
		Border:     lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"},
		Subtle:     lipgloss.AdaptiveColor{Light: "#ebdbb2", Dark: "#3c3836"},
		Background: lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"},
	}
}

// GetTheme returns a theme by name, defaulting to Charm. The mode follows
// the terminal background until toggled.
func GetTheme(name string) *Theme {
	var t *Theme
	switch name {
	case "dracula":
		t = ThemeDracula()
	case "catppuccin":
		t = ThemeCatppuccin()
	case "nord":
		t = ThemeNord()
	case "gruvbox":
		t = ThemeGruvbox()
	default:
		t = ThemeCharm()
	}
	if !lipgloss.HasDarkBackground() {
		t.Mode = ModeLight
	}
	return t
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord", "gruvbox"}
}
