package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds all keyboard bindings for termfolio. It implements
// help.KeyMap.
type Keys struct {
	// Scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	JumpSection key.Binding // 1-6
	ViewWork    key.Binding

	// Projects
	PrevProject   key.Binding
	NextProject   key.Binding
	ToggleProject key.Binding

	// Contact actions
	CopyEmail key.Binding
	Phone     key.Binding
	OpenMail  key.Binding
	GitHub    key.Binding
	LinkedIn  key.Binding
	LeetCode  key.Binding
	Resume    key.Binding

	// Global
	Filter      key.Binding
	Back        key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// Default returns the default key bindings.
func Default() *Keys {
	return &Keys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		JumpSection: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to section")),
		ViewWork:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view my work")),

		PrevProject:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous project")),
		NextProject:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next project")),
		ToggleProject: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "project details")),

		CopyEmail: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "copy email")),
		Phone:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy phone")),
		OpenMail:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "open mail")),
		GitHub:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "GitHub")),
		LinkedIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "LinkedIn")),
		LeetCode:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "LeetCode")),
		Resume:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),

		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter skills & projects")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear / close")),
		ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.CopyEmail, k.Phone, k.Filter, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextSection, k.PrevSection, k.JumpSection, k.ViewWork, k.PrevProject, k.NextProject, k.ToggleProject},
		{k.CopyEmail, k.Phone, k.OpenMail, k.GitHub, k.LinkedIn, k.LeetCode, k.Resume},
		{k.Filter, k.Back, k.ToggleTheme, k.Help, k.Quit},
	}
}

// Label returns the first key of a binding, for inline hints.
func Label(b key.Binding) string {
	return b.Help().Key
}
