// Package app is the root Bubble Tea model: it owns the page, the header,
// the toast and the filter bar, and routes keys to commands.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/commands"
	"github.com/renato0307/termfolio/internal/components"
	"github.com/renato0307/termfolio/internal/keyboard"
	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/messages"
	"github.com/renato0307/termfolio/internal/notify"
	"github.com/renato0307/termfolio/internal/sections"
	"github.com/renato0307/termfolio/internal/types"
)

// toastClosedMsg is the toast's close callback.
type toastClosedMsg struct{}

type Model struct {
	ctx      *types.AppContext
	keys     *keyboard.Keys
	registry *commands.Registry
	notifier notify.Notifier

	page     *sections.Page
	header   *components.Header
	toast    *components.Toast
	layout   *components.Layout
	viewport viewport.Model
	filter   textinput.Model
	help     help.Model

	filtering bool
	width     int
	height    int
}

// Option customises a Model.
type Option func(*Model)

// WithNotifier mirrors every toast to n.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) {
		m.notifier = n
	}
}

// WithYear fixes the footer year.
func WithYear(year int) Option {
	return func(m *Model) {
		m.page = sections.NewPage(m.ctx, m.keys, year)
	}
}

func NewModel(ctx *types.AppContext, opts ...Option) Model {
	keys := keyboard.Default()

	navItems := make([]components.NavItem, 0, len(types.SectionOrder))
	for _, id := range types.SectionOrder {
		navItems = append(navItems, components.NavItem{ID: id, Title: navTitle(id)})
	}
	header := components.NewHeader(ctx, navItems)
	header.SetActive(types.SectionHome)
	header.SetWidth(80)

	toast := components.NewToast(ctx.Theme)
	toast.SetWidth(80)
	toast.SetOnClose(func() tea.Msg { return toastClosedMsg{} })

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter skills and projects"
	filter.CharLimit = 64

	m := Model{
		ctx:      ctx,
		keys:     keys,
		registry: commands.NewRegistry(),
		notifier: notify.Nop{},
		page:     sections.NewPage(ctx, keys, time.Now().Year()),
		header:   header,
		toast:    toast,
		layout:   components.NewLayout(80, 24),
		viewport: viewport.New(80, 20),
		filter:   filter,
		help:     help.New(),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize()
	return m
}

func navTitle(id string) string {
	switch id {
	case types.SectionHome:
		return "Home"
	case types.SectionAbout:
		return "About"
	case types.SectionSkills:
		return "Skills"
	case types.SectionProjects:
		return "Projects"
	case types.SectionAchievements:
		return "Achievements"
	case types.SectionContact:
		return "Contact"
	}
	return id
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncActiveSection()
		return m, cmd

	case types.ScrollToSectionMsg:
		m.scrollTo(msg.SectionID)
		return m, nil

	case types.ToastMsg:
		logging.Debug("Toast requested", "message", msg.Message, "variant", msg.Variant.String())
		return m, tea.Batch(
			m.toast.Open(msg.Message, msg.Variant),
			notify.MirrorCmd(m.notifier, msg),
		)

	case components.ToastDismissMsg, components.ToastSettledMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case toastClosedMsg:
		logging.Debug("Toast closed")
		return m, nil
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.toast.Reset()
		return m, m.run("quit", commands.CategoryAction)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.resize()
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.page.Filter() != "" {
			m.clearFilter()
			return m, nil
		}
		m.toast.Close()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.ctx.Theme.Toggle()
		m.refresh()
		return m, messages.SuccessCmd("Switched to %s mode", m.ctx.Theme.Mode.String())

	case key.Matches(msg, m.keys.NextSection):
		return m, m.run(m.page.Neighbour(m.header.Active(), 1), commands.CategoryNavigation)

	case key.Matches(msg, m.keys.PrevSection):
		return m, m.run(m.page.Neighbour(m.header.Active(), -1), commands.CategoryNavigation)

	case key.Matches(msg, m.keys.JumpSection):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(types.SectionOrder) {
			return m, m.run(types.SectionOrder[idx], commands.CategoryNavigation)
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewWork):
		return m, m.run(types.SectionProjects, commands.CategoryNavigation)

	case key.Matches(msg, m.keys.NextProject):
		m.page.Projects().Next()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevProject):
		m.page.Projects().Prev()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ToggleProject):
		m.page.Projects().ToggleSelected()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CopyEmail):
		return m, m.run("email", commands.CategoryAction)
	case key.Matches(msg, m.keys.Phone):
		return m, m.run("phone", commands.CategoryAction)
	case key.Matches(msg, m.keys.OpenMail):
		return m, m.run("mail", commands.CategoryLink)
	case key.Matches(msg, m.keys.GitHub):
		return m, m.run("github", commands.CategoryLink)
	case key.Matches(msg, m.keys.LinkedIn):
		return m, m.run("linkedin", commands.CategoryLink)
	case key.Matches(msg, m.keys.LeetCode):
		return m, m.run("leetcode", commands.CategoryLink)
	case key.Matches(msg, m.keys.Resume):
		return m, m.run("resume", commands.CategoryLink)

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.syncActiveSection()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.syncActiveSection()
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		m.scroll(msg)
		return m, nil
	}
	return m, nil
}

// scroll moves the viewport for the scrolling keys.
func (m *Model) scroll(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	}
	m.syncActiveSection()
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.clearFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.page.Filter() {
		m.page.SetFilter(m.filter.Value())
		m.refresh()
	}
	return m, cmd
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.page.SetFilter("")
	m.resize()
}

// run executes a registry command against the app context.
func (m *Model) run(name string, category commands.CommandCategory) tea.Cmd {
	cmd := m.registry.Get(name, category)
	if cmd == nil {
		logging.Warn("Unknown command", "name", name)
		return nil
	}
	logging.Debug("Running command", "name", name)
	return cmd.Execute(commands.CommandContext{App: m.ctx})
}

func (m *Model) scrollTo(sectionID string) {
	m.viewport.SetYOffset(m.page.Offset(sectionID))
	m.header.SetActive(sectionID)
}

// syncActiveSection highlights the section at the top of the viewport, or
// the last section once the page is scrolled to the end.
func (m *Model) syncActiveSection() {
	if m.viewport.AtBottom() && m.viewport.YOffset > 0 {
		m.header.SetActive(types.SectionOrder[len(types.SectionOrder)-1])
		return
	}
	m.header.SetActive(m.page.SectionAt(m.viewport.YOffset))
}

func (m *Model) filterVisible() bool {
	return m.filtering || m.page.Filter() != ""
}

func (m *Model) resize() {
	m.layout.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.toast.SetWidth(m.width)
	m.help.Width = m.width
	m.filter.Width = max(10, m.width-lipgloss.Width(m.filter.Prompt)-1)

	hintsHeight := lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = m.width
	m.viewport.Height = m.layout.CalculateBodyHeight(m.filterVisible(), hintsHeight)
	m.refresh()
}

// refresh re-renders the page into the viewport, keeping the scroll
// position where possible.
func (m *Model) refresh() {
	m.viewport.SetContent(m.page.Render(m.viewport.Width))
	m.syncActiveSection()
}

func (m Model) View() string {
	filter := ""
	if m.filterVisible() {
		filter = m.filter.View()
	}
	return m.layout.Render(
		m.header.View(),
		m.toast.View(),
		m.viewport.View(),
		filter,
		m.help.View(m.keys),
	)
}
