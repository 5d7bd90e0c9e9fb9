package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

// ToastDismissMsg is delivered when a toast's display time has elapsed.
// It only closes the toast generation it was scheduled for.
type ToastDismissMsg struct {
	ID int
}

// ToastSettledMsg ends the entry transition of a toast generation.
type ToastSettledMsg struct {
	ID int
}

// Toast shows one transient notification at a time. The owner decides when
// to open it; the toast only decides when to close itself.
//
// Every Open, Close and Reset starts a new generation. Timer messages carry
// the generation they were scheduled for, and anything from an older
// generation is dropped, so a superseded timer can never close a newer
// toast or run the close callback twice.
type Toast struct {
	open     bool
	entering bool
	message  string
	variant  types.Variant
	id       int

	onClose    tea.Cmd
	duration   time.Duration
	transition time.Duration

	width int
	theme *ui.Theme
}

// NewToast creates a closed toast.
func NewToast(theme *ui.Theme) *Toast {
	return &Toast{
		theme:      theme,
		duration:   ToastDisplayDuration,
		transition: ToastTransitionDuration,
	}
}

// SetOnClose sets the command returned when the toast closes itself.
// A nil command is allowed.
func (t *Toast) SetOnClose(cmd tea.Cmd) {
	t.onClose = cmd
}

// Open shows message and (re)starts the dismissal clock. Opening while
// already open replaces the content and restarts the clock, even if only
// the message changed. An empty message leaves the toast untouched.
func (t *Toast) Open(message string, variant types.Variant) tea.Cmd {
	if message == "" {
		return nil
	}

	t.id++
	t.open = true
	t.entering = true
	t.message = message
	t.variant = variant

	id := t.id
	logging.Debug("toast opened", "id", id, "variant", variant.String(), "message", message)

	return tea.Batch(
		tea.Tick(t.duration, func(time.Time) tea.Msg { return ToastDismissMsg{ID: id} }),
		tea.Tick(t.transition, func(time.Time) tea.Msg { return ToastSettledMsg{ID: id} }),
	)
}

// Close hides the toast on the owner's request. Pending timers become
// stale. The close callback is not returned: the owner is already closing.
func (t *Toast) Close() {
	if !t.open {
		return
	}
	t.id++
	t.open = false
	t.entering = false
	logging.Debug("toast closed manually", "id", t.id)
}

// Reset tears the toast down, cancelling any pending timers.
func (t *Toast) Reset() {
	t.id++
	t.open = false
	t.entering = false
	t.message = ""
	t.variant = types.VariantSuccess
}

// IsOpen reports whether a toast is visible.
func (t *Toast) IsOpen() bool {
	return t.open
}

// Message returns the current text, empty when closed.
func (t *Toast) Message() string {
	if !t.open {
		return ""
	}
	return t.message
}

// Variant returns the current variant.
func (t *Toast) Variant() types.Variant {
	return t.variant
}

// SetWidth sets the width available for rendering.
func (t *Toast) SetWidth(width int) {
	t.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (t *Toast) GetHeight() int {
	return 1
}

// Update handles timer messages.
func (t *Toast) Update(msg tea.Msg) (*Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case ToastDismissMsg:
		if !t.open || msg.ID != t.id {
			logging.Debug("stale toast timer ignored", "timer_id", msg.ID, "current_id", t.id)
			return t, nil
		}
		t.open = false
		t.entering = false
		logging.Debug("toast auto-dismissed", "id", t.id)
		return t, t.onClose

	case ToastSettledMsg:
		if msg.ID == t.id {
			t.entering = false
		}
	}
	return t, nil
}

// View renders the toast right-aligned, or an empty reserved line when
// closed.
func (t *Toast) View() string {
	if !t.open {
		return lipgloss.NewStyle().Width(t.width).Render("")
	}

	style := ui.ToastSuccess
	if t.variant == types.VariantError {
		style = ui.ToastError
	}
	pill := ui.RenderToast(t.message, style, t.theme, t.entering, t.width)
	return lipgloss.PlaceHorizontal(t.width, lipgloss.Right, pill)
}
