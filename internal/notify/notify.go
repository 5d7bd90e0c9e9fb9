// Package notify mirrors toasts to native desktop notifications.
package notify

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/types"
)

// Notifier shows a notification outside the terminal.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the OS notification centre.
type Desktop struct {
	appName string
	send    func(title, message string) error
}

func NewDesktop(appName string) *Desktop {
	return &Desktop{
		appName: appName,
		send: func(title, message string) error {
			// empty icon uses the system default
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify prefixes title with the app name.
func (d *Desktop) Notify(title, message string) error {
	return d.send(d.appName+" - "+title, message)
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// MirrorCmd returns a command that forwards toast to n. Failures are
// logged and never reach the UI.
func MirrorCmd(n Notifier, toast types.ToastMsg) tea.Cmd {
	if n == nil || toast.Message == "" {
		return nil
	}
	return func() tea.Msg {
		title := "Done"
		if toast.Variant == types.VariantError {
			title = "Error"
		}
		if err := n.Notify(title, toast.Message); err != nil {
			logging.Warn("Failed to show desktop notification", "error", err)
		}
		return nil
	}
}
