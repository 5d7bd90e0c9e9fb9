package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/messages"
	"github.com/renato0307/termfolio/internal/types"
)

// openCmd launches uri. Success is silent; the handler taking focus is
// the feedback.
func openCmd(opener types.Opener, uri, what string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultOpenTimeout)
		defer cancel()

		if err := opener.Open(ctx, uri); err != nil {
			logging.Warn("Open failed", "uri", uri, "error", err)
			return types.ErrorToast("Could not open " + what)
		}
		logging.Debug("Opened", "uri", uri)
		return nil
	}
}

// PhoneCommand dials the contact number on mobile devices and copies it
// everywhere else.
func PhoneCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		app := ctx.App
		if app.Device != nil && app.Device.IsMobile() {
			return openCmd(app.Opener, app.Profile.Contact().TelLink(), "dialer")
		}
		return CopyPhoneCommand()(ctx)
	}
}

// OpenMailCommand opens a mailto: link for the contact email.
func OpenMailCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return openCmd(ctx.App.Opener, ctx.App.Profile.Contact().MailtoLink(), "mail client")
	}
}

// OpenLinkCommand opens the profile link with the given id.
func OpenLinkCommand(id string) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		link, ok := ctx.App.Profile.Link(id)
		if !ok {
			return messages.ErrorCmd("No %s link configured", id)
		}
		return openCmd(ctx.App.Opener, link.URL, link.Label)
	}
}

// ResumeCommand opens the resume download URL.
func ResumeCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		url := ctx.App.Profile.ResumeURL()
		if url == "" {
			return messages.ErrorCmd("No resume configured")
		}
		return openCmd(ctx.App.Opener, url, "resume")
	}
}
