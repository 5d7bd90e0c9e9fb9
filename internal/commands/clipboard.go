package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/messages"
	"github.com/renato0307/termfolio/internal/types"
)

// copyCmd copies text and, once the write has settled, reports toast.
// The clipboard never fails from the user's point of view, so the toast
// is always a success.
func copyCmd(clip types.Clipboard, text, toast string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultClipboardTimeout)
		defer cancel()

		clip.CopyToClipboard(ctx, text)
		logging.Debug("Copy settled", "toast", toast, "length", len(text))
		return types.SuccessToast(toast)
	}
}

// CopyEmailCommand copies the contact email.
func CopyEmailCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return copyCmd(ctx.App.Clipboard, ctx.App.Profile.Contact().Email, MsgEmailCopied)
	}
}

// CopyPhoneCommand copies the display phone number.
func CopyPhoneCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return copyCmd(ctx.App.Clipboard, ctx.App.Profile.Contact().PhoneDisplay, MsgPhoneCopied)
	}
}

// CopyTextCommand copies ctx.Args verbatim.
func CopyTextCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		if ctx.Args == "" {
			return messages.ErrorCmd("Nothing to copy")
		}
		return copyCmd(ctx.App.Clipboard, ctx.Args, MsgTextCopied)
	}
}
