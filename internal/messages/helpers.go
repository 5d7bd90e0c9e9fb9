package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/termfolio/internal/types"
)

// Command layer helpers - return tea.Cmd with a ToastMsg

// ErrorCmd returns a tea.Cmd that produces an error toast.
// Use this in command handlers when an operation fails.
//
// Example:
//
//	if _, ok := profile.Link(id); !ok {
//	    return messages.ErrorCmd("No %s link configured", id)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorToast(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success toast.
//
// Example:
//
//	return messages.SuccessCmd("Switched to %s mode", mode)
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessToast(msg)
	}
}

// Infrastructure helpers - return wrapped errors with context

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain for debugging with %w.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return messages.WrapError(err, "failed to read profile %s", path)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
