// Package messages defines message handling patterns and conventions for
// termfolio: how each layer reports errors and successes so the user only
// ever sees short toasts.
//
// # Message Handling Patterns by Layer
//
// ## Infrastructure Layer (internal/config, internal/clipboard, internal/opener)
//
// Return standard Go errors wrapped with %w. These packages know nothing
// about the UI.
//
// Pattern:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
//	}
//
// Helper available: messages.WrapError(err, "context").
//
// The clipboard is the exception: Copier.CopyToClipboard never reports a
// failure. The primary error is logged and the terminal fallback is tried;
// a fallback failure is logged at debug level and otherwise ignored.
//
// ## Command Layer (internal/commands)
//
// Return a tea.Cmd that produces a types.ToastMsg. The command performs
// the blocking work (clipboard write, launching a browser) inside the
// returned function, so the toast message only reaches Update once the
// work has settled.
//
// Pattern:
//
//	return func() tea.Msg {
//	    app.Clipboard.CopyToClipboard(ctx, email)
//	    return types.SuccessToast("Email copied to clipboard!")
//	}
//
// Use types.ErrorToast for failures and types.SuccessToast otherwise, or
// the ErrorCmd / SuccessCmd helpers when there is no work to wait for.
//
// ## UI Layer (internal/app, internal/components)
//
// Display results via the Toast component. UI components do not format
// error messages; they receive finished ToastMsg values.
//
// Pattern:
//
//	case types.ToastMsg:
//	    return m, m.toast.Open(msg.Message, msg.Variant)
//
// The toast closes itself after components.ToastDisplayDuration (1.5s).
// Opening a new toast while one is showing replaces it and restarts the
// clock.
//
// ## Startup (cmd/termfolio)
//
// Configuration errors (bad profile file, missing --env-file) abort
// startup: the cobra command returns the error and the process exits
// non-zero.
//
// # Error Message Guidelines
//
// 1. Be specific: "Could not open GitHub" not "Operation failed"
// 2. Keep it short: toasts are one line
// 3. User-friendly: no stack traces in toasts; details go to the log file
package messages
