package commands

import "time"

const (
	// DefaultClipboardTimeout bounds a whole copy, primary and fallback.
	DefaultClipboardTimeout = 5 * time.Second

	// DefaultOpenTimeout bounds launching the browser, mail client or
	// dialer.
	DefaultOpenTimeout = 10 * time.Second
)

// Toast texts
const (
	MsgEmailCopied = "Email copied to clipboard!"
	MsgPhoneCopied = "Phone number copied to clipboard!"
	MsgTextCopied  = "Copied to clipboard!"
)
