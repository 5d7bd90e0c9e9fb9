package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// System writes to the OS clipboard through atotto/clipboard, which shells
// out to pbcopy, clip.exe, wl-copy, xclip or xsel.
type System struct{}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{}
}

// WriteText implements Writer.
func (s *System) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

var _ Writer = (*System)(nil)
