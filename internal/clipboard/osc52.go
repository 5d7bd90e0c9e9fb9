package clipboard

import (
	"io"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 copies by emitting an OSC 52 escape sequence to the terminal, which
// sets the clipboard of the machine running the terminal emulator. It works
// over SSH and without a display server, but the terminal may ignore it and
// there is no acknowledgement.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 writes sequences to out. getenv is used to detect tmux and
// GNU screen, which need the sequence wrapped in a passthrough.
func NewOSC52(out io.Writer, getenv func(string) string) *OSC52 {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &OSC52{out: out, getenv: getenv}
}

// Copy implements Fallback. Each call builds a fresh sequence and keeps
// nothing once it has been written.
func (o *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case o.getenv("STY") != "" || strings.HasPrefix(o.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.out)
	return err
}

var _ Fallback = (*OSC52)(nil)
