package clipboard

import (
	"os"
	"sync"
)

// Terminal serialises writes to a terminal file. The TUI renderer and the
// OSC 52 fallback share one Terminal so a frame never lands in the middle
// of an escape sequence.
//
// It keeps the file's Fd so the program still detects a TTY, sizes the
// window and picks a color profile.
type Terminal struct {
	mu sync.Mutex
	f  *os.File
}

// NewTerminal wraps f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{f: f}
}

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.Write(p)
}

func (t *Terminal) Read(p []byte) (int, error) { return t.f.Read(p) }

func (t *Terminal) Close() error { return t.f.Close() }

func (t *Terminal) Fd() uintptr { return t.f.Fd() }
