// Package opener hands URIs (https:, mailto:, tel:) to the desktop's
// default handler.
package opener

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout bounds how long the platform launcher may take to return.
const DefaultTimeout = 5 * time.Second

// System runs the platform launcher: open on macOS, rundll32 on Windows,
// xdg-open elsewhere (termux-open-url under Termux).
type System struct {
	goos    string
	termux  bool
	timeout time.Duration
}

// New returns an opener for the running platform. termux selects the
// Termux launcher on Android.
func New(termux bool) *System {
	return &System{goos: runtime.GOOS, termux: termux, timeout: DefaultTimeout}
}

// Command returns the launcher and arguments used to open uri.
func (s *System) Command(uri string) (string, []string) {
	switch {
	case s.termux:
		if strings.HasPrefix(uri, "http") {
			return "termux-open-url", []string{uri}
		}
		return "termux-open", []string{uri}
	case s.goos == "darwin":
		return "open", []string{uri}
	case s.goos == "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// Open launches the handler for uri and waits for the launcher to exit.
func (s *System) Open(ctx context.Context, uri string) error {
	if uri == "" {
		return fmt.Errorf("nothing to open")
	}
	name, args := s.Command(uri)

	timeout := s.timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s timed out after %v", name, timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s error: %s", name, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// CheckAvailable reports whether the launcher is on PATH.
func (s *System) CheckAvailable() error {
	name, _ := s.Command("https://")
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}
	return nil
}
