// Package clipboard copies text to the system clipboard. The primary path
// is the platform clipboard; when it fails the text is pushed through a
// legacy fallback whose outcome is not observed.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/termfolio/internal/logging"
)

// ErrUnavailable is returned by a Writer that cannot reach a clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// ErrBusy is returned when an earlier primary write is still running.
var ErrBusy = errors.New("clipboard write in progress")

// DefaultPrimaryTimeout bounds how long the primary write may block before
// the fallback takes over.
const DefaultPrimaryTimeout = 2 * time.Second

// Writer is the asynchronous platform clipboard capability.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Fallback is the synchronous legacy copy path.
type Fallback interface {
	Copy(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// FallbackFunc adapts a function to Fallback.
type FallbackFunc func(text string) error

func (f FallbackFunc) Copy(text string) error { return f(text) }

// Copier writes text through the primary Writer and falls back on failure.
type Copier struct {
	primary  Writer
	fallback Fallback
	timeout  time.Duration

	// mu is held for the whole of a primary write, including one the caller
	// has stopped waiting for. latest is the sequence number of the newest
	// request; queued writes older than it are dropped.
	mu     sync.Mutex
	latest atomic.Uint64
}

// Option configures a Copier.
type Option func(*Copier)

// WithPrimaryTimeout overrides DefaultPrimaryTimeout. Zero disables it.
func WithPrimaryTimeout(d time.Duration) Option {
	return func(c *Copier) { c.timeout = d }
}

// New returns a Copier. Either port may be nil.
func New(primary Writer, fallback Fallback, opts ...Option) *Copier {
	c := &Copier{primary: primary, fallback: fallback, timeout: DefaultPrimaryTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CopyToClipboard places text on the clipboard. It always returns true:
// callers cannot tell a successful copy from a fallback that silently failed.
func (c *Copier) CopyToClipboard(ctx context.Context, text string) bool {
	timer := logging.Start("clipboard write", "bytes", len(text))

	err := c.writePrimary(ctx, text)
	if err == nil {
		timer.End("path", "primary")
		return true
	}

	logging.Debug("primary clipboard failed, using fallback", "error", err)
	if c.fallback != nil {
		if ferr := c.copyFallback(text); ferr != nil {
			logging.Debug("clipboard fallback failed", "error", ferr)
		}
	}
	timer.End("path", "fallback")
	return true
}

func (c *Copier) writePrimary(ctx context.Context, text string) error {
	if c.primary == nil {
		return ErrUnavailable
	}
	seq := c.latest.Add(1)

	if !c.mu.TryLock() {
		// An abandoned write still owns the clipboard. Queue this text behind
		// it so the newest copy is what ends up there.
		go c.writeQueued(context.WithoutCancel(ctx), seq, text)
		return ErrBusy
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		err := c.safeWrite(ctx, text)
		c.mu.Unlock()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("clipboard write abandoned: %w", ctx.Err())
	}
}

// writeQueued waits for the running primary write and then writes text,
// unless a newer request arrived in the meantime.
func (c *Copier) writeQueued(ctx context.Context, seq uint64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.latest.Load() {
		logging.Debug("dropping stale clipboard write", "seq", seq)
		return
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.safeWrite(ctx, text); err != nil {
		logging.Debug("queued clipboard write failed", "error", err)
	}
}

func (c *Copier) safeWrite(ctx context.Context, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard writer panicked: %v", r)
		}
	}()
	return c.primary.WriteText(ctx, text)
}

func (c *Copier) copyFallback(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard fallback panicked: %v", r)
		}
	}()
	return c.fallback.Copy(text)
}
