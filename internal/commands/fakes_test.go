package commands

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/device"
	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

type fakeClipboard struct {
	mu     sync.Mutex
	copied []string
}

func (f *fakeClipboard) CopyToClipboard(_ context.Context, text string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copied = append(f.copied, text)
	return true
}

func (f *fakeClipboard) Copied() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.copied...)
}

type fakeOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (f *fakeOpener) Open(_ context.Context, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, uri)
	return f.err
}

func (f *fakeOpener) Opened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.opened...)
}

func newTestContext(t *testing.T, mobile bool) (CommandContext, *fakeClipboard, *fakeOpener) {
	t.Helper()
	profile, err := config.Default()
	require.NoError(t, err)

	clip := &fakeClipboard{}
	opener := &fakeOpener{}
	app := types.NewAppContext(ui.ThemeCharm(), profile, clip, device.Static(mobile), opener)
	return CommandContext{App: app}, clip, opener
}
