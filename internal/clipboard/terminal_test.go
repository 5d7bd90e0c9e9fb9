package clipboard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_KeepsFd(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, f.Fd(), NewTerminal(f).Fd())
}

func TestTerminal_SequencesDoNotInterleaveWithFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tty")
	f, err := os.Create(path)
	require.NoError(t, err)
	term := NewTerminal(f)

	frame := "\x1b[H" + strings.Repeat("█", 4096) + "\x1b[0m"
	c := New(nil, NewOSC52(term, nil))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 50 {
			_, _ = term.Write([]byte(frame))
		}
	}()
	go func() {
		defer wg.Done()
		for range 50 {
			c.CopyToClipboard(t.Context(), "ninad.kangandul@example.com")
		}
	}()
	wg.Wait()
	require.NoError(t, term.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)

	var seq bytes.Buffer
	require.NoError(t, NewOSC52(&seq, nil).Copy("ninad.kangandul@example.com"))

	assert.Equal(t, 50, strings.Count(string(out), frame), "a frame was split")
	assert.Equal(t, 50, strings.Count(string(out), seq.String()), "an OSC 52 sequence was split")
}
