package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/device"
	"github.com/renato0307/termfolio/internal/testutil"
	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

func startProgram(t *testing.T) (*testutil.TestProgram, *fakeClipboard) {
	t.Helper()
	if testing.Short() {
		t.Skip("end-to-end test")
	}

	profile, err := config.Default()
	require.NoError(t, err)
	clip := &fakeClipboard{}
	ctx := types.NewAppContext(ui.ThemeCharm(), profile, clip, device.Static(false), &fakeOpener{})

	tp := testutil.NewTestProgram(t, NewModel(ctx, WithYear(2026)), 120, 40)
	return tp, clip
}

func TestE2E_CopyEmailToast(t *testing.T) {
	tp, clip := startProgram(t)

	require.True(t, tp.WaitForOutput("Hi, I'm", 2*time.Second), "page should render")

	tp.Type("e")
	assert.True(t, tp.WaitForToast("success", 2*time.Second))
	tp.AssertContains("Email copied to clipboard!")
	assert.Len(t, clip.Copied(), 1)
}

func TestE2E_FilterProjects(t *testing.T) {
	tp, _ := startProgram(t)

	tp.Type("/")
	tp.Type("qqqq")
	tp.SendKey(tea.KeyEnter)
	tp.Type("4")

	assert.True(t, tp.WaitForOutput(`No projects match "qqqq"`, 2*time.Second))
}

func TestE2E_Quit(t *testing.T) {
	tp, _ := startProgram(t)

	tp.Type("q")
	select {
	case <-tp.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("program did not quit")
	}
}
