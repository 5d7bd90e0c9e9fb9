package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termfolio/internal/types"
)

func TestCopyEmailCommand(t *testing.T) {
	ctx, clip, _ := newTestContext(t, false)

	cmd := CopyEmailCommand()(ctx)
	require.NotNil(t, cmd)
	assert.Empty(t, clip.Copied(), "nothing is copied until the command runs")

	msg := cmd()
	assert.Equal(t, types.SuccessToast("Email copied to clipboard!"), msg)
	assert.Equal(t, []string{ctx.App.Profile.Contact().Email}, clip.Copied())
}

func TestCopyPhoneCommand(t *testing.T) {
	ctx, clip, _ := newTestContext(t, true)

	msg := CopyPhoneCommand()(ctx)()
	assert.Equal(t, types.SuccessToast("Phone number copied to clipboard!"), msg)
	assert.Equal(t, []string{ctx.App.Profile.Contact().PhoneDisplay}, clip.Copied())
}

func TestCopyTextCommand(t *testing.T) {
	ctx, clip, _ := newTestContext(t, false)

	t.Run("copies args", func(t *testing.T) {
		ctx.Args = "hello\tworld"
		msg := CopyTextCommand()(ctx)()
		assert.Equal(t, types.SuccessToast(MsgTextCopied), msg)
		assert.Equal(t, []string{"hello\tworld"}, clip.Copied())
	})

	t.Run("empty args", func(t *testing.T) {
		ctx.Args = ""
		msg := CopyTextCommand()(ctx)()
		assert.Equal(t, types.ErrorToast("Nothing to copy"), msg)
	})
}

func TestCopyEmailCommand_Twice(t *testing.T) {
	ctx, clip, _ := newTestContext(t, false)

	first := CopyEmailCommand()(ctx)()
	second := CopyEmailCommand()(ctx)()
	assert.Equal(t, first, second)
	assert.Len(t, clip.Copied(), 2)
}
