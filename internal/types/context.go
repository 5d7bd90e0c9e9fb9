package types

import (
	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/device"
	"github.com/renato0307/termfolio/internal/ui"
)

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme     *ui.Theme
	Profile   config.Profile
	Clipboard Clipboard
	Device    device.Info
	Opener    Opener
}

// NewAppContext creates a new application context
func NewAppContext(
	theme *ui.Theme,
	profile config.Profile,
	clip Clipboard,
	dev device.Info,
	opener Opener,
) *AppContext {
	return &AppContext{
		Theme:     theme,
		Profile:   profile,
		Clipboard: clip,
		Device:    dev,
		Opener:    opener,
	}
}
