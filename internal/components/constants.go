package components

import "time"

// UI component constants
const (
	// ToastDisplayDuration is how long a toast stays open before it closes
	// itself.
	ToastDisplayDuration = 1500 * time.Millisecond

	// ToastTransitionDuration is the length of the entry fade.
	ToastTransitionDuration = 200 * time.Millisecond

	// MaxTechBadges is how many tech badges a project card shows before
	// collapsing the rest into "+N more".
	MaxTechBadges = 4
)
