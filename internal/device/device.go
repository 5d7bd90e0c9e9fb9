// Package device answers whether the user is on a phone, which decides if
// the phone contact action dials or copies.
package device

import (
	"regexp"
)

// Info is the device capability consumed by contact actions.
type Info interface {
	IsMobile() bool
}

var mobileAgent = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// UserAgent classifies a browser-style user agent string.
type UserAgent string

// IsMobile reports whether the agent names an iOS or Android device.
func (ua UserAgent) IsMobile() bool {
	return mobileAgent.MatchString(string(ua))
}

// Static is a fixed answer, used for flags and tests.
type Static bool

func (s Static) IsMobile() bool { return bool(s) }

// Detect inspects the environment. An explicit user agent wins; otherwise
// a Termux session (Android) counts as mobile.
func Detect(userAgent string, getenv func(string) string) Info {
	if userAgent != "" {
		return UserAgent(userAgent)
	}
	if getenv != nil && getenv("TERMUX_VERSION") != "" {
		return Static(true)
	}
	return Static(false)
}
