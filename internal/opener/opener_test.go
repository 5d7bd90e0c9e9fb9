package opener

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Command(t *testing.T) {
	tests := []struct {
		name     string
		opener   *System
		uri      string
		wantName string
		wantArgs []string
	}{
		{"linux", &System{goos: "linux"}, "https://github.com", "xdg-open", []string{"https://github.com"}},
		{"mac", &System{goos: "darwin"}, "mailto:a@b.c", "open", []string{"mailto:a@b.c"}},
		{"windows", &System{goos: "windows"}, "tel:+1", "rundll32", []string{"url.dll,FileProtocolHandler", "tel:+1"}},
		{"termux url", &System{goos: "android", termux: true}, "https://x.y", "termux-open-url", []string{"https://x.y"}},
		{"termux tel", &System{goos: "android", termux: true}, "tel:+1", "termux-open", []string{"tel:+1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := tt.opener.Command(tt.uri)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSystem_OpenEmpty(t *testing.T) {
	err := New(false).Open(context.Background(), "")
	assert.EqualError(t, err, "nothing to open")
}
