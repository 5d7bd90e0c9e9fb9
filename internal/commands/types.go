package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/termfolio/internal/types"
)

// CommandCategory represents the type of command
type CommandCategory int

const (
	CategoryNavigation CommandCategory = iota // jumps to a page section
	CategoryAction                            // copy, call and quit
	CategoryLink                              // opens a URI outside the terminal
)

// CommandContext provides context for command execution
type CommandContext struct {
	App  *types.AppContext
	Args string // free text, e.g. the literal to copy
}

// ExecuteFunc is a function that executes a command and returns a Bubble Tea command
type ExecuteFunc func(ctx CommandContext) tea.Cmd

// Command is a named user action.
type Command struct {
	Name        string          // e.g. "email", "github", "projects"
	Description string          // Human-readable description
	Category    CommandCategory // Command category
	Execute     ExecuteFunc     // Execution function
}
