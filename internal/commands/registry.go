package commands

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/termfolio/internal/types"
)

// Registry holds all available commands and provides filtering
type Registry struct {
	commands []Command
}

var sectionDescriptions = map[string]string{
	types.SectionHome:         "Go to the top of the page",
	types.SectionAbout:        "About me and my journey",
	types.SectionSkills:       "Technical skills",
	types.SectionProjects:     "Featured projects",
	types.SectionAchievements: "Hackathons and awards",
	types.SectionContact:      "Ways to get in touch",
}

// NewRegistry creates a new command registry with default commands
func NewRegistry() *Registry {
	cmds := make([]Command, 0, len(types.SectionOrder)+10)

	// Navigation commands, in page order
	for _, id := range types.SectionOrder {
		cmds = append(cmds, Command{
			Name:        id,
			Description: sectionDescriptions[id],
			Category:    CategoryNavigation,
			Execute:     NavigationCommand(id),
		})
	}

	cmds = append(cmds,
		Command{
			Name:        "email",
			Description: "Copy email address",
			Category:    CategoryAction,
			Execute:     CopyEmailCommand(),
		},
		Command{
			Name:        "phone",
			Description: "Call, or copy the phone number",
			Category:    CategoryAction,
			Execute:     PhoneCommand(),
		},
		Command{
			Name:        "mail",
			Description: "Write an email",
			Category:    CategoryLink,
			Execute:     OpenMailCommand(),
		},
		Command{
			Name:        "github",
			Description: "Open GitHub profile",
			Category:    CategoryLink,
			Execute:     OpenLinkCommand("github"),
		},
		Command{
			Name:        "linkedin",
			Description: "Open LinkedIn profile",
			Category:    CategoryLink,
			Execute:     OpenLinkCommand("linkedin"),
		},
		Command{
			Name:        "leetcode",
			Description: "Open LeetCode profile",
			Category:    CategoryLink,
			Execute:     OpenLinkCommand("leetcode"),
		},
		Command{
			Name:        "resume",
			Description: "Download resume",
			Category:    CategoryLink,
			Execute:     ResumeCommand(),
		},
		Command{
			Name:        "quit",
			Description: "Quit termfolio",
			Category:    CategoryAction,
			Execute: func(CommandContext) tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &Registry{commands: cmds}
}

// GetByCategory returns all commands in a category
func (r *Registry) GetByCategory(category CommandCategory) []Command {
	result := []Command{}
	for _, cmd := range r.commands {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	return result
}

// Filter returns commands matching the query using fuzzy search
func (r *Registry) Filter(query string, category CommandCategory) []Command {
	candidates := r.GetByCategory(category)
	if query == "" {
		return candidates
	}

	names := make([]string, len(candidates))
	for i, cmd := range candidates {
		names[i] = cmd.Name
	}

	// Return matching commands in ranked order
	matches := fuzzy.Find(query, names)
	result := make([]Command, len(matches))
	for i, match := range matches {
		result[i] = candidates[match.Index]
	}
	return result
}

// Get returns a command by name and category, or nil if not found
func (r *Registry) Get(name string, category CommandCategory) *Command {
	for _, cmd := range r.commands {
		if cmd.Category == category && strings.EqualFold(cmd.Name, name) {
			return &cmd
		}
	}
	return nil
}

// Names lists the command names in a category.
func (r *Registry) Names(category CommandCategory) []string {
	var names []string
	for _, cmd := range r.GetByCategory(category) {
		names = append(names, cmd.Name)
	}
	return names
}
