package sections

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/termfolio/internal/config"
)

// matchIndices fuzzy-matches query against searchStrings and returns the
// matching indices in their original order. A leading "!" negates the
// query. An empty query matches everything.
func matchIndices(query string, searchStrings []string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	all := make([]int, len(searchStrings))
	for i := range searchStrings {
		all[i] = i
	}
	if query == "" || query == "!" {
		return all
	}

	negate := strings.HasPrefix(query, "!")
	pattern := strings.TrimPrefix(query, "!")

	matchSet := make(map[int]bool)
	for _, m := range fuzzy.Find(pattern, searchStrings) {
		matchSet[m.Index] = true
	}

	out := make([]int, 0, len(searchStrings))
	for _, i := range all {
		if matchSet[i] != negate {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// FilterProjects keeps the projects whose title, category or tech stack
// match query.
func FilterProjects(projects []config.Project, query string) []config.Project {
	searchStrings := make([]string, len(projects))
	for i, p := range projects {
		fields := []string{p.Title, p.Category, strings.Join(p.TechStack, " ")}
		searchStrings[i] = strings.ToLower(strings.Join(fields, " "))
	}

	idx := matchIndices(query, searchStrings)
	out := make([]config.Project, len(idx))
	for i, j := range idx {
		out[i] = projects[j]
	}
	return out
}

// FilterSkills keeps the skills whose name or category match query.
// Categories left without skills are dropped.
func FilterSkills(categories []config.SkillCategory, query string) []config.SkillCategory {
	out := make([]config.SkillCategory, 0, len(categories))
	for _, c := range categories {
		searchStrings := make([]string, len(c.Skills))
		for i, s := range c.Skills {
			searchStrings[i] = strings.ToLower(s.Name + " " + c.Title)
		}
		idx := matchIndices(query, searchStrings)
		if len(idx) == 0 {
			continue
		}
		kept := config.SkillCategory{Title: c.Title, Skills: make([]config.Skill, len(idx))}
		for i, j := range idx {
			kept.Skills[i] = c.Skills[j]
		}
		out = append(out, kept)
	}
	return out
}
