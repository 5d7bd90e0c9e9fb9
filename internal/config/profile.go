// Package config loads the portfolio profile: the contact details, links and
// section content shown by every component. A Profile is loaded once at
// startup and never mutated; accessors hand out copies.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"
)

//go:embed profile.yaml
var defaultProfileYAML []byte

// SkillLevel grades a skill.
type SkillLevel string

const (
	LevelExpert       SkillLevel = "expert"
	LevelProficient   SkillLevel = "proficient"
	LevelIntermediate SkillLevel = "intermediate"
)

// Contact holds the reachable contact details.
type Contact struct {
	Email        string `json:"email"`
	PhoneDisplay string `json:"phoneDisplay"`
	// PhoneDial is the number used for tel: links; derived from
	// PhoneDisplay when empty.
	PhoneDial string `json:"phoneDial,omitempty"`
}

// MailtoLink returns the mailto: URI for the contact email.
func (c Contact) MailtoLink() string {
	return "mailto:" + c.Email
}

// TelLink returns the tel: URI for the contact phone.
func (c Contact) TelLink() string {
	return "tel:" + c.PhoneDial
}

type Link struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
}

type Skill struct {
	Name        string     `json:"name"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
}

type SkillCategory struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	TechStack        []string `json:"techStack"`
	Features         []string `json:"features"`
	ProblemStatement string   `json:"problemStatement"`
	Solution         string   `json:"solution"`
	Achievements     []string `json:"achievements"`
	LiveDemo         string   `json:"liveDemo,omitempty"`
}

type Achievement struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Position     string `json:"position"`
	Description  string `json:"description"`
}

// document is the on-disk shape of a profile.
type document struct {
	Name            string          `json:"name"`
	Role            string          `json:"role"`
	Greeting        string          `json:"greeting"`
	Summary         string          `json:"summary"`
	Location        string          `json:"location"`
	Graduation      string          `json:"graduation"`
	ResumeURL       string          `json:"resumeURL,omitempty"`
	Contact         Contact         `json:"contact"`
	Links           []Link          `json:"links"`
	About           []string        `json:"about"`
	Timeline        []TimelineEntry `json:"timeline"`
	SkillCategories []SkillCategory `json:"skillCategories"`
	Projects        []Project       `json:"projects"`
	Achievements    []Achievement   `json:"achievements"`
	Footer          string          `json:"footer"`
}

// Profile is the immutable portfolio configuration.
type Profile struct {
	doc document
}

// Default returns the built-in profile.
func Default() (Profile, error) {
	return Parse(defaultProfileYAML)
}

// Load reads a profile from path, or returns Default when path is empty.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML (or JSON) profile and validates it.
func Parse(data []byte) (Profile, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	if doc.Contact.PhoneDial == "" {
		doc.Contact.PhoneDial = dialable(doc.Contact.PhoneDisplay)
	}
	if err := validate(doc); err != nil {
		return Profile{}, err
	}
	return Profile{doc: doc}, nil
}

func validate(doc document) error {
	if strings.TrimSpace(doc.Name) == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if !strings.Contains(doc.Contact.Email, "@") {
		return fmt.Errorf("invalid contact email %q", doc.Contact.Email)
	}
	for _, l := range doc.Links {
		if l.ID == "" || l.URL == "" {
			return fmt.Errorf("link %q needs both id and url", l.Label)
		}
	}
	for _, c := range doc.SkillCategories {
		for _, s := range c.Skills {
			switch s.Level {
			case LevelExpert, LevelProficient, LevelIntermediate:
			default:
				return fmt.Errorf("skill %q has unknown level %q", s.Name, s.Level)
			}
		}
	}
	return nil
}

// dialable strips everything but digits and a leading plus.
func dialable(display string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(display) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p Profile) Name() string { return p.doc.Name }
func (p Profile) Role() string { return p.doc.Role }
func (p Profile) Greeting() string { return p.doc.Greeting }
func (p Profile) Summary() string { return p.doc.Summary }
func (p Profile) Location() string { return p.doc.Location }
func (p Profile) Graduation() string { return p.doc.Graduation }
func (p Profile) ResumeURL() string { return p.doc.ResumeURL }
func (p Profile) Footer() string { return p.doc.Footer }
func (p Profile) Contact() Contact { return p.doc.Contact }

func (p Profile) Links() []Link { return slices.Clone(p.doc.Links) }
func (p Profile) About() []string { return slices.Clone(p.doc.About) }
func (p Profile) Timeline() []TimelineEntry { return slices.Clone(p.doc.Timeline) }
func (p Profile) Achievements() []Achievement { return slices.Clone(p.doc.Achievements) }

// Link returns the link with the given id.
func (p Profile) Link(id string) (Link, bool) {
	for _, l := range p.doc.Links {
		if l.ID == id {
			return l, true
		}
	}
	return Link{}, false
}

func (p Profile) SkillCategories() []SkillCategory {
	out := make([]SkillCategory, len(p.doc.SkillCategories))
	for i, c := range p.doc.SkillCategories {
		out[i] = SkillCategory{Title: c.Title, Skills: slices.Clone(c.Skills)}
	}
	return out
}

func (p Profile) Projects() []Project {
	out := make([]Project, len(p.doc.Projects))
	for i, pr := range p.doc.Projects {
		pr.TechStack = slices.Clone(pr.TechStack)
		pr.Features = slices.Clone(pr.Features)
		pr.Achievements = slices.Clone(pr.Achievements)
		out[i] = pr
	}
	return out
}
