package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Ninad Kangandul", p.Name())
	assert.Equal(t, "Full-Stack Developer", p.Role())
	assert.Contains(t, p.Contact().Email, "@")
	assert.Equal(t, "+919000000000", p.Contact().PhoneDial)
	assert.Len(t, p.Projects(), 4)
	assert.Len(t, p.Achievements(), 3)
	assert.Len(t, p.SkillCategories(), 6)
	assert.Len(t, p.About(), 3)

	gh, ok := p.Link("github")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/ninad1234567", gh.URL)
	_, ok = p.Link("myspace")
	assert.False(t, ok)
}

func TestContactLinks(t *testing.T) {
	c := Contact{Email: "me@example.com", PhoneDial: "+15551234"}
	assert.Equal(t, "mailto:me@example.com", c.MailtoLink())
	assert.Equal(t, "tel:+15551234", c.TelLink())
}

func TestProfileAccessorsReturnCopies(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	projects := p.Projects()
	projects[0].Title = "mutated"
	projects[0].TechStack[0] = "mutated"
	links := p.Links()
	links[0].URL = "mutated"
	cats := p.SkillCategories()
	cats[0].Skills[0].Name = "mutated"

	assert.NotEqual(t, "mutated", p.Projects()[0].Title)
	assert.NotEqual(t, "mutated", p.Projects()[0].TechStack[0])
	assert.NotEqual(t, "mutated", p.Links()[0].URL)
	assert.NotEqual(t, "mutated", p.SkillCategories()[0].Skills[0].Name)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  string
		wantDial string
	}{
		{
			name:     "minimal profile derives dial number",
			input:    "name: Jo\ncontact:\n  email: jo@example.com\n  phoneDisplay: +44 (0) 20 7946 0000\n",
			wantDial: "+4402079460000",
		},
		{
			name:    "missing name",
			input:   "contact:\n  email: jo@example.com\n",
			wantErr: "name cannot be empty",
		},
		{
			name:    "bad email",
			input:   "name: Jo\ncontact:\n  email: nope\n",
			wantErr: "invalid contact email",
		},
		{
			name:    "unknown field rejected",
			input:   "name: Jo\nnickname: J\ncontact:\n  email: jo@example.com\n",
			wantErr: "failed to parse profile",
		},
		{
			name:    "unknown skill level",
			input:   "name: Jo\ncontact:\n  email: jo@example.com\nskillCategories:\n  - title: Go\n    skills:\n      - {name: Go, level: wizard}\n",
			wantErr: "unknown level",
		},
		{
			name:    "link without url",
			input:   "name: Jo\ncontact:\n  email: jo@example.com\nlinks:\n  - {id: gh, label: GitHub}\n",
			wantErr: "needs both id and url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDial, p.Contact().PhoneDial)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		p, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Ninad Kangandul", p.Name())
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Ada\ncontact:\n  email: ada@example.com\n"), 0o600))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name())
		assert.Empty(t, p.Projects())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read profile")
	})
}
