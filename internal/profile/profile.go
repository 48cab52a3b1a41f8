// Package profile holds the portfolio's content: who the owner is, where
// to find them, and what they have built.
package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the read-only record every page section is rendered from.
type Profile struct {
	Name          string       `yaml:"name" json:"name"`
	Links         Links        `yaml:"links" json:"links"`
	Education     Education    `yaml:"education" json:"education"`
	HeroChips     []string     `yaml:"heroChips" json:"heroChips"`
	Focus         []string     `yaml:"focus" json:"focus"`
	LikesBuilding []string     `yaml:"likesBuilding" json:"likesBuilding"`
	Experience    []Experience `yaml:"experience" json:"experience"`
	Projects      []Project    `yaml:"projects" json:"projects"`
	Skills        []SkillGroup `yaml:"skills" json:"skills"`
	Achievements  []string     `yaml:"achievements" json:"achievements"`
}

// Links are the owner's external profiles. An empty value means the link
// is not configured.
type Links struct {
	Email      string `yaml:"email" json:"email"`
	LinkedIn   string `yaml:"linkedin" json:"linkedin"`
	GitHub     string `yaml:"github" json:"github"`
	LeetCode   string `yaml:"leetcode" json:"leetcode"`
	Codeforces string `yaml:"codeforces" json:"codeforces"`
	GFG        string `yaml:"gfg" json:"gfg"`
}

// Education is the owner's degree.
type Education struct {
	School string `yaml:"school" json:"school"`
	Degree string `yaml:"degree" json:"degree"`
	Years  string `yaml:"years" json:"years"`
}

// Experience is one timeline entry.
type Experience struct {
	Title   string   `yaml:"title" json:"title"`
	Years   string   `yaml:"years" json:"years"`
	Tagline string   `yaml:"tagline" json:"tagline"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

// Project is one project card and its detail dialog.
type Project struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Tag     string   `yaml:"tag" json:"tag"`
	Summary string   `yaml:"summary" json:"summary"`
	Tech    []string `yaml:"tech" json:"tech"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

// SkillGroup is one box of the skills grid.
type SkillGroup struct {
	Label string   `yaml:"label" json:"label"`
	Hint  string   `yaml:"hint" json:"hint"`
	Items []string `yaml:"items" json:"items"`
}

// Project returns the project with the given id.
func (p *Profile) Project(id string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}

// FirstName returns the first word of the owner's name.
func (p *Profile) FirstName() string {
	if f := strings.Fields(p.Name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile. Link values are trimmed; anything else is
// taken as written.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Links.trim()
	return &p, nil
}

func (l *Links) trim() {
	for _, v := range []*string{&l.Email, &l.LinkedIn, &l.GitHub, &l.LeetCode, &l.Codeforces, &l.GFG} {
		*v = strings.TrimSpace(*v)
	}
}
