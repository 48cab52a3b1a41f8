package site

import (
	"html/template"
	"strings"
	"time"

	"github.com/Zachkp/folio/internal/palette"
	"github.com/Zachkp/folio/internal/profile"
)

const (
	// NavHandleChars limits handles in the header link rows.
	NavHandleChars = 14
	// ContactHandleChars limits handles in the contact section.
	ContactHandleChars = 16
	// EmailLocalChars limits the local part of the header email label.
	EmailLocalChars = 10
	// MaxCardBadges is how many tech badges a project card shows.
	MaxCardBadges = 4
)

// LinkRow is one rendered link to an external profile. A row without an
// Href renders disabled.
type LinkRow struct {
	Key   string
	Label string
	Href  string
	Text  string
}

// Disabled reports whether the link is not configured.
func (l LinkRow) Disabled() bool { return l.Href == "" }

// Target is the href attribute to render.
func (l LinkRow) Target() string {
	if l.Href == "" {
		return "#"
	}
	return l.Href
}

// Stat is one animated hero counter.
type Stat struct {
	Label  string
	Value  int
	Suffix string
}

// ExperienceView is a timeline entry ready for the template.
type ExperienceView struct {
	Title   string
	Years   string
	Tagline string
	Bullets []template.HTML
}

// ProjectView is a project card and dialog fragment ready for the template.
type ProjectView struct {
	ID      string
	Name    string
	Tag     string
	Summary string
	Badges  []string
	Tech    []string
	Bullets []template.HTML
}

// Page is the view model of the whole portfolio page.
type Page struct {
	Title        string
	Name         string
	Greeting     string
	Motion       string
	Education    string
	HeroChips    []template.HTML
	Stats        []Stat
	Focus        []string
	Likes        []string
	Sections     []palette.Section
	NavLinks     []LinkRow
	ContactLinks []LinkRow
	Email        string
	NavEmail     LinkRow
	ContactEmail LinkRow
	Experience   []ExperienceView
	Projects     []ProjectView
	Skills       []profile.SkillGroup
	Achievements []string
	Palette      []palette.Item
	Year         int
}

// NewPage builds the view model for p as of now.
func NewPage(p *profile.Profile, now time.Time) *Page {
	pg := &Page{
		Title:        p.Name + " · Portfolio",
		Name:         p.Name,
		Greeting:     p.FirstName(),
		Motion:       "auto",
		Education:    strings.Join([]string{p.Education.School, p.Education.Degree, p.Education.Years}, "\n"),
		HeroChips:    markupAll(p.HeroChips),
		Focus:        p.Focus,
		Likes:        p.LikesBuilding,
		Sections:     palette.Sections,
		Email:        p.Links.Email,
		Skills:       p.Skills,
		Achievements: p.Achievements,
		Palette:      palette.Items(p),
		Year:         now.Year(),
	}

	for _, pr := range p.Links.Providers() {
		nav := LinkRow{Key: pr.Key, Label: pr.Label, Href: pr.URL, Text: profile.Unset}
		contact := nav
		if pr.URL != "" {
			nav.Text = profile.FormatHandleShort(pr.URL, NavHandleChars)
			contact.Text = profile.FormatHandleShort(pr.URL, ContactHandleChars)
		}
		pg.NavLinks = append(pg.NavLinks, nav)
		pg.ContactLinks = append(pg.ContactLinks, contact)
	}

	pg.NavEmail = LinkRow{Key: "email", Label: "Email", Href: profile.MailtoHref(p.Links.Email), Text: profile.Unset}
	pg.ContactEmail = pg.NavEmail
	if p.Links.Email != "" {
		pg.NavEmail.Text = profile.FormatEmailShort(p.Links.Email, EmailLocalChars)
		pg.ContactEmail.Text = p.Links.Email
	}

	for _, e := range p.Experience {
		pg.Experience = append(pg.Experience, ExperienceView{
			Title:   e.Title,
			Years:   e.Years,
			Tagline: e.Tagline,
			Bullets: markupAll(e.Bullets),
		})
	}
	for _, pr := range p.Projects {
		pg.Projects = append(pg.Projects, NewProjectView(pr))
	}

	skills := 0
	for _, g := range p.Skills {
		skills += len(g.Items)
	}
	pg.Stats = []Stat{
		{Label: "Projects", Value: len(p.Projects)},
		{Label: "Roles", Value: len(p.Experience)},
		{Label: "Skills", Value: skills, Suffix: "+"},
	}
	return pg
}

// NewProjectView prepares pr for rendering.
func NewProjectView(pr profile.Project) ProjectView {
	return ProjectView{
		ID:      pr.ID,
		Name:    pr.Name,
		Tag:     pr.Tag,
		Summary: pr.Summary,
		Badges:  pr.Tech[:min(len(pr.Tech), MaxCardBadges)],
		Tech:    pr.Tech,
		Bullets: markupAll(pr.Bullets),
	}
}
