package site

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		Name: "Ada Example",
		Links: profile.Links{
			Email:    "verylongname@example.com",
			LinkedIn: "https://www.linkedin.com/in/someone-with-a-long-name/",
		},
		Education: profile.Education{School: "Tech U", Degree: "BSc", Years: "2019 – 2023"},
		HeroChips: []string{"<strong>Go</strong> · systems"},
		Experience: []profile.Experience{
			{Title: "Engineer", Years: "2023 – now", Tagline: "Backend", Bullets: []string{"Shipped **fast** things"}},
		},
		Projects: []profile.Project{
			{ID: "alpha", Name: "Alpha", Tag: "Go", Summary: "First", Tech: []string{"a", "b", "c", "d", "e"}, Bullets: []string{"one"}},
			{ID: "beta", Name: "Beta", Tag: "TUI", Summary: "Second", Tech: []string{"x"}},
		},
		Skills: []profile.SkillGroup{
			{Label: "Languages", Hint: "daily", Items: []string{"Go", "SQL"}},
		},
		Achievements: []string{"Won a thing"},
	}
}

func fixedClock() time.Time {
	return time.Date(2031, time.March, 4, 0, 0, 0, 0, time.UTC)
}

func TestMarkup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<strong>Go</strong> · Gin", "<strong>Go</strong> · Gin"},
		{"**bold** move", "<strong>bold</strong> move"},
		{"plain", "plain"},
		{"a\n\nb", "<p>a</p>\n<p>b</p>"},
	}
	for _, tt := range tests {
		if got := string(Markup(tt.in)); got != tt.want {
			t.Errorf("Markup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewPage(t *testing.T) {
	pg := NewPage(testProfile(), fixedClock())

	if pg.Title != "Ada Example · Portfolio" {
		t.Errorf("Title = %q", pg.Title)
	}
	if pg.Year != 2031 {
		t.Errorf("Year = %d, want 2031", pg.Year)
	}
	if pg.Education != "Tech U\nBSc\n2019 – 2023" {
		t.Errorf("Education = %q", pg.Education)
	}
	if pg.Greeting != "Ada" {
		t.Errorf("Greeting = %q", pg.Greeting)
	}

	gh := pg.NavLinks[0]
	if gh.Key != "github" || !gh.Disabled() || gh.Text != profile.Unset || gh.Target() != "#" {
		t.Errorf("github row = %+v", gh)
	}
	if got := pg.NavLinks[1].Text; got != "@someone-with…" {
		t.Errorf("nav linkedin = %q", got)
	}
	if got := pg.ContactLinks[1].Text; got != "@someone-with-a…" {
		t.Errorf("contact linkedin = %q", got)
	}
	if pg.NavEmail.Text != "verylongn…@example.com" || pg.ContactEmail.Text != "verylongname@example.com" {
		t.Errorf("email labels = %q, %q", pg.NavEmail.Text, pg.ContactEmail.Text)
	}
	if pg.NavEmail.Target() != "mailto:verylongname@example.com" {
		t.Errorf("email href = %q", pg.NavEmail.Target())
	}

	if len(pg.Projects[0].Badges) != MaxCardBadges || len(pg.Projects[0].Tech) != 5 {
		t.Errorf("badges = %v", pg.Projects[0].Badges)
	}
	if len(pg.Projects[1].Badges) != 1 {
		t.Errorf("badges = %v", pg.Projects[1].Badges)
	}
	if string(pg.Experience[0].Bullets[0]) != "Shipped <strong>fast</strong> things" {
		t.Errorf("bullet = %q", pg.Experience[0].Bullets[0])
	}
	if pg.Stats[2].Value != 2 || pg.Stats[2].Suffix != "+" {
		t.Errorf("skills stat = %+v", pg.Stats[2])
	}
}

func TestNewPageWithoutEmail(t *testing.T) {
	p := testProfile()
	p.Links.Email = ""
	pg := NewPage(p, fixedClock())
	if !pg.NavEmail.Disabled() || pg.NavEmail.Text != profile.Unset || pg.ContactEmail.Text != profile.Unset {
		t.Errorf("email rows = %+v / %+v", pg.NavEmail, pg.ContactEmail)
	}
}

func newSite(t *testing.T, p *profile.Profile, opts ...Option) *Site {
	t.Helper()
	s, err := New(p, append([]Option{WithClock(fixedClock)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestRenderIndexDisabledLink(t *testing.T) {
	s := newSite(t, testProfile())
	var buf bytes.Buffer
	if err := s.RenderIndex(&buf); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`<a id="link-github" class="rowlink is-disabled" href="#" aria-disabled="true" tabindex="-1">`,
		`<a id="contact-github" class="rowlink is-disabled" href="#" aria-disabled="true" tabindex="-1">`,
		`<span class="rowlink__v mono">set-me</span>`,
		`<title>Ada Example · Portfolio</title>`,
		`<span id="year">2031</span>`,
		`<div class="chip"><strong>Go</strong> · systems</div>`,
		`data-project="alpha"`,
		`<template id="project-beta">`,
		`data-href="#contact"`,
		`data-greet="Ada"`,
		`data-count="2" data-suffix="&#43;"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %s", want)
		}
	}
	if strings.Contains(html, `id="link-linkedin" class="rowlink is-disabled"`) {
		t.Error("configured link rendered disabled")
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("page should start with the doctype, got %q", html[:min(len(html), 40)])
	}
}

func TestRenderIndexOptions(t *testing.T) {
	s := newSite(t, testProfile(), WithMotion("reduce"), WithGreeting("Zed"))
	var buf bytes.Buffer
	if err := s.RenderIndex(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<body data-motion="reduce">`) {
		t.Error("motion preference not rendered")
	}
	if !strings.Contains(buf.String(), `data-greet="Zed"`) {
		t.Error("greeting override not rendered")
	}
}

func TestRenderProject(t *testing.T) {
	s := newSite(t, testProfile())
	var buf bytes.Buffer
	if err := s.RenderProject(&buf, "alpha"); err != nil {
		t.Fatalf("RenderProject: %v", err)
	}
	if !strings.Contains(buf.String(), `<h3 id="modalTitle">Alpha</h3>`) {
		t.Errorf("fragment = %s", buf.String())
	}
	if strings.Count(buf.String(), `class="badge"`) != 5 {
		t.Error("dialog should list every technology")
	}

	err := s.RenderProject(&buf, "missing")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	s := newSite(t, testProfile())
	if err := s.Export(dir); err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, name := range []string{
		"index.html",
		"projects/alpha.html",
		"projects/beta.html",
		"static/style.css",
		"static/fx.js",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
