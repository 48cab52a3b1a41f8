// Package site renders the portfolio page from a profile, for the HTTP
// server and for static export.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Zachkp/folio/internal/profile"
)

// Template names.
const (
	IndexTemplate   = "index.html"
	ProjectTemplate = "project.html"
)

// ErrProjectNotFound is returned for an unknown project id.
var ErrProjectNotFound = errors.New("project not found")

// linkRowData is the argument of the "linkrow" template.
type linkRowData struct {
	ID  string
	Row LinkRow
}

var funcs = template.FuncMap{
	"row": func(id string, r LinkRow) linkRowData { return linkRowData{ID: id, Row: r} },
}

// Site renders one profile. It is safe for concurrent use: the profile
// and the parsed templates are never modified after New.
type Site struct {
	profile  *profile.Profile
	tmpl     *template.Template
	now      func() time.Time
	motion   string
	greeting string
}

// Option configures a Site.
type Option func(*Site)

// WithClock sets the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// WithMotion sets the configured motion preference ("auto", "full" or
// "reduce") the page hands to its scripts.
func WithMotion(m string) Option {
	return func(s *Site) { s.motion = m }
}

// WithGreeting sets the name contact mails are addressed to. Empty keeps
// the profile owner's first name.
func WithGreeting(name string) Option {
	return func(s *Site) { s.greeting = name }
}

// New parses the embedded templates for p.
func New(p *profile.Profile, opts ...Option) (*Site, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s := &Site{profile: p, tmpl: tmpl, now: time.Now, motion: "auto"}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Profile returns the rendered profile.
func (s *Site) Profile() *profile.Profile { return s.profile }

// Templates returns the parsed templates, for engines that render by name.
func (s *Site) Templates() *template.Template { return s.tmpl }

// Greeting is the name contact mails are addressed to.
func (s *Site) Greeting() string {
	if s.greeting != "" {
		return s.greeting
	}
	return s.profile.FirstName()
}

// Page builds the page view model as of now.
func (s *Site) Page() *Page {
	pg := NewPage(s.profile, s.now())
	pg.Motion = s.motion
	pg.Greeting = s.Greeting()
	return pg
}

// Project returns the view of the project with the given id.
func (s *Site) Project(id string) (ProjectView, error) {
	pr, ok := s.profile.Project(id)
	if !ok {
		return ProjectView{}, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
	}
	return NewProjectView(pr), nil
}

// RenderIndex writes the full page.
func (s *Site) RenderIndex(w io.Writer) error {
	return s.tmpl.ExecuteTemplate(w, IndexTemplate, s.Page())
}

// RenderProject writes the dialog fragment for one project.
func (s *Site) RenderProject(w io.Writer, id string) error {
	pv, err := s.Project(id)
	if err != nil {
		return err
	}
	return s.tmpl.ExecuteTemplate(w, ProjectTemplate, pv)
}

// Export writes a static copy of the site to dir: index.html, one fragment
// per project under projects/, and the static assets under static/.
func (s *Site) Export(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "projects"), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := s.RenderIndex(&buf); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return err
	}

	for _, pr := range s.profile.Projects {
		buf.Reset()
		if err := s.RenderProject(&buf, pr.ID); err != nil {
			return fmt.Errorf("rendering project %s: %w", pr.ID, err)
		}
		path := filepath.Join(dir, "projects", pr.ID+".html")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	n, err := copyFS(filepath.Join(dir, "static"), Static())
	if err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	log.Printf("[site] exported %d projects and %d assets to %s", len(s.profile.Projects), n, dir)
	return nil
}

func copyFS(dst string, src fs.FS) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		n++
		return os.WriteFile(target, data, 0o644)
	})
	return n, err
}
