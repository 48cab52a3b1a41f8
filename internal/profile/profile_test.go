package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "profile.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Name != "Ada Example" {
		t.Errorf("name = %q, want trimmed", p.Name)
	}
	if p.Links.Email != "ada@example.com" {
		t.Errorf("email = %q, want trimmed", p.Links.Email)
	}
	if p.Links.GitHub != "" || p.Links.Codeforces != "" {
		t.Errorf("unset links should stay empty: %+v", p.Links)
	}
	if len(p.Projects) != 2 || p.Projects[0].ID != "alpha" {
		t.Fatalf("projects = %+v", p.Projects)
	}
	if len(p.Projects[0].Tech) != 5 {
		t.Errorf("tech = %v", p.Projects[0].Tech)
	}
	if p.Education.Years != "2021 – 2025" {
		t.Errorf("education years = %q", p.Education.Years)
	}
	if p.FirstName() != "Ada" {
		t.Errorf("FirstName = %q", p.FirstName())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("name: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestProjectLookup(t *testing.T) {
	p := Default()
	pr, ok := p.Project("portfolio")
	if !ok || pr.Name != "This Portfolio" {
		t.Errorf("Project(portfolio) = %+v, %v", pr, ok)
	}
	if _, ok := p.Project("nope"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestDefaultProjectIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, pr := range Default().Projects {
		if pr.ID == "" || seen[pr.ID] {
			t.Errorf("bad or duplicate project id %q", pr.ID)
		}
		seen[pr.ID] = true
	}
}

func TestProvidersOrder(t *testing.T) {
	ps := Links{GitHub: "g", GFG: "x"}.Providers()
	if len(ps) != 5 || ps[0].Key != "github" || ps[4].Key != "gfg" {
		t.Fatalf("providers = %+v", ps)
	}
	if ps[0].URL != "g" || ps[1].URL != "" || ps[4].URL != "x" {
		t.Errorf("provider urls = %+v", ps)
	}
}
