package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zachkp/folio/internal/motion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != "8080" {
		t.Errorf("expected default port %q, got %q", "8080", cfg.Port)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Motion != "auto" {
		t.Errorf("expected default motion %q, got %q", "auto", cfg.Motion)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yml")

	original := DefaultConfig()
	original.Port = "9000"
	original.Profile = "me.yml"
	original.Motion = "reduce"
	original.Preview.Width = 800
	original.Contact.GreetingName = "Zach"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip: got %+v, want %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yml")
	if err := os.WriteFile(path, []byte("port: \"9000\"\nmotion: full\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")
	t.Setenv("FOLIO_MOTION", "reduce")
	t.Setenv("FOLIO_PREVIEW_HEIGHT", "480")
	t.Setenv("FOLIO_CONTACT_GREETING_NAME", "Ada")
	t.Setenv("FOLIO_OUTPUT_DIR", "dist")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port: got %q, want file value 9000", cfg.Port)
	}
	if cfg.Motion != "reduce" {
		t.Errorf("motion: got %q, want env value reduce", cfg.Motion)
	}
	if cfg.Preview.Height != 480 || cfg.Preview.Width != 1280 {
		t.Errorf("preview: got %+v", cfg.Preview)
	}
	if cfg.Contact.GreetingName != "Ada" {
		t.Errorf("greeting_name: got %q", cfg.Contact.GreetingName)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("output_dir: got %q", cfg.OutputDir)
	}
}

func TestPortEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yml")

	t.Setenv("PORT", "3000")
	cfg, err := Load(missing)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "3000" {
		t.Errorf("PORT should apply, got %q", cfg.Port)
	}

	t.Setenv("FOLIO_PORT", "4000")
	cfg, err = Load(missing)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "4000" {
		t.Errorf("FOLIO_PORT should win over PORT, got %q", cfg.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"non-numeric port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"bad gin_mode", func(c *Config) { c.GinMode = "loud" }},
		{"bad motion", func(c *Config) { c.Motion = "sometimes" }},
		{"zero preview", func(c *Config) { c.Preview.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMotionPreference(t *testing.T) {
	cfg := DefaultConfig()
	if p, _ := cfg.MotionPreference(true); p != motion.Reduced {
		t.Errorf("auto with reduced host = %v", p)
	}
	cfg.Motion = "full"
	if p, _ := cfg.MotionPreference(true); p != motion.Full {
		t.Errorf("explicit full = %v", p)
	}
}
