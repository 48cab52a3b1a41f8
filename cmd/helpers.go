package cmd

import (
	"fmt"
	"log"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/profile"
	"github.com/Zachkp/folio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadProfile reads the configured profile file, or the built-in profile
// when none is set.
func loadProfile(cfg *config.Config) (*profile.Profile, error) {
	if cfg.Profile == "" {
		return profile.Default(), nil
	}
	p, err := profile.Load(cfg.Profile)
	if err != nil {
		return nil, err
	}
	log.Printf("[profile] loaded %s (%d projects)", cfg.Profile, len(p.Projects))
	return p, nil
}

// buildSite loads the profile and prepares the renderer for it.
func buildSite(cfg *config.Config) (*site.Site, error) {
	p, err := loadProfile(cfg)
	if err != nil {
		return nil, err
	}
	return site.New(p,
		site.WithMotion(cfg.Motion),
		site.WithGreeting(cfg.Contact.GreetingName),
	)
}
