// Package config loads folio settings from defaults, an optional YAML file
// and FOLIO_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Zachkp/folio/internal/motion"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "folio.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FOLIO_"

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:      "8080",
		OutputDir: "public",
		GinMode:   gin.ReleaseMode,
		Motion:    "auto",
		Preview: PreviewConfig{
			Width:  1280,
			Height: 720,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file is not an
// error. PORT is honored when FOLIO_PORT is unset.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// FOLIO_PREVIEW_WIDTH -> preview.width, FOLIO_GIN_MODE -> gin_mode.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"PORT") == "" {
		cfg.Port = port
	}
	return cfg, nil
}

// sections are the nested tables whose keys env names flatten with "_".
var sections = []string{"preview", "contact"}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validGinModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q: must be a number between 1 and 65535", c.Port)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid gin_mode %q: must be one of debug, release, test", c.GinMode)
	}
	if _, err := motion.Parse(c.Motion, false); err != nil {
		return err
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height)
	}
	return nil
}

// MotionPreference resolves the configured motion setting. hostReduced is
// the host's own reduced-motion preference, consulted for "auto".
func (c *Config) MotionPreference(hostReduced bool) (motion.Preference, error) {
	return motion.Parse(c.Motion, hostReduced)
}
