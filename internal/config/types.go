package config

// Config is the folio configuration, corresponding to folio.yml.
type Config struct {
	Port      string        `yaml:"port" koanf:"port"`
	Profile   string        `yaml:"profile" koanf:"profile"`
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	GinMode   string        `yaml:"gin_mode" koanf:"gin_mode"`
	Motion    string        `yaml:"motion" koanf:"motion"`
	Preview   PreviewConfig `yaml:"preview" koanf:"preview"`
	Contact   ContactConfig `yaml:"contact" koanf:"contact"`
}

// PreviewConfig sizes the desktop particle preview window.
type PreviewConfig struct {
	Width  int `yaml:"width" koanf:"width"`
	Height int `yaml:"height" koanf:"height"`
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	// GreetingName is used in "Hi <name>," of composed mails. Empty means
	// the profile owner's first name.
	GreetingName string `yaml:"greeting_name" koanf:"greeting_name"`
}
