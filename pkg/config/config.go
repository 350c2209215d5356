package config

import (
	"github.com/arthur-debert/fileicons/pkg/icons"
)

// Config is the effective fileicons configuration
type Config struct {
	Classify Classify `koanf:"classify" toml:"classify"`
	Database Database `koanf:"database" toml:"database"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Classify holds the defaults for classification options
type Classify struct {
	ColorMode    icons.ColorMode `koanf:"color_mode" toml:"color_mode"`
	SkipFallback bool            `koanf:"skip_fallback" toml:"skip_fallback"`
}

// Database selects the rule database. An empty Path means the embedded one.
type Database struct {
	Path string `koanf:"path" toml:"path"`
}

// Output configures how commands render results
type Output struct {
	Format string `koanf:"format" toml:"format"`
	// Styles is a YAML file replacing the built-in terminal styles
	Styles string `koanf:"styles" toml:"styles"`
}

// Default returns the configuration used when no source sets anything
func Default() *Config {
	return &Config{
		Classify: Classify{ColorMode: icons.ColorModeLight},
		Output:   Output{Format: "auto"},
	}
}
