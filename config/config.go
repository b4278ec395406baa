// Package config loads the optional TOML configuration file that declares
// extra views and walk settings on top of the CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// View declares one additional view to register at startup.
type View struct {
	// Name is the view's unique registry key.
	Name string `toml:"name"`
	// Match selects the predicate kind: "all", "ext", or "glob".
	Match string `toml:"match"`
	// Pattern is the extension suffix or glob pattern; unused for "all".
	Pattern string `toml:"pattern"`
}

// Config is the on-disk configuration.
type Config struct {
	// FileLimit overrides the rebuild file ceiling when > 0.
	FileLimit int `toml:"file_limit"`
	// Excludes are extra ignore patterns, merged with the -exclude flags.
	Excludes []string `toml:"excludes"`
	// Views are registered after the built-in "all" and "css" views.
	Views []View `toml:"view"`
}

// Load reads and validates a config file. A missing file yields an empty
// config, not an error, since the file is optional.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool)
	for i, v := range c.Views {
		if v.Name == "" {
			return fmt.Errorf("view %d: name is required", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("view %q declared twice", v.Name)
		}
		seen[v.Name] = true

		switch v.Match {
		case "all":
			// no pattern needed
		case "ext", "glob":
			if v.Pattern == "" {
				return fmt.Errorf("view %q: match=%q requires a pattern", v.Name, v.Match)
			}
		default:
			return fmt.Errorf("view %q: unknown match kind %q (must be all, ext, or glob)", v.Name, v.Match)
		}
	}
	if c.FileLimit < 0 {
		return fmt.Errorf("file_limit must not be negative")
	}
	return nil
}
