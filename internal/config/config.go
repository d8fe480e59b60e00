// Package config handles Appfile parsing, location resolution, and
// validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bradcypert/uppies/internal/compare"
)

// CommandSpec is either a path to an executable script file or an
// inline shell command. Exactly one of the two fields is set; the
// choice is resolved to a single command string at the point of use.
type CommandSpec struct {
	File   string `toml:"file,omitempty" yaml:"file,omitempty" json:"file,omitempty"`
	Inline string `toml:"inline,omitempty" yaml:"inline,omitempty" json:"inline,omitempty"`
}

// AsCommand returns the shell command this spec resolves to.
func (c CommandSpec) AsCommand() string {
	if c.File != "" {
		return c.File
	}
	return c.Inline
}

// App is one registered application.
type App struct {
	Name        string       `toml:"name" yaml:"name" json:"name"`
	Description string       `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Local       CommandSpec  `toml:"local" yaml:"local" json:"local"`
	Remote      CommandSpec  `toml:"remote" yaml:"remote" json:"remote"`
	Update      CommandSpec  `toml:"update" yaml:"update" json:"update"`
	Compare     compare.Mode `toml:"compare,omitempty" yaml:"compare,omitempty" json:"compare,omitempty"`
}

// Config is the parsed Appfile.
type Config struct {
	Apps []App `toml:"app" yaml:"app" json:"app"`
}

// Find resolves the Appfile location: the explicit path if given, then
// the UPPIES_CONFIG environment variable, then the default
// ~/.local/share/uppies/apps.{toml,yaml,yml,json}.
func Find(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("specified config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	if envPath := os.Getenv("UPPIES_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("UPPIES_CONFIG points to a missing file: %s", envPath)
		}
		return envPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "share", "uppies")
	for _, name := range []string{"apps.toml", "apps.yaml", "apps.yml", "apps.json"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no config file found (expected %s)", filepath.Join(dir, "apps.toml"))
}

// DefaultPath returns the path where a new Appfile should be created.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "uppies", "apps.toml"), nil
}

// Load reads, parses, and validates an Appfile.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectFormat(path, content)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unable to detect file format for %s", path)
	}

	cfg, err := parse(content, format)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
