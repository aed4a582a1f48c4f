// Package config loads optional defaults for the textcounter CLI from a
// TOML file. Flags always override file values; the file only moves the
// starting point.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults holds the flag defaults a config file may override.
type Defaults struct {
	Top       int    `toml:"top"`
	MinLength int    `toml:"min_length"`
	Output    string `toml:"output"`
	Quiet     bool   `toml:"quiet"`
}

// Config is the root of the textcounter configuration file.
type Config struct {
	Defaults Defaults `toml:"defaults"`
}

const (
	defaultTop    = 10
	defaultOutput = "text"
)

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Top:    defaultTop,
			Output: defaultOutput,
		},
	}
}

// DefaultConfigPath returns the absolute path of the default config location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/textcounter/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; the built-in defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", resolved, err)
	}
	return &cfg, nil
}

// resolveConfigPath prefers an explicit path, then the default location,
// then a project-local textcounter.toml.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("textcounter.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Defaults.Output {
	case "text", "json":
	default:
		return fmt.Errorf("defaults.output must be %q or %q, got %q", "text", "json", c.Defaults.Output)
	}
	if c.Defaults.Top < 0 {
		return fmt.Errorf("defaults.top must not be negative, got %d", c.Defaults.Top)
	}
	if c.Defaults.MinLength < 0 {
		return fmt.Errorf("defaults.min_length must not be negative, got %d", c.Defaults.MinLength)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
