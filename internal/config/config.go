// Package config provides configuration file handling for underlinee.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thirteen37/underlinee/internal/logging"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Config represents the underlinee configuration file.
type Config struct {
	Log Log `toml:"log" yaml:"log" ini:"log"`

	Output Output `toml:"output" yaml:"output" ini:"output"`

	// EditorConfig enables reading .editorconfig for the line ending of inserted lines.
	EditorConfig bool `toml:"editorconfig" yaml:"editorconfig" ini:"editorconfig"`
}

// Log configures diagnostic output on stderr.
type Log struct {
	Level  string `toml:"level" yaml:"level" ini:"level"`
	Format string `toml:"format" yaml:"format" ini:"format"`
}

// Output configures where generate writes its result.
type Output struct {
	InPlace bool `toml:"in_place" yaml:"in_place" ini:"in_place"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		EditorConfig: true,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, "underlinee", "config.toml"), nil
}

// Load reads a Config from a TOML, YAML or INI file, chosen by extension.
// Values missing from the file keep their defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".ini":
		f, err := ini.Load(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := f.MapTo(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .toml, .yaml, .yml or .ini)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath, falling back to Default when it does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file as TOML, creating parent directories.
func (c *Config) Save(filename string) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to write config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}

// Validate checks that enumerated settings hold values the logger accepts.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}
