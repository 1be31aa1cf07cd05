package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk configuration format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension. Unknown extensions are YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Loader resolves the configuration file to use.
type Loader struct {
	UserDir  string // Usually ~/.flappy
	LocalDir string // Usually ./configs
}

// NewLoader creates a loader with the standard search directories.
func NewLoader() *Loader {
	l := &Loader{LocalDir: "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		l.UserDir = filepath.Join(home, ".flappy")
	}
	return l
}

// LoadFlappy loads and validates the flappy configuration.
// Search order: customPath -> ~/.flappy/flappy.{yaml,toml} -> ./configs/flappy.{yaml,toml} -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return NewLoader().Load(customPath)
}

// Load resolves, decodes and validates the configuration.
// Files only need to set the values they override.
func (l *Loader) Load(customPath string) (FlappyConfig, error) {
	cfg, err := l.resolve(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) resolve(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultFlappyConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := Decode(data, FormatFromPath(customPath), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Missing files in the search directories are skipped, broken ones are errors
	for _, dir := range []string{l.UserDir, l.LocalDir} {
		if dir == "" {
			continue
		}
		for _, name := range []string{"flappy.yaml", "flappy.toml"} {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			cfg := DefaultFlappyConfig()
			if err != nil {
				return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
			}
			if err := Decode(data, FormatFromPath(path), &cfg); err != nil {
				return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultFlappyConfig()
	if err := Decode(defaultFlappyYAML, FormatYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data in the given format on top of the values already in cfg.
func Decode(data []byte, format Format, cfg *FlappyConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, format Format, cfg FlappyConfig) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
}
