package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/b/muxplug/pkg/colors"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownColorSlot = errors.New("unknown color slot")
	ErrInvalidHue       = errors.New("theme_hue must be auto, dark or light")
)

// Format is the on-disk encoding of a config file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the format from the file extension; anything but
// ".toml" is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads the config at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw, FormatFor(path))
}

// Parse decodes raw config bytes, fills defaults and validates the result.
func Parse(raw []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(raw), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.ThemeHue {
	case colors.HueAuto, colors.HueDark, colors.HueLight:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidHue, c.ThemeHue)
	}
	if c.Xresources == "" {
		if _, ok := colors.Themes[c.Theme]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
		}
	}
	for name := range c.Colors {
		p := colors.DefaultPalette
		if paletteSlot(&p, name) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownColorSlot, name)
		}
	}
	_, err := c.Mode()
	return err
}

// Save writes the config to path in the format its extension selects.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	switch FormatFor(path) {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
