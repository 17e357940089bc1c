// Package config loads the user settings that shape what the host sends
// plugins: the palette, the rounded-corner and arrow-font preferences, the
// starting input mode and the session name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/b/muxplug/pkg/colors"
	"github.com/b/muxplug/pkg/data"
	"github.com/b/muxplug/pkg/paths"
)

type Config struct {
	Theme          string            `yaml:"theme" toml:"theme"`
	Xresources     string            `yaml:"xresources,omitempty" toml:"xresources,omitempty"`
	ThemeHue       colors.HueMode    `yaml:"theme_hue" toml:"theme_hue"`
	RoundedCorners bool              `yaml:"rounded_corners" toml:"rounded_corners"`
	ArrowFonts     *bool             `yaml:"arrow_fonts" toml:"arrow_fonts"`
	DefaultMode    string            `yaml:"default_mode,omitempty" toml:"default_mode,omitempty"`
	SessionName    string            `yaml:"session_name,omitempty" toml:"session_name,omitempty"`
	Colors         map[string]string `yaml:"colors,omitempty" toml:"colors,omitempty"` // slot name -> "#rrggbb", "colourN" or "N"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func DefaultConfigPath() string {
	return paths.FindConfig()
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.ThemeHue == "" {
		cfg.ThemeHue = colors.HueAuto
	}
	if cfg.ArrowFonts == nil {
		arrowFonts := true
		cfg.ArrowFonts = &arrowFonts
	}
}

// detectHue decides the hue of the default theme when theme_hue is auto.
var detectHue = func() data.ThemeHue {
	return colors.NewDetector(colors.HueAuto).Hue()
}

// Palette builds the palette: the named theme or the Xresources file, then
// the hue setting, then per-slot color overrides.
func (c *Config) Palette() (data.Palette, error) {
	var p data.Palette
	if c.Xresources != "" {
		f, err := os.Open(expandHome(c.Xresources))
		if err != nil {
			return data.Palette{}, fmt.Errorf("open xresources: %w", err)
		}
		defer f.Close()
		p, err = colors.ParseXresources(f)
		if err != nil {
			return data.Palette{}, err
		}
	} else {
		theme, ok := colors.Themes[c.Theme]
		if !ok {
			return data.Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
		}
		p = theme.Palette
		if c.Theme == "default" && c.ThemeHue == colors.HueAuto {
			p.ThemeHue = detectHue()
		}
	}

	switch c.ThemeHue {
	case colors.HueDark:
		p.ThemeHue = data.ThemeHueDark
	case colors.HueLight:
		p.ThemeHue = data.ThemeHueLight
	}

	for name, value := range c.Colors {
		slot := paletteSlot(&p, name)
		if slot == nil {
			return data.Palette{}, fmt.Errorf("%w: %q", ErrUnknownColorSlot, name)
		}
		color, err := colors.ParseColor(value)
		if err != nil {
			return data.Palette{}, fmt.Errorf("colors.%s: %w", name, err)
		}
		*slot = color
	}
	return p, nil
}

// Style returns the palette together with the corner preference.
func (c *Config) Style() (data.Style, error) {
	p, err := c.Palette()
	if err != nil {
		return data.Style{}, err
	}
	return data.Style{Colors: p, RoundedCorners: c.RoundedCorners}, nil
}

func (c *Config) Capabilities() data.PluginCapabilities {
	caps := data.DefaultPluginCapabilities()
	if c.ArrowFonts != nil {
		caps.ArrowFonts = *c.ArrowFonts
	}
	return caps
}

// Mode parses default_mode. An empty value means normal mode.
func (c *Config) Mode() (data.InputMode, error) {
	if c.DefaultMode == "" {
		return data.ModeNormal, nil
	}
	var m data.InputMode
	if err := m.UnmarshalText([]byte(c.DefaultMode)); err != nil {
		return data.ModeNormal, fmt.Errorf("default_mode: %w", err)
	}
	return m, nil
}

// ModeInfo assembles the payload of a ModeUpdate event for the starting mode.
func (c *Config) ModeInfo(keybinds data.KeybindsVec) (data.ModeInfo, error) {
	mode, err := c.Mode()
	if err != nil {
		return data.ModeInfo{}, err
	}
	style, err := c.Style()
	if err != nil {
		return data.ModeInfo{}, err
	}
	info := data.ModeInfo{
		Mode:         mode,
		Keybinds:     keybinds,
		Style:        style,
		Capabilities: c.Capabilities(),
	}
	if c.SessionName != "" {
		name := c.SessionName
		info.SessionName = &name
	}
	return info, nil
}

func paletteSlot(p *data.Palette, name string) *data.PaletteColor {
	switch strings.ToLower(name) {
	case "fg":
		return &p.Fg
	case "bg":
		return &p.Bg
	case "black":
		return &p.Black
	case "red":
		return &p.Red
	case "green":
		return &p.Green
	case "yellow":
		return &p.Yellow
	case "blue":
		return &p.Blue
	case "magenta":
		return &p.Magenta
	case "cyan":
		return &p.Cyan
	case "white":
		return &p.White
	case "orange":
		return &p.Orange
	case "gray", "grey":
		return &p.Gray
	case "purple":
		return &p.Purple
	case "gold":
		return &p.Gold
	case "silver":
		return &p.Silver
	case "pink":
		return &p.Pink
	case "brown":
		return &p.Brown
	}
	return nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
