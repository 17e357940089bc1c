package colors

import (
	"sort"

	"github.com/b/muxplug/pkg/data"
)

// Theme is a named built-in palette.
type Theme struct {
	Name        string
	Description string
	Palette     data.Palette
}

// DefaultPalette uses indexed colors only, so it works on any 256-color
// terminal without configuration.
var DefaultPalette = data.Palette{
	Source:   data.PaletteSourceDefault,
	ThemeHue: data.ThemeHueDark,
	Fg:       data.EightBit(245),
	Bg:       data.EightBit(238),
	Black:    data.EightBit(16),
	Red:      data.EightBit(124),
	Green:    data.EightBit(154),
	Yellow:   data.EightBit(166),
	Blue:     data.EightBit(45),
	Magenta:  data.EightBit(201),
	Cyan:     data.EightBit(51),
	White:    data.EightBit(255),
	Orange:   data.EightBit(166),
	Gray:     data.EightBit(238),
	Purple:   data.EightBit(99),
	Gold:     data.EightBit(136),
	Silver:   data.EightBit(7),
	Pink:     data.EightBit(206),
	Brown:    data.EightBit(130),
}

// hexPalette builds a palette from hex strings listed in Palette field order,
// fg first.
func hexPalette(hue data.ThemeHue, colors ...string) data.Palette {
	if len(colors) != 17 {
		panic("hexPalette needs 17 colors")
	}
	c := make([]data.PaletteColor, len(colors))
	for i, s := range colors {
		c[i] = MustParse(s)
	}
	return data.Palette{
		Source:   data.PaletteSourceDefault,
		ThemeHue: hue,
		Fg:       c[0],
		Bg:       c[1],
		Black:    c[2],
		Red:      c[3],
		Green:    c[4],
		Yellow:   c[5],
		Blue:     c[6],
		Magenta:  c[7],
		Cyan:     c[8],
		White:    c[9],
		Orange:   c[10],
		Gray:     c[11],
		Purple:   c[12],
		Gold:     c[13],
		Silver:   c[14],
		Pink:     c[15],
		Brown:    c[16],
	}
}

// Built-in themes
var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Description: "Indexed colors for any 256-color terminal",
		Palette:     DefaultPalette,
	},

	"rose-pine-dawn": {
		Name:        "Rose Pine Dawn",
		Description: "Soft light theme with warm colors",
		Palette:     hexPalette(data.ThemeHueLight, "#575279", "#faf4ed", "#f2e9e1", "#b4637a", "#286983", "#ea9d34", "#56949f", "#907aa9", "#d7827e", "#fffaf3", "#d7827e", "#9893a5", "#907aa9", "#ea9d34", "#dfdad9", "#d7827e", "#797593"),
	},

	"rose-pine": {
		Name:        "Rose Pine",
		Description: "Elegant dark theme with muted colors",
		Palette:     hexPalette(data.ThemeHueDark, "#e0def4", "#191724", "#26233a", "#eb6f92", "#31748f", "#f6c177", "#9ccfd8", "#c4a7e7", "#ebbcba", "#e0def4", "#f6c177", "#6e6a86", "#c4a7e7", "#f6c177", "#908caa", "#ebbcba", "#403d52"),
	},

	"catppuccin-mocha": {
		Name:        "Catppuccin Mocha",
		Description: "Soothing pastel dark theme",
		Palette:     hexPalette(data.ThemeHueDark, "#cdd6f4", "#1e1e2e", "#45475a", "#f38ba8", "#a6e3a1", "#f9e2af", "#89b4fa", "#f5c2e7", "#94e2d5", "#bac2de", "#fab387", "#6c7086", "#cba6f7", "#f9e2af", "#a6adc8", "#f5c2e7", "#eba0ac"),
	},

	"catppuccin-latte": {
		Name:        "Catppuccin Latte",
		Description: "Soothing pastel light theme",
		Palette:     hexPalette(data.ThemeHueLight, "#4c4f69", "#eff1f5", "#5c5f77", "#d20f39", "#40a02b", "#df8e1d", "#1e66f5", "#ea76cb", "#179299", "#acb0be", "#fe640b", "#9ca0b0", "#8839ef", "#df8e1d", "#bcc0cc", "#ea76cb", "#e64553"),
	},

	"dracula": {
		Name:        "Dracula",
		Description: "Dark theme with vibrant colors",
		Palette:     hexPalette(data.ThemeHueDark, "#f8f8f2", "#282a36", "#21222c", "#ff5555", "#50fa7b", "#f1fa8c", "#6272a4", "#ff79c6", "#8be9fd", "#f8f8f2", "#ffb86c", "#44475a", "#bd93f9", "#f1fa8c", "#bfbfbf", "#ff79c6", "#a76f3c"),
	},

	"nord": {
		Name:        "Nord",
		Description: "Arctic, north-bluish color palette",
		Palette:     hexPalette(data.ThemeHueDark, "#d8dee9", "#2e3440", "#3b4252", "#bf616a", "#a3be8c", "#ebcb8b", "#81a1c1", "#b48ead", "#88c0d0", "#e5e9f0", "#d08770", "#4c566a", "#b48ead", "#ebcb8b", "#eceff4", "#b48ead", "#d08770"),
	},

	"gruvbox-dark": {
		Name:        "Gruvbox Dark",
		Description: "Retro groove dark theme",
		Palette:     hexPalette(data.ThemeHueDark, "#ebdbb2", "#282828", "#282828", "#cc241d", "#98971a", "#d79921", "#458588", "#b16286", "#689d6a", "#a89984", "#d65d0e", "#928374", "#b16286", "#fabd2f", "#bdae93", "#d3869b", "#af3a03"),
	},

	"solarized-light": {
		Name:        "Solarized Light",
		Description: "Precision colors for light backgrounds",
		Palette:     hexPalette(data.ThemeHueLight, "#657b83", "#fdf6e3", "#073642", "#dc322f", "#859900", "#b58900", "#268bd2", "#d33682", "#2aa198", "#eee8d5", "#cb4b16", "#93a1a1", "#6c71c4", "#b58900", "#839496", "#d33682", "#cb4b16"),
	},
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["default"]
}

// ListThemes returns all available theme names, sorted
func ListThemes() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
