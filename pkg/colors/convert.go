// Package colors converts palette colors between the wire representation and
// the forms terminals, tmux and lipgloss understand, and provides the
// built-in palettes.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/b/muxplug/pkg/data"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ParseColor reads a color as written in config files: "#rrggbb" (the
// hash is optional), "colourN", "colorN" or a bare index "N".
func ParseColor(s string) (data.PaletteColor, error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"colour", "color"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return parseIndex(rest, s)
		}
	}
	if _, err := strconv.Atoi(s); err == nil && len(s) <= 3 {
		return parseIndex(s, s)
	}
	r, g, b := hexToRGB(s)
	if r < 0 {
		return data.PaletteColor{}, fmt.Errorf("invalid color %q", s)
	}
	return data.RGB(uint8(r), uint8(g), uint8(b)), nil
}

func parseIndex(digits, orig string) (data.PaletteColor, error) {
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return data.PaletteColor{}, fmt.Errorf("invalid color index %q", orig)
	}
	return data.EightBit(uint8(n)), nil
}

// MustParse is ParseColor for built-in tables; it panics on bad input.
func MustParse(s string) data.PaletteColor {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb". Indexed colors use the xterm
// 256-color table.
func Hex(c data.PaletteColor) string {
	r, g, b := toRGB(c)
	return rgbToHex(r, g, b)
}

// TmuxColor formats the color for tmux style strings: "colourN" for
// indexed colors, "#rrggbb" for RGB.
func TmuxColor(c data.PaletteColor) string {
	if c.Kind == data.ColorEightBit {
		return fmt.Sprintf("colour%d", c.Index)
	}
	return rgbToHex(int64(c.R), int64(c.G), int64(c.B))
}

// NearestIndexed maps an RGB color onto the 6x6x6 cube of the 256-color
// palette. Indexed colors are returned unchanged.
func NearestIndexed(c data.PaletteColor) data.PaletteColor {
	if c.Kind == data.ColorEightBit {
		return c
	}
	r6 := int(c.R) * 6 / 256
	g6 := int(c.G) * 6 / 256
	b6 := int(c.B) * 6 / 256
	return data.EightBit(uint8(16 + 36*r6 + 6*g6 + b6))
}

// Adjust shifts every channel by amount*255, clamped. Positive amounts
// lighten, negative amounts darken. The result is always RGB.
func Adjust(c data.PaletteColor, amount float64) data.PaletteColor {
	r, g, b := toRGB(c)
	shift := func(v int64) uint8 {
		adjusted := float64(v) + (255.0 * amount)
		if adjusted < 0 {
			adjusted = 0
		}
		if adjusted > 255 {
			adjusted = 255
		}
		return uint8(adjusted)
	}
	return data.RGB(shift(r), shift(g), shift(b))
}

// colorString returns the string termenv and lipgloss parse: an ANSI index or a hex value.
func colorString(c data.PaletteColor) string {
	if c.Kind == data.ColorEightBit {
		return strconv.Itoa(int(c.Index))
	}
	return rgbToHex(int64(c.R), int64(c.G), int64(c.B))
}

// ToTermenv converts the color and degrades it to what profile supports.
func ToTermenv(c data.PaletteColor, profile termenv.Profile) termenv.Color {
	return profile.Color(colorString(c))
}

// ToLipgloss converts the color for use in lipgloss styles.
func ToLipgloss(c data.PaletteColor) lipgloss.TerminalColor {
	return lipgloss.Color(colorString(c))
}

func toRGB(c data.PaletteColor) (int64, int64, int64) {
	if c.Kind == data.ColorRGB {
		return int64(c.R), int64(c.G), int64(c.B)
	}
	rgb := termenv.ConvertToRGB(termenv.ANSI256Color(c.Index))
	r, g, b := rgb.RGB255()
	return int64(r), int64(g), int64(b)
}
