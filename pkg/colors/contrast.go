package colors

import (
	"math"
	"strconv"
	"strings"

	"github.com/b/muxplug/pkg/data"
)

// Luminance calculates the relative luminance of a color per the WCAG formula.
// Returns a value between 0 (black) and 1 (white).
func Luminance(c data.PaletteColor) float64 {
	r, g, b := toRGB(c)
	return luminanceRGB(r, g, b)
}

func luminanceRGB(r, g, b int64) float64 {
	rs := gammaSRGB(float64(r) / 255.0)
	gs := gammaSRGB(float64(g) / 255.0)
	bs := gammaSRGB(float64(b) / 255.0)
	return 0.2126*rs + 0.7152*gs + 0.0722*bs
}

// gammaSRGB applies sRGB gamma correction
func gammaSRGB(val float64) float64 {
	if val <= 0.03928 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two colors.
// Returns a value between 1 (no contrast) and 21 (maximum contrast).
func ContrastRatio(fg, bg data.PaletteColor) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight returns true if the color is closer to white than black.
func IsLight(c data.PaletteColor) bool {
	return Luminance(c) > 0.5
}

var (
	white = data.RGB(255, 255, 255)
	black = data.RGB(0, 0, 0)
)

// EnsureContrast adjusts fg until it reaches minRatio against bg.
// minRatio should be 4.5 for WCAG AA, 7.0 for WCAG AAA.
func EnsureContrast(fg, bg data.PaletteColor, minRatio float64) data.PaletteColor {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}

	bgLum := Luminance(bg)
	fgLum := Luminance(fg)
	for step := 1; step <= 10; step++ {
		amount := float64(step) / 10
		var adjusted data.PaletteColor
		if fgLum > bgLum {
			adjusted = lightenBy(fg, amount)
		} else {
			adjusted = darkenBy(fg, amount)
		}
		if ContrastRatio(adjusted, bg) >= minRatio {
			return adjusted
		}
	}

	if bgLum > 0.5 {
		return black
	}
	return white
}

// TextColor picks white or black text for a background. White wins on
// anything reaching the WCAG AA large-text ratio (3:1).
func TextColor(bg data.PaletteColor) data.PaletteColor {
	if ContrastRatio(white, bg) >= 3.0 {
		return white
	}
	if ContrastRatio(black, bg) >= 3.0 {
		return black
	}
	if IsLight(bg) {
		return black
	}
	return white
}

// lightenBy moves a color towards white by amount (0.0 to 1.0)
func lightenBy(c data.PaletteColor, amount float64) data.PaletteColor {
	r, g, b := toRGB(c)
	nr := r + int64(float64(255-r)*amount)
	ng := g + int64(float64(255-g)*amount)
	nb := b + int64(float64(255-b)*amount)
	return clampRGB(nr, ng, nb)
}

// darkenBy moves a color towards black by amount (0.0 to 1.0)
func darkenBy(c data.PaletteColor, amount float64) data.PaletteColor {
	r, g, b := toRGB(c)
	multiplier := 1.0 - amount
	nr := int64(float64(r) * multiplier)
	ng := int64(float64(g) * multiplier)
	nb := int64(float64(b) * multiplier)
	return clampRGB(nr, ng, nb)
}

func clamp(v int64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func clampRGB(r, g, b int64) data.PaletteColor {
	return data.RGB(clamp(r), clamp(g), clamp(b))
}

// hexToRGB converts hex color to RGB values (0-255)
// Returns -1, -1, -1 for invalid colors
func hexToRGB(hexColor string) (int64, int64, int64) {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return -1, -1, -1
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)

	if errR != nil || errG != nil || errB != nil {
		return -1, -1, -1
	}

	return int64(r), int64(g), int64(b)
}

// rgbToHex converts RGB values to hex color string, clamping each channel
func rgbToHex(r, g, b int64) string {
	return "#" + toHex(int64(clamp(r))) + toHex(int64(clamp(g))) + toHex(int64(clamp(b)))
}

// toHex converts a single byte to 2-digit hex
func toHex(val int64) string {
	hex := strconv.FormatInt(val, 16)
	if len(hex) == 1 {
		return "0" + hex
	}
	return hex
}
