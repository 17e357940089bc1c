package data

import (
	"encoding/json"
	"fmt"
)

// ColorKind selects which PaletteColor variant is populated.
type ColorKind uint8

const (
	// ColorEightBit is an indexed 256-color value. It is the zero kind so
	// the zero PaletteColor is EightBit(0).
	ColorEightBit ColorKind = iota
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// PaletteColor is either an RGB triple or an indexed 8-bit color.
// The zero value is EightBit(0).
type PaletteColor struct {
	Kind    ColorKind
	R, G, B uint8
	Index   uint8
}

// RGB returns a 24-bit PaletteColor.
func RGB(r, g, b uint8) PaletteColor {
	return PaletteColor{Kind: ColorRGB, R: r, G: g, B: b}
}

// EightBit returns an indexed PaletteColor.
func EightBit(n uint8) PaletteColor {
	return PaletteColor{Kind: ColorEightBit, Index: n}
}

func (c PaletteColor) String() string {
	if c.Kind == ColorRGB {
		return fmt.Sprintf("Rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("EightBit(%d)", c.Index)
}

func (c PaletteColor) MarshalJSON() ([]byte, error) {
	if c.Kind == ColorRGB {
		return marshalTagged("Rgb", [3]uint8{c.R, c.G, c.B})
	}
	return marshalTagged("EightBit", c.Index)
}

func (c *PaletteColor) UnmarshalJSON(b []byte) error {
	name, payload, err := splitTagged(b)
	if err != nil {
		return fmt.Errorf("palette color: %w", err)
	}
	if err := needPayload(name, payload); err != nil {
		return err
	}
	switch name {
	case "Rgb":
		var parts []json.RawMessage
		if err := json.Unmarshal(payload, &parts); err != nil {
			return fmt.Errorf("palette color Rgb: %w", err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("palette color Rgb: expected 3 components, got %d", len(parts))
		}
		var rgb [3]uint8
		for i, part := range parts {
			if err := json.Unmarshal(part, &rgb[i]); err != nil {
				return fmt.Errorf("palette color Rgb: %w", err)
			}
		}
		*c = RGB(rgb[0], rgb[1], rgb[2])
	case "EightBit":
		var n uint8
		if err := json.Unmarshal(payload, &n); err != nil {
			return fmt.Errorf("palette color EightBit: %w", err)
		}
		*c = EightBit(n)
	default:
		return unknownVariant("palette color", name)
	}
	return nil
}

// PaletteSource records where a palette came from.
type PaletteSource uint8

const (
	PaletteSourceDefault PaletteSource = iota
	PaletteSourceXresources
)

var paletteSourceNames = [...]string{"Default", "Xresources"}

func (s PaletteSource) String() string {
	if int(s) < len(paletteSourceNames) {
		return paletteSourceNames[s]
	}
	return fmt.Sprintf("PaletteSource(%d)", uint8(s))
}

func (s PaletteSource) MarshalText() ([]byte, error) {
	if int(s) >= len(paletteSourceNames) {
		return nil, fmt.Errorf("invalid palette source %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *PaletteSource) UnmarshalText(b []byte) error {
	for i, name := range paletteSourceNames {
		if string(b) == name {
			*s = PaletteSource(i)
			return nil
		}
	}
	return unknownVariant("palette source", string(b))
}

// ThemeHue tells whether a theme is meant for a light or dark background.
// The zero value is Dark, which is also the default.
type ThemeHue uint8

const (
	ThemeHueDark ThemeHue = iota
	ThemeHueLight
)

func (h ThemeHue) String() string {
	switch h {
	case ThemeHueDark:
		return "Dark"
	case ThemeHueLight:
		return "Light"
	}
	return fmt.Sprintf("ThemeHue(%d)", uint8(h))
}

func (h ThemeHue) MarshalText() ([]byte, error) {
	if h > ThemeHueLight {
		return nil, fmt.Errorf("invalid theme hue %d", uint8(h))
	}
	return []byte(h.String()), nil
}

func (h *ThemeHue) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Dark":
		*h = ThemeHueDark
	case "Light":
		*h = ThemeHueLight
	default:
		return unknownVariant("theme hue", string(b))
	}
	return nil
}

// Palette is the full set of theme colors. The zero value is the default
// palette: every slot EightBit(0), source Default, hue Dark.
type Palette struct {
	Source   PaletteSource `json:"source"`
	ThemeHue ThemeHue      `json:"theme_hue"`
	Fg       PaletteColor  `json:"fg"`
	Bg       PaletteColor  `json:"bg"`
	Black    PaletteColor  `json:"black"`
	Red      PaletteColor  `json:"red"`
	Green    PaletteColor  `json:"green"`
	Yellow   PaletteColor  `json:"yellow"`
	Blue     PaletteColor  `json:"blue"`
	Magenta  PaletteColor  `json:"magenta"`
	Cyan     PaletteColor  `json:"cyan"`
	White    PaletteColor  `json:"white"`
	Orange   PaletteColor  `json:"orange"`
	Gray     PaletteColor  `json:"gray"`
	Purple   PaletteColor  `json:"purple"`
	Gold     PaletteColor  `json:"gold"`
	Silver   PaletteColor  `json:"silver"`
	Pink     PaletteColor  `json:"pink"`
	Brown    PaletteColor  `json:"brown"`
}

// Style is the palette plus display flags handed to plugins.
type Style struct {
	Colors         Palette `json:"colors"`
	RoundedCorners bool    `json:"rounded_corners"`
}
