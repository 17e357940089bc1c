package colors

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/b/muxplug/pkg/data"
)

// xresourceSlots maps X resource names onto palette slots. Slots without
// an X counterpart keep the DefaultPalette color.
var xresourceSlots = map[string]func(p *data.Palette) *data.PaletteColor{
	"foreground": func(p *data.Palette) *data.PaletteColor { return &p.Fg },
	"background": func(p *data.Palette) *data.PaletteColor { return &p.Bg },
	"color0":     func(p *data.Palette) *data.PaletteColor { return &p.Black },
	"color1":     func(p *data.Palette) *data.PaletteColor { return &p.Red },
	"color2":     func(p *data.Palette) *data.PaletteColor { return &p.Green },
	"color3":     func(p *data.Palette) *data.PaletteColor { return &p.Yellow },
	"color4":     func(p *data.Palette) *data.PaletteColor { return &p.Blue },
	"color5":     func(p *data.Palette) *data.PaletteColor { return &p.Magenta },
	"color6":     func(p *data.Palette) *data.PaletteColor { return &p.Cyan },
	"color7":     func(p *data.Palette) *data.PaletteColor { return &p.White },
	"color8":     func(p *data.Palette) *data.PaletteColor { return &p.Gray },
	"color9":     func(p *data.Palette) *data.PaletteColor { return &p.Orange },
	"color11":    func(p *data.Palette) *data.PaletteColor { return &p.Gold },
	"color13":    func(p *data.Palette) *data.PaletteColor { return &p.Pink },
	"color15":    func(p *data.Palette) *data.PaletteColor { return &p.Silver },
}

// ParseXresources reads `xrdb -query` style output (or a ~/.Xresources
// file) into a palette with source Xresources. Lines look like
// "*.color1: #cc241d" or "URxvt*foreground: #ebdbb2"; "!" starts a comment.
// The hue follows the background luminance.
func ParseXresources(r io.Reader) (data.Palette, error) {
	p := DefaultPalette
	p.Source = data.PaletteSourceXresources

	sawBackground := false
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		// Resource names are "class*name" or "class.name"; only the last
		// component matters here.
		name := strings.TrimSpace(key)
		if i := strings.LastIndexAny(name, "*."); i >= 0 {
			name = name[i+1:]
		}
		slot, known := xresourceSlots[name]
		if !known {
			continue
		}
		c, err := ParseColor(value)
		if err != nil {
			return data.Palette{}, fmt.Errorf("xresources line %d: %w", lineNo, err)
		}
		*slot(&p) = c
		if name == "background" {
			sawBackground = true
		}
	}
	if err := scanner.Err(); err != nil {
		return data.Palette{}, fmt.Errorf("read xresources: %w", err)
	}

	if sawBackground && IsLight(p.Bg) {
		p.ThemeHue = data.ThemeHueLight
	} else {
		p.ThemeHue = data.ThemeHueDark
	}
	return p, nil
}
