package colors

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/b/muxplug/pkg/data"
	"github.com/muesli/termenv"
)

// HueMode selects how the theme hue is decided
type HueMode string

const (
	HueAuto  HueMode = "auto"
	HueDark  HueMode = "dark"
	HueLight HueMode = "light"
)

// Detector decides whether the terminal background is light or dark
type Detector struct {
	mode          HueMode
	cached        *data.ThemeHue
	detectedColor string

	// queryTerminal enables the OSC background query through termenv.
	queryTerminal bool
}

// NewDetector creates a new detector with the given mode
func NewDetector(mode HueMode) *Detector {
	return &Detector{
		mode:          mode,
		queryTerminal: true,
	}
}

// Hue returns the detected hue. The result is cached.
func (d *Detector) Hue() data.ThemeHue {
	if d.cached != nil {
		return *d.cached
	}

	var hue data.ThemeHue
	switch d.mode {
	case HueDark:
		hue = data.ThemeHueDark
	case HueLight:
		hue = data.ThemeHueLight
	default:
		hue = d.detect()
	}

	d.cached = &hue
	return hue
}

// DetectedColor returns the detected background color hex if available
func (d *Detector) DetectedColor() string {
	return d.detectedColor
}

func hueOf(isDark bool) data.ThemeHue {
	if isDark {
		return data.ThemeHueDark
	}
	return data.ThemeHueLight
}

func (d *Detector) detect() data.ThemeHue {
	// COLORFGBG is the fastest and most reliable hint
	if isDark, ok := checkCOLORFGBG(); ok {
		return hueOf(isDark)
	}

	// OSC query; does not work inside tmux or screen
	if d.queryTerminal {
		if isDark, ok := d.checkTermenvBackground(); ok {
			return hueOf(isDark)
		}
	}

	if isDark, ok := d.checkTerminalHints(); ok {
		return hueOf(isDark)
	}

	// Most terminal users run dark backgrounds
	return data.ThemeHueDark
}

// checkCOLORFGBG reads "foreground;background" ANSI codes.
// Values 0-7 are dark backgrounds, 8-15 are light.
func checkCOLORFGBG() (bool, bool) {
	colorFGBG := os.Getenv("COLORFGBG")
	if colorFGBG == "" {
		return false, false
	}

	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return false, false
	}

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}

	return bg < 8 || bg == 16, true
}

func (d *Detector) checkTermenvBackground() (bool, bool) {
	output := termenv.NewOutput(os.Stdout)

	bgColor := output.BackgroundColor()
	if bgColor == nil {
		return false, false
	}
	if _, ok := bgColor.(termenv.NoColor); ok {
		return false, false
	}

	d.detectedColor = termenv.ConvertToRGB(bgColor).Hex()
	return output.HasDarkBackground(), true
}

func (d *Detector) checkTerminalHints() (bool, bool) {
	// iTerm2 sets this variable
	if profile := strings.ToLower(os.Getenv("ITERM_PROFILE")); profile != "" {
		if strings.Contains(profile, "light") {
			return false, true
		}
		if strings.Contains(profile, "dark") {
			return true, true
		}
	}

	// Ghostty config works even inside tmux
	return d.checkGhosttyConfig()
}

func (d *Detector) checkGhosttyConfig() (bool, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return false, false
	}

	raw, err := os.ReadFile(filepath.Join(home, ".config", "ghostty", "config"))
	if err != nil {
		return false, false
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "background") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != "background" {
			continue
		}
		value = strings.TrimSpace(value)
		if idx := strings.Index(value, " #"); idx > 0 {
			value = strings.TrimSpace(value[:idx])
		}
		c, err := ParseColor(value)
		if err != nil {
			return false, false
		}
		d.detectedColor = Hex(c)
		return !IsLight(c), true
	}

	return false, false
}
