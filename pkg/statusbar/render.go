// Package statusbar renders the mode indicator, keybinding hints and tab
// line a status-bar plugin draws from ModeUpdate and TabUpdate events.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/b/muxplug/pkg/colors"
	"github.com/b/muxplug/pkg/data"
)

const (
	ArrowSeparator = ""
	PlainSeparator = "|"
	ellipsis       = "…"
)

// Output selects the escape syntax of rendered strings.
type Output int

const (
	OutputANSI Output = iota // SGR escapes via lipgloss
	OutputTmux               // #[fg=..,bg=..] for status-left/right
)

// Renderer draws status lines with one style.
type Renderer struct {
	Style      data.Style
	ArrowFonts bool
	Width      int // 0 disables truncation
	Output     Output

	// Lipgloss overrides the default lipgloss renderer for OutputANSI.
	Lipgloss *lipgloss.Renderer
}

// New returns a renderer using the style and capabilities of info.
func New(info data.ModeInfo, width int, out Output) *Renderer {
	return &Renderer{
		Style:      info.Style,
		ArrowFonts: info.Capabilities.ArrowFonts,
		Width:      width,
		Output:     out,
	}
}

type segment struct {
	text   string
	fg, bg data.PaletteColor
	bold   bool
}

func (r *Renderer) palette() data.Palette {
	return r.Style.Colors
}

func (r *Renderer) modeColor(mode data.InputMode) data.PaletteColor {
	p := r.palette()
	switch mode {
	case data.ModeNormal:
		return p.Green
	case data.ModeLocked:
		return p.Red
	}
	return p.Orange
}

func (r *Renderer) modeSegment(mode data.InputMode) segment {
	return segment{
		text: " " + strings.ToUpper(mode.String()) + " ",
		fg:   r.palette().Black,
		bg:   r.modeColor(mode),
		bold: true,
	}
}

// ModeIndicator renders the current mode as a colored block.
func (r *Renderer) ModeIndicator(mode data.InputMode) string {
	return r.paint([]segment{r.modeSegment(mode)})
}

// KeybindHelp lists the bindings of the current mode as "<keys> action"
// entries. Keys sharing the same actions are merged and sorted.
func (r *Renderer) KeybindHelp(info data.ModeInfo) string {
	groups := groupBindings(info.ModeKeybinds())
	entries := make([]string, 0, len(groups))
	for _, g := range groups {
		labels := make([]string, len(g.keys))
		for i, k := range g.keys {
			labels[i] = k.String()
		}
		entries = append(entries, fmt.Sprintf("<%s> %s", strings.Join(labels, "|"), actionText(g.actions)))
	}
	return strings.Join(entries, "  ")
}

func (r *Renderer) tabSegment(tab data.TabInfo) segment {
	p := r.palette()
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(tab.Name)
	if tab.IsFullscreenActive {
		b.WriteString(" (FULLSCREEN)")
	}
	if tab.IsSyncPanesActive {
		b.WriteString(" (SYNC)")
	}
	if tab.PanesToHide > 0 {
		fmt.Fprintf(&b, " +%d", tab.PanesToHide)
	}
	b.WriteString(" ")

	seg := segment{text: b.String(), fg: p.Fg, bg: p.Bg}
	if tab.Active {
		seg = segment{text: b.String(), fg: p.Black, bg: p.Green, bold: true}
	}
	return seg
}

// clientMarkers returns one marker per other focused client that has a
// color, drawn on the tab's background.
func (r *Renderer) clientMarkers(tab data.TabInfo, bg data.PaletteColor) []segment {
	var out []segment
	for _, id := range tab.OtherFocusedClients {
		c, ok := data.ClientIDToColors(id, r.palette())
		if !ok {
			continue
		}
		out = append(out, segment{text: "●", fg: c.Primary, bg: bg})
	}
	if len(out) > 0 {
		out = append(out, segment{text: " ", fg: r.palette().Fg, bg: bg})
	}
	return out
}

func (r *Renderer) tabSegments(tabs []data.TabInfo) []segment {
	var out []segment
	for i, tab := range tabs {
		seg := r.tabSegment(tab)
		if i > 0 {
			out = append(out, r.separator(out[len(out)-1].bg, seg.bg))
		}
		out = append(out, seg)
		out = append(out, r.clientMarkers(tab, seg.bg)...)
	}
	return out
}

// TabLine renders every tab, the active one highlighted.
func (r *Renderer) TabLine(tabs []data.TabInfo) string {
	return r.paint(r.fit(r.tabSegments(tabs)))
}

// Line renders the session name when set, the mode indicator, the tabs
// and the keybinding hints, truncated to Width.
func (r *Renderer) Line(info data.ModeInfo, tabs []data.TabInfo) string {
	p := r.palette()
	var segs []segment
	mode := r.modeSegment(info.Mode)
	if name := info.Session(); name != "" {
		segs = append(segs, segment{text: " " + name + " ", fg: p.Fg, bg: p.Bg, bold: true})
		segs = append(segs, r.separator(p.Bg, mode.bg))
	}
	segs = append(segs, mode)
	if tabSegs := r.tabSegments(tabs); len(tabSegs) > 0 {
		segs = append(segs, r.separator(mode.bg, tabSegs[0].bg))
		segs = append(segs, tabSegs...)
	}
	last := segs[len(segs)-1].bg
	segs = append(segs, r.separator(last, p.Bg))
	if help := r.KeybindHelp(info); help != "" {
		segs = append(segs, segment{text: " " + help, fg: p.Fg, bg: p.Bg})
	}
	return r.paint(r.fit(segs))
}

func (r *Renderer) separator(left, right data.PaletteColor) segment {
	if r.ArrowFonts {
		return segment{text: ArrowSeparator, fg: left, bg: right}
	}
	return segment{text: PlainSeparator, fg: r.palette().Fg, bg: r.palette().Bg}
}

// fit truncates segments to Width display cells. The cut segment ends
// with an ellipsis.
func (r *Renderer) fit(segs []segment) []segment {
	if r.Width <= 0 || totalWidth(segs) <= r.Width {
		return segs
	}
	remaining := r.Width
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		w := runewidth.StringWidth(s.text)
		if w < remaining {
			out = append(out, s)
			remaining -= w
			continue
		}
		s.text = runewidth.Truncate(s.text, remaining, ellipsis)
		if s.text != "" {
			out = append(out, s)
		}
		break
	}
	return out
}

func totalWidth(segs []segment) int {
	n := 0
	for _, s := range segs {
		n += runewidth.StringWidth(s.text)
	}
	return n
}

func (r *Renderer) paint(segs []segment) string {
	var b strings.Builder
	switch r.Output {
	case OutputTmux:
		for _, s := range segs {
			weight := "nobold"
			if s.bold {
				weight = "bold"
			}
			fmt.Fprintf(&b, "#[fg=%s,bg=%s,%s]%s", colors.TmuxColor(s.fg), colors.TmuxColor(s.bg), weight, strings.ReplaceAll(s.text, "#", "##"))
		}
		if len(segs) > 0 {
			b.WriteString("#[default]")
		}
	default:
		lr := r.Lipgloss
		if lr == nil {
			lr = lipgloss.DefaultRenderer()
		}
		for _, s := range segs {
			style := lr.NewStyle().
				Foreground(colors.ToLipgloss(s.fg)).
				Background(colors.ToLipgloss(s.bg)).
				Bold(s.bold)
			b.WriteString(style.Render(s.text))
		}
	}
	return b.String()
}
