package statusbar

import (
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/b/muxplug/pkg/colors"
	"github.com/b/muxplug/pkg/data"
)

func init() {
	runewidth.DefaultCondition.EastAsianWidth = false
}

var tmuxCodes = regexp.MustCompile(`#\[[^\]]*\]`)

// plain strips tmux style codes and unescapes "##".
func plain(s string) string {
	return strings.ReplaceAll(tmuxCodes.ReplaceAllString(s, ""), "##", "#")
}

func tmuxRenderer(arrows bool) *Renderer {
	return &Renderer{
		Style:      data.Style{Colors: colors.DefaultPalette},
		ArrowFonts: arrows,
		Output:     OutputTmux,
	}
}

func sampleInfo() data.ModeInfo {
	info := data.DefaultModeInfo()
	info.Style.Colors = colors.DefaultPalette
	info.Keybinds = data.KeybindsVec{
		{Mode: data.ModeLocked, Bindings: []data.KeyBinding{
			{Key: data.CtrlKey('g'), Actions: []data.Action{"SwitchToMode(Normal)"}},
		}},
		{Mode: data.ModeNormal, Bindings: []data.KeyBinding{
			{Key: data.CtrlKey('t'), Actions: []data.Action{"SwitchToMode(Tab)"}},
			{Key: data.CtrlKey('p'), Actions: []data.Action{"SwitchToMode(Pane)"}},
			{Key: data.FKey(2), Actions: []data.Action{"SwitchToMode(Tab)"}},
			{Key: data.AltChar('n'), Actions: []data.Action{"NewPane", "SwitchToMode(Normal)"}},
			{Key: data.CtrlKey('t'), Actions: []data.Action{"SwitchToMode(Tab)"}},
			{Key: data.FKey(30), Actions: []data.Action{"Detach"}},
		}},
	}
	return info
}

func TestModeIndicator(t *testing.T) {
	r := tmuxRenderer(true)
	tests := []struct {
		mode data.InputMode
		want string
	}{
		{data.ModeLocked, "#[fg=colour16,bg=colour124,bold] LOCKED #[default]"},
		{data.ModeNormal, "#[fg=colour16,bg=colour154,bold] NORMAL #[default]"},
		{data.ModeEnterSearch, "#[fg=colour16,bg=colour166,bold] ENTERSEARCH #[default]"},
	}

	for _, tt := range tests {
		if got := r.ModeIndicator(tt.mode); got != tt.want {
			t.Errorf("ModeIndicator(%v) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestKeybindHelp(t *testing.T) {
	r := tmuxRenderer(true)
	info := sampleInfo()

	want := "<F2|Ctrl+t> SwitchToMode(Tab)  <Ctrl+p> SwitchToMode(Pane)  <Alt+n> NewPane, SwitchToMode(Normal)  <F30> Detach"
	if got := r.KeybindHelp(info); got != want {
		t.Errorf("KeybindHelp() =\n%q\nwant\n%q", got, want)
	}

	info.Mode = data.ModeLocked
	if got := r.KeybindHelp(info); got != "<Ctrl+g> SwitchToMode(Normal)" {
		t.Errorf("KeybindHelp(locked) = %q", got)
	}

	info.Mode = data.ModeScroll
	if got := r.KeybindHelp(info); got != "" {
		t.Errorf("KeybindHelp(mode without bindings) = %q, want empty", got)
	}
}

func sampleTabs() []data.TabInfo {
	return []data.TabInfo{
		{Position: 0, Name: "a", Active: true},
		{Position: 1, Name: "b#1", IsSyncPanesActive: true, PanesToHide: 2, OtherFocusedClients: []data.ClientID{1, 11}},
	}
}

func TestTabLinePlainSeparator(t *testing.T) {
	got := tmuxRenderer(false).TabLine(sampleTabs())
	want := "#[fg=colour16,bg=colour154,bold] a " +
		"#[fg=colour245,bg=colour238,nobold]|" +
		"#[fg=colour245,bg=colour238,nobold] b##1 (SYNC) +2 " +
		"#[fg=colour201,bg=colour238,nobold]●" +
		"#[fg=colour245,bg=colour238,nobold] " +
		"#[default]"
	if got != want {
		t.Errorf("TabLine() =\n%q\nwant\n%q", got, want)
	}
}

func TestTabLineArrowSeparator(t *testing.T) {
	got := tmuxRenderer(true).TabLine(sampleTabs())
	if !strings.Contains(got, "#[fg=colour154,bg=colour238,nobold]"+ArrowSeparator) {
		t.Errorf("TabLine() missing powerline separator: %q", got)
	}
	if strings.Contains(plain(got), PlainSeparator) {
		t.Errorf("TabLine() used the plain separator with arrow fonts: %q", got)
	}
}

func TestTabLineFullscreen(t *testing.T) {
	got := plain(tmuxRenderer(false).TabLine([]data.TabInfo{{Name: "logs", IsFullscreenActive: true}}))
	if got != " logs (FULLSCREEN) " {
		t.Errorf("TabLine() = %q", got)
	}
	if tmuxRenderer(false).TabLine(nil) != "" {
		t.Error("TabLine(nil) should be empty")
	}
}

func TestLine(t *testing.T) {
	info := sampleInfo()
	r := New(info, 0, OutputTmux)
	if !r.ArrowFonts {
		t.Fatal("New() dropped arrow fonts capability")
	}
	got := plain(r.Line(info, sampleTabs()))
	for _, want := range []string{" NORMAL ", " a ", " b#1 (SYNC) +2 ", "<Ctrl+p> SwitchToMode(Pane)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Line() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(got, " NORMAL "+ArrowSeparator+" a ") {
		t.Errorf("Line() = %q, want mode then tabs", got)
	}
}

func TestLineShowsSession(t *testing.T) {
	info := sampleInfo()
	info.Capabilities.ArrowFonts = false
	name := "work#2"
	info.SessionName = &name

	got := plain(New(info, 0, OutputTmux).Line(info, sampleTabs()))
	if !strings.HasPrefix(got, " work#2 | NORMAL | a ") {
		t.Errorf("Line() = %q, want session, mode, then tabs", got)
	}

	empty := ""
	info.SessionName = &empty
	if got := plain(New(info, 0, OutputTmux).Line(info, nil)); !strings.HasPrefix(got, " NORMAL ") {
		t.Errorf("Line() with empty session name = %q", got)
	}
}

func TestLineTruncates(t *testing.T) {
	info := sampleInfo()
	info.Capabilities.ArrowFonts = false
	r := New(info, 10, OutputTmux)

	got := plain(r.Line(info, []data.TabInfo{{Name: "editor", Active: true}}))
	if w := runewidth.StringWidth(got); w != 10 {
		t.Errorf("Line() width = %d, want 10 (%q)", w, got)
	}
	if !strings.HasPrefix(got, " NORMAL |") || !strings.HasSuffix(got, ellipsis) {
		t.Errorf("Line() = %q", got)
	}

	r.Width = 1000
	if got := plain(r.Line(info, nil)); strings.HasSuffix(got, ellipsis) {
		t.Errorf("Line() truncated without need: %q", got)
	}
}

func TestANSIOutput(t *testing.T) {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.TrueColor)
	r := &Renderer{Style: data.Style{Colors: colors.DefaultPalette}, Output: OutputANSI, Lipgloss: lr}

	got := r.ModeIndicator(data.ModeLocked)
	if !strings.Contains(got, "LOCKED") || !strings.Contains(got, "\x1b[") {
		t.Errorf("ModeIndicator() = %q, want styled LOCKED", got)
	}

	lr.SetColorProfile(termenv.Ascii)
	got = r.ModeIndicator(data.ModeLocked)
	if got != " LOCKED " {
		t.Errorf("ModeIndicator() with Ascii profile = %q", got)
	}
}

func TestHelpBindings(t *testing.T) {
	bindings := HelpBindings(sampleInfo())
	if len(bindings) != 3 {
		t.Fatalf("HelpBindings() returned %d bindings, want 3 (F30 has no terminal form)", len(bindings))
	}

	first := bindings[0]
	if got := first.Keys(); len(got) != 2 || got[0] != "f2" || got[1] != "ctrl+t" {
		t.Errorf("Keys() = %q", got)
	}
	if h := first.Help(); h.Key != "F2/Ctrl+t" || h.Desc != "SwitchToMode(Tab)" {
		t.Errorf("Help() = %+v", h)
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlT}, first) {
		t.Error("ctrl+t does not match the Tab binding")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyCtrlP}, first) {
		t.Error("ctrl+p matches the Tab binding")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}, Alt: true}, bindings[2]) {
		t.Error("alt+n does not match the NewPane binding")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	km := KeyMap(make([]key.Binding, 9))
	cols := km.FullHelp()
	if len(cols) != 3 || len(cols[0]) != 4 || len(cols[2]) != 1 {
		t.Errorf("FullHelp() column sizes wrong: %d columns", len(cols))
	}
	if len(km.ShortHelp()) != 9 {
		t.Errorf("ShortHelp() = %d bindings", len(km.ShortHelp()))
	}
}
