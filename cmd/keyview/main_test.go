package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/b/muxplug/pkg/config"
	"github.com/b/muxplug/pkg/data"
)

func TestSwitchTarget(t *testing.T) {
	tests := []struct {
		action data.Action
		want   data.InputMode
		ok     bool
	}{
		{"SwitchToMode(Pane)", data.ModePane, true},
		{"SwitchToMode(locked)", data.ModeLocked, true},
		{"SwitchToMode(Pane", data.ModeNormal, false},
		{"SwitchToMode(Bogus)", data.ModeNormal, false},
		{"NewPane", data.ModeNormal, false},
	}
	for _, tt := range tests {
		got, ok := switchTarget(tt.action)
		if got != tt.want || ok != tt.ok {
			t.Errorf("switchTarget(%q) = %v, %v, want %v, %v", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func testModel(t *testing.T) model {
	t.Helper()
	cfg := config.Default()
	cfg.Theme = "nord"
	kb := data.KeybindsVec{
		{Mode: data.ModeNormal, Bindings: []data.KeyBinding{
			{Key: data.CtrlKey('p'), Actions: []data.Action{"SwitchToMode(Pane)"}},
		}},
		{Mode: data.ModePane, Bindings: []data.KeyBinding{
			{Key: data.NewKey(data.KeyEsc), Actions: []data.Action{"SwitchToMode(Normal)"}},
			{Key: data.CharKey('q'), Actions: []data.Action{"Quit"}},
		}},
	}
	m, err := newModel(cfg, kb, nil, 80)
	if err != nil {
		t.Fatalf("newModel() error: %v", err)
	}
	return m
}

func TestUpdateSwitchesMode(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = next.(model)
	if m.info.Mode != data.ModePane {
		t.Fatalf("mode after ctrl+p = %v, want Pane", m.info.Mode)
	}
	if m.last != `{"Key":{"Ctrl":"p"}}` {
		t.Errorf("last = %s", m.last)
	}
	if len(m.bindings) != 2 {
		t.Errorf("pane mode bindings = %d, want 2", len(m.bindings))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.info.Mode != data.ModeNormal {
		t.Errorf("mode after esc = %v, want Normal", m.info.Mode)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := testModel(t)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if _, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q bound to Quit should quit")
	}
}

func TestUpdateMouseAndResize(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = next.(model)
	if m.last != `{"Mouse":{"ScrollUp":1}}` {
		t.Errorf("last = %s", m.last)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(model)
	if m.width != 40 {
		t.Errorf("width = %d, want 40", m.width)
	}
}

func TestUpdateReloadKeepsMode(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})

	cfg := config.Default()
	cfg.Theme = "dracula"
	next, _ = next.Update(reloadMsg{cfg: cfg})
	m = next.(model)
	if m.info.Mode != data.ModePane {
		t.Errorf("mode after reload = %v, want Pane", m.info.Mode)
	}
	if m.status != "config reloaded" {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), "PANE") {
		t.Errorf("View() missing mode indicator:\n%s", m.View())
	}
}
