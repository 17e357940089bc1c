package statusbar

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/b/muxplug/pkg/data"
	"github.com/b/muxplug/pkg/teakeys"
)

type bindingGroup struct {
	keys    []data.Key
	actions []data.Action
}

// groupBindings merges bindings with identical action lists, keeping the
// order in which each list first appears. Keys within a group are sorted.
func groupBindings(bindings []data.KeyBinding) []bindingGroup {
	var groups []bindingGroup
	for _, b := range bindings {
		idx := slices.IndexFunc(groups, func(g bindingGroup) bool {
			return slices.Equal(g.actions, b.Actions)
		})
		if idx < 0 {
			groups = append(groups, bindingGroup{actions: b.Actions})
			idx = len(groups) - 1
		}
		if !slices.Contains(groups[idx].keys, b.Key) {
			groups[idx].keys = append(groups[idx].keys, b.Key)
		}
	}
	for i := range groups {
		slices.SortFunc(groups[i].keys, data.Key.Compare)
	}
	return groups
}

func actionText(actions []data.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

// HelpBindings turns the current mode's bindings into bubbles key bindings,
// one per action list. Keys a terminal cannot produce are left out.
func HelpBindings(info data.ModeInfo) []key.Binding {
	groups := groupBindings(info.ModeKeybinds())
	out := make([]key.Binding, 0, len(groups))
	for _, g := range groups {
		var keys, labels []string
		for _, k := range g.keys {
			if s := teakeys.String(k); s != "" {
				keys = append(keys, s)
				labels = append(labels, k.String())
			}
		}
		if len(keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), actionText(g.actions)),
		))
	}
	return out
}

// KeyMap adapts bindings to bubbles/help.
type KeyMap []key.Binding

func (km KeyMap) ShortHelp() []key.Binding {
	return km
}

// FullHelp splits the bindings into columns of four.
func (km KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for chunk := range slices.Chunk([]key.Binding(km), 4) {
		cols = append(cols, chunk)
	}
	return cols
}
