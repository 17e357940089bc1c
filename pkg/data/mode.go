package data

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// InputMode changes the way keystrokes are interpreted.
type InputMode uint8

const (
	// ModeNormal writes input to the terminal, except for the shortcuts
	// leading to other modes.
	ModeNormal InputMode = iota
	// ModeLocked writes all input to the terminal; every shortcut is
	// disabled except the one leading back to normal mode.
	ModeLocked
	// ModeResize resizes the existing panes.
	ModeResize
	// ModePane creates, closes and moves between panes.
	ModePane
	// ModeTab creates, closes and moves between tabs.
	ModeTab
	// ModeScroll scrolls within a pane.
	ModeScroll
	// ModeEnterSearch types the needle for a scrollback search.
	ModeEnterSearch
	// ModeSearch searches a term in a pane (superset of scroll).
	ModeSearch
	// ModeRenameTab assigns a new name to a tab.
	ModeRenameTab
	// ModeRenamePane assigns a new name to a pane.
	ModeRenamePane
	// ModeSession detaches sessions.
	ModeSession
	// ModeMove moves panes within a tab.
	ModeMove
	// ModePrompt interacts with active prompts.
	ModePrompt
	// ModeTmux offers basic tmux keybindings.
	ModeTmux
)

var inputModes = [...]struct {
	name  string
	alias string
}{
	{"Normal", "normal"},
	{"Locked", "locked"},
	{"Resize", "resize"},
	{"Pane", "pane"},
	{"Tab", "tab"},
	{"Scroll", "scroll"},
	{"EnterSearch", "entersearch"},
	{"Search", "search"},
	{"RenameTab", "renametab"},
	{"RenamePane", "renamepane"},
	{"Session", "session"},
	{"Move", "move"},
	{"Prompt", "prompt"},
	{"Tmux", "tmux"},
}

// AllInputModes returns every mode in declaration order.
func AllInputModes() []InputMode {
	modes := make([]InputMode, len(inputModes))
	for i := range inputModes {
		modes[i] = InputMode(i)
	}
	return modes
}

// ParseModeError reports a string that is not a mode alias.
type ParseModeError struct {
	Input string
}

func (e *ParseModeError) Error() string {
	return fmt.Sprintf("%q is not a recognized mode", e.Input)
}

// ParseInputMode parses a canonical lowercase alias such as "normal" or
// "entersearch". Matching is case-sensitive.
func ParseInputMode(s string) (InputMode, error) {
	for i, m := range inputModes {
		if s == m.alias {
			return InputMode(i), nil
		}
	}
	return ModeNormal, &ParseModeError{Input: s}
}

// String returns the variant name, e.g. "EnterSearch".
func (m InputMode) String() string {
	if int(m) < len(inputModes) {
		return inputModes[m].name
	}
	return fmt.Sprintf("InputMode(%d)", uint8(m))
}

// Alias returns the lowercase name used in configuration files.
func (m InputMode) Alias() string {
	if int(m) < len(inputModes) {
		return inputModes[m].alias
	}
	return ""
}

// Set implements flag.Value so a mode can be taken from the command line.
func (m *InputMode) Set(s string) error {
	mode, err := ParseInputMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m InputMode) MarshalText() ([]byte, error) {
	if int(m) >= len(inputModes) {
		return nil, fmt.Errorf("invalid input mode %d", uint8(m))
	}
	return []byte(inputModes[m].name), nil
}

// UnmarshalText accepts the variant name and, for hand-written files, the
// lowercase alias.
func (m *InputMode) UnmarshalText(b []byte) error {
	s := string(b)
	for i, mode := range inputModes {
		if s == mode.name || s == mode.alias {
			*m = InputMode(i)
			return nil
		}
	}
	return &ParseModeError{Input: s}
}

func (m InputMode) MarshalYAML() (interface{}, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (m *InputMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: input mode must be a string", value.Line)
	}
	if err := m.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// Action is an opaque keybinding action, identified by its canonical text
// such as "SwitchToMode(Normal)". This package never interprets it.
type Action string

// KeyBinding is one key and the actions it triggers, in order.
// On the wire it is the pair [key, [action, ...]].
type KeyBinding struct {
	Key     Key
	Actions []Action
}

func (b KeyBinding) MarshalJSON() ([]byte, error) {
	actions := b.Actions
	if actions == nil {
		actions = []Action{}
	}
	return json.Marshal([]interface{}{b.Key, actions})
}

func (b *KeyBinding) UnmarshalJSON(data []byte) error {
	var kb KeyBinding
	if err := unmarshalPair(data, &kb.Key, &kb.Actions); err != nil {
		return fmt.Errorf("key binding: %w", err)
	}
	*b = kb
	return nil
}

func (b KeyBinding) equal(o KeyBinding) bool {
	return b.Key == o.Key && slices.Equal(b.Actions, o.Actions)
}

// ModeKeybinds is the binding list of one mode.
// On the wire it is the pair [mode, [[key, actions], ...]].
type ModeKeybinds struct {
	Mode     InputMode
	Bindings []KeyBinding
}

func (m ModeKeybinds) MarshalJSON() ([]byte, error) {
	bindings := m.Bindings
	if bindings == nil {
		bindings = []KeyBinding{}
	}
	return json.Marshal([]interface{}{m.Mode, bindings})
}

func (m *ModeKeybinds) UnmarshalJSON(data []byte) error {
	var mk ModeKeybinds
	if err := unmarshalPair(data, &mk.Mode, &mk.Bindings); err != nil {
		return fmt.Errorf("mode keybinds: %w", err)
	}
	*m = mk
	return nil
}

// KeybindsVec maps modes to their bindings as an ordered list rather than a
// map, so iteration order is stable for help text. Duplicate modes are
// allowed; lookups use the first one.
type KeybindsVec []ModeKeybinds

func (v KeybindsVec) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]ModeKeybinds(v))
}

// Equal reports structural equality. A nil list equals an empty one.
func (v KeybindsVec) Equal(o KeybindsVec) bool {
	return slices.EqualFunc(v, o, func(a, b ModeKeybinds) bool {
		return a.Mode == b.Mode && slices.EqualFunc(a.Bindings, b.Bindings, KeyBinding.equal)
	})
}

// ModeInfo is the current input mode and everything a status bar needs to
// describe it. The host sends a fresh one whenever the mode or the bindings
// change.
type ModeInfo struct {
	Mode         InputMode          `json:"mode"`
	Keybinds     KeybindsVec        `json:"keybinds"`
	Style        Style              `json:"style"`
	Capabilities PluginCapabilities `json:"capabilities"`
	SessionName  *string            `json:"session_name"`
}

// DefaultModeInfo returns normal mode with no bindings, the default style
// and default capabilities. Prefer it over ModeInfo{}, whose Capabilities
// has arrow fonts disabled.
func DefaultModeInfo() ModeInfo {
	return ModeInfo{Capabilities: DefaultPluginCapabilities()}
}

// ModeKeybinds returns the bindings of the current mode.
func (mi ModeInfo) ModeKeybinds() []KeyBinding {
	return mi.KeybindsForMode(mi.Mode)
}

// KeybindsForMode returns a copy of the bindings of the first entry for
// mode, or an empty slice when the mode has none.
func (mi ModeInfo) KeybindsForMode(mode InputMode) []KeyBinding {
	for _, entry := range mi.Keybinds {
		if entry.Mode == mode {
			out := make([]KeyBinding, len(entry.Bindings))
			for i, b := range entry.Bindings {
				out[i] = KeyBinding{Key: b.Key, Actions: slices.Clone(b.Actions)}
			}
			return out
		}
	}
	return []KeyBinding{}
}

// Session returns the session name, or "" when none was set.
func (mi ModeInfo) Session() string {
	if mi.SessionName == nil {
		return ""
	}
	return *mi.SessionName
}

// Equal reports structural equality.
func (mi ModeInfo) Equal(o ModeInfo) bool {
	if mi.Mode != o.Mode || mi.Style != o.Style || mi.Capabilities != o.Capabilities {
		return false
	}
	if (mi.SessionName == nil) != (o.SessionName == nil) {
		return false
	}
	if mi.SessionName != nil && *mi.SessionName != *o.SessionName {
		return false
	}
	return mi.Keybinds.Equal(o.Keybinds)
}

// UnmarshalJSON fills fields missing from the payload with defaults; in
// particular an absent "capabilities" means arrow fonts are available.
func (mi *ModeInfo) UnmarshalJSON(b []byte) error {
	type plain ModeInfo
	v := plain(DefaultModeInfo())
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("mode info: %w", err)
	}
	*mi = ModeInfo(v)
	return nil
}
