package data

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ClientID identifies a client attached to a session. IDs start at 1.
type ClientID uint16

// TabInfo is the subset of a tab's state published to plugins.
type TabInfo struct {
	Position                uint       `json:"position"`
	Name                    string     `json:"name"`
	Active                  bool       `json:"active"`
	PanesToHide             uint       `json:"panes_to_hide"`
	IsFullscreenActive      bool       `json:"is_fullscreen_active"`
	IsSyncPanesActive       bool       `json:"is_sync_panes_active"`
	AreFloatingPanesVisible bool       `json:"are_floating_panes_visible"`
	OtherFocusedClients     []ClientID `json:"other_focused_clients"`
}

func (t TabInfo) MarshalJSON() ([]byte, error) {
	type plain TabInfo
	if t.OtherFocusedClients == nil {
		t.OtherFocusedClients = []ClientID{}
	}
	return json.Marshal(plain(t))
}

// Equal reports structural equality. A nil client list equals an empty one.
func (t TabInfo) Equal(o TabInfo) bool {
	return t.Position == o.Position &&
		t.Name == o.Name &&
		t.Active == o.Active &&
		t.PanesToHide == o.PanesToHide &&
		t.IsFullscreenActive == o.IsFullscreenActive &&
		t.IsSyncPanesActive == o.IsSyncPanesActive &&
		t.AreFloatingPanesVisible == o.AreFloatingPanesVisible &&
		slices.Equal(t.OtherFocusedClients, o.OtherFocusedClients)
}

// PluginIds identifies a running plugin instance.
type PluginIds struct {
	PluginID uint32 `json:"plugin_id"`
	HostPID  uint32 `json:"host_pid"`
}

// PluginTag names a plugin by the reference it was configured with in
// layout and config files. It is a distinct type so arbitrary strings are
// not mistaken for plugin references.
type PluginTag struct {
	url string
}

// NewPluginTag returns the tag for a configured plugin reference.
func NewPluginTag(url string) PluginTag {
	return PluginTag{url: url}
}

func (t PluginTag) String() string { return t.url }

func (t PluginTag) MarshalText() ([]byte, error) {
	return []byte(t.url), nil
}

func (t *PluginTag) UnmarshalText(b []byte) error {
	t.url = string(b)
	return nil
}

func (t PluginTag) MarshalYAML() (interface{}, error) {
	return t.url, nil
}

func (t *PluginTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: plugin tag must be a string", value.Line)
	}
	t.url = value.Value
	return nil
}

// PluginCapabilities describes what the client terminal can display.
type PluginCapabilities struct {
	ArrowFonts bool `json:"arrow_fonts"`
}

// DefaultPluginCapabilities assumes arrow (powerline) fonts are available.
func DefaultPluginCapabilities() PluginCapabilities {
	return PluginCapabilities{ArrowFonts: true}
}

// CopyDestination is where copied text was sent.
type CopyDestination uint8

const (
	CopyCommand CopyDestination = iota
	CopyPrimary
	CopySystem
)

var copyDestinationNames = [...]string{"Command", "Primary", "System"}

func (d CopyDestination) String() string {
	if int(d) < len(copyDestinationNames) {
		return copyDestinationNames[d]
	}
	return fmt.Sprintf("CopyDestination(%d)", uint8(d))
}

func (d CopyDestination) MarshalText() ([]byte, error) {
	if int(d) >= len(copyDestinationNames) {
		return nil, fmt.Errorf("invalid copy destination %d", uint8(d))
	}
	return []byte(copyDestinationNames[d]), nil
}

func (d *CopyDestination) UnmarshalText(b []byte) error {
	for i, name := range copyDestinationNames {
		if string(b) == name {
			*d = CopyDestination(i)
			return nil
		}
	}
	return unknownVariant("copy destination", string(b))
}
