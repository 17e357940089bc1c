package data

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPluginTag(t *testing.T) {
	tag := NewPluginTag("file:/plugins/status-bar.wasm")
	if tag.String() != "file:/plugins/status-bar.wasm" {
		t.Errorf("String() = %q", tag.String())
	}
	if NewPluginTag("a") != NewPluginTag("a") || NewPluginTag("a") == NewPluginTag("b") {
		t.Error("tags should compare by value")
	}

	b, err := json.Marshal(tag)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"file:/plugins/status-bar.wasm"` {
		t.Errorf("Marshal = %s, want a bare string", b)
	}
	var got PluginTag
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != tag {
		t.Errorf("round trip = %v, want %v", got, tag)
	}

	var layout struct {
		Plugins []PluginTag `yaml:"plugins"`
	}
	if err := yaml.Unmarshal([]byte("plugins: [tab-bar, strider]\n"), &layout); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(layout.Plugins) != 2 || layout.Plugins[1].String() != "strider" {
		t.Errorf("yaml plugins = %v", layout.Plugins)
	}
	if err := yaml.Unmarshal([]byte("plugins: [{url: x}]\n"), &layout); err == nil {
		t.Error("yaml accepted a mapping as a plugin tag")
	}
}

func TestPluginCapabilitiesDefault(t *testing.T) {
	if !DefaultPluginCapabilities().ArrowFonts {
		t.Error("default capabilities should enable arrow fonts")
	}
	if !DefaultModeInfo().Capabilities.ArrowFonts {
		t.Error("DefaultModeInfo should use default capabilities")
	}
}

func TestPluginIdsJSON(t *testing.T) {
	ids := PluginIds{PluginID: 7, HostPID: 4242}
	b, err := json.Marshal(ids)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"plugin_id":7,"host_pid":4242}` {
		t.Errorf("Marshal = %s", b)
	}
	var got PluginIds
	if err := json.Unmarshal(b, &got); err != nil || got != ids {
		t.Errorf("round trip = %v, %v", got, err)
	}
}

func TestTabInfoJSON(t *testing.T) {
	tab := TabInfo{
		Position:                3,
		Name:                    "build",
		Active:                  true,
		PanesToHide:             1,
		IsFullscreenActive:      true,
		AreFloatingPanesVisible: true,
		OtherFocusedClients:     []ClientID{2, 9},
	}
	b, err := json.Marshal(tab)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got TabInfo
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal(%s): %v", b, err)
	}
	if !got.Equal(tab) {
		t.Errorf("round trip = %+v, want %+v", got, tab)
	}

	empty, err := json.Marshal(TabInfo{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"position":0,"name":"","active":false,"panes_to_hide":0,"is_fullscreen_active":false,` +
		`"is_sync_panes_active":false,"are_floating_panes_visible":false,"other_focused_clients":[]}`
	if string(empty) != want {
		t.Errorf("Marshal(TabInfo{}) = %s, want %s", empty, want)
	}
}

func TestCopyDestinationText(t *testing.T) {
	for _, d := range []CopyDestination{CopyCommand, CopyPrimary, CopySystem} {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", d, err)
		}
		var got CopyDestination
		if err := got.UnmarshalText(b); err != nil || got != d {
			t.Errorf("round trip of %v = %v, %v", d, got, err)
		}
	}
	var d CopyDestination
	if err := d.UnmarshalText([]byte("system")); err == nil {
		t.Error("lowercase destination accepted")
	}
}

func TestTabInfoRejectsNegativeCounts(t *testing.T) {
	for _, bad := range []string{`{"position":-1}`, `{"panes_to_hide":-5}`} {
		var tab TabInfo
		if err := json.Unmarshal([]byte(bad), &tab); err == nil {
			t.Errorf("Unmarshal(%s) succeeded with %+v", bad, tab)
		}
	}
}
