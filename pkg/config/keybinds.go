package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/b/muxplug/pkg/data"
)

// LoadKeybinds reads a keybinding table in its wire form. An empty path
// means no bindings.
func LoadKeybinds(path string) (data.KeybindsVec, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keybinds: %w", err)
	}
	var kb data.KeybindsVec
	if err := json.Unmarshal(raw, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse keybinds: %w", err)
	}
	return kb, nil
}
