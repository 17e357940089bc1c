// Package paths resolves where muxplug keeps its config and state files.
//
// Layout (XDG-style):
//
//	Config:  $XDG_CONFIG_HOME/muxplug/      (override: MUXPLUG_CONFIG_DIR)
//	State:   $XDG_STATE_HOME/muxplug/       (override: MUXPLUG_STATE_DIR)
//
// Without the XDG variables the defaults are ~/.config and ~/.local/state.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// configNames are tried in order by FindConfig.
var configNames = []string{"config.yaml", "config.yml", "config.toml"}

var (
	configDirOnce   sync.Once
	configDirCached string

	stateDirOnce   sync.Once
	stateDirCached string
)

// resolveDir applies override > $xdgVar/muxplug > ~/fallback/muxplug.
func resolveDir(override, xdgVar string, fallback ...string) string {
	if env := os.Getenv(override); env != "" {
		return env
	}
	if xdg := os.Getenv(xdgVar); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "muxplug")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, "muxplug")...)
}

// ConfigDir resolves the config directory.
func ConfigDir() string {
	configDirOnce.Do(func() {
		configDirCached = resolveDir("MUXPLUG_CONFIG_DIR", "XDG_CONFIG_HOME", ".config")
	})
	return configDirCached
}

// StateDir resolves the state directory.
func StateDir() string {
	stateDirOnce.Do(func() {
		stateDirCached = resolveDir("MUXPLUG_STATE_DIR", "XDG_STATE_HOME", ".local", "state")
	})
	return stateDirCached
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configNames[0])
}

// FindConfig returns the first existing config file in ConfigDir, trying
// YAML before TOML. When none exists it returns ConfigPath().
func FindConfig() string {
	for _, name := range configNames {
		p := filepath.Join(ConfigDir(), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ConfigPath()
}

// StatePath returns the full path to a state file (e.g. "perf.log").
func StatePath(filename string) string {
	return filepath.Join(StateDir(), filename)
}

// EnsureConfigDir creates the config directory if it doesn't exist and returns its path.
func EnsureConfigDir() (string, error) {
	return ensure(ConfigDir(), "config")
}

// EnsureStateDir creates the state directory if it doesn't exist and returns its path.
func EnsureStateDir() (string, error) {
	return ensure(StateDir(), "state")
}

func ensure(dir, what string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s dir %s: %w", what, dir, err)
	}
	return dir, nil
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
	stateDirOnce = sync.Once{}
	stateDirCached = ""
}
