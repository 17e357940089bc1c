// Package tmux reads window state from a running tmux server and presents
// it as plugin tab snapshots.
package tmux

import (
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/b/muxplug/pkg/data"
)

// TabFormat is the list-windows format ParseTabs expects.
const TabFormat = "#{window_index}\x1f#{window_name}\x1f#{window_active}\x1f#{window_zoomed_flag}\x1f#{pane_synchronized}\x1f#{window_panes}"

const tabFields = 6

// run executes tmux; tests replace it.
var run = func(args ...string) ([]byte, error) {
	return exec.Command("tmux", args...).Output()
}

// ListTabs returns the windows of the current session as tabs.
func ListTabs() ([]data.TabInfo, error) {
	out, err := run("list-windows", "-F", TabFormat)
	if err != nil {
		return nil, fmt.Errorf("tmux list-windows failed: %w", err)
	}
	return ParseTabs(string(out))
}

type window struct {
	index int
	tab   data.TabInfo
}

// ParseTabs builds tabs from list-windows output in TabFormat. Positions
// follow window index order, starting at 0. A zoomed window hides all but
// one of its panes.
func ParseTabs(out string) ([]data.TabInfo, error) {
	var windows []window
	for n, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x1f")
		if len(parts) < tabFields {
			return nil, fmt.Errorf("line %d: want %d fields, got %d", n+1, tabFields, len(parts))
		}
		index, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: window index: %w", n+1, err)
		}
		panes, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("line %d: pane count: %w", n+1, err)
		}
		zoomed := parts[3] == "1"
		tab := data.TabInfo{
			Name:               ansi.Strip(parts[1]),
			Active:             parts[2] == "1",
			IsFullscreenActive: zoomed,
			IsSyncPanesActive:  parts[4] == "1",
		}
		if zoomed && panes > 1 {
			tab.PanesToHide = uint(panes - 1)
		}
		windows = append(windows, window{index: index, tab: tab})
	}

	sort.SliceStable(windows, func(i, j int) bool { return windows[i].index < windows[j].index })
	tabs := make([]data.TabInfo, len(windows))
	for i, w := range windows {
		w.tab.Position = uint(i)
		tabs[i] = w.tab
	}
	return tabs, nil
}

// SessionName returns the name of the attached session.
func SessionName() (string, error) {
	out, err := run("display-message", "-p", "#{session_name}")
	if err != nil {
		return "", fmt.Errorf("tmux display-message failed: %w", err)
	}
	return strings.TrimSpace(ansi.Strip(string(out))), nil
}
