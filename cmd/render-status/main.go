// render-status prints a tmux status line: the mode indicator, the window
// tabs and the keybinding hints of the configured mode.
//
// Usage in tmux.conf:
//
//	set -g status-left '#(render-status -keybinds ~/.config/muxplug/keybinds.json)'
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/b/muxplug/pkg/config"
	"github.com/b/muxplug/pkg/data"
	"github.com/b/muxplug/pkg/perf"
	"github.com/b/muxplug/pkg/statusbar"
	"github.com/b/muxplug/pkg/tmux"
)

var (
	configPath   = flag.String("config", "", "config file (default: muxplug config dir)")
	keybindsPath = flag.String("keybinds", "", "JSON file with the keybinding table")
	modeFlag     = data.ModeNormal
	widthFlag    = flag.Int("width", 0, "line width (default: tmux window width)")
	ansiOutput   = flag.Bool("ansi", false, "emit terminal escapes instead of tmux style codes (default when stdout is a terminal)")
	debugMode    = flag.Bool("debug", false, "Enable debug logging")
)

func init() {
	flag.Var(&modeFlag, "mode", "input mode to show, overriding default_mode")
}

func getTerminalWidth() int {
	cmd := exec.Command("tmux", "display-message", "-p", "#{window_width}")
	out, err := cmd.Output()
	if err != nil {
		return 80
	}
	width, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 80
	}
	return width
}

func modeFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mode" {
			set = true
		}
	})
	return set
}

func main() {
	flag.Parse()
	if *debugMode {
		_ = perf.Enable()
	}
	timer := perf.Start("render-status")
	defer timer.Stop()

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		perf.Error("load config", err, "path", path)
		fmt.Print("muxplug: config error")
		return
	}

	kb, err := config.LoadKeybinds(*keybindsPath)
	if err != nil {
		perf.Error("load keybinds", err, "path", *keybindsPath)
		fmt.Print("muxplug: keybinds error")
		return
	}

	info, err := cfg.ModeInfo(kb)
	if err != nil {
		perf.Error("build mode info", err)
		fmt.Print("muxplug: config error")
		return
	}
	if modeFlagSet() {
		info.Mode = modeFlag
	}
	if info.SessionName == nil {
		if name, err := tmux.SessionName(); err == nil && name != "" {
			info.SessionName = &name
		}
	}

	tabs, err := tmux.ListTabs()
	if err != nil {
		fmt.Print("muxplug: not in tmux")
		return
	}

	width := *widthFlag
	if width <= 0 {
		width = getTerminalWidth()
	}
	out := statusbar.OutputTmux
	if *ansiOutput || isatty.IsTerminal(os.Stdout.Fd()) {
		out = statusbar.OutputANSI
	}

	r := statusbar.New(info, width, out)
	fmt.Print(r.Line(info, tabs))
	perf.Log("rendered", "tabs", len(tabs), "mode", info.Mode, "width", width)
}
