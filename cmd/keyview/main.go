// keyview is an interactive viewer for a keybinding table. It renders the
// status line a plugin would draw, shows the hints of the current mode and
// prints every key or mouse event in its wire form. Bindings whose action
// is SwitchToMode(<mode>) change the mode, so the table can be walked.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/b/muxplug/pkg/colors"
	"github.com/b/muxplug/pkg/config"
	"github.com/b/muxplug/pkg/data"
	"github.com/b/muxplug/pkg/perf"
	"github.com/b/muxplug/pkg/statusbar"
	"github.com/b/muxplug/pkg/teakeys"
	"github.com/b/muxplug/pkg/tmux"
)

var (
	configPath   = flag.String("config", "", "config file (default: muxplug config dir)")
	keybindsPath = flag.String("keybinds", "", "JSON file with the keybinding table")
	printOnce    = flag.Bool("print", false, "print one frame and exit")
	debugMode    = flag.Bool("debug", false, "Enable debug logging")
)

type reloadMsg struct {
	cfg *config.Config
	err error
}

type model struct {
	cfg      *config.Config
	keybinds data.KeybindsVec
	info     data.ModeInfo
	tabs     []data.TabInfo
	bindings []key.Binding
	help     help.Model
	width    int
	last     string
	status   string
}

func newModel(cfg *config.Config, kb data.KeybindsVec, tabs []data.TabInfo, width int) (model, error) {
	info, err := cfg.ModeInfo(kb)
	if err != nil {
		return model{}, err
	}
	m := model{
		cfg:      cfg,
		keybinds: kb,
		info:     info,
		tabs:     tabs,
		help:     help.New(),
		width:    width,
	}
	m.setMode(info.Mode)
	return m, nil
}

func (m *model) setMode(mode data.InputMode) {
	m.info.Mode = mode
	m.bindings = statusbar.HelpBindings(m.info)
	m.help.Width = m.width

	p := m.info.Style.Colors
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(colors.ToLipgloss(p.Green)).Bold(true)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colors.ToLipgloss(p.Fg))
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
}

// switchTarget extracts the mode from a "SwitchToMode(<mode>)" action.
func switchTarget(a data.Action) (data.InputMode, bool) {
	rest, ok := strings.CutPrefix(string(a), "SwitchToMode(")
	if !ok {
		return data.ModeNormal, false
	}
	name, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return data.ModeNormal, false
	}
	var mode data.InputMode
	if err := mode.UnmarshalText([]byte(name)); err != nil {
		return data.ModeNormal, false
	}
	return mode, true
}

// actionsFor returns the actions bound to k in the current mode.
func (m model) actionsFor(k data.Key) []data.Action {
	for _, b := range m.info.ModeKeybinds() {
		if b.Key == k {
			return b.Actions
		}
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) describe(ev data.Event) string {
	raw, err := data.MarshalEvent(ev)
	if err != nil {
		return err.Error()
	}
	return string(raw)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		k, ok := teakeys.FromKeyMsg(msg)
		if !ok {
			m.last = fmt.Sprintf("unmapped key %q", msg.String())
			return m, nil
		}
		m.last = m.describe(data.KeyEvent{Key: k})
		for _, a := range m.actionsFor(k) {
			if a == "Quit" {
				return m, tea.Quit
			}
			if mode, ok := switchTarget(a); ok {
				m.setMode(mode)
			}
		}

	case tea.MouseMsg:
		if mouse, ok := teakeys.FromMouseMsg(msg); ok {
			m.last = m.describe(data.MouseEvent{Mouse: mouse})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case reloadMsg:
		if msg.err != nil {
			m.status = "config error: " + msg.err.Error()
			return m, nil
		}
		info, err := msg.cfg.ModeInfo(m.keybinds)
		if err != nil {
			m.status = "config error: " + err.Error()
			return m, nil
		}
		mode := m.info.Mode
		m.cfg, m.info, m.status = msg.cfg, info, "config reloaded"
		m.setMode(mode)
	}
	return m, nil
}

func (m model) View() string {
	r := statusbar.New(m.info, m.width, statusbar.OutputANSI)
	var b strings.Builder
	b.WriteString(r.Line(m.info, m.tabs))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(statusbar.KeyMap(m.bindings)))
	b.WriteString("\n\n")
	if m.last != "" {
		b.WriteString("last event: " + m.last + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	return b.String()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func main() {
	flag.Parse()
	if *debugMode {
		_ = perf.Enable()
	}

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	kb, err := config.LoadKeybinds(*keybindsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tabs, err := tmux.ListTabs()
	if err != nil {
		perf.Log("no tmux tabs", "err", err)
	}

	m, err := newModel(cfg, kb, tabs, terminalWidth())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *printOnce || !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print(m.View())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(m, tea.WithMouseCellMotion())
	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
			p.Send(reloadMsg{cfg: cfg, err: err})
		})
		if err != nil {
			perf.Error("watch config", err, "path", path)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
