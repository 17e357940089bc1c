// muxplug-events produces and inspects plugin event streams.
//
// By default it writes a ModeUpdate built from the config and a TabUpdate
// from tmux as newline-delimited JSON. With -watch it keeps running,
// resending ModeUpdate when the config changes and TabUpdate when the
// windows change, plus a Timer event per poll. With -decode it reads a
// stream from stdin and prints the events a subscriber would receive.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/b/muxplug/pkg/config"
	"github.com/b/muxplug/pkg/data"
	"github.com/b/muxplug/pkg/perf"
	"github.com/b/muxplug/pkg/tmux"
	"github.com/b/muxplug/pkg/wire"
)

var (
	configPath   = flag.String("config", "", "config file (default: muxplug config dir)")
	keybindsPath = flag.String("keybinds", "", "JSON file with the keybinding table")
	watch        = flag.Bool("watch", false, "keep running and emit updates")
	interval     = flag.Duration("interval", 2*time.Second, "tmux poll interval with -watch")
	decode       = flag.Bool("decode", false, "read a stream from stdin and print its events")
	subscribe    = flag.String("subscribe", "", "comma-separated event types to keep with -decode (default: all)")
	debugMode    = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	if *debugMode {
		_ = perf.Enable()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *decode {
		err = runDecode(os.Stdin, os.Stdout, *subscribe)
	} else {
		err = runEmit(ctx, wire.NewEncoder(os.Stdout))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "muxplug-events: %v\n", err)
		os.Exit(1)
	}
}

func parseEventTypes(list string) ([]data.EventType, error) {
	if list == "" {
		return data.AllEventTypes(), nil
	}
	var types []data.EventType
	for _, name := range strings.Split(list, ",") {
		t, err := data.ParseEventType(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// runDecode prints one "Type payload" line per event the subscription
// accepts. Subscribe and unsubscribe messages in the stream update it.
func runDecode(r io.Reader, w io.Writer, list string) error {
	types, err := parseEventTypes(list)
	if err != nil {
		return err
	}
	sub := wire.NewSubscription(types...)
	dec := wire.NewDecoder(r)
	for {
		msg, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(err, wire.ErrLineTooLong) {
				return err
			}
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if sub.Apply(msg) {
			perf.Log("subscription changed", "types", sub.Types())
			continue
		}
		ev := msg.EventOf()
		if ev == nil || !sub.Wants(ev) {
			continue
		}
		payload, err := data.MarshalEvent(ev)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", ev.Type(), payload)
	}
}

type emitter struct {
	enc      *wire.Encoder
	keybinds data.KeybindsVec
	lastTabs []data.TabInfo
	started  time.Time
}

func (e *emitter) modeUpdate(cfg *config.Config) error {
	info, err := cfg.ModeInfo(e.keybinds)
	if err != nil {
		return err
	}
	return e.enc.Encode(wire.NewEvent(data.ModeUpdateEvent{Info: info}))
}

// tabUpdate sends the tabs when they differ from the last ones sent.
func (e *emitter) tabUpdate() error {
	tabs, err := tmux.ListTabs()
	if err != nil {
		return err
	}
	if e.lastTabs != nil && slices.EqualFunc(tabs, e.lastTabs, data.TabInfo.Equal) {
		return nil
	}
	e.lastTabs = tabs
	return e.enc.Encode(wire.NewEvent(data.TabUpdateEvent{Tabs: tabs}))
}

func runEmit(ctx context.Context, enc *wire.Encoder) error {
	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	kb, err := config.LoadKeybinds(*keybindsPath)
	if err != nil {
		return err
	}

	e := &emitter{enc: enc, keybinds: kb, started: time.Now()}
	if err := e.modeUpdate(cfg); err != nil {
		return err
	}
	if err := e.tabUpdate(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	reloads := make(chan *config.Config, 1)
	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
			if err != nil {
				perf.Error("reload config", err, "path", path)
				return
			}
			select {
			case reloads <- cfg:
			default:
			}
		})
		if err != nil {
			perf.Error("watch config", err, "path", path)
		}
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-reloads:
			perf.Log("config reloaded", "path", path)
			if err := e.modeUpdate(cfg); err != nil {
				perf.Error("mode update", err)
			}
		case <-ticker.C:
			if err := e.enc.Encode(wire.NewEvent(data.TimerEvent{Seconds: time.Since(e.started).Seconds()})); err != nil {
				return err
			}
			if err := e.tabUpdate(); err != nil {
				perf.Error("tab update", err)
			}
		}
	}
}
