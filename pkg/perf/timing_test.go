package perf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/b/muxplug/pkg/paths"
)

func TestDisabledWritesNothing(t *testing.T) {
	SetOutput(nil)
	if IsEnabled() {
		t.Fatal("IsEnabled() = true after SetOutput(nil)")
	}
	Log("ignored", "k", 1)
	if d := Track("noop", func() {}); d < 0 {
		t.Errorf("Track() = %v", d)
	}
}

func TestLogAndTimer(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Log("loaded config", "path", "/tmp/c.yaml")
	elapsed := Track("render", func() { time.Sleep(time.Millisecond) })
	Error("reload failed", errors.New("boom"))

	if elapsed < time.Millisecond {
		t.Errorf("Track() = %v, want >= 1ms", elapsed)
	}
	out := buf.String()
	for _, want := range []string{
		`msg="loaded config" path=/tmp/c.yaml`,
		`msg=timing op=render elapsed=`,
		`level=ERROR msg="reload failed" err=boom`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestEnableWritesToStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MUXPLUG_STATE_DIR", dir)
	paths.ResetForTest()
	t.Cleanup(paths.ResetForTest)
	SetOutput(nil)
	t.Cleanup(func() { SetOutput(nil) })

	if err := Enable(); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	if !IsEnabled() {
		t.Fatal("IsEnabled() = false after Enable()")
	}
	Log("hello")

	raw, err := os.ReadFile(filepath.Join(dir, "perf.log"))
	if err != nil {
		t.Fatalf("read perf log: %v", err)
	}
	if !strings.Contains(string(raw), "msg=hello") {
		t.Errorf("perf log = %q", raw)
	}
}
