package tmux

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/b/muxplug/pkg/data"
)

func line(fields ...string) string {
	return strings.Join(fields, "\x1f")
}

func TestParseTabs(t *testing.T) {
	out := strings.Join([]string{
		line("3", "logs", "0", "1", "1", "4"),
		line("1", "\x1b[31meditor\x1b[0m", "1", "0", "0", "2"),
		line("2", "shell", "0", "1", "0", "1"),
	}, "\n") + "\n"

	got, err := ParseTabs(out)
	if err != nil {
		t.Fatalf("ParseTabs() error: %v", err)
	}
	want := []data.TabInfo{
		{Position: 0, Name: "editor", Active: true},
		{Position: 1, Name: "shell", IsFullscreenActive: true},
		{Position: 2, Name: "logs", IsFullscreenActive: true, IsSyncPanesActive: true, PanesToHide: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTabs() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestParseTabsEmpty(t *testing.T) {
	got, err := ParseTabs("\n")
	if err != nil {
		t.Fatalf("ParseTabs() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseTabs(empty) = %v, want none", got)
	}
}

func TestParseTabsErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"too few fields", line("1", "a", "1")},
		{"bad index", line("x", "a", "1", "0", "0", "1")},
		{"bad pane count", line("1", "a", "1", "0", "0", "many")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTabs(tt.out); err == nil {
				t.Errorf("ParseTabs(%q) accepted bad input", tt.out)
			}
		})
	}
}

func fakeRun(t *testing.T, out string, err error) *[]string {
	t.Helper()
	var gotArgs []string
	orig := run
	run = func(args ...string) ([]byte, error) {
		gotArgs = args
		return []byte(out), err
	}
	t.Cleanup(func() { run = orig })
	return &gotArgs
}

func TestListTabs(t *testing.T) {
	args := fakeRun(t, line("0", "main", "1", "0", "0", "1")+"\n", nil)
	tabs, err := ListTabs()
	if err != nil {
		t.Fatalf("ListTabs() error: %v", err)
	}
	if len(tabs) != 1 || tabs[0].Name != "main" || !tabs[0].Active {
		t.Errorf("ListTabs() = %+v", tabs)
	}
	if want := []string{"list-windows", "-F", TabFormat}; !reflect.DeepEqual(*args, want) {
		t.Errorf("tmux args = %q, want %q", *args, want)
	}
}

func TestListTabsCommandFails(t *testing.T) {
	boom := errors.New("no server running")
	fakeRun(t, "", boom)
	if _, err := ListTabs(); !errors.Is(err, boom) {
		t.Errorf("ListTabs() error = %v, want wrapped %v", err, boom)
	}
}

func TestSessionName(t *testing.T) {
	fakeRun(t, "work\n", nil)
	got, err := SessionName()
	if err != nil || got != "work" {
		t.Errorf("SessionName() = %q, %v, want work", got, err)
	}
}
