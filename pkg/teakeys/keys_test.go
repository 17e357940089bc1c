package teakeys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/b/muxplug/pkg/data"
)

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want data.Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, data.CharKey('a')},
		{"unicode rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, data.CharKey('é')},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, data.AltChar('x')},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, data.CharKey(' ')},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, data.CharKey('\n')},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, data.CharKey('\t')},
		{"alt enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, data.AltChar('\n')},
		{"ctrl g", tea.KeyMsg{Type: tea.KeyCtrlG}, data.CtrlKey('g')},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, data.CtrlKey('a')},
		{"ctrl z", tea.KeyMsg{Type: tea.KeyCtrlZ}, data.CtrlKey('z')},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, data.NewKey(data.KeyLeft)},
		{"alt up", tea.KeyMsg{Type: tea.KeyUp, Alt: true}, data.AltArrow(data.DirectionUp)},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, data.NewKey(data.KeyPageDown)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, data.NewKey(data.KeyBackspace)},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, data.NewKey(data.KeyBackTab)},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, data.NewKey(data.KeyEsc)},
		{"null", tea.KeyMsg{Type: tea.KeyNull}, data.NewKey(data.KeyNull)},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, data.FKey(1)},
		{"f12", tea.KeyMsg{Type: tea.KeyF12}, data.FKey(12)},
		{"f20", tea.KeyMsg{Type: tea.KeyF20}, data.FKey(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromKeyMsg(tt.msg)
			if !ok {
				t.Fatalf("FromKeyMsg(%v) reported no equivalent", tt.msg)
			}
			if got != tt.want {
				t.Errorf("FromKeyMsg(%v) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestFromKeyMsgUnsupported(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true},
		{Type: tea.KeyRunes, Runes: []rune("ab")},
		{Type: tea.KeyRunes},
		{Type: tea.KeyCtrlUp},
	} {
		if got, ok := FromKeyMsg(msg); ok {
			t.Errorf("FromKeyMsg(%+v) = %v, want no equivalent", msg, got)
		}
	}
}

func TestToKeyMsgRoundTrip(t *testing.T) {
	keys := []data.Key{
		data.CharKey('q'),
		data.CharKey('\n'),
		data.CharKey('\t'),
		data.AltChar('k'),
		data.AltArrow(data.DirectionLeft),
		data.AltArrow(data.DirectionDown),
		data.CtrlKey('p'),
		data.FKey(5),
		data.NewKey(data.KeyHome),
		data.NewKey(data.KeyEnd),
		data.NewKey(data.KeyInsert),
		data.NewKey(data.KeyDelete),
		data.NewKey(data.KeyBackTab),
		data.NewKey(data.KeyNull),
		data.NewKey(data.KeyEsc),
	}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			msg, ok := ToKeyMsg(k)
			if !ok {
				t.Fatalf("ToKeyMsg(%v) reported no terminal form", k)
			}
			got, ok := FromKeyMsg(msg)
			if !ok || got != k {
				t.Errorf("FromKeyMsg(ToKeyMsg(%v)) = %v, %v", k, got, ok)
			}
		})
	}
}

func TestToKeyMsgUnsupported(t *testing.T) {
	for _, k := range []data.Key{data.FKey(0), data.FKey(21), data.CtrlKey('1'), data.CtrlKey('G')} {
		if msg, ok := ToKeyMsg(k); ok {
			t.Errorf("ToKeyMsg(%v) = %v, want no terminal form", k, msg)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		key  data.Key
		want string
	}{
		{data.CtrlKey('g'), "ctrl+g"},
		{data.CharKey('x'), "x"},
		{data.AltChar('x'), "alt+x"},
		{data.AltArrow(data.DirectionLeft), "alt+left"},
		{data.NewKey(data.KeyPageUp), "pgup"},
		{data.NewKey(data.KeyEsc), "esc"},
		{data.CharKey('\n'), "enter"},
		{data.FKey(3), "f3"},
		{data.FKey(0), ""},
	}

	for _, tt := range tests {
		if got := String(tt.key); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestFromMouseMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want data.Mouse
	}{
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, data.ScrollUp(1)},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, data.ScrollDown(1)},
		{"left click", tea.MouseMsg{X: 12, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, data.MouseAt(data.MouseLeftClick, 3, 12)},
		{"right click", tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, data.MouseAt(data.MouseRightClick, 2, 1)},
		{"drag", tea.MouseMsg{X: 4, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, data.MouseAt(data.MouseHold, 5, 4)},
		{"release", tea.MouseMsg{X: 4, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, data.MouseAt(data.MouseRelease, 6, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMouseMsg(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("FromMouseMsg(%+v) = %v, %v, want %v", tt.msg, got, ok, tt.want)
			}
		})
	}
}

func TestFromMouseMsgUnsupported(t *testing.T) {
	for _, msg := range []tea.MouseMsg{
		{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle},
		{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		{X: -1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	} {
		if got, ok := FromMouseMsg(msg); ok {
			t.Errorf("FromMouseMsg(%+v) = %v, want no equivalent", msg, got)
		}
	}
}
