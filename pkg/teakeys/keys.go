// Package teakeys converts between Bubble Tea input messages and plugin
// key and mouse events.
package teakeys

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/b/muxplug/pkg/data"
)

// fKeys lists F1..F20 in order.
var fKeys = [...]tea.KeyType{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5,
	tea.KeyF6, tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10,
	tea.KeyF11, tea.KeyF12, tea.KeyF13, tea.KeyF14, tea.KeyF15,
	tea.KeyF16, tea.KeyF17, tea.KeyF18, tea.KeyF19, tea.KeyF20,
}

var arrows = map[tea.KeyType]data.Direction{
	tea.KeyLeft:  data.DirectionLeft,
	tea.KeyRight: data.DirectionRight,
	tea.KeyUp:    data.DirectionUp,
	tea.KeyDown:  data.DirectionDown,
}

var plainKeys = map[tea.KeyType]data.KeyKind{
	tea.KeyPgDown:    data.KeyPageDown,
	tea.KeyPgUp:      data.KeyPageUp,
	tea.KeyLeft:      data.KeyLeft,
	tea.KeyDown:      data.KeyDown,
	tea.KeyUp:        data.KeyUp,
	tea.KeyRight:     data.KeyRight,
	tea.KeyHome:      data.KeyHome,
	tea.KeyEnd:       data.KeyEnd,
	tea.KeyBackspace: data.KeyBackspace,
	tea.KeyDelete:    data.KeyDelete,
	tea.KeyInsert:    data.KeyInsert,
	tea.KeyShiftTab:  data.KeyBackTab,
	tea.KeyNull:      data.KeyNull,
	tea.KeyEsc:       data.KeyEsc,
}

// FromKeyMsg converts a key press. Enter and Tab become the characters
// '\n' and '\t'. Pastes and keys without a plugin equivalent report false.
func FromKeyMsg(msg tea.KeyMsg) (data.Key, bool) {
	if msg.Paste {
		return data.Key{}, false
	}

	var c rune
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return data.Key{}, false
		}
		c = msg.Runes[0]
	case tea.KeySpace:
		c = ' '
	case tea.KeyEnter:
		c = '\n'
	case tea.KeyTab:
		c = '\t'
	}
	if c != 0 {
		if msg.Alt {
			return data.AltChar(c), true
		}
		return data.CharKey(c), true
	}

	if d, ok := arrows[msg.Type]; ok && msg.Alt {
		return data.AltArrow(d), true
	}
	if kind, ok := plainKeys[msg.Type]; ok {
		return data.NewKey(kind), true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return data.CtrlKey('a' + rune(msg.Type-tea.KeyCtrlA)), true
	}
	for i, f := range fKeys {
		if msg.Type == f {
			return data.FKey(uint8(i + 1)), true
		}
	}
	return data.Key{}, false
}

// ToKeyMsg is the inverse of FromKeyMsg for keys a terminal can produce.
func ToKeyMsg(k data.Key) (tea.KeyMsg, bool) {
	switch k.Kind {
	case data.KeyChar:
		return charMsg(k.Char, false), true
	case data.KeyAlt:
		if k.Alt.IsDirection {
			for t, d := range arrows {
				if d == k.Alt.Direction {
					return tea.KeyMsg{Type: t, Alt: true}, true
				}
			}
			return tea.KeyMsg{}, false
		}
		return charMsg(k.Alt.Char, true), true
	case data.KeyCtrl:
		if k.Char >= 'a' && k.Char <= 'z' {
			return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(k.Char-'a')}, true
		}
		return tea.KeyMsg{}, false
	case data.KeyF:
		if k.N >= 1 && int(k.N) <= len(fKeys) {
			return tea.KeyMsg{Type: fKeys[k.N-1]}, true
		}
		return tea.KeyMsg{}, false
	}
	for t, kind := range plainKeys {
		if kind == k.Kind {
			return tea.KeyMsg{Type: t}, true
		}
	}
	return tea.KeyMsg{}, false
}

func charMsg(c rune, alt bool) tea.KeyMsg {
	switch c {
	case '\n', '\r':
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: alt}
	case '\t':
		return tea.KeyMsg{Type: tea.KeyTab, Alt: alt}
	case ' ':
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: alt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}, Alt: alt}
}

// String returns the name Bubble Tea gives the key, e.g. "ctrl+g" or
// "alt+left", for use with bubbles key bindings. It returns "" for keys
// with no terminal form.
func String(k data.Key) string {
	msg, ok := ToKeyMsg(k)
	if !ok {
		return ""
	}
	return msg.String()
}

// FromMouseMsg converts wheel, press, drag and release events. Positions
// are zero-based, line first.
func FromMouseMsg(msg tea.MouseMsg) (data.Mouse, bool) {
	if msg.X < 0 || msg.Y < 0 {
		return data.Mouse{}, false
	}
	line, col := msg.Y, uint(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return data.ScrollUp(1), true
		case tea.MouseButtonWheelDown:
			return data.ScrollDown(1), true
		case tea.MouseButtonLeft:
			return data.MouseAt(data.MouseLeftClick, line, col), true
		case tea.MouseButtonRight:
			return data.MouseAt(data.MouseRightClick, line, col), true
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			return data.MouseAt(data.MouseHold, line, col), true
		}
	case tea.MouseActionRelease:
		return data.MouseAt(data.MouseRelease, line, col), true
	}
	return data.Mouse{}, false
}
