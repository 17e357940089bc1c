package data

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Direction is one of the four arrow directions, ordered Left, Right, Up, Down.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

var directionNames = [...]string{"Left", "Right", "Up", "Down"}

// String renders the direction as an arrow glyph.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "←"
	case DirectionRight:
		return "→"
	case DirectionUp:
		return "↑"
	case DirectionDown:
		return "↓"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Name returns the variant name used on the wire.
func (d Direction) Name() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return ""
}

func (d Direction) MarshalText() ([]byte, error) {
	name := d.Name()
	if name == "" {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(name), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	dir, ok := parseDirection(string(b))
	if !ok {
		return unknownVariant("direction", string(b))
	}
	*d = dir
	return nil
}

func parseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// CharOrArrow is the payload of an Alt key: a character or an arrow.
//
// On the wire it is untagged. A Char is a JSON string of exactly one
// character; a Direction is one of "Left", "Right", "Up", "Down". Direction
// names are all longer than one character, so the two never collide.
type CharOrArrow struct {
	IsDirection bool
	Char        rune
	Direction   Direction
}

// Letter returns the Char variant.
func Letter(c rune) CharOrArrow {
	return CharOrArrow{Char: c}
}

// Arrow returns the Direction variant.
func Arrow(d Direction) CharOrArrow {
	return CharOrArrow{IsDirection: true, Direction: d}
}

func (c CharOrArrow) String() string {
	if c.IsDirection {
		return c.Direction.String()
	}
	return CharKey(c.Char).String()
}

// Compare orders Char variants before Direction variants, then by payload.
func (c CharOrArrow) Compare(o CharOrArrow) int {
	if c.IsDirection != o.IsDirection {
		if c.IsDirection {
			return 1
		}
		return -1
	}
	if c.IsDirection {
		return cmp.Compare(c.Direction, o.Direction)
	}
	return cmp.Compare(c.Char, o.Char)
}

func (c CharOrArrow) MarshalJSON() ([]byte, error) {
	if c.IsDirection {
		name := c.Direction.Name()
		if name == "" {
			return nil, fmt.Errorf("invalid direction %d", uint8(c.Direction))
		}
		return json.Marshal(name)
	}
	if !utf8.ValidRune(c.Char) {
		return nil, fmt.Errorf("invalid character %U", c.Char)
	}
	return json.Marshal(string(c.Char))
}

func (c *CharOrArrow) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("char or arrow: %w", err)
	}
	if d, ok := parseDirection(s); ok {
		*c = Arrow(d)
		return nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return fmt.Errorf("char or arrow: %q is neither a character nor a direction", s)
	}
	*c = Letter(r[0])
	return nil
}

// KeyKind is the Key variant. Declaration order is part of the public
// contract: it defines how keys sort, and status bars render keys in
// that order.
type KeyKind uint8

const (
	KeyPageDown KeyKind = iota
	KeyPageUp
	KeyLeft
	KeyDown
	KeyUp
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyF
	KeyChar
	KeyAlt
	KeyCtrl
	KeyBackTab
	KeyNull
	KeyEsc
)

var keyKindNames = [...]string{
	"PageDown", "PageUp", "Left", "Down", "Up", "Right", "Home", "End",
	"Backspace", "Delete", "Insert", "F", "Char", "Alt", "Ctrl",
	"BackTab", "Null", "Esc",
}

func (k KeyKind) String() string {
	if int(k) < len(keyKindNames) {
		return keyKindNames[k]
	}
	return "KeyKind(" + strconv.Itoa(int(k)) + ")"
}

// Key is a physical or logical key press. Only the field matching Kind is
// meaningful; the constructors leave the others zero so keys compare with ==
// and work as map keys.
type Key struct {
	Kind KeyKind
	// N is the function key number for KeyF.
	N uint8
	// Char is set for KeyChar and KeyCtrl.
	Char rune
	// Alt is set for KeyAlt.
	Alt CharOrArrow
}

// NewKey returns a payload-free key such as KeyEsc or KeyHome.
func NewKey(kind KeyKind) Key { return Key{Kind: kind} }

// FKey returns the function key F(n).
func FKey(n uint8) Key { return Key{Kind: KeyF, N: n} }

// CharKey returns a plain character key.
func CharKey(c rune) Key { return Key{Kind: KeyChar, Char: c} }

// AltKey returns Alt combined with a character or arrow.
func AltKey(c CharOrArrow) Key { return Key{Kind: KeyAlt, Alt: c} }

// AltChar is shorthand for AltKey(Letter(c)).
func AltChar(c rune) Key { return AltKey(Letter(c)) }

// AltArrow is shorthand for AltKey(Arrow(d)).
func AltArrow(d Direction) Key { return AltKey(Arrow(d)) }

// CtrlKey returns Ctrl combined with a character.
func CtrlKey(c rune) Key { return Key{Kind: KeyCtrl, Char: c} }

func hasPayload(kind KeyKind) bool { return kind >= KeyF && kind <= KeyCtrl }

// String renders the key as a short label for status lines.
func (k Key) String() string {
	switch k.Kind {
	case KeyBackspace:
		return "BACKSPACE"
	case KeyLeft:
		return DirectionLeft.String()
	case KeyRight:
		return DirectionRight.String()
	case KeyUp:
		return DirectionUp.String()
	case KeyDown:
		return DirectionDown.String()
	case KeyHome:
		return "HOME"
	case KeyEnd:
		return "END"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyBackTab:
		return "TAB"
	case KeyDelete:
		return "DEL"
	case KeyInsert:
		return "INS"
	case KeyF:
		return "F" + strconv.Itoa(int(k.N))
	case KeyChar:
		switch k.Char {
		case '\n':
			return "ENTER"
		case '\t':
			return "TAB"
		case ' ':
			return "SPACE"
		}
		return string(k.Char)
	case KeyAlt:
		return "Alt+" + k.Alt.String()
	case KeyCtrl:
		return "Ctrl+" + CharKey(k.Char).String()
	case KeyNull:
		return "NULL"
	case KeyEsc:
		return "ESC"
	}
	return k.Kind.String()
}

// Compare orders keys by variant declaration order, then by payload.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Kind, o.Kind); c != 0 {
		return c
	}
	switch k.Kind {
	case KeyF:
		return cmp.Compare(k.N, o.N)
	case KeyChar, KeyCtrl:
		return cmp.Compare(k.Char, o.Char)
	case KeyAlt:
		return k.Alt.Compare(o.Alt)
	}
	return 0
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

func (k Key) MarshalJSON() ([]byte, error) {
	if int(k.Kind) >= len(keyKindNames) {
		return nil, fmt.Errorf("invalid key kind %d", uint8(k.Kind))
	}
	name := keyKindNames[k.Kind]
	switch k.Kind {
	case KeyF:
		return marshalTagged(name, k.N)
	case KeyChar, KeyCtrl:
		if !utf8.ValidRune(k.Char) {
			return nil, fmt.Errorf("key %s: invalid character %U", name, k.Char)
		}
		return marshalTagged(name, string(k.Char))
	case KeyAlt:
		return marshalTagged(name, k.Alt)
	}
	return marshalUnit(name)
}

func (k *Key) UnmarshalJSON(b []byte) error {
	name, payload, err := splitTagged(b)
	if err != nil {
		return fmt.Errorf("key: %w", err)
	}
	kind := -1
	for i, n := range keyKindNames {
		if n == name {
			kind = i
			break
		}
	}
	if kind < 0 {
		return unknownVariant("key", name)
	}
	kk := KeyKind(kind)
	if !hasPayload(kk) {
		if payload != nil {
			return fmt.Errorf("key %s takes no payload", name)
		}
		*k = NewKey(kk)
		return nil
	}
	if err := needPayload(name, payload); err != nil {
		return err
	}
	switch kk {
	case KeyF:
		var n uint8
		if err := json.Unmarshal(payload, &n); err != nil {
			return fmt.Errorf("key F: %w", err)
		}
		*k = FKey(n)
	case KeyChar, KeyCtrl:
		r, err := unmarshalRune(payload)
		if err != nil {
			return fmt.Errorf("key %s: %w", name, err)
		}
		*k = Key{Kind: kk, Char: r}
	case KeyAlt:
		var c CharOrArrow
		if err := json.Unmarshal(payload, &c); err != nil {
			return fmt.Errorf("key Alt: %w", err)
		}
		*k = AltKey(c)
	}
	return nil
}

// MouseKind is the Mouse variant.
type MouseKind uint8

const (
	MouseScrollUp MouseKind = iota
	MouseScrollDown
	MouseLeftClick
	MouseRightClick
	MouseHold
	MouseRelease
)

var mouseKindNames = [...]string{"ScrollUp", "ScrollDown", "LeftClick", "RightClick", "Hold", "Release"}

func (k MouseKind) String() string {
	if int(k) < len(mouseKindNames) {
		return mouseKindNames[k]
	}
	return "MouseKind(" + strconv.Itoa(int(k)) + ")"
}

// Mouse is a mouse event. Scroll events carry a line count in Lines; the
// others carry a position. Line is negative above the viewport.
type Mouse struct {
	Kind   MouseKind
	Lines  uint
	Line   int
	Column uint
}

func ScrollUp(lines uint) Mouse { return Mouse{Kind: MouseScrollUp, Lines: lines} }
func ScrollDown(lines uint) Mouse { return Mouse{Kind: MouseScrollDown, Lines: lines} }

// MouseAt returns a positioned mouse event of the given kind.
func MouseAt(kind MouseKind, line int, col uint) Mouse {
	return Mouse{Kind: kind, Line: line, Column: col}
}

func (m Mouse) isScroll() bool { return m.Kind == MouseScrollUp || m.Kind == MouseScrollDown }

func (m Mouse) String() string {
	if m.isScroll() {
		return fmt.Sprintf("%s(%d)", m.Kind, m.Lines)
	}
	return fmt.Sprintf("%s(%d, %d)", m.Kind, m.Line, m.Column)
}

func (m Mouse) MarshalJSON() ([]byte, error) {
	if int(m.Kind) >= len(mouseKindNames) {
		return nil, fmt.Errorf("invalid mouse kind %d", uint8(m.Kind))
	}
	if m.isScroll() {
		return marshalTagged(m.Kind.String(), m.Lines)
	}
	return marshalTagged(m.Kind.String(), []interface{}{m.Line, m.Column})
}

func (m *Mouse) UnmarshalJSON(b []byte) error {
	name, payload, err := splitTagged(b)
	if err != nil {
		return fmt.Errorf("mouse: %w", err)
	}
	kind := -1
	for i, n := range mouseKindNames {
		if n == name {
			kind = i
			break
		}
	}
	if kind < 0 {
		return unknownVariant("mouse", name)
	}
	if err := needPayload(name, payload); err != nil {
		return err
	}
	mk := MouseKind(kind)
	if mk == MouseScrollUp || mk == MouseScrollDown {
		var lines uint
		if err := json.Unmarshal(payload, &lines); err != nil {
			return fmt.Errorf("mouse %s: %w", name, err)
		}
		*m = Mouse{Kind: mk, Lines: lines}
		return nil
	}
	var line int
	var col uint
	if err := unmarshalPair(payload, &line, &col); err != nil {
		return fmt.Errorf("mouse %s: %w", name, err)
	}
	*m = MouseAt(mk, line, col)
	return nil
}
