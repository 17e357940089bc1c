package data

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// EventType names an Event variant without its payload, so plugins can
// subscribe to kinds of events.
type EventType uint8

const (
	EventTypeModeUpdate EventType = iota
	EventTypeTabUpdate
	EventTypeKey
	EventTypeMouse
	EventTypeTimer
	EventTypeCopyToClipboard
	EventTypeSystemClipboardFailure
	EventTypeInputReceived
	EventTypeVisible
)

var eventTypeNames = [...]string{
	"ModeUpdate",
	"TabUpdate",
	"Key",
	"Mouse",
	"Timer",
	"CopyToClipboard",
	"SystemClipboardFailure",
	"InputReceived",
	"Visible",
}

// AllEventTypes returns every event type in declaration order.
func AllEventTypes() []EventType {
	types := make([]EventType, len(eventTypeNames))
	for i := range eventTypeNames {
		types[i] = EventType(i)
	}
	return types
}

// ParseEventType parses the variant name, e.g. "CopyToClipboard".
func ParseEventType(s string) (EventType, error) {
	for i, name := range eventTypeNames {
		if s == name {
			return EventType(i), nil
		}
	}
	return 0, unknownVariant("event type", s)
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

func (t EventType) MarshalText() ([]byte, error) {
	if int(t) >= len(eventTypeNames) {
		return nil, fmt.Errorf("invalid event type %d", uint8(t))
	}
	return []byte(eventTypeNames[t]), nil
}

func (t *EventType) UnmarshalText(b []byte) error {
	et, err := ParseEventType(string(b))
	if err != nil {
		return err
	}
	*t = et
	return nil
}

// Event is a notification delivered to plugins. More variants may be added;
// type switches over Event need a default case.
type Event interface {
	Type() EventType
	isEvent()
}

type (
	// ModeUpdateEvent is sent when the input mode or the keybindings change.
	ModeUpdateEvent struct{ Info ModeInfo }
	// TabUpdateEvent carries every tab of the session.
	TabUpdateEvent struct{ Tabs []TabInfo }
	// KeyEvent is a key press forwarded to the plugin.
	KeyEvent struct{ Key Key }
	// MouseEvent is a mouse action inside the plugin pane.
	MouseEvent struct{ Mouse Mouse }
	// TimerEvent fires after a plugin requested timeout, in seconds.
	TimerEvent struct{ Seconds float64 }
	// CopyToClipboardEvent reports that text was copied.
	CopyToClipboardEvent struct{ Destination CopyDestination }
	// SystemClipboardFailureEvent reports a failed copy to the system clipboard.
	SystemClipboardFailureEvent struct{}
	// InputReceivedEvent reports that a client sent input.
	InputReceivedEvent struct{}
	// VisibleEvent reports whether the plugin pane is visible.
	VisibleEvent struct{ Visible bool }
)

func (ModeUpdateEvent) Type() EventType             { return EventTypeModeUpdate }
func (TabUpdateEvent) Type() EventType              { return EventTypeTabUpdate }
func (KeyEvent) Type() EventType                    { return EventTypeKey }
func (MouseEvent) Type() EventType                  { return EventTypeMouse }
func (TimerEvent) Type() EventType                  { return EventTypeTimer }
func (CopyToClipboardEvent) Type() EventType        { return EventTypeCopyToClipboard }
func (SystemClipboardFailureEvent) Type() EventType { return EventTypeSystemClipboardFailure }
func (InputReceivedEvent) Type() EventType          { return EventTypeInputReceived }
func (VisibleEvent) Type() EventType                { return EventTypeVisible }

func (ModeUpdateEvent) isEvent()             {}
func (TabUpdateEvent) isEvent()              {}
func (KeyEvent) isEvent()                    {}
func (MouseEvent) isEvent()                  {}
func (TimerEvent) isEvent()                  {}
func (CopyToClipboardEvent) isEvent()        {}
func (SystemClipboardFailureEvent) isEvent() {}
func (InputReceivedEvent) isEvent()          {}
func (VisibleEvent) isEvent()                {}

// eventValue returns the value behind a pointer event such as *KeyEvent,
// or nil for a nil pointer.
func eventValue(e Event) Event {
	if e == nil {
		return nil
	}
	rv := reflect.ValueOf(e)
	if rv.Kind() != reflect.Pointer {
		return e
	}
	if rv.IsNil() {
		return nil
	}
	ev, _ := rv.Elem().Interface().(Event)
	return ev
}

// MarshalEvent encodes an event in its tagged wire form, e.g. {"Key":"Esc"}
// or "InputReceived". Pointers to events encode like the events.
func MarshalEvent(e Event) ([]byte, error) {
	e = eventValue(e)
	if e == nil {
		return nil, fmt.Errorf("marshal event: nil event")
	}
	name := e.Type().String()
	switch ev := e.(type) {
	case ModeUpdateEvent:
		return marshalTagged(name, ev.Info)
	case TabUpdateEvent:
		tabs := ev.Tabs
		if tabs == nil {
			tabs = []TabInfo{}
		}
		return marshalTagged(name, tabs)
	case KeyEvent:
		return marshalTagged(name, ev.Key)
	case MouseEvent:
		return marshalTagged(name, ev.Mouse)
	case TimerEvent:
		return marshalTagged(name, ev.Seconds)
	case CopyToClipboardEvent:
		return marshalTagged(name, ev.Destination)
	case SystemClipboardFailureEvent, InputReceivedEvent:
		return marshalUnit(name)
	case VisibleEvent:
		return marshalTagged(name, ev.Visible)
	}
	return nil, fmt.Errorf("marshal event: unsupported type %T", e)
}

// UnmarshalEvent decodes the tagged wire form. Variants added by newer
// hosts fail with an error wrapping ErrUnknownVariant, which callers can
// skip with errors.Is.
func UnmarshalEvent(b []byte) (Event, error) {
	name, payload, err := splitTagged(b)
	if err != nil {
		return nil, fmt.Errorf("event: %w", err)
	}
	typ, err := ParseEventType(name)
	if err != nil {
		return nil, err
	}
	switch typ {
	case EventTypeSystemClipboardFailure:
		return SystemClipboardFailureEvent{}, nil
	case EventTypeInputReceived:
		return InputReceivedEvent{}, nil
	}
	if err := needPayload(name, payload); err != nil {
		return nil, err
	}
	var ev Event
	switch typ {
	case EventTypeModeUpdate:
		var e ModeUpdateEvent
		err = json.Unmarshal(payload, &e.Info)
		ev = e
	case EventTypeTabUpdate:
		var e TabUpdateEvent
		err = json.Unmarshal(payload, &e.Tabs)
		ev = e
	case EventTypeKey:
		var e KeyEvent
		err = json.Unmarshal(payload, &e.Key)
		ev = e
	case EventTypeMouse:
		var e MouseEvent
		err = json.Unmarshal(payload, &e.Mouse)
		ev = e
	case EventTypeTimer:
		var e TimerEvent
		err = json.Unmarshal(payload, &e.Seconds)
		ev = e
	case EventTypeCopyToClipboard:
		var e CopyToClipboardEvent
		err = json.Unmarshal(payload, &e.Destination)
		ev = e
	case EventTypeVisible:
		var e VisibleEvent
		err = json.Unmarshal(payload, &e.Visible)
		ev = e
	}
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", name, err)
	}
	return ev, nil
}

// EventsEqual reports structural equality of two events, treating nil and
// empty lists as equal.
func EventsEqual(a, b Event) bool {
	a, b = eventValue(a), eventValue(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch ea := a.(type) {
	case ModeUpdateEvent:
		eb, ok := b.(ModeUpdateEvent)
		return ok && ea.Info.Equal(eb.Info)
	case TabUpdateEvent:
		eb, ok := b.(TabUpdateEvent)
		return ok && slices.EqualFunc(ea.Tabs, eb.Tabs, TabInfo.Equal)
	}
	return reflect.DeepEqual(a, b)
}
