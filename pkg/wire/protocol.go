// Package wire frames plugin events as newline-delimited JSON messages and
// tracks which event types each plugin asked for.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/b/muxplug/pkg/data"
)

var (
	ErrUnknownType  = errors.New("unknown message type")
	ErrMissingEvent = errors.New("event message without event")
	ErrNoEventTypes = errors.New("subscription message without event types")
	ErrLineTooLong  = errors.New("message exceeds maximum line size")
)

// MessageType identifies the type of message
type MessageType string

const (
	MsgEvent       MessageType = "event"       // Host -> Plugin
	MsgSubscribe   MessageType = "subscribe"   // Plugin -> Host
	MsgUnsubscribe MessageType = "unsubscribe" // Plugin -> Host
	MsgPing        MessageType = "ping"
	MsgPong        MessageType = "pong"
)

// Message is the envelope for host<->plugin communication
type Message struct {
	Type   MessageType      `json:"type"`
	Plugin *data.PluginIds  `json:"plugin,omitempty"`
	Event  *EventPayload    `json:"event,omitempty"`
	Events []data.EventType `json:"events,omitempty"`
}

// EventPayload carries a data.Event in its externally tagged JSON form.
type EventPayload struct {
	Event data.Event
}

func (p EventPayload) MarshalJSON() ([]byte, error) {
	return data.MarshalEvent(p.Event)
}

func (p *EventPayload) UnmarshalJSON(b []byte) error {
	ev, err := data.UnmarshalEvent(b)
	if err != nil {
		return err
	}
	p.Event = ev
	return nil
}

// NewEvent wraps an event for delivery.
func NewEvent(ev data.Event) Message {
	return Message{Type: MsgEvent, Event: &EventPayload{Event: ev}}
}

func NewSubscribe(ids data.PluginIds, types ...data.EventType) Message {
	return Message{Type: MsgSubscribe, Plugin: &ids, Events: types}
}

func NewUnsubscribe(ids data.PluginIds, types ...data.EventType) Message {
	return Message{Type: MsgUnsubscribe, Plugin: &ids, Events: types}
}

// Reply returns the pong answering a ping, or false for any other message.
func Reply(m Message) (Message, bool) {
	if m.Type != MsgPing {
		return Message{}, false
	}
	return Message{Type: MsgPong, Plugin: m.Plugin}, true
}

// EventOf returns the carried event, or nil.
func (m Message) EventOf() data.Event {
	if m.Event == nil {
		return nil
	}
	return m.Event.Event
}

// Validate checks that the message carries what its type requires.
func (m Message) Validate() error {
	switch m.Type {
	case MsgEvent:
		if m.EventOf() == nil {
			return ErrMissingEvent
		}
	case MsgSubscribe, MsgUnsubscribe:
		if len(m.Events) == 0 {
			return ErrNoEventTypes
		}
	case MsgPing, MsgPong:
	default:
		return fmt.Errorf("%w %q", ErrUnknownType, m.Type)
	}
	return nil
}

// Marshal encodes a validated message as one JSON line without the newline.
func Marshal(m Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
