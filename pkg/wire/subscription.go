package wire

import (
	"slices"

	"github.com/b/muxplug/pkg/data"
)

// Subscription is the set of event types a plugin receives. The zero value
// is empty and receives nothing.
type Subscription struct {
	types map[data.EventType]struct{}
}

// NewSubscription returns a subscription to the given types.
func NewSubscription(types ...data.EventType) *Subscription {
	s := &Subscription{}
	s.Subscribe(types...)
	return s
}

func (s *Subscription) Subscribe(types ...data.EventType) {
	if s.types == nil {
		s.types = make(map[data.EventType]struct{}, len(types))
	}
	for _, t := range types {
		s.types[t] = struct{}{}
	}
}

func (s *Subscription) Unsubscribe(types ...data.EventType) {
	for _, t := range types {
		delete(s.types, t)
	}
}

func (s *Subscription) Has(t data.EventType) bool {
	_, ok := s.types[t]
	return ok
}

// Wants reports whether ev should be delivered.
func (s *Subscription) Wants(ev data.Event) bool {
	if ev == nil {
		return false
	}
	return s.Has(ev.Type())
}

// Types returns the subscribed types in declaration order.
func (s *Subscription) Types() []data.EventType {
	out := make([]data.EventType, 0, len(s.types))
	for t := range s.types {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

func (s *Subscription) Len() int {
	return len(s.types)
}

// Apply updates the set from a subscribe or unsubscribe message and reports
// whether m was one.
func (s *Subscription) Apply(m Message) bool {
	switch m.Type {
	case MsgSubscribe:
		s.Subscribe(m.Events...)
	case MsgUnsubscribe:
		s.Unsubscribe(m.Events...)
	default:
		return false
	}
	return true
}
