package vane

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Event is a notification emitted by a transaction. Events are published only
// when the transaction that emitted them succeeded.
type Event struct {
	Type       string
	Attributes common.KVPairs
}

// NewEvent returns an event of given type without attributes.
func NewEvent(typ string) Event {
	return Event{Type: typ}
}

// With returns a copy of this event with an attribute appended.
func (e Event) With(key string, value []byte) Event {
	attrs := make(common.KVPairs, len(e.Attributes), len(e.Attributes)+1)
	copy(attrs, e.Attributes)
	e.Attributes = append(attrs, common.KVPair{Key: []byte(key), Value: value})
	return e
}

// Attr returns the value of the first attribute with given key.
func (e Event) Attr(key string) ([]byte, bool) {
	for _, a := range e.Attributes {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return nil, false
}

// EventManager collects events in the order they were emitted.
type EventManager struct {
	events []Event
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

// Emit appends an event.
func (m *EventManager) Emit(e Event) {
	m.events = append(m.events, e)
}

// Events returns all emitted events in emission order.
func (m *EventManager) Events() []Event {
	return m.events
}
