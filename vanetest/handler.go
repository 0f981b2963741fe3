package vanetest

import "github.com/iov-one/vane"

// Handler is a vane.Handler mock that counts calls and returns configured
// values.
type Handler struct {
	deliverCall int

	DeliverResult vane.DeliverResult
	DeliverErr    error

	// When set, the key value pair is written before returning.
	WriteKey   []byte
	WriteValue []byte
}

var _ vane.Handler = (*Handler)(nil)

func (h *Handler) Deliver(info vane.BlockInfo, db vane.KVStore, msg vane.Msg) (*vane.DeliverResult, error) {
	h.deliverCall++
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return nil, err
		}
	}
	info.EmitEvent(vane.NewEvent("test.delivered").With("path", []byte(msg.Path())))
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// Msg is a vane.Msg mock.
type Msg struct {
	RoutePath string
	Err       error
}

var _ vane.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
