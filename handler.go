package vane

// Msg is message for the ledger to take an action (make a state transition).
// It is just the request, and must be validated by the Handlers.
type Msg interface {
	// Path is used by the Router to locate the proper Handler.
	Path() string

	// Validate performs stateless checks of the message content.
	Validate() error
}

// Handler is a core engine that can process a few specific messages.
type Handler interface {
	Deliver(info BlockInfo, db KVStore, msg Msg) (*DeliverResult, error)
}

// DeliverResult captures any non-error result of a delivered message.
type DeliverResult struct {
	// Data is a machine-parseable return value.
	Data []byte
	// Log is human-readable informational string.
	Log string
}

// Registry is an interface to register your handler, the setup side of a
// Router.
type Registry interface {
	Handle(path string, h Handler)
}
