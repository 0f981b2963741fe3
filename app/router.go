package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// isPath is the RegExp to ensure the routes make sense.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]vane.Handler
}

var _ vane.Registry = (*Router)(nil)
var _ vane.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]vane.Handler),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h vane.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r *Router) Handler(path string) vane.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler(path)
}

// Paths returns all registered paths, in no particular order.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	return paths
}

// Deliver dispatches the message to the handler registered for its path.
func (r *Router) Deliver(info vane.BlockInfo, db vane.KVStore, msg vane.Msg) (*vane.DeliverResult, error) {
	return r.Handler(msg.Path()).Deliver(info, db, msg)
}

// noSuchPathHandler returns a handler that always fails with a not found
// error for the given path.
type noSuchPathHandler string

func (path noSuchPathHandler) Deliver(vane.BlockInfo, vane.KVStore, vane.Msg) (*vane.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}
