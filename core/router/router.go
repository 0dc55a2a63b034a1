package router

import (
	"github.com/echoip/echoip/core/wire"
)

// Router dispatches framed requests to handlers by exact method and path
// match. Methods are case-sensitive, as in the protocol. Routes are
// registered during setup, before the server starts serving; dispatch itself
// takes no locks.
type Router struct {
	routes   map[string]wire.Handler
	notFound wire.Handler
}

// Option configures a Router.
type Option func(*Router)

// WithNotFound overrides the handler for unmatched requests.
func WithNotFound(h wire.Handler) Option {
	return func(r *Router) {
		if h != nil {
			r.notFound = h
		}
	}
}

// New creates a Router. Unmatched requests get a plain 404 unless overridden
// with WithNotFound.
func New(opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]wire.Handler),
		notFound: func(*wire.Request) wire.Response {
			return wire.Text(wire.StatusNotFound, "not found")
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle registers a handler for the given method and path. Later
// registrations for the same route replace earlier ones.
func (r *Router) Handle(method, path string, h wire.Handler) {
	if h == nil {
		return
	}
	r.routes[routeKey(method, path)] = h
}

// Get registers a handler for GET requests on the given path.
func (r *Router) Get(path string, h wire.Handler) {
	r.Handle("GET", path, h)
}

// Dispatch routes one framed request to its handler, or to the not-found
// handler when no route matches. It is itself a wire.Handler.
func (r *Router) Dispatch(req *wire.Request) wire.Response {
	if h, ok := r.routes[routeKey(req.Method, req.Path)]; ok {
		return h(req)
	}
	return r.notFound(req)
}

func routeKey(method, path string) string {
	return method + " " + path
}
