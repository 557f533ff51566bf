// Package router provides an immutable route table with path-parameter matching,
// middleware composition and a dispatch entrypoint converting handler panics
// into 500 responses.
package router

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/method"
	"github.com/samber/lo"
)

// Handler computes a response for a request. It is a plain synchronous
// function: no suspension, timeout or cancellation is defined at this level.
type Handler func(*http.Request) *http.Response

// RouteMatch is a found handler along with the path parameters captured while
// matching the request URI.
type RouteMatch struct {
	Handler Handler
	Params  map[string]string
}

type routeKey struct {
	method  method.Method
	pattern string
}

func (k routeKey) compare(other routeKey) int {
	if k.method != other.method {
		if k.method < other.method {
			return -1
		}

		return 1
	}

	return strings.Compare(k.pattern, other.pattern)
}

type route struct {
	key     routeKey
	pattern *PathPattern
	handler Handler
}

// Router is a persistent mapping from (method, pattern) to handler. The zero
// value is an empty, usable router.
//
// Every registration returns a NEW Router value; the receiver stays intact, so
// readers holding an old value never observe later registrations and need no
// locking. If several goroutines race to register routes into a shared
// variable, serializing those writes is on the caller.
type Router struct {
	// sorted by (method, pattern) and never mutated in place
	routes []route
}

func New() Router {
	return Router{}
}

// Route returns a new router with the (method, pattern) entry inserted, or
// overwritten if it was already registered. It panics on a pattern the matcher
// cannot compile.
func (r Router) Route(m method.Method, pattern string, handler Handler) Router {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}

	entry := route{
		key:     routeKey{method: m, pattern: pattern},
		pattern: compiled,
		handler: handler,
	}

	pos, found := slices.BinarySearchFunc(r.routes, entry, func(a, b route) int {
		return a.key.compare(b.key)
	})

	routes := make([]route, 0, len(r.routes)+1)
	routes = append(routes, r.routes[:pos]...)
	routes = append(routes, entry)
	if found {
		routes = append(routes, r.routes[pos+1:]...)
	} else {
		routes = append(routes, r.routes[pos:]...)
	}

	return Router{routes: routes}
}

func (r Router) Get(pattern string, handler Handler) Router {
	return r.Route(method.GET, pattern, handler)
}

func (r Router) Post(pattern string, handler Handler) Router {
	return r.Route(method.POST, pattern, handler)
}

func (r Router) Head(pattern string, handler Handler) Router {
	return r.Route(method.HEAD, pattern, handler)
}

func (r Router) Put(pattern string, handler Handler) Router {
	return r.Route(method.PUT, pattern, handler)
}

func (r Router) Delete(pattern string, handler Handler) Router {
	return r.Route(method.DELETE, pattern, handler)
}

func (r Router) Options(pattern string, handler Handler) Router {
	return r.Route(method.OPTIONS, pattern, handler)
}

func (r Router) Trace(pattern string, handler Handler) Router {
	return r.Route(method.TRACE, pattern, handler)
}

func (r Router) Connect(pattern string, handler Handler) Router {
	return r.Route(method.CONNECT, pattern, handler)
}

func (r Router) Patch(pattern string, handler Handler) Router {
	return r.Route(method.PATCH, pattern, handler)
}

// Find returns the first entry whose method matches the request and whose
// pattern matches the request URI. "First" follows the table's (method,
// pattern) key order, NOT registration order: two patterns matching the same
// URI tie-break lexicographically. Deterministic, and callers may rely on it.
func (r Router) Find(request *http.Request) (RouteMatch, bool) {
	for _, entry := range r.routes {
		if entry.key.method != request.Method {
			continue
		}

		if params, ok := entry.pattern.Match(request.URI); ok {
			return RouteMatch{Handler: entry.handler, Params: params}, true
		}
	}

	return RouteMatch{}, false
}

// Handle dispatches the request: 404 with a plain text body when no route
// matches, otherwise the matched handler's response. A panicking handler is
// isolated here and converted into a 500 carrying the panic message; nothing
// is retried. Parse errors never reach this point: callers parse first.
func (r Router) Handle(request *http.Request) *http.Response {
	match, found := r.Find(request)
	if !found {
		return http.NotFound().WithText("Route not found")
	}

	return invoke(match.Handler, request)
}

// Routes lists the registered routes as "METHOD pattern" strings, in table
// order. Meant for startup traces and tests.
func (r Router) Routes() []string {
	return lo.Map(r.routes, func(entry route, _ int) string {
		return entry.key.method.String() + " " + entry.key.pattern
	})
}

func invoke(handler Handler, request *http.Request) (resp *http.Response) {
	defer func() {
		if p := recover(); p != nil {
			resp = http.InternalServerError().
				WithText(fmt.Sprintf("Handler error: %v", p))
		}
	}()

	return handler(request)
}
