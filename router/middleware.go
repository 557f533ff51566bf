package router

// Middleware wraps a handler to add cross-cutting behavior before and/or after
// delegating to it. A middleware that returns a response without calling the
// handler it wraps short-circuits everything inside it.
type Middleware func(Handler) Handler

// Compose wraps handler with middlewares. The middleware provided first is the
// "outer" most wrapping: it observes the raw request first and the final
// response last, while the one provided last sits closest to the handler.
func Compose(handler Handler, middlewares ...Middleware) Handler {
	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}

	return wrapped
}
