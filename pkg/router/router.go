package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandlerFunc is implemented by every domain operation.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may replace the request context
// (return nil to keep the current one) or abort the request with an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response envelope was written. It can read the
// handler outcome with Response(ctx) and Error(ctx).
type CloserFunc func(ctx context.Context)

type Router struct {
	mux     chi.Router
	base    context.Context
	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers run on top of the given base context.
// The base context is expected to carry the db, configs, and logger.
func New(ctx context.Context) *Router {
	return &Router{mux: chi.NewRouter(), base: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so route groups can differ in authentication.
func (r *Router) Branch() *Router {
	branch := &Router{mux: r.mux, base: r.base}
	branch.befores = append(branch.befores, r.befores...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Method(http.MethodGet, pattern, wrapHandler(r, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Method(http.MethodPost, pattern, wrapHandler(r, handler))
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Method(http.MethodPut, pattern, wrapHandler(r, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Method(http.MethodDelete, pattern, wrapHandler(r, handler))
}
