package router

import (
	"context"
	"net/http"

	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

type resultKey struct{}

type result struct {
	response any
	err      error
}

// Response returns what the handler produced, for closers.
func Response(ctx context.Context) any {
	if r, ok := ctx.Value(resultKey{}).(*result); ok {
		return r.response
	}

	return nil
}

// Error returns the error the request ended with, for closers.
func Error(ctx context.Context) error {
	if r, ok := ctx.Value(resultKey{}).(*result); ok {
		return r.err
	}

	return nil
}

func wrapHandler[Request, Response any](
	router *Router, handler HandlerFunc[Request, Response],
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.base, httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		res := &result{}
		ctx = context.WithValue(ctx, resultKey{}, res)

		req := new(Request)
		if err := bindRequest(httpReq, req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			res.err = errorx.New(errorx.BadRequest, "Cannot bind the request")
		}

		if res.err == nil {
			for _, middleware := range router.befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					res.err = err
					break
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}

		if res.err == nil {
			resp, err := handler(ctx, req)
			if err != nil {
				res.err = err
			} else {
				res.response = resp
			}
		}

		writeResponse(ctx, w, res)

		for _, closer := range router.closers {
			closer(ctx)
		}
	})
}
