package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

// Every response body has this shape; failures carry the message and a null
// data field.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func statusCode(err errorx.Error) int {
	switch err.Code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeResponse(ctx context.Context, w http.ResponseWriter, res *result) {
	w.Header().Set("Content-Type", "application/json")

	if res.err != nil {
		errx := errorx.Error{}
		if !errors.As(res.err, &errx) {
			errx = errorx.Unknown
		}

		w.WriteHeader(statusCode(errx))
		writeJSON(ctx, w, envelope{Message: errx.Message, Data: nil})
		return
	}

	writeJSON(ctx, w, envelope{Message: "Success", Data: res.response})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, resp envelope) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
