package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/logger"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

type echoRequest struct {
	ID      int64  `param:"id"`
	Verbose bool   `query:"verbose"`
	Name    string `json:"name"`
}

type echoResponse struct {
	ID      int64  `json:"id"`
	Verbose bool   `json:"verbose"`
	Name    string `json:"name"`
}

func baseContext() context.Context {
	return xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE))
}

func TestRouter_bindAndEnvelope(t *testing.T) {
	r := New(baseContext())
	POST(r, "/things/{id}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Verbose: req.Verbose, Name: req.Name}, nil
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(
		srv.URL+"/things/42?verbose=true", "application/json",
		strings.NewReader(`{"name":"widget"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string       `json:"message"`
		Data    echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Success", body.Message)
	require.Equal(t, int64(42), body.Data.ID)
	require.True(t, body.Data.Verbose)
	require.Equal(t, "widget", body.Data.Name)
}

func TestRouter_invalidParamIsBadRequest(t *testing.T) {
	r := New(baseContext())
	POST(r, "/things/{id}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/things/not-a-number", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_errorMapping(t *testing.T) {
	r := New(baseContext())

	type emptyRequest struct{}
	type emptyResponse struct{}

	GET(r, "/missing", func(ctx context.Context, req *emptyRequest) (*emptyResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found project")
	})
	GET(r, "/broken", func(ctx context.Context, req *emptyRequest) (*emptyResponse, error) {
		return nil, errorx.Unknown
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Data    any    `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Not found project", body.Message)
	require.Nil(t, body.Data)

	resp, err = http.Get(srv.URL + "/broken")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRouter_branchKeepsMiddlewareLocal(t *testing.T) {
	type emptyRequest struct{}
	type userResponse struct {
		UserID string `json:"userId"`
	}

	handler := func(ctx context.Context, req *emptyRequest) (*userResponse, error) {
		return &userResponse{UserID: xcontext.RequestUserID(ctx)}, nil
	}

	r := New(baseContext())
	GET(r, "/public", handler)

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return xcontext.WithRequestUserID(ctx, "user1"), nil
	})
	GET(branch, "/private", handler)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	read := func(path string) userResponse {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Data userResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Data
	}

	require.Equal(t, "user1", read("/private").UserID)
	require.Empty(t, read("/public").UserID)
}

func TestRouter_middlewareErrorShortCircuits(t *testing.T) {
	type emptyRequest struct{}
	type emptyResponse struct{}

	handled := false
	r := New(baseContext())
	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})
	GET(branch, "/private", func(ctx context.Context, req *emptyRequest) (*emptyResponse, error) {
		handled = true
		return &emptyResponse{}, nil
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/private")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.False(t, handled)
}
