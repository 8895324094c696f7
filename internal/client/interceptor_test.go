package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cofund-lab/backend/pkg/api"
	"github.com/cofund-lab/backend/pkg/errorx"
)

func TestAuthExpiredInterceptor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "You need to authenticate before", "data": nil,
		})
	}))
	defer srv.Close()

	expired := false
	generator := api.NewGenerator(srv.URL).Intercept(
		NewAuthExpiredInterceptor(func() { expired = true }))

	caller := NewStoreCaller(generator, "stale-token")
	_, err := caller.GetProjects(context.Background())

	require.True(t, expired)
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Authorization expired"), err)
}

func TestAuthExpiredInterceptor_ignoresOtherCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Permission denied", "data": nil,
		})
	}))
	defer srv.Close()

	expired := false
	generator := api.NewGenerator(srv.URL).Intercept(
		NewAuthExpiredInterceptor(func() { expired = true }))

	caller := NewStoreCaller(generator, "token")
	err := caller.SetProjectStatus(context.Background(), "p1", "STOPPED")

	require.False(t, expired)
	require.EqualError(t, err, "Permission denied")
}
