package client

import (
	"context"
	"net/http"

	"github.com/cofund-lab/backend/pkg/api"
	"github.com/cofund-lab/backend/pkg/errorx"
)

// NewAuthExpiredInterceptor turns any 401 response into a global
// authorization-expiry signal. The storefront installs it with a callback
// that sends the viewer back to the login page; this package does not
// special-case expiry anywhere else.
func NewAuthExpiredInterceptor(onExpired func()) api.Interceptor {
	return func(ctx context.Context, resp *api.Response) error {
		if resp.Code != http.StatusUnauthorized {
			return nil
		}

		if onExpired != nil {
			onExpired()
		}

		return errorx.New(errorx.Unauthenticated, "Authorization expired")
	}
}
