package authenticator_test

import (
	"testing"
	"time"

	"github.com/cofund-lab/backend/config"
	"github.com/cofund-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type tokenObject struct {
	ID string `json:"id"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenObject{ID: "user1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "secret",
		Expiration: -time.Minute,
	})

	token, err := engine.Generate("user1", tokenObject{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
