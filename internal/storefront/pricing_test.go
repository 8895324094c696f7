package storefront

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectedReward_totalNeverNegative(t *testing.T) {
	require.Equal(t, int64(0), OptionReward{Price: 100, Discount: 500}.Total())
	require.Equal(t, int64(0), FreeReward{Price: -50}.Total())
}

func TestOptionReward_total(t *testing.T) {
	// Discounts are carried but not yet deducted anywhere that builds a
	// selection, so the usual total is the plain option price.
	require.Equal(t, int64(3000), OptionReward{OptionID: 7, Price: 3000}.Total())
	require.Equal(t, int64(2500), OptionReward{Price: 3000, Discount: 500}.Total())
}

func TestFreeReward_request(t *testing.T) {
	req := FreeReward{ProjectID: "p7", Price: 5000}.Request()
	require.Nil(t, req.Option)
	require.NotNil(t, req.Free)
	require.Equal(t, "p7", req.Free.ProjectID)
	require.Equal(t, int64(5000), req.Free.Price)
}

func TestOptionReward_request(t *testing.T) {
	req := OptionReward{OptionID: 7, Price: 3000}.Request()
	require.Nil(t, req.Free)
	require.NotNil(t, req.Option)
	require.Equal(t, int64(7), req.Option.OptionID)
	require.Nil(t, req.Option.CouponID)
}
