package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cofund-lab/backend/internal/model"
)

func TestRewardCatalog_loadOnlyWhenStale(t *testing.T) {
	fetches := 0
	caller := &fakeCaller{
		ListRewardOptionsFunc: func(ctx context.Context, projectID string) ([]model.RewardOption, error) {
			fetches++
			return []model.RewardOption{{ID: 1, Price: 3000}}, nil
		},
	}

	catalog := NewRewardCatalog(caller, "p1")

	_, err := catalog.Load(context.Background())
	require.NoError(t, err)
	_, err = catalog.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, fetches)

	// Several invalidations in a row still cost one reload.
	catalog.Invalidate()
	catalog.Invalidate()
	catalog.Invalidate()

	_, err = catalog.Load(context.Background())
	require.NoError(t, err)
	_, err = catalog.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, fetches)
}

func TestRewardCatalog_failedFetchStaysStale(t *testing.T) {
	failing := true
	caller := &fakeCaller{
		ListRewardOptionsFunc: func(ctx context.Context, projectID string) ([]model.RewardOption, error) {
			if failing {
				return nil, errors.New("service unavailable")
			}
			return []model.RewardOption{{ID: 1}}, nil
		},
	}

	catalog := NewRewardCatalog(caller, "p1")

	_, err := catalog.Load(context.Background())
	require.Error(t, err)

	failing = false
	options, err := catalog.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
}

func TestRewardCatalog_option(t *testing.T) {
	caller := &fakeCaller{
		ListRewardOptionsFunc: func(ctx context.Context, projectID string) ([]model.RewardOption, error) {
			return []model.RewardOption{{ID: 1, Price: 3000}, {ID: 2, Price: 9000}}, nil
		},
	}

	catalog := NewRewardCatalog(caller, "p1")
	_, err := catalog.Load(context.Background())
	require.NoError(t, err)

	option, ok := catalog.Option(2)
	require.True(t, ok)
	require.Equal(t, int64(9000), option.Price)

	_, ok = catalog.Option(3)
	require.False(t, ok)
}
