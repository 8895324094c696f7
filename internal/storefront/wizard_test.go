package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cofund-lab/backend/internal/model"
)

func TestCheckoutWizard_selectionIsExclusive(t *testing.T) {
	w := NewCheckoutWizard(&fakeCaller{}, nil)
	defer w.Close()

	require.NoError(t, w.Select(OptionReward{OptionID: 7, Price: 3000}))
	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))

	// The later pick fully replaces the earlier one.
	free, ok := w.Selection().(FreeReward)
	require.True(t, ok)
	require.Equal(t, int64(500), free.Price)
}

func TestCheckoutWizard_advanceGuards(t *testing.T) {
	w := NewCheckoutWizard(&fakeCaller{}, nil)
	defer w.Close()

	require.ErrorIs(t, w.Advance(), ErrNoSelection)

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 0}))
	require.ErrorIs(t, w.Advance(), ErrInvalidAmount)

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: -10}))
	require.ErrorIs(t, w.Advance(), ErrInvalidAmount)

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))
	require.NoError(t, w.Advance())
	require.Equal(t, ReviewingPayment, w.State())

	// Forward only: no re-selection once on the review step.
	require.ErrorIs(t, w.Select(OptionReward{OptionID: 7, Price: 3000}), ErrWrongState)
	require.ErrorIs(t, w.Advance(), ErrWrongState)
}

func TestCheckoutWizard_termsGateSubmit(t *testing.T) {
	w := NewCheckoutWizard(&fakeCaller{}, []string{"refund", "privacy"})
	defer w.Close()

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))
	require.NoError(t, w.Advance())

	require.ErrorIs(t, w.Submit(context.Background()), ErrTermsNotAccepted)

	require.NoError(t, w.AcceptTerm("refund", true))
	require.ErrorIs(t, w.Submit(context.Background()), ErrTermsNotAccepted)

	require.Error(t, w.AcceptTerm("unknown", true))

	// Unchecking works too.
	require.NoError(t, w.AcceptTerm("refund", false))
	require.ErrorIs(t, w.Submit(context.Background()), ErrTermsNotAccepted)
}

func TestCheckoutWizard_submitSuccess(t *testing.T) {
	var got *model.CreateFundingRequest
	caller := &fakeCaller{
		SubmitFundingFunc: func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
			got = req
			return &model.Funding{ID: 42, ProjectID: "p1", Price: 3000}, nil
		},
	}

	couponID := int64(99)
	w := NewCheckoutWizard(caller, []string{"refund"})
	defer w.Close()

	require.NoError(t, w.Select(OptionReward{OptionID: 7, Price: 3000, CouponID: &couponID}))
	require.NoError(t, w.Advance())
	require.NoError(t, w.AcceptTerm("refund", true))
	require.NoError(t, w.Submit(context.Background()))

	require.Equal(t, Submitted, w.State())
	require.Equal(t, int64(42), w.Receipt().ID)

	require.NotNil(t, got.Option)
	require.Nil(t, got.Free)
	require.Equal(t, int64(7), got.Option.OptionID)
	require.Equal(t, couponID, *got.Option.CouponID)

	// Terminal: nothing moves out of Submitted.
	require.ErrorIs(t, w.Submit(context.Background()), ErrWrongState)
}

func TestCheckoutWizard_submittedHookFiresOnceOnSuccess(t *testing.T) {
	attempts := 0
	caller := &fakeCaller{
		SubmitFundingFunc: func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("temporary failure")
			}
			return &model.Funding{ID: 1}, nil
		},
	}

	fired := 0
	w := NewCheckoutWizard(caller, nil)
	defer w.Close()
	w.OnSubmitted(func() { fired++ })

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))
	require.NoError(t, w.Advance())

	require.Error(t, w.Submit(context.Background()))
	require.Zero(t, fired)

	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, 1, fired)
}

func TestCheckoutWizard_submitFailureReturnsToReview(t *testing.T) {
	refused := errors.New("This project no longer accepts contributions")
	caller := &fakeCaller{
		SubmitFundingFunc: func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
			return nil, refused
		},
	}

	w := NewCheckoutWizard(caller, nil)
	defer w.Close()

	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))
	require.NoError(t, w.Advance())
	require.ErrorIs(t, w.Submit(context.Background()), refused)

	// Back on review with the failure retained, ready to retry.
	require.Equal(t, ReviewingPayment, w.State())
	require.ErrorIs(t, w.SubmitError(), refused)

	caller.SubmitFundingFunc = func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
		return &model.Funding{ID: 1}, nil
	}
	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, Submitted, w.State())
	require.NoError(t, w.SubmitError())
}

func TestCheckoutWizard_closeDiscardsLateResponse(t *testing.T) {
	release := make(chan struct{})
	caller := &fakeCaller{
		SubmitFundingFunc: func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
			<-release
			return &model.Funding{ID: 1}, nil
		},
	}

	w := NewCheckoutWizard(caller, nil)
	require.NoError(t, w.Select(FreeReward{ProjectID: "p1", Price: 500}))
	require.NoError(t, w.Advance())

	result := make(chan error, 1)
	go func() {
		result <- w.Submit(context.Background())
	}()

	w.Close()
	err := <-result
	require.ErrorIs(t, err, context.Canceled)

	// The response arrives after teardown and changes nothing.
	close(release)
	require.NotEqual(t, Submitted, w.State())
	require.Nil(t, w.Receipt())
}
