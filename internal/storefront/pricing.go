package storefront

import (
	mathutil "github.com/pkg/math"

	"github.com/cofund-lab/backend/internal/model"
)

// SelectedReward is the contribution the backer picked. It is a closed set:
// either a published reward option or a free-form amount. The unexported
// method keeps outside packages from adding a third arm.
type SelectedReward interface {
	selectedReward()

	// Total is the amount the backer will be charged, never negative.
	Total() int64

	// Request translates the selection into the submit payload.
	Request() *model.CreateFundingRequest
}

type OptionReward struct {
	OptionID int64
	Price    int64
	CouponID *int64
	// Discount is resolved by the coupon selector. The selector is not built
	// yet, so every selection currently carries zero.
	Discount int64
}

func (OptionReward) selectedReward() {}

func (r OptionReward) Total() int64 {
	return mathutil.MaxInt64(0, r.Price-r.Discount)
}

func (r OptionReward) Request() *model.CreateFundingRequest {
	return &model.CreateFundingRequest{
		Option: &model.FundingOption{OptionID: r.OptionID, CouponID: r.CouponID},
	}
}

type FreeReward struct {
	ProjectID string
	Price     int64
}

func (FreeReward) selectedReward() {}

func (r FreeReward) Total() int64 {
	return mathutil.MaxInt64(0, r.Price)
}

func (r FreeReward) Request() *model.CreateFundingRequest {
	return &model.CreateFundingRequest{
		Free: &model.FreeFunding{Price: r.Price, ProjectID: r.ProjectID},
	}
}
