package model

// FundingOption and FreeFunding are the two arms of a contribution request.
// Exactly one of them is non-nil in CreateFundingRequest.
type FundingOption struct {
	OptionID int64  `json:"optionId"`
	CouponID *int64 `json:"couponId"`
}

type FreeFunding struct {
	Price     int64  `json:"price"`
	ProjectID string `json:"projectId"`
}

type CreateFundingRequest struct {
	Option *FundingOption `json:"option"`
	Free   *FreeFunding   `json:"free"`
}

type Funding struct {
	ID        int64  `json:"id"`
	ProjectID string `json:"projectId"`
	OptionID  *int64 `json:"optionId"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt"`
}

type CreateFundingResponse struct {
	Funding Funding `json:"funding"`
}
