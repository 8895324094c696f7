package model

type RewardOption struct {
	ID          int64  `json:"id"`
	ProjectID   string `json:"projectId"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

type GetRewardOptionsRequest struct {
	ProjectID string `param:"projectId"`
}

type GetRewardOptionsResponse struct {
	Options []RewardOption `json:"options"`
}

type CreateRewardOptionRequest struct {
	ProjectID   string `param:"projectId"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

type CreateRewardOptionResponse struct {
	Option RewardOption `json:"option"`
}

type UpdateRewardOptionRequest struct {
	OptionID    int64  `param:"optionId"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

type UpdateRewardOptionResponse struct{}

type DeleteRewardOptionRequest struct {
	OptionID int64 `param:"optionId"`
}

type DeleteRewardOptionResponse struct{}
