package model

type Project struct {
	ID              string `json:"id"`
	OwnerID         string `json:"ownerId"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Thumbnail       string `json:"thumbnail"`
	TargetAmount    int64  `json:"targetAmount"`
	CollectedAmount int64  `json:"collectedAmount"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

type GetProjectRequest struct {
	ProjectID string `param:"projectId"`
}

type GetProjectResponse struct {
	Project Project `json:"project"`
}

type GetProjectsRequest struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

type GetProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type SetProjectStatusRequest struct {
	ProjectID string `param:"projectId"`
	Status    string `query:"status"`
}

type SetProjectStatusResponse struct{}
