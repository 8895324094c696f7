package model

type Ask struct {
	ID        int64  `json:"id"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type Answer struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type CommunityEntry struct {
	Ask    Ask     `json:"ask"`
	Answer *Answer `json:"answer"`
}

type GetCommunityRequest struct {
	ProjectID string `param:"projectId"`
}

type GetCommunityResponse struct {
	Entries []CommunityEntry `json:"entries"`
}

type CreateAskRequest struct {
	ProjectID string `param:"projectId"`
	Content   string `json:"content"`
}

type CreateAskResponse struct {
	Ask Ask `json:"ask"`
}

type CreateAnswerRequest struct {
	AskID   int64  `param:"askId"`
	Content string `json:"content"`
}

type CreateAnswerResponse struct {
	Answer Answer `json:"answer"`
}

type UpdateAskRequest struct {
	ID      int64  `param:"id"`
	Content string `json:"content"`
}

type UpdateAskResponse struct{}

type UpdateAnswerRequest struct {
	ID      int64  `param:"id"`
	Content string `json:"content"`
}

type UpdateAnswerResponse struct{}

type DeleteAskRequest struct {
	ID int64 `param:"id"`
}

type DeleteAskResponse struct{}

type DeleteAnswerRequest struct {
	ID int64 `param:"id"`
}

type DeleteAnswerResponse struct{}
