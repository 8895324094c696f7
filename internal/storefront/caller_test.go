package storefront

import (
	"context"
	"errors"

	"github.com/cofund-lab/backend/internal/client"
	"github.com/cofund-lab/backend/internal/model"
)

var errNotImplemented = errors.New("not implemented")

// fakeCaller implements client.StoreCaller with overridable methods so every
// widget can be driven without a server.
type fakeCaller struct {
	SubmitFundingFunc      func(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error)
	ListRewardOptionsFunc  func(ctx context.Context, projectID string) ([]model.RewardOption, error)
	CreateRewardOptionFunc func(ctx context.Context, projectID string, price int64, description string) (*model.RewardOption, error)
	UpdateRewardOptionFunc func(ctx context.Context, optionID int64, price int64, description string) error
	DeleteRewardOptionFunc func(ctx context.Context, optionID int64) error
	GetCommunityFunc       func(ctx context.Context, projectID string) ([]model.CommunityEntry, error)
	CreateAskFunc          func(ctx context.Context, projectID string, content string) (*model.Ask, error)
	CreateAnswerFunc       func(ctx context.Context, askID int64, content string) (*model.Answer, error)
	UpdateEntryFunc        func(ctx context.Context, ref client.EntryRef, content string) error
	DeleteEntryFunc        func(ctx context.Context, ref client.EntryRef) error
	GetProjectFunc         func(ctx context.Context, projectID string) (*model.Project, error)
	GetProjectsFunc        func(ctx context.Context) ([]model.Project, error)
	SetProjectStatusFunc   func(ctx context.Context, projectID string, status string) error
}

func (f *fakeCaller) SubmitFunding(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error) {
	if f.SubmitFundingFunc != nil {
		return f.SubmitFundingFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) ListRewardOptions(ctx context.Context, projectID string) ([]model.RewardOption, error) {
	if f.ListRewardOptionsFunc != nil {
		return f.ListRewardOptionsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) CreateRewardOption(ctx context.Context, projectID string, price int64, description string) (*model.RewardOption, error) {
	if f.CreateRewardOptionFunc != nil {
		return f.CreateRewardOptionFunc(ctx, projectID, price, description)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) UpdateRewardOption(ctx context.Context, optionID int64, price int64, description string) error {
	if f.UpdateRewardOptionFunc != nil {
		return f.UpdateRewardOptionFunc(ctx, optionID, price, description)
	}
	return errNotImplemented
}

func (f *fakeCaller) DeleteRewardOption(ctx context.Context, optionID int64) error {
	if f.DeleteRewardOptionFunc != nil {
		return f.DeleteRewardOptionFunc(ctx, optionID)
	}
	return errNotImplemented
}

func (f *fakeCaller) GetCommunity(ctx context.Context, projectID string) ([]model.CommunityEntry, error) {
	if f.GetCommunityFunc != nil {
		return f.GetCommunityFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) CreateAsk(ctx context.Context, projectID string, content string) (*model.Ask, error) {
	if f.CreateAskFunc != nil {
		return f.CreateAskFunc(ctx, projectID, content)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) CreateAnswer(ctx context.Context, askID int64, content string) (*model.Answer, error) {
	if f.CreateAnswerFunc != nil {
		return f.CreateAnswerFunc(ctx, askID, content)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) UpdateEntry(ctx context.Context, ref client.EntryRef, content string) error {
	if f.UpdateEntryFunc != nil {
		return f.UpdateEntryFunc(ctx, ref, content)
	}
	return errNotImplemented
}

func (f *fakeCaller) DeleteEntry(ctx context.Context, ref client.EntryRef) error {
	if f.DeleteEntryFunc != nil {
		return f.DeleteEntryFunc(ctx, ref)
	}
	return errNotImplemented
}

func (f *fakeCaller) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	if f.GetProjectFunc != nil {
		return f.GetProjectFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) GetProjects(ctx context.Context) ([]model.Project, error) {
	if f.GetProjectsFunc != nil {
		return f.GetProjectsFunc(ctx)
	}
	return nil, errNotImplemented
}

func (f *fakeCaller) SetProjectStatus(ctx context.Context, projectID string, status string) error {
	if f.SetProjectStatusFunc != nil {
		return f.SetProjectStatusFunc(ctx, projectID, status)
	}
	return errNotImplemented
}
