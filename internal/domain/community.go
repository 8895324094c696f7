package domain

import (
	"context"
	"errors"

	"github.com/cofund-lab/backend/internal/common"
	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/model"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommunityDomain interface {
	GetList(context.Context, *model.GetCommunityRequest) (*model.GetCommunityResponse, error)
	CreateAsk(context.Context, *model.CreateAskRequest) (*model.CreateAskResponse, error)
	UpdateAsk(context.Context, *model.UpdateAskRequest) (*model.UpdateAskResponse, error)
	DeleteAsk(context.Context, *model.DeleteAskRequest) (*model.DeleteAskResponse, error)
	CreateAnswer(context.Context, *model.CreateAnswerRequest) (*model.CreateAnswerResponse, error)
	UpdateAnswer(context.Context, *model.UpdateAnswerRequest) (*model.UpdateAnswerResponse, error)
	DeleteAnswer(context.Context, *model.DeleteAnswerRequest) (*model.DeleteAnswerResponse, error)
}

type communityDomain struct {
	communityRepo repository.CommunityRepository
	projectRepo   repository.ProjectRepository
	ownerVerifier *common.ProjectOwnerVerifier
}

func NewCommunityDomain(
	communityRepo repository.CommunityRepository,
	projectRepo repository.ProjectRepository,
) CommunityDomain {
	return &communityDomain{
		communityRepo: communityRepo,
		projectRepo:   projectRepo,
		ownerVerifier: common.NewProjectOwnerVerifier(projectRepo),
	}
}

func (d *communityDomain) GetList(
	ctx context.Context, req *model.GetCommunityRequest,
) (*model.GetCommunityResponse, error) {
	asks, err := d.communityRepo.GetAsksByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ask list: %v", err)
		return nil, errorx.Unknown
	}

	askIDs := make([]int64, 0, len(asks))
	for i := range asks {
		askIDs = append(askIDs, asks[i].ID)
	}

	answers, err := d.communityRepo.GetAnswersByAskIDs(ctx, askIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get answer list: %v", err)
		return nil, errorx.Unknown
	}

	answerByAskID := map[int64]*entity.Answer{}
	for i := range answers {
		answerByAskID[answers[i].AskID] = &answers[i]
	}

	entries := []model.CommunityEntry{}
	for i := range asks {
		entry := model.CommunityEntry{Ask: convertAsk(&asks[i])}
		if answer, ok := answerByAskID[asks[i].ID]; ok {
			converted := convertAnswer(answer)
			entry.Answer = &converted
		}

		entries = append(entries, entry)
	}

	return &model.GetCommunityResponse{Entries: entries}, nil
}

func (d *communityDomain) CreateAsk(
	ctx context.Context, req *model.CreateAskRequest,
) (*model.CreateAskResponse, error) {
	if err := checkContent(req.Content); err != nil {
		return nil, err
	}

	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	ask := &entity.Ask{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		ProjectID:     req.ProjectID,
		AuthorID:      xcontext.RequestUserID(ctx),
		Content:       req.Content,
	}

	if err := d.communityRepo.CreateAsk(ctx, ask); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create ask: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateAskResponse{Ask: convertAsk(ask)}, nil
}

// UpdateAsk is allowed for the ask's author only; not even the project owner
// may rewrite someone else's question.
func (d *communityDomain) UpdateAsk(
	ctx context.Context, req *model.UpdateAskRequest,
) (*model.UpdateAskResponse, error) {
	if err := checkContent(req.Content); err != nil {
		return nil, err
	}

	ask, err := d.communityRepo.GetAskByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found ask")
		}

		xcontext.Logger(ctx).Errorf("Cannot get ask: %v", err)
		return nil, errorx.Unknown
	}

	if ask.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can edit an ask")
	}

	if err := d.communityRepo.UpdateAskByID(ctx, req.ID, req.Content); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update ask: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateAskResponse{}, nil
}

// DeleteAsk is allowed for the ask's author or the project owner.
func (d *communityDomain) DeleteAsk(
	ctx context.Context, req *model.DeleteAskRequest,
) (*model.DeleteAskResponse, error) {
	ask, err := d.communityRepo.GetAskByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found ask")
		}

		xcontext.Logger(ctx).Errorf("Cannot get ask: %v", err)
		return nil, errorx.Unknown
	}

	if ask.AuthorID != xcontext.RequestUserID(ctx) {
		if err := d.ownerVerifier.Verify(ctx, ask.ProjectID); err != nil {
			xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
			return nil, errorx.New(errorx.PermissionDenied, "Only the author or project owner can delete an ask")
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.communityRepo.DeleteAskByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete ask: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.DeleteAskResponse{}, nil
}

func (d *communityDomain) CreateAnswer(
	ctx context.Context, req *model.CreateAnswerRequest,
) (*model.CreateAnswerResponse, error) {
	if err := checkContent(req.Content); err != nil {
		return nil, err
	}

	ask, err := d.communityRepo.GetAskByID(ctx, req.AskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found ask")
		}

		xcontext.Logger(ctx).Errorf("Cannot get ask: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownerVerifier.Verify(ctx, ask.ProjectID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only project owner can answer")
	}

	_, err = d.communityRepo.GetAnswerByAskID(ctx, req.AskID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get answer of ask: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.AlreadyExists, "This ask already has an answer")
	}

	answer := &entity.Answer{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		AskID:         req.AskID,
		Content:       req.Content,
	}

	if err := d.communityRepo.CreateAnswer(ctx, answer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create answer: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateAnswerResponse{Answer: convertAnswer(answer)}, nil
}

func (d *communityDomain) UpdateAnswer(
	ctx context.Context, req *model.UpdateAnswerRequest,
) (*model.UpdateAnswerResponse, error) {
	if err := checkContent(req.Content); err != nil {
		return nil, err
	}

	if err := d.verifyAnswerOwner(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := d.communityRepo.UpdateAnswerByID(ctx, req.ID, req.Content); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update answer: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateAnswerResponse{}, nil
}

func (d *communityDomain) DeleteAnswer(
	ctx context.Context, req *model.DeleteAnswerRequest,
) (*model.DeleteAnswerResponse, error) {
	if err := d.verifyAnswerOwner(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := d.communityRepo.DeleteAnswerByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete answer: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteAnswerResponse{}, nil
}

// verifyAnswerOwner resolves an answer back to its project and checks that
// the request user owns that project. Every answer mutation goes through it.
func (d *communityDomain) verifyAnswerOwner(ctx context.Context, answerID int64) error {
	answer, err := d.communityRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found answer")
		}

		xcontext.Logger(ctx).Errorf("Cannot get answer: %v", err)
		return errorx.Unknown
	}

	ask, err := d.communityRepo.GetAskByID(ctx, answer.AskID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ask of answer: %v", err)
		return errorx.Unknown
	}

	if err := d.ownerVerifier.Verify(ctx, ask.ProjectID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return errorx.New(errorx.PermissionDenied, "Only project owner can manage answers")
	}

	return nil
}
