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

type RewardOptionDomain interface {
	GetList(context.Context, *model.GetRewardOptionsRequest) (*model.GetRewardOptionsResponse, error)
	Create(context.Context, *model.CreateRewardOptionRequest) (*model.CreateRewardOptionResponse, error)
	Update(context.Context, *model.UpdateRewardOptionRequest) (*model.UpdateRewardOptionResponse, error)
	Delete(context.Context, *model.DeleteRewardOptionRequest) (*model.DeleteRewardOptionResponse, error)
}

type rewardOptionDomain struct {
	rewardOptionRepo repository.RewardOptionRepository
	projectRepo      repository.ProjectRepository
	ownerVerifier    *common.ProjectOwnerVerifier
}

func NewRewardOptionDomain(
	rewardOptionRepo repository.RewardOptionRepository,
	projectRepo repository.ProjectRepository,
) RewardOptionDomain {
	return &rewardOptionDomain{
		rewardOptionRepo: rewardOptionRepo,
		projectRepo:      projectRepo,
		ownerVerifier:    common.NewProjectOwnerVerifier(projectRepo),
	}
}

// GetList is a public read, no authentication required.
func (d *rewardOptionDomain) GetList(
	ctx context.Context, req *model.GetRewardOptionsRequest,
) (*model.GetRewardOptionsResponse, error) {
	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	options, err := d.rewardOptionRepo.GetListByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward option list: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.RewardOption{}
	for i := range options {
		resp = append(resp, convertRewardOption(&options[i]))
	}

	return &model.GetRewardOptionsResponse{Options: resp}, nil
}

func (d *rewardOptionDomain) Create(
	ctx context.Context, req *model.CreateRewardOptionRequest,
) (*model.CreateRewardOptionResponse, error) {
	if _, err := d.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownerVerifier.Verify(ctx, req.ProjectID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only project owner can create a reward option")
	}

	if err := checkRewardOption(req.Price, req.Description); err != nil {
		return nil, err
	}

	option := &entity.RewardOption{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		ProjectID:     req.ProjectID,
		Price:         req.Price,
		Description:   req.Description,
	}

	if err := d.rewardOptionRepo.Create(ctx, option); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward option: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRewardOptionResponse{Option: convertRewardOption(option)}, nil
}

func (d *rewardOptionDomain) Update(
	ctx context.Context, req *model.UpdateRewardOptionRequest,
) (*model.UpdateRewardOptionResponse, error) {
	option, err := d.rewardOptionRepo.GetByID(ctx, req.OptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward option")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward option: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownerVerifier.Verify(ctx, option.ProjectID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only project owner can update a reward option")
	}

	if err := checkRewardOption(req.Price, req.Description); err != nil {
		return nil, err
	}

	if err := d.rewardOptionRepo.UpdateByID(ctx, req.OptionID, req.Price, req.Description); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update reward option: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateRewardOptionResponse{}, nil
}

func (d *rewardOptionDomain) Delete(
	ctx context.Context, req *model.DeleteRewardOptionRequest,
) (*model.DeleteRewardOptionResponse, error) {
	option, err := d.rewardOptionRepo.GetByID(ctx, req.OptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward option")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward option: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownerVerifier.Verify(ctx, option.ProjectID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only project owner can delete a reward option")
	}

	if err := d.rewardOptionRepo.DeleteByID(ctx, req.OptionID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete reward option: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteRewardOptionResponse{}, nil
}
