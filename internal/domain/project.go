package domain

import (
	"context"
	"errors"

	"github.com/cofund-lab/backend/internal/common"
	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/model"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/enum"
	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProjectDomain interface {
	Get(context.Context, *model.GetProjectRequest) (*model.GetProjectResponse, error)
	GetList(context.Context, *model.GetProjectsRequest) (*model.GetProjectsResponse, error)
	SetStatus(context.Context, *model.SetProjectStatusRequest) (*model.SetProjectStatusResponse, error)
}

type projectDomain struct {
	projectRepo        repository.ProjectRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewProjectDomain(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
) ProjectDomain {
	return &projectDomain{
		projectRepo:        projectRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *projectDomain) Get(
	ctx context.Context, req *model.GetProjectRequest,
) (*model.GetProjectResponse, error) {
	project, err := d.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetProjectResponse{Project: convertProject(project)}, nil
}

func (d *projectDomain) GetList(
	ctx context.Context, req *model.GetProjectsRequest,
) (*model.GetProjectsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	projects, err := d.projectRepo.GetList(ctx, repository.GetListProjectFilter{
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project list: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Project{}
	for i := range projects {
		resp = append(resp, convertProject(&projects[i]))
	}

	return &model.GetProjectsResponse{Projects: resp}, nil
}

// SetStatus is the administrative status mutation. Any status may replace any
// other one; the request fails only on an unknown enum value.
func (d *projectDomain) SetStatus(
	ctx context.Context, req *model.SetProjectStatusRequest,
) (*model.SetProjectStatusResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied to set status: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status, err := enum.ToEnum[entity.ProjectStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	if err := d.projectRepo.UpdateStatusByID(ctx, req.ProjectID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot update project status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetProjectStatusResponse{}, nil
}
