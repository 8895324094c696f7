package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type GlobalRoleVerifier struct {
	userRepo repository.UserRepository
}

func NewGlobalRoleVerifier(userRepo repository.UserRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{userRepo: userRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.GlobalRole) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if !slices.Contains(requiredRoles, u.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}

// ProjectOwnerVerifier checks that the request user owns a project. The
// client surfaces the same rule as a UX flag, but this is the authoritative
// check.
type ProjectOwnerVerifier struct {
	projectRepo repository.ProjectRepository
}

func NewProjectOwnerVerifier(projectRepo repository.ProjectRepository) *ProjectOwnerVerifier {
	return &ProjectOwnerVerifier{projectRepo: projectRepo}
}

func (verifier *ProjectOwnerVerifier) Verify(ctx context.Context, projectID string) error {
	project, err := verifier.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if project.CreatedBy != xcontext.RequestUserID(ctx) {
		return errors.New("user is not the project owner")
	}

	return nil
}
