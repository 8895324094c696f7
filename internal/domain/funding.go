package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/model"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/errorx"
	"github.com/cofund-lab/backend/pkg/xcontext"
	mathutil "github.com/pkg/math"
	"gorm.io/gorm"
)

type FundingDomain interface {
	Create(context.Context, *model.CreateFundingRequest) (*model.CreateFundingResponse, error)
}

type fundingDomain struct {
	fundingRepo      repository.FundingRepository
	rewardOptionRepo repository.RewardOptionRepository
	projectRepo      repository.ProjectRepository
	couponRepo       repository.CouponRepository
}

func NewFundingDomain(
	fundingRepo repository.FundingRepository,
	rewardOptionRepo repository.RewardOptionRepository,
	projectRepo repository.ProjectRepository,
	couponRepo repository.CouponRepository,
) FundingDomain {
	return &fundingDomain{
		fundingRepo:      fundingRepo,
		rewardOptionRepo: rewardOptionRepo,
		projectRepo:      projectRepo,
		couponRepo:       couponRepo,
	}
}

func (d *fundingDomain) Create(
	ctx context.Context, req *model.CreateFundingRequest,
) (*model.CreateFundingResponse, error) {
	if req.Option == nil && req.Free == nil {
		return nil, errorx.New(errorx.BadRequest, "Need a reward option or a free contribution")
	}

	if req.Option != nil && req.Free != nil {
		return nil, errorx.New(errorx.BadRequest, "Cannot fund an option and a free contribution at once")
	}

	funding := &entity.Funding{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		UserID:        xcontext.RequestUserID(ctx),
	}

	if req.Option != nil {
		option, err := d.rewardOptionRepo.GetByID(ctx, req.Option.OptionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found reward option")
			}

			xcontext.Logger(ctx).Errorf("Cannot get reward option: %v", err)
			return nil, errorx.Unknown
		}

		// The coupon is verified and recorded, but its discount is not
		// applied to the paid price yet. The selector in the storefront is
		// a stub too; both sides pin the discount to zero.
		discount := int64(0)
		if req.Option.CouponID != nil {
			coupon, err := d.couponRepo.GetByID(ctx, *req.Option.CouponID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, errorx.New(errorx.NotFound, "Not found coupon")
				}

				xcontext.Logger(ctx).Errorf("Cannot get coupon: %v", err)
				return nil, errorx.Unknown
			}

			if coupon.UserID != xcontext.RequestUserID(ctx) {
				return nil, errorx.New(errorx.PermissionDenied, "Coupon belongs to another user")
			}

			funding.CouponID = sql.NullInt64{Valid: true, Int64: coupon.ID}
		}

		funding.ProjectID = option.ProjectID
		funding.OptionID = sql.NullInt64{Valid: true, Int64: option.ID}
		funding.Price = mathutil.MaxInt64(0, option.Price-discount)
	} else {
		if req.Free.Price <= 0 {
			return nil, errorx.New(errorx.BadRequest, "Free contribution price must be positive")
		}

		if _, err := d.projectRepo.GetByID(ctx, req.Free.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found project")
			}

			xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
			return nil, errorx.Unknown
		}

		funding.ProjectID = req.Free.ProjectID
		funding.Price = req.Free.Price
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.fundingRepo.Create(ctx, funding); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create funding: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.projectRepo.IncreaseCollectedAmount(ctx, funding.ProjectID, funding.Price); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase collected amount: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.CreateFundingResponse{Funding: convertFunding(funding)}, nil
}
