package repository

import (
	"context"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

type FundingRepository interface {
	Create(ctx context.Context, funding *entity.Funding) error
	GetListByUserID(ctx context.Context, userID string) ([]entity.Funding, error)
}

type fundingRepository struct{}

func NewFundingRepository() FundingRepository {
	return &fundingRepository{}
}

func (r *fundingRepository) Create(ctx context.Context, funding *entity.Funding) error {
	return xcontext.DB(ctx).Create(funding).Error
}

func (r *fundingRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.Funding, error) {
	var records []entity.Funding
	err := xcontext.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
