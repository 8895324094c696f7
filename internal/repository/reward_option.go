package repository

import (
	"context"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RewardOptionRepository interface {
	Create(ctx context.Context, option *entity.RewardOption) error
	GetByID(ctx context.Context, id int64) (*entity.RewardOption, error)
	GetListByProjectID(ctx context.Context, projectID string) ([]entity.RewardOption, error)
	UpdateByID(ctx context.Context, id int64, price int64, description string) error
	DeleteByID(ctx context.Context, id int64) error
}

type rewardOptionRepository struct{}

func NewRewardOptionRepository() RewardOptionRepository {
	return &rewardOptionRepository{}
}

func (r *rewardOptionRepository) Create(ctx context.Context, option *entity.RewardOption) error {
	return xcontext.DB(ctx).Create(option).Error
}

func (r *rewardOptionRepository) GetByID(ctx context.Context, id int64) (*entity.RewardOption, error) {
	var record entity.RewardOption
	if err := xcontext.DB(ctx).Take(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *rewardOptionRepository) GetListByProjectID(
	ctx context.Context, projectID string,
) ([]entity.RewardOption, error) {
	var records []entity.RewardOption
	err := xcontext.DB(ctx).
		Where("project_id = ?", projectID).
		Order("price ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *rewardOptionRepository) UpdateByID(
	ctx context.Context, id int64, price int64, description string,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.RewardOption{}).
		Where("id = ?", id).
		Updates(map[string]any{"price": price, "description": description})
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *rewardOptionRepository) DeleteByID(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Delete(&entity.RewardOption{}, "id = ?", id).Error
}
