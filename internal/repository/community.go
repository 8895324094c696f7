package repository

import (
	"context"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommunityRepository interface {
	CreateAsk(ctx context.Context, ask *entity.Ask) error
	GetAskByID(ctx context.Context, id int64) (*entity.Ask, error)
	GetAsksByProjectID(ctx context.Context, projectID string) ([]entity.Ask, error)
	UpdateAskByID(ctx context.Context, id int64, content string) error
	DeleteAskByID(ctx context.Context, id int64) error

	CreateAnswer(ctx context.Context, answer *entity.Answer) error
	GetAnswerByID(ctx context.Context, id int64) (*entity.Answer, error)
	GetAnswerByAskID(ctx context.Context, askID int64) (*entity.Answer, error)
	GetAnswersByAskIDs(ctx context.Context, askIDs []int64) ([]entity.Answer, error)
	UpdateAnswerByID(ctx context.Context, id int64, content string) error
	DeleteAnswerByID(ctx context.Context, id int64) error
}

type communityRepository struct{}

func NewCommunityRepository() CommunityRepository {
	return &communityRepository{}
}

func (r *communityRepository) CreateAsk(ctx context.Context, ask *entity.Ask) error {
	return xcontext.DB(ctx).Create(ask).Error
}

func (r *communityRepository) GetAskByID(ctx context.Context, id int64) (*entity.Ask, error) {
	var record entity.Ask
	if err := xcontext.DB(ctx).Take(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *communityRepository) GetAsksByProjectID(
	ctx context.Context, projectID string,
) ([]entity.Ask, error) {
	var records []entity.Ask
	err := xcontext.DB(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *communityRepository) UpdateAskByID(ctx context.Context, id int64, content string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Ask{}).
		Where("id = ?", id).
		Update("content", content)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteAskByID removes the ask together with its answer, if any.
func (r *communityRepository) DeleteAskByID(ctx context.Context, id int64) error {
	err := xcontext.DB(ctx).Unscoped().Delete(&entity.Answer{}, "ask_id = ?", id).Error
	if err != nil {
		return err
	}

	return xcontext.DB(ctx).Delete(&entity.Ask{}, "id = ?", id).Error
}

func (r *communityRepository) CreateAnswer(ctx context.Context, answer *entity.Answer) error {
	return xcontext.DB(ctx).Create(answer).Error
}

func (r *communityRepository) GetAnswerByID(ctx context.Context, id int64) (*entity.Answer, error) {
	var record entity.Answer
	if err := xcontext.DB(ctx).Take(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *communityRepository) GetAnswerByAskID(
	ctx context.Context, askID int64,
) (*entity.Answer, error) {
	var record entity.Answer
	if err := xcontext.DB(ctx).Take(&record, "ask_id = ?", askID).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *communityRepository) GetAnswersByAskIDs(
	ctx context.Context, askIDs []int64,
) ([]entity.Answer, error) {
	var records []entity.Answer
	if err := xcontext.DB(ctx).Where("ask_id IN (?)", askIDs).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *communityRepository) UpdateAnswerByID(ctx context.Context, id int64, content string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Answer{}).
		Where("id = ?", id).
		Update("content", content)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteAnswerByID deletes the row for real. A soft-deleted answer would keep
// holding the unique ask_id slot and the owner could never answer again.
func (r *communityRepository) DeleteAnswerByID(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Unscoped().Delete(&entity.Answer{}, "id = ?", id).Error
}
