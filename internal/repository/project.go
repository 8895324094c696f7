package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"github.com/cofund-lab/backend/pkg/xredis"
	"gorm.io/gorm"
)

type GetListProjectFilter struct {
	Status entity.ProjectStatus
	Offset int
	Limit  int
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetList(ctx context.Context, filter GetListProjectFilter) ([]entity.Project, error)
	UpdateStatusByID(ctx context.Context, id string, status entity.ProjectStatus) error
	IncreaseCollectedAmount(ctx context.Context, id string, amount int64) error
}

type projectRepository struct {
	redisClient xredis.Client
}

func NewProjectRepository(redisClient xredis.Client) ProjectRepository {
	return &projectRepository{redisClient: redisClient}
}

func (r *projectRepository) cacheKey(projectID string) string {
	return fmt.Sprintf("cache:project:%s", projectID)
}

func (r *projectRepository) cache(ctx context.Context, projects ...entity.Project) {
	redisKV := map[string]any{}
	for _, record := range projects {
		b, err := json.Marshal(record)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot marshal project for cache: %v", err)
			return
		}

		redisKV[r.cacheKey(record.ID)] = b
	}

	if err := r.redisClient.MSet(ctx, redisKV); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot multiple set for project redis: %v", err)
	}
}

func (r *projectRepository) invalidateCache(ctx context.Context, projectID string) {
	if err := r.redisClient.Del(ctx, r.cacheKey(projectID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot delete project cache: %v", err)
	}
}

func (r *projectRepository) fromCache(ctx context.Context, key string) *entity.Project {
	value, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil
	}

	var record entity.Project
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot unmarshal project object: %v", err)
		return nil
	}

	return &record
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return xcontext.DB(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	if record := r.fromCache(ctx, r.cacheKey(id)); record != nil {
		return record, nil
	}

	var record entity.Project
	if err := xcontext.DB(ctx).Take(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, record)
	return &record, nil
}

func (r *projectRepository) GetList(
	ctx context.Context, filter GetListProjectFilter,
) ([]entity.Project, error) {
	tx := xcontext.DB(ctx).Model(&entity.Project{}).
		Offset(filter.Offset).
		Order("created_at DESC")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}

	var records []entity.Project
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *projectRepository) UpdateStatusByID(
	ctx context.Context, id string, status entity.ProjectStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Project{}).
		Where("id = ?", id).
		Update("status", status)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx, id)
	return nil
}

func (r *projectRepository) IncreaseCollectedAmount(
	ctx context.Context, id string, amount int64,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Project{}).
		Where("id = ?", id).
		Update("collected_amount", gorm.Expr("collected_amount + ?", amount))
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx, id)
	return nil
}
