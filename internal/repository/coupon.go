package repository

import (
	"context"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id int64) (*entity.Coupon, error)
}

type couponRepository struct{}

func NewCouponRepository() CouponRepository {
	return &couponRepository{}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return xcontext.DB(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id int64) (*entity.Coupon, error) {
	var record entity.Coupon
	if err := xcontext.DB(ctx).Take(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
