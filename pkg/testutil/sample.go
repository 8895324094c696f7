package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/xcontext"
)

// SampleProject creates a project with randomized fields, overwritten by any
// non-zero field of init. It returns the created sample.
func SampleProject(ctx context.Context, init *entity.Project) (entity.Project, error) {
	projectRepo := repository.NewProjectRepository(&MockRedisClient{})

	sample := &entity.Project{
		Base:         entity.Base{ID: uuid.NewString()},
		CreatedBy:    User1ID,
		Title:        uuid.NewString(),
		Summary:      []byte(uuid.NewString()),
		TargetAmount: 10000,
		Status:       entity.ProjectProgress,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := projectRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleRewardOption(ctx context.Context, init *entity.RewardOption) (entity.RewardOption, error) {
	optionRepo := repository.NewRewardOptionRepository()

	sample := &entity.RewardOption{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		ProjectID:     Project1ID,
		Price:         1000,
		Description:   uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := optionRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func SampleCoupon(ctx context.Context, init *entity.Coupon) (entity.Coupon, error) {
	couponRepo := repository.NewCouponRepository()

	sample := &entity.Coupon{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.Snowflake(ctx).Generate().Int64()},
		UserID:        User1ID,
		Discount:      500,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := couponRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
