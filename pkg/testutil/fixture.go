package testutil

import (
	"context"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/repository"
)

// Well-known fixture ids. Project1 belongs to User1; Admin holds a global
// admin role.
const (
	User1ID = "user1"
	User2ID = "user2"
	AdminID = "admin"

	Project1ID = "user1_project1"
	Project2ID = "user2_project2"
)

// Option1ID and Ask1ID are filled in when the fixture is created.
var (
	Option1ID int64
	Ask1ID    int64
)

// CreateFixture inserts the baseline records every suite shares into the
// database held by ctx.
func CreateFixture(ctx context.Context) {
	insertUsers(ctx)
	insertProjects(ctx)
	insertRewardOptions(ctx)
	insertAsks(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{
		{Base: entity.Base{ID: User1ID}, Name: "user1", Role: entity.RoleUser},
		{Base: entity.Base{ID: User2ID}, Name: "user2", Role: entity.RoleUser},
		{Base: entity.Base{ID: AdminID}, Name: "admin", Role: entity.RoleAdmin},
	} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertProjects(ctx context.Context) {
	projectRepo := repository.NewProjectRepository(&MockRedisClient{})

	for _, project := range []entity.Project{
		{
			Base:         entity.Base{ID: Project1ID},
			CreatedBy:    User1ID,
			Title:        "User1 Project1",
			Summary:      []byte("a wooden game console"),
			TargetAmount: 100000,
			Status:       entity.ProjectProgress,
		},
		{
			Base:         entity.Base{ID: Project2ID},
			CreatedBy:    User2ID,
			Title:        "User2 Project2",
			Summary:      []byte("a ceramic keyboard"),
			TargetAmount: 50000,
			Status:       entity.ProjectPending,
		},
	} {
		project := project
		if err := projectRepo.Create(ctx, &project); err != nil {
			panic(err)
		}
	}
}

func insertRewardOptions(ctx context.Context) {
	optionRepo := repository.NewRewardOptionRepository()

	option := entity.RewardOption{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 1},
		ProjectID:     Project1ID,
		Price:         3000,
		Description:   "One console, early bird",
	}
	if err := optionRepo.Create(ctx, &option); err != nil {
		panic(err)
	}

	Option1ID = option.ID
}

func insertAsks(ctx context.Context) {
	communityRepo := repository.NewCommunityRepository()

	ask := entity.Ask{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 1},
		ProjectID:     Project1ID,
		AuthorID:      User2ID,
		Content:       "Does it ship worldwide?",
	}
	if err := communityRepo.CreateAsk(ctx, &ask); err != nil {
		panic(err)
	}

	Ask1ID = ask.ID
}
