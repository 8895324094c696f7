package main

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bwmarrin/snowflake"
	"github.com/gorilla/sessions"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/cofund-lab/backend/config"
	"github.com/cofund-lab/backend/internal/domain"
	"github.com/cofund-lab/backend/internal/model"
	"github.com/cofund-lab/backend/internal/repository"
	"github.com/cofund-lab/backend/pkg/authenticator"
	"github.com/cofund-lab/backend/pkg/logger"
	"github.com/cofund-lab/backend/pkg/router"
	"github.com/cofund-lab/backend/pkg/xcontext"
	"github.com/cofund-lab/backend/pkg/xredis"
)

type srv struct {
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo         repository.UserRepository
	projectRepo      repository.ProjectRepository
	rewardOptionRepo repository.RewardOptionRepository
	fundingRepo      repository.FundingRepository
	couponRepo       repository.CouponRepository
	communityRepo    repository.CommunityRepository

	projectDomain      domain.ProjectDomain
	rewardOptionDomain domain.RewardOptionDomain
	fundingDomain      domain.FundingDomain
	communityDomain    domain.CommunityDomain

	router *router.Router
}

func (s *srv) loadConfig(ct *cli.Context) {
	path := ct.String("config")
	if _, err := toml.DecodeFile(path, &s.configs); err != nil {
		// Missing file is fine, the environment takes over.
		if !os.IsNotExist(err) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv("DB_HOST"); ok {
		s.configs.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		s.configs.Database.Password = v
	}
	if v, ok := os.LookupEnv("TOKEN_SECRET"); ok {
		s.configs.Auth.AccessToken.Secret = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		s.configs.Redis.Addr = v
	}

	if s.configs.ApiServer.DefaultLimit == 0 {
		s.configs.ApiServer.DefaultLimit = 10
	}
	if s.configs.ApiServer.MaxLimit == 0 {
		s.configs.ApiServer.MaxLimit = 50
	}
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}
	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadContext(ct *cli.Context) {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	ctx = xcontext.WithSnowflake(ctx, node)
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](s.configs.Auth.AccessToken))
	ctx = xcontext.WithSessionStore(ctx,
		sessions.NewCookieStore([]byte(s.configs.Session.Secret)))
	s.ctx = ctx
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.projectRepo = repository.NewProjectRepository(s.redisClient)
	s.rewardOptionRepo = repository.NewRewardOptionRepository()
	s.fundingRepo = repository.NewFundingRepository()
	s.couponRepo = repository.NewCouponRepository()
	s.communityRepo = repository.NewCommunityRepository()
}

func (s *srv) loadDomains() {
	s.projectDomain = domain.NewProjectDomain(s.projectRepo, s.userRepo)
	s.rewardOptionDomain = domain.NewRewardOptionDomain(s.rewardOptionRepo, s.projectRepo)
	s.fundingDomain = domain.NewFundingDomain(
		s.fundingRepo, s.rewardOptionRepo, s.projectRepo, s.couponRepo)
	s.communityDomain = domain.NewCommunityDomain(s.communityRepo, s.projectRepo)
}
