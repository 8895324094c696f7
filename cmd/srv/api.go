package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"

	"github.com/cofund-lab/backend/internal/middleware"
	"github.com/cofund-lab/backend/pkg/router"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadContext(ct)
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	httpSrv := &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: cors.New(cors.Options{
			AllowedOrigins:   s.configs.ApiServer.AllowCORS,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting api server on %s", s.configs.ApiServer.Address())
	if err := httpSrv.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.GET(s.router, "/project", s.projectDomain.GetList)
	router.GET(s.router, "/project/{projectId}", s.projectDomain.Get)
	router.GET(s.router, "/option/{projectId}", s.rewardOptionDomain.GetList)
	router.GET(s.router, "/project/{projectId}/community", s.communityDomain.GetList)

	// These following APIs need authentication with an access token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		// Funding API
		router.POST(authRouter, "/funding", s.fundingDomain.Create)

		// Reward option API
		router.POST(authRouter, "/option/{projectId}", s.rewardOptionDomain.Create)
		router.PUT(authRouter, "/option/{optionId}", s.rewardOptionDomain.Update)
		router.DELETE(authRouter, "/option/{optionId}", s.rewardOptionDomain.Delete)

		// Community API
		router.POST(authRouter, "/project/{projectId}/community", s.communityDomain.CreateAsk)
		router.POST(authRouter, "/project/{askId}/community/answer", s.communityDomain.CreateAnswer)
		router.POST(authRouter, "/project/community/{id}", s.communityDomain.UpdateAsk)
		router.DELETE(authRouter, "/project/community/{id}", s.communityDomain.DeleteAsk)
		router.POST(authRouter, "/project/community/{id}/answer", s.communityDomain.UpdateAnswer)
		router.DELETE(authRouter, "/project/community/{id}/answer", s.communityDomain.DeleteAnswer)

		// Admin API
		router.POST(authRouter, "/admin/project/status/{projectId}", s.projectDomain.SetStatus)
	}
}
