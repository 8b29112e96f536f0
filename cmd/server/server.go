package main

import (
	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/beacon"
	"codeberg.org/devfolio/server/internal/config"
	"codeberg.org/devfolio/server/internal/hygraph"
	"github.com/gin-gonic/gin"
)

func NewServer(cfg *config.Config) *Server {
	// the public client reads published content without credentials; the
	// admin client carries the privileged token for mutations
	publicCMS := hygraph.New(cfg.HygraphPublicEndpoint)
	adminCMS := hygraph.NewAdmin(cfg.HygraphAdminEndpoint, cfg.HygraphToken)

	analyticsService := analytics.NewService(adminCMS)

	server := &Server{
		config:        cfg,
		analytics:     analyticsService,
		contentAdmin:  content.NewRepository(adminCMS),
		contentPublic: content.NewRepository(publicCMS),
		catalog:       catalog.NewRepository(publicCMS),
		dispatcher:    beacon.NewDispatcher(analyticsService, 0),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	RegisterRoutes(router, server)
	server.router = router

	return server
}
