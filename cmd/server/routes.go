package main

import (
	"codeberg.org/devfolio/server/api/rest/admin"
	analyticsapi "codeberg.org/devfolio/server/api/rest/analytics"
	authapi "codeberg.org/devfolio/server/api/rest/auth"
	"codeberg.org/devfolio/server/api/rest/blog"
	"codeberg.org/devfolio/server/api/rest/casestudies"
	"codeberg.org/devfolio/server/api/rest/health"
	"codeberg.org/devfolio/server/api/rest/projects"
	"codeberg.org/devfolio/server/api/rest/site"
	"codeberg.org/devfolio/server/api/rest/track"
	"codeberg.org/devfolio/server/internal/metrics"
	"codeberg.org/devfolio/server/internal/seo"
	"github.com/gin-gonic/gin"
)

// static metadata defaults for pages with no SEO section and no site settings
var seoDefaults = seo.Fallbacks{
	Title:       "Portfolio",
	Description: "Personal portfolio and blog",
}

func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))

	router.GET("/health", health.Handler)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.GET("/ping", health.PingHandler)

		track.RegisterRoutes(api, server.dispatcher)
		analyticsapi.RegisterRoutes(api, server.analytics)
		site.RegisterRoutes(api, server.contentPublic, seoDefaults)
		projects.RegisterRoutes(api, server.catalog)
		blog.RegisterRoutes(api, server.catalog)
		casestudies.RegisterRoutes(api, server.catalog)
		authapi.RegisterRoutes(api, server.config, nil)

		// nil validator means the default cookie/Bearer session check
		admin.RegisterRoutes(api, server.analytics, server.contentAdmin, nil)
	}
}
