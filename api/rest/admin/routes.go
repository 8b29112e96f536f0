package admin

import (
	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// every admin route sits behind the session gate; the gate runs before any
// request touches the CMS
func RegisterRoutes(router *gin.RouterGroup, service *analytics.Service, repo *content.Repository, validate auth.SessionValidator) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware(validate))

	admin.GET("/analytics", ListAnalytics(service))

	admin.GET("/site-settings", GetSiteSettings(repo))
	admin.PUT("/site-settings", UpdateSiteSettings(repo))

	admin.GET("/hero-text", GetHeroText(repo))
	admin.PUT("/hero-text", UpdateHeroText(repo))

	admin.GET("/announcement-bar", GetAnnouncementBar(repo))
	admin.PUT("/announcement-bar", UpdateAnnouncementBar(repo))

	admin.GET("/about-section", GetAboutSection(repo))
	admin.PUT("/about-section", UpdateAboutSection(repo))

	admin.GET("/skills", GetSkills(repo))
	admin.PUT("/skills", UpdateSkills(repo))
}
