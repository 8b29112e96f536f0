package site

import (
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/seo"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo *content.Repository, defaults seo.Fallbacks) {
	site := router.Group("/site")

	site.GET("/settings", GetSettings(repo))
	site.GET("/hero", GetHero(repo))
	site.GET("/hero-text", GetHeroText(repo))
	site.GET("/about", GetAbout(repo))
	site.GET("/skills", GetSkills(repo))
	site.GET("/cta", GetCTA(repo))
	site.GET("/testimonials", GetTestimonials(repo))
	site.GET("/announcement-bar", GetAnnouncementBar(repo))
	site.GET("/navigation", GetNavigation(repo))
	site.GET("/footer-links", GetFooterLinks(repo))
	site.GET("/footer", GetFooter(repo))

	router.GET("/seo/:slug", GetSEO(repo, defaults))
}
