package site

import (
	"net/http"

	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/logger"
	"codeberg.org/devfolio/server/internal/seo"
	"github.com/gin-gonic/gin"
)

// Public content reads degrade rather than fail: a CMS outage or a missing
// record produces a 200 with a null (or empty) payload so the site keeps
// rendering with whatever it has.

// responds with {field: value}, replacing value with null when the read
// failed; the failure is logged and swallowed
func respond(c *gin.Context, field string, value any, err error) {
	if err != nil {
		logger.Warn("public content read failed", "section", field, "error", err)
		c.JSON(http.StatusOK, gin.H{field: nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{field: value})
}

// GetSettings godoc
// @Summary Public site settings
// @Tags site
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/site/settings [get]
func GetSettings(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := repo.GetSiteSettings(c.Request.Context())
		respond(c, "siteSettings", settings, err)
	}
}

func GetHero(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		hero, err := repo.GetHeroSection(c.Request.Context())
		respond(c, "heroSection", hero, err)
	}
}

func GetHeroText(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		heroText, err := repo.GetHeroText(c.Request.Context())
		respond(c, "heroText", heroText, err)
	}
}

func GetAbout(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		about, err := repo.GetAboutSection(c.Request.Context())
		respond(c, "aboutSection", about, err)
	}
}

func GetSkills(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		skills, err := repo.GetSkills(c.Request.Context())
		if err == nil && skills == nil {
			skills = []content.Skill{}
		}

		respond(c, "skills", skills, err)
	}
}

func GetCTA(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cta, err := repo.GetCTASection(c.Request.Context())
		respond(c, "ctaSection", cta, err)
	}
}

func GetTestimonials(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := repo.GetTestimonials(c.Request.Context())
		if err == nil && testimonials == nil {
			testimonials = []content.Testimonial{}
		}

		respond(c, "testimonials", testimonials, err)
	}
}

func GetAnnouncementBar(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bar, err := repo.GetAnnouncementBar(c.Request.Context())
		respond(c, "announcementBar", bar, err)
	}
}

func GetNavigation(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		nav, err := repo.GetNavigation(c.Request.Context())
		respond(c, "navigation", nav, err)
	}
}

func GetFooterLinks(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := repo.GetFooterLinks(c.Request.Context())
		if err == nil && links == nil {
			links = []content.FooterLink{}
		}

		respond(c, "footerLinks", links, err)
	}
}

func GetFooter(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		footer, err := repo.GetFooterSection(c.Request.Context())
		respond(c, "footerSection", footer, err)
	}
}

// GetSEO godoc
// @Summary Assembled page metadata for a slug
// @Description Per-page SEO section first, site settings second, static
// @Description defaults last. Never fails; degraded lookups fall through the
// @Description chain.
// @Tags site
// @Produce json
// @Success 200 {object} seo.Metadata
// @Router /api/seo/{slug} [get]
func GetSEO(repo *content.Repository, defaults seo.Fallbacks) gin.HandlerFunc {
	return func(c *gin.Context) {
		metadata := seo.Build(c.Request.Context(), repo, c.Param("slug"), defaults)
		c.JSON(http.StatusOK, metadata)
	}
}
