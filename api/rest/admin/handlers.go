package admin

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// maps a content repository error to the admin response: missing singleton
// records come back as 404 with the remediation hint, everything else is an
// upstream failure
func respondContentError(c *gin.Context, notFound error, message string, err error) {
	if stderrors.Is(err, notFound) {
		errors.NotFound(c, notFound.Error())
		return
	}

	errors.UpstreamError(c, message, err)
}

// ListAnalytics godoc
// @Summary List counters for the admin dashboard
// @Tags admin
// @Produce json
// @Param type query string false "filter by content type"
// @Success 200 {object} AnalyticsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/analytics [get]
func ListAnalytics(service *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := service.List(c.Request.Context(), c.Query("type"), 0)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch analytics", err)
			return
		}

		if records == nil {
			records = []analytics.Record{}
		}

		c.JSON(http.StatusOK, AnalyticsResponse{Analytics: records})
	}
}

// GetSiteSettings godoc
// @Summary Read the site settings singleton
// @Tags admin
// @Produce json
// @Success 200 {object} SiteSettingsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/site-settings [get]
func GetSiteSettings(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := repo.GetSiteSettings(c.Request.Context())
		if err != nil {
			respondContentError(c, content.ErrSiteSettingsNotFound, "failed to fetch site settings", err)
			return
		}

		c.JSON(http.StatusOK, SiteSettingsResponse{SiteSettings: settings})
	}
}

// UpdateSiteSettings godoc
// @Summary Replace the site settings singleton
// @Description Full replace: omitted fields are cleared, then the record is
// @Description published and the refreshed state returned.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} SiteSettingsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/site-settings [put]
func UpdateSiteSettings(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req content.SiteSettingsUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid site settings payload")
			return
		}

		settings, err := repo.UpdateSiteSettings(c.Request.Context(), req)
		if err != nil {
			respondContentError(c, content.ErrSiteSettingsNotFound, "failed to update site settings", err)
			return
		}

		c.JSON(http.StatusOK, SiteSettingsResponse{SiteSettings: settings})
	}
}

// GetHeroText godoc
// @Summary Read the hero text singleton
// @Tags admin
// @Produce json
// @Success 200 {object} HeroTextResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/hero-text [get]
func GetHeroText(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		heroText, err := repo.GetHeroText(c.Request.Context())
		if err != nil {
			respondContentError(c, content.ErrHeroTextNotFound, "failed to fetch hero text", err)
			return
		}

		c.JSON(http.StatusOK, HeroTextResponse{HeroText: heroText})
	}
}

// UpdateHeroText godoc
// @Summary Replace the hero text singleton
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} HeroTextResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/hero-text [put]
func UpdateHeroText(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req content.HeroTextUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid hero text payload")
			return
		}

		heroText, err := repo.UpdateHeroText(c.Request.Context(), req)
		if err != nil {
			respondContentError(c, content.ErrHeroTextNotFound, "failed to update hero text", err)
			return
		}

		c.JSON(http.StatusOK, HeroTextResponse{HeroText: heroText})
	}
}

// GetAnnouncementBar godoc
// @Summary Read the announcement bar
// @Tags admin
// @Produce json
// @Success 200 {object} AnnouncementBarResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/announcement-bar [get]
func GetAnnouncementBar(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bar, err := repo.GetAnnouncementBar(c.Request.Context())
		if err != nil {
			respondContentError(c, content.ErrAnnouncementBarNotFound, "failed to fetch announcement bar", err)
			return
		}

		c.JSON(http.StatusOK, AnnouncementBarResponse{AnnouncementBar: bar})
	}
}

// UpdateAnnouncementBar godoc
// @Summary Replace the announcement bar
// @Description Full replace; an omitted isVisible hides the bar rather than
// @Description leaving it unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} AnnouncementBarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/announcement-bar [put]
func UpdateAnnouncementBar(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req content.AnnouncementBarUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid announcement bar payload")
			return
		}

		bar, err := repo.UpdateAnnouncementBar(c.Request.Context(), req)
		if err != nil {
			respondContentError(c, content.ErrAnnouncementBarNotFound, "failed to update announcement bar", err)
			return
		}

		c.JSON(http.StatusOK, AnnouncementBarResponse{AnnouncementBar: bar})
	}
}

// GetAboutSection godoc
// @Summary Read the about section
// @Tags admin
// @Produce json
// @Success 200 {object} AboutSectionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/about-section [get]
func GetAboutSection(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		about, err := repo.GetAboutSection(c.Request.Context())
		if err != nil {
			respondContentError(c, content.ErrAboutSectionNotFound, "failed to fetch about section", err)
			return
		}

		c.JSON(http.StatusOK, AboutSectionResponse{AboutSection: about})
	}
}

// UpdateAboutSection godoc
// @Summary Replace the about section
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} AboutSectionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/about-section [put]
func UpdateAboutSection(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req content.AboutSectionUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid about section payload")
			return
		}

		about, err := repo.UpdateAboutSection(c.Request.Context(), req)
		if err != nil {
			respondContentError(c, content.ErrAboutSectionNotFound, "failed to update about section", err)
			return
		}

		c.JSON(http.StatusOK, AboutSectionResponse{AboutSection: about})
	}
}

// GetSkills godoc
// @Summary List skills
// @Tags admin
// @Produce json
// @Success 200 {object} SkillsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/skills [get]
func GetSkills(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		skills, err := repo.GetSkills(c.Request.Context())
		if err != nil {
			errors.UpstreamError(c, "failed to fetch skills", err)
			return
		}

		if skills == nil {
			skills = []content.Skill{}
		}

		c.JSON(http.StatusOK, SkillsResponse{Skills: skills})
	}
}

// UpdateSkills godoc
// @Summary Replace skill records in bulk
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} SkillsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/admin/skills [put]
func UpdateSkills(repo *content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SkillsUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid skills payload")
			return
		}

		skills, err := repo.UpdateSkills(c.Request.Context(), req.Skills)
		if err != nil {
			errors.UpstreamError(c, "failed to update skills", err)
			return
		}

		if skills == nil {
			skills = []content.Skill{}
		}

		c.JSON(http.StatusOK, SkillsResponse{Skills: skills})
	}
}
