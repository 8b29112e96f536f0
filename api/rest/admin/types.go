package admin

import (
	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/content"
)

type AnalyticsResponse struct {
	Analytics []analytics.Record `json:"analytics"`
}

type SiteSettingsResponse struct {
	SiteSettings *content.SiteSettings `json:"siteSettings"`
}

type HeroTextResponse struct {
	HeroText *content.HeroText `json:"heroText"`
}

type AnnouncementBarResponse struct {
	AnnouncementBar *content.AnnouncementBar `json:"announcementBar"`
}

type AboutSectionResponse struct {
	AboutSection *content.AboutSection `json:"aboutSection"`
}

type SkillsResponse struct {
	Skills []content.Skill `json:"skills"`
}

// bulk skill update payload; entries without an id are ignored
type SkillsUpdateRequest struct {
	Skills []content.SkillUpdate `json:"skills"`
}
