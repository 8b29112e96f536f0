package content

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/devfolio/server/internal/hygraph"
)

const (
	siteSettingsSingletonID = "site"
	heroTextSingletonID     = "heroText"
	navigationSingletonID   = "main"
	heroSectionSingletonID  = "hero"
)

// singleton records must be pre-created at the CMS; this system never creates
// them. The messages carry the remediation hint surfaced on 404s.
var (
	ErrSiteSettingsNotFound    = errors.New("SiteSettings singleton not found. Create a Singleton record with singletonId = site")
	ErrHeroTextNotFound        = errors.New("HeroText not found. Create a HeroText record with singletonId = heroText")
	ErrAnnouncementBarNotFound = errors.New("AnnouncementBar not found. Create at least one AnnouncementBar record")
	ErrAboutSectionNotFound    = errors.New("AboutSection not found. Create at least one AboutSection record")
)

func NewRepository(cms *hygraph.Client) *Repository {
	return &Repository{cms: cms}
}

// converts an optional field for the update payload; nil maps to JSON null
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

// like nullable, but omitted booleans reset to false instead of null
func falsable(p *bool) any {
	if p == nil {
		return false
	}

	return *p
}

func (r *Repository) GetSiteSettings(ctx context.Context) (*SiteSettings, error) {
	var res struct {
		Singletons []SiteSettings `json:"singletons"`
	}

	err := r.cms.Request(ctx, querySiteSettings, map[string]any{
		"singletonId": siteSettingsSingletonID,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}

	if len(res.Singletons) == 0 {
		return nil, ErrSiteSettingsNotFound
	}

	return &res.Singletons[0], nil
}

// full-replace write: every editable field is written, omitted ones as null.
// Publishes the same record before returning the refreshed state.
func (r *Repository) UpdateSiteSettings(ctx context.Context, in SiteSettingsUpdate) (*SiteSettings, error) {
	current, err := r.GetSiteSettings(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"siteTitle":       nullable(in.SiteTitle),
		"siteDescription": nullable(in.SiteDescription),
		"logoText":        nullable(in.LogoText),
		"footerAbout":     nullable(in.FooterAbout),
		"githubUrl":       nullable(in.GithubURL),
		"linkedinUrl":     nullable(in.LinkedinURL),
		"twitterUrl":      nullable(in.TwitterURL),
		"email":           nullable(in.Email),
	}

	if err := r.updateAndPublish(ctx, mutationUpdateSiteSettings, mutationPublishSiteSettings, current.ID, data); err != nil {
		return nil, err
	}

	return r.GetSiteSettings(ctx)
}

func (r *Repository) GetHeroText(ctx context.Context) (*HeroText, error) {
	var res struct {
		HeroTexts []HeroText `json:"heroTexts"`
	}

	err := r.cms.Request(ctx, queryHeroText, map[string]any{
		"singletonId": heroTextSingletonID,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch hero text: %w", err)
	}

	if len(res.HeroTexts) == 0 {
		return nil, ErrHeroTextNotFound
	}

	return &res.HeroTexts[0], nil
}

func (r *Repository) UpdateHeroText(ctx context.Context, in HeroTextUpdate) (*HeroText, error) {
	current, err := r.GetHeroText(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"heading":    nullable(in.Heading),
		"subHeading": nullable(in.SubHeading),
		"buttonText": nullable(in.ButtonText),
	}

	if err := r.updateAndPublish(ctx, mutationUpdateHeroText, mutationPublishHeroText, current.ID, data); err != nil {
		return nil, err
	}

	return r.GetHeroText(ctx)
}

func (r *Repository) GetAnnouncementBar(ctx context.Context) (*AnnouncementBar, error) {
	var res struct {
		AnnouncementBars []AnnouncementBar `json:"announcementBars"`
	}

	if err := r.cms.Request(ctx, queryAnnouncementBar, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch announcement bar: %w", err)
	}

	if len(res.AnnouncementBars) == 0 {
		return nil, ErrAnnouncementBarNotFound
	}

	return &res.AnnouncementBars[0], nil
}

func (r *Repository) UpdateAnnouncementBar(ctx context.Context, in AnnouncementBarUpdate) (*AnnouncementBar, error) {
	current, err := r.GetAnnouncementBar(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"isVisible":       falsable(in.IsVisible),
		"message":         nullable(in.Message),
		"linkText":        nullable(in.LinkText),
		"linkUrl":         nullable(in.LinkURL),
		"backgroundColor": nullable(in.BackgroundColor),
		"textColor":       nullable(in.TextColor),
	}

	if err := r.updateAndPublish(ctx, mutationUpdateAnnouncementBar, mutationPublishAnnouncementBar, current.ID, data); err != nil {
		return nil, err
	}

	return r.GetAnnouncementBar(ctx)
}

func (r *Repository) GetAboutSection(ctx context.Context) (*AboutSection, error) {
	var res struct {
		AboutSections []AboutSection `json:"aboutSections"`
	}

	if err := r.cms.Request(ctx, queryAboutSection, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch about section: %w", err)
	}

	if len(res.AboutSections) == 0 {
		return nil, ErrAboutSectionNotFound
	}

	return &res.AboutSections[0], nil
}

func (r *Repository) UpdateAboutSection(ctx context.Context, in AboutSectionUpdate) (*AboutSection, error) {
	current, err := r.GetAboutSection(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"isVisible":        falsable(in.IsVisible),
		"title":            nullable(in.Title),
		"shortDescription": nullable(in.ShortDescription),
		"longDescription":  nullable(in.LongDescription),
		"resumeButtonText": nullable(in.ResumeButtonText),
		"resumeLink":       nullable(in.ResumeLink),
	}

	if err := r.updateAndPublish(ctx, mutationUpdateAboutSection, mutationPublishAboutSection, current.ID, data); err != nil {
		return nil, err
	}

	return r.GetAboutSection(ctx)
}

func (r *Repository) GetSkills(ctx context.Context) ([]Skill, error) {
	var res struct {
		Skills []Skill `json:"skills"`
	}

	if err := r.cms.Request(ctx, querySkills, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}

	return res.Skills, nil
}

// bulk full-replace update: entries without an id are skipped, each updated
// skill is published individually, then the refreshed list is returned
func (r *Repository) UpdateSkills(ctx context.Context, updates []SkillUpdate) ([]Skill, error) {
	for _, s := range updates {
		if s.ID == "" {
			continue
		}

		data := map[string]any{
			"name":      nullable(s.Name),
			"level":     nullable(s.Level),
			"category":  nullable(s.Category),
			"isVisible": nullable(s.IsVisible),
		}

		if err := r.updateAndPublish(ctx, mutationUpdateSkill, mutationPublishSkill, s.ID, data); err != nil {
			return nil, err
		}
	}

	return r.GetSkills(ctx)
}

// public-facing reads

func (r *Repository) GetHeroSection(ctx context.Context) (*HeroSection, error) {
	var res struct {
		HeroSections []HeroSection `json:"heroSections"`
	}

	err := r.cms.Request(ctx, queryHeroSection, map[string]any{
		"singletonId": heroSectionSingletonID,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch hero section: %w", err)
	}

	if len(res.HeroSections) == 0 {
		return nil, nil
	}

	return &res.HeroSections[0], nil
}

func (r *Repository) GetCTASection(ctx context.Context) (*CTASection, error) {
	var res struct {
		CTAs []CTASection `json:"ctas"`
	}

	if err := r.cms.Request(ctx, queryCTASection, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch cta section: %w", err)
	}

	if len(res.CTAs) == 0 {
		return nil, nil
	}

	return &res.CTAs[0], nil
}

func (r *Repository) GetTestimonials(ctx context.Context) ([]Testimonial, error) {
	var res struct {
		Testimonials []Testimonial `json:"testimonials"`
	}

	if err := r.cms.Request(ctx, queryTestimonials, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	return res.Testimonials, nil
}

func (r *Repository) GetNavigation(ctx context.Context) (*Navigation, error) {
	var res struct {
		Navigation *Navigation `json:"navigation"`
	}

	err := r.cms.Request(ctx, queryNavigation, map[string]any{
		"singletonId": navigationSingletonID,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch navigation: %w", err)
	}

	return res.Navigation, nil
}

func (r *Repository) GetFooterLinks(ctx context.Context) ([]FooterLink, error) {
	var res struct {
		FooterLinks []FooterLink `json:"footerLinks"`
	}

	if err := r.cms.Request(ctx, queryFooterLinks, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch footer links: %w", err)
	}

	return res.FooterLinks, nil
}

func (r *Repository) GetFooterSection(ctx context.Context) (*FooterSection, error) {
	var res struct {
		FooterSections []FooterSection `json:"footerSections"`
	}

	if err := r.cms.Request(ctx, queryFooterSection, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch footer section: %w", err)
	}

	if len(res.FooterSections) == 0 {
		return nil, nil
	}

	return &res.FooterSections[0], nil
}

func (r *Repository) GetSEOSection(ctx context.Context, slug string) (*SEOSection, error) {
	var res struct {
		SEOSections []SEOSection `json:"seoSections"`
	}

	err := r.cms.Request(ctx, querySEOSection, map[string]any{
		"slug": slug,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch seo section: %w", err)
	}

	if len(res.SEOSections) == 0 {
		return nil, nil
	}

	return &res.SEOSections[0], nil
}

// writes the update then immediately publishes the same record so the change
// is visible to public reads without a separate manual publish step
func (r *Repository) updateAndPublish(ctx context.Context, updateMutation, publishMutation, id string, data map[string]any) error {
	err := r.cms.Request(ctx, updateMutation, map[string]any{
		"id":   id,
		"data": data,
	}, nil)

	if err != nil {
		return fmt.Errorf("failed to update record %s: %w", id, err)
	}

	err = r.cms.Request(ctx, publishMutation, map[string]any{
		"id": id,
	}, nil)

	if err != nil {
		return fmt.Errorf("failed to publish record %s: %w", id, err)
	}

	return nil
}
