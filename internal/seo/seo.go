package seo

import (
	"context"
	"strings"
	"sync"

	"codeberg.org/devfolio/server/devfolio/content"
)

// assembled page metadata with fallbacks already applied
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Canonical   string   `json:"canonical,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// caller-supplied defaults used when neither the SEO section nor the site
// settings provide a value
type Fallbacks struct {
	Title       string
	Description string
	OGImageURL  string
}

// builds page metadata for a slug: the per-page SEO section wins, then site
// settings, then the caller's fallbacks. CMS failures degrade to fallbacks
// so metadata assembly never errors.
func Build(ctx context.Context, repo *content.Repository, slug string, fb Fallbacks) Metadata {
	var (
		wg       sync.WaitGroup
		seo      *content.SEOSection
		settings *content.SiteSettings
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		seo, _ = repo.GetSEOSection(ctx, slug) //nolint:errcheck // degrade to fallbacks
	}()

	go func() {
		defer wg.Done()
		settings, _ = repo.GetSiteSettings(ctx) //nolint:errcheck // degrade to fallbacks
	}()

	wg.Wait()

	md := Metadata{
		Title:       fb.Title,
		Description: fb.Description,
		OGImage:     fb.OGImageURL,
	}

	if settings != nil {
		if settings.SiteTitle != nil && *settings.SiteTitle != "" {
			md.Title = *settings.SiteTitle
		}

		if settings.SiteDescription != nil && *settings.SiteDescription != "" {
			md.Description = *settings.SiteDescription
		}
	}

	if seo != nil {
		if seo.MetaTitle != nil && *seo.MetaTitle != "" {
			md.Title = *seo.MetaTitle
		}

		if seo.MetaDescription != nil && *seo.MetaDescription != "" {
			md.Description = *seo.MetaDescription
		}

		md.Keywords = parseKeywords(seo.Keywords)

		if seo.OGImage != nil && seo.OGImage.URL != nil && *seo.OGImage.URL != "" {
			md.OGImage = *seo.OGImage.URL
		}

		if seo.URL != nil && strings.TrimSpace(*seo.URL) != "" {
			md.Canonical = strings.TrimSpace(*seo.URL)
		}
	}

	return md
}

// splits the comma-separated keywords field, dropping empty entries
func parseKeywords(input *string) []string {
	if input == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*input)
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, ",")
	keywords := make([]string, 0, len(parts))

	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}

	if len(keywords) == 0 {
		return nil
	}

	return keywords
}
