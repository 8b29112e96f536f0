package content

import (
	"time"

	"codeberg.org/devfolio/server/internal/hygraph"
)

// proxies singleton and collection content records at the CMS
type Repository struct {
	cms *hygraph.Client
}

// a CMS-hosted file reference
type Asset struct {
	URL *string `json:"url"`
}

type SiteSettings struct {
	ID              string     `json:"id"`
	SingletonID     string     `json:"singletonId"`
	SiteTitle       *string    `json:"siteTitle"`
	SiteDescription *string    `json:"siteDescription"`
	LogoText        *string    `json:"logoText"`
	FooterAbout     *string    `json:"footerAbout"`
	GithubURL       *string    `json:"githubUrl"`
	LinkedinURL     *string    `json:"linkedinUrl"`
	TwitterURL      *string    `json:"twitterUrl"`
	Email           *string    `json:"email"`
	Stage           *string    `json:"stage,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// editable fields of the site settings singleton. Omitted fields are written
// back as null - admin writes are a full replace, not a patch
type SiteSettingsUpdate struct {
	SiteTitle       *string `json:"siteTitle"`
	SiteDescription *string `json:"siteDescription"`
	LogoText        *string `json:"logoText"`
	FooterAbout     *string `json:"footerAbout"`
	GithubURL       *string `json:"githubUrl"`
	LinkedinURL     *string `json:"linkedinUrl"`
	TwitterURL      *string `json:"twitterUrl"`
	Email           *string `json:"email"`
}

type HeroText struct {
	ID          string     `json:"id"`
	SingletonID string     `json:"singletonId"`
	Heading     *string    `json:"heading"`
	SubHeading  *string    `json:"subHeading"`
	ButtonText  *string    `json:"buttonText"`
	Stage       *string    `json:"stage,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type HeroTextUpdate struct {
	Heading    *string `json:"heading"`
	SubHeading *string `json:"subHeading"`
	ButtonText *string `json:"buttonText"`
}

type AnnouncementBar struct {
	ID              string     `json:"id"`
	IsVisible       *bool      `json:"isVisible"`
	Message         *string    `json:"message"`
	LinkText        *string    `json:"linkText"`
	LinkURL         *string    `json:"linkUrl"`
	BackgroundColor *string    `json:"backgroundColor"`
	TextColor       *string    `json:"textColor"`
	Stage           *string    `json:"stage,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type AnnouncementBarUpdate struct {
	IsVisible       *bool   `json:"isVisible"`
	Message         *string `json:"message"`
	LinkText        *string `json:"linkText"`
	LinkURL         *string `json:"linkUrl"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
}

type AboutSection struct {
	ID               string     `json:"id"`
	IsVisible        *bool      `json:"isVisible"`
	Title            *string    `json:"title"`
	ShortDescription *string    `json:"shortDescription"`
	LongDescription  *string    `json:"longDescription"`
	ResumeButtonText *string    `json:"resumeButtonText"`
	ResumeLink       *string    `json:"resumeLink"`
	ProfileImage     *Asset     `json:"profileImage"`
	Stage            *string    `json:"stage,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

type AboutSectionUpdate struct {
	IsVisible        *bool   `json:"isVisible"`
	Title            *string `json:"title"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	ResumeButtonText *string `json:"resumeButtonText"`
	ResumeLink       *string `json:"resumeLink"`
}

type Skill struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Level     *int    `json:"level"`
	Category  *string `json:"category"`
	IsVisible *bool   `json:"isVisible"`
	Icon      *Asset  `json:"icon,omitempty"`
}

type SkillUpdate struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Level     *int    `json:"level"`
	Category  *string `json:"category"`
	IsVisible *bool   `json:"isVisible"`
}

// public-read-only sections below

type HeroSection struct {
	SingletonID         string  `json:"singletonId"`
	BadgeText           *string `json:"badgeText"`
	HeadingLine1        *string `json:"headingLine1"`
	HeadingHighlight    *string `json:"headingHighlight"`
	Subheading          *string `json:"subheading"`
	PrimaryButtonText   *string `json:"primaryButtonText"`
	PrimaryButtonHref   *string `json:"primaryButtonHref"`
	SecondaryButtonText *string `json:"secondaryButtonText"`
	SecondaryButtonHref *string `json:"secondaryButtonHref"`
	HeroImageURL        *Asset  `json:"heroImageUrl"`
}

type CTASection struct {
	IsVisible       *bool   `json:"isVisible"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ButtonText      *string `json:"buttonText"`
	ButtonLink      *string `json:"buttonLink"`
	BackgroundColor *string `json:"backgroundColor"`
}

type Testimonial struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Message *string `json:"message"`
	Photo   *Asset  `json:"photo"`
}

type NavigationLink struct {
	Label *string `json:"label"`
	Href  *string `json:"href"`
	Order *int    `json:"order"`
}

type Navigation struct {
	SingletonID string           `json:"singletonId"`
	Links       []NavigationLink `json:"links"`
}

type FooterLink struct {
	Group *string `json:"group"`
	Label *string `json:"label"`
	Href  *string `json:"href"`
	Order *int    `json:"order"`
}

type FooterSection struct {
	IsVisible  *bool   `json:"isVisible"`
	FooterText *string `json:"footerText"`
	QuickLinks []struct {
		Label *string `json:"label"`
		Slug  *string `json:"slug"`
	} `json:"quickLinks"`
	SocialLinks *struct {
		Github    *string `json:"github"`
		Linkedin  *string `json:"linkedin"`
		Twitter   *string `json:"twitter"`
		Instagram *string `json:"instagram"`
	} `json:"socialLinks"`
	ContactInfo *struct {
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	} `json:"contactInfo"`
}

type SEOSection struct {
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Keywords        *string `json:"keywords"`
	OGImage         *Asset  `json:"ogImage"`
	URL             *string `json:"url"`
}
