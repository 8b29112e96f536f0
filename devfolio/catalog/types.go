package catalog

import (
	"encoding/json"
	"time"

	"codeberg.org/devfolio/server/internal/hygraph"
)

// read-only access to the public portfolio collections
type Repository struct {
	cms *hygraph.Client
}

type Project struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	Tags        []string   `json:"tags,omitempty"`
	GithubURL   *string    `json:"githubUrl"`
	LiveURL     *string    `json:"liveUrl"`
	Category    *string    `json:"category"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         *string    `json:"title"`
	Excerpt       *string    `json:"excerpt"`
	CoverImageURL *string    `json:"coverImageUrl"`
	ReadTime      *string    `json:"readTime"`
	PublishedAt   *time.Time `json:"publishedAt"`
	Content       *RichText  `json:"content,omitempty"`
	Screenshots   []string   `json:"screenshots,omitempty"`
}

// rich-text payload as stored at the CMS; Raw is the editor AST
type RichText struct {
	Raw json.RawMessage `json:"raw"`
}

type CaseStudy struct {
	ID               string   `json:"id"`
	Title            *string  `json:"title"`
	ShortDescription *string  `json:"shortDescription"`
	Problem          *string  `json:"problem"`
	Solution         *string  `json:"solution"`
	ResultsOutcome   *string  `json:"resultsOutcome"`
	Challenges       []string `json:"challenges,omitempty"`
	Features         []string `json:"features,omitempty"`
	TechStack        []string `json:"techStack,omitempty"`
	GitHubURL        *string  `json:"gitHubUrl"`
	LiveURL          *string  `json:"liveUrl"`
	Active           *bool    `json:"active"`
	Featured         *bool    `json:"featured"`
	Stage            *string  `json:"stage,omitempty"`
	CoverImage       *struct {
		URL *string `json:"url"`
	} `json:"coverImage"`
}
