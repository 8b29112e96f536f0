package catalog

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/devfolio/server/internal/hygraph"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrBlogPostNotFound  = errors.New("blog post not found")
	ErrCaseStudyNotFound = errors.New("case study not found")
)

func NewRepository(cms *hygraph.Client) *Repository {
	return &Repository{cms: cms}
}

func (r *Repository) ListProjects(ctx context.Context) ([]Project, error) {
	var res struct {
		Projects []Project `json:"projects"`
	}

	if err := r.cms.Request(ctx, queryProjects, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return res.Projects, nil
}

// looks up a project by id, falling back to the plural query when the
// singular lookup returns nothing
func (r *Repository) GetProject(ctx context.Context, id string) (*Project, error) {
	var res struct {
		Project *Project `json:"project"`
	}

	err := r.cms.Request(ctx, queryProjectByID, map[string]any{"id": id}, &res)
	if err == nil && res.Project != nil {
		return res.Project, nil
	}

	var fallback struct {
		Projects []Project `json:"projects"`
	}

	err = r.cms.Request(ctx, queryProjectsByID, map[string]any{"id": id}, &fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	if len(fallback.Projects) == 0 {
		return nil, ErrProjectNotFound
	}

	return &fallback.Projects[0], nil
}

func (r *Repository) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	var res struct {
		BlogPosts []BlogPost `json:"blogPosts"`
	}

	if err := r.cms.Request(ctx, queryBlogPosts, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return res.BlogPosts, nil
}

// looks up a blog post by slug, falling back to the plural query
func (r *Repository) GetBlogPost(ctx context.Context, slug string) (*BlogPost, error) {
	var res struct {
		BlogPost *BlogPost `json:"blogPost"`
	}

	err := r.cms.Request(ctx, queryBlogPostBySlug, map[string]any{"slug": slug}, &res)
	if err == nil && res.BlogPost != nil {
		return res.BlogPost, nil
	}

	var fallback struct {
		BlogPosts []BlogPost `json:"blogPosts"`
	}

	err = r.cms.Request(ctx, queryBlogPostsBySlug, map[string]any{"slug": slug}, &fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}

	if len(fallback.BlogPosts) == 0 {
		return nil, ErrBlogPostNotFound
	}

	return &fallback.BlogPosts[0], nil
}

func (r *Repository) GetCaseStudy(ctx context.Context, id string) (*CaseStudy, error) {
	var res struct {
		CaseStudy *CaseStudy `json:"caseStudy"`
	}

	if err := r.cms.Request(ctx, queryCaseStudyByID, map[string]any{"id": id}, &res); err != nil {
		return nil, fmt.Errorf("failed to fetch case study: %w", err)
	}

	if res.CaseStudy == nil {
		return nil, ErrCaseStudyNotFound
	}

	return res.CaseStudy, nil
}
