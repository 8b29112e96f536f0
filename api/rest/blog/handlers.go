package blog

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/internal/errors"
	"codeberg.org/devfolio/server/internal/logger"
	"codeberg.org/devfolio/server/internal/richtext"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List blog posts
// @Description Public listing; an upstream outage degrades to an empty list.
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/blog [get]
func ListHandler(repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := repo.ListBlogPosts(c.Request.Context())
		if err != nil {
			logger.Warn("blog listing failed", "error", err)
			posts = nil
		}

		if posts == nil {
			posts = []catalog.BlogPost{}
		}

		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// GetHandler godoc
// @Summary Fetch one blog post by slug
// @Description Returns the post with its rich-text body rendered to HTML.
// @Tags blog
// @Produce json
// @Success 200 {object} PostResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/blog/{slug} [get]
func GetHandler(repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		post, err := repo.GetBlogPost(c.Request.Context(), slug)
		if err != nil {
			if stderrors.Is(err, catalog.ErrBlogPostNotFound) {
				errors.NotFound(c, "blog post not found")
				return
			}

			logger.Warn("blog post fetch failed", "slug", slug, "error", err)
			c.JSON(http.StatusOK, PostResponse{Post: nil})
			return
		}

		res := PostResponse{Post: post}

		if post.Content != nil {
			html, err := richtext.Render(post.Content.Raw)
			if err != nil {
				logger.Warn("rich text render failed", "slug", slug, "error", err)
			} else {
				res.ContentHTML = html
			}
		}

		c.JSON(http.StatusOK, res)
	}
}
