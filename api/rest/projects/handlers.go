package projects

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/internal/errors"
	"codeberg.org/devfolio/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List projects
// @Description Public listing; an upstream outage degrades to an empty list.
// @Tags projects
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/projects [get]
func ListHandler(repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := repo.ListProjects(c.Request.Context())
		if err != nil {
			logger.Warn("project listing failed", "error", err)
			projects = nil
		}

		if projects == nil {
			projects = []catalog.Project{}
		}

		c.JSON(http.StatusOK, gin.H{"projects": projects})
	}
}

// GetHandler godoc
// @Summary Fetch one project by id
// @Tags projects
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/projects/{id} [get]
func GetHandler(repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := repo.GetProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			if stderrors.Is(err, catalog.ErrProjectNotFound) {
				errors.NotFound(c, "project not found")
				return
			}

			logger.Warn("project fetch failed", "id", c.Param("id"), "error", err)
			c.JSON(http.StatusOK, gin.H{"project": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"project": project})
	}
}
