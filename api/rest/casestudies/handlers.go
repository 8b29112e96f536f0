package casestudies

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/internal/errors"
	"codeberg.org/devfolio/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// GetHandler godoc
// @Summary Fetch one case study by id
// @Tags case-studies
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/case-studies/{id} [get]
func GetHandler(repo *catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		study, err := repo.GetCaseStudy(c.Request.Context(), c.Param("id"))
		if err != nil {
			if stderrors.Is(err, catalog.ErrCaseStudyNotFound) {
				errors.NotFound(c, "case study not found")
				return
			}

			logger.Warn("case study fetch failed", "id", c.Param("id"), "error", err)
			c.JSON(http.StatusOK, gin.H{"caseStudy": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"caseStudy": study})
	}
}
