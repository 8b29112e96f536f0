package analytics

import (
	"net/http"

	counters "codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// UpdateHandler godoc
// @Summary Apply a view or click to a counter
// @Description Synchronous counterpart of the tracking beacon: upserts the
// @Description counter inline and returns the updated record.
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/analytics [post]
func UpdateHandler(service *counters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid analytics payload")
			return
		}

		if req.Type == "" || req.Slug == "" {
			errors.BadRequest(c, "type and slug are required")
			return
		}

		// omitted action means a view, matching the tracking beacon default
		if req.Action == "" {
			req.Action = string(counters.EventView)
		}

		kind, ok := counters.ParseEventKind(req.Action)
		if !ok {
			errors.BadRequest(c, "action must be view or click")
			return
		}

		record, err := service.RecordEvent(c.Request.Context(), req.Type, req.Slug, kind)
		if err != nil {
			errors.UpstreamError(c, "failed to update analytics", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: record})
	}
}

// GetHandler godoc
// @Summary Read the counter for a content item
// @Tags analytics
// @Produce json
// @Param type query string true "content type"
// @Param slug query string true "content slug"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/analytics [get]
func GetHandler(service *counters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.Query("type")
		slug := c.Query("slug")

		if contentType == "" || slug == "" {
			errors.BadRequest(c, "type and slug are required")
			return
		}

		records, err := service.Get(c.Request.Context(), contentType, slug)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch analytics", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{
			Success: true,
			Data:    gin.H{"analytics": records},
		})
	}
}
