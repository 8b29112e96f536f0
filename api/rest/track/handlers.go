package track

import (
	"net/http"

	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/internal/beacon"
	"codeberg.org/devfolio/server/internal/errors"
	"codeberg.org/devfolio/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Track a view or click event
// @Description Fire-and-forget tracking beacon. Validates the payload and
// @Description enqueues it for recording; delivery failures are never surfaced.
// @Tags track
// @Accept json
// @Success 204 "event accepted"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/track [post]
func Handler(dispatcher *beacon.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TrackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid track payload")
			return
		}

		kind, ok := analytics.ParseEventKind(req.Event)
		if req.Type == "" || req.Slug == "" || !ok {
			errors.BadRequest(c, "invalid track payload")
			return
		}

		metrics.TrackEvents.WithLabelValues(req.Type, string(kind)).Inc()

		// recording happens off the request path; the response never waits
		// on the store
		dispatcher.Dispatch(beacon.Event{
			Type: req.Type,
			Slug: req.Slug,
			Kind: kind,
		})

		c.Status(http.StatusNoContent)
	}
}
