package errors

import (
	"net/http"

	"codeberg.org/devfolio/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.UpstreamError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.UpstreamError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)
//
// Admin routes run in a trusted, authenticated context: upstream CMS error
// messages pass through to the caller verbatim. Public read paths never use
// these helpers for CMS failures - they degrade to empty content instead.

// represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// returns a 401 unauthorized error
// the body is uniform regardless of why the session check failed, so the
// response never leaks whether the resource exists
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error: "Unauthorized",
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
	})
}

// returns a 500 error carrying the upstream CMS message
func UpstreamError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "upstream request failed"
	}

	// log full error server-side with request context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	body := message
	if err != nil {
		body = message + ": " + err.Error()
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: body,
	})
}

// returns a 500 internal server error without upstream detail
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: message,
	})
}
