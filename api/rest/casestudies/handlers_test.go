package casestudies

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/internal/hygraph"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(handler http.HandlerFunc) (*gin.Engine, *httptest.Server) {
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(handler)
	repo := catalog.NewRepository(hygraph.New(server.URL))

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, repo)

	return router, server
}

func TestCaseStudies_Get(t *testing.T) {
	router, server := setupRouter(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"caseStudy":{"id":"cs-1","title":"Big Rewrite","techStack":["go","postgres"]}}}`)) //nolint:errcheck
	})
	defer server.Close()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/case-studies/cs-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"cs-1"`)
}

func TestCaseStudies_NotFound(t *testing.T) {
	router, server := setupRouter(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"caseStudy":null}}`)) //nolint:errcheck
	})
	defer server.Close()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/case-studies/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "case study not found")
}
