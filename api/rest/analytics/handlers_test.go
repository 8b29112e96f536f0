package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	counters "codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/internal/hygraph"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlCall struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type fakeCMS struct {
	mu     sync.Mutex
	calls  []gqlCall
	server *httptest.Server
}

func newFakeCMS(t *testing.T) *fakeCMS {
	t.Helper()

	f := &fakeCMS{}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call gqlCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))

		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		var data any

		switch {
		case strings.Contains(call.Query, "upsertAnalytic"):
			data = map[string]any{"upsertAnalytic": map[string]any{
				"id":     "rec-1",
				"type":   call.Variables["type"],
				"slug":   call.Variables["slug"],
				"views":  1,
				"clicks": 0,
			}}
		case strings.Contains(call.Query, "publishAnalytic"):
			data = map[string]any{"publishAnalytic": map[string]any{"id": "rec-1"}}
		default:
			data = map[string]any{"analytics": []map[string]any{
				{"id": "rec-1", "type": "blog", "slug": "my-post", "views": 7, "clicks": 2},
			}}
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))

	t.Cleanup(f.server.Close)

	return f
}

func setupRouter(cms *fakeCMS) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := counters.NewService(hygraph.NewAdmin(cms.server.URL, "token"))

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, service)

	return router
}

func TestUpdate_DefaultsToView(t *testing.T) {
	cms := newFakeCMS(t)
	router := setupRouter(cms)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{"type":"blog","slug":"my-post"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)

	cms.mu.Lock()
	upsert := cms.calls[0]
	cms.mu.Unlock()

	assert.Equal(t, float64(1), upsert.Variables["views"], "omitted action counts as a view")
	assert.Equal(t, float64(0), upsert.Variables["clicks"])
}

func TestUpdate_ClickAction(t *testing.T) {
	cms := newFakeCMS(t)
	router := setupRouter(cms)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(`{"type":"blog","slug":"my-post","action":"click"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cms.mu.Lock()
	upsert := cms.calls[0]
	cms.mu.Unlock()

	assert.Equal(t, float64(0), upsert.Variables["views"])
	assert.Equal(t, float64(1), upsert.Variables["clicks"])
}

func TestUpdate_RejectsBadInput(t *testing.T) {
	cms := newFakeCMS(t)
	router := setupRouter(cms)

	cases := []string{
		`{broken`,
		`{"slug":"x"}`,
		`{"type":"blog"}`,
		`{"type":"blog","slug":"x","action":"hover"}`,
	}

	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/analytics", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	cms.mu.Lock()
	defer cms.mu.Unlock()
	assert.Empty(t, cms.calls)
}

func TestGet_RequiresTypeAndSlug(t *testing.T) {
	cms := newFakeCMS(t)
	router := setupRouter(cms)

	for _, path := range []string{"/api/analytics", "/api/analytics?type=blog", "/api/analytics?slug=x"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGet_ReturnsCounters(t *testing.T) {
	cms := newFakeCMS(t)
	router := setupRouter(cms)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics?type=blog&slug=my-post", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool `json:"success"`
		Data    struct {
			Analytics []counters.Record `json:"analytics"`
		} `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.Len(t, res.Data.Analytics, 1)
	assert.Equal(t, 7, res.Data.Analytics[0].Views)
}
