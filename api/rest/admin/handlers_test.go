package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/auth"
	"codeberg.org/devfolio/server/internal/hygraph"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlCall struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// scripted CMS fake: answers each query by substring match and records the
// exact call sequence
type fakeCMS struct {
	mu     sync.Mutex
	calls  []gqlCall
	server *httptest.Server
}

func newFakeCMS(t *testing.T, respond func(call gqlCall) any) *fakeCMS {
	t.Helper()

	f := &fakeCMS{}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call gqlCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))

		f.mu.Lock()
		f.calls = append(f.calls, call)
		f.mu.Unlock()

		data := respond(call)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))

	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeCMS) recordedCalls() []gqlCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]gqlCall(nil), f.calls...)
}

func allowAll(*http.Request) *auth.Session {
	return &auth.Session{Email: "admin@example.com", Name: "Admin"}
}

func denyAll(*http.Request) *auth.Session {
	return nil
}

func setupRouter(cms *fakeCMS, validate auth.SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	client := hygraph.NewAdmin(cms.server.URL, "token")
	service := analytics.NewService(client)
	repo := content.NewRepository(client)

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, service, repo, validate)

	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestAdmin_UnauthenticatedGetsUniform401(t *testing.T) {
	cms := newFakeCMS(t, func(gqlCall) any { return map[string]any{} })
	router := setupRouter(cms, denyAll)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/analytics"},
		{http.MethodGet, "/api/admin/site-settings"},
		{http.MethodPut, "/api/admin/site-settings"},
		{http.MethodGet, "/api/admin/hero-text"},
		{http.MethodPut, "/api/admin/hero-text"},
		{http.MethodGet, "/api/admin/announcement-bar"},
		{http.MethodPut, "/api/admin/announcement-bar"},
		{http.MethodGet, "/api/admin/about-section"},
		{http.MethodPut, "/api/admin/about-section"},
		{http.MethodGet, "/api/admin/skills"},
		{http.MethodPut, "/api/admin/skills"},
	}

	for _, route := range routes {
		w := do(router, route.method, route.path, "{}")

		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String(), "401 body must be uniform")
	}

	assert.Empty(t, cms.recordedCalls(), "rejected requests must never reach the CMS")
}

func TestAdmin_ListAnalytics(t *testing.T) {
	cms := newFakeCMS(t, func(call gqlCall) any {
		return map[string]any{"analytics": []map[string]any{
			{"id": "1", "type": "blog", "slug": "hot", "views": 40, "clicks": 3},
			{"id": "2", "type": "blog", "slug": "cold", "views": 2, "clicks": 0},
		}}
	})
	router := setupRouter(cms, allowAll)

	w := do(router, http.MethodGet, "/api/admin/analytics", "")

	require.Equal(t, http.StatusOK, w.Code)

	var res AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Analytics, 2)
	assert.Equal(t, "hot", res.Analytics[0].Slug)
	assert.Equal(t, 40, res.Analytics[0].Views)
}

func TestAdmin_GetSiteSettings_NotFoundCarriesRemediationHint(t *testing.T) {
	cms := newFakeCMS(t, func(call gqlCall) any {
		return map[string]any{"singletons": []any{}}
	})
	router := setupRouter(cms, allowAll)

	w := do(router, http.MethodGet, "/api/admin/site-settings", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "singletonId = site")
}

func TestAdmin_UpdateHeroText_FullReplaceAndPublish(t *testing.T) {
	heroText := map[string]any{
		"id":          "ht-1",
		"singletonId": "heroText",
		"heading":     "Old heading",
		"subHeading":  "Old sub",
		"buttonText":  "Old button",
	}

	cms := newFakeCMS(t, func(call gqlCall) any {
		switch {
		case strings.Contains(call.Query, "updateHeroText"):
			return map[string]any{"updateHeroText": map[string]any{"id": "ht-1"}}
		case strings.Contains(call.Query, "publishHeroText"):
			return map[string]any{"publishHeroText": map[string]any{"id": "ht-1"}}
		default:
			return map[string]any{"heroTexts": []any{heroText}}
		}
	})
	router := setupRouter(cms, allowAll)

	// only heading is supplied; the other fields must be written as null
	w := do(router, http.MethodPut, "/api/admin/hero-text", `{"heading":"New heading"}`)

	require.Equal(t, http.StatusOK, w.Code)

	calls := cms.recordedCalls()
	require.Len(t, calls, 4, "read, update, publish, re-read")

	assert.Contains(t, calls[0].Query, "heroTexts")
	assert.Contains(t, calls[1].Query, "updateHeroText")
	assert.Contains(t, calls[2].Query, "publishHeroText", "publish must follow the update")
	assert.Contains(t, calls[3].Query, "heroTexts")

	update := calls[1].Variables
	assert.Equal(t, "ht-1", update["id"])

	data := update["data"].(map[string]any)
	assert.Equal(t, "New heading", data["heading"])
	assert.Nil(t, data["subHeading"], "omitted fields are cleared, not preserved")
	assert.Nil(t, data["buttonText"])

	assert.Equal(t, "ht-1", calls[2].Variables["id"])
}

func TestAdmin_UpdateAnnouncementBar_OmittedVisibilityHides(t *testing.T) {
	bar := map[string]any{"id": "bar-1", "isVisible": true, "message": "old"}

	cms := newFakeCMS(t, func(call gqlCall) any {
		switch {
		case strings.Contains(call.Query, "updateAnnouncementBar"):
			return map[string]any{"updateAnnouncementBar": map[string]any{"id": "bar-1"}}
		case strings.Contains(call.Query, "publishAnnouncementBar"):
			return map[string]any{"publishAnnouncementBar": map[string]any{"id": "bar-1"}}
		default:
			return map[string]any{"announcementBars": []any{bar}}
		}
	})
	router := setupRouter(cms, allowAll)

	w := do(router, http.MethodPut, "/api/admin/announcement-bar", `{"message":"maintenance tonight"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var update gqlCall
	for _, call := range cms.recordedCalls() {
		if strings.Contains(call.Query, "updateAnnouncementBar") {
			update = call
		}
	}

	data := update.Variables["data"].(map[string]any)
	assert.Equal(t, false, data["isVisible"], "omitted visibility must come back hidden, not null")
	assert.Equal(t, "maintenance tonight", data["message"])
	assert.Nil(t, data["linkText"])
}

func TestAdmin_UpdateSiteSettings_ReturnsRefreshedState(t *testing.T) {
	reads := 0

	cms := newFakeCMS(t, func(call gqlCall) any {
		switch {
		case strings.Contains(call.Query, "updateSingleton"):
			return map[string]any{"updateSingleton": map[string]any{"id": "site-1"}}
		case strings.Contains(call.Query, "publishSingleton"):
			return map[string]any{"publishSingleton": map[string]any{"id": "site-1"}}
		default:
			reads++

			title := "Before"
			if reads > 1 {
				title = "After"
			}

			return map[string]any{"singletons": []any{map[string]any{
				"id":          "site-1",
				"singletonId": "site",
				"siteTitle":   title,
			}}}
		}
	})
	router := setupRouter(cms, allowAll)

	w := do(router, http.MethodPut, "/api/admin/site-settings", `{"siteTitle":"After"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var res SiteSettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotNil(t, res.SiteSettings)
	require.NotNil(t, res.SiteSettings.SiteTitle)
	assert.Equal(t, "After", *res.SiteSettings.SiteTitle, "response must reflect the re-read state")
}

func TestAdmin_UpdateSkills_SkipsEntriesWithoutID(t *testing.T) {
	cms := newFakeCMS(t, func(call gqlCall) any {
		switch {
		case strings.Contains(call.Query, "updateSkill"):
			return map[string]any{"updateSkill": map[string]any{"id": call.Variables["id"]}}
		case strings.Contains(call.Query, "publishSkill"):
			return map[string]any{"publishSkill": map[string]any{"id": call.Variables["id"]}}
		default:
			return map[string]any{"skills": []any{}}
		}
	})
	router := setupRouter(cms, allowAll)

	body := `{"skills":[{"id":"sk-1","name":"Go","level":5},{"name":"No ID"},{"id":"sk-2","name":"SQL"}]}`
	w := do(router, http.MethodPut, "/api/admin/skills", body)

	require.Equal(t, http.StatusOK, w.Code)

	var updated []string
	for _, call := range cms.recordedCalls() {
		if strings.Contains(call.Query, "updateSkill") {
			updated = append(updated, call.Variables["id"].(string))
		}
	}

	assert.Equal(t, []string{"sk-1", "sk-2"}, updated)
}

func TestAdmin_InvalidJSONBody(t *testing.T) {
	cms := newFakeCMS(t, func(gqlCall) any { return map[string]any{} })
	router := setupRouter(cms, allowAll)

	w := do(router, http.MethodPut, "/api/admin/hero-text", `{broken`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cms.recordedCalls())
}
