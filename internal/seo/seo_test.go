package seo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/hygraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoWith(t *testing.T, handler http.HandlerFunc) *content.Repository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return content.NewRepository(hygraph.New(server.URL))
}

func TestBuild_SEOSectionTakesPrecedence(t *testing.T) {
	repo := repoWith(t, func(w http.ResponseWriter, r *http.Request) {
		var call struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))

		if strings.Contains(call.Query, "seoSections") {
			w.Write([]byte(`{"data":{"seoSections":[{"metaTitle":"Page","metaDescription":"Page desc","keywords":" go , web, ","url":" https://example.com/about "}]}}`)) //nolint:errcheck
			return
		}

		w.Write([]byte(`{"data":{"singletons":[{"id":"s","singletonId":"site","siteTitle":"Site","siteDescription":"Site desc"}]}}`)) //nolint:errcheck
	})

	md := Build(context.Background(), repo, "about", Fallbacks{Title: "FB", Description: "FB desc"})

	assert.Equal(t, "Page", md.Title)
	assert.Equal(t, "Page desc", md.Description)
	assert.Equal(t, []string{"go", "web"}, md.Keywords)
	assert.Equal(t, "https://example.com/about", md.Canonical)
}

func TestBuild_SiteSettingsFillGaps(t *testing.T) {
	repo := repoWith(t, func(w http.ResponseWriter, r *http.Request) {
		var call struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))

		if strings.Contains(call.Query, "seoSections") {
			w.Write([]byte(`{"data":{"seoSections":[]}}`)) //nolint:errcheck
			return
		}

		w.Write([]byte(`{"data":{"singletons":[{"id":"s","singletonId":"site","siteTitle":"Site","siteDescription":"Site desc"}]}}`)) //nolint:errcheck
	})

	md := Build(context.Background(), repo, "about", Fallbacks{Title: "FB", Description: "FB desc", OGImageURL: "fb.png"})

	assert.Equal(t, "Site", md.Title)
	assert.Equal(t, "Site desc", md.Description)
	assert.Equal(t, "fb.png", md.OGImage, "settings carry no image, so the fallback stays")
}

func TestBuild_OutageDegradesToFallbacks(t *testing.T) {
	repo := repoWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	md := Build(context.Background(), repo, "about", Fallbacks{Title: "FB", Description: "FB desc"})

	assert.Equal(t, "FB", md.Title)
	assert.Equal(t, "FB desc", md.Description)
	assert.Empty(t, md.Keywords)
}
