package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HYGRAPH_PUBLIC_ENDPOINT", "")
	t.Setenv("HYGRAPH_ENDPOINT", "https://cms.example.com/graphql")
	t.Setenv("HYGRAPH_URL", "")
	t.Setenv("HYGRAPH_TOKEN", "cms-token")
	t.Setenv("HYGRAPH_API_TOKEN", "")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("ADMIN_EMAILS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("SITE_URL", "")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com/graphql", cfg.HygraphPublicEndpoint)
	assert.Equal(t, "https://cms.example.com/graphql", cfg.HygraphAdminEndpoint)
	assert.Equal(t, "cms-token", cfg.HygraphToken)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoadEnvironmentVariables_SplitEndpoints(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HYGRAPH_PUBLIC_ENDPOINT", "https://public.example.com/graphql")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "https://public.example.com/graphql", cfg.HygraphPublicEndpoint)
	assert.Equal(t, "https://cms.example.com/graphql", cfg.HygraphAdminEndpoint)
}

func TestLoadEnvironmentVariables_LegacyTokenName(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HYGRAPH_TOKEN", "")
	t.Setenv("HYGRAPH_API_TOKEN", "legacy-token")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "legacy-token", cfg.HygraphToken)
}

func TestLoadEnvironmentVariables_MissingEndpoint(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HYGRAPH_ENDPOINT", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HYGRAPH_ENDPOINT")
}

func TestLoadEnvironmentVariables_MissingToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HYGRAPH_TOKEN", "")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HYGRAPH_TOKEN")
}

func TestLoadEnvironmentVariables_MissingSecrets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadEnvironmentVariables()
	require.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")

	_, err = LoadEnvironmentVariables()
	require.Error(t, err)
}

func TestParseAdminEmails(t *testing.T) {
	emails := parseAdminEmails(" Admin@Example.com, owner@example.com ,, ")

	assert.Equal(t, []string{"admin@example.com", "owner@example.com"}, emails)
	assert.Nil(t, parseAdminEmails("  "))
}
