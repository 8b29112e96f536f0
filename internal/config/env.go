package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	publicEndpoint := firstNonEmpty(
		os.Getenv("HYGRAPH_PUBLIC_ENDPOINT"),
		os.Getenv("HYGRAPH_ENDPOINT"),
		os.Getenv("HYGRAPH_URL"),
	)

	adminEndpoint := firstNonEmpty(
		os.Getenv("HYGRAPH_ENDPOINT"),
		os.Getenv("HYGRAPH_URL"),
		publicEndpoint,
	)

	token := firstNonEmpty(
		os.Getenv("HYGRAPH_TOKEN"),
		os.Getenv("HYGRAPH_API_TOKEN"),
	)

	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	baseURL := os.Getenv("BASE_URL")

	if publicEndpoint == "" {
		return nil, fmt.Errorf("HYGRAPH_ENDPOINT environment variable is required")
	}

	if token == "" {
		return nil, fmt.Errorf("HYGRAPH_TOKEN environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &Config{
		HygraphPublicEndpoint: publicEndpoint,
		HygraphAdminEndpoint:  adminEndpoint,
		HygraphToken:          token,
		JWTSecret:             jwtSecret,
		SessionSecret:         sessionSecret,
		AdminEmails:           parseAdminEmails(os.Getenv("ADMIN_EMAILS")),
		Environment:           environment,
		BaseURL:               baseURL,
		SiteURL:               os.Getenv("SITE_URL"),
	}, nil
}

// splits the comma-separated admin allowlist, normalizing case
func parseAdminEmails(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))

	for _, p := range parts {
		email := strings.ToLower(strings.TrimSpace(p))
		if email != "" {
			emails = append(emails, email)
		}
	}

	return emails
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
