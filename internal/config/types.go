package config

type Config struct {
	// CMS endpoints and credentials
	HygraphPublicEndpoint string
	HygraphAdminEndpoint  string
	HygraphToken          string

	// session and auth
	JWTSecret     string
	SessionSecret string
	AdminEmails   []string

	// deployment
	Environment string
	BaseURL     string
	SiteURL     string
}
