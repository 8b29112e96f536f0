package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"codeberg.org/devfolio/server/internal/auth"
	"github.com/joho/godotenv"
)

// generates an admin session token for local testing and the TUI dashboard
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	email := "admin@localhost"
	name := "Local Admin"

	if len(os.Args) > 1 {
		email = os.Args[1]
	} else if allowlist := os.Getenv("ADMIN_EMAILS"); allowlist != "" {
		email = strings.TrimSpace(strings.Split(allowlist, ",")[0])
	}

	token, err := auth.GenerateJWT(email, name)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("🔑 Admin session token for %s:\n%s\n\n", email, token)
	fmt.Printf("Export this token for the TUI dashboard:\nexport DEVFOLIO_ADMIN_TOKEN=\"%s\"\n", token)
}
