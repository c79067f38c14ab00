// config/config.go
package config

import (
	"log"
	"os"
	"time"
)

// AuthConfig carries the single operator identity and signing secret.
// It is built once in main and handed to the auth gate at construction;
// nothing reads these values from the environment at request time.
type AuthConfig struct {
	OperatorUsername string
	OperatorPassword string
	JWTSecret        string
	TokenTTL         time.Duration
}

// AppConfig is the full application configuration.
type AppConfig struct {
	Port string
	Auth AuthConfig
}

// LoadConfig reads configuration from the environment. The JWT secret is
// mandatory; everything else has a development default.
func LoadConfig() AppConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "Kathir"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Kathir123"
	}

	return AppConfig{
		Port: port,
		Auth: AuthConfig{
			OperatorUsername: username,
			OperatorPassword: password,
			JWTSecret:        secret,
			TokenTTL:         24 * time.Hour,
		},
	}
}
