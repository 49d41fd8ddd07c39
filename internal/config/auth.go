package config

import (
	"fmt"
	"time"
)

// AuthConfig holds JWT authentication configuration.
type AuthConfig struct {
	// JWTSecret signs access tokens (HS256).
	JWTSecret string
	// AccessTokenTTL is the access token lifetime.
	AccessTokenTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:      GetEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL: GetEnvDuration("JWT_ACCESS_TOKEN_TTL", 24*time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("AccessTokenTTL must be greater than 0")
	}
	return nil
}
