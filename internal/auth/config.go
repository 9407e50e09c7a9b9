package auth

import (
	"fmt"
	"time"

	"duty-portal-backend/internal/config"
)

// AuthConfig holds token verification settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  time.Hour,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
