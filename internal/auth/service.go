package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the identity attached to every authenticated request
type AuthClaims struct {
	ServiceNumber string `json:"service_number"`
	Name          string `json:"name,omitempty"`
	Role          string `json:"role,omitempty"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService signs and verifies bearer tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT issues a token for the given identity. Tokens are normally issued by the
// identity provider; this is used by tooling and tests.
func (s *AuthService) GenerateJWT(serviceNumber, name, role string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		ServiceNumber: serviceNumber,
		Name:          name,
		Role:          role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   serviceNumber,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.ServiceNumber == "" {
		return nil, fmt.Errorf("token has no service number")
	}

	return claims, nil
}
