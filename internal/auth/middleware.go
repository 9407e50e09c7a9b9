package auth

import (
	"net/http"
	"strings"

	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth
const (
	ContextServiceNumber = logger.ServiceNumberKey
	ContextRole          = "role"
	ContextClaims        = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller identity on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the caller identity when a valid token is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.claimsFromRequest(c); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) claimsFromRequest(c *gin.Context) (*AuthClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrMissingAuthHeader
	}

	// Extract token from Bearer header
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return nil, apperrors.ErrInvalidAuthHeader
	}

	claims, err := m.service.ValidateJWT(tokenString)
	if err != nil {
		logger.WithContext(c).WithError(err).Debug("rejected bearer token")
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims *AuthClaims) {
	c.Set(ContextServiceNumber, claims.ServiceNumber)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextClaims, claims)
}

// GetServiceNumber extracts the caller's service number; ok is false when the claim is absent
func GetServiceNumber(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextServiceNumber)
	if !exists {
		return "", false
	}

	sn, ok := value.(string)
	return sn, ok && sn != ""
}

// GetRole extracts the caller's role
func GetRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}

	role, ok := value.(string)
	return role, ok
}

// GetAuthClaims extracts the full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
