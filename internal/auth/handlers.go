package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes token helper endpoints
type AuthHandler struct {
	middleware *AuthMiddleware
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{middleware: NewAuthMiddleware(service)}
}

// ValidateTokenResponse is returned by ValidateToken
type ValidateTokenResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims"`
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a bearer token
// @Description Returns the identity claims carried by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} ValidateTokenResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	claims, err := h.middleware.claimsFromRequest(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidateTokenResponse{Valid: true, Claims: claims})
}
