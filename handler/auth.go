package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/middleware"
	"github.com/AnTengye/contratos/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// Login checks the credentials against the configured users and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := h.config.FindUser(req.Username)
	if user == nil || subtle.ConstantTimeCompare([]byte(user.Password), []byte(req.Password)) != 1 {
		logger.Warn(c.Request.Context(), "login failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	// users without a role only get read access
	role := user.Role
	if role == "" {
		role = middleware.RoleAgent
	}

	token, expiresAt, err := middleware.GenerateToken(user.Username, role, &h.config.Auth)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to generate token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Username:  user.Username,
		Role:      role,
	})
}

// GetCurrentUser returns the current user info
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	role := middleware.GetRole(c)
	c.JSON(http.StatusOK, gin.H{
		"username": middleware.GetUsername(c),
		"role":     role,
		"can_edit": canEdit(role),
	})
}

func canEdit(role string) bool {
	for _, r := range middleware.EditorRoles {
		if r == role {
			return true
		}
	}
	return false
}
