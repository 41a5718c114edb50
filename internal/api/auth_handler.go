package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/upstream"
)

// AuthHandler handles the sign-in/sign-out endpoints
type AuthHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(clients *upstream.Clients, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		clients: clients,
		log:     log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	sess, err := h.clients.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		respondError(c, err)
		return
	}

	h.log.Info().Str("email", req.Email).Msg("Admin signed in")
	c.JSON(http.StatusOK, gin.H{"profile": sess.Profile})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.clients.Auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
