package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trip-orchestrator/internal/service"
)

// AuthHandler emite tokens de acceso para clientes configurados del API.
type AuthHandler struct {
	logger       *zap.Logger
	jwtSvc       *service.JWTService
	clientID     string
	clientSecret string
}

func NewAuthHandler(logger *zap.Logger, jwtSvc *service.JWTService, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		jwtSvc:       jwtSvc,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// IssueToken maneja POST /auth/token: intercambia client_id/client_secret por un JWT.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		ClientID     string `json:"client_id" binding:"required"`
		ClientSecret string `json:"client_secret" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.clientID == "" || h.clientSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth not configured"})
		return
	}

	// Comparación en tiempo constante para no filtrar credenciales por timing.
	idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.clientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.clientSecret)) == 1
	if !idOK || !secretOK {
		h.logger.Warn("token request with bad credentials", zap.String("client_id", req.ClientID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresIn, err := h.jwtSvc.IssueAccessToken(req.ClientID)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
	})
}
