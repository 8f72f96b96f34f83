package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/observability"
	"seungpyo.lee/PeakTrack/pkg/jwt"
	"seungpyo.lee/PeakTrack/pkg/logger"
	"seungpyo.lee/PeakTrack/pkg/util"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service      domain.AuthService
	TokenManager jwt.TokenManager
	log          *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, tokenManager jwt.TokenManager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{Service: service, TokenManager: tokenManager, log: log.Named("auth-handler")}
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, malformedBody(err))
		return
	}
	user, err := h.Service.SignUp(req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login handles POST /auth/login and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, malformedBody(err))
		return
	}
	user, err := h.Service.Authenticate(req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	token, err := h.TokenManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int64(h.TokenManager.ExpirationTime().Seconds()),
	})
}

// Logout handles POST /auth/logout by blacklisting the bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := util.GetBearerToken(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	if err := h.TokenManager.RevokeToken(token); err != nil {
		writeError(c, h.log, err)
		return
	}
	observability.RecordTokenRevoked()
	c.Status(http.StatusOK)
}
