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

type UserHandler struct {
	Service      domain.UserService
	TokenManager jwt.TokenManager
	log          *logger.Logger
}

func NewUserHandler(service domain.UserService, tokenManager jwt.TokenManager, log *logger.Logger) *UserHandler {
	return &UserHandler{Service: service, TokenManager: tokenManager, log: log.Named("user-handler")}
}

// RequireAccount rejects authenticated requests whose account no longer exists.
// It runs after middleware.AuthMiddleware.
func (h *UserHandler) RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := util.GetUserID(c)
		if !ok {
			writeError(c, h.log, domain.ErrUnauthorized)
			return
		}
		if _, err := h.Service.ResolveUser(userID); err != nil {
			writeError(c, h.log, err)
			return
		}
		c.Next()
	}
}

// GetCurrentUser handles GET /users/currentUser.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	username, ok := util.GetUsername(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	user, err := h.Service.GetCurrentUser(username)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteCurrentUser handles DELETE /users/currentUser and revokes the caller's token.
func (h *UserHandler) DeleteCurrentUser(c *gin.Context) {
	userID, ok := util.GetUserID(c)
	if !ok {
		writeError(c, h.log, domain.ErrUnauthorized)
		return
	}
	if err := h.Service.DeleteAccount(userID); err != nil {
		writeError(c, h.log, err)
		return
	}
	if token, ok := util.GetBearerToken(c); ok {
		if err := h.TokenManager.RevokeToken(token); err != nil {
			h.log.Warnf("account %d deleted but token revocation failed: %v", userID, err)
		} else {
			observability.RecordTokenRevoked()
		}
	}
	c.Status(http.StatusNoContent)
}
