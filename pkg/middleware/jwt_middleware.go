package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/PeakTrack/pkg/jwt"
	"seungpyo.lee/PeakTrack/pkg/util"
)

const bearerPrefix = "Bearer "

// AuthMiddleware returns a Gin middleware that validates JWT tokens and injects claims into the context.
func AuthMiddleware(tokenManager jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			abort(c, "Access Denied", "missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				abort(c, "Token Expired", "the JWT token has expired")
			case errors.Is(err, jwt.ErrTokenRevoked):
				abort(c, "Token Revoked", "the JWT token has been revoked")
			case errors.Is(err, jwt.ErrTokenInvalid):
				abort(c, "Token Invalid", "the JWT token is invalid")
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status": http.StatusInternalServerError,
					"title":  "Internal Server Error",
					"detail": err.Error(),
				})
			}
			return
		}
		c.Set(util.UserIDKey, claims.UserID)
		c.Set(util.UsernameKey, claims.Username())
		c.Set(util.BearerTokenKey, tokenString)
		c.Next()
	}
}

func abort(c *gin.Context, title, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"status": http.StatusForbidden,
		"title":  title,
		"detail": detail,
	})
}
