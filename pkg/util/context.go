package util

import (
	"github.com/gin-gonic/gin"
)

// Keys under which the auth middleware stores the verified identity.
const (
	UserIDKey      = "user_id"
	UsernameKey    = "username"
	BearerTokenKey = "bearer_token"
)

// GetUserID extracts the verified user id stored by the auth middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := value.(uint)
	return uid, ok
}

// GetUsername extracts the verified username stored by the auth middleware.
func GetUsername(c *gin.Context) (string, bool) {
	value, ok := c.Get(UsernameKey)
	if !ok {
		return "", false
	}
	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetBearerToken returns the raw token the request was authenticated with.
func GetBearerToken(c *gin.Context) (string, bool) {
	value, ok := c.Get(BearerTokenKey)
	if !ok {
		return "", false
	}
	token, ok := value.(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
