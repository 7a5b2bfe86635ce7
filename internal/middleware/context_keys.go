package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the calling user's ID in the Gin context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// UserIDHeader carries the id of the user acting on the ledger. Identity is
// asserted by the gateway in front of this service.
const UserIDHeader = "X-User-ID"

// UserIdentityMiddleware copies the caller's user id from UserIDHeader into the
// Gin and request contexts, rejecting requests without one.
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			GetLoggerFromContext(c).Warn("Request without user identity header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing " + UserIDHeader + " header"})
			return
		}
		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the calling user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
