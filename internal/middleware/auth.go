package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/communityworks/volunteer-platform/internal/constants"
	apierrors "github.com/communityworks/volunteer-platform/internal/errors"
	"github.com/communityworks/volunteer-platform/internal/models"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if userType := session.Get(constants.ContextKeyUserType); userType != nil {
			c.Set(constants.ContextKeyUserType, userType)
		}
		c.Next()
	}
}

// RequireUserType restricts a route to one party. It must run after
// RequireAuth.
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := GetUserType(c)
		if !exists || current != userType {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserType retrieves the current user type from context
func GetUserType(c *gin.Context) (models.UserType, bool) {
	value, exists := c.Get(constants.ContextKeyUserType)
	if !exists {
		return "", false
	}

	switch v := value.(type) {
	case models.UserType:
		return v, true
	case string:
		return models.UserType(v), true
	default:
		return "", false
	}
}
