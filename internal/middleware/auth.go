package middleware

import (
	"strconv"
	"strings"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/logger"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// extractBearerToken pulls the token from the Authorization header, with
// X-Authorization as a fallback for clients whose proxy strips the standard
// header.
func extractBearerToken(c *gin.Context) string {
	for _, header := range []string{"Authorization", "X-Authorization"} {
		value := c.GetHeader(header)
		if strings.HasPrefix(value, "Bearer ") {
			return strings.TrimPrefix(value, "Bearer ")
		}
	}
	return ""
}

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware rejects callers whose token does not carry the required role.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if role != requiredRole {
			apperrors.HandleError(c, apperrors.ErrAdminOnly)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID stored by AuthMiddleware.
func GetUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}

// GetRole returns the caller's role stored by AuthMiddleware.
func GetRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}

	role, ok := roleVal.(models.UserRole)
	if !ok {
		roleStr, isString := roleVal.(string)
		if !isString {
			return "", false
		}
		role = models.UserRole(roleStr)
	}
	return role, true
}
