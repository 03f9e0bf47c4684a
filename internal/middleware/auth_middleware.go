package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
	"github.com/campushire/placement-portal/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID    = "userID"
	ContextRole      = "role"
	ContextCollegeID = "collegeID"
)

// AuthMiddleware validates session tokens on protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth verifies the bearer token and stores the caller's identity, role
// and college on the request context. Reset tokens are rejected here; they
// only work on the reset-password endpoint.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			appErr := apperrors.ErrTokenMalformed
			if errors.Is(err, auth.ErrExpiredToken) {
				appErr = apperrors.ErrTokenExpired
			}
			HandleAPIError(c, appErr)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextCollegeID, claims.CollegeID)

		c.Next()
	}
}

// CallerIdentity reads the identity placed on the context by JWTAuth
func CallerIdentity(c *gin.Context) (userID string, role models.RoleType, collegeID string) {
	userID = c.GetString(ContextUserID)
	role = models.RoleType(c.GetString(ContextRole))
	collegeID = c.GetString(ContextCollegeID)
	return userID, role, collegeID
}
