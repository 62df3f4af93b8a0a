package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextRole      = "role"
	ContextRegNumber = "regNumber"
	ContextAdminID   = "adminID"
)

// AuthMiddleware guards routes behind JWT validation
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) validate(c *gin.Context) (*auth.Claims, bool) {
	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		abortUnauthorized(c, dto.ErrorCodeInvalidToken, "missing or malformed authorization header")
		return nil, false
	}

	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			abortUnauthorized(c, dto.ErrorCodeExpiredToken, "token has expired")
		} else {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "invalid token")
		}
		return nil, false
	}
	return claims, true
}

// AdminRequired allows only requests carrying a valid admin token
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.validate(c)
		if !ok {
			return
		}
		if claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "admin access required")))
			return
		}

		c.Set(ContextRole, claims.Role)
		c.Set(ContextAdminID, claims.AdminID)
		c.Next()
	}
}

// StudentRequired allows only requests carrying a valid student token
func (m *AuthMiddleware) StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.validate(c)
		if !ok {
			return
		}
		if claims.Role != auth.RoleStudent || claims.RegNumber == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "student access required")))
			return
		}

		c.Set(ContextRole, claims.Role)
		c.Set(ContextRegNumber, claims.RegNumber)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(code, message)))
}

// RegNumberFromContext reads the authenticated student's registration number
func RegNumberFromContext(c *gin.Context) string {
	return c.GetString(ContextRegNumber)
}

// AdminIDFromContext reads the authenticated admin's ID
func AdminIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(ContextAdminID)
}
