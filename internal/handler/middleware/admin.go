package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"seminar-booking/internal/handler/httperr"
	"seminar-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates the seminar management endpoints behind the
// admin session token issued by the login endpoint.
type AdminMiddleware struct {
	jwtService *jwt.Service
}

func NewAdminMiddleware(jwtService *jwt.Service) *AdminMiddleware {
	return &AdminMiddleware{jwtService: jwtService}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Admin token required", nil)
			return
		}

		if err := m.jwtService.ValidateAdminToken(token); err != nil {
			slog.Warn("Admin token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Next()
	}
}
