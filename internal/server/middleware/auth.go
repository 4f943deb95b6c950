package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gother/internal/pkg/ctxutil"
	"gother/internal/service"
)

// Auth authenticates the request, loads the live profile and injects the
// session into the request context. Loading the profile on every request
// is what makes a block take effect immediately instead of at token
// expiry.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    40101,
				"message": "authorization required",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    40101,
				"message": "invalid authorization header",
			})
			c.Abort()
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			code := 40102
			message := "token invalid or expired"
			if errors.Is(err, service.ErrUserBlocked) {
				code = 40103
				message = "account blocked"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    code,
				"message": message,
			})
			c.Abort()
			return
		}

		ctx := ctxutil.WithSession(c.Request.Context(), &ctxutil.Session{
			UserID:  user.ID,
			Profile: user,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalAuth injects a session when a valid token is presented but
// lets anonymous requests through. Used by endpoints that serve both
// public and gated content.
func OptionalAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if user, err := authService.ValidateToken(c.Request.Context(), parts[1]); err == nil {
				ctx := ctxutil.WithSession(c.Request.Context(), &ctxutil.Session{
					UserID:  user.ID,
					Profile: user,
				})
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}
