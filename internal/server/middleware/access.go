package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/model/auth"
	"gother/internal/pkg/access"
	"gother/internal/pkg/ctxutil"
)

// RequireStaff allows only profiles whose effective role is admin or
// moderator. Runs after Auth.
func RequireStaff(resolver *access.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ctxutil.GetSession(c.Request.Context())
		if !ok {
			abortForbidden(c, http.StatusUnauthorized, 40101, "authorization required")
			return
		}
		role := resolver.EffectiveRole(session.Profile)
		if role != auth.RoleAdmin && role != auth.RoleModerator {
			abortForbidden(c, http.StatusForbidden, 40301, "staff access required")
			return
		}
		c.Next()
	}
}

// RequirePermission gates a route on one admin feature tag. Masters pass
// every gate; moderators need the tag in their set.
func RequirePermission(resolver *access.Resolver, perm auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ctxutil.GetSession(c.Request.Context())
		if !ok {
			abortForbidden(c, http.StatusUnauthorized, 40101, "authorization required")
			return
		}
		if !resolver.HasAccess(session.Profile, perm) {
			abortForbidden(c, http.StatusForbidden, 40302, "permission denied")
			return
		}
		c.Next()
	}
}

// RequireMaster gates a route on master status. Staff management and the
// destructive registry operations live behind this.
func RequireMaster(resolver *access.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ctxutil.GetSession(c.Request.Context())
		if !ok {
			abortForbidden(c, http.StatusUnauthorized, 40101, "authorization required")
			return
		}
		if !resolver.CanManageStaff(session.Profile) {
			abortForbidden(c, http.StatusForbidden, 40303, "master access required")
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context, status, code int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
