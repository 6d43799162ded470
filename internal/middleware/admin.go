package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/logger"
	"go.uber.org/zap"
)

// AdminMiddleware guards operator routes. Admins are listed by username in
// configuration; there is no admin flag on the account itself.
type AdminMiddleware struct {
	adminUsers map[string]bool
}

func NewAdminMiddleware(adminUsers []string) *AdminMiddleware {
	admins := make(map[string]bool, len(adminUsers))
	for _, u := range adminUsers {
		admins[u] = true
	}
	return &AdminMiddleware{adminUsers: admins}
}

func (m *AdminMiddleware) IsAdmin(username string) bool {
	return m.adminUsers[username]
}

// RequireAdmin must run after RequireAuth.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := GetUsername(c)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !m.IsAdmin(username) {
			logger.Warn("admin access denied",
				zap.String("username", username),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}
