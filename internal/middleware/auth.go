package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/services"
)

const (
	userIDKey   = "userID"
	usernameKey = "username"

	TestUsernameHeader = "X-Test-Username"
)

type AuthMiddleware struct {
	tokenService *services.TokenService
	userService  *services.UserService
	testMode     bool
}

func NewAuthMiddleware(tokenService *services.TokenService, userService *services.UserService, testMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userService:  userService,
		testMode:     testMode,
	}
}

// RequireAuth resolves the caller to a user account. In test mode the
// X-Test-Username header is trusted and the account is created on first use.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.testMode {
			username := c.GetHeader(TestUsernameHeader)
			if username == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Test-Username header required in test mode"})
				c.Abort()
				return
			}
			user, err := m.userService.GetOrCreate(username)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username"})
				c.Abort()
				return
			}
			setUser(c, user.ID, user.Username)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		setUser(c, user.ID, user.Username)
		c.Next()
	}
}

func setUser(c *gin.Context, id uint, username string) {
	c.Set(userIDKey, id)
	c.Set(usernameKey, username)
}

func GetUsername(c *gin.Context) string {
	username, exists := c.Get(usernameKey)
	if !exists {
		return ""
	}
	return username.(string)
}

// GetUserID returns 0 when the request was not authenticated.
func GetUserID(c *gin.Context) uint {
	id, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	return id.(uint)
}
