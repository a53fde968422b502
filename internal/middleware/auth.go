package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/utils"
)

// SessionCookie carries the admin session token.
const SessionCookie = "session"

// TokenValidator checks a session credential and returns the user id it
// carries.
type TokenValidator func(token string) (string, bool)

// JWTValidator builds a TokenValidator over the session signing secret.
func JWTValidator(secret string) TokenValidator {
	return func(token string) (string, bool) {
		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return "", false
		}
		return claims.UserID, true
	}
}

// sessionToken pulls the credential from the session cookie, falling back to
// a bearer Authorization header for API clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}
	return ""
}

// APIGate protects the admin API group: requests without a valid session
// credential get a 401 JSON envelope.
func APIGate(valid TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		userID, ok := valid(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// PageGate restricts every path under prefix to authenticated sessions,
// redirecting misses to the login page. Paths outside the prefix always pass.
func PageGate(prefix, loginPath string, valid TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}
		if token := sessionToken(c); token != "" {
			if userID, ok := valid(token); ok {
				c.Set("userID", userID)
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}
