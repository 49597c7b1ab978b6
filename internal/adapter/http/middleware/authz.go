package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jazz7-Dev/FoodY.com/internal/security"
)

// ctxUserID is the gin context key carrying the authenticated user id.
const ctxUserID = "userID"

type Authz struct {
	tokens *security.TokenService
}

func NewAuthz(tokens *security.TokenService) *Authz {
	return &Authz{tokens: tokens}
}

// Require validates the bearer token and stores the resolved user id on the
// context. Missing, malformed, or expired tokens all reject with 401 before
// the handler runs.
func (a *Authz) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "Authorization token missing")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		userID, ok := a.tokens.Verify(raw)
		if !ok {
			unauth(c, "Invalid or expired token")
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Require.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func unauth(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer error="invalid_token"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}
