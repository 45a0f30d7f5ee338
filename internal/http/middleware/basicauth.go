package middleware

import (
	"errors"
	"net/http"

	"todoapi/internal/domain"
	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the authenticated username.
const IdentityKey = "username"

// BasicAuth verifies the Authorization: Basic credentials on every request.
// There is no session or token cache; each request resolves the user and
// re-checks the digest from scratch.
func BasicAuth(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			challenge(c)
			return
		}

		ident, err := users.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				challenge(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(IdentityKey, ident)
		c.Next()
	}
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="todoapi"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidCredentials.Error()})
}
