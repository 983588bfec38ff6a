package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/auth"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

const currentUserKey = "currentUser"

// Authenticate checks “Authorization: Bearer <token>” against the identity provider
// and sets “currentUser” in context. Preflight requests pass through untouched.
func Authenticate(v auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization header"})
			return
		}

		user, err := v.ValidateToken(c.Request.Context(), auth.TokenFromHeader(header))
		if err != nil || user == nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser retrieves *model.User from Gin context (after Authenticate has run).
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	u, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := u.(*model.User)
	return user, ok
}
