package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuitionhub/tuition-backend/internal/service"
)

const (
	// ContextKeyIdentity is the Gin context key for the authenticated identity.
	ContextKeyIdentity = "identity"

	basicRealm = `Basic realm="tuition", charset="UTF-8"`
)

// RequireBasicAuth validates HTTP Basic credentials on every request.
// There is no session or token: each call re-supplies username and
// password, and each call hits the credential store.
//
// Missing headers, unknown usernames, and wrong passwords all produce the
// same empty 401 so the response leaks nothing about which part failed.
// Only a credential-store fault is surfaced differently, as a 500.
func RequireBasicAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the Gin context.
// Returns nil on unauthenticated (public) requests.
func GetIdentity(c *gin.Context) *service.Identity {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := val.(*service.Identity)
	if !ok {
		return nil
	}
	return identity
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", basicRealm)
	c.AbortWithStatus(http.StatusUnauthorized)
}
