package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/homefood/internal/apperr"
	"github.com/MikeMC777/homefood/internal/session"
)

const (
	identityKey = "identity"
	tokenKey    = "session_token"
)

// Session resolves the cookie into an Identity for the rest of the chain.
func Session(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, id, err := m.Load(c)
		if err != nil {
			Fail(c, apperr.Storage(err))
			return
		}
		c.Set(tokenKey, token)
		c.Set(identityKey, id)
		c.Next()
	}
}

func IdentityOf(c *gin.Context) session.Identity {
	if v, ok := c.Get(identityKey); ok {
		return v.(session.Identity)
	}
	return session.Identity{}
}

func TokenOf(c *gin.Context) string { return c.GetString(tokenKey) }

// SetIdentity persists id for the current session and updates the request context.
func SetIdentity(c *gin.Context, m *session.Manager, id session.Identity) error {
	token, err := m.Save(c, TokenOf(c), id)
	if err != nil {
		return apperr.Storage(err)
	}
	c.Set(tokenKey, token)
	c.Set(identityKey, id)
	return nil
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityOf(c).IsAdmin() {
			Fail(c, apperr.Unauthorized("Unauthorized: Admin access required"))
			return
		}
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityOf(c).IsUser() {
			Fail(c, apperr.Unauthorized("Unauthorized: User login required"))
			return
		}
		c.Next()
	}
}
