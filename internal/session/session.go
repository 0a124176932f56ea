// Package session keeps the two independent login slots (admin and customer)
// behind an opaque cookie token. The server side record lives in a Store.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("session not found")

// Identity is what a request is allowed to act as. Either slot may be empty.
type Identity struct {
	AdminID    int64  `json:"admin_id,omitempty"`
	UserMobile string `json:"user_mobile,omitempty"`
}

func (i Identity) IsAdmin() bool { return i.AdminID != 0 }
func (i Identity) IsUser() bool  { return i.UserMobile != "" }
func (i Identity) Empty() bool   { return !i.IsAdmin() && !i.IsUser() }

type Store interface {
	Get(ctx context.Context, token string) (Identity, error)
	Set(ctx context.Context, token string, id Identity, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store  Store
	cookie string
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, cookie string, ttl time.Duration, secure bool) *Manager {
	if cookie == "" {
		cookie = "session"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, cookie: cookie, ttl: ttl, secure: secure}
}

// Load resolves the request cookie. A missing or expired session yields an empty identity.
func (m *Manager) Load(c *gin.Context) (string, Identity, error) {
	token, err := c.Cookie(m.cookie)
	if err != nil || token == "" {
		return "", Identity{}, nil
	}
	id, err := m.store.Get(c.Request.Context(), token)
	if errors.Is(err, ErrNoSession) {
		return "", Identity{}, nil
	}
	if err != nil {
		return "", Identity{}, err
	}
	return token, id, nil
}

// Save persists id under token (a new token when empty) and refreshes the cookie.
// An empty identity drops the record and expires the cookie. The token in use is returned.
func (m *Manager) Save(c *gin.Context, token string, id Identity) (string, error) {
	ctx := c.Request.Context()
	if id.Empty() {
		if token != "" {
			if err := m.store.Delete(ctx, token); err != nil {
				return "", err
			}
		}
		m.setCookie(c, "", -1)
		return "", nil
	}
	if token == "" {
		token = uuid.NewString()
	}
	if err := m.store.Set(ctx, token, id, m.ttl); err != nil {
		return "", err
	}
	m.setCookie(c, token, int(m.ttl/time.Second))
	return token, nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie, value, maxAge, "/", "", m.secure, true)
}
