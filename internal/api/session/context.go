package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/martijn/watchlist/internal/core/domain"
)

const (
	SessionContextKey = "session"
	OwnerContextKey   = "owner"
)

// Middleware loads the session at the start of every request.
func Middleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionContextKey, store.Load(c.Request))
		c.Next()
	}
}

// FromContext returns the request's session. Outside the middleware an
// unsaved empty session is returned so callers never see nil.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(SessionContextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return &Session{ID: uuid.New().String(), store: NewStore(uuid.New().String(), time.Hour, false)}
}

func SetOwner(c *gin.Context, owner *domain.User) {
	c.Set(OwnerContextKey, owner)
}

// Owner returns the owner record loaded for this request, if any.
func Owner(c *gin.Context) *domain.User {
	if v, ok := c.Get(OwnerContextKey); ok {
		if owner, ok := v.(*domain.User); ok {
			return owner
		}
	}
	return nil
}

// IsAuthenticated reports whether the session belongs to the owner.
func IsAuthenticated(c *gin.Context) bool {
	owner := Owner(c)
	return owner != nil && FromContext(c).UserID == owner.ID
}

// Redirect queues the given messages, saves the session and redirects.
func Redirect(c *gin.Context, location string, flashes ...string) {
	sess := FromContext(c)
	for _, f := range flashes {
		sess.AddFlash(f)
	}
	if err := sess.Save(c.Writer); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, location)
}
