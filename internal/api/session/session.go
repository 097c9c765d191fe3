// Package session keeps the owner's login state and the queue of transient
// messages in a signed cookie.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "watchlist_session"
	issuer     = "watchlist"
)

// Store signs and verifies session cookies with the application secret.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewStore(secret string, ttl time.Duration, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

type claims struct {
	UserID  int64    `json:"uid,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Session is the per-request view of the cookie contents.
type Session struct {
	ID      string
	UserID  int64
	flashes []string
	store   *Store
}

// Load reads the session cookie. A missing, tampered or expired cookie
// yields an empty session.
func (s *Store) Load(r *http.Request) *Session {
	sess := &Session{ID: uuid.New().String(), store: s}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return sess
	}

	var c claims
	token, err := jwt.ParseWithClaims(cookie.Value, &c, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return sess
	}

	if c.ID != "" {
		sess.ID = c.ID
	}
	sess.UserID = c.UserID
	sess.flashes = c.Flashes
	return sess
}

// Save writes the session as a signed cookie, replacing any session cookie
// already set on the response.
func (s *Session) Save(w http.ResponseWriter) error {
	now := time.Now()
	expiresAt := now.Add(s.store.ttl)

	c := claims{
		UserID:  s.UserID,
		Flashes: s.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.store.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	removeCookie(w.Header(), CookieName)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.store.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Session) Login(userID int64) {
	// Fresh id on privilege change
	s.ID = uuid.New().String()
	s.UserID = userID
}

func (s *Session) Logout() {
	s.ID = uuid.New().String()
	s.UserID = 0
}

func (s *Session) AddFlash(message string) {
	s.flashes = append(s.flashes, message)
}

// Flashes returns the queued messages and empties the queue.
func (s *Session) Flashes() []string {
	flashes := s.flashes
	s.flashes = nil
	return flashes
}

func removeCookie(h http.Header, name string) {
	values := h.Values("Set-Cookie")
	if len(values) == 0 {
		return
	}

	h.Del("Set-Cookie")
	prefix := name + "="
	for _, v := range values {
		if len(v) >= len(prefix) && v[:len(prefix)] == prefix {
			continue
		}
		h.Add("Set-Cookie", v)
	}
}
