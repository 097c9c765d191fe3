package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip saves sess and loads it back through a request carrying the cookie.
func roundTrip(t *testing.T, store *Store, sess *Session) *Session {
	t.Helper()

	w := httptest.NewRecorder()
	require.NoError(t, sess.Save(w))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return store.Load(req)
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore("secret", time.Hour, false)

	sess := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Zero(t, sess.UserID)
	assert.Empty(t, sess.Flashes())

	sess.Login(domain.OwnerID)
	sess.AddFlash("Login success.")

	loaded := roundTrip(t, store, sess)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, domain.OwnerID, loaded.UserID)
	assert.Equal(t, []string{"Login success."}, loaded.Flashes())
	assert.Empty(t, loaded.Flashes(), "flashes are consumed once")

	again := roundTrip(t, store, loaded)
	assert.Equal(t, domain.OwnerID, again.UserID)
	assert.Empty(t, again.Flashes())
}

func TestStore_RejectsForeignCookies(t *testing.T) {
	store := NewStore("secret", time.Hour, false)
	other := NewStore("another-secret", time.Hour, false)

	sess := other.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.Login(domain.OwnerID)

	loaded := roundTrip(t, store, sess)
	assert.Zero(t, loaded.UserID, "cookie signed with another key must be ignored")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	assert.Zero(t, store.Load(req).UserID)
}

func TestStore_ExpiredCookie(t *testing.T) {
	store := NewStore("secret", -time.Minute, false)

	sess := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.Login(domain.OwnerID)

	loaded := roundTrip(t, store, sess)
	assert.Zero(t, loaded.UserID)
}

func TestSession_Logout(t *testing.T) {
	store := NewStore("secret", time.Hour, true)
	sess := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.Login(domain.OwnerID)
	loginID := sess.ID

	sess.Logout()
	assert.Zero(t, sess.UserID)
	assert.NotEqual(t, loginID, sess.ID)

	w := httptest.NewRecorder()
	require.NoError(t, sess.Save(w))
	cookie := w.Result().Cookies()[0]
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}

func TestSession_SaveReplacesCookie(t *testing.T) {
	store := NewStore("secret", time.Hour, false)
	sess := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	w := httptest.NewRecorder()
	http.SetCookie(w, &http.Cookie{Name: "other", Value: "kept"})
	sess.AddFlash("one")
	require.NoError(t, sess.Save(w))
	sess.AddFlash("two")
	require.NoError(t, sess.Save(w))

	var names []string
	for _, c := range w.Result().Cookies() {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"other", CookieName}, names)
}

func TestIsAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewStore("secret", time.Hour, false)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsAuthenticated(c))

	sess := store.Load(c.Request)
	c.Set(SessionContextKey, sess)
	sess.Login(domain.OwnerID)
	assert.False(t, IsAuthenticated(c), "no owner loaded")

	SetOwner(c, domain.NewOwner("Test", "test", "hash"))
	assert.True(t, IsAuthenticated(c))

	sess.Logout()
	assert.False(t, IsAuthenticated(c))
}

func TestRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewStore("secret", time.Hour, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(SessionContextKey, store.Load(c.Request))

	Redirect(c, "/login", "Invalid input.")
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(w.Result().Cookies()[0])
	assert.Equal(t, []string{"Invalid input."}, store.Load(req).Flashes())
}
