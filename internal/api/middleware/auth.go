package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/api/session"
	"github.com/martijn/watchlist/internal/core/service"
)

const LoginRequiredMessage = "Please log in to access this page."

// LoadOwner reads the owner record once per request so handlers and views
// see a consistent authentication state.
func LoadOwner(ownerService *service.OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := ownerService.Owner(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		session.SetOwner(c, owner)
		c.Next()
	}
}

// RequireOwner guards handlers that only the logged-in owner may use.
// Anyone else is sent to the login page.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAuthenticated(c) {
			session.Redirect(c, "/login", LoginRequiredMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
