package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/api/session"
)

// Render renders a page with the layout data every view needs: the owner,
// the authentication state and the pending transient messages, which are
// consumed by this render.
func Render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := session.FromContext(c)
	data["Owner"] = session.Owner(c)
	data["Authenticated"] = session.IsAuthenticated(c)
	data["Flashes"] = sess.Flashes()

	if err := sess.Save(c.Writer); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.HTML(status, page, data)
}

// RenderError renders the error page for an HTTP status.
func RenderError(c *gin.Context, status int) {
	Render(c, status, PageError, gin.H{
		"StatusCode": status,
		"Title":      errorTitle(status),
	})
}

func errorTitle(status int) string {
	if status == http.StatusNotFound {
		return "Page Not Found"
	}
	return http.StatusText(status)
}
