package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/web"
	"github.com/sirupsen/logrus"
)

// ErrorHandlerMiddleware turns panics and errors recorded with c.Error into
// the 500 page.
func ErrorHandlerMiddleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestLogger(c, logger).WithField("panic", err).Error("recovered from panic")
				if !c.Writer.Written() {
					web.RenderError(c, http.StatusInternalServerError)
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			requestLogger(c, logger).WithError(c.Errors.Last()).Error("request failed")
			if !c.Writer.Written() {
				web.RenderError(c, http.StatusInternalServerError)
			}
		}
	}
}

// NotFound renders the 404 page for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		web.RenderError(c, http.StatusNotFound)
	}
}

// MethodNotAllowed renders the 405 page, e.g. for GET on a delete route.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		web.RenderError(c, http.StatusMethodNotAllowed)
	}
}
