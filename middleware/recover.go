package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/responses"
)

// RecoverJSON is the crash-containment boundary: any panic escaping a handler
// becomes the opaque server-error envelope. The panic is logged server-side
// and nothing about it reaches the client.
func RecoverJSON(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"panic":  r,
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				}).Error("request handler panicked")
				responses.ServerError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
