package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one key=value line per request once the handler chain is done
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		bytes := c.Writer.Size()
		if bytes < 0 {
			bytes = 0
		}
		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			c.GetString(requestIDKey), c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), bytes, time.Since(start).Milliseconds(),
		)
	}
}
