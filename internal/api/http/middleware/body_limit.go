package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies. Multipart uploads get their own, larger limit.
func BodyLimit(maxBytes, maxMultipartBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Next()
			return
		}

		limit := maxBytes
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			limit = maxMultipartBytes
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
