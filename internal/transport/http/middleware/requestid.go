package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID doubles as the header name and the gin context key.
const KeyRequestID = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or mints a fresh uuid, and
// echoes it on the response so clients can correlate against the access log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
