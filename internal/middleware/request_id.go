package middleware

import (
	"github.com/KATBlackCoder/rapportflow/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "request_id"

	maxRequestIDLen = 64
)

// requestIDFrom keeps a caller supplied id when it is short printable ASCII.
func requestIDFrom(c *gin.Context) string {
	rid := c.GetString(ContextRequestID)
	if rid != "" {
		return rid
	}
	rid = c.GetHeader(HeaderRequestID)
	if rid == "" || len(rid) > maxRequestIDLen {
		return uuid.NewString()
	}
	for i := 0; i < len(rid); i++ {
		if rid[i] < 0x21 || rid[i] > 0x7e {
			return uuid.NewString()
		}
	}
	return rid
}

// RequestID tags every request, its response header and its context with
// one id that ends up in logs and outbox events.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestIDFrom(c)
		c.Set(ContextRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}
