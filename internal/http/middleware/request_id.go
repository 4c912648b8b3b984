package middleware

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/common/id"
	"basegraph.app/heronames/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a snowflake ID, echoed in the response
// header and attached to the request context's log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.NewString()
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
			Component: "heronames.http",
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
