package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

////////////////////////////////////////////////////////////////////////
// Request tagging middleware
////////////////////////////////////////////////////////////////////////

const (
	requestIDHeaderKey  = "X-Request-ID"      // HTTP header carrying the request id
	requestIDContextKey = "request_id"        // Context key for storing the request id
)

// requestIDMiddleware tags every request with an id so a failing proxied call
// can be traced across the server log and the response. An id supplied by the
// caller is kept; otherwise a new one is generated.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeaderKey)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, id)
		ctx.Writer.Header().Set(requestIDHeaderKey, id)

		ctx.Next()
	}
}
