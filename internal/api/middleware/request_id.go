package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"samaysetu/backend/internal/api/handler"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	requestIDMaxLen = 64
)

// RequestID propagates X-Request-ID from the client or gateway, minting a UUID
// when it is absent or not a plain token.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}

// validRequestID accepts up to 64 characters of [A-Za-z0-9._-].
func validRequestID(rid string) bool {
	if rid == "" || len(rid) > requestIDMaxLen {
		return false
	}
	for _, r := range rid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// requestFields identifies the request and, once JWTAuth ran, the caller.
func requestFields(c *gin.Context) []zap.Field {
	fields := []zap.Field{zap.String("request_id", c.GetString(requestIDKey))}
	if id, ok := c.Get(handler.CtxTeacherID); ok {
		if teacherID, ok := id.(uint); ok {
			fields = append(fields, zap.Uint("teacher_id", teacherID))
		}
	}
	if role := c.GetString(handler.CtxRole); role != "" {
		fields = append(fields, zap.String("role", role))
	}
	return fields
}
