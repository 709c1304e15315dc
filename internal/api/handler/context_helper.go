package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"samaysetu/backend/pkg/response"
)

// Context keys set by middleware.JWTAuth.
const (
	CtxPrincipal = "principal"
	CtxTeacherID = "teacher_id"
	CtxEmail     = "email"
	CtxRole      = "role"
	CtxTokenJTI  = "token_jti"
	CtxTokenExp  = "token_exp"
)

const codeUnauthenticated = 40100

// MustGetTeacherID extracts the authenticated teacher id. On false a 401 has
// already been written and the caller should return.
func MustGetTeacherID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxTeacherID)
	if !exists {
		response.Unauthorized(c, codeUnauthenticated, "Authentication required")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, codeUnauthenticated, "Authentication required")
		return 0, false
	}
	return id, true
}

// tokenMeta jti and expiry of the presented token; zero values when absent.
func tokenMeta(c *gin.Context) (string, time.Time) {
	jti := c.GetString(CtxTokenJTI)
	exp, _ := c.Get(CtxTokenExp)
	expiresAt, _ := exp.(time.Time)
	return jti, expiresAt
}

// pathID parses a positive numeric path parameter, writing a 400 otherwise.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 40019, "Invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
