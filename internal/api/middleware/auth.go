package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"samaysetu/backend/internal/api/handler"
	"samaysetu/backend/internal/service"
	pkgerrors "samaysetu/backend/pkg/errors"
	"samaysetu/backend/pkg/jwt"
	"samaysetu/backend/pkg/response"
)

const (
	codeUnauthenticated = 40100
	codeForbidden       = 40300
)

// Revocations answers whether a token id was revoked at logout.
type Revocations interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// PrincipalLoader resolves the account behind a token subject.
// service.AuthService satisfies it.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, email string) (*service.Principal, error)
}

// JWTAuth verifies the Bearer token, reloads the account it was issued to and
// injects the principal, teacher id, email, role, jti and expiry into the
// context. Identity and role come from the account, never from the claims.
// revoked may be nil, in which case logout revocation is not enforced.
func JWTAuth(jwtMgr *jwt.Manager, accounts PrincipalLoader, revoked Revocations, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, codeUnauthenticated, "Missing Authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, codeUnauthenticated, "Invalid Authorization header")
			c.Abort()
			return
		}
		token := parts[1]

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, codeUnauthenticated, "Token is invalid or expired")
			c.Abort()
			return
		}

		if revoked != nil && claims.ID != "" {
			blacklisted, err := revoked.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// lookup failures fail open
				logger.Warn("token blacklist lookup failed", append(requestFields(c), zap.Error(err))...)
			} else if blacklisted {
				response.Unauthorized(c, codeUnauthenticated, "Token has been revoked")
				c.Abort()
				return
			}
		}

		principal, err := accounts.LoadPrincipal(c.Request.Context(), claims.Subject)
		if err != nil {
			if appErr, ok := pkgerrors.As(err); ok && appErr.Kind == pkgerrors.KindUnauthorized {
				response.Unauthorized(c, appErr.Code, appErr.Message)
			} else {
				logger.Error("principal lookup failed",
					append(requestFields(c), zap.String("subject", claims.Subject), zap.Error(err))...)
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		if !jwtMgr.ValidateToken(token, principal.Email) {
			response.Unauthorized(c, codeUnauthenticated, "Token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(handler.CtxPrincipal, principal)
		c.Set(handler.CtxTeacherID, principal.TeacherID)
		c.Set(handler.CtxEmail, principal.Email)
		c.Set(handler.CtxRole, principal.Role)
		c.Set(handler.CtxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(handler.CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth allows the request only when the authenticated principal holds
// ROLE_<r> for one of allowedRoles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(handler.CtxPrincipal)
		principal, _ := v.(*service.Principal)
		if principal == nil {
			response.Unauthorized(c, codeUnauthenticated, "Authentication required")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if principal.HasAuthority("ROLE_" + r) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, codeForbidden, "Access denied")
		c.Abort()
	}
}
