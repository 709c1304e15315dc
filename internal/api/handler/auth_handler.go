package handler

import (
	"github.com/gin-gonic/gin"

	"samaysetu/backend/internal/dto"
	"samaysetu/backend/internal/service"
	"samaysetu/backend/pkg/response"
)

// AuthHandler registration, verification, password reset and sessions.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register teacher self-registration
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, result)
}

// VerifyEmail
// GET /auth/verify-email?token=
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var q dto.VerifyEmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.authSvc.VerifyEmail(c.Request.Context(), q.Token); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Email verified successfully. Your account is pending admin approval.")
}

// ForgotPassword
// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Password reset link has been sent to your email")
}

// ResetPassword
// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Password has been reset successfully")
}

// Login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented token.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt := tokenMeta(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		writeError(c, err)
		return
	}

	response.Message(c, "Logged out successfully")
}

// Me the authenticated teacher
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	teacherID, ok := MustGetTeacherID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), teacherID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, result)
}
