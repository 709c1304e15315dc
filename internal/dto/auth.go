package dto

// ── auth ──

// RegisterRequest teacher self-registration.
type RegisterRequest struct {
	Name           string `json:"name"            binding:"required,max=100"`
	EmployeeID     string `json:"employee_id"     binding:"required,max=20"`
	Email          string `json:"email"           binding:"required,email,max=100"`
	Phone          string `json:"phone"           binding:"omitempty,max=15"`
	Password       string `json:"password"        binding:"required,min=6,max=72"`
	Specialization string `json:"specialization"  binding:"omitempty,max=500"`
	DepartmentID   *uint  `json:"department_id"`
}

// LoginRequest email + password.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token"        binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// VerifyEmailQuery ?token=
type VerifyEmailQuery struct {
	Token string `form:"token" binding:"required"`
}

// LoginResponse issued token and the authenticated teacher.
type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // seconds
	Role      string          `json:"role"`
	Teacher   TeacherResponse `json:"teacher"`
}

// RegisterResponse registration accepted.
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
