package apperrors

import "net/http"

// Predefined errors for the member-directory domain.

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrAdminOnly          = New(CodeUnauthorized, "auth", "Admin only", http.StatusUnauthorized)

	ErrUserNotFound       = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "users", "This email is already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "users", "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeValidationFailed, "users", `Role must be "admin" or "user"`, http.StatusBadRequest)

	// Last-admin and self-action protections.
	ErrSelfDeleteForbidden = New(CodeInvalidOperation, "users", "Cannot delete your own account", http.StatusBadRequest)
	ErrLastAdminProtected  = New(CodeInvalidOperation, "users", "Cannot remove the last admin", http.StatusBadRequest)

	// Password reset lifecycle.
	ErrResetTokenNotFound = New(CodeNotFound, "password_reset", "Reset token not found or already used", http.StatusBadRequest)
	ErrResetTokenExpired  = New(CodeTokenExpired, "password_reset", "Reset token has expired", http.StatusBadRequest)
)
