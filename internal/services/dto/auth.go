package dto

// RegisterRequest carries the credentials plus the optional business profile.
// Unknown JSON keys are ignored; password policy is enforced in the service so
// the failure maps to WEAK_PASSWORD rather than a generic validation error.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`

	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ChatworkID  string `json:"chatworkId"`
	Sns1Type    string `json:"sns1Type"`
	Sns1Account string `json:"sns1Account"`
	Sns2Type    string `json:"sns2Type"`
	Sns2Account string `json:"sns2Account"`
	Sns3Type    string `json:"sns3Type"`
	Sns3Account string `json:"sns3Account"`

	BusinessName        string   `json:"businessName"`
	Industry            string   `json:"industry"`
	BusinessDescription string   `json:"businessDescription"`
	Country             string   `json:"country"`
	Region              string   `json:"region"`
	City                string   `json:"city"`
	Skills              []string `json:"skills"`
	Interests           []string `json:"interests"`
	Message             string   `json:"message"`
	Mission             string   `json:"mission"`
	ProfileImageURL     string   `json:"profileImageUrl"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// ForgotPasswordRequest deliberately has no required rule: the endpoint
// answers success for any input, and the service silently skips addresses it
// cannot mail.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" validate:"required"`
	NewPassword string `json:"newPassword" binding:"required" validate:"required"`
}
