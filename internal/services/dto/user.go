package dto

import (
	"ycsmatch_backend/internal/models"
)

// UserResponse is the member profile as served to clients. location and
// business are derived display fields; the password hash never leaves the
// model layer.
type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ChatworkID  string `json:"chatworkId"`
	Sns1Type    string `json:"sns1Type"`
	Sns1Account string `json:"sns1Account"`
	Sns2Type    string `json:"sns2Type"`
	Sns2Account string `json:"sns2Account"`
	Sns3Type    string `json:"sns3Type"`
	Sns3Account string `json:"sns3Account"`

	BusinessName        string `json:"businessName"`
	Industry            string `json:"industry"`
	BusinessDescription string `json:"businessDescription"`
	Business            string `json:"business"`
	Country             string `json:"country"`
	Region              string `json:"region"`
	City                string `json:"city"`
	Location            string `json:"location"`

	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Message   string   `json:"message"`
	Mission   string   `json:"mission"`

	ProfileImageURL string  `json:"profileImageUrl"`
	ProfileImage    *string `json:"profileImage"`

	Role         string `json:"role"`
	RegisteredAt string `json:"registeredAt"`
}

// NewUserResponse maps a stored user onto the response shape.
func NewUserResponse(u *models.User) *UserResponse {
	location := u.Region
	if u.Region != "" && u.City != "" {
		location += "・"
	}
	location += u.City

	business := u.BusinessDescription
	if business == "" {
		business = u.BusinessName
	}

	var profileImage *string
	if u.ProfileImageURL != "" {
		img := u.ProfileImageURL
		profileImage = &img
	}

	skills := []string(u.Skills)
	if skills == nil {
		skills = []string{}
	}
	interests := []string(u.Interests)
	if interests == nil {
		interests = []string{}
	}

	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		ChatworkID:  u.ChatworkID,
		Sns1Type:    u.Sns1Type,
		Sns1Account: u.Sns1Account,
		Sns2Type:    u.Sns2Type,
		Sns2Account: u.Sns2Account,
		Sns3Type:    u.Sns3Type,
		Sns3Account: u.Sns3Account,

		BusinessName:        u.BusinessName,
		Industry:            u.Industry,
		BusinessDescription: u.BusinessDescription,
		Business:            business,
		Country:             u.Country,
		Region:              u.Region,
		City:                u.City,
		Location:            location,

		Skills:    skills,
		Interests: interests,
		Message:   u.Message,
		Mission:   u.Mission,

		ProfileImageURL: u.ProfileImageURL,
		ProfileImage:    profileImage,

		Role:         string(u.Role),
		RegisteredAt: u.RegisteredAt.Format("2006-01-02"),
	}
}

// NewUserResponseList maps a slice of users, preserving order.
func NewUserResponseList(users []models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type UsersResponse struct {
	Users []*UserResponse `json:"users"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" validate:"required,is-user-role"`
}
