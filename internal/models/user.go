package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is a member of the matching directory: login credentials plus the
// business profile shown to other members.
type User struct {
	BaseModel
	Email        string   `gorm:"size:255;not null"` // unique via LOWER(email) functional index
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"type:varchar(32);not null;default:'user'"`

	Name        string `gorm:"size:255;not null;default:''"`
	Phone       string `gorm:"size:64;not null;default:''"`
	ChatworkID  string `gorm:"size:128;not null;default:''"`
	Sns1Type    string `gorm:"size:64;not null;default:''"`
	Sns1Account string `gorm:"size:255;not null;default:''"`
	Sns2Type    string `gorm:"size:64;not null;default:''"`
	Sns2Account string `gorm:"size:255;not null;default:''"`
	Sns3Type    string `gorm:"size:64;not null;default:''"`
	Sns3Account string `gorm:"size:255;not null;default:''"`

	BusinessName        string `gorm:"size:255;not null;default:''"`
	Industry            string `gorm:"size:128;not null;default:''"`
	BusinessDescription string
	Country             string `gorm:"size:128;not null;default:''"`
	Region              string `gorm:"size:128;not null;default:''"`
	City                string `gorm:"size:128;not null;default:''"`

	Skills    datatypes.JSONSlice[string]
	Interests datatypes.JSONSlice[string]

	Message         string
	Mission         string
	ProfileImageURL string `gorm:"size:512;not null;default:''"`

	RegisteredAt time.Time `gorm:"type:date;not null"`
}
