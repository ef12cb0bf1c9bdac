package models

import "time"

// PasswordResetToken is a single-use recovery grant. Consumption deletes the
// row; the delete's affected-row count decides the winner between concurrent
// consumption attempts.
type PasswordResetToken struct {
	BaseModel
	Email     string    `gorm:"size:255;not null;index"`
	Token     string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
