package repositories

import (
	"errors"
	"time"

	"ycsmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrResetTokenNotFound = errors.New("reset token not found")
	ErrResetTokenExpired  = errors.New("reset token expired")
)

type ResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error

	// Consume atomically invalidates the token and returns its email.
	// Exactly one of several concurrent calls for the same token succeeds;
	// the rest get ErrResetTokenNotFound. Expired tokens are removed and
	// reported as ErrResetTokenExpired.
	Consume(token string, now time.Time) (string, error)

	DeleteExpired(now time.Time) (int64, error)
}

type ResetTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &ResetTokenRepositoryImpl{db: db}
}

func (r *ResetTokenRepositoryImpl) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *ResetTokenRepositoryImpl) Consume(token string, now time.Time) (string, error) {
	var email string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var record models.PasswordResetToken
		if err := tx.First(&record, "token = ?", token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenNotFound
			}
			return err
		}

		if now.After(record.ExpiresAt) {
			// Expired tokens are dead either way; drop the row.
			tx.Where("token = ?", token).Delete(&models.PasswordResetToken{})
			return ErrResetTokenExpired
		}

		// The delete's affected-row count is the atomic single-use check:
		// a concurrent consumer that lost the race deleted nothing.
		result := tx.Where("token = ?", token).Delete(&models.PasswordResetToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrResetTokenNotFound
		}

		email = record.Email
		return nil
	})
	if err != nil {
		return "", err
	}
	return email, nil
}

func (r *ResetTokenRepositoryImpl) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
