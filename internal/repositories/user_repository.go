package repositories

import (
	"errors"
	"strings"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// adminCensusLockID is the advisory-lock key serializing every mutation that
// reads the admin census: registration (bootstrap admin), role changes and
// deletions. pg_advisory_xact_lock releases with the transaction.
const adminCensusLockID int64 = 774301

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)

	// Create inserts the user, assigning the admin role iff the store was
	// empty at insertion time. The census check and the insert run in one
	// serialized transaction.
	Create(user *models.User) error

	UpdatePasswordByEmail(email, passwordHash string) error

	// UpdateRoleGuarded applies the last-admin demotion guard and the role
	// change atomically. Returns auth.ErrLastAdmin when the guard trips.
	UpdateRoleGuarded(actingID, targetID uint, newRole models.UserRole) error

	// DeleteGuarded applies the self-delete and last-admin deletion guards
	// and the delete atomically.
	DeleteGuarded(actingID, targetID uint) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up by case-insensitive email comparison.
func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "LOWER(email) = LOWER(?)", strings.TrimSpace(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminCensusLockID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.User{}).
			Where("LOWER(email) = LOWER(?)", user.Email).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrUserAlreadyExists
		}

		var total int64
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			user.Role = models.UserRoleAdmin
		} else {
			user.Role = models.UserRoleUser
		}

		return tx.Create(user).Error
	})
}

func (r *UserRepositoryImpl) UpdatePasswordByEmail(email, passwordHash string) error {
	result := r.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateRoleGuarded(actingID, targetID uint, newRole models.UserRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminCensusLockID).Error; err != nil {
			return err
		}

		var target models.User
		if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var otherAdmins int64
		if err := tx.Model(&models.User{}).
			Where("role = ? AND id != ?", models.UserRoleAdmin, targetID).
			Count(&otherAdmins).Error; err != nil {
			return err
		}
		if err := auth.CheckLastAdminDemotion(actingID, targetID, newRole, otherAdmins); err != nil {
			return err
		}

		return tx.Model(&target).Update("role", newRole).Error
	})
}

func (r *UserRepositoryImpl) DeleteGuarded(actingID, targetID uint) error {
	if err := auth.CheckSelfDelete(actingID, targetID); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminCensusLockID).Error; err != nil {
			return err
		}

		var target models.User
		if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var admins int64
		if err := tx.Model(&models.User{}).
			Where("role = ?", models.UserRoleAdmin).
			Count(&admins).Error; err != nil {
			return err
		}
		if err := auth.CheckLastAdminDelete(target.Role, admins); err != nil {
			return err
		}

		return tx.Delete(&target).Error
	})
}
