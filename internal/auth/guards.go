package auth

import (
	"errors"

	"ycsmatch_backend/internal/models"
)

// Invariant guards for admin mutations. Each is a pure function over the
// current role census and the acting/target ids; the repository evaluates
// them inside the same transaction as the mutation they protect.

var (
	ErrSelfDelete = errors.New("cannot delete own account")
	ErrLastAdmin  = errors.New("would leave zero admins")
)

// CheckSelfDelete rejects an admin deleting the account bound to their own
// token, regardless of how many admins exist.
func CheckSelfDelete(actingID, targetID uint) error {
	if actingID == targetID {
		return ErrSelfDelete
	}
	return nil
}

// CheckLastAdminDelete rejects deleting an admin when no other admin would
// remain. adminCount is the census including the target.
func CheckLastAdminDelete(targetRole models.UserRole, adminCount int64) error {
	if targetRole == models.UserRoleAdmin && adminCount <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// CheckLastAdminDemotion rejects an admin demoting themselves to user unless
// at least one other admin exists. otherAdminCount excludes the target.
func CheckLastAdminDemotion(actingID, targetID uint, newRole models.UserRole, otherAdminCount int64) error {
	if actingID == targetID && newRole == models.UserRoleUser && otherAdminCount == 0 {
		return ErrLastAdmin
	}
	return nil
}
