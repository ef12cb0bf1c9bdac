package services

import (
	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/repositories"
	"ycsmatch_backend/internal/search"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID uint) (*dto.UserResponse, error)
	ListMembers(filters search.Filters) (*dto.UsersResponse, error)
	UpdateRole(actingUserID, targetUserID uint, role string) error
	Delete(actingUserID, targetUserID uint) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// ListMembers returns the directory in registration order, narrowed by the
// given filters. Empty filters return everyone.
func (s *UserServiceImpl) ListMembers(filters search.Filters) (*dto.UsersResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matched := search.Filter(users, filters)

	return &dto.UsersResponse{Users: dto.NewUserResponseList(matched)}, nil
}

// UpdateRole changes a member's role. Demoting the last remaining admin is
// rejected inside the repository transaction.
func (s *UserServiceImpl) UpdateRole(actingUserID, targetUserID uint, role string) error {
	newRole := models.UserRole(role)
	if !newRole.IsValid() {
		return apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRoleGuarded(actingUserID, targetUserID, newRole); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return apperrors.ErrUserNotFound
		case apperrors.Is(err, auth.ErrLastAdmin):
			return apperrors.ErrLastAdminProtected
		default:
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// Delete removes a member. Self-deletion and removing the last admin are both
// rejected.
func (s *UserServiceImpl) Delete(actingUserID, targetUserID uint) error {
	if err := s.userRepo.DeleteGuarded(actingUserID, targetUserID); err != nil {
		switch {
		case apperrors.Is(err, auth.ErrSelfDelete):
			return apperrors.ErrSelfDeleteForbidden
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return apperrors.ErrUserNotFound
		case apperrors.Is(err, auth.ErrLastAdmin):
			return apperrors.ErrLastAdminProtected
		default:
			return apperrors.InternalError(err)
		}
	}
	return nil
}
