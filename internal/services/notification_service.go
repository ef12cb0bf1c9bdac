package services

import (
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/repositories"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/pkg/apperrors"
)

type NotificationService interface {
	GetSettings() (*dto.SettingsResponse, error)
	SaveSettings(req *dto.SaveSettingsRequest) (*dto.SaveSettingsResponse, error)
}

type NotificationServiceImpl struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationService(notifRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

// GetSettings returns every recognized key, stored values layered over the
// defaults.
func (s *NotificationServiceImpl) GetSettings() (*dto.SettingsResponse, error) {
	settings := models.DefaultNotificationSettings()

	stored, err := s.notifRepo.GetAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for key, value := range stored {
		settings[key] = value
	}

	return &dto.SettingsResponse{Settings: settings}, nil
}

// SaveSettings upserts the recognized keys from the request and reports how
// many were written. Unknown keys are skipped, not rejected.
func (s *NotificationServiceImpl) SaveSettings(req *dto.SaveSettingsRequest) (*dto.SaveSettingsResponse, error) {
	saved := 0
	for key, value := range req.Settings {
		if !models.IsNotificationSettingKey(key) {
			continue
		}
		if err := s.notifRepo.Upsert(key, value); err != nil {
			return nil, apperrors.InternalError(err)
		}
		saved++
	}

	return &dto.SaveSettingsResponse{Success: true, Saved: saved}, nil
}
