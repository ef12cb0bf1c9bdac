package repositories

import (
	"ycsmatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository interface {
	// GetAll returns the stored settings keyed by setting key.
	GetAll() (map[string]string, error)

	// Upsert inserts or replaces one setting value.
	Upsert(key, value string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) GetAll() (map[string]string, error) {
	var rows []models.NotificationSetting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.SettingKey] = row.SettingValue
	}
	return settings, nil
}

func (r *NotificationRepositoryImpl) Upsert(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&models.NotificationSetting{
		SettingKey:   key,
		SettingValue: value,
	}).Error
}
