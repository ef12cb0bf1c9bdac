package dto

// SaveSettingsRequest carries the subset of notification template settings to
// persist. Keys outside the recognized set are skipped, not saved.
type SaveSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required" validate:"required,min=1"`
}

type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type SaveSettingsResponse struct {
	Success bool `json:"success"`
	Saved   int  `json:"saved"`
}
