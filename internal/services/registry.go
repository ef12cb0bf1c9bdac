package services

import (
	"ycsmatch_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	NotificationService NotificationService
	EmailProvider       email.Provider
}
