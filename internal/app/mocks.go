package app

import (
	"ycsmatch_backend/internal/email"
	"ycsmatch_backend/internal/logger"
)

// MockEmailProvider is used when no SMTP host is configured; it logs instead
// of delivering.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("mock email", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }
