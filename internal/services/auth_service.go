package services

import (
	"strings"
	"time"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/config"
	"ycsmatch_backend/internal/email"
	"ycsmatch_backend/internal/logger"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/repositories"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/pkg/apperrors"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	resetRepo     repositories.ResetTokenRepository
	notifRepo     repositories.NotificationRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetRepo repositories.ResetTokenRepository,
	notifRepo repositories.NotificationRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		resetRepo:     resetRepo,
		notifRepo:     notifRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Register creates a member. The very first account in an empty store becomes
// the bootstrap admin; the repository serializes that decision against
// concurrent registrations.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	emailAddr := strings.TrimSpace(req.Email)
	if emailAddr == "" {
		return nil, apperrors.NewBadRequestError("email and password required")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleUser, // repository promotes the first user

		Name:        req.Name,
		Phone:       req.Phone,
		ChatworkID:  req.ChatworkID,
		Sns1Type:    req.Sns1Type,
		Sns1Account: req.Sns1Account,
		Sns2Type:    req.Sns2Type,
		Sns2Account: req.Sns2Account,
		Sns3Type:    req.Sns3Type,
		Sns3Account: req.Sns3Account,

		BusinessName:        req.BusinessName,
		Industry:            req.Industry,
		BusinessDescription: req.BusinessDescription,
		Country:             req.Country,
		Region:              req.Region,
		City:                req.City,
		Skills:              req.Skills,
		Interests:           req.Interests,
		Message:             req.Message,
		Mission:             req.Mission,
		ProfileImageURL:     req.ProfileImageURL,

		RegisteredAt: time.Now().Truncate(24 * time.Hour),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Mail is a best-effort side effect after the commit; a broken SMTP
	// setup must never fail the registration.
	s.dispatchRegistrationMails(user)

	return &dto.RegisterResponse{Success: true, UserID: user.ID}, nil
}

// Login authenticates by case-insensitive email. Unknown email and wrong
// password return the same error, with a burned bcrypt comparison keeping the
// two paths at the same cost.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			auth.BurnPasswordCheck(req.Password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

// RequestPasswordReset always succeeds at the external boundary. A token is
// stored and the reset mail dispatched whether or not an account exists for
// the address, so the response leaks nothing about registration status.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	emailAddr = strings.TrimSpace(emailAddr)
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	record := &models.PasswordResetToken{
		Email:     emailAddr,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(record); err != nil {
		return apperrors.InternalError(err)
	}

	s.dispatchResetMail(emailAddr, token)
	return nil
}

// ResetPassword consumes a single-use token and installs the new password.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	emailAddr, err := s.resetRepo.Consume(token, time.Now())
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrResetTokenExpired):
			return apperrors.ErrResetTokenExpired
		case apperrors.Is(err, repositories.ErrResetTokenNotFound):
			return apperrors.ErrResetTokenNotFound
		default:
			return apperrors.InternalError(err)
		}
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(emailAddr, hashedPassword); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Token was issued for an address with no account.
			return apperrors.ErrResetTokenNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// --- Mail side effects ---

// resolveSettings merges stored notification settings over the baked-in
// defaults. A read failure falls back to the defaults.
func (s *AuthServiceImpl) resolveSettings() map[string]string {
	settings := models.DefaultNotificationSettings()
	stored, err := s.notifRepo.GetAll()
	if err != nil {
		logger.WithError(err).Warn("failed to load notification settings, using defaults")
		return settings
	}
	for key, value := range stored {
		settings[key] = value
	}
	return settings
}

func (s *AuthServiceImpl) dispatchRegistrationMails(user *models.User) {
	settings := s.resolveSettings()
	vars := map[string]string{
		"name":      user.Name,
		"email":     user.Email,
		"date":      user.RegisteredAt.Format("2006-01-02"),
		"login_url": s.cfg.App.SiteURL,
		"signature": email.Signature,
	}

	if s.cfg.App.AdminEmail != "" && settings[models.SettingAdminNotifyEnabled] == "1" {
		s.sendAsync(&email.Email{
			To:      []string{s.cfg.App.AdminEmail},
			Subject: email.RenderTemplate(settings[models.SettingAdminNotifySubject], vars),
			Body:    email.RenderTemplate(settings[models.SettingAdminNotifyBody], vars),
		})
	}

	if s.cfg.App.SiteURL != "" && settings[models.SettingUserWelcomeEnabled] == "1" {
		s.sendAsync(&email.Email{
			To:      []string{user.Email},
			Subject: email.RenderTemplate(settings[models.SettingUserWelcomeSubject], vars),
			Body:    email.RenderTemplate(settings[models.SettingUserWelcomeBody], vars),
		})
	}
}

func (s *AuthServiceImpl) dispatchResetMail(emailAddr, token string) {
	if s.cfg.App.SiteURL == "" {
		return
	}

	settings := s.resolveSettings()
	resetLink := strings.TrimRight(s.cfg.App.SiteURL, "/") + "/#reset-password?token=" + token
	vars := map[string]string{
		"name":       "",
		"email":      emailAddr,
		"date":       time.Now().Format("2006-01-02 15:04"),
		"reset_link": resetLink,
		"login_url":  s.cfg.App.SiteURL,
		"signature":  email.Signature,
	}

	s.sendAsync(&email.Email{
		To:      []string{emailAddr},
		Subject: email.RenderTemplate(settings[models.SettingPasswordResetSubject], vars),
		Body:    email.RenderTemplate(settings[models.SettingPasswordResetBody], vars),
	})
}

// sendAsync delivers in the background; failures are logged, never surfaced.
func (s *AuthServiceImpl) sendAsync(msg *email.Email) {
	go func() {
		if err := s.emailProvider.Send(msg); err != nil {
			logger.WithError(err).Warn("email delivery failed", "subject", msg.Subject)
		}
	}()
}
