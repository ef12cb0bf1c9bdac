package services

import (
	"strings"
	"testing"
	"time"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/config"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.SiteURL = "https://match.example.com"
	cfg.App.AdminEmail = "admin@example.com"
	return cfg
}

type authFixture struct {
	userRepo  *fakeUserRepo
	resetRepo *fakeResetRepo
	notifRepo *fakeNotificationRepo
	mailer    *recordingEmailProvider
	service   AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	require.NoError(t, auth.Init("service-test-secret-0123456789", time.Hour))

	f := &authFixture{
		userRepo:  newFakeUserRepo(),
		resetRepo: newFakeResetRepo(),
		notifRepo: newFakeNotificationRepo(),
		mailer:    newRecordingEmailProvider(),
	}
	f.service = NewAuthService(f.userRepo, f.resetRepo, f.notifRepo, f.mailer, testConfig())
	return f
}

func (f *authFixture) register(t *testing.T, emailAddr, password string) *dto.RegisterResponse {
	t.Helper()
	res, err := f.service.Register(&dto.RegisterRequest{
		Email:    emailAddr,
		Password: password,
		Name:     "Test User",
	})
	require.NoError(t, err)
	return res
}

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	f := newAuthFixture(t)

	first := f.register(t, "first@example.com", "password123")
	second := f.register(t, "second@example.com", "password123")

	firstUser, err := f.userRepo.FindByID(first.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, firstUser.Role)

	secondUser, err := f.userRepo.FindByID(second.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, secondUser.Role)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "dup@example.com", "password123")

	_, err := f.service.Register(&dto.RegisterRequest{
		Email:    "DUP@Example.COM",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(&dto.RegisterRequest{
		Email:    "weak@example.com",
		Password: "1234567",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegister_DispatchesAdminAndWelcomeMail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "newbie@example.com", "password123")

	mails := f.mailer.waitForMail(2, 2*time.Second)
	require.Len(t, mails, 2)

	recipients := map[string]bool{}
	for _, m := range mails {
		require.Len(t, m.To, 1)
		recipients[m.To[0]] = true
		assert.NotEmpty(t, m.Subject)
		assert.NotContains(t, m.Body, "{{name}}", "placeholders must be substituted")
	}
	assert.True(t, recipients["admin@example.com"])
	assert.True(t, recipients["newbie@example.com"])
}

func TestRegister_DisabledWelcomeMailIsSkipped(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.notifRepo.Upsert(models.SettingUserWelcomeEnabled, "0"))

	f.register(t, "quiet@example.com", "password123")

	mails := f.mailer.waitForMail(1, 2*time.Second)
	require.Len(t, mails, 1)
	assert.Equal(t, []string{"admin@example.com"}, mails[0].To)
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "login@example.com", "password123")

	res, err := f.service.Login(&dto.LoginRequest{
		Email:    "LOGIN@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "login@example.com", res.User.Email)

	claims, err := auth.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
}

func TestLogin_UniformFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "known@example.com", "password123")

	_, wrongPassword := f.service.Login(&dto.LoginRequest{
		Email:    "known@example.com",
		Password: "not-the-password",
	})
	_, unknownEmail := f.service.Login(&dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRequestPasswordReset_AlwaysSucceeds(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "member@example.com", "password123")

	assert.NoError(t, f.service.RequestPasswordReset("member@example.com"))
	assert.NoError(t, f.service.RequestPasswordReset("stranger@example.com"))

	// Both addresses get a token and a mail, so responses and side effects
	// are indistinguishable from outside.
	mails := f.mailer.waitForMail(2, 2*time.Second)
	require.Len(t, mails, 2)
	for _, m := range mails {
		assert.Contains(t, m.Body, "https://match.example.com/#reset-password?token=")
	}
}

func TestRequestPasswordReset_IgnoresNonAddresses(t *testing.T) {
	f := newAuthFixture(t)

	assert.NoError(t, f.service.RequestPasswordReset(""))
	assert.NoError(t, f.service.RequestPasswordReset("   "))
	assert.NoError(t, f.service.RequestPasswordReset("no-at-sign"))

	assert.Empty(t, f.mailer.waitForMail(1, 100*time.Millisecond))
}

func TestResetPassword_FullFlow(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "reset@example.com", "oldpassword")

	require.NoError(t, f.service.RequestPasswordReset("reset@example.com"))
	mails := f.mailer.waitForMail(1, 2*time.Second)
	require.Len(t, mails, 1)

	token := extractToken(t, mails[0].Body)
	require.NoError(t, f.service.ResetPassword(token, "newpassword"))

	// Old password no longer works, new one does.
	_, err := f.service.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "oldpassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.service.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestResetPassword_TokenIsSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "once@example.com", "oldpassword")

	require.NoError(t, f.service.RequestPasswordReset("once@example.com"))
	mails := f.mailer.waitForMail(1, 2*time.Second)
	require.Len(t, mails, 1)
	token := extractToken(t, mails[0].Body)

	require.NoError(t, f.service.ResetPassword(token, "newpassword1"))
	err := f.service.ResetPassword(token, "newpassword2")
	assert.ErrorIs(t, err, apperrors.ErrResetTokenNotFound)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "late@example.com", "oldpassword")

	expired := &models.PasswordResetToken{
		Email:     "late@example.com",
		Token:     "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.resetRepo.Create(expired))

	err := f.service.ResetPassword(expired.Token, "newpassword")
	assert.ErrorIs(t, err, apperrors.ErrResetTokenExpired)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	err := f.service.ResetPassword("nonexistent", "newpassword")
	assert.ErrorIs(t, err, apperrors.ErrResetTokenNotFound)
}

func TestResetPassword_WeakPasswordCheckedBeforeConsuming(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "keep@example.com", "oldpassword")

	require.NoError(t, f.service.RequestPasswordReset("keep@example.com"))
	mails := f.mailer.waitForMail(1, 2*time.Second)
	require.Len(t, mails, 1)
	token := extractToken(t, mails[0].Body)

	err := f.service.ResetPassword(token, "short")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	// The token must survive the rejected attempt.
	assert.NoError(t, f.service.ResetPassword(token, "longenough"))
}

func extractToken(t *testing.T, body string) string {
	t.Helper()
	const marker = "?token="
	idx := strings.Index(body, marker)
	require.GreaterOrEqual(t, idx, 0, "reset mail must contain a token link")
	token := body[idx+len(marker):]
	// Token runs to the end of the link line.
	if end := strings.IndexAny(token, "\n "); end >= 0 {
		return token[:end]
	}
	return token
}
