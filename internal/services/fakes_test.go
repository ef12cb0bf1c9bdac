package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"ycsmatch_backend/internal/auth"
	"ycsmatch_backend/internal/email"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/repositories"
)

var errFakeStore = errors.New("fake store failure")

// In-memory repository fakes mirroring the persistence contracts, so the
// service layer is testable without a database.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, strings.TrimSpace(emailAddr)) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) countAdminsLocked(excludeID uint) int64 {
	var count int64
	for id, user := range r.users {
		if id != excludeID && user.Role == models.UserRoleAdmin {
			count++
		}
	}
	return count
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repositories.ErrUserAlreadyExists
		}
	}

	if len(r.users) == 0 {
		user.Role = models.UserRoleAdmin
	} else {
		user.Role = models.UserRoleUser
	}

	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdatePasswordByEmail(emailAddr, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, emailAddr) {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateRoleGuarded(actingID, targetID uint, newRole models.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.users[targetID]
	if !ok {
		return repositories.ErrUserNotFound
	}

	otherAdmins := r.countAdminsLocked(targetID)
	if err := auth.CheckLastAdminDemotion(actingID, targetID, newRole, otherAdmins); err != nil {
		return err
	}

	target.Role = newRole
	return nil
}

func (r *fakeUserRepo) DeleteGuarded(actingID, targetID uint) error {
	if err := auth.CheckSelfDelete(actingID, targetID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.users[targetID]
	if !ok {
		return repositories.ErrUserNotFound
	}

	admins := r.countAdminsLocked(0)
	if err := auth.CheckLastAdminDelete(target.Role, admins); err != nil {
		return err
	}

	delete(r.users, targetID)
	return nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*models.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(token *models.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeResetRepo) Consume(token string, now time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.tokens[token]
	if !ok {
		return "", repositories.ErrResetTokenNotFound
	}
	delete(r.tokens, token)

	if now.After(record.ExpiresAt) {
		return "", repositories.ErrResetTokenExpired
	}
	return record.Email, nil
}

func (r *fakeResetRepo) DeleteExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for key, record := range r.tokens {
		if now.After(record.ExpiresAt) {
			delete(r.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

type fakeNotificationRepo struct {
	mu       sync.Mutex
	settings map[string]string
	failGet  bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{settings: make(map[string]string)}
}

func (r *fakeNotificationRepo) GetAll() (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet {
		return nil, errFakeStore
	}
	out := make(map[string]string, len(r.settings))
	for key, value := range r.settings {
		out[key] = value
	}
	return out, nil
}

func (r *fakeNotificationRepo) Upsert(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

// recordingEmailProvider captures outbound mail and signals each delivery so
// tests can wait for the async dispatch.
type recordingEmailProvider struct {
	mu   sync.Mutex
	sent []email.Email
	ch   chan email.Email
}

func newRecordingEmailProvider() *recordingEmailProvider {
	return &recordingEmailProvider{ch: make(chan email.Email, 16)}
}

func (p *recordingEmailProvider) Send(msg *email.Email) error {
	p.mu.Lock()
	p.sent = append(p.sent, *msg)
	p.mu.Unlock()
	p.ch <- *msg
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

// waitForMail blocks until n messages arrived or the timeout passed.
func (p *recordingEmailProvider) waitForMail(n int, timeout time.Duration) []email.Email {
	deadline := time.After(timeout)
	received := make([]email.Email, 0, n)
	for len(received) < n {
		select {
		case msg := <-p.ch:
			received = append(received, msg)
		case <-deadline:
			return received
		}
	}
	return received
}
