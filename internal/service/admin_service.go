package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gamefest/gamefest-api/internal/auth"
	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/gamefest/gamefest-api/internal/store"
)

type AdminService struct {
	store *store.AdminStore
}

func NewAdminService(store *store.AdminStore) *AdminService {
	return &AdminService{store: store}
}

// EnsureSeedAdmin creates the initial admin account iff the table is empty.
func (s *AdminService) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}
	return s.store.Create(ctx, &event.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
}

// Login verifies the credentials. Missing credentials, an unknown username
// and a wrong password all fail with the same error, so a caller cannot
// enumerate usernames.
func (s *AdminService) Login(ctx context.Context, username, password string) (*event.Admin, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// ChangePassword re-hashes and overwrites the password of the admin owning
// the session, after verifying the current one against that same row.
func (s *AdminService) ChangePassword(ctx context.Context, adminID int64, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	admin, err := s.store.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("looking up admin: %w", err)
	}
	if !auth.CheckPassword(admin.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing new password: %w", err)
	}
	return s.store.UpdatePassword(ctx, adminID, hash)
}
