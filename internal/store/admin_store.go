package store

import (
	"context"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/jmoiron/sqlx"
)

type AdminStore struct {
	db *sqlx.DB
}

func NewAdminStore(db *sqlx.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins")
	return count, err
}

func (s *AdminStore) Create(ctx context.Context, admin *event.Admin) error {
	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO admins (username, password_hash, created_at)
		VALUES (:username, :password_hash, :created_at)`, admin)
	if err != nil {
		return err
	}
	admin.ID, err = res.LastInsertId()
	return err
}

func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*event.Admin, error) {
	var admin event.Admin
	err := s.db.GetContext(ctx, &admin, "SELECT * FROM admins WHERE username = ?", username)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) GetByID(ctx context.Context, id int64) (*event.Admin, error) {
	var admin event.Admin
	err := s.db.GetContext(ctx, &admin, "SELECT * FROM admins WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE admins SET password_hash = ? WHERE id = ?", passwordHash, id)
	return err
}
