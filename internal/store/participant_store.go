package store

import (
	"context"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ParticipantStore struct {
	db *sqlx.DB
}

const (
	createParticipantQuery = `
		INSERT INTO participants (id, name, game, email, phone, status, created_at)
		VALUES (:id, :name, :game, :email, :phone, :status, :created_at)
	`
	activeDuplicateQuery = `
		SELECT COUNT(*) FROM participants
		WHERE status = ? AND lower(name) = lower(?) AND lower(game) = lower(?)
	`
)

func NewParticipantStore(db *sqlx.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

func (s *ParticipantStore) Create(ctx context.Context, p *event.Participant) error {
	_, err := s.db.NamedExecContext(ctx, createParticipantQuery, p)
	return err
}

func (s *ParticipantStore) Get(ctx context.Context, id uuid.UUID) (*event.Participant, error) {
	var p event.Participant
	err := s.db.GetContext(ctx, &p, "SELECT * FROM participants WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParticipantStore) ListByStatus(ctx context.Context, status string) ([]event.Participant, error) {
	var participants []event.Participant
	err := s.db.SelectContext(ctx, &participants,
		"SELECT * FROM participants WHERE status = ? ORDER BY created_at DESC", status)
	return participants, err
}

func (s *ParticipantStore) ListAll(ctx context.Context) ([]event.Participant, error) {
	var participants []event.Participant
	err := s.db.SelectContext(ctx, &participants,
		"SELECT * FROM participants ORDER BY created_at DESC")
	return participants, err
}

// ActiveExists reports whether an active participant is already registered
// under the same (name, game) pair, compared case-insensitively.
func (s *ParticipantStore) ActiveExists(ctx context.Context, name, game string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, activeDuplicateQuery, event.StatusActive, name, game)
	return count > 0, err
}

// Delete removes a participant by id. Deleting an id that does not exist is
// not an error.
func (s *ParticipantStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id)
	return err
}

func (s *ParticipantStore) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status string) error {
	_, err := tx.ExecContext(ctx, "UPDATE participants SET status = ? WHERE id = ?", status, id)
	return err
}

func (s *ParticipantStore) UpdateName(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, name string) error {
	_, err := tx.ExecContext(ctx, "UPDATE participants SET name = ? WHERE id = ?", name, id)
	return err
}

func (s *ParticipantStore) UpdateGame(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, game string) error {
	_, err := tx.ExecContext(ctx, "UPDATE participants SET game = ? WHERE id = ?", game, id)
	return err
}
