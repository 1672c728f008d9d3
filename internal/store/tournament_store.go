package store

import (
	"context"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

const createTournamentQuery = `
	INSERT INTO tournaments (id, name, game, max_players, start_date, status, prize, created_at)
	VALUES (:id, :name, :game, :max_players, :start_date, :status, :prize, :created_at)
`

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) Create(ctx context.Context, t *event.Tournament) error {
	_, err := s.db.NamedExecContext(ctx, createTournamentQuery, t)
	return err
}

func (s *TournamentStore) List(ctx context.Context) ([]event.Tournament, error) {
	var tournaments []event.Tournament
	err := s.db.SelectContext(ctx, &tournaments,
		"SELECT * FROM tournaments ORDER BY created_at DESC")
	return tournaments, err
}

func (s *TournamentStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tournaments WHERE id = ?", id)
	return err
}

func (s *TournamentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE tournaments SET status = ? WHERE id = ?", status, id)
	return err
}
