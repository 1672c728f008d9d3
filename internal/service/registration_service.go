package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/gamefest/gamefest-api/internal/store"
	"github.com/gamefest/gamefest-api/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type RegistrationService struct {
	db    *sqlx.DB
	store *store.ParticipantStore
}

func NewRegistrationService(db *sqlx.DB, store *store.ParticipantStore) *RegistrationService {
	return &RegistrationService{db: db, store: store}
}

type RegisterInput struct {
	Name  string `json:"name"`
	Game  string `json:"game"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Register validates the input and creates an active participant. A second
// active registration for the same (name, game) pair is rejected, compared
// case-insensitively.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*event.Participant, error) {
	name := strings.TrimSpace(input.Name)
	game := strings.TrimSpace(input.Game)
	if name == "" || game == "" {
		return nil, ErrMissingFields
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 40 {
		return nil, ErrNameLength
	}

	exists, err := s.store.ActiveExists(ctx, name, game)
	if err != nil {
		return nil, fmt.Errorf("checking existing registration: %w", err)
	}
	if exists {
		return nil, ErrDuplicateRegistration
	}

	participant := &event.Participant{
		ID:        uuid.New(),
		Name:      name,
		Game:      game,
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Status:    event.StatusActive,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("creating participant: %w", err)
	}
	return participant, nil
}

// ListActive returns the public fields of active participants, newest first.
func (s *RegistrationService) ListActive(ctx context.Context) ([]event.PublicParticipant, error) {
	participants, err := s.store.ListByStatus(ctx, event.StatusActive)
	if err != nil {
		return nil, err
	}
	public := make([]event.PublicParticipant, 0, len(participants))
	for _, p := range participants {
		public = append(public, p.Public())
	}
	return public, nil
}

func (s *RegistrationService) ListAll(ctx context.Context) ([]event.Participant, error) {
	return s.store.ListAll(ctx)
}

// Delete removes a participant. Missing ids are a silent no-op: callers do
// not distinguish "deleted" from "was never there".
func (s *RegistrationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

type UpdateParticipantInput struct {
	Status *string `json:"status"`
	Name   *string `json:"name"`
	Game   *string `json:"game"`
}

// Update applies the provided fields in a single transaction, so a partial
// update can never be left behind.
func (s *RegistrationService) Update(ctx context.Context, id uuid.UUID, input UpdateParticipantInput) error {
	if input.Status == nil && input.Name == nil && input.Game == nil {
		return ErrNoUpdateFields
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if n := utf8.RuneCountInString(name); n < 2 || n > 40 {
			return ErrNameLength
		}
		input.Name = utils.Ptr(name)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	if input.Status != nil {
		if err := s.store.UpdateStatus(ctx, tx, id, *input.Status); err != nil {
			return fmt.Errorf("updating status: %w", err)
		}
	}
	if input.Name != nil {
		if err := s.store.UpdateName(ctx, tx, id, *input.Name); err != nil {
			return fmt.Errorf("updating name: %w", err)
		}
	}
	if input.Game != nil {
		if err := s.store.UpdateGame(ctx, tx, id, strings.TrimSpace(*input.Game)); err != nil {
			return fmt.Errorf("updating game: %w", err)
		}
	}
	return tx.Commit()
}
