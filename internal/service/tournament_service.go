package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/gamefest/gamefest-api/internal/store"
	"github.com/google/uuid"
)

type TournamentService struct {
	store *store.TournamentStore
}

func NewTournamentService(store *store.TournamentStore) *TournamentService {
	return &TournamentService{store: store}
}

type TournamentInput struct {
	Name       string `json:"name"`
	Game       string `json:"game"`
	MaxPlayers int    `json:"maxPlayers"`
	StartDate  string `json:"startDate"`
	Status     string `json:"status"`
	Prize      string `json:"prize"`
}

func (s *TournamentService) Create(ctx context.Context, input TournamentInput) (*event.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	game := strings.TrimSpace(input.Game)
	if name == "" || game == "" {
		return nil, ErrMissingFields
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = 32
	}
	status := input.Status
	if status == "" {
		status = event.TournamentUpcoming
	}

	tournament := &event.Tournament{
		ID:         uuid.New(),
		Name:       name,
		Game:       game,
		MaxPlayers: maxPlayers,
		StartDate:  input.StartDate,
		Status:     status,
		Prize:      input.Prize,
		CreatedAt:  time.Now(),
	}
	if err := s.store.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("creating tournament: %w", err)
	}
	return tournament, nil
}

func (s *TournamentService) List(ctx context.Context) ([]event.Tournament, error) {
	return s.store.List(ctx)
}

// Delete is a silent no-op on missing ids, same as participant deletion.
func (s *TournamentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// UpdateStatus sets the free-text status. No transition graph is enforced.
func (s *TournamentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrStatusRequired
	}
	return s.store.UpdateStatus(ctx, id, status)
}
