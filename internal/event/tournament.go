package event

import (
	"time"

	"github.com/google/uuid"
)

const TournamentUpcoming = "upcoming"

type Tournament struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Game       string    `db:"game" json:"game"`
	MaxPlayers int       `db:"max_players" json:"maxPlayers"`
	StartDate  string    `db:"start_date" json:"startDate"`
	Status     string    `db:"status" json:"status"`
	Prize      string    `db:"prize" json:"prize"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
