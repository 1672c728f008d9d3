package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusBanned = "banned"
)

type Participant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Game      string    `db:"game" json:"game"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PublicParticipant is the subset of fields exposed on the public listing.
type PublicParticipant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Game      string    `json:"game"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Participant) Public() PublicParticipant {
	return PublicParticipant{
		ID:        p.ID,
		Name:      p.Name,
		Game:      p.Game,
		CreatedAt: p.CreatedAt,
	}
}
