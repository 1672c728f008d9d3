package event

import "time"

// Admin is an administrator account. Passwords are stored as bcrypt hashes,
// never exposed in JSON.
type Admin struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
