package store

import (
	"context"
	"testing"
	"time"

	"github.com/gamefest/gamefest-api/internal/event"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

func newParticipant(name, game, status string, createdAt time.Time) *event.Participant {
	return &event.Participant{
		ID:        uuid.New(),
		Name:      name,
		Game:      game,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestParticipantCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewParticipantStore(db)
	ctx := context.Background()

	p := &event.Participant{
		ID:        uuid.New(),
		Name:      "Alice",
		Game:      "Chess",
		Email:     "alice@example.com",
		Phone:     "0601020304",
		Status:    event.StatusActive,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Create(ctx, p))

	fetched, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, fetched.Name)
	assert.Equal(t, p.Game, fetched.Game)
	assert.Equal(t, p.Email, fetched.Email)
	assert.Equal(t, p.Phone, fetched.Phone)
	assert.Equal(t, event.StatusActive, fetched.Status)
	assert.WithinDuration(t, p.CreatedAt, fetched.CreatedAt, time.Second)
}

func TestParticipantListAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewParticipantStore(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Create(ctx, newParticipant("Old", "Chess", event.StatusActive, now.Add(-2*time.Hour))))
	require.NoError(t, store.Create(ctx, newParticipant("New", "Chess", event.StatusBanned, now)))
	require.NoError(t, store.Create(ctx, newParticipant("Mid", "Chess", event.StatusActive, now.Add(-time.Hour))))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "New", all[0].Name)
	assert.Equal(t, "Mid", all[1].Name)
	assert.Equal(t, "Old", all[2].Name)

	active, err := store.ListByStatus(ctx, event.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Mid", active[0].Name)
	assert.Equal(t, "Old", active[1].Name)
}

func TestActiveExistsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewParticipantStore(db)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newParticipant("Alice", "Chess", event.StatusActive, time.Now())))
	require.NoError(t, store.Create(ctx, newParticipant("Bob", "Go", event.StatusBanned, time.Now())))

	exists, err := store.ActiveExists(ctx, "ALICE", "chess")
	require.NoError(t, err)
	assert.True(t, exists)

	// Non-active rows do not block re-registration.
	exists, err = store.ActiveExists(ctx, "Bob", "Go")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = store.ActiveExists(ctx, "Alice", "Go")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestParticipantDeleteMissingIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewParticipantStore(db)
	ctx := context.Background()

	missing := uuid.New()
	require.NoError(t, store.Delete(ctx, missing))
	require.NoError(t, store.Delete(ctx, missing))
}

func TestParticipantUpdateFields(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewParticipantStore(db)
	ctx := context.Background()

	p := newParticipant("Alice", "Chess", event.StatusActive, time.Now())
	require.NoError(t, store.Create(ctx, p))

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(ctx, tx, p.ID, event.StatusBanned))
	require.NoError(t, store.UpdateName(ctx, tx, p.ID, "Alicia"))
	require.NoError(t, store.UpdateGame(ctx, tx, p.ID, "Go"))
	require.NoError(t, tx.Commit())

	fetched, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, event.StatusBanned, fetched.Status)
	assert.Equal(t, "Alicia", fetched.Name)
	assert.Equal(t, "Go", fetched.Game)
}
