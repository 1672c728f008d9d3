package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/gamefest/gamefest-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewRegistrationService(db, store.NewParticipantStore(db))
	ctx := context.Background()

	quoted, err := svc.Register(ctx, RegisterInput{
		Name:  `Jean "Le Boss" Dupont`,
		Game:  "Street Fighter",
		Email: "jean@example.com",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "output starts with a UTF-8 BOM")

	// A name containing quotes must round-trip through a CSV parser.
	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"ID", "Nom", "Jeu", "Email", "Téléphone", "Date d'inscription", "Statut"}, records[0])
	assert.Equal(t, quoted.ID.String(), records[1][0])
	assert.Equal(t, `Jean "Le Boss" Dupont`, records[1][1])
	assert.Equal(t, "Street Fighter", records[1][2])
	assert.Equal(t, "active", records[1][6])

	// The raw bytes carry the doubled quotes inside a quoted field.
	assert.Contains(t, buf.String(), `"Jean ""Le Boss"" Dupont"`)
}

func TestExportCSVEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := NewRegistrationService(db, store.NewParticipantStore(db))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
