package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

var csvHeader = []string{"ID", "Nom", "Jeu", "Email", "Téléphone", "Date d'inscription", "Statut"}

// ExportCSV writes every participant row as UTF-8 CSV prefixed with a
// byte-order mark, so spreadsheet software picks up the encoding.
func (s *RegistrationService) ExportCSV(ctx context.Context, w io.Writer) error {
	participants, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range participants {
		record := []string{
			p.ID.String(),
			p.Name,
			p.Game,
			p.Email,
			p.Phone,
			p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			p.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
