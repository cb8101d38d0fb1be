package postgres

import (
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
)

type gameSettingsTableModel struct {
	ID              int64     `db:"id"`
	PublicID        string    `db:"public_id"`
	GameDate        time.Time `db:"game_date"`
	SubmissionStart time.Time `db:"submission_start"`
	SubmissionEnd   time.Time `db:"submission_end"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
}

type gameSettingsInsertModel struct {
	PublicID        string    `db:"public_id"`
	GameDate        time.Time `db:"game_date"`
	SubmissionStart time.Time `db:"submission_start"`
	SubmissionEnd   time.Time `db:"submission_end"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
}

func gameSettingsFromRow(row gameSettingsTableModel) gamesettings.Settings {
	return gamesettings.Settings{
		ID:              row.PublicID,
		GameDate:        row.GameDate.UTC(),
		SubmissionStart: row.SubmissionStart.UTC(),
		SubmissionEnd:   row.SubmissionEnd.UTC(),
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt.UTC(),
	}
}
