package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/submission"
)

type submissionTableModel struct {
	ID             int64        `db:"id"`
	PublicID       string       `db:"public_id"`
	PlayerPublicID string       `db:"player_public_id"`
	WindowStart    time.Time    `db:"window_start"`
	Goals          int          `db:"goals"`
	Assists        int          `db:"assists"`
	Saves          int          `db:"saves"`
	Points         int          `db:"points"`
	Won            sql.NullBool `db:"won"`
	Verified       bool         `db:"verified"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

type submissionInsertModel struct {
	PublicID       string       `db:"public_id"`
	PlayerPublicID string       `db:"player_public_id"`
	WindowStart    time.Time    `db:"window_start"`
	Goals          int          `db:"goals"`
	Assists        int          `db:"assists"`
	Saves          int          `db:"saves"`
	Points         int          `db:"points"`
	Won            sql.NullBool `db:"won"`
	Verified       bool         `db:"verified"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

func submissionFromRow(row submissionTableModel) submission.Submission {
	out := submission.Submission{
		ID:          row.PublicID,
		PlayerID:    row.PlayerPublicID,
		WindowStart: row.WindowStart.UTC(),
		Goals:       row.Goals,
		Assists:     row.Assists,
		Saves:       row.Saves,
		Points:      row.Points,
		Verified:    row.Verified,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
	if row.Won.Valid {
		won := row.Won.Bool
		out.Won = &won
	}
	return out
}

func submissionToInsert(item submission.Submission) submissionInsertModel {
	return submissionInsertModel{
		PublicID:       item.ID,
		PlayerPublicID: item.PlayerID,
		WindowStart:    item.WindowStart.UTC(),
		Goals:          item.Goals,
		Assists:        item.Assists,
		Saves:          item.Saves,
		Points:         item.Points,
		Won:            nullBool(item.Won),
		Verified:       item.Verified,
		CreatedAt:      item.CreatedAt.UTC(),
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
