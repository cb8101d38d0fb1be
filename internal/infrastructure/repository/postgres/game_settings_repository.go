package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	qb "github.com/riskibarqy/thursday-league/internal/platform/querybuilder"
)

const gameSettingsTable = "game_settings"

type GameSettingsRepository struct {
	db *sqlx.DB
}

func NewGameSettingsRepository(db *sqlx.DB) *GameSettingsRepository {
	return &GameSettingsRepository{db: db}
}

func (r *GameSettingsRepository) GetActive(ctx context.Context) (gamesettings.Settings, bool, error) {
	query, args, err := qb.Select("*").From(gameSettingsTable).
		Where(qb.Eq("is_active", true)).
		OrderBy("created_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return gamesettings.Settings{}, false, fmt.Errorf("build get active game settings query: %w", err)
	}

	var row gameSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gamesettings.Settings{}, false, nil
		}
		return gamesettings.Settings{}, false, settingsError("get active game settings", err)
	}

	return gameSettingsFromRow(row), true, nil
}

// Activate deactivates every existing row and inserts settings as the only
// active row, in one transaction.
func (r *GameSettingsRepository) Activate(ctx context.Context, settings gamesettings.Settings) (gamesettings.Settings, error) {
	deactivateQuery, deactivateArgs, err := deactivateSettingsQuery()
	if err != nil {
		return gamesettings.Settings{}, err
	}
	insertQuery, insertArgs, err := qb.InsertModel(gameSettingsTable, gameSettingsInsertModel{
		PublicID:        settings.ID,
		GameDate:        settings.GameDate.UTC(),
		SubmissionStart: settings.SubmissionStart.UTC(),
		SubmissionEnd:   settings.SubmissionEnd.UTC(),
		IsActive:        true,
		CreatedAt:       settings.CreatedAt.UTC(),
	}, "RETURNING *")
	if err != nil {
		return gamesettings.Settings{}, fmt.Errorf("build insert game settings query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return gamesettings.Settings{}, fmt.Errorf("begin game settings tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deactivateQuery, deactivateArgs...); err != nil {
		return gamesettings.Settings{}, settingsError("deactivate game settings", err)
	}

	var row gameSettingsTableModel
	if err := tx.GetContext(ctx, &row, insertQuery, insertArgs...); err != nil {
		return gamesettings.Settings{}, settingsError("insert game settings", err)
	}

	if err := tx.Commit(); err != nil {
		return gamesettings.Settings{}, fmt.Errorf("commit game settings tx: %w", err)
	}
	return gameSettingsFromRow(row), nil
}

func (r *GameSettingsRepository) DeactivateAll(ctx context.Context) error {
	query, args, err := deactivateSettingsQuery()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return settingsError("deactivate game settings", err)
	}
	return nil
}

func (r *GameSettingsRepository) List(ctx context.Context) ([]gamesettings.Settings, error) {
	query, args, err := qb.Select("*").From(gameSettingsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game settings query: %w", err)
	}

	var rows []gameSettingsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, settingsError("list game settings", err)
	}

	out := make([]gamesettings.Settings, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameSettingsFromRow(row))
	}
	return out, nil
}

func deactivateSettingsQuery() (string, []any, error) {
	query, args, err := qb.Update(gameSettingsTable).
		Set("is_active", false).
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build deactivate game settings query: %w", err)
	}
	return query, args, nil
}

func settingsError(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, gamesettings.ErrNotProvisioned)
	}
	return fmt.Errorf("%s: %w", op, err)
}
