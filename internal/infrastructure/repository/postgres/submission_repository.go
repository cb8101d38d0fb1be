package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	qb "github.com/riskibarqy/thursday-league/internal/platform/querybuilder"
)

const submissionsTable = "submissions"

type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) GetForWindow(ctx context.Context, playerID string, windowStart time.Time) (submission.Submission, bool, error) {
	query, args, err := qb.Select("*").From(submissionsTable).
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("window_start", windowStart.UTC()),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return submission.Submission{}, false, fmt.Errorf("build get submission for window query: %w", err)
	}

	var row submissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return submission.Submission{}, false, nil
		}
		return submission.Submission{}, false, fmt.Errorf("get submission for window: %w", err)
	}

	return submissionFromRow(row), true, nil
}

func (r *SubmissionRepository) Create(ctx context.Context, item submission.Submission) (submission.Submission, error) {
	query, args, err := qb.InsertModel(submissionsTable, submissionToInsert(item), "RETURNING *")
	if err != nil {
		return submission.Submission{}, fmt.Errorf("build insert submission query: %w", err)
	}

	var row submissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return submission.Submission{}, fmt.Errorf("%w: player=%s window=%s", submission.ErrDuplicate, item.PlayerID, item.WindowStart.UTC().Format(time.RFC3339))
		}
		return submission.Submission{}, fmt.Errorf("insert submission: %w", err)
	}

	return submissionFromRow(row), nil
}

func (r *SubmissionRepository) UpdateStats(
	ctx context.Context,
	id string,
	stats submission.Stats,
	points int,
	updatedAt time.Time,
) (submission.Submission, error) {
	won := stats.Won
	query, args, err := qb.Update(submissionsTable).
		Set("goals", stats.Goals).
		Set("assists", stats.Assists).
		Set("saves", stats.Saves).
		Set("points", points).
		Set("won", nullBool(&won)).
		Set("verified", true).
		Set("updated_at", updatedAt.UTC()).
		Where(qb.Eq("public_id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return submission.Submission{}, fmt.Errorf("build update submission query: %w", err)
	}

	var row submissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return submission.Submission{}, fmt.Errorf("submission %s not found", id)
		}
		return submission.Submission{}, fmt.Errorf("update submission: %w", err)
	}

	return submissionFromRow(row), nil
}

func (r *SubmissionRepository) List(ctx context.Context) ([]submission.Submission, error) {
	query, args, err := qb.Select("*").From(submissionsTable).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list submissions query: %w", err)
	}

	var rows []submissionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]submission.Submission, 0, len(rows))
	for _, row := range rows {
		out = append(out, submissionFromRow(row))
	}
	return out, nil
}

func (r *SubmissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := qb.DeleteFrom(submissionsTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete submissions query: %w", err)
	}
	return r.execDelete(ctx, query, args)
}

func (r *SubmissionRepository) DeleteCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	query, args, err := deleteCreatedBetweenQuery(start, end)
	if err != nil {
		return 0, fmt.Errorf("build delete submissions in range query: %w", err)
	}
	return r.execDelete(ctx, query, args)
}

// timestamptz keeps microseconds, so a nanosecond end bound would round up
// into the next day. Truncating keeps the inclusive bound inside it.
func deleteCreatedBetweenQuery(start, end time.Time) (string, []any, error) {
	return qb.DeleteFrom(submissionsTable).
		Where(
			qb.Gte("created_at", start.UTC()),
			qb.Lte("created_at", end.UTC().Truncate(time.Microsecond)),
		).
		ToSQL()
}

func (r *SubmissionRepository) DeleteForWindow(ctx context.Context, windowStart time.Time) (int64, error) {
	query, args, err := deleteForWindowQuery(windowStart)
	if err != nil {
		return 0, fmt.Errorf("build delete submissions for window query: %w", err)
	}
	return r.execDelete(ctx, query, args)
}

func deleteForWindowQuery(windowStart time.Time) (string, []any, error) {
	return qb.DeleteFrom(submissionsTable).
		Where(qb.Eq("window_start", windowStart.UTC())).
		ToSQL()
}

func (r *SubmissionRepository) execDelete(ctx context.Context, query string, args []any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete submissions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted submission count: %w", err)
	}
	return affected, nil
}
