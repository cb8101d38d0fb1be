package submission

import (
	"context"
	"time"
)

type Repository interface {
	// GetForWindow returns the player's row whose window key equals windowStart.
	GetForWindow(ctx context.Context, playerID string, windowStart time.Time) (Submission, bool, error)
	// Create inserts a row and returns ErrDuplicate when the window key is taken.
	Create(ctx context.Context, item Submission) (Submission, error)
	UpdateStats(ctx context.Context, id string, stats Stats, points int, updatedAt time.Time) (Submission, error)
	List(ctx context.Context) ([]Submission, error)
	DeleteAll(ctx context.Context) (int64, error)
	// DeleteCreatedBetween removes rows whose created_at is within [start, end].
	DeleteCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	// DeleteForWindow removes every row keyed to windowStart.
	DeleteForWindow(ctx context.Context, windowStart time.Time) (int64, error)
}
