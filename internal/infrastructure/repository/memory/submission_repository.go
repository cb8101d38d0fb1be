package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/submission"
)

// SubmissionRepository keeps rows in insertion order and enforces the
// (player, window) key under its lock.
type SubmissionRepository struct {
	mu    sync.RWMutex
	items []submission.Submission
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

func (r *SubmissionRepository) GetForWindow(_ context.Context, playerID string, windowStart time.Time) (submission.Submission, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := windowKey(playerID, windowStart)
	for _, item := range r.items {
		if windowKey(item.PlayerID, item.WindowStart) == key {
			return cloneSubmission(item), true, nil
		}
	}
	return submission.Submission{}, false, nil
}

func (r *SubmissionRepository) Create(_ context.Context, item submission.Submission) (submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := windowKey(item.PlayerID, item.WindowStart)
	for _, existing := range r.items {
		if existing.ID == item.ID {
			return submission.Submission{}, fmt.Errorf("submission id %s already exists", item.ID)
		}
		if windowKey(existing.PlayerID, existing.WindowStart) == key {
			return submission.Submission{}, submission.ErrDuplicate
		}
	}

	stored := cloneSubmission(item)
	r.items = append(r.items, stored)
	return cloneSubmission(stored), nil
}

func (r *SubmissionRepository) UpdateStats(_ context.Context, id string, stats submission.Stats, points int, updatedAt time.Time) (submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		won := stats.Won
		r.items[i].Goals = stats.Goals
		r.items[i].Assists = stats.Assists
		r.items[i].Saves = stats.Saves
		r.items[i].Points = points
		r.items[i].Won = &won
		r.items[i].UpdatedAt = updatedAt
		return cloneSubmission(r.items[i]), nil
	}
	return submission.Submission{}, fmt.Errorf("submission %s not found", id)
}

func (r *SubmissionRepository) List(_ context.Context) ([]submission.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]submission.Submission, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneSubmission(item))
	}
	return out, nil
}

func (r *SubmissionRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := int64(len(r.items))
	r.items = nil
	return deleted, nil
}

func (r *SubmissionRepository) DeleteForWindow(_ context.Context, windowStart time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	var deleted int64
	for _, item := range r.items {
		if item.WindowStart.Equal(windowStart) {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return deleted, nil
}

func (r *SubmissionRepository) DeleteCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	var deleted int64
	for _, item := range r.items {
		if !item.CreatedAt.Before(start) && !item.CreatedAt.After(end) {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return deleted, nil
}

func windowKey(playerID string, windowStart time.Time) string {
	return playerID + "::" + strconv.FormatInt(windowStart.UTC().Unix(), 10)
}

func cloneSubmission(item submission.Submission) submission.Submission {
	copied := item
	if item.Won != nil {
		won := *item.Won
		copied.Won = &won
	}
	return copied
}
