package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
)

type GameSettingsRepository struct {
	mu    sync.RWMutex
	items []gamesettings.Settings
}

func NewGameSettingsRepository() *GameSettingsRepository {
	return &GameSettingsRepository{}
}

func (r *GameSettingsRepository) GetActive(_ context.Context) (gamesettings.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].IsActive {
			return r.items[i], true, nil
		}
	}
	return gamesettings.Settings{}, false, nil
}

func (r *GameSettingsRepository) Activate(_ context.Context, settings gamesettings.Settings) (gamesettings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].IsActive = false
	}
	settings.IsActive = true
	r.items = append(r.items, settings)
	return settings, nil
}

func (r *GameSettingsRepository) DeactivateAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].IsActive = false
	}
	return nil
}

func (r *GameSettingsRepository) List(_ context.Context) ([]gamesettings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first; later inserts win created_at ties.
	out := make([]gamesettings.Settings, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
