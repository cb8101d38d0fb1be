package gamesettings

import "context"

type Repository interface {
	// GetActive returns the single active row. ErrNotProvisioned is returned
	// when the backing table is missing.
	GetActive(ctx context.Context) (Settings, bool, error)
	// Activate deactivates every row and inserts settings as the active one.
	Activate(ctx context.Context, settings Settings) (Settings, error)
	DeactivateAll(ctx context.Context) error
	// List returns all rows, newest first.
	List(ctx context.Context) ([]Settings, error)
}
