package gamesettings

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow = errors.New("submission start must be before submission end")
	// ErrNotProvisioned means the settings table does not exist yet.
	ErrNotProvisioned = errors.New("game settings storage not provisioned")
)

// Settings overrides the default weekly schedule while active.
type Settings struct {
	ID              string
	GameDate        time.Time
	SubmissionStart time.Time
	SubmissionEnd   time.Time
	IsActive        bool
	CreatedAt       time.Time
}

func (s Settings) Validate() error {
	if s.SubmissionStart.IsZero() || s.SubmissionEnd.IsZero() || s.GameDate.IsZero() {
		return errors.New("game date, submission start and submission end are required")
	}
	if !s.SubmissionStart.Before(s.SubmissionEnd) {
		return ErrInvalidWindow
	}
	return nil
}
