package submission

import (
	"errors"
	"time"
)

// ErrDuplicate is returned when a row already exists for the player and window.
var ErrDuplicate = errors.New("submission already exists for player and window")

// Submission is one player's self-reported line for one window.
type Submission struct {
	ID          string
	PlayerID    string
	WindowStart time.Time
	Goals       int
	Assists     int
	Saves       int
	Points      int
	// Won is nil for rows recorded before the flag was stored.
	Won       *bool
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats is the editable part of a submission.
type Stats struct {
	Goals   int
	Assists int
	Saves   int
	Won     bool
}

func (s Stats) Validate() error {
	if s.Goals < 0 || s.Assists < 0 || s.Saves < 0 {
		return errors.New("goals, assists and saves must be non-negative")
	}
	return nil
}
