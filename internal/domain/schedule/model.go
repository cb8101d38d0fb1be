package schedule

import (
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
)

type Source string

const (
	SourceDefault  Source = "default"
	SourceOverride Source = "override"
)

// Window is a submission window. Both bounds are inclusive.
type Window struct {
	Start    time.Time
	End      time.Time
	GameDate time.Time
	Source   Source
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Key identifies the window in storage.
func (w Window) Key() time.Time {
	return w.Start.UTC()
}

// Game describes the next kickoff relative to an instant.
type Game struct {
	KickoffAt  time.Time
	InProgress bool
	Source     Source
}

// Schedule holds the weekly boundary rules anchored to a fixed zone.
type Schedule struct {
	Location        *time.Location
	BoundaryWeekday time.Weekday
	BoundaryHour    int
	KickoffHour     int
	GameDuration    time.Duration
}

// Default is Thursday 18:00 at UTC+3 with a 20:00 kickoff lasting 90 minutes.
func Default() Schedule {
	return Schedule{
		Location:        time.FixedZone("UTC+03:00", 3*60*60),
		BoundaryWeekday: time.Thursday,
		BoundaryHour:    18,
		KickoffHour:     20,
		GameDuration:    90 * time.Minute,
	}
}

// Resolve returns the active override window when one is given, otherwise the
// default weekly window containing now.
func (s Schedule) Resolve(now time.Time, override *gamesettings.Settings) Window {
	if override != nil && override.IsActive {
		return Window{
			Start:    override.SubmissionStart.UTC(),
			End:      override.SubmissionEnd.UTC(),
			GameDate: override.GameDate.UTC(),
			Source:   SourceOverride,
		}
	}
	return s.WindowAt(now)
}

// WindowAt returns the default window that starts at the latest boundary not
// after now and ends at the last instant of the sixth day after it.
func (s Schedule) WindowAt(now time.Time) Window {
	start := s.lastBoundary(now)
	endDay := start.AddDate(0, 0, 6)
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, int(time.Second-1), s.location())

	return Window{
		Start:    start.UTC(),
		End:      end.UTC(),
		GameDate: start.UTC(),
		Source:   SourceDefault,
	}
}

// NextGame returns the upcoming kickoff. A game counts as in progress for
// GameDuration after its kickoff, and the following week's kickoff is reported.
func (s Schedule) NextGame(now time.Time, override *gamesettings.Settings) Game {
	if override != nil && override.IsActive && override.GameDate.After(now) {
		return Game{KickoffAt: override.GameDate.UTC(), Source: SourceOverride}
	}

	local := now.In(s.location())
	kickoff := s.weekdayAt(local, s.KickoffHour)
	if kickoff.After(local) {
		kickoff = kickoff.AddDate(0, 0, -7)
	}
	inProgress := local.Before(kickoff.Add(s.GameDuration))

	return Game{
		KickoffAt:  kickoff.AddDate(0, 0, 7).UTC(),
		InProgress: inProgress,
		Source:     SourceDefault,
	}
}

// ReopensAt reports when submissions open again for a window that does not
// contain now. An override that has already ended has no known reopening.
func (s Schedule) ReopensAt(w Window, now time.Time) (time.Time, bool) {
	if now.Before(w.Start) {
		return w.Start, true
	}
	if w.Source == SourceOverride {
		return time.Time{}, false
	}
	return w.Start.AddDate(0, 0, 7), true
}

func (s Schedule) lastBoundary(now time.Time) time.Time {
	local := now.In(s.location())
	boundary := s.weekdayAt(local, s.BoundaryHour)
	if local.Before(boundary) {
		boundary = boundary.AddDate(0, 0, -7)
	}
	return boundary
}

// weekdayAt returns the boundary weekday at hour within the Sunday-first
// calendar week containing local.
func (s Schedule) weekdayAt(local time.Time, hour int) time.Time {
	offset := int(s.BoundaryWeekday) - int(local.Weekday())
	day := local.AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, s.location())
}

func (s Schedule) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
