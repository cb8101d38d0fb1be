package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
)

func TestWindowService_CurrentDefaultSchedule(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantOpen  bool
		wantStart time.Time
		reopens   time.Time
	}{
		{
			name:      "opening instant",
			now:       windowOpenedAt,
			wantOpen:  true,
			wantStart: windowOpenedAt,
		},
		{
			name:      "midweek",
			now:       fridayNoon,
			wantOpen:  true,
			wantStart: windowOpenedAt,
		},
		{
			name:      "last second of wednesday",
			now:       time.Date(2026, 10, 21, 23, 59, 59, 0, leagueZone),
			wantOpen:  true,
			wantStart: windowOpenedAt,
		},
		{
			name:      "thursday before boundary",
			now:       thursdayMorning,
			wantOpen:  false,
			wantStart: windowOpenedAt,
			reopens:   time.Date(2026, 10, 22, 18, 0, 0, 0, leagueZone),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			league := newTestLeague(t, tc.now)
			got := league.windows.Current(context.Background())

			if got.Open != tc.wantOpen {
				t.Fatalf("unexpected open flag: got=%v want=%v", got.Open, tc.wantOpen)
			}
			if !got.Window.Start.Equal(tc.wantStart) {
				t.Fatalf("unexpected window start: got=%s want=%s", got.Window.Start, tc.wantStart)
			}
			if got.Window.Source != schedule.SourceDefault {
				t.Fatalf("unexpected source: %s", got.Window.Source)
			}
			if tc.reopens.IsZero() {
				if got.ReopensAt != nil {
					t.Fatalf("unexpected reopen time: %s", got.ReopensAt)
				}
				return
			}
			if got.ReopensAt == nil || !got.ReopensAt.Equal(tc.reopens) {
				t.Fatalf("unexpected reopen time: got=%v want=%s", got.ReopensAt, tc.reopens)
			}
		})
	}
}

func TestWindowService_CurrentWithOverride(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	gameDate := time.Date(2026, 10, 19, 20, 0, 0, 0, leagueZone)
	_, err := league.admin.SetGameSettings(ctx, SetGameSettingsInput{
		GameDate:        gameDate,
		SubmissionStart: time.Date(2026, 10, 19, 22, 0, 0, 0, leagueZone),
		SubmissionEnd:   time.Date(2026, 10, 21, 22, 0, 0, 0, leagueZone),
	})
	if err != nil {
		t.Fatalf("set game settings: %v", err)
	}

	got := league.windows.Current(ctx)
	if got.Window.Source != schedule.SourceOverride {
		t.Fatalf("expected override window, got %s", got.Window.Source)
	}
	if got.Open {
		t.Fatalf("window should not be open before the override start")
	}
	if got.ReopensAt == nil || !got.ReopensAt.Equal(got.Window.Start) {
		t.Fatalf("expected reopen at override start, got %v", got.ReopensAt)
	}
	if !got.NextGame.KickoffAt.Equal(gameDate) || got.NextGame.Source != schedule.SourceOverride {
		t.Fatalf("unexpected next game: %+v", got.NextGame)
	}

	if err := league.admin.ClearGameSettings(ctx); err != nil {
		t.Fatalf("clear game settings: %v", err)
	}
	got = league.windows.Current(ctx)
	if got.Window.Source != schedule.SourceDefault || !got.Open {
		t.Fatalf("expected open default window after clearing, got %+v", got.Window)
	}
}

func TestWindowService_NextGameCountdown(t *testing.T) {
	kickoff := time.Date(2026, 10, 22, 20, 0, 0, 0, leagueZone)

	league := newTestLeague(t, kickoff.Add(30*time.Minute))
	got := league.windows.Current(context.Background())
	if !got.NextGame.InProgress {
		t.Fatalf("expected game in progress 30 minutes after kickoff")
	}
	if !got.NextGame.KickoffAt.Equal(kickoff.AddDate(0, 0, 7)) {
		t.Fatalf("unexpected next kickoff: %s", got.NextGame.KickoffAt)
	}

	league.clock.now = kickoff.Add(-time.Hour)
	got = league.windows.Current(context.Background())
	if got.NextGame.InProgress || !got.NextGame.KickoffAt.Equal(kickoff) {
		t.Fatalf("unexpected next game before kickoff: %+v", got.NextGame)
	}
}
