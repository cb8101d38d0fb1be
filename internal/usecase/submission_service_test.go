package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

func TestSubmissionService_SubmitStoresScoredLine(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	got, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Goals: 2, Assists: 1, Won: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.Points != 23 {
		t.Fatalf("unexpected points: got=%d want=23", got.Points)
	}
	if got.PlayerID != "7f1e43d8-80f0-49c6-84ac-6378af6de477" {
		t.Fatalf("unexpected player id: %s", got.PlayerID)
	}
	if !got.WindowStart.Equal(windowOpenedAt) {
		t.Fatalf("unexpected window start: %s", got.WindowStart)
	}
	if got.Won == nil || !*got.Won || !got.Verified {
		t.Fatalf("expected verified row with won=true, got %+v", got)
	}
	if league.recorder.outcomes[metrics.OutcomeAccepted] != 1 {
		t.Fatalf("expected one accepted outcome, got %+v", league.recorder.outcomes)
	}
}

func TestSubmissionService_SubmitRejectsSecondLineInWindow(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	if _, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Jalal", Goals: 1}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	league.clock.now = fridayNoon.Add(48 * time.Hour)
	_, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Jalal", Goals: 4})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	require.Contains(t, Hints(err), "wait for the next window to submit again")

	rows, err := league.submissions.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].Goals)
}

func TestSubmissionService_SubmitAllowedAgainInNextWindow(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	if _, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Emaad", Saves: 3}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	league.clock.now = fridayNoon.AddDate(0, 0, 7)
	if _, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Emaad", Saves: 1}); err != nil {
		t.Fatalf("submit in next window: %v", err)
	}

	rows, err := league.submissions.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSubmissionService_SubmitWindowClosed(t *testing.T) {
	league := newTestLeague(t, thursdayMorning)

	_, err := league.submit.Submit(context.Background(), SubmitStatsInput{PlayerName: "Ahmed", Goals: 1})
	if !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected ErrWindowClosed, got %v", err)
	}
	hints := Hints(err)
	require.Len(t, hints, 1)
	require.Contains(t, hints[0], "2026-10-22T15:00:00Z")
	require.Equal(t, 1, league.recorder.outcomes[metrics.OutcomeWindowClosed])
}

func TestSubmissionService_SubmitWindowClosedWinsOverPriorSubmission(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	first, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Goals: 2, Assists: 1, Won: true})
	require.NoError(t, err)
	require.Equal(t, 23, first.Points)

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "just after window end", now: time.Date(2026, 10, 22, 0, 0, 0, 0, leagueZone)},
		{name: "thursday before boundary", now: thursdayMorning},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			league.clock.now = tc.now

			status := league.windows.Current(ctx)
			require.True(t, status.Window.Start.Equal(first.WindowStart), "window key must still match the prior row")

			_, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Goals: 1})
			if !errors.Is(err, ErrWindowClosed) {
				t.Fatalf("expected ErrWindowClosed, got %v", err)
			}
			if errors.Is(err, ErrAlreadySubmitted) {
				t.Fatalf("closed window must not report a duplicate: %v", err)
			}
		})
	}

	require.Equal(t, 2, league.recorder.outcomes[metrics.OutcomeWindowClosed])
	require.Zero(t, league.recorder.outcomes[metrics.OutcomeDuplicate])
}

func TestSubmissionService_SubmitAfterOverrideEndsWithPriorSubmission(t *testing.T) {
	league := newTestLeague(t, thursdayMorning)
	ctx := context.Background()

	_, err := league.admin.SetGameSettings(ctx, SetGameSettingsInput{
		GameDate:        thursdayMorning.Add(10 * time.Hour),
		SubmissionStart: thursdayMorning.Add(-time.Hour),
		SubmissionEnd:   thursdayMorning.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Saves: 2})
	require.NoError(t, err)

	league.clock.now = thursdayMorning.Add(time.Hour + time.Second)
	_, err = league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Saves: 1})
	require.ErrorIs(t, err, ErrWindowClosed)
	require.NotErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmissionService_SubmitInvalidInput(t *testing.T) {
	league := newTestLeague(t, fridayNoon)

	tests := []struct {
		name  string
		input SubmitStatsInput
	}{
		{name: "unknown player", input: SubmitStatsInput{PlayerName: "Zidane", Goals: 1}},
		{name: "blank player", input: SubmitStatsInput{PlayerName: "  "}},
		{name: "negative goals", input: SubmitStatsInput{PlayerName: "Ahmed", Goals: -1}},
		{name: "negative saves", input: SubmitStatsInput{PlayerName: "Ahmed", Saves: -2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := league.submit.Submit(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	rows, err := league.submissions.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSubmissionService_SubmitUsesOverrideWindow(t *testing.T) {
	// Thursday morning is closed under the default schedule.
	league := newTestLeague(t, thursdayMorning)
	ctx := context.Background()

	start := thursdayMorning.Add(-time.Hour)
	_, err := league.admin.SetGameSettings(ctx, SetGameSettingsInput{
		GameDate:        thursdayMorning.Add(10 * time.Hour),
		SubmissionStart: start,
		SubmissionEnd:   thursdayMorning.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Nithin", Assists: 2})
	require.NoError(t, err)
	require.True(t, got.WindowStart.Equal(start))
	require.Equal(t, 6, got.Points)

	league.clock.now = thursdayMorning.Add(2 * time.Hour)
	_, err = league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Afzal", Assists: 1})
	if !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected ErrWindowClosed after override end, got %v", err)
	}
	require.Equal(t, []string{"submissions reopen once the next game window is configured"}, Hints(err))
}

func TestSubmissionService_Status(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	before, err := league.submit.Status(ctx, "Waleed")
	require.NoError(t, err)
	require.False(t, before.HasSubmitted)
	require.Nil(t, before.Submission)
	require.True(t, before.Window.Open)

	_, err = league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Waleed", Goals: 1, Won: true})
	require.NoError(t, err)

	after, err := league.submit.Status(ctx, "Waleed")
	require.NoError(t, err)
	require.True(t, after.HasSubmitted)
	require.NotNil(t, after.Submission)
	require.Equal(t, 15, after.Submission.Points)

	_, err = league.submit.Status(ctx, "Nobody")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Player submits, retries, then the admin corrects the line.
func TestSubmissionLifecycle_SubmitDuplicateAdminCorrection(t *testing.T) {
	league := newTestLeague(t, fridayNoon)
	ctx := context.Background()

	created, err := league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Goals: 2, Assists: 1, Won: true})
	require.NoError(t, err)
	require.Equal(t, 23, created.Points)

	_, err = league.submit.Submit(ctx, SubmitStatsInput{PlayerName: "Ahmed", Goals: 5})
	require.ErrorIs(t, err, ErrAlreadySubmitted)

	updated, err := league.admin.SetCurrentStats(ctx, "Ahmed", submission.Stats{Goals: 1})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, 5, updated.Points)

	board, err := league.board.Rankings(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ahmed", board.Entries[0].Name)
	require.Equal(t, 5, board.Entries[0].Points)
	require.Equal(t, 0, board.Entries[0].Wins)
	require.Equal(t, 1, board.Entries[0].Games)
}
