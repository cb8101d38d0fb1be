package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/thursday-league/internal/platform/id"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

var leagueZone = time.FixedZone("UTC+03:00", 3*60*60)

// Thursday 2026-10-15 18:00 +03:00 opens the window used by most tests.
var (
	windowOpenedAt  = time.Date(2026, 10, 15, 18, 0, 0, 0, leagueZone)
	fridayNoon      = time.Date(2026, 10, 16, 12, 0, 0, 0, leagueZone)
	thursdayMorning = time.Date(2026, 10, 22, 10, 0, 0, 0, leagueZone)
)

type testLeague struct {
	clock       *fakeClock
	submissions *memory.SubmissionRepository
	settings    *memory.GameSettingsRepository
	windows     *WindowService
	submit      *SubmissionService
	admin       *AdminService
	board       *LeaderboardService
	recorder    *countingRecorder
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type countingRecorder struct {
	outcomes  map[string]int
	resets    map[string]int64
	fallbacks map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		outcomes:  map[string]int{},
		resets:    map[string]int64{},
		fallbacks: map[string]int{},
	}
}

func (r *countingRecorder) SubmissionRecorded(outcome string) { r.outcomes[outcome]++ }

func (r *countingRecorder) ResetPerformed(kind string, deleted int64) { r.resets[kind] += deleted }

func (r *countingRecorder) OverrideFallback(reason string) { r.fallbacks[reason]++ }

var _ metrics.Recorder = (*countingRecorder)(nil)

func newTestLeague(t *testing.T, now time.Time) *testLeague {
	t.Helper()

	clock := &fakeClock{now: now}
	registry := roster.Default()
	logger := logging.NewNop()
	recorder := newCountingRecorder()
	submissions := memory.NewSubmissionRepository()
	settings := memory.NewGameSettingsRepository()

	windows := NewWindowService(schedule.Default(), settings, nil, recorder, logger)
	windows.now = clock.Now
	submit := NewSubmissionService(registry, windows, submissions, &idgen.SequenceGenerator{Prefix: "sub"}, recorder, logger)
	submit.now = clock.Now
	admin := NewAdminService(
		registry,
		windows,
		submissions,
		settings,
		&idgen.SequenceGenerator{Prefix: "adm"},
		AdminCredentials{Username: "admin", Password: "s3cret"},
		recorder,
		logger,
	)
	admin.now = clock.Now

	return &testLeague{
		clock:       clock,
		submissions: submissions,
		settings:    settings,
		windows:     windows,
		submit:      submit,
		admin:       admin,
		board:       NewLeaderboardService(registry, submissions, windows),
		recorder:    recorder,
	}
}
