package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
	"github.com/riskibarqy/thursday-league/internal/platform/resilience"
)

// WindowStatus is the submission window as seen at Now.
type WindowStatus struct {
	Now      time.Time
	Window   schedule.Window
	Open     bool
	NextGame schedule.Game
	// ReopensAt is set when the window is closed and the reopening is known.
	ReopensAt *time.Time
}

type WindowService struct {
	schedule     schedule.Schedule
	settingsRepo gamesettings.Repository
	breaker      *resilience.CircuitBreaker
	metrics      metrics.Recorder
	logger       *logging.Logger
	now          func() time.Time
}

func NewWindowService(
	sched schedule.Schedule,
	settingsRepo gamesettings.Repository,
	breaker *resilience.CircuitBreaker,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *WindowService {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &WindowService{
		schedule:     sched,
		settingsRepo: settingsRepo,
		breaker:      breaker,
		metrics:      recorder,
		logger:       logger,
		now:          time.Now,
	}
}

// Current never fails: an unreadable override falls back to the default schedule.
func (s *WindowService) Current(ctx context.Context) WindowStatus {
	ctx, span := startUsecaseSpan(ctx, "usecase.WindowService.Current")
	defer span.End()

	return s.statusAt(ctx, s.now())
}

func (s *WindowService) statusAt(ctx context.Context, now time.Time) WindowStatus {
	override := s.activeOverride(ctx)
	window := s.schedule.Resolve(now, override)

	status := WindowStatus{
		Now:      now,
		Window:   window,
		Open:     window.Contains(now),
		NextGame: s.schedule.NextGame(now, override),
	}
	if !status.Open {
		if at, ok := s.schedule.ReopensAt(window, now); ok {
			status.ReopensAt = &at
		}
	}
	return status
}

func (s *WindowService) activeOverride(ctx context.Context) *gamesettings.Settings {
	if s.settingsRepo == nil {
		return nil
	}

	var (
		active gamesettings.Settings
		found  bool
	)
	err := s.breaker.Execute(func() error {
		var err error
		active, found, err = s.settingsRepo.GetActive(ctx)
		return err
	}, isNotProvisioned)

	switch {
	case err == nil:
	case errors.Is(err, gamesettings.ErrNotProvisioned):
		s.metrics.OverrideFallback("not_provisioned")
		s.logger.DebugContext(ctx, "game settings not provisioned, using default schedule")
		return nil
	case errors.Is(err, resilience.ErrCircuitOpen):
		s.metrics.OverrideFallback("circuit_open")
		return nil
	default:
		s.metrics.OverrideFallback("store_error")
		s.logger.WarnContext(ctx, "read active game settings failed, using default schedule", "error", err)
		return nil
	}

	if !found || !active.IsActive {
		return nil
	}
	return &active
}

func isNotProvisioned(err error) bool {
	return errors.Is(err, gamesettings.ErrNotProvisioned)
}
