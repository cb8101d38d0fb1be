package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/scoring"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	idgen "github.com/riskibarqy/thursday-league/internal/platform/id"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

// SubmitStatsInput is a player's self-reported line for the current window.
type SubmitStatsInput struct {
	PlayerName string
	Goals      int
	Assists    int
	Saves      int
	Won        bool
}

// SubmissionStatus tells a player whether the current window already has their line.
type SubmissionStatus struct {
	Player       roster.Player
	Window       WindowStatus
	HasSubmitted bool
	Submission   *submission.Submission
}

type SubmissionService struct {
	registry *roster.Registry
	windows  *WindowService
	repo     submission.Repository
	idGen    idgen.Generator
	metrics  metrics.Recorder
	logger   *logging.Logger
	now      func() time.Time
}

func NewSubmissionService(
	registry *roster.Registry,
	windows *WindowService,
	repo submission.Repository,
	idGen idgen.Generator,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *SubmissionService {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &SubmissionService{
		registry: registry,
		windows:  windows,
		repo:     repo,
		idGen:    idGen,
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit accepts one line per player per window. The window must be open.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitStatsInput) (submission.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmissionService.Submit")
	defer span.End()

	stats := submission.Stats{Goals: input.Goals, Assists: input.Assists, Saves: input.Saves, Won: input.Won}
	if err := stats.Validate(); err != nil {
		s.metrics.SubmissionRecorded(metrics.OutcomeInvalid)
		return submission.Submission{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	player, err := s.lookupPlayer(input.PlayerName)
	if err != nil {
		s.metrics.SubmissionRecorded(metrics.OutcomeInvalid)
		return submission.Submission{}, err
	}

	now := s.now()
	status := s.windows.statusAt(ctx, now)
	if !status.Open {
		s.metrics.SubmissionRecorded(metrics.OutcomeWindowClosed)
		return submission.Submission{}, windowClosedError(status)
	}

	_, exists, err := s.repo.GetForWindow(ctx, player.ID, status.Window.Key())
	if err != nil {
		s.metrics.SubmissionRecorded(metrics.OutcomeStoreFailure)
		return submission.Submission{}, storeError("check existing submission", err)
	}
	if exists {
		s.metrics.SubmissionRecorded(metrics.OutcomeDuplicate)
		return submission.Submission{}, alreadySubmittedError(player)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return submission.Submission{}, fmt.Errorf("generate submission id: %w", err)
	}

	won := input.Won
	item := submission.Submission{
		ID:          id,
		PlayerID:    player.ID,
		WindowStart: status.Window.Key(),
		Goals:       stats.Goals,
		Assists:     stats.Assists,
		Saves:       stats.Saves,
		Points:      scoring.Points(stats.Goals, stats.Assists, stats.Saves, won),
		Won:         &won,
		Verified:    true,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}

	created, err := s.repo.Create(ctx, item)
	if errors.Is(err, submission.ErrDuplicate) {
		s.metrics.SubmissionRecorded(metrics.OutcomeDuplicate)
		return submission.Submission{}, alreadySubmittedError(player)
	}
	if err != nil {
		s.metrics.SubmissionRecorded(metrics.OutcomeStoreFailure)
		return submission.Submission{}, storeError("create submission", err)
	}

	s.metrics.SubmissionRecorded(metrics.OutcomeAccepted)
	s.logger.InfoContext(ctx, "stats submitted",
		"player", player.Name,
		"window_start", created.WindowStart,
		"points", created.Points,
	)
	return created, nil
}

// Status reports whether the player has a line in the current window.
func (s *SubmissionService) Status(ctx context.Context, playerName string) (SubmissionStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmissionService.Status")
	defer span.End()

	player, err := s.lookupPlayer(playerName)
	if err != nil {
		return SubmissionStatus{}, err
	}

	status := s.windows.statusAt(ctx, s.now())
	existing, exists, err := s.repo.GetForWindow(ctx, player.ID, status.Window.Key())
	if err != nil {
		return SubmissionStatus{}, storeError("get submission for window", err)
	}

	out := SubmissionStatus{Player: player, Window: status, HasSubmitted: exists}
	if exists {
		out.Submission = &existing
	}
	return out, nil
}

func (s *SubmissionService) lookupPlayer(name string) (roster.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return roster.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	player, ok := s.registry.ByName(name)
	if !ok {
		return roster.Player{}, fmt.Errorf("%w: unknown player %q", ErrInvalidInput, name)
	}
	return player, nil
}

func windowClosedError(status WindowStatus) error {
	if status.ReopensAt != nil {
		return crerr.WithHintf(ErrWindowClosed, "submissions reopen at %s", status.ReopensAt.UTC().Format(time.RFC3339))
	}
	return crerr.WithHint(ErrWindowClosed, "submissions reopen once the next game window is configured")
}

func alreadySubmittedError(player roster.Player) error {
	return crerr.WithHint(
		fmt.Errorf("%w: %s", ErrAlreadySubmitted, player.Name),
		"wait for the next window to submit again",
	)
}
