package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/domain/scoring"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	idgen "github.com/riskibarqy/thursday-league/internal/platform/id"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
)

// Reset kinds.
const (
	ResetAll    = "reset_all"
	ResetWeekly = "reset_weekly"
)

// AdminCredentials are compared in constant time on login.
type AdminCredentials struct {
	Username string
	Password string
}

// PlayerStats is the admin view of a player's current-window line.
type PlayerStats struct {
	Player       roster.Player
	Window       schedule.Window
	Goals        int
	Assists      int
	Saves        int
	Won          bool
	Points       int
	HasSubmitted bool
}

type SetGameSettingsInput struct {
	GameDate        time.Time
	SubmissionStart time.Time
	SubmissionEnd   time.Time
}

// GameSettingsOverview lists the active override and the full history.
type GameSettingsOverview struct {
	Active *gamesettings.Settings
	All    []gamesettings.Settings
}

type ResetResult struct {
	Action  string
	Deleted int64
	Window  *schedule.Window
}

type AdminService struct {
	registry     *roster.Registry
	windows      *WindowService
	repo         submission.Repository
	settingsRepo gamesettings.Repository
	idGen        idgen.Generator
	credentials  AdminCredentials
	metrics      metrics.Recorder
	logger       *logging.Logger
	now          func() time.Time
}

func NewAdminService(
	registry *roster.Registry,
	windows *WindowService,
	repo submission.Repository,
	settingsRepo gamesettings.Repository,
	idGen idgen.Generator,
	credentials AdminCredentials,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &AdminService{
		registry:     registry,
		windows:      windows,
		repo:         repo,
		settingsRepo: settingsRepo,
		idGen:        idGen,
		credentials:  credentials,
		metrics:      recorder,
		logger:       logger,
		now:          time.Now,
	}
}

// Authenticate checks admin credentials. An empty configured password never matches.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) error {
	_, span := startUsecaseSpan(ctx, "usecase.AdminService.Authenticate")
	defer span.End()

	if s.credentials.Password == "" {
		return fmt.Errorf("%w: admin login is not configured", ErrUnauthorized)
	}
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password)) == 1
	if !userOK || !passOK {
		return fmt.Errorf("%w: invalid admin credentials", ErrUnauthorized)
	}
	return nil
}

// GetCurrentStats returns the player's line for the current window, or zeros.
func (s *AdminService) GetCurrentStats(ctx context.Context, playerName string) (PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.GetCurrentStats")
	defer span.End()

	player, err := s.lookupPlayer(playerName)
	if err != nil {
		return PlayerStats{}, err
	}

	window := s.windows.statusAt(ctx, s.now()).Window
	existing, exists, err := s.repo.GetForWindow(ctx, player.ID, window.Key())
	if err != nil {
		return PlayerStats{}, storeError("get submission for window", err)
	}

	out := PlayerStats{Player: player, Window: window}
	if !exists {
		return out, nil
	}
	out.Goals = existing.Goals
	out.Assists = existing.Assists
	out.Saves = existing.Saves
	out.Points = existing.Points
	out.Won = scoring.ResolveWon(existing.Won, existing.Points, existing.Goals, existing.Assists, existing.Saves)
	out.HasSubmitted = true
	return out, nil
}

// SetCurrentStats upserts the player's current-window line. It bypasses the
// one-submission rule and the open-window check.
func (s *AdminService) SetCurrentStats(ctx context.Context, playerName string, stats submission.Stats) (submission.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SetCurrentStats")
	defer span.End()

	if err := stats.Validate(); err != nil {
		return submission.Submission{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	player, err := s.lookupPlayer(playerName)
	if err != nil {
		return submission.Submission{}, err
	}

	now := s.now().UTC()
	window := s.windows.statusAt(ctx, now).Window
	points := scoring.Points(stats.Goals, stats.Assists, stats.Saves, stats.Won)

	existing, exists, err := s.repo.GetForWindow(ctx, player.ID, window.Key())
	if err != nil {
		return submission.Submission{}, storeError("get submission for window", err)
	}
	if exists {
		return s.update(ctx, player, existing.ID, stats, points, now)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return submission.Submission{}, fmt.Errorf("generate submission id: %w", err)
	}
	won := stats.Won
	created, err := s.repo.Create(ctx, submission.Submission{
		ID:          id,
		PlayerID:    player.ID,
		WindowStart: window.Key(),
		Goals:       stats.Goals,
		Assists:     stats.Assists,
		Saves:       stats.Saves,
		Points:      points,
		Won:         &won,
		Verified:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if errors.Is(err, submission.ErrDuplicate) {
		// A player submission landed between the read and the insert.
		existing, exists, err = s.repo.GetForWindow(ctx, player.ID, window.Key())
		if err != nil {
			return submission.Submission{}, storeError("reload submission for window", err)
		}
		if !exists {
			return submission.Submission{}, fmt.Errorf("submission for %s vanished during upsert", player.Name)
		}
		return s.update(ctx, player, existing.ID, stats, points, now)
	}
	if err != nil {
		return submission.Submission{}, storeError("create submission", err)
	}

	s.metrics.SubmissionRecorded(metrics.OutcomeAdminOverride)
	s.logger.InfoContext(ctx, "admin created player stats", "player", player.Name, "points", points)
	return created, nil
}

func (s *AdminService) update(
	ctx context.Context,
	player roster.Player,
	id string,
	stats submission.Stats,
	points int,
	now time.Time,
) (submission.Submission, error) {
	updated, err := s.repo.UpdateStats(ctx, id, stats, points, now)
	if err != nil {
		return submission.Submission{}, storeError("update submission", err)
	}
	s.metrics.SubmissionRecorded(metrics.OutcomeAdminOverride)
	s.logger.InfoContext(ctx, "admin updated player stats", "player", player.Name, "points", points)
	return updated, nil
}

// Reset runs a bulk delete. Weekly resets remove rows created inside the
// current window and rows keyed to it.
func (s *AdminService) Reset(ctx context.Context, action string) (ResetResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Reset")
	defer span.End()

	switch strings.TrimSpace(action) {
	case ResetAll:
		return s.ResetAll(ctx)
	case ResetWeekly:
		return s.ResetWeekly(ctx)
	default:
		return ResetResult{}, fmt.Errorf("%w: unknown reset action %q", ErrInvalidInput, action)
	}
}

func (s *AdminService) ResetAll(ctx context.Context) (ResetResult, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return ResetResult{}, storeError("delete all submissions", err)
	}

	s.metrics.ResetPerformed(ResetAll, deleted)
	s.logger.WarnContext(ctx, "all submissions deleted", "deleted", deleted)
	return ResetResult{Action: ResetAll, Deleted: deleted}, nil
}

func (s *AdminService) ResetWeekly(ctx context.Context) (ResetResult, error) {
	window := s.windows.statusAt(ctx, s.now()).Window
	deleted, err := s.repo.DeleteCreatedBetween(ctx, window.Start, window.End)
	if err != nil {
		return ResetResult{}, storeError("delete submissions in window", err)
	}
	// Admin writes outside the open period still carry this window's key.
	keyed, err := s.repo.DeleteForWindow(ctx, window.Key())
	if err != nil {
		return ResetResult{}, storeError("delete submissions keyed to window", err)
	}
	deleted += keyed

	s.metrics.ResetPerformed(ResetWeekly, deleted)
	s.logger.WarnContext(ctx, "current window submissions deleted",
		"deleted", deleted,
		"window_start", window.Start,
		"window_end", window.End,
	)
	return ResetResult{Action: ResetWeekly, Deleted: deleted, Window: &window}, nil
}

// GetGameSettings never fails on a missing settings table; it reports no override.
func (s *AdminService) GetGameSettings(ctx context.Context) (GameSettingsOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.GetGameSettings")
	defer span.End()

	all, err := s.settingsRepo.List(ctx)
	if errors.Is(err, gamesettings.ErrNotProvisioned) {
		return GameSettingsOverview{All: []gamesettings.Settings{}}, nil
	}
	if err != nil {
		return GameSettingsOverview{}, storeError("list game settings", err)
	}

	out := GameSettingsOverview{All: all}
	for i := range all {
		if all[i].IsActive {
			active := all[i]
			out.Active = &active
			break
		}
	}
	return out, nil
}

// SetGameSettings replaces the active override.
func (s *AdminService) SetGameSettings(ctx context.Context, input SetGameSettingsInput) (gamesettings.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SetGameSettings")
	defer span.End()

	settings := gamesettings.Settings{
		GameDate:        input.GameDate.UTC(),
		SubmissionStart: input.SubmissionStart.UTC(),
		SubmissionEnd:   input.SubmissionEnd.UTC(),
		IsActive:        true,
		CreatedAt:       s.now().UTC(),
	}
	if err := settings.Validate(); err != nil {
		return gamesettings.Settings{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return gamesettings.Settings{}, fmt.Errorf("generate game settings id: %w", err)
	}
	settings.ID = id

	saved, err := s.settingsRepo.Activate(ctx, settings)
	if errors.Is(err, gamesettings.ErrNotProvisioned) {
		return gamesettings.Settings{}, fmt.Errorf("%w: game settings storage is not provisioned", ErrDependencyUnavailable)
	}
	if err != nil {
		return gamesettings.Settings{}, storeError("activate game settings", err)
	}

	s.logger.InfoContext(ctx, "game settings override activated",
		"game_date", saved.GameDate,
		"submission_start", saved.SubmissionStart,
		"submission_end", saved.SubmissionEnd,
	)
	return saved, nil
}

// ClearGameSettings reverts to the default weekly schedule.
func (s *AdminService) ClearGameSettings(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ClearGameSettings")
	defer span.End()

	err := s.settingsRepo.DeactivateAll(ctx)
	if errors.Is(err, gamesettings.ErrNotProvisioned) {
		return nil
	}
	if err != nil {
		return storeError("deactivate game settings", err)
	}

	s.logger.InfoContext(ctx, "game settings override cleared")
	return nil
}

func (s *AdminService) lookupPlayer(name string) (roster.Player, error) {
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
