package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/thursday-league/internal/domain/leaderboard"
	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
)

// Board is the ranked table plus category leaders.
type Board struct {
	Entries []leaderboard.Entry
	Leaders []leaderboard.Leader
}

// Overview is everything the landing page needs in one read.
type Overview struct {
	Players []roster.Player
	Window  WindowStatus
	Board   Board
}

type LeaderboardService struct {
	registry *roster.Registry
	repo     submission.Repository
	windows  *WindowService
}

func NewLeaderboardService(registry *roster.Registry, repo submission.Repository, windows *WindowService) *LeaderboardService {
	return &LeaderboardService{
		registry: registry,
		repo:     repo,
		windows:  windows,
	}
}

// Rankings recomputes the table from the full submission history.
func (s *LeaderboardService) Rankings(ctx context.Context) (Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Rankings")
	defer span.End()

	rows, err := s.repo.List(ctx)
	if err != nil {
		return Board{}, storeError("list submissions", err)
	}

	entries := leaderboard.Aggregate(s.registry, rows)
	return Board{
		Entries: entries,
		Leaders: leaderboard.Leaders(entries),
	}, nil
}

// Overview loads the window and the rankings concurrently.
func (s *LeaderboardService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Overview")
	defer span.End()

	out := Overview{Players: s.registry.All()}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		out.Window = s.windows.Current(ctx)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		board, err := s.Rankings(ctx)
		if err != nil {
			return err
		}
		out.Board = board
		return nil
	})
	if err := p.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
