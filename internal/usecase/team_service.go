package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/teams"
)

type TeamService struct {
	registry *roster.Registry
	shuffle  teams.Shuffler
}

func NewTeamService(registry *roster.Registry) *TeamService {
	return &TeamService{
		registry: registry,
		shuffle:  rand.Shuffle,
	}
}

// Draw splits the named players into two random teams.
func (s *TeamService) Draw(ctx context.Context, names []string) (teams.Split, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TeamService.Draw")
	defer span.End()

	selected := make([]roster.Player, 0, len(names))
	for _, name := range names {
		player, ok := s.registry.ByName(strings.TrimSpace(name))
		if !ok {
			return teams.Split{}, fmt.Errorf("%w: unknown player %q", ErrInvalidInput, name)
		}
		selected = append(selected, player)
	}

	split, err := teams.Draw(selected, s.shuffle)
	if errors.Is(err, teams.ErrNotEnoughPlayers) || errors.Is(err, teams.ErrDuplicatePlayer) {
		return teams.Split{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err != nil {
		return teams.Split{}, err
	}
	return split, nil
}
