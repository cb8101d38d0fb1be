package teams

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
)

const MinPlayers = 4

var (
	ErrNotEnoughPlayers = errors.New("not enough players selected")
	ErrDuplicatePlayer  = errors.New("player selected more than once")
)

// Split is a two-team draw.
type Split struct {
	TeamA []roster.Player
	TeamB []roster.Player
}

// Shuffler permutes n items through swap, with the contract of rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// Draw shuffles the selection and deals players alternately into two teams.
func Draw(selected []roster.Player, shuffle Shuffler) (Split, error) {
	if len(selected) < MinPlayers {
		return Split{}, fmt.Errorf("%w: need at least %d, got %d", ErrNotEnoughPlayers, MinPlayers, len(selected))
	}

	seen := make(map[string]struct{}, len(selected))
	pool := make([]roster.Player, 0, len(selected))
	for _, p := range selected {
		if _, ok := seen[p.ID]; ok {
			return Split{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name)
		}
		seen[p.ID] = struct{}{}
		pool = append(pool, p)
	}

	if shuffle != nil {
		shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	out := Split{
		TeamA: make([]roster.Player, 0, (len(pool)+1)/2),
		TeamB: make([]roster.Player, 0, len(pool)/2),
	}
	for i, p := range pool {
		if i%2 == 0 {
			out.TeamA = append(out.TeamA, p)
			continue
		}
		out.TeamB = append(out.TeamB, p)
	}
	return out, nil
}
