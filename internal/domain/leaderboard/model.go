package leaderboard

import (
	"sort"

	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/scoring"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
)

// Entry is a player's cumulative line. It is derived on every read.
type Entry struct {
	Rank     int
	PlayerID string
	Name     string
	Goals    int
	Assists  int
	Saves    int
	Wins     int
	Games    int
	Points   int
}

type Category string

const (
	CategoryPoints  Category = "points"
	CategoryGoals   Category = "goals"
	CategoryAssists Category = "assists"
	CategorySaves   Category = "saves"
)

// Leader is the top player of one category.
type Leader struct {
	Category Category
	PlayerID string
	Name     string
	Value    int
}

// Aggregate folds rows into one entry per registry player, ordered by points
// descending. Equal totals keep registry order. Rows for unknown players are
// skipped.
func Aggregate(reg *roster.Registry, rows []submission.Submission) []Entry {
	players := reg.All()
	entries := make([]Entry, len(players))
	for i, p := range players {
		entries[i] = Entry{PlayerID: p.ID, Name: p.Name}
	}

	for _, row := range rows {
		idx := reg.Index(row.PlayerID)
		if idx < 0 {
			continue
		}
		e := &entries[idx]
		e.Goals += row.Goals
		e.Assists += row.Assists
		e.Saves += row.Saves
		e.Points += row.Points
		e.Games++
		if scoring.ResolveWon(row.Won, row.Points, row.Goals, row.Assists, row.Saves) {
			e.Wins++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// Leaders returns the top entry for each category whose best value is above
// zero. Ties go to the entry listed first.
func Leaders(entries []Entry) []Leader {
	categories := []struct {
		category Category
		value    func(Entry) int
	}{
		{CategoryPoints, func(e Entry) int { return e.Points }},
		{CategoryGoals, func(e Entry) int { return e.Goals }},
		{CategoryAssists, func(e Entry) int { return e.Assists }},
		{CategorySaves, func(e Entry) int { return e.Saves }},
	}

	out := make([]Leader, 0, len(categories))
	for _, c := range categories {
		var best *Entry
		for i := range entries {
			if best == nil || c.value(entries[i]) > c.value(*best) {
				best = &entries[i]
			}
		}
		if best == nil || c.value(*best) <= 0 {
			continue
		}
		out = append(out, Leader{
			Category: c.category,
			PlayerID: best.PlayerID,
			Name:     best.Name,
			Value:    c.value(*best),
		})
	}
	return out
}
