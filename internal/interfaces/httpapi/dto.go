package httpapi

import (
	"time"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/leaderboard"
	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	"github.com/riskibarqy/thursday-league/internal/usecase"
)

type submitStatsRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
	Goals      int    `json:"goals" validate:"min=0"`
	Assists    int    `json:"assists" validate:"min=0"`
	Saves      int    `json:"saves" validate:"min=0"`
	Won        bool   `json:"won"`
}

type drawTeamsRequest struct {
	Players []string `json:"players" validate:"required,min=4,dive,required"`
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type playerStatsRequest struct {
	Goals   int  `json:"goals" validate:"min=0"`
	Assists int  `json:"assists" validate:"min=0"`
	Saves   int  `json:"saves" validate:"min=0"`
	Won     bool `json:"won"`
}

type gameSettingsRequest struct {
	GameDate        time.Time `json:"gameDate" validate:"required"`
	SubmissionStart time.Time `json:"submissionStart" validate:"required"`
	SubmissionEnd   time.Time `json:"submissionEnd" validate:"required"`
}

type resetRequest struct {
	Action string `json:"action" validate:"required,oneof=reset_all reset_weekly"`
}

type playerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type windowDTO struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	GameDate time.Time `json:"gameDate"`
	Source   string    `json:"source"`
}

type nextGameDTO struct {
	KickoffAt  time.Time `json:"kickoffAt"`
	InProgress bool      `json:"inProgress"`
	Source     string    `json:"source"`
}

type windowStatusDTO struct {
	Now       time.Time   `json:"now"`
	Open      bool        `json:"open"`
	Window    windowDTO   `json:"window"`
	NextGame  nextGameDTO `json:"nextGame"`
	ReopensAt *time.Time  `json:"reopensAt,omitempty"`
}

type submissionDTO struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"playerId"`
	WindowStart time.Time `json:"windowStart"`
	Goals       int       `json:"goals"`
	Assists     int       `json:"assists"`
	Saves       int       `json:"saves"`
	Points      int       `json:"points"`
	Won         *bool     `json:"won,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type submissionStatusDTO struct {
	Player       playerDTO       `json:"player"`
	Window       windowStatusDTO `json:"window"`
	HasSubmitted bool            `json:"hasSubmitted"`
	Submission   *submissionDTO  `json:"submission,omitempty"`
}

type leaderboardEntryDTO struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Saves    int    `json:"saves"`
	Wins     int    `json:"wins"`
	Games    int    `json:"games"`
	Points   int    `json:"points"`
}

type leaderDTO struct {
	Category string `json:"category"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

type leaderboardDTO struct {
	Entries []leaderboardEntryDTO `json:"entries"`
	Leaders []leaderDTO           `json:"leaders"`
}

type overviewDTO struct {
	Players     []playerDTO     `json:"players"`
	Window      windowStatusDTO `json:"window"`
	Leaderboard leaderboardDTO  `json:"leaderboard"`
}

type teamsDTO struct {
	TeamA []playerDTO `json:"teamA"`
	TeamB []playerDTO `json:"teamB"`
}

type playerStatsDTO struct {
	Player       playerDTO `json:"player"`
	Window       windowDTO `json:"window"`
	Goals        int       `json:"goals"`
	Assists      int       `json:"assists"`
	Saves        int       `json:"saves"`
	Won          bool      `json:"won"`
	Points       int       `json:"points"`
	HasSubmitted bool      `json:"hasSubmitted"`
}

type gameSettingsDTO struct {
	ID              string    `json:"id"`
	GameDate        time.Time `json:"gameDate"`
	SubmissionStart time.Time `json:"submissionStart"`
	SubmissionEnd   time.Time `json:"submissionEnd"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

type gameSettingsOverviewDTO struct {
	Active *gameSettingsDTO  `json:"active"`
	All    []gameSettingsDTO `json:"all"`
}

type resetDTO struct {
	Action  string     `json:"action"`
	Deleted int64      `json:"deleted"`
	Window  *windowDTO `json:"window,omitempty"`
}

func playerToDTO(p roster.Player) playerDTO {
	return playerDTO{ID: p.ID, Name: p.Name}
}

func playersToDTO(players []roster.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

func windowToDTO(w schedule.Window) windowDTO {
	return windowDTO{
		Start:    w.Start.UTC(),
		End:      w.End.UTC(),
		GameDate: w.GameDate.UTC(),
		Source:   string(w.Source),
	}
}

func windowStatusToDTO(s usecase.WindowStatus) windowStatusDTO {
	out := windowStatusDTO{
		Now:    s.Now.UTC(),
		Open:   s.Open,
		Window: windowToDTO(s.Window),
		NextGame: nextGameDTO{
			KickoffAt:  s.NextGame.KickoffAt.UTC(),
			InProgress: s.NextGame.InProgress,
			Source:     string(s.NextGame.Source),
		},
	}
	if s.ReopensAt != nil {
		at := s.ReopensAt.UTC()
		out.ReopensAt = &at
	}
	return out
}

func submissionToDTO(item submission.Submission) submissionDTO {
	return submissionDTO{
		ID:          item.ID,
		PlayerID:    item.PlayerID,
		WindowStart: item.WindowStart.UTC(),
		Goals:       item.Goals,
		Assists:     item.Assists,
		Saves:       item.Saves,
		Points:      item.Points,
		Won:         item.Won,
		Verified:    item.Verified,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func boardToDTO(board usecase.Board) leaderboardDTO {
	out := leaderboardDTO{
		Entries: make([]leaderboardEntryDTO, 0, len(board.Entries)),
		Leaders: make([]leaderDTO, 0, len(board.Leaders)),
	}
	for _, e := range board.Entries {
		out.Entries = append(out.Entries, entryToDTO(e))
	}
	for _, l := range board.Leaders {
		out.Leaders = append(out.Leaders, leaderDTO{
			Category: string(l.Category),
			PlayerID: l.PlayerID,
			Name:     l.Name,
			Value:    l.Value,
		})
	}
	return out
}

func entryToDTO(e leaderboard.Entry) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		Rank:     e.Rank,
		PlayerID: e.PlayerID,
		Name:     e.Name,
		Goals:    e.Goals,
		Assists:  e.Assists,
		Saves:    e.Saves,
		Wins:     e.Wins,
		Games:    e.Games,
		Points:   e.Points,
	}
}

func gameSettingsToDTO(s gamesettings.Settings) gameSettingsDTO {
	return gameSettingsDTO{
		ID:              s.ID,
		GameDate:        s.GameDate.UTC(),
		SubmissionStart: s.SubmissionStart.UTC(),
		SubmissionEnd:   s.SubmissionEnd.UTC(),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt.UTC(),
	}
}
