package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/thursday-league/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(h.registry.All()))
}

func (h *Handler) GetWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWindow")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, windowStatusToDTO(h.windowService.Current(ctx)))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.Rankings(ctx)
	if err != nil {
		h.logFailure(ctx, "get leaderboard failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.leaderboardService.Overview(ctx)
	if err != nil {
		h.logFailure(ctx, "get overview failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewDTO{
		Players:     playersToDTO(overview.Players),
		Window:      windowStatusToDTO(overview.Window),
		Leaderboard: boardToDTO(overview.Board),
	})
}

func (h *Handler) GetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSubmissionStatus")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	status, err := h.submissionService.Status(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get submission status failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}

	out := submissionStatusDTO{
		Player:       playerToDTO(status.Player),
		Window:       windowStatusToDTO(status.Window),
		HasSubmitted: status.HasSubmitted,
	}
	if status.Submission != nil {
		item := submissionToDTO(*status.Submission)
		out.Submission = &item
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SubmitStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitStats")
	defer span.End()

	var req submitStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.submissionService.Submit(ctx, usecase.SubmitStatsInput{
		PlayerName: req.PlayerName,
		Goals:      req.Goals,
		Assists:    req.Assists,
		Saves:      req.Saves,
		Won:        req.Won,
	})
	if err != nil {
		h.logFailure(ctx, "submit stats failed", err, "player", req.PlayerName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submissionToDTO(item))
}

func (h *Handler) DrawTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DrawTeams")
	defer span.End()

	var req drawTeamsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	split, err := h.teamService.Draw(ctx, req.Players)
	if err != nil {
		h.logFailure(ctx, "draw teams failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsDTO{
		TeamA: playersToDTO(split.TeamA),
		TeamB: playersToDTO(split.TeamB),
	})
}
