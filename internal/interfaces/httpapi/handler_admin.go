package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	"github.com/riskibarqy/thursday-league/internal/usecase"
)

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminLogin")
	defer span.End()

	var req adminLoginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.Authenticate(ctx, req.Username, req.Password); err != nil {
		h.logger.WarnContext(ctx, "admin login rejected", "username", req.Username)
		writeError(ctx, w, err)
		return
	}
	if err := h.sessions.RenewToken(ctx); err != nil {
		h.logFailure(ctx, "renew admin session token failed", err)
		writeError(ctx, w, fmt.Errorf("renew session token: %w", err))
		return
	}
	username := strings.TrimSpace(req.Username)
	h.sessions.Put(ctx, adminSessionKey, username)

	h.logger.InfoContext(ctx, "admin logged in", "username", username)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"username": username})
}

func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminLogout")
	defer span.End()

	if err := h.sessions.Destroy(ctx); err != nil {
		h.logFailure(ctx, "destroy admin session failed", err)
		writeError(ctx, w, fmt.Errorf("destroy session: %w", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminGetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetPlayerStats")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	stats, err := h.adminService.GetCurrentStats(ctx, name)
	if err != nil {
		h.logFailure(ctx, "admin get player stats failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(stats))
}

func (h *Handler) AdminSetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminSetPlayerStats")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	var req playerStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adminService.SetCurrentStats(ctx, name, submission.Stats{
		Goals:   req.Goals,
		Assists: req.Assists,
		Saves:   req.Saves,
		Won:     req.Won,
	})
	if err != nil {
		h.logFailure(ctx, "admin set player stats failed", err, "player", name)
		writeError(ctx, w, err)
		return
	}

	admin, _ := adminFromContext(ctx)
	h.logger.InfoContext(ctx, "player stats overridden", "player", name, "admin", admin)
	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(item))
}

func (h *Handler) AdminGetGameSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetGameSettings")
	defer span.End()

	overview, err := h.adminService.GetGameSettings(ctx)
	if err != nil {
		h.logFailure(ctx, "admin get game settings failed", err)
		writeError(ctx, w, err)
		return
	}

	out := gameSettingsOverviewDTO{All: make([]gameSettingsDTO, 0, len(overview.All))}
	for _, item := range overview.All {
		out.All = append(out.All, gameSettingsToDTO(item))
	}
	if overview.Active != nil {
		active := gameSettingsToDTO(*overview.Active)
		out.Active = &active
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AdminSetGameSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminSetGameSettings")
	defer span.End()

	var req gameSettingsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.adminService.SetGameSettings(ctx, usecase.SetGameSettingsInput{
		GameDate:        req.GameDate,
		SubmissionStart: req.SubmissionStart,
		SubmissionEnd:   req.SubmissionEnd,
	})
	if err != nil {
		h.logFailure(ctx, "admin set game settings failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameSettingsToDTO(saved))
}

func (h *Handler) AdminClearGameSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminClearGameSettings")
	defer span.End()

	if err := h.adminService.ClearGameSettings(ctx); err != nil {
		h.logFailure(ctx, "admin clear game settings failed", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminReset")
	defer span.End()

	var req resetRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.Reset(ctx, req.Action)
	if err != nil {
		h.logFailure(ctx, "admin reset failed", err, "action", req.Action)
		writeError(ctx, w, err)
		return
	}

	out := resetDTO{Action: result.Action, Deleted: result.Deleted}
	if result.Window != nil {
		window := windowToDTO(*result.Window)
		out.Window = &window
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func playerStatsToDTO(stats usecase.PlayerStats) playerStatsDTO {
	return playerStatsDTO{
		Player:       playerToDTO(stats.Player),
		Window:       windowToDTO(stats.Window),
		Goals:        stats.Goals,
		Assists:      stats.Assists,
		Saves:        stats.Saves,
		Won:          stats.Won,
		Points:       stats.Points,
		HasSubmitted: stats.HasSubmitted,
	}
}
