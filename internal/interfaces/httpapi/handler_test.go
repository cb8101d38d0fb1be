package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/thursday-league/internal/platform/id"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
	"github.com/riskibarqy/thursday-league/internal/usecase"
)

func testLogger() *logging.Logger {
	return logging.NewNop()
}

type testServer struct {
	*httptest.Server
	client *http.Client
}

// newTestServer pins the submission window with an override around the real
// clock so results do not depend on the weekday the tests run on.
func newTestServer(t *testing.T, windowStart, windowEnd time.Time) *testServer {
	t.Helper()

	registry := roster.Default()
	logger := testLogger()
	recorder := metrics.New()
	submissions := memory.NewSubmissionRepository()
	settings := memory.NewGameSettingsRepository()
	_, err := settings.Activate(context.Background(), gamesettings.Settings{
		ID:              "override-1",
		GameDate:        windowEnd.Add(time.Hour),
		SubmissionStart: windowStart,
		SubmissionEnd:   windowEnd,
		IsActive:        true,
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)

	windows := usecase.NewWindowService(schedule.Default(), settings, nil, recorder, logger)
	ids := idgen.NewUUIDGenerator()
	sessions := scs.New()

	handler := NewHandler(
		registry,
		windows,
		usecase.NewSubmissionService(registry, windows, submissions, ids, recorder, logger),
		usecase.NewLeaderboardService(registry, submissions, windows),
		usecase.NewTeamService(registry),
		usecase.NewAdminService(
			registry,
			windows,
			submissions,
			settings,
			ids,
			usecase.AdminCredentials{Username: "admin", Password: "s3cret"},
			recorder,
			logger,
		),
		sessions,
		logger,
	)

	srv := httptest.NewServer(NewRouter(handler, sessions, recorder, logger, []string{"*"}, 5*time.Second))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testServer{Server: srv, client: &http.Client{Jar: jar}}
}

func newOpenTestServer(t *testing.T) *testServer {
	now := time.Now()
	return newTestServer(t, now.Add(-time.Hour), now.Add(time.Hour))
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}

	var out map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	return data
}

func errorReason(t *testing.T, body map[string]any) string {
	t.Helper()
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	items, _ := errorObj["errors"].([]any)
	if len(items) == 0 {
		t.Fatalf("expected error items, got %v", errorObj)
	}
	reason, _ := items[0].(map[string]any)["reason"].(string)
	return reason
}

func TestHandler_SubmitStatsFlow(t *testing.T) {
	srv := newOpenTestServer(t)

	status, body := srv.do(t, http.MethodPost, "/v1/submissions", `{"playerName":"Ahmed","goals":2,"assists":1,"saves":0,"won":true}`)
	require.Equal(t, http.StatusCreated, status)
	data := dataObject(t, body)
	require.EqualValues(t, 23, data["points"])
	require.Equal(t, "7f1e43d8-80f0-49c6-84ac-6378af6de477", data["playerId"])

	status, body = srv.do(t, http.MethodPost, "/v1/submissions", `{"playerName":"Ahmed","goals":9}`)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "alreadySubmitted", errorReason(t, body))
	help, _ := body["error"].(map[string]any)["help"].([]any)
	require.Equal(t, []any{"wait for the next window to submit again"}, help)

	status, body = srv.do(t, http.MethodGet, "/v1/players/Ahmed/submission", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, dataObject(t, body)["hasSubmitted"])

	status, body = srv.do(t, http.MethodGet, "/v1/leaderboard", "")
	require.Equal(t, http.StatusOK, status)
	entries, _ := dataObject(t, body)["entries"].([]any)
	require.Len(t, entries, 20)
	first := entries[0].(map[string]any)
	require.Equal(t, "Ahmed", first["name"])
	require.EqualValues(t, 23, first["points"])
	require.EqualValues(t, 1, first["wins"])
}

func TestHandler_SubmitStatsRejectsBadPayloads(t *testing.T) {
	srv := newOpenTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"playerName":`},
		{name: "unknown field", body: `{"playerName":"Ahmed","yellowCards":1}`},
		{name: "missing player", body: `{"goals":1}`},
		{name: "negative count", body: `{"playerName":"Ahmed","assists":-1}`},
		{name: "unknown player", body: `{"playerName":"Cantona","goals":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := srv.do(t, http.MethodPost, "/v1/submissions", tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, "invalidInput", errorReason(t, body))
		})
	}
}

func TestHandler_SubmitStatsWindowClosed(t *testing.T) {
	now := time.Now()
	srv := newTestServer(t, now.Add(-3*time.Hour), now.Add(-2*time.Hour))

	status, body := srv.do(t, http.MethodPost, "/v1/submissions", `{"playerName":"Fasin","goals":1}`)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "windowClosed", errorReason(t, body))

	status, body = srv.do(t, http.MethodGet, "/v1/window", "")
	require.Equal(t, http.StatusOK, status)
	data := dataObject(t, body)
	require.Equal(t, false, data["open"])
	require.Equal(t, "override", data["window"].(map[string]any)["source"])
}

func TestHandler_PublicReads(t *testing.T) {
	srv := newOpenTestServer(t)

	status, body := srv.do(t, http.MethodGet, "/v1/players", "")
	require.Equal(t, http.StatusOK, status)
	players, _ := body["data"].([]any)
	require.Len(t, players, 20)
	require.Equal(t, "Ahmed", players[0].(map[string]any)["name"])

	status, body = srv.do(t, http.MethodGet, "/v1/overview", "")
	require.Equal(t, http.StatusOK, status)
	data := dataObject(t, body)
	require.Equal(t, true, data["window"].(map[string]any)["open"])
	require.Contains(t, data, "leaderboard")

	status, body = srv.do(t, http.MethodPost, "/v1/teams", `{"players":["Ahmed","Fasin","Jalal","Shareef","Nithin"]}`)
	require.Equal(t, http.StatusOK, status)
	teams := dataObject(t, body)
	require.Len(t, teams["teamA"], 3)
	require.Len(t, teams["teamB"], 2)

	status, _ = srv.do(t, http.MethodPost, "/v1/teams", `{"players":["Ahmed","Fasin"]}`)
	require.Equal(t, http.StatusBadRequest, status)

	status, body = srv.do(t, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", dataObject(t, body)["status"])
}

func TestHandler_AdminFlow(t *testing.T) {
	srv := newOpenTestServer(t)

	status, body := srv.do(t, http.MethodGet, "/v1/admin/players/Ahmed/stats", "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthorized", errorReason(t, body))

	status, _ = srv.do(t, http.MethodPost, "/v1/admin/session", `{"username":"admin","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = srv.do(t, http.MethodPost, "/v1/admin/session", `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, status)

	status, body = srv.do(t, http.MethodGet, "/v1/admin/players/Ahmed/stats", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, dataObject(t, body)["hasSubmitted"])

	status, _ = srv.do(t, http.MethodPost, "/v1/submissions", `{"playerName":"Ahmed","goals":2,"assists":1,"won":true}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = srv.do(t, http.MethodPut, "/v1/admin/players/Ahmed/stats", `{"goals":1,"assists":0,"saves":0,"won":false}`)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 5, dataObject(t, body)["points"])

	status, _ = srv.do(t, http.MethodGet, "/v1/admin/players/Pele/stats", "")
	require.Equal(t, http.StatusBadRequest, status)

	status, body = srv.do(t, http.MethodGet, "/v1/admin/game-settings", "")
	require.Equal(t, http.StatusOK, status)
	settings := dataObject(t, body)
	require.NotNil(t, settings["active"])
	require.Len(t, settings["all"], 1)

	status, _ = srv.do(t, http.MethodPost, "/v1/admin/reset", `{"action":"reset_season"}`)
	require.Equal(t, http.StatusBadRequest, status)

	status, body = srv.do(t, http.MethodPost, "/v1/admin/reset", `{"action":"reset_weekly"}`)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, dataObject(t, body)["deleted"])

	status, _ = srv.do(t, http.MethodDelete, "/v1/admin/game-settings", "")
	require.Equal(t, http.StatusNoContent, status)

	status, _ = srv.do(t, http.MethodDelete, "/v1/admin/session", "")
	require.Equal(t, http.StatusNoContent, status)

	status, _ = srv.do(t, http.MethodPost, "/v1/admin/reset", `{"action":"reset_all"}`)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	srv := newOpenTestServer(t)

	status, _ := srv.do(t, http.MethodPost, "/v1/submissions", `{"playerName":"Nithin","saves":2}`)
	require.Equal(t, http.StatusCreated, status)

	resp, err := srv.client.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), `thursday_league_submissions_total{outcome="accepted"} 1`)
	require.Contains(t, string(raw), `route="POST /v1/submissions"`)
}
