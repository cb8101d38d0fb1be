package postgres

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	qb "github.com/riskibarqy/thursday-league/internal/platform/querybuilder"
)

func TestSubmissionRowMapping(t *testing.T) {
	createdAt := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	won := true
	item := submission.Submission{
		ID:          "sub-1",
		PlayerID:    "7f1e43d8-80f0-49c6-84ac-6378af6de477",
		WindowStart: time.Date(2026, 10, 15, 18, 0, 0, 0, time.FixedZone("UTC+03:00", 3*60*60)),
		Goals:       2,
		Assists:     1,
		Points:      23,
		Won:         &won,
		Verified:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	insert := submissionToInsert(item)
	if insert.WindowStart.Location() != time.UTC || insert.WindowStart.Hour() != 15 {
		t.Fatalf("expected window start normalized to UTC, got %s", insert.WindowStart)
	}
	if !insert.Won.Valid || !insert.Won.Bool {
		t.Fatalf("unexpected won column: %+v", insert.Won)
	}

	got := submissionFromRow(submissionTableModel{
		PublicID:       insert.PublicID,
		PlayerPublicID: insert.PlayerPublicID,
		WindowStart:    insert.WindowStart,
		Goals:          insert.Goals,
		Assists:        insert.Assists,
		Points:         insert.Points,
		Won:            insert.Won,
		Verified:       insert.Verified,
		CreatedAt:      insert.CreatedAt,
		UpdatedAt:      insert.UpdatedAt,
	})
	if got.ID != "sub-1" || got.PlayerID != item.PlayerID || got.Points != 23 {
		t.Fatalf("unexpected submission: %+v", got)
	}
	if got.Won == nil || !*got.Won {
		t.Fatalf("expected won=true, got %v", got.Won)
	}

	legacy := submissionFromRow(submissionTableModel{Won: sql.NullBool{}})
	if legacy.Won != nil {
		t.Fatalf("expected nil won for legacy row")
	}
}

func TestSubmissionInsertQuery(t *testing.T) {
	query, args, err := qb.InsertModel(submissionsTable, submissionToInsert(submission.Submission{ID: "sub-1"}), "RETURNING *")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	want := "INSERT INTO submissions (public_id, player_public_id, window_start, goals, assists, saves, points, won, verified, created_at, updated_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING *"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 11 {
		t.Fatalf("unexpected arg count: %d", len(args))
	}
}

func TestSettingsErrorMapsMissingTable(t *testing.T) {
	err := settingsError("get active game settings", &pq.Error{Code: "42P01"})
	if !errors.Is(err, gamesettings.ErrNotProvisioned) {
		t.Fatalf("expected ErrNotProvisioned, got %v", err)
	}

	err = settingsError("get active game settings", errors.New("connection reset"))
	if errors.Is(err, gamesettings.ErrNotProvisioned) {
		t.Fatalf("unexpected ErrNotProvisioned for generic error")
	}
}

func TestDeactivateSettingsQuery(t *testing.T) {
	query, args, err := deactivateSettingsQuery()
	if err != nil {
		t.Fatalf("build deactivate: %v", err)
	}
	if query != "UPDATE game_settings SET is_active = $1 WHERE is_active = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != false || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteForWindowQuery(t *testing.T) {
	key := time.Date(2026, 10, 15, 18, 0, 0, 0, time.FixedZone("UTC+03:00", 3*60*60))

	query, args, err := deleteForWindowQuery(key)
	if err != nil {
		t.Fatalf("build delete for window: %v", err)
	}
	if query != "DELETE FROM submissions WHERE window_start = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || !args[0].(time.Time).Equal(key) || args[0].(time.Time).Location() != time.UTC {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteCreatedBetweenQueryTruncatesEnd(t *testing.T) {
	start := time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 21, 20, 59, 59, int(time.Second-1), time.UTC)

	query, args, err := deleteCreatedBetweenQuery(start, end)
	if err != nil {
		t.Fatalf("build delete in range: %v", err)
	}
	if query != "DELETE FROM submissions WHERE created_at >= $1 AND created_at <= $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	wantEnd := time.Date(2026, 10, 21, 20, 59, 59, 999_999_000, time.UTC)
	if len(args) != 2 || !args[0].(time.Time).Equal(start) || !args[1].(time.Time).Equal(wantEnd) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
