package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestPQErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantTable  bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, wantUnique: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), wantUnique: true},
		{name: "undefined table", err: &pq.Error{Code: "42P01"}, wantTable: true},
		{name: "other pq error", err: &pq.Error{Code: "08006"}},
		{name: "plain error", err: fmt.Errorf("pq: relation game_settings does not exist")},
		{name: "nil", err: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.wantUnique {
				t.Fatalf("isUniqueViolation: got=%v want=%v", got, tc.wantUnique)
			}
			if got := isUndefinedTable(tc.err); got != tc.wantTable {
				t.Fatalf("isUndefinedTable: got=%v want=%v", got, tc.wantTable)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatalf("expected sql.ErrConnDone to not be not found")
	}
}
