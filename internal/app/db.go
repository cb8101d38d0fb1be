package app

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/thursday-league/internal/config"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

var sqlWhitespace = regexp.MustCompile(`\s+`)

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open(
		"postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// normalizeDBURL opts out of binary results for prepared statements, which
// transaction-mode poolers cannot route. DSN style strings are left alone.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL reads the database name from either a URL or a key=value DSN.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	for _, token := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}

	return ""
}

func formatDBQueryForTrace(query string) string {
	query = sqlWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
