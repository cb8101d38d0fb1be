package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"github.com/riskibarqy/thursday-league/db"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
)

const usage = `usage: migration <command> [arg]

commands:
  up              apply all pending migrations
  down [steps]    roll back steps migrations (default 1)
  version         print the current version and dirty flag
  force <version> set the version without running migrations
  goto <version>  migrate up or down to the target version

env:
  DB_URL                             postgres connection url (required)
  DB_DISABLE_PREPARED_BINARY_RESULT  append disable_prepared_binary_result=yes (default true)
  MIGRATIONS_DIR                     read migrations from disk instead of the embedded set`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(logging.LevelInfo)
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:], logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("unknown command")

func run(command string, args []string, logger *logging.Logger) error {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}

	disableBinary, err := envBool("DB_DISABLE_PREPARED_BINARY_RESULT", true)
	if err != nil {
		return err
	}

	m, source, err := newMigrator(withPreparedBinaryDisabled(dbURL, disableBinary))
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		if err := ignoreNoChange(m.Up(), logger); err != nil {
			return err
		}
		logger.Info("migrations applied", "source", source)
	case "down":
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Steps(-steps), logger); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		if len(args) == 0 {
			return fmt.Errorf("force requires a version argument")
		}
		version, err := parseVersion(args[0])
		if err != nil {
			return err
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("version forced", "version", version)
	case "goto":
		if len(args) == 0 {
			return fmt.Errorf("goto requires a target version argument")
		}
		target, err := parseTarget(args[0])
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Migrate(target), logger); err != nil {
			return err
		}
		logger.Info("migrated", "version", target)
	default:
		return errUsage
	}

	return nil
}

// newMigrator prefers MIGRATIONS_DIR when set and falls back to the
// migrations compiled into the binary.
func newMigrator(dbURL string) (*migrate.Migrate, string, error) {
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, "", fmt.Errorf("resolve MIGRATIONS_DIR: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, "", fmt.Errorf("MIGRATIONS_DIR %q is not a directory", dir)
		}

		sourceURL := "file://" + filepath.ToSlash(abs)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("create migrator: %w", err)
		}
		return m, sourceURL, nil
	}

	source, err := iofs.New(db.Migrations, db.MigrationsPath)
	if err != nil {
		return nil, "", fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, "embedded", nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func withPreparedBinaryDisabled(raw string, disable bool) string {
	if !disable {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func envBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
