package usecase

import (
	"context"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrAlreadySubmitted      = crerr.New("stats already submitted for this window")
	ErrWindowClosed          = crerr.New("submission window is closed")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
	ErrTimeout               = crerr.New("operation timed out")
)

// Hints returns user-facing guidance attached to err, if any.
func Hints(err error) []string {
	return crerr.GetAllHints(err)
}

// storeError wraps a repository failure, tagging expired deadlines with ErrTimeout.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
