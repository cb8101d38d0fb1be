package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker stops calling a failing dependency for OpenTimeout after
// FailureThreshold consecutive failures, then lets HalfOpenMaxReq probes through.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	probeWins int
	now       func() time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	return NewCircuitBreakerFromConfig(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	})
}

// NewCircuitBreakerFromConfig returns nil when the breaker is disabled. A nil
// breaker allows every call.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return &CircuitBreaker{
		cfg:   NormalizeCircuitBreakerConfig(cfg),
		state: CircuitStateClosed,
		now:   time.Now,
	}
}

// Execute runs fn when the breaker allows it and records the outcome.
// Errors for which ignore returns true do not count as failures.
func (b *CircuitBreaker) Execute(fn func() error, ignore func(error) bool) error {
	if err := b.Allow(); err != nil {
		return err
	}
	err := fn()
	if err != nil && (ignore == nil || !ignore(err)) {
		b.RecordFailure()
		return err
	}
	b.RecordSuccess()
	return err
}

func (b *CircuitBreaker) Allow() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.reset(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		if b.probes > 0 {
			b.probes--
		}
		b.probeWins++
		if b.probeWins >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.reset(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case CircuitStateHalfOpen:
		b.trip()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) trip() {
	b.reset(CircuitStateOpen)
	b.openedAt = b.now()
}

func (b *CircuitBreaker) reset(state CircuitState) {
	b.state = state
	b.failures = 0
	b.probes = 0
	b.probeWins = 0
	if state == CircuitStateClosed {
		b.openedAt = time.Time{}
	}
}
