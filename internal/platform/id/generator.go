package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque public IDs for stored rows.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// SequenceGenerator issues prefix-1, prefix-2, ... and is meant for tests.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next), nil
}
