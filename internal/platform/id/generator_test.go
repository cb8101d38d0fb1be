package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := &SequenceGenerator{Prefix: "sub"}
	a, _ := g.NewID()
	b, _ := g.NewID()
	if a != "sub-1" || b != "sub-2" {
		t.Fatalf("unexpected sequence: %s, %s", a, b)
	}
}
