package roster

import (
	"errors"
	"strings"
)

// Player is a registry entry. ID is an opaque token that never changes.
type Player struct {
	Name string
	ID   string
}

// Registry is an immutable, ordered player table.
type Registry struct {
	players []Player
	byName  map[string]int
	byID    map[string]int
}

// New builds a registry and rejects duplicate names, duplicate ids and blanks.
func New(players []Player) (*Registry, error) {
	r := &Registry{
		players: make([]Player, 0, len(players)),
		byName:  make(map[string]int, len(players)),
		byID:    make(map[string]int, len(players)),
	}
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		id := strings.TrimSpace(p.ID)
		if name == "" || id == "" {
			return nil, errors.New("player name and id are required")
		}
		if _, exists := r.byName[name]; exists {
			return nil, errors.New("duplicate player name: " + name)
		}
		if _, exists := r.byID[id]; exists {
			return nil, errors.New("duplicate player id: " + id)
		}
		r.byName[name] = len(r.players)
		r.byID[id] = len(r.players)
		r.players = append(r.players, Player{Name: name, ID: id})
	}
	return r, nil
}

// MustNew is New for compiled-in tables.
func MustNew(players []Player) *Registry {
	r, err := New(players)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns a copy of the registry in declaration order.
func (r *Registry) All() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *Registry) Len() int {
	return len(r.players)
}

func (r *Registry) ByName(name string) (Player, bool) {
	idx, ok := r.byName[strings.TrimSpace(name)]
	if !ok {
		return Player{}, false
	}
	return r.players[idx], true
}

func (r *Registry) ByID(id string) (Player, bool) {
	idx, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return Player{}, false
	}
	return r.players[idx], true
}

// Index returns the registry position of a player id, or -1.
func (r *Registry) Index(id string) int {
	idx, ok := r.byID[id]
	if !ok {
		return -1
	}
	return idx
}
