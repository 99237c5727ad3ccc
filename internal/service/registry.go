package service

import (
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Registry holds the live game sessions keyed by id.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*Game)}
}

// Add stores a game under its id.
func (r *Registry) Add(id string, game *Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[id] = game
}

// Get returns the game with the given id.
func (r *Registry) Get(id string) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "%q", id)
	}
	return game, nil
}

// Remove drops the game with the given id; unknown ids are a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
