package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// GameService is the application surface for play-vs-engine sessions.
type GameService struct {
	registry *Registry
}

// NewGameService returns a service over the given registry.
func NewGameService(registry *Registry) *GameService {
	return &GameService{registry: registry}
}

// CreateGame starts a new session against the named strategy, with the
// player on the named side ("white" or "black"). When the engine owns
// White it answers the opening move immediately.
func (s *GameService) CreateGame(strategyName, side string) (GameState, error) {
	strategy, err := search.ForName(strategyName, time.Now().UnixNano())
	if err != nil {
		return GameState{}, err
	}
	player, err := colourFromName(side)
	if err != nil {
		return GameState{}, err
	}

	id := uuid.New().String()
	game := NewGame(id, strategy, player)
	if player == chess.Black {
		if err := game.EngineOpens(); err != nil {
			return GameState{}, err
		}
	}
	s.registry.Add(id, game)
	return game.State(), nil
}

// GetState returns the state of the session with the given id.
func (s *GameService) GetState(id string) (GameState, error) {
	game, err := s.registry.Get(id)
	if err != nil {
		return GameState{}, err
	}
	return game.State(), nil
}

// PlayMove applies the player's move to the session and returns the
// updated state plus the engine's reply text.
func (s *GameService) PlayMove(id, text string) (GameState, string, error) {
	game, err := s.registry.Get(id)
	if err != nil {
		return GameState{}, "", err
	}
	return game.PlayMove(text)
}

// Resign removes the session.
func (s *GameService) Resign(id string) error {
	if _, err := s.registry.Get(id); err != nil {
		return err
	}
	s.registry.Remove(id)
	return nil
}

func colourFromName(name string) (chess.Colour, error) {
	switch strings.ToLower(name) {
	case "", "white":
		return chess.White, nil
	case "black":
		return chess.Black, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidSide, "%q", name)
	}
}
