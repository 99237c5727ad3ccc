// Package service hosts play-vs-engine game sessions: a registry of
// games keyed by id, a Game aggregate guarding one session, and the
// engine-vs-engine driver loop.
package service

import (
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Result is the outcome of a game.
type Result string

const (
	ResultInProgress Result = "in_progress"
	ResultWhiteWins  Result = "white_wins"
	ResultBlackWins  Result = "black_wins"
	ResultStalemate  Result = "stalemate"
	ResultDrawnOut   Result = "drawn_by_length"
)

// GameState is the wire representation of a session.
type GameState struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"to_move"`
	PlayerSide string   `json:"player_side"`
	LegalMoves []string `json:"legal_moves"`
	Moves      []string `json:"moves"`
	Result     Result   `json:"result"`
	InCheck    bool     `json:"in_check"`
}

// Game is one play-vs-engine session. The human owns one colour, the
// engine strategy answers for the other. All methods are safe for
// concurrent use; the mutex serializes moves from racing connections.
type Game struct {
	mu       sync.Mutex
	id       string
	position engine.Position
	strategy search.Strategy
	player   chess.Colour
	moves    []string
	result   Result
}

// NewGame starts a session from the initial position.
func NewGame(id string, strategy search.Strategy, player chess.Colour) *Game {
	return &Game{
		id:       id,
		position: engine.Initial(),
		strategy: strategy,
		player:   player,
		result:   ResultInProgress,
	}
}

// State returns a snapshot of the session.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	legal := g.position.AllLegalMoves()
	texts := make([]string, 0, len(legal))
	for _, move := range legal {
		texts = append(texts, engine.EncodeMove(g.position, move))
	}
	return GameState{
		ID:         g.id,
		FEN:        g.position.FEN(),
		ToMove:     g.position.ToMove.String(),
		PlayerSide: g.player.String(),
		LegalMoves: texts,
		Moves:      append([]string(nil), g.moves...),
		Result:     g.result,
		InCheck:    g.position.InCheck(),
	}
}

// PlayMove applies the player's move given as long-algebraic text and,
// if the game goes on, the engine's reply. It returns the updated state
// and the engine's move text ("" when the game ended first).
func (g *Game) PlayMove(text string) (GameState, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != ResultInProgress {
		return g.stateLocked(), "", errors.Wrapf(errors.ErrGameOver, "game %s", g.id)
	}
	if g.position.ToMove != g.player {
		return g.stateLocked(), "", errors.Wrapf(errors.ErrNotYourTurn, "%s to move", g.position.ToMove)
	}

	move, err := engine.DecodeMove(g.position, text)
	if err != nil {
		return g.stateLocked(), "", err
	}
	if !g.position.IsMoveLegal(move) {
		return g.stateLocked(), "", &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			FEN:      g.position.FEN(),
			MoveText: text,
		}
	}
	g.applyLocked(move)

	reply := ""
	if g.result == ResultInProgress {
		engineMove, err := g.strategy.ChooseMove(g.position)
		if err != nil {
			return g.stateLocked(), "", err
		}
		reply = engine.EncodeMove(g.position, engineMove)
		g.applyLocked(engineMove)
	}
	return g.stateLocked(), reply, nil
}

// EngineOpens has the engine play the first move of a session where
// the player took Black.
func (g *Game) EngineOpens() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.position.ToMove == g.player || g.result != ResultInProgress {
		return nil
	}
	move, err := g.strategy.ChooseMove(g.position)
	if err != nil {
		return err
	}
	g.applyLocked(move)
	return nil
}

// applyLocked records and applies a known-legal move and updates the
// result. Callers hold the mutex.
func (g *Game) applyLocked(move chess.Move) {
	g.moves = append(g.moves, engine.EncodeMove(g.position, move))
	g.position = g.position.AfterMove(move)

	if colour, ok := g.position.Checkmated(); ok {
		if colour == chess.White {
			g.result = ResultBlackWins
		} else {
			g.result = ResultWhiteWins
		}
	} else if g.position.IsStalemate() {
		g.result = ResultStalemate
	}
}
