package service

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// MaxHalfMoves caps an engine-vs-engine game; two strategies with no
// plan can shuffle pieces forever.
const MaxHalfMoves = 300

// MoveObserver is notified after each half move of a driven game.
type MoveObserver func(ply int, moveText string, position engine.Position)

// PlayEngineGame drives two strategies from the initial position until
// checkmate, stalemate, or the half-move cap. The observer may be nil.
func PlayEngineGame(white, black search.Strategy, observe MoveObserver) (Result, error) {
	pos := engine.Initial()

	for ply := 0; ply < MaxHalfMoves; ply++ {
		if colour, ok := pos.Checkmated(); ok {
			return winnerOf(colour.Opposite()), nil
		}
		if pos.IsStalemate() {
			return ResultStalemate, nil
		}

		strategy := white
		if pos.ToMove == chess.Black {
			strategy = black
		}
		move, err := strategy.ChooseMove(pos)
		if err != nil {
			return ResultInProgress, err
		}
		if !pos.IsMoveLegal(move) {
			return ResultInProgress, errors.Wrapf(errors.ErrIllegalMove,
				"%s offered %s", strategy.Name(), engine.EncodeMove(pos, move))
		}

		text := engine.EncodeMove(pos, move)
		pos = pos.AfterMove(move)
		if observe != nil {
			observe(ply, text, pos)
		}
	}

	if colour, ok := pos.Checkmated(); ok {
		return winnerOf(colour.Opposite()), nil
	}
	if pos.IsStalemate() {
		return ResultStalemate, nil
	}
	return ResultDrawnOut, nil
}

func winnerOf(colour chess.Colour) Result {
	if colour == chess.White {
		return ResultWhiteWins
	}
	return ResultBlackWins
}
