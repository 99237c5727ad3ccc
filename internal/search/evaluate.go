// Package search selects moves by walking the legal-move tree with
// negamax and alpha-beta pruning under a pluggable evaluation function.
package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Evaluator scores a position from the perspective of the side to move:
// positive means the mover stands better. Negamax relies on this
// mover-relative convention; an evaluator must be symmetric under
// colour swap or the sign flips across plies stop being meaningful.
type Evaluator func(p engine.Position) int

// CheckmateScore is the magnitude of the terminal score for a
// checkmated side to move. It dwarfs any material-and-mobility sum so
// the search always prefers delivering mate and always avoids being
// mated.
const CheckmateScore = 10_000_000

// BasicEvaluation sums material, doubling the value of every piece that
// is not attacked by its enemy. Own pieces count positive, enemy pieces
// negative.
func BasicEvaluation(p engine.Position) int {
	score := 0
	for _, square := range chess.AllSquares() {
		piece, ok := p.Board.PieceAt(square)
		if !ok {
			continue
		}
		value := basicPieceValue(piece.Kind)
		if !p.IsAttackedBy(piece.Colour.Opposite(), square) {
			value *= 2
		}
		if piece.Colour == p.ToMove {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// BetterEvaluation extends the material sum with a mobility term (two
// points per legal destination of each piece) and attack penalties: an
// attacked own piece costs a flat 5, an attacked enemy piece no longer
// counts its value. A checkmated side to move scores -CheckmateScore.
func BetterEvaluation(p engine.Position) int {
	score := 0
	for _, square := range chess.AllSquares() {
		piece, ok := p.Board.PieceAt(square)
		if !ok {
			continue
		}
		value := betterPieceValue(piece.Kind)
		mobility := len(p.WithToMove(piece.Colour).LegalMovesFrom(square))

		attackedPenalty := 0
		if p.IsAttackedBy(piece.Colour.Opposite(), square) {
			if piece.Colour == p.ToMove {
				attackedPenalty = -5
			} else {
				attackedPenalty = -value
			}
		}

		term := value + 2*mobility + attackedPenalty
		if piece.Colour == p.ToMove {
			score += term
		} else {
			score -= term
		}
	}
	if p.IsCheckmate() {
		score -= CheckmateScore
	}
	return score
}

func basicPieceValue(kind chess.PieceKind) int {
	switch kind {
	case chess.Pawn:
		return 10
	case chess.Knight:
		return 20
	case chess.Bishop:
		return 30
	case chess.Rook:
		return 50
	case chess.Queen:
		return 100
	default: // King carries no material weight here
		return 0
	}
}

func betterPieceValue(kind chess.PieceKind) int {
	switch kind {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 200
	case chess.Bishop:
		return 300
	case chess.Rook:
		return 500
	case chess.Queen:
		return 5000
	case chess.King:
		return 10000
	default:
		return 0
	}
}
