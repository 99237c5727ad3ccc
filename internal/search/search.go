package search

import (
	"math"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Alpha-beta windows start one unit inside the integer extremes so the
// negamax sign flip -beta, -alpha can never overflow.
const (
	MinScore = math.MinInt + 1
	MaxScore = math.MaxInt - 1
)

// Negamax walks the legal-move tree to the given depth without pruning
// and returns the mover-relative score of the position. It exists as
// the reference for AlphaBeta: both must agree on every position.
func Negamax(p engine.Position, depth int, evaluate Evaluator) int {
	if depth == 0 || p.IsCheckmate() || p.IsStalemate() {
		return evaluate(p)
	}
	best := math.MinInt
	for _, move := range p.AllLegalMoves() {
		if score := -Negamax(p.AfterMove(move), depth-1, evaluate); score > best {
			best = score
		}
	}
	return best
}

// AlphaBeta is negamax with alpha-beta pruning. alpha and beta bound
// the scores still worth distinguishing; a child whose negated score
// meets beta cuts the node off, since the opponent already has a better
// alternative earlier in the tree. Callers start with MinScore and
// MaxScore.
func AlphaBeta(p engine.Position, depth int, evaluate Evaluator, alpha, beta int) int {
	if depth == 0 || p.IsCheckmate() || p.IsStalemate() {
		return evaluate(p)
	}
	best := math.MinInt
	for _, move := range p.AllLegalMoves() {
		score := -AlphaBeta(p.AfterMove(move), depth-1, evaluate, -beta, -alpha)
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
			if score >= beta {
				return best
			}
		}
	}
	return best
}

// scoreFunc scores the position reached by a candidate move, from the
// perspective of the player choosing the move.
type scoreFunc func(successor engine.Position) int

// bestMove applies every legal move, scores each successor, and returns
// the first move in generation order among those sharing the maximal
// score. Generation order is deterministic, so repeated calls on the
// same position choose the same move.
func bestMove(p engine.Position, score scoreFunc) (chess.Move, bool) {
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	best := moves[0]
	bestScore := score(p.AfterMove(moves[0]))
	for _, move := range moves[1:] {
		if s := score(p.AfterMove(move)); s > bestScore {
			best = move
			bestScore = s
		}
	}
	return best, true
}
