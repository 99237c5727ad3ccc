package search

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Strategy supplies one move for a position. ChooseMove returns
// ErrGameOver when the position is terminal and there is no move to
// offer.
type Strategy interface {
	Name() string
	ChooseMove(p engine.Position) (chess.Move, error)
}

// FirstMove plays the first legal move in generation order. It is the
// cheapest deterministic opponent and the baseline for driver tests.
type FirstMove struct{}

func (FirstMove) Name() string { return "first available move" }

func (FirstMove) ChooseMove(p engine.Position) (chess.Move, error) {
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	return moves[0], nil
}

// Random plays a uniformly random legal move from a seeded source, so a
// given seed replays the same game.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy driven by the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) Name() string { return "random" }

func (r *Random) ChooseMove(p engine.Position) (chess.Move, error) {
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// CapturePriority plays a uniformly random capture when the position
// offers one and falls back to a uniformly random legal move otherwise.
type CapturePriority struct {
	rng *rand.Rand
}

// NewCapturePriority returns a CapturePriority strategy driven by the
// given seed.
func NewCapturePriority(seed int64) *CapturePriority {
	return &CapturePriority{rng: rand.New(rand.NewSource(seed))}
}

func (*CapturePriority) Name() string { return "prioritize captures" }

func (c *CapturePriority) ChooseMove(p engine.Position) (chess.Move, error) {
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}

	var captures []chess.Move
	for _, move := range moves {
		if isCapture(p, move) {
			captures = append(captures, move)
		}
	}
	if len(captures) > 0 {
		return captures[c.rng.Intn(len(captures))], nil
	}
	return moves[c.rng.Intn(len(moves))], nil
}

// isCapture reports whether the move removes an enemy piece. En passant
// always captures; castles never do, and their zero-value Dest must not
// be read as a square.
func isCapture(p engine.Position, move chess.Move) bool {
	switch move.Kind {
	case chess.EnPassant:
		return true
	case chess.KingsideCastle, chess.QueensideCastle:
		return false
	}
	_, occupied := p.Board.PieceAt(move.Dest)
	return occupied
}

// Greedy plays the move whose successor position scores best under a
// one-ply lookahead: it negates the successor's mover-relative
// evaluation and maximizes.
type Greedy struct {
	name     string
	evaluate Evaluator
}

// NewGreedy returns a one-ply strategy over the given evaluator.
func NewGreedy(name string, evaluate Evaluator) *Greedy {
	return &Greedy{name: name, evaluate: evaluate}
}

func (g *Greedy) Name() string { return g.name }

func (g *Greedy) ChooseMove(p engine.Position) (chess.Move, error) {
	move, ok := bestMove(p, func(successor engine.Position) int {
		return -g.evaluate(successor)
	})
	if !ok {
		return chess.Move{}, errors.ErrGameOver
	}
	return move, nil
}

// Planner searches each candidate move's subtree with alpha-beta to a
// fixed depth and plays the first move among those with the maximal
// score. Workers above 1 fan the candidate subtrees out over a worker
// pool; the chosen move is identical either way.
type Planner struct {
	Depth    int
	Evaluate Evaluator
	Workers  int
}

// NewPlanner returns a Planner with the default depth of 2 and the
// richer evaluation function.
func NewPlanner() *Planner {
	return &Planner{Depth: 2, Evaluate: BetterEvaluation, Workers: 1}
}

func (*Planner) Name() string { return "planner" }

func (pl *Planner) ChooseMove(p engine.Position) (chess.Move, error) {
	if pl.Workers > 1 {
		return pl.chooseMoveParallel(p)
	}
	move, ok := bestMove(p, func(successor engine.Position) int {
		return -AlphaBeta(successor, pl.Depth, pl.Evaluate, MinScore, MaxScore)
	})
	if !ok {
		return chess.Move{}, errors.ErrGameOver
	}
	return move, nil
}

// ForName returns the strategy registered under the given name. Names
// are case-insensitive. Random strategies built here use the supplied
// seed.
func ForName(name string, seed int64) (Strategy, error) {
	switch strings.ToLower(name) {
	case "first":
		return FirstMove{}, nil
	case "random":
		return NewRandom(seed), nil
	case "captures":
		return NewCapturePriority(seed), nil
	case "greedy":
		return NewGreedy("basic evaluation", BasicEvaluation), nil
	case "better":
		return NewGreedy("better evaluation", BetterEvaluation), nil
	case "planner":
		return NewPlanner(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownStrategy, "%q", name)
	}
}

// StrategyNames lists the names ForName accepts.
func StrategyNames() []string {
	return []string{"first", "random", "captures", "greedy", "better", "planner"}
}
