package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// chooseMoveParallel scores the root moves on a worker pool. Position
// values are immutable, so the subtrees share nothing and need no
// locking. Results arrive out of order; the generation index decides
// ties exactly as the serial path does, so both paths pick the same
// move.
func (pl *Planner) chooseMoveParallel(p engine.Position) (chess.Move, error) {
	moves := p.AllLegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ScoreResult {
		return worker.ScoreResult{
			Index: item.Index,
			Move:  item.Move,
			Score: -AlphaBeta(item.Position, pl.Depth, pl.Evaluate, MinScore, MaxScore),
		}
	}, worker.WithWorkers(pl.Workers), worker.WithBufferSize(len(moves)))

	pool.Start()
	for i, move := range moves {
		pool.Submit(worker.WorkItem{Index: i, Move: move, Position: p.AfterMove(move)})
	}
	go pool.Close()

	bestIndex := -1
	bestScore := 0
	for result := range pool.Results() {
		if bestIndex == -1 ||
			result.Score > bestScore ||
			(result.Score == bestScore && result.Index < bestIndex) {
			bestIndex = result.Index
			bestScore = result.Score
		}
	}
	return moves[bestIndex], nil
}
