// Package worker provides a worker pool for scoring candidate moves in
// parallel. The search layer fans the root moves of a position out over
// the pool and collects one score per move.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// WorkItem is one root move to score: the move itself and the position
// reached by playing it. Index preserves the move's place in the
// generation order so tie breaking stays deterministic after the
// results arrive out of order.
type WorkItem struct {
	Index    int
	Move     chess.Move
	Position engine.Position
}

// ScoreResult is the scored outcome for one root move.
type ScoreResult struct {
	Index int
	Move  chess.Move
	Score int
	Error error
}

// ScoreFunc scores a single work item.
type ScoreFunc func(item WorkItem) ScoreResult

// Pool manages a set of goroutines that score submitted moves.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ScoreResult
	scoreFunc  ScoreFunc
	wg         sync.WaitGroup
	stopFlag   int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool using functional options. scoreFunc is
// required; the defaults are 1 worker and a buffer of 35, enough for
// the root move list of a typical middlegame position.
func NewPool(scoreFunc ScoreFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 35,
		scoreFunc:  scoreFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ScoreResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker scores items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain without scoring
		}
		p.resultChan <- p.scoreFunc(item)
	}
}

// Submit queues a work item. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking. It reports false when
// the buffer is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop tells the workers to drain remaining items without scoring them.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers to finish, and
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel the scored results arrive on.
func (p *Pool) Results() <-chan ScoreResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
