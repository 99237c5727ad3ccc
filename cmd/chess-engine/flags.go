// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/search"
)

var (
	// Self-play options
	whiteName = flag.String("white", "planner", "Strategy for White in self-play")
	blackName = flag.String("black", "planner", "Strategy for Black in self-play")
	seed      = flag.Int64("seed", 0, "Seed for the random strategy (0 = time-based)")

	// Analysis options
	analyzeMode = flag.Bool("analyze", false, "Report the best move for the -fen position")
	fenFlag     = flag.String("fen", "", "Position to analyze or count from (default: initial)")
	depth       = flag.Int("depth", 2, "Search depth for analysis and the planner strategy")

	// Perft options
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth and exit")
	perftDivide = flag.Bool("divide", false, "Break the perft count down per root move")

	// Performance options
	workers = flag.Int("workers", 1, "Number of parallel search workers")

	// Other options
	quiet      = flag.Bool("s", false, "Silent mode (suppress per-move output)")
	listNames  = flag.Bool("strategies", false, "List available strategies")
	help       = flag.Bool("h", false, "Show help")
	versionOpt = flag.Bool("version", false, "Show version")
)

// strategyForName resolves a strategy flag, honoring the seed, depth,
// and workers flags where the strategy uses them.
func strategyForName(name string) (search.Strategy, error) {
	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	strategy, err := search.ForName(name, seedValue)
	if err != nil {
		return nil, err
	}

	if planner, ok := strategy.(*search.Planner); ok {
		planner.Depth = *depth
		planner.Workers = *workers
	}
	return strategy, nil
}

func printStrategyNames() {
	for _, name := range search.StrategyNames() {
		fmt.Println(name)
	}
}
