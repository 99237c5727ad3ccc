// chess-engine is a command-line driver for the chess engine: self-play
// between two strategies, single-position analysis, and perft counting.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/service"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *versionOpt {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	if *listNames {
		printStrategyNames()
		os.Exit(0)
	}

	pos := startingPosition()

	switch {
	case *perftDepth > 0:
		runPerft(pos)
	case *analyzeMode:
		runAnalysis(pos)
	default:
		runSelfPlay()
	}
}

// startingPosition parses the -fen flag, defaulting to the initial
// position.
func startingPosition() engine.Position {
	if *fenFlag == "" {
		return engine.Initial()
	}
	pos, err := engine.ParseFEN(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *fenFlag, err)
		os.Exit(1)
	}
	return pos
}

// runPerft counts leaf nodes, optionally split per root move.
func runPerft(pos engine.Position) {
	if *perftDivide {
		counts := engine.PerftDivide(pos, *perftDepth)
		var total uint64
		for _, text := range sortedKeys(counts) {
			fmt.Printf("%-6s %d\n", text, counts[text])
			total += counts[text]
		}
		fmt.Printf("total  %d\n", total)
		return
	}
	fmt.Printf("perft(%d) = %d\n", *perftDepth, engine.Perft(pos, *perftDepth))
}

// runAnalysis reports the best move found at the flagged depth.
func runAnalysis(pos engine.Position) {
	planner := search.NewPlanner()
	planner.Depth = *depth
	planner.Workers = *workers

	move, err := planner.ChooseMove(pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing position: %v\n", err)
		os.Exit(1)
	}

	text := engine.EncodeMove(pos, move)
	score := -search.AlphaBeta(pos.AfterMove(move), *depth, search.BetterEvaluation,
		search.MinScore, search.MaxScore)

	fmt.Printf("best move: %s (score %d)\n", text, score)
	fmt.Printf("after:     %s\n", pos.AfterMove(move).FEN())
}

// runSelfPlay drives a complete game between the two flagged strategies.
func runSelfPlay() {
	white, err := strategyForName(*whiteName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	black, err := strategyForName(*blackName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Printf("White: %s\nBlack: %s\n\n", white.Name(), black.Name())
	}

	var observe service.MoveObserver
	if !*quiet {
		observe = func(ply int, text string, pos engine.Position) {
			fmt.Printf("%3d. %-7s %s\n", ply+1, text, pos.FEN())
		}
	}

	result, err := service.PlayEngineGame(white, black, observe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nresult: %s\n", result)
}

func sortedKeys(counts map[string]uint64) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess engine driver: self-play, analysis, and perft counting.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nStrategies (-white, -black):\n  %s\n",
		strings.Join(search.StrategyNames(), ", "))
}
