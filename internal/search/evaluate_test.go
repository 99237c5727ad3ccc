package search

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestBasicEvaluationBalancedAtStart(t *testing.T) {
	if got := BasicEvaluation(engine.Initial()); got != 0 {
		t.Errorf("BasicEvaluation(initial) = %d, want 0", got)
	}
}

func TestBasicEvaluationFavorsMaterial(t *testing.T) {
	// White has an extra queen.
	pos := engine.MustParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	if got := BasicEvaluation(pos); got <= 0 {
		t.Errorf("BasicEvaluation with extra queen for the mover = %d, want > 0", got)
	}
}

func TestBasicEvaluationNegatesWithSideToMove(t *testing.T) {
	fens := []string{
		"rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		testutil.KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos := engine.MustParseFEN(fen)
		white := BasicEvaluation(pos.WithToMove(chess.White))
		black := BasicEvaluation(pos.WithToMove(chess.Black))
		if white != -black {
			t.Errorf("%s: evaluation %d / %d not negations of each other", fen, white, black)
		}
	}
}

func TestBasicEvaluationDoublesUnattackedPieces(t *testing.T) {
	// A lone white pawn, unattacked: 10 doubled to 20.
	unattacked := engine.MustParseFEN("8/8/8/8/4P3/8/8/8 w - - 0 1")
	if got := BasicEvaluation(unattacked); got != 20 {
		t.Errorf("BasicEvaluation(lone pawn) = %d, want 20", got)
	}

	// The same pawn attacked by a rook counts single: 10. The enemy rook
	// is unattacked and counts -100.
	attacked := engine.MustParseFEN("4r3/8/8/8/4P3/8/8/8 w - - 0 1")
	if got := BasicEvaluation(attacked); got != 10-100 {
		t.Errorf("BasicEvaluation(attacked pawn vs rook) = %d, want %d", got, 10-100)
	}
}

func TestBetterEvaluationCountsMobility(t *testing.T) {
	// A lone rook always sees 14 squares: value 500 plus 2 per square.
	open := engine.MustParseFEN("8/8/8/8/3R4/8/8/8 w - - 0 1")
	if got, want := BetterEvaluation(open), 500+2*14; got != want {
		t.Errorf("BetterEvaluation(lone rook) = %d, want %d", got, want)
	}

	// A knight boxed into a corner sees only two squares.
	corner := engine.MustParseFEN("N7/8/8/8/8/8/8/8 w - - 0 1")
	if got, want := BetterEvaluation(corner), 200+2*2; got != want {
		t.Errorf("BetterEvaluation(corner knight) = %d, want %d", got, want)
	}
}

func TestBetterEvaluationCheckmateIsHugelyNegative(t *testing.T) {
	mate := engine.MustParseFEN(testutil.ScholarsMateFEN)

	if got := BetterEvaluation(mate); got > -9_000_000 {
		t.Errorf("BetterEvaluation(checkmated side to move) = %d, want < -9000000", got)
	}
}

func TestBetterEvaluationStalemateIsNotTerminalScore(t *testing.T) {
	stale := engine.MustParseFEN(testutil.QueenStalemateFEN)

	got := BetterEvaluation(stale)
	if got < -9_000_000 || got > 9_000_000 {
		t.Errorf("BetterEvaluation(stalemate) = %d, should not carry the checkmate term", got)
	}
}

func TestBetterEvaluationPenalizesHangingPieces(t *testing.T) {
	// The white queen on g5 is en prise to the h6 pawn. An attacked
	// enemy piece stops counting its value, so from Black's side this
	// must score better than the balanced start position.
	safe := engine.MustParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	hanging := engine.MustParseFEN("rnbqkbnr/ppppppp1/7p/6Q1/8/8/PPPPPPPP/RNB1KBNR b KQkq - 0 1")

	if BetterEvaluation(hanging) <= BetterEvaluation(safe.WithToMove(chess.Black)) {
		t.Errorf("hanging enemy queen scored no better for the mover than the start position")
	}
}
