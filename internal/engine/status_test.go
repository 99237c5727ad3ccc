package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestGameStatus(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
	}{
		{
			"initial position",
			InitialFEN,
			false, false, false,
		},
		{
			"check with escapes",
			"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2",
			false, false, false,
		},
		{
			"scholar's mate pattern",
			"r1bqkbnr/2pp1Qpp/ppn5/4p3/2BPP3/8/PPP2PPP/RNB1K1NR b KQkq - 0 1",
			true, true, false,
		},
		{
			"back-rank mate",
			"6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1",
			false, false, false,
		},
		{
			"back-rank mate delivered",
			"4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			true, true, false,
		},
		{
			"queen stalemate",
			"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			false, false, true,
		},
		{
			"check blockable",
			"4r1k1/8/8/8/8/8/3Q4/4K3 w - - 0 1",
			true, false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := pos.InCheck(); got != tt.wantCheck {
				t.Errorf("InCheck() = %v, want %v", got, tt.wantCheck)
			}
			if got := pos.IsCheckmate(); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantCheckmate)
			}
			if got := pos.IsStalemate(); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
			if got, want := pos.IsTerminal(), tt.wantCheckmate || tt.wantStalemate; got != want {
				t.Errorf("IsTerminal() = %v, want %v", got, want)
			}
		})
	}
}

func TestCheckmated(t *testing.T) {
	mate := MustParseFEN("r1bqkbnr/2pp1Qpp/ppn5/4p3/2BPP3/8/PPP2PPP/RNB1K1NR b KQkq - 0 1")
	colour, ok := mate.Checkmated()
	if !ok || colour != chess.Black {
		t.Errorf("Checkmated() = %v, %v, want Black, true", colour, ok)
	}

	if _, ok := Initial().Checkmated(); ok {
		t.Error("initial position should have no checkmated side")
	}
}

func TestStalemateIsNotCheckmate(t *testing.T) {
	pos := MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if pos.IsCheckmate() {
		t.Error("stalemate position reported as checkmate")
	}
	if !pos.IsTerminal() {
		t.Error("stalemate position should be terminal")
	}
}
