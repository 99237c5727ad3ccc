package engine

import (
	"testing"
)

// The expected node counts below are the published perft values for
// these positions; they exercise castling, en passant, promotions, and
// pins all at once, so a single mismatch localizes a generation bug.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"endgame depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"promotion depth 1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"promotion depth 2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := Perft(pos, tt.depth); got != tt.nodes {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}

func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"initial depth 4", InitialFEN, 4, 197281},
		{"kiwipete depth 3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"endgame depth 4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"promotion depth 3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := Perft(pos, tt.depth); got != tt.nodes {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	counts := PerftDivide(pos, 2)
	if len(counts) != 48 {
		t.Errorf("PerftDivide produced %d root moves, want 48", len(counts))
	}
	var total uint64
	for _, n := range counts {
		total += n
	}
	if want := Perft(pos, 2); total != want {
		t.Errorf("divide total = %d, Perft = %d", total, want)
	}
}

func BenchmarkPerft(b *testing.B) {
	pos := Initial()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
