package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestDecodeMoveVariants(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want chess.Move
	}{
		{
			"regular knight move",
			InitialFEN,
			"g1f3",
			chess.NewRegularMove(chess.MustFromAlgebraic("g1"), chess.MustFromAlgebraic("f3")),
		},
		{
			"single pawn push stays regular",
			InitialFEN,
			"e2e3",
			chess.NewRegularMove(chess.MustFromAlgebraic("e2"), chess.MustFromAlgebraic("e3")),
		},
		{
			"double pawn push is a skip",
			InitialFEN,
			"e2e4",
			chess.NewPawnSkip(chess.MustFromAlgebraic("e2"), chess.MustFromAlgebraic("e4")),
		},
		{
			"pawn onto the en-passant target",
			"8/8/8/3pP3/8/8/8/8 w - d6 0 1",
			"e5d6",
			chess.NewEnPassant(
				chess.MustFromAlgebraic("e5"),
				chess.MustFromAlgebraic("d6"),
				chess.MustFromAlgebraic("d5")),
		},
		{
			"pawn capture without target stays regular",
			"8/8/8/3pP3/8/8/8/8 w - - 0 1",
			"e5d6",
			chess.NewRegularMove(chess.MustFromAlgebraic("e5"), chess.MustFromAlgebraic("d6")),
		},
		{
			"white kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1g1",
			chess.NewKingsideCastle(),
		},
		{
			"white queenside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1c1",
			chess.NewQueensideCastle(),
		},
		{
			"black kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			"e8g8",
			chess.NewKingsideCastle(),
		},
		{
			"black queenside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			"e8c8",
			chess.NewQueensideCastle(),
		},
		{
			"king single step stays regular",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1f1",
			chess.NewRegularMove(chess.MustFromAlgebraic("e1"), chess.MustFromAlgebraic("f1")),
		},
		{
			"queen promotion",
			"8/4P3/8/8/8/8/8/8 w - - 0 1",
			"e7e8q",
			chess.NewPromotion(chess.MustFromAlgebraic("e7"), chess.MustFromAlgebraic("e8"), chess.Queen),
		},
		{
			"knight underpromotion",
			"8/4P3/8/8/8/8/8/8 w - - 0 1",
			"e7e8n",
			chess.NewPromotion(chess.MustFromAlgebraic("e7"), chess.MustFromAlgebraic("e8"), chess.Knight),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			got, err := DecodeMove(pos, tt.text)
			if err != nil {
				t.Fatalf("DecodeMove(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DecodeMove(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeMoveRejectsMalformedText(t *testing.T) {
	pos := Initial()
	bad := []string{"", "e2", "e2e", "e2e4qq", "z9e4", "e2z9", "e7e8k", "e7e8x"}

	for _, text := range bad {
		_, err := DecodeMove(pos, text)
		if !errors.Is(err, errors.ErrInvalidMoveText) {
			t.Errorf("DecodeMove(%q) = %v, want ErrInvalidMoveText", text, err)
		}
		var moveErr *errors.MoveError
		if !errors.As(err, &moveErr) {
			t.Errorf("DecodeMove(%q) error should be a MoveError", text)
		} else if moveErr.MoveText != text {
			t.Errorf("MoveError.MoveText = %q, want %q", moveErr.MoveText, text)
		}
	}
}

func TestEncodeMoveRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"8/4P3/8/8/8/8/8/4K3 w - - 0 1",
		"8/8/8/3pP3/8/8/8/8 w - d6 0 1",
	}

	for _, fen := range fens {
		pos := MustParseFEN(fen)
		for _, move := range pos.AllLegalMoves() {
			text := EncodeMove(pos, move)
			decoded, err := DecodeMove(pos, text)
			if err != nil {
				t.Errorf("%s: DecodeMove(%q): %v", fen, text, err)
				continue
			}
			if decoded != move {
				t.Errorf("%s: %q decoded to %+v, want %+v", fen, text, decoded, move)
			}
		}
	}
}

func TestEncodeCastles(t *testing.T) {
	white := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	black := white.WithToMove(chess.Black)

	if got := EncodeMove(white, chess.NewKingsideCastle()); got != "e1g1" {
		t.Errorf("white kingside castle encoded as %q, want e1g1", got)
	}
	if got := EncodeMove(white, chess.NewQueensideCastle()); got != "e1c1" {
		t.Errorf("white queenside castle encoded as %q, want e1c1", got)
	}
	if got := EncodeMove(black, chess.NewKingsideCastle()); got != "e8g8" {
		t.Errorf("black kingside castle encoded as %q, want e8g8", got)
	}
	if got := EncodeMove(black, chess.NewQueensideCastle()); got != "e8c8" {
		t.Errorf("black queenside castle encoded as %q, want e8c8", got)
	}
}
