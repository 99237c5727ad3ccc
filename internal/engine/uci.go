package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DecodeMove parses long-algebraic move text ("e2e4", "e7e8q") against
// the current position. The position disambiguates the variant: a pawn
// jumping two ranks is a PawnSkip, a pawn landing on the en-passant
// target is an EnPassant, a king crossing two files is a castle, and a
// trailing letter is a promotion. The decoded move is not checked for
// legality; use Position.IsMoveLegal for that.
func DecodeMove(p Position, text string) (chess.Move, error) {
	if len(text) < 4 || len(text) > 5 {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.Wrapf(errors.ErrInvalidMoveText, "%d characters, want 4 or 5", len(text)),
			MoveText: text,
		}
	}

	origin, err := chess.FromAlgebraic(text[:2])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.Wrap(errors.ErrInvalidMoveText, err.Error()), MoveText: text}
	}
	dest, err := chess.FromAlgebraic(text[2:4])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: errors.Wrap(errors.ErrInvalidMoveText, err.Error()), MoveText: text}
	}

	if len(text) == 5 {
		kind, ok := promotionKind(text[4])
		if !ok {
			return chess.Move{}, &errors.MoveError{
				Err:      errors.Wrapf(errors.ErrInvalidMoveText, "promotion letter %q", text[4]),
				MoveText: text,
			}
		}
		return chess.NewPromotion(origin, dest, kind), nil
	}

	switch {
	case p.Board.PawnAt(origin) && abs(dest.Rank-origin.Rank) == 2:
		return chess.NewPawnSkip(origin, dest), nil
	case p.Board.PawnAt(origin) && p.EnPassant && dest == p.EPSquare:
		captured := chess.Coords{File: dest.File, Rank: origin.Rank}
		return chess.NewEnPassant(origin, dest, captured), nil
	case p.Board.KingAt(origin) && dest.File-origin.File == 2:
		return chess.NewKingsideCastle(), nil
	case p.Board.KingAt(origin) && dest.File-origin.File == -2:
		return chess.NewQueensideCastle(), nil
	default:
		return chess.NewRegularMove(origin, dest), nil
	}
}

// EncodeMove serializes a move as long-algebraic text. Castle moves need
// the position for the side to move; promotions carry a trailing
// lower-case letter.
func EncodeMove(p Position, move chess.Move) string {
	origin, dest := move.Origin, move.Dest
	switch move.Kind {
	case chess.KingsideCastle:
		row := p.ToMove.HomeRank()
		origin = chess.Coords{File: 4, Rank: row}
		dest = chess.Coords{File: 6, Rank: row}
	case chess.QueensideCastle:
		row := p.ToMove.HomeRank()
		origin = chess.Coords{File: 4, Rank: row}
		dest = chess.Coords{File: 2, Rank: row}
	}
	text := origin.Algebraic() + dest.Algebraic()
	if move.Kind == chess.Promotion {
		text += string(promotionLetter(move.PromoteTo))
	}
	return text
}

func promotionKind(letter byte) (chess.PieceKind, bool) {
	switch letter {
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'b':
		return chess.Bishop, true
	case 'n':
		return chess.Knight, true
	default:
		return chess.NoPiece, false
	}
}

func promotionLetter(kind chess.PieceKind) byte {
	switch kind {
	case chess.Queen:
		return 'q'
	case chess.Rook:
		return 'r'
	case chess.Bishop:
		return 'b'
	case chess.Knight:
		return 'n'
	default:
		return '?'
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
