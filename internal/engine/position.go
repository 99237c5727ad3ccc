// Package engine implements the position model, move generation,
// legality checking, and the textual interchange formats built on them.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Position is the aggregate game state: a board snapshot, the side to
// move, per-piece has-moved flags gating castling, and the en-passant
// target square. Position is an immutable value; AfterMove returns a new
// Position and shares no mutable state with its predecessor, which makes
// recursive search and legality-checking-by-simulation safe without
// synchronization.
//
// Castling eligibility is tracked as has-moved flags keyed by each
// piece's original square rather than derived castling rights. The flag
// form survives a rook being captured on its home square and another
// piece later occupying it.
type Position struct {
	Board  chess.Board
	ToMove chess.Colour

	WhiteKingMoved       bool
	WhiteKingsRookMoved  bool
	WhiteQueensRookMoved bool
	BlackKingMoved       bool
	BlackKingsRookMoved  bool
	BlackQueensRookMoved bool

	// EnPassant is set only on the position immediately following a
	// double pawn push; EPSquare is then the square the pawn skipped.
	EnPassant bool
	EPSquare  chess.Coords

	// The clocks are carried for FEN interchange; the rules and search
	// code never reads them.
	HalfmoveClock  int
	FullmoveNumber int
}

// Initial returns the standard starting position.
func Initial() Position {
	return Position{
		Board:          chess.InitialBoard(),
		ToMove:         chess.White,
		FullmoveNumber: 1,
	}
}

// EmptyPosition returns a position with an empty board and White to
// move. Useful for building test scenarios square by square.
func EmptyPosition() Position {
	return Position{
		Board:          chess.EmptyBoard(),
		ToMove:         chess.White,
		FullmoveNumber: 1,
	}
}

// WithToMove returns a copy of the position with the side to move set.
func (p Position) WithToMove(colour chess.Colour) Position {
	p.ToMove = colour
	return p
}

// CanCastleKingside reports whether the colour's king and king-side rook
// are both unmoved. Board occupancy and check conditions are verified
// separately by move generation.
func (p Position) CanCastleKingside(colour chess.Colour) bool {
	if colour == chess.White {
		return !p.WhiteKingMoved && !p.WhiteKingsRookMoved
	}
	return !p.BlackKingMoved && !p.BlackKingsRookMoved
}

// CanCastleQueenside reports whether the colour's king and queen-side
// rook are both unmoved.
func (p Position) CanCastleQueenside(colour chess.Colour) bool {
	if colour == chess.White {
		return !p.WhiteKingMoved && !p.WhiteQueensRookMoved
	}
	return !p.BlackKingMoved && !p.BlackQueensRookMoved
}

// KingLocation returns the square of the colour's king, or false if the
// board has no such king (possible in constructed test positions).
func (p Position) KingLocation(colour chess.Colour) (chess.Coords, bool) {
	for _, square := range chess.AllSquares() {
		piece, ok := p.Board.PieceAt(square)
		if ok && piece.Kind == chess.King && piece.Colour == colour {
			return square, true
		}
	}
	return chess.Coords{}, false
}

// PieceCount returns the number of pieces the colour has on the board.
func (p Position) PieceCount(colour chess.Colour) int {
	count := 0
	for _, square := range chess.AllSquares() {
		if piece, ok := p.Board.PieceAt(square); ok && piece.Colour == colour {
			count++
		}
	}
	return count
}

// Home squares referenced by castling flag updates and castle moves.
var (
	whiteKingHome       = chess.Coords{File: 4, Rank: 7}
	whiteKingsRookHome  = chess.Coords{File: 7, Rank: 7}
	whiteQueensRookHome = chess.Coords{File: 0, Rank: 7}
	blackKingHome       = chess.Coords{File: 4, Rank: 0}
	blackKingsRookHome  = chess.Coords{File: 7, Rank: 0}
	blackQueensRookHome = chess.Coords{File: 0, Rank: 0}
)
