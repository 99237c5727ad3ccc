package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// AfterMove returns the position reached by applying the move. It is a
// pure function: the receiver is untouched and the result shares no
// state with it. The move is assumed to have been validated; applying a
// move that was never legal produces an undefined but crash-free
// position.
func (p Position) AfterMove(move chess.Move) Position {
	next := p // value copy, including the board array

	// Castle moves carry no Origin/Dest of their own; reading the
	// zero-value squares would see whatever sits on a8. A castle is
	// never a pawn move or a capture, so the clock always advances.
	pawnMove, capture := false, false
	if !move.IsCastle() {
		pawnMove = p.Board.PawnAt(move.Origin)
		_, capture = p.Board.PieceAt(move.Dest)
	}

	next.EnPassant = false
	switch move.Kind {
	case chess.RegularMove:
		next.Board.MovePiece(move.Origin, move.Dest)

	case chess.PawnSkip:
		next.Board.MovePiece(move.Origin, move.Dest)
		next.EnPassant = true
		next.EPSquare = chess.Coords{
			File: move.Origin.File,
			Rank: (move.Origin.Rank + move.Dest.Rank) / 2,
		}

	case chess.KingsideCastle:
		row := p.ToMove.HomeRank()
		next.Board.MovePiece(chess.Coords{File: 4, Rank: row}, chess.Coords{File: 6, Rank: row})
		next.Board.MovePiece(chess.Coords{File: 7, Rank: row}, chess.Coords{File: 5, Rank: row})

	case chess.QueensideCastle:
		row := p.ToMove.HomeRank()
		next.Board.MovePiece(chess.Coords{File: 4, Rank: row}, chess.Coords{File: 2, Rank: row})
		next.Board.MovePiece(chess.Coords{File: 0, Rank: row}, chess.Coords{File: 3, Rank: row})

	case chess.EnPassant:
		next.Board.MovePiece(move.Origin, move.Dest)
		next.Board.Take(move.Captured)
		capture = true

	case chess.Promotion:
		next.Board.Take(move.Origin)
		next.Board.Put(chess.Piece{Kind: move.PromoteTo, Colour: p.ToMove}, move.Dest)
	}

	next.markMoved(move)

	if pawnMove || capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if p.ToMove == chess.Black {
		next.FullmoveNumber++
	}
	next.ToMove = p.ToMove.Opposite()
	return next
}

// markMoved updates the has-moved flags. The flags are derived from the
// move itself, never from the already-mutated board: a castle marks the
// mover's king and castling rook, and any other move marks the home
// square it leaves and the home square it lands on. Leaving covers the
// piece moving; landing covers a rook captured on its home square, which
// would otherwise keep its flag clear and let a sister rook castle from
// there later. Marking a home square whose original occupant is long
// gone is harmless: the flag is already set.
func (next *Position) markMoved(move chess.Move) {
	switch move.Kind {
	case chess.KingsideCastle:
		if next.ToMove == chess.White {
			next.WhiteKingMoved = true
			next.WhiteKingsRookMoved = true
		} else {
			next.BlackKingMoved = true
			next.BlackKingsRookMoved = true
		}
		return
	case chess.QueensideCastle:
		if next.ToMove == chess.White {
			next.WhiteKingMoved = true
			next.WhiteQueensRookMoved = true
		} else {
			next.BlackKingMoved = true
			next.BlackQueensRookMoved = true
		}
		return
	}

	for _, square := range [2]chess.Coords{move.Origin, move.Dest} {
		switch square {
		case whiteKingHome:
			next.WhiteKingMoved = true
		case whiteKingsRookHome:
			next.WhiteKingsRookMoved = true
		case whiteQueensRookHome:
			next.WhiteQueensRookMoved = true
		case blackKingHome:
			next.BlackKingMoved = true
		case blackKingsRookHome:
			next.BlackKingsRookMoved = true
		case blackQueensRookHome:
			next.BlackQueensRookMoved = true
		}
	}
}
