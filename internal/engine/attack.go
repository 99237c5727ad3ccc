package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsAttackedBy reports whether the square is attacked by the given
// colour. Detection is by direct pattern matching (rays, knight and king
// offsets, pawn diagonals, and the en-passant special case) rather than
// by generating the attacker's move list: legal-move generation for a
// king asks "am I in check", which asks this function, so routing attack
// detection back through move generation would recurse without bound.
func (p Position) IsAttackedBy(by chess.Colour, square chess.Coords) bool {
	return p.attackedByKing(by, square) ||
		p.attackedOnRays(by, square, chess.Cardinals(), chess.Rook) ||
		p.attackedOnRays(by, square, chess.Diagonals(), chess.Bishop) ||
		p.attackedByKnight(by, square) ||
		p.attackedByPawn(by, square) ||
		p.attackedEnPassant(by, square)
}

// IsInCheck reports whether the colour's king is attacked. A board with
// no such king is never in check.
func (p Position) IsInCheck(colour chess.Colour) bool {
	loc, ok := p.KingLocation(colour)
	if !ok {
		return false
	}
	return p.IsAttackedBy(colour.Opposite(), loc)
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool {
	return p.IsInCheck(p.ToMove)
}

func (p Position) attackedByKing(by chess.Colour, square chess.Coords) bool {
	for _, dir := range chess.EightDegrees() {
		next := square.Add(dir)
		if !next.InBounds() {
			continue
		}
		if piece, ok := p.Board.PieceAt(next); ok && piece.Kind == chess.King && piece.Colour == by {
			return true
		}
	}
	return false
}

// attackedOnRays casts rays from the square and reports whether the
// first piece hit on any ray is a slider of the given kind, or a queen,
// of the attacking colour.
func (p Position) attackedOnRays(by chess.Colour, square chess.Coords, dirs []chess.Direction, slider chess.PieceKind) bool {
	for _, dir := range dirs {
		for i := 1; i < chess.BoardSize; i++ {
			next := square.Add(dir.Scale(i))
			if !next.InBounds() {
				break
			}
			piece, ok := p.Board.PieceAt(next)
			if !ok {
				continue
			}
			if piece.Colour == by && (piece.Kind == slider || piece.Kind == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

func (p Position) attackedByKnight(by chess.Colour, square chess.Coords) bool {
	for _, jump := range chess.KnightJumps() {
		next := square.Add(jump)
		if !next.InBounds() {
			continue
		}
		if piece, ok := p.Board.PieceAt(next); ok && piece.Kind == chess.Knight && piece.Colour == by {
			return true
		}
	}
	return false
}

// attackedByPawn checks the two squares a pawn of the attacking colour
// would have to stand on to capture onto the square.
func (p Position) attackedByPawn(by chess.Colour, square chess.Coords) bool {
	for _, dx := range []int{-1, 1} {
		origin := square.Add(chess.Direction{DX: dx, DY: -by.PawnDirection()})
		if !origin.InBounds() {
			continue
		}
		if piece, ok := p.Board.PieceAt(origin); ok && piece.Kind == chess.Pawn && piece.Colour == by {
			return true
		}
	}
	return false
}

// attackedEnPassant covers the one capture whose target square differs
// from its victim's square: a pawn that has just skipped two squares is
// attacked through the square it passed over.
func (p Position) attackedEnPassant(by chess.Colour, square chess.Coords) bool {
	if !p.EnPassant {
		return false
	}
	piece, ok := p.Board.PieceAt(square)
	if !ok || piece.Kind != chess.Pawn || piece.Colour != by.Opposite() {
		return false
	}
	behind := square.Add(chess.Direction{DX: 0, DY: by.PawnDirection()})
	return p.EPSquare == behind && p.attackedByPawn(by, behind)
}
