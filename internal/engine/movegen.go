package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// AllLegalMoves returns every legal move for the side to move, scanning
// origin squares in rank-major order. The order is deterministic; tie
// breaking in the search layer relies on it.
func (p Position) AllLegalMoves() []chess.Move {
	var moves []chess.Move
	for _, square := range chess.AllSquares() {
		moves = append(moves, p.LegalMovesFrom(square)...)
	}
	return moves
}

// LegalMovesFrom returns the legal moves for the piece on the origin
// square. It returns nothing when the square is empty or holds an
// opponent piece.
func (p Position) LegalMovesFrom(origin chess.Coords) []chess.Move {
	pseudo := p.pseudoMovesFrom(origin)
	legal := pseudo[:0:0]
	for _, move := range pseudo {
		if !p.leavesOwnKingExposed(move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// IsMoveLegal reports whether the move is legal in this position: it
// must be one of the moves generated from its own origin square.
func (p Position) IsMoveLegal(move chess.Move) bool {
	origin := move.Origin
	if move.IsCastle() {
		origin = chess.Coords{File: 4, Rank: p.ToMove.HomeRank()}
	}
	for _, legal := range p.LegalMovesFrom(origin) {
		if legal == move {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It short-circuits instead of materializing the full move list.
func (p Position) HasLegalMoves() bool {
	for _, square := range chess.AllSquares() {
		for _, move := range p.pseudoMovesFrom(square) {
			if !p.leavesOwnKingExposed(move) {
				return true
			}
		}
	}
	return false
}

// leavesOwnKingExposed simulates the move and asks whether the mover's
// king is attacked in the resulting position. This is the pseudo-legal
// to legal filter.
func (p Position) leavesOwnKingExposed(move chess.Move) bool {
	return p.AfterMove(move).IsInCheck(p.ToMove)
}

// pseudoMovesFrom generates moves that obey piece geometry and occupancy
// but may leave the mover's own king in check.
func (p Position) pseudoMovesFrom(origin chess.Coords) []chess.Move {
	piece, ok := p.Board.PieceAt(origin)
	if !ok || piece.Colour != p.ToMove {
		return nil
	}
	switch piece.Kind {
	case chess.Pawn:
		return p.pawnMovesFrom(origin, piece.Colour)
	case chess.Knight:
		return p.knightMovesFrom(origin, piece.Colour)
	case chess.Bishop:
		return p.projectedMoves(origin, chess.Diagonals(), piece.Colour, 0)
	case chess.Rook:
		return p.projectedMoves(origin, chess.Cardinals(), piece.Colour, 0)
	case chess.Queen:
		return p.projectedMoves(origin, chess.EightDegrees(), piece.Colour, 0)
	case chess.King:
		return p.kingMovesFrom(origin, piece.Colour)
	}
	return nil
}

// raycast walks from origin in one direction, collecting empty squares
// and stopping at the board edge or the first occupied square. A square
// holding an opponent piece is included as a capture; a friendly piece
// ends the ray without being included. limit caps the walk length; 0
// means to the board edge.
func (p Position) raycast(origin chess.Coords, dir chess.Direction, colour chess.Colour, limit int) []chess.Coords {
	if limit <= 0 {
		limit = chess.BoardSize - 1
	}
	var squares []chess.Coords
	for i := 1; i <= limit; i++ {
		next := origin.Add(dir.Scale(i))
		if !next.InBounds() {
			break
		}
		if piece, ok := p.Board.PieceAt(next); ok {
			if piece.Colour == colour.Opposite() {
				squares = append(squares, next)
			}
			break
		}
		squares = append(squares, next)
	}
	return squares
}

// projectedMoves turns raycasts along the given directions into regular
// moves.
func (p Position) projectedMoves(origin chess.Coords, dirs []chess.Direction, colour chess.Colour, limit int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		for _, dest := range p.raycast(origin, dir, colour, limit) {
			moves = append(moves, chess.NewRegularMove(origin, dest))
		}
	}
	return moves
}

func (p Position) knightMovesFrom(origin chess.Coords, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, jump := range chess.KnightJumps() {
		dest := origin.Add(jump)
		if !dest.InBounds() {
			continue
		}
		if piece, ok := p.Board.PieceAt(dest); ok && piece.Colour == colour {
			continue
		}
		moves = append(moves, chess.NewRegularMove(origin, dest))
	}
	return moves
}

// kingMovesFrom generates the eight adjacent squares plus castling
// candidates. Castling requires the king and the relevant rook on their
// home squares and unmoved, the squares between them empty, the king not
// currently in check, and the square the king transits not attacked.
// Whether the king's destination square is attacked is left to the
// ordinary legality filter.
func (p Position) kingMovesFrom(origin chess.Coords, colour chess.Colour) []chess.Move {
	moves := p.projectedMoves(origin, chess.EightDegrees(), colour, 1)

	row := colour.HomeRank()
	kingHome := chess.Coords{File: 4, Rank: row}
	if origin != kingHome {
		return moves
	}
	enemy := colour.Opposite()

	if p.CanCastleKingside(colour) &&
		p.kingAndRookHome(colour, chess.Coords{File: 7, Rank: row}) &&
		p.squaresEmpty(chess.Coords{File: 5, Rank: row}, chess.Coords{File: 6, Rank: row}) &&
		!p.IsInCheck(colour) &&
		!p.IsAttackedBy(enemy, chess.Coords{File: 5, Rank: row}) {
		moves = append(moves, chess.NewKingsideCastle())
	}
	if p.CanCastleQueenside(colour) &&
		p.kingAndRookHome(colour, chess.Coords{File: 0, Rank: row}) &&
		p.squaresEmpty(chess.Coords{File: 1, Rank: row}, chess.Coords{File: 2, Rank: row}, chess.Coords{File: 3, Rank: row}) &&
		!p.IsInCheck(colour) &&
		!p.IsAttackedBy(enemy, chess.Coords{File: 3, Rank: row}) {
		moves = append(moves, chess.NewQueensideCastle())
	}
	return moves
}

func (p Position) kingAndRookHome(colour chess.Colour, rookHome chess.Coords) bool {
	king, ok := p.Board.PieceAt(chess.Coords{File: 4, Rank: colour.HomeRank()})
	if !ok || king != (chess.Piece{Kind: chess.King, Colour: colour}) {
		return false
	}
	rook, ok := p.Board.PieceAt(rookHome)
	return ok && rook == (chess.Piece{Kind: chess.Rook, Colour: colour})
}

func (p Position) squaresEmpty(squares ...chess.Coords) bool {
	for _, square := range squares {
		if _, ok := p.Board.PieceAt(square); ok {
			return false
		}
	}
	return true
}

// pawnMovesFrom generates single pushes, double pushes from the start
// rank, diagonal captures, the en-passant capture, and rewrites any move
// landing on the opponent's home rank into the four promotion variants.
func (p Position) pawnMovesFrom(origin chess.Coords, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forward := chess.Direction{DX: 0, DY: colour.PawnDirection()}
	aheadOne := origin.Add(forward)
	aheadTwo := aheadOne.Add(forward)

	if !aheadOne.InBounds() {
		return nil
	}

	if _, occupied := p.Board.PieceAt(aheadOne); !occupied {
		moves = append(moves, chess.NewRegularMove(origin, aheadOne))
		if origin.Rank == colour.PawnStartRank() && aheadTwo.InBounds() {
			if _, occupied := p.Board.PieceAt(aheadTwo); !occupied {
				moves = append(moves, chess.NewPawnSkip(origin, aheadTwo))
			}
		}
	}

	for _, dx := range []int{1, -1} {
		diagonal := origin.Add(chess.Direction{DX: dx, DY: colour.PawnDirection()})
		if !diagonal.InBounds() {
			continue
		}
		if piece, ok := p.Board.PieceAt(diagonal); ok && piece.Colour == colour.Opposite() {
			moves = append(moves, chess.NewRegularMove(origin, diagonal))
		}
	}

	if ep, ok := p.enPassantFrom(origin, colour); ok {
		moves = append(moves, ep)
	}

	return promoteBackRankMoves(moves, colour)
}

// enPassantFrom returns the en-passant capture available from origin, if
// the position's target square is one of the pawn's two capture squares.
// The captured pawn sits beside the origin, not on the target.
func (p Position) enPassantFrom(origin chess.Coords, colour chess.Colour) (chess.Move, bool) {
	if !p.EnPassant {
		return chess.Move{}, false
	}
	for _, dx := range []int{1, -1} {
		diagonal := origin.Add(chess.Direction{DX: dx, DY: colour.PawnDirection()})
		if diagonal.InBounds() && diagonal == p.EPSquare {
			captured := chess.Coords{File: p.EPSquare.File, Rank: origin.Rank}
			return chess.NewEnPassant(origin, p.EPSquare, captured), true
		}
	}
	return chess.Move{}, false
}

// promoteBackRankMoves replaces each regular pawn move that reaches the
// opponent's home rank with one Promotion move per promotable kind. A
// bare regular move onto the final rank is never emitted.
func promoteBackRankMoves(moves []chess.Move, colour chess.Colour) []chess.Move {
	backRank := colour.Opposite().HomeRank()
	expanded := moves[:0:0]
	for _, move := range moves {
		if move.Kind == chess.RegularMove && move.Dest.Rank == backRank {
			for _, kind := range chess.PromotableKinds() {
				expanded = append(expanded, chess.NewPromotion(move.Origin, move.Dest, kind))
			}
			continue
		}
		expanded = append(expanded, move)
	}
	return expanded
}
