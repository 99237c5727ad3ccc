package chess

// Board is a fixed 64-square container of optional pieces, indexed in
// rank-major order. The zero value is an empty board. Board is a plain
// value: assignment copies it, so position snapshots share no state.
type Board struct {
	squares [BoardSize * BoardSize]Piece
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() Board {
	return Board{}
}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Put(Piece{Kind: backRank[file], Colour: Black}, Coords{File: file, Rank: 0})
		b.Put(Piece{Kind: Pawn, Colour: Black}, Coords{File: file, Rank: 1})
		b.Put(Piece{Kind: Pawn, Colour: White}, Coords{File: file, Rank: 6})
		b.Put(Piece{Kind: backRank[file], Colour: White}, Coords{File: file, Rank: 7})
	}
	return b
}

// PieceAt returns the piece on the given square, if any.
func (b *Board) PieceAt(loc Coords) (Piece, bool) {
	p := b.squares[loc.Index()]
	return p, p.Kind != NoPiece
}

// Put places a piece on a square, replacing whatever was there.
func (b *Board) Put(piece Piece, loc Coords) {
	b.squares[loc.Index()] = piece
}

// Take removes and returns the piece on a square, if any.
func (b *Board) Take(loc Coords) (Piece, bool) {
	p := b.squares[loc.Index()]
	b.squares[loc.Index()] = Piece{}
	return p, p.Kind != NoPiece
}

// MovePiece relocates whatever occupies origin to dest. Moving from an
// empty square is a no-op.
func (b *Board) MovePiece(origin, dest Coords) {
	if piece, ok := b.Take(origin); ok {
		b.Put(piece, dest)
	}
}

// PawnAt reports whether a pawn of either colour occupies the square.
func (b *Board) PawnAt(loc Coords) bool {
	p, ok := b.PieceAt(loc)
	return ok && p.Kind == Pawn
}

// KingAt reports whether a king of either colour occupies the square.
func (b *Board) KingAt(loc Coords) bool {
	p, ok := b.PieceAt(loc)
	return ok && p.Kind == King
}
