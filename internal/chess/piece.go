package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnStartRank returns the rank index the colour's pawns start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PawnDirection returns the rank delta of a forward pawn move: -1 for
// White (toward rank 0) and +1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PromotableKinds returns the kinds a pawn may promote to, in the order
// the move generator emits them.
func PromotableKinds() []PieceKind {
	return []PieceKind{Rook, Knight, Bishop, Queen}
}

// Piece is an immutable piece value: a kind plus a colour.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// FENChar returns the piece-placement letter used in FEN, with case
// denoting colour.
func (p Piece) FENChar() byte {
	letters := []byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}
	ch := byte('?')
	if int(p.Kind) < len(letters) {
		ch = letters[p.Kind]
	}
	if p.Colour == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// PieceFromFENChar converts a FEN piece-placement letter to a piece.
// The second return value is false for characters that are not pieces.
func PieceFromFENChar(ch byte) (Piece, bool) {
	colour := Black
	if ch >= 'A' && ch <= 'Z' {
		colour = White
		ch += 'a' - 'A'
	}
	var kind PieceKind
	switch ch {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Colour: colour}, true
}
