package chess

import "fmt"

// MoveKind categorizes the closed set of move variants. Every site that
// interprets a move switches over all six kinds.
type MoveKind int

const (
	RegularMove MoveKind = iota
	PawnSkip
	KingsideCastle
	QueensideCastle
	EnPassant
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"RegularMove", "PawnSkip", "KingsideCastle", "QueensideCastle", "EnPassant", "Promotion"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is a single chess move. Equality is structural: two moves are
// the same move iff all fields match. Castle moves carry no coordinates;
// the king and rook squares follow from the side to move.
type Move struct {
	Kind   MoveKind
	Origin Coords
	Dest   Coords

	// Captured is the square of the pawn removed by an EnPassant move.
	// It differs from Dest: the capture happens behind the target square.
	Captured Coords

	// PromoteTo is the kind a Promotion move converts the pawn into.
	PromoteTo PieceKind
}

// NewRegularMove returns a quiet move or ordinary capture.
func NewRegularMove(origin, dest Coords) Move {
	return Move{Kind: RegularMove, Origin: origin, Dest: dest}
}

// NewPawnSkip returns a double pawn push.
func NewPawnSkip(origin, dest Coords) Move {
	return Move{Kind: PawnSkip, Origin: origin, Dest: dest}
}

// NewKingsideCastle returns a king-side castle for the side to move.
func NewKingsideCastle() Move {
	return Move{Kind: KingsideCastle}
}

// NewQueensideCastle returns a queen-side castle for the side to move.
func NewQueensideCastle() Move {
	return Move{Kind: QueensideCastle}
}

// NewEnPassant returns an en-passant capture. captured is the square of
// the pawn being removed.
func NewEnPassant(origin, dest, captured Coords) Move {
	return Move{Kind: EnPassant, Origin: origin, Dest: dest, Captured: captured}
}

// NewPromotion returns a promotion onto the opponent's back rank.
func NewPromotion(origin, dest Coords, promoteTo PieceKind) Move {
	return Move{Kind: Promotion, Origin: origin, Dest: dest, PromoteTo: promoteTo}
}

// IsCastle reports whether the move is either castle variant.
func (m Move) IsCastle() bool {
	return m.Kind == KingsideCastle || m.Kind == QueensideCastle
}

// String implements fmt.Stringer for debugging and test output.
func (m Move) String() string {
	switch m.Kind {
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	case EnPassant:
		return fmt.Sprintf("%s%s ep", m.Origin, m.Dest)
	case Promotion:
		return fmt.Sprintf("%s%s=%s", m.Origin, m.Dest, m.PromoteTo)
	default:
		return fmt.Sprintf("%s%s", m.Origin, m.Dest)
	}
}
