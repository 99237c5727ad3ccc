package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate reports whether the side to move is in check with no
// legal moves.
func (p Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal moves.
func (p Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// Checkmated returns the checkmated colour, if any.
func (p Position) Checkmated() (chess.Colour, bool) {
	if p.IsCheckmate() {
		return p.ToMove, true
	}
	return 0, false
}

// IsTerminal reports whether the game is over in this position.
func (p Position) IsTerminal() bool {
	return !p.HasLegalMoves()
}
