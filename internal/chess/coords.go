// Package chess provides the core value types for the engine: coordinates,
// pieces, the board, and the closed set of move variants.
package chess

import "fmt"

// BoardSize is the width and height of the board.
const BoardSize = 8

// Coords identifies a square. File 0 is the a-file, Rank 0 is black's
// back rank (rank 8 in algebraic notation), so white's pieces start on
// ranks 6 and 7.
type Coords struct {
	File int
	Rank int
}

// InBounds reports whether the square lies on the board.
func (c Coords) InBounds() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Index returns the square number in rank-major order (a8 = 0, h1 = 63).
func (c Coords) Index() int {
	return c.Rank*BoardSize + c.File
}

// Add returns the square reached by moving from c in direction d.
func (c Coords) Add(d Direction) Coords {
	return Coords{File: c.File + d.DX, Rank: c.Rank + d.DY}
}

// Algebraic returns the square in file+rank notation, e.g. "e4".
func (c Coords) Algebraic() string {
	return string([]byte{byte('a' + c.File), byte('0' + BoardSize - c.Rank)})
}

// String implements fmt.Stringer.
func (c Coords) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return c.Algebraic()
}

// FromAlgebraic parses a two-character square such as "e4".
func FromAlgebraic(square string) (Coords, error) {
	if len(square) != 2 {
		return Coords{}, fmt.Errorf("square %q: want 2 characters", square)
	}
	file := int(square[0] - 'a')
	rank := int(square[1] - '1')
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Coords{}, fmt.Errorf("square %q: out of range", square)
	}
	return Coords{File: file, Rank: BoardSize - 1 - rank}, nil
}

// MustFromAlgebraic is FromAlgebraic for known-good literals; it panics
// on malformed input.
func MustFromAlgebraic(square string) Coords {
	c, err := FromAlgebraic(square)
	if err != nil {
		panic(err)
	}
	return c
}

// AllSquares returns every square in rank-major order, matching the
// order the move generator scans the board in.
func AllSquares() []Coords {
	squares := make([]Coords, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, Coords{File: file, Rank: rank})
		}
	}
	return squares
}

// Direction is an integer displacement between squares.
type Direction struct {
	DX int
	DY int
}

// Scale returns the direction stretched by the given magnitude.
func (d Direction) Scale(n int) Direction {
	return Direction{DX: d.DX * n, DY: d.DY * n}
}

// Cardinals returns the four rook directions.
func Cardinals() []Direction {
	return []Direction{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
}

// Diagonals returns the four bishop directions.
func Diagonals() []Direction {
	return []Direction{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
}

// EightDegrees returns all eight queen/king directions.
func EightDegrees() []Direction {
	return append(Cardinals(), Diagonals()...)
}

// KnightJumps returns the eight knight offsets.
func KnightJumps() []Direction {
	return []Direction{
		{1, 2}, {-1, 2}, {2, 1}, {-2, 1},
		{1, -2}, {-1, -2}, {-2, -1}, {2, -1},
	}
}
