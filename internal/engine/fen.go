package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from a 6-field FEN string. A malformed
// string is rejected outright: a position parsed from bad input would
// make every later computation meaningless.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, errors.Wrapf(errors.ErrInvalidFEN, "%d fields, want 6", len(fields))
	}

	pos := Position{}
	if err := parsePlacement(&pos, fields[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&pos, fields[1]); err != nil {
		return Position{}, err
	}
	if err := parseCastling(&pos, fields[2]); err != nil {
		return Position{}, err
	}
	if err := parseEnPassantTarget(&pos, fields[3]); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&pos, fields[4], fields[5]); err != nil {
		return Position{}, err
	}
	return pos, nil
}

// MustParseFEN is ParseFEN for known-good literals; it panics on error.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePlacement parses the rank-major piece placement field. Every rank
// must account for exactly 8 squares.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "%d ranks, want 8", len(ranks))
	}
	for rank, rankText := range ranks {
		file := 0
		for i := 0; i < len(rankText); i++ {
			ch := rankText[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := chess.PieceFromFENChar(ch)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "bad piece character %q", ch)
			}
			if file >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows 8 squares", rank+1)
			}
			pos.Board.Put(piece, chess.Coords{File: file, Rank: rank})
			file++
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

func parseSideToMove(pos *Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", field)
	}
	return nil
}

// parseCastling maps the availability field onto the has-moved flags: a
// missing right means the king or that rook is treated as having moved.
func parseCastling(pos *Position, field string) error {
	pos.WhiteKingsRookMoved = true
	pos.WhiteQueensRookMoved = true
	pos.BlackKingsRookMoved = true
	pos.BlackQueensRookMoved = true

	if field == "-" {
		pos.WhiteKingMoved = true
		pos.BlackKingMoved = true
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.WhiteKingsRookMoved = false
		case 'Q':
			pos.WhiteQueensRookMoved = false
		case 'k':
			pos.BlackKingsRookMoved = false
		case 'q':
			pos.BlackQueensRookMoved = false
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "castling availability %q", field)
		}
	}
	pos.WhiteKingMoved = pos.WhiteKingsRookMoved && pos.WhiteQueensRookMoved
	pos.BlackKingMoved = pos.BlackKingsRookMoved && pos.BlackQueensRookMoved
	return nil
}

func parseEnPassantTarget(pos *Position, field string) error {
	if field == "-" {
		return nil
	}
	square, err := chess.FromAlgebraic(field)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant target %q", field)
	}
	pos.EnPassant = true
	pos.EPSquare = square
	return nil
}

func parseClocks(pos *Position, halfmove, fullmove string) error {
	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", halfmove)
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return errors.Wrapf(errors.ErrInvalidFEN, "fullmove number %q", fullmove)
	}
	pos.HalfmoveClock = hm
	pos.FullmoveNumber = fm
	return nil
}

// FEN serializes the position as a 6-field FEN string.
func (p Position) FEN() string {
	var sb strings.Builder

	writePlacement(&sb, p)
	sb.WriteByte(' ')
	if p.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, p)
	sb.WriteByte(' ')
	if p.EnPassant {
		sb.WriteString(p.EPSquare.Algebraic())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}

func writePlacement(sb *strings.Builder, p Position) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := p.Board.PieceAt(chess.Coords{File: file, Rank: rank})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastling emits a right only when the flags allow it and the king
// and rook are actually standing on their home squares.
func writeCastling(sb *strings.Builder, p Position) {
	any := false
	if p.CanCastleKingside(chess.White) && p.kingAndRookHome(chess.White, whiteKingsRookHome) {
		sb.WriteByte('K')
		any = true
	}
	if p.CanCastleQueenside(chess.White) && p.kingAndRookHome(chess.White, whiteQueensRookHome) {
		sb.WriteByte('Q')
		any = true
	}
	if p.CanCastleKingside(chess.Black) && p.kingAndRookHome(chess.Black, blackKingsRookHome) {
		sb.WriteByte('k')
		any = true
	}
	if p.CanCastleQueenside(chess.Black) && p.kingAndRookHome(chess.Black, blackQueensRookHome) {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}
