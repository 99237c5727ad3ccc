package testutil

// FEN strings for positions that recur across test files. Keeping them
// here gives every package the same spelling of the same scenario.
const (
	// InitialFEN is the standard starting position.
	InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// ScholarsMateFEN is a delivered scholar's mate; Black is checkmated.
	ScholarsMateFEN = "r1bqkbnr/2pp1Qpp/ppn5/4p3/2BPP3/8/PPP2PPP/RNB1K1NR b KQkq - 0 1"

	// QueenStalemateFEN is a queen-and-king stalemate; Black to move has
	// no legal move and is not in check.
	QueenStalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// CastlingFEN has both kings and all four rooks on their home
	// squares with open home ranks; every castle is available.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// EnPassantFEN has a white pawn on e5 able to take the d5 pawn en
	// passant.
	EnPassantFEN = "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"

	// KnightForkFEN has a white knight on b5 one jump from forking the
	// black king and rook on c7.
	KnightForkFEN = "rnb1kbnr/pppppppp/8/1N6/8/8/PPPPPPPP/R1BQKBNR w KQkq - 0 1"

	// KiwipeteFEN is the dense middlegame position commonly used to
	// stress move generation.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)
