package engine

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// It exists to validate move generation: the counts for well-known
// positions are published and any divergence pinpoints a rule bug.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, move := range p.AllLegalMoves() {
		nodes += Perft(p.AfterMove(move), depth-1)
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts one level down,
// keyed by long-algebraic move text. Useful when chasing a perft
// mismatch.
func PerftDivide(p Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, move := range p.AllLegalMoves() {
		counts[EncodeMove(p, move)] = Perft(p.AfterMove(move), depth-1)
	}
	return counts
}
