package board

// Perft counts the legal move paths of the given depth via make/undo.
// See: https://www.chessprogramming.org/Perft_Results.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	var buf [MaxGenMoves]Move
	for _, m := range p.GenerateMoves(buf[:0]) {
		captured, ok := p.MakeMove(m)
		if !ok {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UndoMakeMove(m, captured)
	}
	return nodes
}
