package board

// MaxGenMoves bounds the number of pseudo-legal moves in any legal position.
const MaxGenMoves = 128

// GenerateMoves appends all pseudo-legal moves for the side to move to the
// given slice and returns it. Moves are rule-shaped but may leave the mover's
// own king in check; MakeMove filters those. Generation order is
// deterministic: by source square ascending, then by the fixed per-role step
// order.
func (p *Position) GenerateMoves(moves []Move) []Move {
	side, opp := tag(p.turn), oppTag(p.turn)

	for src := SquareMin; src <= SquareMax; src++ {
		pc := p.board[src]
		if pc&side == 0 {
			continue
		}

		switch Role(pc - side) {
		case King:
			for _, delta := range kingDelta {
				dst := src + delta
				if !dst.InPalace() {
					continue
				}
				if p.board[dst]&side == 0 {
					moves = append(moves, NewMove(src, dst))
				}
			}

		case Advisor:
			for _, delta := range advisorDelta {
				dst := src + delta
				if !dst.InPalace() {
					continue
				}
				if p.board[dst]&side == 0 {
					moves = append(moves, NewMove(src, dst))
				}
			}

		case Bishop:
			for _, delta := range advisorDelta {
				eye := src + delta
				if !eye.OnBoard() || !homeHalf(eye, p.turn) || !p.board[eye].IsEmpty() {
					continue
				}
				dst := eye + delta
				if p.board[dst]&side == 0 {
					moves = append(moves, NewMove(src, dst))
				}
			}

		case Knight:
			for i, leg := range kingDelta {
				if !p.board[src+leg].IsEmpty() {
					continue
				}
				for _, delta := range knightDelta[i] {
					dst := src + delta
					if !dst.OnBoard() {
						continue
					}
					if p.board[dst]&side == 0 {
						moves = append(moves, NewMove(src, dst))
					}
				}
			}

		case Rook:
			for _, delta := range kingDelta {
				for dst := src + delta; dst.OnBoard(); dst += delta {
					target := p.board[dst]
					if target.IsEmpty() {
						moves = append(moves, NewMove(src, dst))
						continue
					}
					if target&opp != 0 {
						moves = append(moves, NewMove(src, dst))
					}
					break
				}
			}

		case Cannon:
			for _, delta := range kingDelta {
				dst := src + delta
				for ; dst.OnBoard(); dst += delta {
					if !p.board[dst].IsEmpty() {
						break
					}
					moves = append(moves, NewMove(src, dst))
				}
				// Past the screen, the first occupied square may be captured.
				for dst += delta; dst.OnBoard(); dst += delta {
					target := p.board[dst]
					if target.IsEmpty() {
						continue
					}
					if target&opp != 0 {
						moves = append(moves, NewMove(src, dst))
					}
					break
				}
			}

		case Pawn:
			if dst := src.Forward(p.turn); dst.OnBoard() && p.board[dst]&side == 0 {
				moves = append(moves, NewMove(src, dst))
			}
			if awayHalf(src, p.turn) {
				for _, delta := range [2]Square{-1, 1} {
					if dst := src + delta; dst.OnBoard() && p.board[dst]&side == 0 {
						moves = append(moves, NewMove(src, dst))
					}
				}
			}
		}
	}
	return moves
}
