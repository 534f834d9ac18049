package board

// LegalMove reports whether the move is rule-shaped and unblocked for the
// side to move: own piece on the source, destination empty or an opposing
// piece, and the role-specific span, palace, river, leg and screen
// constraints. It does not test for self-check; MakeMove does.
func (p *Position) LegalMove(m Move) bool {
	src, dst := m.Src(), m.Dst()
	if !src.OnBoard() || !dst.OnBoard() {
		return false
	}

	side := tag(p.turn)
	pc := p.board[src]
	if pc&side == 0 {
		return false
	}
	target := p.board[dst]
	if target&side != 0 {
		return false
	}

	switch Role(pc - side) {
	case King:
		return dst.InPalace() && kingSpan(src, dst)

	case Advisor:
		return dst.InPalace() && advisorSpan(src, dst)

	case Bishop:
		return sameHalf(src, dst) && bishopSpan(src, dst) && p.board[bishopEye(src, dst)].IsEmpty()

	case Knight:
		leg := knightLeg(src, dst)
		return leg != src && p.board[leg].IsEmpty()

	case Rook, Cannon:
		var delta Square
		switch {
		case sameRow(src, dst):
			delta = 1
			if dst < src {
				delta = -1
			}
		case sameCol(src, dst):
			delta = 16
			if dst < src {
				delta = -16
			}
		default:
			return false
		}

		block := src + delta
		for block != dst && p.board[block].IsEmpty() {
			block += delta
		}
		if block == dst {
			// Clear path: a quiet move for either, a capture only for the rook.
			return target.IsEmpty() || Role(pc-side) == Rook
		}
		if target.IsEmpty() || Role(pc-side) != Cannon {
			return false
		}
		// Cannon capture: exactly one screen between source and destination.
		for block += delta; block != dst && p.board[block].IsEmpty(); block += delta {
		}
		return block == dst

	case Pawn:
		if dst == src.Forward(p.turn) {
			return true
		}
		return awayHalf(dst, p.turn) && sameRow(src, dst) && (dst == src-1 || dst == src+1)

	default:
		return false
	}
}
