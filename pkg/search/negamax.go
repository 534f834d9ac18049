package search

import (
	"context"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
)

// Negamax implements fail-soft negamax alpha-beta pruning with history move
// ordering. Pseudo-code:
//
// function negamax(node, depth, α, β, color) is
//
//	if depth = 0 or node is a terminal node then
//	    return color × the heuristic value of node
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1, −β, −α, −color))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* cut-off *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type Negamax struct {
	Eval    eval.Evaluator
	History *History
}

func (n Negamax) Search(ctx context.Context, pos *board.Position, depth int) (uint64, eval.Score, board.Move) {
	history := n.History
	if history == nil {
		history = NewHistory()
	}
	run := &runNegamax{eval: n.Eval, history: history, pos: pos}

	pos.ResetDistance()
	score := run.search(ctx, -eval.MateValue, eval.MateValue, depth)
	return run.nodes, score, run.best
}

type runNegamax struct {
	eval    eval.Evaluator
	history *History
	pos     *board.Position
	nodes   uint64

	best board.Move
}

// search returns the fail-soft score for the side to move. The position is
// restored exactly before every return path.
func (m *runNegamax) search(ctx context.Context, alpha, beta eval.Score, depth int) eval.Score {
	m.nodes++

	if depth == 0 {
		return m.eval.Evaluate(ctx, m.pos)
	}

	best := -eval.MateValue
	bestMove := board.NoMove

	var buf [board.MaxGenMoves]board.Move
	moves := NewMoveList(m.pos.GenerateMoves(buf[:0]), m.history.Of)
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		captured, ok := m.pos.MakeMove(move)
		if !ok {
			continue // skip: would leave own king in check
		}

		v := -m.search(ctx, -beta, -alpha, depth-1)
		m.pos.UndoMakeMove(move, captured)

		if v > best {
			best = v
			if v >= beta {
				bestMove = move
				break // cutoff
			}
			if v > alpha {
				bestMove = move
				alpha = v
			}
		}
	}

	if best == -eval.MateValue {
		// No legal reply: mated here. Closer mates weigh heavier.
		return eval.MatedIn(m.pos.Distance())
	}

	if bestMove != board.NoMove {
		m.history.Good(bestMove, depth)
		if m.pos.Distance() == 0 {
			m.best = bestMove
		}
	}
	return best
}
