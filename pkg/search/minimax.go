package search

import (
	"context"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
)

// Minimax implements naive full-width negamax search without pruning or
// ordering. Useful for comparison and validation.
type Minimax struct {
	Eval eval.Evaluator
}

func (m Minimax) Search(ctx context.Context, pos *board.Position, depth int) (uint64, eval.Score, board.Move) {
	run := &runMinimax{eval: m.Eval, pos: pos}

	pos.ResetDistance()
	score := run.search(ctx, depth)
	return run.nodes, score, run.best
}

type runMinimax struct {
	eval  eval.Evaluator
	pos   *board.Position
	nodes uint64

	best board.Move
}

func (m *runMinimax) search(ctx context.Context, depth int) eval.Score {
	m.nodes++

	if depth == 0 {
		return m.eval.Evaluate(ctx, m.pos)
	}

	best := -eval.MateValue

	var buf [board.MaxGenMoves]board.Move
	for _, move := range m.pos.GenerateMoves(buf[:0]) {
		captured, ok := m.pos.MakeMove(move)
		if !ok {
			continue
		}

		v := -m.search(ctx, depth-1)
		m.pos.UndoMakeMove(move, captured)

		if v > best {
			best = v
			if m.pos.Distance() == 0 {
				m.best = move
			}
		}
	}

	if best == -eval.MateValue {
		return eval.MatedIn(m.pos.Distance())
	}
	return best
}
