package search

import (
	"context"
	"time"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

const (
	// LimitDepth caps iterative deepening.
	LimitDepth = 32
	// DefaultMoveTime is the wall-clock budget per turn. The budget is
	// inspected only between depths, so a turn may exceed it by the cost of
	// one additional depth.
	DefaultMoveTime = time.Second
)

// Iterative runs iteratively deeper history-ordered negamax searches until
// the depth cap, the wall-clock budget, or a forced mate stops it. The
// history table is fresh for each call.
type Iterative struct {
	Eval eval.Evaluator
}

// Think returns the best move for the side to move, if any, along with the
// best line of the last completed depth. A zero move means the side to move
// has no legal reply.
func (it Iterative) Think(ctx context.Context, pos *board.Position, opt Options) (board.Move, PV) {
	root := Negamax{Eval: it.Eval, History: NewHistory()}

	limit := uint(LimitDepth)
	if v, ok := opt.DepthLimit.V(); ok && v > 0 && v < limit {
		limit = v
	}
	budget := DefaultMoveTime
	if v, ok := opt.MoveTime.V(); ok {
		budget = v
	}

	deadline := time.Now().Add(budget)

	var pv PV
	for depth := uint(1); depth <= limit; depth++ {
		start := time.Now()
		nodes, score, move := root.Search(ctx, pos, int(depth))

		pv = PV{
			Depth: int(depth),
			Move:  move,
			Score: score,
			Nodes: nodes,
			Time:  time.Since(start),
		}

		logw.Debugf(ctx, "Searched %v: %v", pos, pv)

		if score.IsDecisive() {
			break // halt: forced mate found. Exact result.
		}
		if !time.Now().Before(deadline) {
			break // halt: exceeded wall-clock budget. Do not start a deeper search.
		}
		if contextx.IsCancelled(ctx) {
			break
		}
	}
	return pv.Move, pv
}
