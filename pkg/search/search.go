// Package search contains game tree search functionality and utilities.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Searcher implements search of the game tree to a given depth. The position
// is mutated transactionally; on return it is bitwise-identical to its state
// at entry, except that the ply counter is reset to zero to mark the root.
type Searcher interface {
	// Search returns the nodes searched, the fail-soft score for the side to
	// move and the best root move, if any.
	Search(ctx context.Context, pos *board.Position, depth int) (uint64, eval.Score, board.Move)
}

// PV represents the best line found for some search depth.
type PV struct {
	Depth int
	Move  board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Move)
}

// Options hold dynamic search options for a single turn.
type Options struct {
	// DepthLimit, if set, caps the iterative deepening depth below LimitDepth.
	DepthLimit lang.Optional[uint]
	// MoveTime, if set, replaces the default one second wall-clock budget.
	MoveTime lang.Optional[time.Duration]
}

func (o Options) String() string {
	depth := uint(LimitDepth)
	if v, ok := o.DepthLimit.V(); ok {
		depth = v
	}
	budget := DefaultMoveTime
	if v, ok := o.MoveTime.V(); ok {
		budget = v
	}
	return fmt.Sprintf("[depth=%v, movetime=%v]", depth, budget)
}
