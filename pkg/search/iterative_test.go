package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
	"github.com/luuyiran/lvenw/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThinkStartup(t *testing.T) {
	ctx := context.Background()
	pos := board.NewPosition()

	it := search.Iterative{Eval: eval.PieceSquare{}}
	move, pv := it.Think(ctx, pos, search.Options{
		DepthLimit: lang.Some(uint(1)),
	})

	require.NotEqual(t, board.NoMove, move)
	assert.Equal(t, 1, pv.Depth)
	assert.Equal(t, move, pv.Move)

	assert.Equal(t, board.Red, pos.At(move.Src()).Color())
	var buf [board.MaxGenMoves]board.Move
	assert.Contains(t, pos.GenerateMoves(buf[:0]), move)
}

// TestThinkMateInOne verifies that a forced mate stops the deepening early.
func TestThinkMateInOne(t *testing.T) {
	ctx := context.Background()
	pos := mateInOne(t, board.Red)

	it := search.Iterative{Eval: eval.PieceSquare{}}
	move, pv := it.Think(ctx, pos, search.Options{})

	assert.Equal(t, mv(t, "h5h9"), move)
	assert.True(t, pv.Score.IsDecisive())
	assert.Equal(t, eval.MateValue-1, pv.Score)
}

func TestThinkTimeBudget(t *testing.T) {
	ctx := context.Background()
	pos := board.NewPosition()

	it := search.Iterative{Eval: eval.PieceSquare{}}

	start := time.Now()
	move, pv := it.Think(ctx, pos, search.Options{
		MoveTime: lang.Some(50 * time.Millisecond),
	})
	elapsed := time.Since(start)

	require.NotEqual(t, board.NoMove, move)
	assert.Positive(t, pv.Depth)

	// The budget is inspected between depths only, so allow the cost of one
	// extra iteration.
	assert.Less(t, elapsed, 30*time.Second)
}

func TestThinkRestoresPosition(t *testing.T) {
	ctx := context.Background()
	pos := board.NewPosition()
	snapshot := *pos.Fork()

	it := search.Iterative{Eval: eval.PieceSquare{}}
	it.Think(ctx, pos, search.Options{DepthLimit: lang.Some(uint(2))})

	assert.Equal(t, snapshot, *pos)
}
