package eval

import (
	"context"

	"github.com/luuyiran/lvenw/pkg/board"
)

// AdvancedValue is the small right-to-move bonus added to every static
// evaluation.
const AdvancedValue Score = 3

// Evaluator is a static position evaluator. Scores are from the side to
// move's point of view.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *board.Position) Score
}

// PieceSquare evaluates a position as the difference of the two incremental
// piece-square sums plus the right-to-move bonus. Constant-time; the sums are
// maintained by the position primitives.
type PieceSquare struct{}

func (PieceSquare) Evaluate(ctx context.Context, pos *board.Position) Score {
	turn := pos.Turn()
	return Score(pos.Material(turn)-pos.Material(turn.Opponent())) + AdvancedValue
}
