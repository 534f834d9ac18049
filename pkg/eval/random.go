package eval

import (
	"context"
	"math/rand"

	"github.com/luuyiran/lvenw/pkg/board"
)

// Random is a randomized noise generator. It is used to add a small amount of
// randomness to evaluations in the range [-limit/2; limit/2]. The zero value
// always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, pos *board.Position) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}

// Randomize adds seeded noise to the given evaluator.
func Randomize(base Evaluator, limit int, seed int64) Evaluator {
	return randomized{base: base, noise: NewRandom(limit, seed)}
}

type randomized struct {
	base  Evaluator
	noise Random
}

func (r randomized) Evaluate(ctx context.Context, pos *board.Position) Score {
	return r.base.Evaluate(ctx, pos) + r.noise.Evaluate(ctx, pos)
}
