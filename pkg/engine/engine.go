// Package engine binds the rule core, evaluation and search into a playable
// game driver.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/eval"
	"github.com/luuyiran/lvenw/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 9, 0)

// InputSource yields candidate human moves. The driver validates them; it
// never applies an unvalidated move.
type InputSource interface {
	// NextMove returns the next candidate move. False means the source is
	// exhausted and the game should stop.
	NextMove(ctx context.Context) (board.Move, bool)
}

// ViewSink receives game events from the driver.
type ViewSink interface {
	// PieceMoved is called after a confirmed move by either side.
	PieceMoved(ctx context.Context, m board.Move, captured board.Piece)
	// CheckWarning is called when the human attempts a self-check move.
	CheckWarning(ctx context.Context)
	// GameOver is called when the side to move has no legal reply. The side
	// that made the last move wins; Xiangqi treats stalemate as a loss.
	GameOver(ctx context.Context, winner board.Color)
}

// Option is an engine creation option.
type Option func(*Engine)

// WithDepthLimit caps the search depth below the default limit.
func WithDepthLimit(depth uint) Option {
	return func(e *Engine) {
		e.opt.DepthLimit = lang.Some(depth)
	}
}

// WithMoveTime replaces the default one second wall-clock budget per turn.
func WithMoveTime(d time.Duration) Option {
	return func(e *Engine) {
		e.opt.MoveTime = lang.Some(d)
	}
}

// WithNoise adds seeded randomness to the leaf evaluations.
func WithNoise(limit int, seed int64) Option {
	return func(e *Engine) {
		e.searcher.Eval = eval.Randomize(eval.PieceSquare{}, limit, seed)
	}
}

// Engine encapsulates game-playing logic, search and evaluation. The human
// plays Red and moves first; the engine answers for Black.
type Engine struct {
	name, author string

	searcher search.Iterative
	opt      search.Options

	pos *board.Position
	mu  sync.Mutex
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		searcher: search.Iterative{Eval: eval.PieceSquare{}},
		pos:      board.NewPosition(),
	}
	for _, fn := range opts {
		fn(e)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opt)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns a forked copy of the current position.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Fork()
}

// Reset replaces the game state with the given position.
func (e *Engine) Reset(ctx context.Context, pos *board.Position) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v", pos)
	e.pos = pos.Fork()
}

// Play runs the game loop until the input source is exhausted or the game is
// decided: the human side reads from the input source through validation and
// make; the engine side thinks. The sink sees every committed move and the
// outcome.
func (e *Engine) Play(ctx context.Context, in InputSource, view ViewSink) error {
	for {
		var committed board.Move
		var captured board.Piece

		if e.pos.Turn() == board.Red {
			m, ok := in.NextMove(ctx)
			if !ok {
				logw.Infof(ctx, "Input exhausted. Game stopped")
				return nil
			}
			if !e.pos.LegalMove(m) {
				logw.Debugf(ctx, "Ignored move %v: not legal", m)
				continue
			}
			captured, ok = e.pos.MakeMove(m)
			if !ok {
				view.CheckWarning(ctx)
				continue
			}
			committed = m
		} else {
			move, pv := e.searcher.Think(ctx, e.pos, e.opt)
			if move == board.NoMove {
				// No legal reply exists; adjudicated below on the previous
				// move. Reaching this point means the game began decided.
				view.GameOver(ctx, e.pos.Turn().Opponent())
				return nil
			}
			captured, _ = e.pos.MakeMove(move)
			committed = move
			logw.Infof(ctx, "Engine move %v: %v", move, pv)
		}

		logw.Infof(ctx, "Move %v: %v", committed, e.pos)
		view.PieceMoved(ctx, committed, captured)

		if e.pos.IsMated() {
			winner := e.pos.Turn().Opponent()
			logw.Infof(ctx, "Game over: %v wins", winner)
			view.GameOver(ctx, winner)
			return nil
		}
	}
}
