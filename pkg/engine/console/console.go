// Package console implements a line-based console front-end for the engine.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/luuyiran/lvenw/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

const ProtocolName = "console"

// Driver implements the engine's input source and view sink over line
// channels: coordinate moves in ("h2e2"), board renderings and game events
// out. "quit" ends the session.
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	in  <-chan string
	out chan string

	over atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		in:          in,
		out:         out,
	}
	go d.process(ctx)

	return d, out
}

func (d *Driver) process(ctx context.Context) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	if err := d.e.Play(ctx, d, d); err != nil {
		logw.Errorf(ctx, "Game failed: %v", err)
	}
}

// NextMove reads lines until a parseable move or the end of the session.
func (d *Driver) NextMove(ctx context.Context) (board.Move, bool) {
	for {
		select {
		case line, ok := <-d.in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return board.NoMove, false
			}

			cmd := strings.ToLower(strings.TrimSpace(line))
			switch cmd {
			case "":
				// ignore empty line

			case "quit", "exit", "q":
				return board.NoMove, false

			case "print", "p":
				d.printBoard()

			default:
				m, err := board.ParseMove(cmd)
				if err != nil {
					d.out <- fmt.Sprintf("invalid move: '%v'", cmd)
					continue
				}
				return m, true
			}

		case <-d.Closed():
			return board.NoMove, false
		}
	}
}

func (d *Driver) PieceMoved(ctx context.Context, m board.Move, captured board.Piece) {
	if captured.IsEmpty() {
		d.out <- fmt.Sprintf("move %v", m)
	} else {
		d.out <- fmt.Sprintf("move %v takes %v", m, captured)
	}
	d.printBoard()
}

func (d *Driver) CheckWarning(ctx context.Context) {
	d.out <- "in check"
}

func (d *Driver) GameOver(ctx context.Context, winner board.Color) {
	d.over.Store(true)

	side := "red"
	if winner == board.Black {
		side = "black"
	}
	d.out <- fmt.Sprintf("game over: %v wins", side)
}

// GameOverSeen returns true iff the game has been decided.
func (d *Driver) GameOverSeen() bool {
	return d.over.Load()
}

const files = "   a  b  c  d  e  f  g  h  i"

func (d *Driver) printBoard() {
	pos := d.e.Position()

	d.out <- ""
	d.out <- files
	for row := board.RowTop; row <= board.RowBottom; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", board.RowBottom-row)
		for col := board.ColLeft; col <= board.ColRight; col++ {
			fmt.Fprintf(&sb, " %v ", pos.At(board.NewSquare(col, row)))
		}
		fmt.Fprintf(&sb, " %d", board.RowBottom-row)
		d.out <- sb.String()
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("position: %v", pos)
}
