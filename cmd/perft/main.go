// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/luuyiran/lvenw/pkg/board"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	flag.Parse()

	pos := board.NewPosition()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

func search(pos *board.Position, depth int, d bool) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	var buf [board.MaxGenMoves]board.Move
	for _, m := range pos.GenerateMoves(buf[:0]) {
		captured, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		count := search(pos, depth-1, false)
		pos.UndoMakeMove(m, captured)

		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
