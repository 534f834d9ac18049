package search

import (
	"container/heap"

	"github.com/luuyiran/lvenw/pkg/board"
)

// History accumulates move-ordering scores from PV updates and beta cutoffs,
// indexed by the packed move value. It covers the full 16-bit move space and
// is cleared at the start of each engine turn.
type History [1 << 16]int32

func NewHistory() *History {
	return &History{}
}

func (h *History) Clear() {
	*h = History{}
}

// Good credits the move with depth^2 after a PV update or beta cutoff.
func (h *History) Good(m board.Move, depth int) {
	h[m] += int32(depth * depth)
}

// Of returns the move's accumulated score.
func (h *History) Of(m board.Move) int32 {
	return h[m]
}

// MoveList is a move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list ordered by the given priorities.
// Ties fall in heap order; callers must not rely on a particular choice
// among equally-scored moves.
func NewMoveList(moves []board.Move, fn func(m board.Move) int32) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the highest priority move remaining in the list.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.NoMove, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

type elm struct {
	m   board.Move
	val int32
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
