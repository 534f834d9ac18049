package board_test

import (
	"testing"

	"github.com/luuyiran/lvenw/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(pos *board.Position) []board.Move {
	var buf [board.MaxGenMoves]board.Move
	return pos.GenerateMoves(buf[:0])
}

func movesFrom(pos *board.Position, src board.Square) []board.Move {
	var ret []board.Move
	for _, m := range generate(pos) {
		if m.Src() == src {
			ret = append(ret, m)
		}
	}
	return ret
}

func TestGenerateMovesStartup(t *testing.T) {
	pos := board.NewPosition()
	moves := generate(pos)

	assert.Len(t, moves, 44)
	for _, m := range moves {
		pc := pos.At(m.Src())
		assert.False(t, pc.IsEmpty(), m)
		assert.Equal(t, board.Red, pc.Color(), m)
		assert.True(t, pos.At(m.Dst()).IsEmpty() || pos.At(m.Dst()).Color() == board.Black, m)
	}
}

// TestGenerateMatchesLegal verifies that generation and shape legality agree
// exactly over the full packed move space.
func TestGenerateMatchesLegal(t *testing.T) {
	positions := []*board.Position{
		board.NewPosition(),
		place(t, board.Red, map[string]board.Piece{
			"e0": board.NewPiece(board.Red, board.King),
			"d0": board.NewPiece(board.Red, board.Advisor),
			"c0": board.NewPiece(board.Red, board.Bishop),
			"b0": board.NewPiece(board.Red, board.Knight),
			"a3": board.NewPiece(board.Red, board.Pawn),
			"e5": board.NewPiece(board.Red, board.Pawn),
			"b2": board.NewPiece(board.Red, board.Cannon),
			"a0": board.NewPiece(board.Red, board.Rook),
			"e9": board.NewPiece(board.Black, board.King),
			"b7": board.NewPiece(board.Black, board.Cannon),
			"b4": board.NewPiece(board.Black, board.Pawn),
			"h9": board.NewPiece(board.Black, board.Knight),
		}),
	}

	for _, pos := range positions {
		generated := map[board.Move]bool{}
		for _, m := range generate(pos) {
			generated[m] = true
		}

		for src := board.Square(0); src < board.NumSquares; src++ {
			for dst := board.Square(0); dst < board.NumSquares; dst++ {
				m := board.NewMove(src, dst)
				assert.Equal(t, generated[m], pos.LegalMove(m), "%v on %v", m, pos)
			}
		}
	}
}

// TestKnightLeg verifies that a blocked leg suppresses both jumps in that
// direction while the other legs still produce theirs.
func TestKnightLeg(t *testing.T) {
	pos := place(t, board.Red, map[string]board.Piece{
		"e0": board.NewPiece(board.Red, board.King),
		"e9": board.NewPiece(board.Black, board.King),
		"b1": board.NewPiece(board.Red, board.Knight),
		"b2": board.NewPiece(board.Red, board.Pawn),
	})

	moves := movesFrom(pos, sq(t, "b1"))
	assert.ElementsMatch(t, []board.Move{mv(t, "b1d2"), mv(t, "b1d0")}, moves)
}

// TestBishopRiver verifies that bishops cannot cross the river and that the
// eye must be empty.
func TestBishopRiver(t *testing.T) {
	pos := place(t, board.Red, map[string]board.Piece{
		"e0": board.NewPiece(board.Red, board.King),
		"e9": board.NewPiece(board.Black, board.King),
		"c4": board.NewPiece(board.Red, board.Bishop),
	})

	assert.True(t, pos.LegalMove(mv(t, "c4a2")))
	assert.True(t, pos.LegalMove(mv(t, "c4e2")))
	assert.False(t, pos.LegalMove(mv(t, "c4a6")), "crosses the river")
	assert.False(t, pos.LegalMove(mv(t, "c4e6")), "crosses the river")
	assert.ElementsMatch(t, []board.Move{mv(t, "c4a2"), mv(t, "c4e2")}, movesFrom(pos, sq(t, "c4")))

	blocked := place(t, board.Red, map[string]board.Piece{
		"e0": board.NewPiece(board.Red, board.King),
		"e9": board.NewPiece(board.Black, board.King),
		"c4": board.NewPiece(board.Red, board.Bishop),
		"b3": board.NewPiece(board.Red, board.Pawn),
	})
	assert.False(t, blocked.LegalMove(mv(t, "c4a2")), "eye occupied")
	assert.True(t, blocked.LegalMove(mv(t, "c4e2")))
}

// TestPawnMoves verifies forward-only movement on the home half and the
// sideways steps past the river.
func TestPawnMoves(t *testing.T) {
	pos := place(t, board.Red, map[string]board.Piece{
		"e0": board.NewPiece(board.Red, board.King),
		"e9": board.NewPiece(board.Black, board.King),
		"c3": board.NewPiece(board.Red, board.Pawn),
		"g6": board.NewPiece(board.Red, board.Pawn),
	})

	assert.ElementsMatch(t, []board.Move{mv(t, "c3c4")}, movesFrom(pos, sq(t, "c3")))
	assert.ElementsMatch(t, []board.Move{mv(t, "g6g7"), mv(t, "g6f6"), mv(t, "g6h6")}, movesFrom(pos, sq(t, "g6")))

	// A pawn on the last rank can only shuffle sideways.
	last := place(t, board.Black, map[string]board.Piece{
		"e0": board.NewPiece(board.Red, board.King),
		"e9": board.NewPiece(board.Black, board.King),
		"c0": board.NewPiece(board.Black, board.Pawn),
	})
	assert.ElementsMatch(t, []board.Move{mv(t, "c0b0"), mv(t, "c0d0")}, movesFrom(last, sq(t, "c0")))
}

func TestGenerateMovesCapacity(t *testing.T) {
	pos := board.NewPosition()
	moves := generate(pos)
	require.LessOrEqual(t, len(moves), board.MaxGenMoves)
}
