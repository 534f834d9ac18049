package board

// Step deltas on the 16x16 grid. The king deltas double as rook/cannon ray
// directions and as knight legs; the advisor deltas double as bishop
// half-steps and as the legs used when probing for knight checks.
var (
	kingDelta    = [4]Square{-16, -1, 1, 16}
	advisorDelta = [4]Square{-17, -15, 15, 17}

	// knightDelta[i] holds the two knight jumps whose leg is kingDelta[i].
	knightDelta = [4][2]Square{{-33, -31}, {-18, 14}, {-14, 18}, {31, 33}}

	// knightCheckDelta[i] holds the two squares a knight attacks the king
	// from when the leg at advisorDelta[i] (seen from the king) is empty.
	knightCheckDelta = [4][2]Square{{-33, -18}, {-31, -14}, {14, 31}, {18, 33}}
)

var (
	onBoard  [NumSquares]bool
	inPalace [NumSquares]bool

	// legalSpan, indexed by dst-src+256, classifies a step shape:
	// 1 king, 2 advisor, 3 bishop.
	legalSpan [512]int8

	// knightPin, indexed by dst-src+256, holds the offset of the blocking
	// leg square from the source, or 0 for non-knight step shapes.
	knightPin [512]Square
)

func init() {
	for row := RowTop; row <= RowBottom; row++ {
		for col := ColLeft; col <= ColRight; col++ {
			onBoard[NewSquare(col, row)] = true
		}
	}
	for _, row := range []int{RowTop, RowTop + 1, RowTop + 2, RowBottom - 2, RowBottom - 1, RowBottom} {
		for col := 6; col <= 8; col++ {
			inPalace[NewSquare(col, row)] = true
		}
	}

	for i := 0; i < 4; i++ {
		legalSpan[256+kingDelta[i]] = 1
		legalSpan[256+advisorDelta[i]] = 2
		legalSpan[256+2*advisorDelta[i]] = 3

		knightPin[256+knightDelta[i][0]] = kingDelta[i]
		knightPin[256+knightDelta[i][1]] = kingDelta[i]
	}
}

func kingSpan(src, dst Square) bool {
	return legalSpan[dst-src+256] == 1
}

func advisorSpan(src, dst Square) bool {
	return legalSpan[dst-src+256] == 2
}

func bishopSpan(src, dst Square) bool {
	return legalSpan[dst-src+256] == 3
}

// bishopEye returns the diagonal midpoint of a bishop step.
func bishopEye(src, dst Square) Square {
	return (src + dst) >> 1
}

// knightLeg returns the leg square for a knight step, or src itself if the
// step is not knight-shaped.
func knightLeg(src, dst Square) Square {
	return src + knightPin[dst-src+256]
}

// startupRows is the standard opening position, Black at the top.
var startupRows = [10]string{
	"rnbakabnr",
	".........",
	".c.....c.",
	"p.p.p.p.p",
	".........",
	".........",
	"P.P.P.P.P",
	".C.....C.",
	".........",
	"RNBAKABNR",
}

var startupBoard = func() [NumSquares]Piece {
	var ret [NumSquares]Piece
	for i, row := range startupRows {
		for j, r := range row {
			if pc, ok := ParsePiece(r); ok {
				ret[NewSquare(ColLeft+j, RowTop+i)] = pc
			}
		}
	}
	return ret
}()

// pieceSquareRanks holds the positional value per role from Red's point of
// view, row 0 at Black's back rank. Black reads the expanded table through
// the mirrored square.
var pieceSquareRanks = [NumRoles][10][9]int32{
	King: {
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 2, 2, 2, 0, 0, 0},
		{0, 0, 0, 11, 15, 11, 0, 0, 0},
	},
	Advisor: {
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 18, 0, 18, 0, 0, 0},
		{0, 0, 0, 0, 23, 0, 0, 0, 0},
		{0, 0, 0, 20, 0, 20, 0, 0, 0},
	},
	Bishop: {
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 20, 0, 0, 0, 20, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{18, 0, 0, 0, 23, 0, 0, 0, 18},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 20, 0, 0, 0, 20, 0, 0},
	},
	Knight: {
		{90, 90, 90, 96, 90, 96, 90, 90, 90},
		{90, 96, 103, 97, 94, 97, 103, 96, 90},
		{92, 98, 99, 103, 99, 103, 99, 98, 92},
		{93, 108, 100, 107, 100, 107, 100, 108, 93},
		{90, 100, 99, 103, 104, 103, 99, 100, 90},
		{90, 98, 101, 102, 103, 102, 101, 98, 90},
		{92, 94, 98, 95, 98, 95, 98, 94, 92},
		{93, 92, 94, 95, 92, 95, 94, 92, 93},
		{85, 90, 92, 93, 78, 93, 92, 90, 85},
		{88, 85, 90, 88, 90, 88, 90, 85, 88},
	},
	Rook: {
		{206, 208, 207, 213, 214, 213, 207, 208, 206},
		{206, 212, 209, 216, 233, 216, 209, 212, 206},
		{206, 208, 207, 214, 216, 214, 207, 208, 206},
		{206, 213, 213, 216, 216, 216, 213, 213, 206},
		{208, 211, 211, 214, 215, 214, 211, 211, 208},
		{208, 212, 212, 214, 215, 214, 212, 212, 208},
		{204, 209, 204, 212, 214, 212, 204, 209, 204},
		{198, 208, 204, 212, 212, 212, 204, 208, 198},
		{200, 208, 206, 212, 200, 212, 206, 208, 200},
		{194, 206, 204, 212, 200, 212, 204, 206, 194},
	},
	Cannon: {
		{100, 100, 96, 91, 90, 91, 96, 100, 100},
		{98, 98, 96, 92, 89, 92, 96, 98, 98},
		{97, 97, 96, 91, 92, 91, 96, 97, 97},
		{96, 99, 99, 98, 100, 98, 99, 99, 96},
		{96, 96, 96, 96, 100, 96, 96, 96, 96},
		{95, 96, 99, 96, 100, 96, 99, 96, 95},
		{96, 96, 96, 96, 96, 96, 96, 96, 96},
		{97, 96, 100, 99, 101, 99, 100, 96, 97},
		{96, 97, 98, 98, 98, 98, 98, 97, 96},
		{96, 96, 97, 99, 99, 99, 97, 96, 96},
	},
	Pawn: {
		{9, 9, 9, 11, 13, 11, 9, 9, 9},
		{19, 24, 34, 42, 44, 42, 34, 24, 19},
		{19, 24, 32, 37, 37, 37, 32, 24, 19},
		{19, 23, 27, 29, 30, 29, 27, 23, 19},
		{14, 18, 20, 27, 29, 27, 20, 18, 14},
		{7, 0, 13, 0, 16, 0, 13, 0, 7},
		{7, 0, 7, 0, 15, 0, 7, 0, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

var pieceSquare = func() [NumRoles][NumSquares]int32 {
	var ret [NumRoles][NumSquares]int32
	for role := range pieceSquareRanks {
		for i, row := range pieceSquareRanks[role] {
			for j, v := range row {
				ret[role][NewSquare(ColLeft+j, RowTop+i)] = v
			}
		}
	}
	return ret
}()
