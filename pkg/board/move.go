package board

import "fmt"

// Move packs the source and destination squares of a move into 16 bits:
// source in the low byte, destination in the high byte. The zero value is the
// "no move" sentinel. Captures are not encoded; they are recovered at make
// time and handed back to undo.
type Move uint16

const NoMove Move = 0

func NewMove(src, dst Square) Move {
	return Move(src) | Move(dst)<<8
}

// ParseMove parses a move in coordinate notation, such as "h2e2".
func ParseMove(str string) (Move, error) {
	if len(str) != 4 {
		return NoMove, fmt.Errorf("invalid move: '%v'", str)
	}
	src, err := ParseSquare(str[:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	dst, err := ParseSquare(str[2:])
	if err != nil {
		return NoMove, fmt.Errorf("invalid to: '%v': %v", str, err)
	}
	return NewMove(src, dst), nil
}

func (m Move) Src() Square {
	return Square(m & 0xff)
}

func (m Move) Dst() Square {
	return Square(m >> 8)
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.Src(), m.Dst())
}
