package chesslib

import "fmt"

// Move is an ordered (source, target) square pair. Promotion, castling and
// en passant are not modelled.
type Move struct {
	From Square
	To   Square
}

// ParseMove parses the four-character text form, e.g. "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q is not 4 characters", ErrInvalidMoveFormat, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMoveFormat, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMoveFormat, err)
	}
	return Move{From: from, To: to}, nil
}

// ParseMoves converts every string, stopping at the first malformed one.
func ParseMoves(texts []string) ([]Move, error) {
	moves := make([]Move, 0, len(texts))
	for _, s := range texts {
		m, err := ParseMove(s)
		if err != nil {
			return moves, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String produces the four-character form (e.g. "e2e4").
func (m Move) String() string { return m.From.String() + m.To.String() }
