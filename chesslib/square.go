package chesslib

import "fmt"

// Square represents a board position (0-63).
// Rank-major: a1=0, h1=7, a8=56, h8=63.
type Square int8

const NoSquare Square = -1

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

var fileLetters = [8]string{"a", "b", "c", "d", "e", "f", "g", "h"}

// IndexOf returns the square on the given zero-based file and rank.
func IndexOf(file, rank int) Square { return Square(rank*8 + file) }

// SquareFromIndex converts a raw bit index, rejecting anything outside 0..63.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i > 63 {
		return NoSquare, fmt.Errorf("%w: index %d", ErrInvalidCoordinate, i)
	}
	return Square(i), nil
}

// ParseSquare parses algebraic notation (e.g. "e4").
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return IndexOf(int(file-'a'), int(rank-'1')), nil
}

// FileLetter maps a zero-based file to "a".."h".
func FileLetter(file int) (string, error) {
	if file < 0 || file > 7 {
		return "", fmt.Errorf("%w: %d", ErrInvalidFile, file)
	}
	return fileLetters[file], nil
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool { return sq >= 0 && sq < 64 }

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Bit returns the single-bit mask for sq.
func (sq Square) Bit() uint64 { return uint64(1) << uint(sq) }

// String returns the coordinate text, or "-" for an off-board square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}
