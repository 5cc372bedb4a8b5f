package chesslib

import "strings"

// Blank is the glyph for an empty square.
const Blank = " "

var glyphs = [15]string{
	WhitePawn:   "♙",
	WhiteKnight: "♘",
	WhiteBishop: "♗",
	WhiteRook:   "♖",
	WhiteQueen:  "♕",
	WhiteKing:   "♔",
	BlackPawn:   "♟",
	BlackKnight: "♞",
	BlackBishop: "♝",
	BlackRook:   "♜",
	BlackQueen:  "♛",
	BlackKing:   "♚",
}

// Glyph returns the Unicode chess symbol for pc, or Blank.
func Glyph(pc Piece) string {
	if int(pc) >= len(glyphs) || glyphs[pc] == "" {
		return Blank
	}
	return glyphs[pc]
}

// PieceUnicodeAt returns the glyph of the piece on the given coordinate
// (e.g. "e1" -> "♔"), or Blank for an empty square.
func (p *Position) PieceUnicodeAt(coordinate string) (string, error) {
	sq, err := ParseSquare(coordinate)
	if err != nil {
		return "", err
	}
	return Glyph(p.PieceAt(sq)), nil
}

// BitboardString renders a mask as eight rows, rank 8 first, with '1' for a set
// bit and '.' otherwise. Debugging aid only.
func BitboardString(bb uint64) string {
	var sb strings.Builder
	sb.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if bb&IndexOf(file, rank).Bit() != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String draws the position with rank and file labels.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteString(Glyph(p.PieceAt(IndexOf(file, rank))))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
