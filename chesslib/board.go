// Package chesslib is a bitboard chess position with move application and
// pseudo-legal move generation.
package chesslib

import (
	"fmt"
	"math/bits"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// lookupOrder is the fixed precedence used to find the piece on a square.
var lookupOrder = [12]Piece{
	WhitePawn, BlackPawn,
	WhiteKnight, BlackKnight,
	WhiteBishop, BlackBishop,
	WhiteRook, BlackRook,
	WhiteQueen, BlackQueen,
	WhiteKing, BlackKing,
}

// Bitboards exposes the per-piece bitboards for a color in a dragontooth-compatible layout.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Position is the piece placement for both sides plus the side to move.
//
// The composite masks (anyWhite, anyBlack, empty) are a cache over the twelve
// piece masks and are refreshed after every mutation. A Position is not safe
// for concurrent mutation.
type Position struct {
	// Piece bitboards for each piece type and color (index 0 = white, 1 = black)
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	anyWhite uint64
	anyBlack uint64
	empty    uint64

	sideToMove Color
}

// StartingPosition returns the standard initial position with White to move.
func StartingPosition() *Position {
	p := &Position{
		pawns:   [2]uint64{0x000000000000FF00, 0x00FF000000000000},
		knights: [2]uint64{B1.Bit() | G1.Bit(), B8.Bit() | G8.Bit()},
		bishops: [2]uint64{C1.Bit() | F1.Bit(), C8.Bit() | F8.Bit()},
		rooks:   [2]uint64{A1.Bit() | H1.Bit(), A8.Bit() | H8.Bit()},
		queens:  [2]uint64{D1.Bit(), D8.Bit()},
		kings:   [2]uint64{E1.Bit(), E8.Bit()},

		sideToMove: White,
	}
	p.updateComposites()
	return p
}

// NewPosition rebuilds a position from arbitrary bitboards. The All fields are
// ignored and recomputed. Overlapping piece masks are rejected.
func NewPosition(white, black Bitboards, side Color) (*Position, error) {
	p := &Position{sideToMove: side}
	for ci, bbs := range [2]Bitboards{white, black} {
		p.pawns[ci] = bbs.Pawns
		p.knights[ci] = bbs.Knights
		p.bishops[ci] = bbs.Bishops
		p.rooks[ci] = bbs.Rooks
		p.queens[ci] = bbs.Queens
		p.kings[ci] = bbs.Kings
	}
	if !p.disjoint() {
		return nil, ErrOverlappingMasks
	}
	p.updateComposites()
	return p, nil
}

// mask returns the bitboard that stores pc.
func (p *Position) mask(pc Piece) *uint64 {
	ci := int(pc.Color())
	switch pc.Type() {
	case PieceTypePawn:
		return &p.pawns[ci]
	case PieceTypeKnight:
		return &p.knights[ci]
	case PieceTypeBishop:
		return &p.bishops[ci]
	case PieceTypeRook:
		return &p.rooks[ci]
	case PieceTypeQueen:
		return &p.queens[ci]
	case PieceTypeKing:
		return &p.kings[ci]
	}
	panic(fmt.Sprintf("chesslib: no bitboard for piece %d", pc))
}

// updateComposites recomputes anyWhite, anyBlack and empty from the piece masks.
func (p *Position) updateComposites() {
	p.anyWhite = p.pawns[White] | p.knights[White] | p.bishops[White] |
		p.rooks[White] | p.queens[White] | p.kings[White]
	p.anyBlack = p.pawns[Black] | p.knights[Black] | p.bishops[Black] |
		p.rooks[Black] | p.queens[Black] | p.kings[Black]
	p.empty = ^(p.anyWhite | p.anyBlack)
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	bit := sq.Bit()
	for _, pc := range lookupOrder {
		if *p.mask(pc)&bit != 0 {
			return pc
		}
	}
	return NoPiece
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// AnyWhite returns the union of White's piece masks.
func (p *Position) AnyWhite() uint64 { return p.anyWhite }

// AnyBlack returns the union of Black's piece masks.
func (p *Position) AnyBlack() uint64 { return p.anyBlack }

// Empty returns the unoccupied squares.
func (p *Position) Empty() uint64 { return p.empty }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (p *Position) ColorOccupancy(c Color) uint64 {
	if c == Black {
		return p.anyBlack
	}
	return p.anyWhite
}

// Bitboards returns the per-piece bitboards for the requested side.
func (p *Position) Bitboards(c Color) Bitboards {
	ci := int(c)
	return Bitboards{
		Pawns:   p.pawns[ci],
		Knights: p.knights[ci],
		Bishops: p.bishops[ci],
		Rooks:   p.rooks[ci],
		Queens:  p.queens[ci],
		Kings:   p.kings[ci],
		All:     p.ColorOccupancy(c),
	}
}

// Count returns the number of pieces of kind pc on the board.
func (p *Position) Count(pc Piece) int {
	if pc.Type() == PieceTypeNone || pc.Type() > PieceTypeKing {
		return 0
	}
	return bits.OnesCount64(*p.mask(pc))
}

// disjoint reports whether no square is claimed by two piece masks.
func (p *Position) disjoint() bool {
	var seen uint64
	for _, pc := range lookupOrder {
		m := *p.mask(pc)
		if seen&m != 0 {
			return false
		}
		seen |= m
	}
	return true
}

// Validate checks that the piece masks are pairwise disjoint and that the
// composite masks match them.
func (p *Position) Validate() bool {
	if !p.disjoint() {
		return false
	}
	q := *p
	q.updateComposites()
	return q.anyWhite == p.anyWhite && q.anyBlack == p.anyBlack && q.empty == p.empty &&
		p.anyWhite&p.anyBlack == 0 && p.anyWhite|p.anyBlack|p.empty == ^uint64(0)
}

// ==========================
// Bitboard helpers
// ==========================

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
