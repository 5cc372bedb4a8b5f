package chesslib

// File and rank masks. Shifts that cross the a/h edge must be masked before
// the shift is applied; once shifted the edge information is gone.
const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = 0x8080808080808080

	notAFile uint64 = ^fileA
	notHFile uint64 = ^fileH

	rank4 uint64 = 0x00000000FF000000
	rank5 uint64 = 0x000000FF00000000
)

// knightMoves[sq] is the set of squares a knight on sq can reach on an empty board.
var knightMoves [64]uint64

func init() {
	initKnightTable()
}

// initKnightTable precomputes knight offsets, discarding any that leave the board.
func initKnightTable() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range knightOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				mask |= uint64(1) << uint(rf*8+ff)
			}
		}
		knightMoves[sq] = mask
	}
}

// ==========================
// Pawns
// ==========================

// WhitePawnsAbleToPush returns the white pawns whose square in front is empty.
func WhitePawnsAbleToPush(wp, empty uint64) uint64 { return (empty >> 8) & wp }

// BlackPawnsAbleToPush returns the black pawns whose square in front is empty.
func BlackPawnsAbleToPush(bp, empty uint64) uint64 { return (empty << 8) & bp }

// WhitePawnsAbleToDoublePush returns white pawns on rank 2 with both rank 3 and
// rank 4 empty in front of them.
func WhitePawnsAbleToDoublePush(wp, empty uint64) uint64 {
	emptyRank3 := ((empty & rank4) >> 8) & empty
	return WhitePawnsAbleToPush(wp, emptyRank3)
}

// BlackPawnsAbleToDoublePush returns black pawns on rank 7 with both rank 6 and
// rank 5 empty in front of them.
func BlackPawnsAbleToDoublePush(bp, empty uint64) uint64 {
	emptyRank6 := ((empty & rank5) << 8) & empty
	return BlackPawnsAbleToPush(bp, emptyRank6)
}

// WhitePawnEastAttacks returns the squares attacked toward the h-file.
func WhitePawnEastAttacks(wp uint64) uint64 { return (wp & notHFile) << 9 }

// WhitePawnWestAttacks returns the squares attacked toward the a-file.
func WhitePawnWestAttacks(wp uint64) uint64 { return (wp & notAFile) << 7 }

// BlackPawnEastAttacks returns the squares attacked toward the h-file.
func BlackPawnEastAttacks(bp uint64) uint64 { return (bp & notHFile) >> 7 }

// BlackPawnWestAttacks returns the squares attacked toward the a-file.
func BlackPawnWestAttacks(bp uint64) uint64 { return (bp & notAFile) >> 9 }

func WhitePawnAttacks(wp uint64) uint64 { return WhitePawnEastAttacks(wp) | WhitePawnWestAttacks(wp) }

func BlackPawnAttacks(bp uint64) uint64 { return BlackPawnEastAttacks(bp) | BlackPawnWestAttacks(bp) }

// WhitePawnCaptureTargets returns the black-occupied squares white pawns can capture on.
func WhitePawnCaptureTargets(wp, black uint64) uint64 { return WhitePawnAttacks(wp) & black }

// BlackPawnCaptureTargets returns the white-occupied squares black pawns can capture on.
func BlackPawnCaptureTargets(bp, white uint64) uint64 { return BlackPawnAttacks(bp) & white }

// ==========================
// Knights and kings
// ==========================

// KnightTargets returns every square reachable by the given knights that is not
// occupied by a friendly piece.
func KnightTargets(knights, own uint64) uint64 {
	var targets uint64
	for knights != 0 {
		targets |= knightMoves[popLSB(&knights)]
	}
	return targets &^ own
}

// KingTargets returns the adjacent squares not occupied by a friendly piece.
func KingTargets(king, own uint64) uint64 {
	var targets uint64
	for _, d := range allDirections {
		targets |= d.step(king)
	}
	return targets &^ own
}

// ==========================
// Sliding pieces
// ==========================

type direction uint8

const (
	north direction = iota
	south
	east
	west
	northEast
	northWest
	southEast
	southWest
)

var (
	rookDirections   = [4]direction{north, south, east, west}
	bishopDirections = [4]direction{northEast, northWest, southEast, southWest}
	allDirections    = [8]direction{north, south, east, west, northEast, northWest, southEast, southWest}
)

// step moves every set bit one square in direction d. Bits that would leave the
// board are dropped.
func (d direction) step(b uint64) uint64 {
	switch d {
	case north:
		return b << 8
	case south:
		return b >> 8
	case east:
		return (b & notHFile) << 1
	case west:
		return (b & notAFile) >> 1
	case northEast:
		return (b & notHFile) << 9
	case northWest:
		return (b & notAFile) << 7
	case southEast:
		return (b & notHFile) >> 7
	case southWest:
		return (b & notAFile) >> 9
	}
	return 0
}

// slide walks outward from src one square at a time. Empty squares are quiet
// targets and the walk continues through them; the first occupied square ends
// the ray and is a target only when it holds an enemy piece.
func slide(src, own, enemy uint64, d direction) uint64 {
	empty := ^(own | enemy)
	var targets uint64
	for ray := d.step(src); ray != 0; ray = d.step(ray & empty) {
		targets |= ray &^ own
	}
	return targets
}

func slideAll(src, own, enemy uint64, dirs []direction) uint64 {
	var targets uint64
	for _, d := range dirs {
		targets |= slide(src, own, enemy, d)
	}
	return targets
}

// BishopTargets returns the diagonal quiet moves and captures from src.
func BishopTargets(src, own, enemy uint64) uint64 {
	return slideAll(src, own, enemy, bishopDirections[:])
}

// RookTargets returns the orthogonal quiet moves and captures from src.
func RookTargets(src, own, enemy uint64) uint64 {
	return slideAll(src, own, enemy, rookDirections[:])
}

// QueenTargets returns the union of rook and bishop targets from src.
func QueenTargets(src, own, enemy uint64) uint64 {
	return slideAll(src, own, enemy, allDirections[:])
}
