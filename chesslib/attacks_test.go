package chesslib_test

import (
	"math/bits"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	cl "chesslib/chesslib"
)

func bit(sqs ...cl.Square) uint64 {
	var b uint64
	for _, sq := range sqs {
		b |= sq.Bit()
	}
	return b
}

func TestWhitePawnAttacks(t *testing.T) {
	wp := bit(cl.E4)
	if got := cl.WhitePawnEastAttacks(wp); got != bit(cl.F5) {
		t.Errorf("east: got %#x want f5", got)
	}
	if got := cl.WhitePawnWestAttacks(wp); got != bit(cl.D5) {
		t.Errorf("west: got %#x want d5", got)
	}
	if got := cl.WhitePawnAttacks(wp); got != bit(cl.D5, cl.F5) {
		t.Errorf("all: got %#x want d5|f5", got)
	}
}

func TestBlackPawnAttacks(t *testing.T) {
	bp := bit(cl.E5)
	if got := cl.BlackPawnEastAttacks(bp); got != bit(cl.F4) {
		t.Errorf("east: got %#x want f4", got)
	}
	if got := cl.BlackPawnWestAttacks(bp); got != bit(cl.D4) {
		t.Errorf("west: got %#x want d4", got)
	}
	if got := cl.BlackPawnAttacks(bp); got != bit(cl.D4, cl.F4) {
		t.Errorf("all: got %#x want d4|f4", got)
	}
}

func TestPawnAttacksDoNotWrap(t *testing.T) {
	cases := []struct {
		name       string
		fn         func(uint64) uint64
		from, want uint64
	}{
		{"white a2 east", cl.WhitePawnEastAttacks, bit(cl.A2), bit(cl.B3)},
		{"white a2 west", cl.WhitePawnWestAttacks, bit(cl.A2), 0},
		{"white h2 east", cl.WhitePawnEastAttacks, bit(cl.H2), 0},
		{"white h2 west", cl.WhitePawnWestAttacks, bit(cl.H2), bit(cl.G3)},
		{"black a7 east", cl.BlackPawnEastAttacks, bit(cl.A7), bit(cl.B6)},
		{"black a7 west", cl.BlackPawnWestAttacks, bit(cl.A7), 0},
		{"black h7 east", cl.BlackPawnEastAttacks, bit(cl.H7), 0},
		{"black h7 west", cl.BlackPawnWestAttacks, bit(cl.H7), bit(cl.G6)},
	}
	for _, c := range cases {
		if got := c.fn(c.from); got != c.want {
			t.Errorf("%s: got %#x want %#x", c.name, got, c.want)
		}
	}
}

func TestPawnCaptureTargets(t *testing.T) {
	black := bit(cl.D5, cl.F5)
	if got := cl.WhitePawnCaptureTargets(bit(cl.E4), black); got != black {
		t.Errorf("white: got %#x want %#x", got, black)
	}
	white := bit(cl.D4, cl.F4)
	if got := cl.BlackPawnCaptureTargets(bit(cl.E5), white); got != white {
		t.Errorf("black: got %#x want %#x", got, white)
	}
	if got := cl.WhitePawnCaptureTargets(bit(cl.E4), 0); got != 0 {
		t.Errorf("no enemies: got %#x", got)
	}
	// Two pawns sharing targets
	if got := cl.WhitePawnCaptureTargets(bit(cl.E4, cl.F4), bit(cl.F5, cl.G5)); got != bit(cl.F5, cl.G5) {
		t.Errorf("multiple: got %#x", got)
	}
}

func TestPawnPushes(t *testing.T) {
	start := cl.StartingPosition()
	wp := start.Bitboards(cl.White).Pawns
	bp := start.Bitboards(cl.Black).Pawns
	empty := start.Empty()

	if got := cl.WhitePawnsAbleToPush(wp, empty); got != wp {
		t.Errorf("white single: got %#x want %#x", got, wp)
	}
	if got := cl.WhitePawnsAbleToDoublePush(wp, empty); got != wp {
		t.Errorf("white double: got %#x want %#x", got, wp)
	}
	if got := cl.BlackPawnsAbleToPush(bp, empty); got != bp {
		t.Errorf("black single: got %#x want %#x", got, bp)
	}
	if got := cl.BlackPawnsAbleToDoublePush(bp, empty); got != bp {
		t.Errorf("black double: got %#x want %#x", got, bp)
	}

	// Blocker directly in front stops both pushes.
	blocked := empty &^ bit(cl.E3, cl.D6)
	if got := cl.WhitePawnsAbleToPush(wp, blocked); got&bit(cl.E2) != 0 {
		t.Errorf("e2 should not push with e3 occupied")
	}
	if got := cl.WhitePawnsAbleToDoublePush(wp, blocked); got&bit(cl.E2) != 0 {
		t.Errorf("e2 should not double push with e3 occupied")
	}
	if got := cl.BlackPawnsAbleToDoublePush(bp, blocked); got&bit(cl.D7) != 0 {
		t.Errorf("d7 should not double push with d6 occupied")
	}

	// Blocker two squares ahead only stops the double push.
	far := empty &^ bit(cl.E4, cl.D5)
	if got := cl.WhitePawnsAbleToPush(wp, far); got&bit(cl.E2) == 0 {
		t.Errorf("e2 should still single push with e4 occupied")
	}
	if got := cl.WhitePawnsAbleToDoublePush(wp, far); got&bit(cl.E2) != 0 {
		t.Errorf("e2 should not double push with e4 occupied")
	}
	if got := cl.BlackPawnsAbleToDoublePush(bp, far); got&bit(cl.D7) != 0 {
		t.Errorf("d7 should not double push with d5 occupied")
	}

	// Only pawns on their starting rank may double push.
	if got := cl.WhitePawnsAbleToDoublePush(bit(cl.E3), ^bit(cl.E3)); got != 0 {
		t.Errorf("e3 pawn double push: got %#x", got)
	}
}

func TestKnightTargets(t *testing.T) {
	cases := []struct {
		name      string
		from, own uint64
		want      uint64
	}{
		{"e4 open", bit(cl.E4), 0, bit(cl.F6, cl.D6, cl.C5, cl.G5, cl.C3, cl.G3, cl.D2, cl.F2)},
		{"a1 corner", bit(cl.A1), 0, bit(cl.B3, cl.C2)},
		{"h8 corner", bit(cl.H8), 0, bit(cl.F7, cl.G6)},
		{"g1 start", bit(cl.G1), 0x000000000000FFFF, bit(cl.F3, cl.H3)},
		{"h4 edge", bit(cl.H4), 0, bit(cl.G6, cl.F5, cl.F3, cl.G2)},
	}
	for _, c := range cases {
		if got := cl.KnightTargets(c.from, c.own); got != c.want {
			t.Errorf("%s: got\n%swant\n%s", c.name, cl.BitboardString(got), cl.BitboardString(c.want))
		}
	}
}

func TestKingTargets(t *testing.T) {
	if got := cl.KingTargets(bit(cl.A1), 0); got != bit(cl.A2, cl.B1, cl.B2) {
		t.Errorf("a1: got %#x", got)
	}
	if got := cl.KingTargets(bit(cl.H4), 0); got != bit(cl.G3, cl.G4, cl.G5, cl.H3, cl.H5) {
		t.Errorf("h4: got %#x", got)
	}
	start := cl.StartingPosition()
	if got := cl.KingTargets(bit(cl.E1), start.AnyWhite()); got != 0 {
		t.Errorf("boxed-in king: got %#x", got)
	}
	if got := cl.KingTargets(bit(cl.E4), 0); bits.OnesCount64(got) != 8 {
		t.Errorf("e4 king: got %d targets", bits.OnesCount64(got))
	}
}

func TestSlidingRaysStopAtFirstBlocker(t *testing.T) {
	// Rook a1, enemy on a4: a2, a3, a4 plus the whole first rank.
	got := cl.RookTargets(bit(cl.A1), bit(cl.A1), bit(cl.A4))
	want := bit(cl.A2, cl.A3, cl.A4, cl.B1, cl.C1, cl.D1, cl.E1, cl.F1, cl.G1, cl.H1)
	if got != want {
		t.Errorf("rook a1: got\n%swant\n%s", cl.BitboardString(got), cl.BitboardString(want))
	}

	// Friendly blocker is excluded and ends the ray.
	got = cl.RookTargets(bit(cl.A1), bit(cl.A1, cl.A4), 0)
	want = bit(cl.A2, cl.A3, cl.B1, cl.C1, cl.D1, cl.E1, cl.F1, cl.G1, cl.H1)
	if got != want {
		t.Errorf("rook a1 own blocker: got\n%swant\n%s", cl.BitboardString(got), cl.BitboardString(want))
	}

	// Bishop c1: enemy d2 is captured, friendly d2 blocks.
	if got := cl.BishopTargets(bit(cl.C1), bit(cl.C1), bit(cl.D2)); got != bit(cl.D2, cl.B2, cl.A3) {
		t.Errorf("bishop c1 enemy d2: got %#x", got)
	}
	if got := cl.BishopTargets(bit(cl.C1), bit(cl.C1, cl.D2), 0); got != bit(cl.B2, cl.A3) {
		t.Errorf("bishop c1 own d2: got %#x", got)
	}

	// Queen from the starting square has nowhere to go.
	start := cl.StartingPosition()
	if got := cl.QueenTargets(bit(cl.D1), start.AnyWhite(), start.AnyBlack()); got != 0 {
		t.Errorf("queen d1 at start: got %#x", got)
	}
}

func TestSlidingRaysDoNotWrap(t *testing.T) {
	const rank1, fileH uint64 = 0xFF, 0x8080808080808080
	if got := cl.RookTargets(bit(cl.H1), bit(cl.H1), 0); got != (rank1|fileH)&^bit(cl.H1) {
		t.Errorf("rook h1: got\n%s", cl.BitboardString(got))
	}
	// h4 bishop: only the two diagonals toward the a-side.
	want := bit(cl.G5, cl.F6, cl.E7, cl.D8, cl.G3, cl.F2, cl.E1)
	if got := cl.BishopTargets(bit(cl.H4), bit(cl.H4), 0); got != want {
		t.Errorf("bishop h4: got\n%swant\n%s", cl.BitboardString(got), cl.BitboardString(want))
	}
	want = bit(cl.B5, cl.C6, cl.D7, cl.E8, cl.B3, cl.C2, cl.D1)
	if got := cl.BishopTargets(bit(cl.A4), bit(cl.A4), 0); got != want {
		t.Errorf("bishop a4: got\n%swant\n%s", cl.BitboardString(got), cl.BitboardString(want))
	}
}

// The magic-bitboard tables in dragontoothmg include the first blocker of
// either color, so masking out our own pieces must give the ray walk result.
func TestSlidingTargetsMatchDragontooth(t *testing.T) {
	r := cl.NewRand(0xC0DE)
	for trial := 0; trial < 200; trial++ {
		occ := r.Uint64() & r.Uint64()
		split := r.Uint64()
		for sq := 0; sq < 64; sq++ {
			src := uint64(1) << uint(sq)
			own := (occ & split) | src
			enemy := occ &^ split &^ src
			all := own | enemy

			rook := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), all) &^ own
			bishop := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), all) &^ own

			if got := cl.RookTargets(src, own, enemy); got != rook {
				t.Fatalf("rook sq=%d own=%#x enemy=%#x: got %#x want %#x", sq, own, enemy, got, rook)
			}
			if got := cl.BishopTargets(src, own, enemy); got != bishop {
				t.Fatalf("bishop sq=%d own=%#x enemy=%#x: got %#x want %#x", sq, own, enemy, got, bishop)
			}
			if got := cl.QueenTargets(src, own, enemy); got != rook|bishop {
				t.Fatalf("queen sq=%d own=%#x enemy=%#x: got %#x want %#x", sq, own, enemy, got, rook|bishop)
			}
		}
	}
}
