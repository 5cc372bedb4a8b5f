package chesslib

import "golang.org/x/exp/rand"

// AllMoves passed as the count to SampleMoves returns the full enumeration.
const AllMoves = -1

// NewRand returns a random source for SampleMoves. Tests fix the seed to get
// a reproducible selection.
func NewRand(seed uint64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// SampleMoves returns min(count, total) distinct pseudo-legal moves chosen
// uniformly at random with r. A negative count returns the full enumeration in
// generation order and does not touch r; zero returns an empty slice.
func (p *Position) SampleMoves(count int, r *rand.Rand) []Move {
	moves := p.GenerateMoves()
	if count < 0 {
		return moves
	}
	if count > len(moves) {
		count = len(moves)
	}
	// Partial Fisher-Yates: the first count slots end up a uniform sample.
	for i := 0; i < count; i++ {
		j := i + r.Intn(len(moves)-i)
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves[:count:count]
}

// NextMove returns one randomly chosen pseudo-legal move, or false when the
// side to move has none.
func (p *Position) NextMove(r *rand.Rand) (Move, bool) {
	moves := p.SampleMoves(1, r)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[0], true
}
