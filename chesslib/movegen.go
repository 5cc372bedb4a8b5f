package chesslib

// GenerateMoves returns all pseudo-legal moves for the side to move.
// It allocates a new slice; prefer GenerateMovesInto to reuse buffers in hot paths.
func (p *Position) GenerateMoves() []Move { return p.GenerateMovesInto(make([]Move, 0, 64)) }

// GenerateMovesInto appends all pseudo-legal moves for the side to move into dst
// and returns it. The dst slice is truncated (len=0) first.
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	return p.generateInto(dst[:0], p.sideToMove)
}

// GenerateMovesFor returns the pseudo-legal moves color c would have if it were
// to move.
func (p *Position) GenerateMovesFor(c Color) []Move {
	return p.generateInto(make([]Move, 0, 64), c)
}

// GenerateMoveStrings returns GenerateMoves in text form.
func (p *Position) GenerateMoveStrings() []string {
	moves := p.GenerateMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// generateInto is the core generator. Pseudo-legal only: king safety,
// castling, en passant and promotion are not considered.
func (p *Position) generateInto(moves []Move, side Color) []Move {
	us := int(side)
	own := p.ColorOccupancy(side)
	enemy := p.ColorOccupancy(side.Other())

	// Pawns are handled in bulk: every source relates to its target by a
	// fixed offset.
	pawns := p.pawns[us]
	if side == White {
		moves = appendOffset(moves, WhitePawnsAbleToPush(pawns, p.empty), 8)
		moves = appendOffset(moves, WhitePawnsAbleToDoublePush(pawns, p.empty), 16)
		moves = appendFromTargets(moves, WhitePawnEastAttacks(pawns)&enemy, -9)
		moves = appendFromTargets(moves, WhitePawnWestAttacks(pawns)&enemy, -7)
	} else {
		moves = appendOffset(moves, BlackPawnsAbleToPush(pawns, p.empty), -8)
		moves = appendOffset(moves, BlackPawnsAbleToDoublePush(pawns, p.empty), -16)
		moves = appendFromTargets(moves, BlackPawnEastAttacks(pawns)&enemy, 7)
		moves = appendFromTargets(moves, BlackPawnWestAttacks(pawns)&enemy, 9)
	}

	// Knights
	for knights := p.knights[us]; knights != 0; {
		from := uint64(1) << uint(popLSB(&knights))
		moves = expand(moves, from, KnightTargets(from, own))
	}

	// Bishops
	for bishops := p.bishops[us]; bishops != 0; {
		from := uint64(1) << uint(popLSB(&bishops))
		moves = expand(moves, from, BishopTargets(from, own, enemy))
	}

	// Rooks
	for rooks := p.rooks[us]; rooks != 0; {
		from := uint64(1) << uint(popLSB(&rooks))
		moves = expand(moves, from, RookTargets(from, own, enemy))
	}

	// Queens
	for queens := p.queens[us]; queens != 0; {
		from := uint64(1) << uint(popLSB(&queens))
		moves = expand(moves, from, QueenTargets(from, own, enemy))
	}

	// King (normally one, but pseudo-legal play can leave zero)
	for kings := p.kings[us]; kings != 0; {
		from := uint64(1) << uint(popLSB(&kings))
		moves = expand(moves, from, KingTargets(from, own))
	}

	return moves
}

// appendOffset emits one move per source bit, with target = source + offset.
func appendOffset(moves []Move, sources uint64, offset int) []Move {
	for sources != 0 {
		from := popLSB(&sources)
		moves = append(moves, Move{From: Square(from), To: Square(from + offset)})
	}
	return moves
}

// appendFromTargets emits one move per target bit, with source = target + offset.
func appendFromTargets(moves []Move, targets uint64, offset int) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		moves = append(moves, Move{From: Square(to + offset), To: Square(to)})
	}
	return moves
}

// expand decomposes a (sources, targets) bitboard pair into individual moves.
// Callers pass a single source bit.
func expand(moves []Move, sources, targets uint64) []Move {
	for sources != 0 {
		from := Square(popLSB(&sources))
		for t := targets; t != 0; {
			moves = append(moves, Move{From: from, To: Square(popLSB(&t))})
		}
	}
	return moves
}

// ==========================
// Perft
// ==========================

// Perft counts leaf nodes of the pseudo-legal move tree to the given depth.
// The position is not modified.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 128)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.GenerateMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *p
		child.Apply(m)
		nodes += perftRec(&child, depth-1, pc)
	}
	return nodes
}

// PerftDivide returns a map from each root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateMoves() {
		child := *p
		child.Apply(m)
		result[m] = Perft(&child, depth-1)
	}
	return result
}
