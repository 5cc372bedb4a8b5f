package chesslib

import (
	"errors"
	"fmt"
)

// Apply plays m on the position.
//
// The piece on the source square is found by fixed-precedence lookup. An empty
// source square, or a move with an off-board square, makes the call a no-op.
// Moving a piece of the side not to move is a caller bug and panics with an
// error wrapping ErrTurnViolation before anything is changed. Any piece on the
// target square, of either color, is captured. Composite masks are refreshed
// and the side to move flips.
func (p *Position) Apply(m Move) {
	if err := p.apply(m); errors.Is(err, ErrTurnViolation) {
		panic(err)
	}
}

// TryApply is the strict form of Apply: an empty source square or a move of the
// wrong color is reported instead of being ignored or panicking. The position is
// unchanged when an error is returned.
func (p *Position) TryApply(m Move) error {
	return p.apply(m)
}

func (p *Position) apply(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, m)
	}
	moving := p.PieceAt(m.From)
	if moving == NoPiece {
		return ErrEmptySourceSquare
	}
	if moving.Color() != p.sideToMove {
		return fmt.Errorf("%w: attempted to move a %v piece from %v during %v's turn",
			ErrTurnViolation, moving.Color(), m.From, p.sideToMove)
	}

	toBit := m.To.Bit()
	if captured := p.PieceAt(m.To); captured != NoPiece {
		*p.mask(captured) &^= toBit
	}
	bb := p.mask(moving)
	*bb &^= m.From.Bit()
	*bb |= toBit

	p.updateComposites()
	p.sideToMove = p.sideToMove.Other()
	return nil
}

// ApplyText parses s and applies it. Text that does not parse is skipped
// without error; use ParseMove and TryApply to observe failures.
func (p *Position) ApplyText(s string) {
	m, err := ParseMove(s)
	if err != nil {
		return
	}
	p.Apply(m)
}

// ApplyMoves applies each move in order.
func (p *Position) ApplyMoves(moves []Move) {
	for _, m := range moves {
		p.Apply(m)
	}
}

// ApplyTexts applies each move string in order with ApplyText semantics.
func (p *Position) ApplyTexts(texts []string) {
	for _, s := range texts {
		p.ApplyText(s)
	}
}
