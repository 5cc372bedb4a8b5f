package chesslib

import "errors"

// Parse errors are returned to the caller. ErrTurnViolation is the one exception:
// Apply panics with it, TryApply returns it.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidFile       = errors.New("file index out of range")
	ErrInvalidMoveFormat = errors.New("invalid move format")
	ErrTurnViolation     = errors.New("piece does not belong to the side to move")
	ErrEmptySourceSquare = errors.New("no piece on source square")
	ErrOverlappingMasks  = errors.New("piece bitboards overlap")
	ErrInvalidFEN        = errors.New("invalid FEN")
)
