package engine

import "errors"

// Sentinel errors returned by the checked entry points of the engine. The
// move generators themselves never fail.
var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidFEN    = errors.New("invalid FEN string")

	// ErrNoPiece means the move's source square is empty.
	ErrNoPiece = errors.New("no piece at from square")

	// ErrWrongColor means the piece on the source square belongs to the
	// side that is not moving.
	ErrWrongColor = errors.New("piece belongs to the other side")

	// ErrIllegalMove means the move is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")
)
