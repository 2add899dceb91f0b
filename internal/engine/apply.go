package engine

import (
	"fmt"
)

// Move is an ordered (from, to) pair. Promotion is implicit and always to a
// queen.
type Move struct {
	From Square
	To   Square
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	return Move{From: from, To: to}, nil
}

func promotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// ApplyMove returns the board after m is played on b; b is not modified.
// The source square is emptied and the destination overwritten, so a capture
// removes exactly one piece. A pawn arriving on the far rank becomes a queen.
//
// m.From must hold a piece. ApplyMove does not validate its argument; callers
// pass moves obtained from LegalMoves, or use ApplyLegalMove.
func ApplyMove(b Board, m Move) Board {
	next := b.Copy()
	piece := next.squares[m.From.index()]
	next.squares[m.From.index()] = Piece{}
	if piece.Kind == Pawn && m.To.Rank == promotionRank(piece.Color) {
		piece = Piece{Kind: Queen, Color: piece.Color}
	}
	next.squares[m.To.index()] = piece
	return next
}

// ApplyLegalMove is the checked form of ApplyMove: it rejects moves that are
// not legal for c in b.
func ApplyLegalMove(b Board, c Color, m Move) (Board, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return b, fmt.Errorf("%w: %v", ErrInvalidMove, m)
	}
	p := b.At(m.From)
	if p.IsEmpty() {
		return b, fmt.Errorf("%w: %s", ErrNoPiece, m.From)
	}
	if p.Color != c {
		return b, fmt.Errorf("%w: %s", ErrWrongColor, m.From)
	}
	if !IsLegal(b, c, m) {
		return b, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return ApplyMove(b, m), nil
}

// IsCapture reports whether m lands on an occupied square of b.
func IsCapture(b Board, m Move) bool {
	return !b.At(m.To).IsEmpty()
}
