package engine

import "math/bits"

type direction struct {
	dRank, dFile int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = queenDirs
)

func slidingDirs(kind PieceKind) []direction {
	switch kind {
	case Bishop:
		return bishopDirs
	case Rook:
		return rookDirs
	case Queen:
		return queenDirs
	}
	return nil
}

// forward is the rank step a pawn of color c moves by.
func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// SquareSet is a set of squares, one bit per board index.
type SquareSet uint64

func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq.index())
}

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.index())) != 0
}

func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members in board index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, squareAt(bits.TrailingZeros64(rest)))
	}
	return out
}

// AttackedSquares returns every square c's pieces threaten, ignoring whose
// turn it is and whether c's own king would be exposed. Pawns threaten both
// forward diagonals even when empty; slider rays include the first occupied
// square and stop there.
func AttackedSquares(b Board, c Color) SquareSet {
	var attacked SquareSet
	for i, p := range b.squares {
		if p.IsEmpty() || p.Color != c {
			continue
		}
		from := squareAt(i)
		switch p.Kind {
		case Pawn:
			for _, dFile := range []int{-1, 1} {
				if target := from.offset(forward(c), dFile); target.Valid() {
					attacked = attacked.Add(target)
				}
			}
		case Knight, King:
			dirs := knightDirs
			if p.Kind == King {
				dirs = kingDirs
			}
			for _, d := range dirs {
				if target := from.offset(d.dRank, d.dFile); target.Valid() {
					attacked = attacked.Add(target)
				}
			}
		case Bishop, Rook, Queen:
			for _, d := range slidingDirs(p.Kind) {
				for target := from.offset(d.dRank, d.dFile); target.Valid(); target = target.offset(d.dRank, d.dFile) {
					attacked = attacked.Add(target)
					if !b.At(target).IsEmpty() {
						break
					}
				}
			}
		}
	}
	return attacked
}

// IsInCheck reports whether c's king stands on a square the other side
// attacks. A side without a king is never in check.
func IsInCheck(b Board, c Color) bool {
	king, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return AttackedSquares(b, c.Opponent()).Has(king)
}
