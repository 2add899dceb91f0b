package engine

// PseudoLegalMoves returns every move c's pieces could make under the
// piece-movement rules alone, without regard to the mover's king safety.
// Moves onto a square holding a king are never produced. The order of the
// returned moves is unspecified.
func PseudoLegalMoves(b Board, c Color) []Move {
	moves := make([]Move, 0, 48)
	for i, p := range b.squares {
		if p.IsEmpty() || p.Color != c {
			continue
		}
		from := squareAt(i)
		switch p.Kind {
		case Pawn:
			moves = appendPawnMoves(moves, b, from, c)
		case Knight:
			moves = appendStepMoves(moves, b, from, c, knightDirs)
		case King:
			moves = appendStepMoves(moves, b, from, c, kingDirs)
		case Bishop, Rook, Queen:
			moves = appendSlidingMoves(moves, b, from, c, slidingDirs(p.Kind))
		}
	}
	return moves
}

func startRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// canLandOn reports whether a piece of color c may finish on target: the
// square is empty or holds an enemy piece other than the king.
func canLandOn(b Board, target Square, c Color) bool {
	occupant := b.At(target)
	if occupant.IsEmpty() {
		return true
	}
	return occupant.Color != c && occupant.Kind != King
}

func appendPawnMoves(moves []Move, b Board, from Square, c Color) []Move {
	dir := forward(c)
	one := from.offset(dir, 0)
	if one.Valid() && b.At(one).IsEmpty() {
		moves = append(moves, Move{From: from, To: one})
		two := from.offset(2*dir, 0)
		if from.Rank == startRank(c) && two.Valid() && b.At(two).IsEmpty() {
			moves = append(moves, Move{From: from, To: two})
		}
	}
	for _, dFile := range []int{-1, 1} {
		target := from.offset(dir, dFile)
		if !target.Valid() || b.At(target).IsEmpty() {
			continue
		}
		if canLandOn(b, target, c) {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}

func appendStepMoves(moves []Move, b Board, from Square, c Color, dirs []direction) []Move {
	for _, d := range dirs {
		target := from.offset(d.dRank, d.dFile)
		if target.Valid() && canLandOn(b, target, c) {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}

func appendSlidingMoves(moves []Move, b Board, from Square, c Color, dirs []direction) []Move {
	for _, d := range dirs {
		for target := from.offset(d.dRank, d.dFile); target.Valid(); target = target.offset(d.dRank, d.dFile) {
			if b.At(target).IsEmpty() {
				moves = append(moves, Move{From: from, To: target})
				continue
			}
			if canLandOn(b, target, c) {
				moves = append(moves, Move{From: from, To: target})
			}
			break
		}
	}
	return moves
}
