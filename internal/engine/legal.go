package engine

// LegalMoves returns the pseudo-legal moves of c that do not leave c's own
// king attacked. Each candidate is played on a copy of the board and the
// result is tested with IsInCheck.
func LegalMoves(b Board, c Color) []Move {
	pseudo := PseudoLegalMoves(b, c)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !IsInCheck(ApplyMove(b, m), c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom narrows LegalMoves to the piece standing on from.
func LegalMovesFrom(b Board, c Color, from Square) []Move {
	if !from.Valid() {
		return nil
	}
	p := b.At(from)
	if p.IsEmpty() || p.Color != c {
		return nil
	}
	var moves []Move
	for _, m := range LegalMoves(b, c) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMove reports whether c has at least one legal move. It stops at the
// first one found.
func HasLegalMove(b Board, c Color) bool {
	for _, m := range PseudoLegalMoves(b, c) {
		if !IsInCheck(ApplyMove(b, m), c) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of c's legal moves in b.
func IsLegal(b Board, c Color, m Move) bool {
	for _, legal := range LegalMoves(b, c) {
		if legal == m {
			return true
		}
	}
	return false
}
