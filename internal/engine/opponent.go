package engine

import (
	"math/rand/v2"
)

// RandSource is the randomness the opponent draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// ChooseOpponentMove picks a move for c: uniformly among the legal captures
// when there is at least one, otherwise uniformly among all legal moves. It
// returns false when c has no legal move at all.
func ChooseOpponentMove(b Board, c Color, r RandSource) (Move, bool) {
	moves := LegalMoves(b, c)
	if len(moves) == 0 {
		return Move{}, false
	}
	var captures []Move
	for _, m := range moves {
		if IsCapture(b, m) {
			captures = append(captures, m)
		}
	}
	pool := moves
	if len(captures) > 0 {
		pool = captures
	}
	return pool[r.IntN(len(pool))], true
}

// Opponent plays a single fixed side. It is not safe for concurrent use
// when Rand is not.
type Opponent struct {
	Color Color
	Rand  RandSource
}

func NewOpponent(c Color, seed uint64) *Opponent {
	return &Opponent{
		Color: c,
		Rand:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (o *Opponent) ChooseMove(b Board) (Move, bool) {
	return ChooseOpponentMove(b, o.Color, o.Rand)
}
