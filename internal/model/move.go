package model

import (
	"fmt"

	"github.com/benbeisheim/quickchess-backend/internal/engine"
)

// MoveRequest is a move as the client sends it, squares in algebraic form.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r MoveRequest) Parse() (engine.Move, error) {
	from, err := engine.ParseSquare(r.From)
	if err != nil {
		return engine.Move{}, fmt.Errorf("from: %w", err)
	}
	to, err := engine.ParseSquare(r.To)
	if err != nil {
		return engine.Move{}, fmt.Errorf("to: %w", err)
	}
	return engine.Move{From: from, To: to}, nil
}

// ClickRequest is a single square the client clicked.
type ClickRequest struct {
	Square string `json:"square"`
}

func (r ClickRequest) Parse() (engine.Square, error) {
	return engine.ParseSquare(r.Square)
}

// Ply describes the last move played.
type Ply struct {
	Piece         ClientPiece  `json:"piece"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	CapturedPiece *ClientPiece `json:"capturedPiece"`
	Promotion     bool         `json:"promotion"`
}

func newPly(b engine.Board, m engine.Move) *Ply {
	mover := b.At(m.From)
	ply := &Ply{
		From:          m.From.String(),
		To:            m.To.String(),
		CapturedPiece: newClientPiece(b.At(m.To)),
	}
	if cp := newClientPiece(mover); cp != nil {
		ply.Piece = *cp
	}
	ply.Promotion = mover.Kind == engine.Pawn && engine.ApplyMove(b, m).At(m.To).Kind == engine.Queen
	return ply
}
