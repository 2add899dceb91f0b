package model

import "github.com/benbeisheim/quickchess-backend/internal/engine"

// ClientPiece is the wire form of a piece, e.g. {"type":"queen","color":"white"}.
type ClientPiece struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

func newClientPiece(p engine.Piece) *ClientPiece {
	if p.IsEmpty() {
		return nil
	}
	return &ClientPiece{Type: p.Kind.String(), Color: p.Color.String()}
}

// newBoardState lays the board out row by row from Black's back rank, the
// orientation the client draws.
func newBoardState(b engine.Board) [][]*ClientPiece {
	rows := make([][]*ClientPiece, 8)
	for rank := 0; rank < 8; rank++ {
		rows[rank] = make([]*ClientPiece, 8)
		for file := 0; file < 8; file++ {
			rows[rank][file] = newClientPiece(b.At(engine.Square{Rank: rank, File: file}))
		}
	}
	return rows
}

type CapturedPieces struct {
	White []ClientPiece `json:"white"`
	Black []ClientPiece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]ClientPiece, 0),
		Black: make([]ClientPiece, 0),
	}
}

// add records a piece taken by the side capturer.
func (c *CapturedPieces) add(capturer engine.Color, p engine.Piece) {
	cp := newClientPiece(p)
	if cp == nil {
		return
	}
	if capturer == engine.White {
		c.White = append(c.White, *cp)
	} else {
		c.Black = append(c.Black, *cp)
	}
}
