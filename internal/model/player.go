package model

import "github.com/benbeisheim/quickchess-backend/internal/engine"

// Player is the human seat of a game. ID is empty until someone joins.
type Player struct {
	ID    string
	Color engine.Color
}

type ClientPlayer struct {
	ID    string `json:"name"`
	Color string `json:"color"`
}

func (p Player) client() ClientPlayer {
	return ClientPlayer{ID: p.ID, Color: p.Color.String()}
}
