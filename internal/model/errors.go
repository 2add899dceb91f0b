package model

import "errors"

var (
	ErrGameFull         = errors.New("game is full")
	ErrNotInGame        = errors.New("player not in game")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNotOpponentTurn  = errors.New("opponent is not due to move")
	ErrGameOver         = errors.New("game is over")
	ErrAlreadyConnected = errors.New("player already connected")
)
