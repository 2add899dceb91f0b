package service

import (
	"fmt"

	"github.com/benbeisheim/quickchess-backend/internal/engine"
	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGameRequest is the body of a create call. HumanColor defaults to
// white and FEN to the standard starting position.
type CreateGameRequest struct {
	HumanColor string `json:"humanColor"`
	FEN        string `json:"fen"`
}

// CreateGame starts a new game with playerID in the human seat.
func (gs *GameService) CreateGame(playerID string, req CreateGameRequest) (string, engine.Color, error) {
	humanColor := engine.White
	if req.HumanColor != "" {
		var err error
		if humanColor, err = engine.ParseColor(req.HumanColor); err != nil {
			return "", engine.White, err
		}
	}

	gameID := uuid.New().String()
	if _, err := gs.gameManager.CreateGame(gameID, model.GameOptions{
		HumanColor: humanColor,
		FEN:        req.FEN,
	}); err != nil {
		return "", engine.White, fmt.Errorf("failed to create game: %w", err)
	}

	player, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	if err != nil {
		return "", engine.White, err
	}
	return gameID, player.Color, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (engine.Color, error) {
	player, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	return player.Color, err
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// GetLegalMoves lists the human's legal moves in coordinate form, limited
// to those leaving from when it is not empty.
func (gs *GameService) GetLegalMoves(gameID string, from string) ([]string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	var origin *engine.Square
	if from != "" {
		sq, err := engine.ParseSquare(from)
		if err != nil {
			return nil, err
		}
		origin = &sq
	}

	moves := game.LegalMoves(origin)
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out, nil
}

func (gs *GameService) HandleClick(gameID string, playerID string, req model.ClickRequest) (bool, error) {
	return gs.gameManager.Click(gameID, playerID, req)
}

func (gs *GameService) HandleMove(gameID string, playerID string, req model.MoveRequest) error {
	return gs.gameManager.MakeMove(gameID, playerID, req)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	log.Debugf("registering connection in game service for %s", gameID)
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

// SendError reports err to playerID's websocket in gameID, if one is open.
func (gs *GameService) SendError(gameID string, playerID string, err error) {
	game, gerr := gs.gameManager.GetGame(gameID)
	if gerr != nil {
		return
	}
	game.SendError(playerID, err)
}
