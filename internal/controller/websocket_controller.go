package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/quickchess-backend/internal/middleware"
	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/benbeisheim/quickchess-backend/internal/service"
	"github.com/benbeisheim/quickchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("game %s: failed to register connection for %s: %v", gameID, playerID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read error for %s: %v", gameID, playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.gameService.SendError(gameID, playerID, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: %s message from %s rejected: %v", gameID, msg.Type, playerID, err)
			wsc.gameService.SendError(gameID, playerID, err)
		}
	}
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)

	case ws.MessageTypeClick:
		var click model.ClickRequest
		if err := json.Unmarshal(msg.Payload, &click); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleClick(gameID, playerID, click)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
