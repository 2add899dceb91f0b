package controller

import (
	"github.com/benbeisheim/quickchess-backend/internal/middleware"
	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/benbeisheim/quickchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// RegisterRoutes mounts the game endpoints on router, normally /api/game.
func (gc *GameController) RegisterRoutes(router fiber.Router) {
	router.Post("/create", gc.CreateGame)
	router.Post("/join/:gameId", gc.JoinGame)
	router.Get("/:gameId", gc.GetGameState)
	router.Get("/:gameId/moves", gc.GetLegalMoves)
	router.Post("/:gameId/click", gc.Click)
	router.Post("/:gameId/move", gc.MakeMove)
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req service.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	gameID, color, err := gc.gameService.CreateGame(middleware.PlayerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gameId": gameID,
		"color":  color.String(),
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"color": color.String(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.GetLegalMoves(c.Params("gameId"), c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) Click(c *fiber.Ctx) error {
	var req model.ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	gameID := c.Params("gameId")
	moved, err := gc.gameService.HandleClick(gameID, middleware.PlayerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return gc.respondState(c, gameID, moved)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	gameID := c.Params("gameId")
	if err := gc.gameService.HandleMove(gameID, middleware.PlayerID(c), req); err != nil {
		return respondError(c, err)
	}
	return gc.respondState(c, gameID, true)
}

func (gc *GameController) respondState(c *fiber.Ctx, gameID string, moved bool) error {
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"moved": moved,
		"state": state,
	})
}
