package controller

import (
	"errors"

	"github.com/benbeisheim/quickchess-backend/internal/engine"
	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/benbeisheim/quickchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotInGame), errors.Is(err, model.ErrGameFull):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrNotYourTurn), errors.Is(err, model.ErrGameOver), errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrInvalidSquare),
		errors.Is(err, engine.ErrInvalidMove),
		errors.Is(err, engine.ErrInvalidColor),
		errors.Is(err, engine.ErrInvalidFEN),
		errors.Is(err, engine.ErrNoPiece),
		errors.Is(err, engine.ErrWrongColor),
		errors.Is(err, engine.ErrIllegalMove):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as {"error": ...} with the status its kind maps to.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
