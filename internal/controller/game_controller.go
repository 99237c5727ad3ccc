// Package controller exposes the game service over HTTP and websocket
// using fiber.
package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/service"
)

// GameController handles the REST surface of the play service.
type GameController struct {
	gameService *service.GameService
}

// NewGameController returns a controller over the given service.
func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Strategy string `json:"strategy"`
	Side     string `json:"side"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// CreateGame starts a new session. The body names the engine strategy
// and the player's side; both default sensibly.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	req := createGameRequest{Strategy: "planner", Side: "white"}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}

	state, err := gc.gameService.CreateGame(req.Strategy, req.Side)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetGameState returns the session snapshot.
func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(state)
}

// PlayMove applies the player's move and returns the new state plus
// the engine's reply.
func (gc *GameController) PlayMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	state, reply, err := gc.gameService.PlayMove(c.Params("gameId"), req.Move)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"state":       state,
		"engine_move": reply,
	})
}

// Resign ends and removes the session.
func (gc *GameController) Resign(c *fiber.Ctx) error {
	if err := gc.gameService.Resign(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "game resigned"})
}

// errorResponse maps service errors onto HTTP statuses: unknown ids to
// 404, rule violations and bad input to 400, everything else to 500.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrInvalidMoveText),
		errors.Is(err, errors.ErrNotYourTurn),
		errors.Is(err, errors.ErrGameOver),
		errors.Is(err, errors.ErrUnknownStrategy),
		errors.Is(err, errors.ErrInvalidSide):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
