// chess-server exposes the play service over HTTP and websocket.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-engine-go/internal/controller"
	"github.com/lgbarn/chess-engine-go/internal/service"
)

var (
	port         = flag.Int("port", 3000, "Port to listen on")
	allowOrigins = flag.String("origins", "http://localhost:5173", "Comma-separated CORS origins")
)

func main() {
	flag.Parse()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: *allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	registry := service.NewRegistry()
	gameService := service.NewGameService(registry)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Websocket routes upgrade first, then hand off to the controller.
	app.Use("/ws/*", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.PlayMove)
	gameRoutes.Post("/:gameId/resign", gameController.Resign)

	log.Fatal(app.Listen(fmt.Sprintf(":%d", *port)))
}
