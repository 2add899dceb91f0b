package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbeisheim/quickchess-backend/internal/config"
	"github.com/benbeisheim/quickchess-backend/internal/controller"
	"github.com/benbeisheim/quickchess-backend/internal/middleware"
	"github.com/benbeisheim/quickchess-backend/internal/service"
	"github.com/benbeisheim/quickchess-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

// opponentTick is how often due opponent turns are looked for.
const opponentTick = 50 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	gameManager := service.NewGameManager(service.ManagerOptions{
		OpponentDelay: cfg.OpponentDelay,
		Seed:          cfg.Seed,
		Store:         store,
	})
	go gameManager.ProcessOpponentMoves(ctx, opponentTick)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{cfg.AllowedOrigin},
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())
	gameController.RegisterRoutes(api.Group("/game"))

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
