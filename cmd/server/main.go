package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/http/routes"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/config"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/logging"
	"specs-nexus-web/internal/pkg/session"
	"specs-nexus-web/internal/pkg/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Upstream API client and session store
	client := nexus.New(cfg.API.BaseURL)
	store := session.NewStore(cfg.Session)

	// Chat state lives in memory; the cron sweep keeps it bounded
	chatService := services.NewChatService(client, logger)
	cronService := services.NewCronService(chatService, logger)
	cronService.Start()
	defer cronService.Stop()

	// Template engine with the image and formatting helpers
	resolver := view.NewResolver(client.BaseURL())
	engine := html.New("./web/templates", ".html")
	engine.AddFuncMap(resolver.FuncMap())
	if cfg.IsDev() {
		engine.Reload(true)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SPECS Nexus",
		Views:        engine,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Static assets
	app.Static("/static", "./web/static")

	// Setup routes
	routes.Setup(app, client, store, cfg, logger, chatService)

	// Graceful shutdown
	go gracefulShutdown(app, logger)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("mode", cfg.AppMode),
		zap.String("api", cfg.API.BaseURL))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
