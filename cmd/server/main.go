package main

import (
	"log"
	"net/http"

	"devdir/server/internal/api"
	"devdir/server/internal/config"
	"devdir/server/internal/database"
	"devdir/server/internal/models"
	"devdir/server/internal/session"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	codec := session.New(cfg.SessionPayloadKey, cfg.SessionSigningKey, cfg.SessionTTL)

	apiServer := api.NewServer(db, codec, logger, cfg.SessionTTL)

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, apiServer.GetRouter()); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
