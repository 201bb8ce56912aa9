package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/warit/schoolregis/internal/pkg/logger"
	"github.com/warit/schoolregis/internal/server"
)

// @title School Registration API
// @version 1.0
// @description API for school subject registration: student records, subject catalog, curriculum structure, registration and grading.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Missing .env is fine; config falls back to defaults
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
