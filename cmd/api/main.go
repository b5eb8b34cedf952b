package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rakib/uniportal/internal/pkg/logger"
	"github.com/rakib/uniportal/internal/server"
)

// @title UniPortal API
// @version 1.0
// @description Course registration portal for students, faculty and administrators

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// .env is optional; real deployments set variables directly
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
