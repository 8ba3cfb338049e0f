package main

import (
	"log"

	"devconnect-api/config"
	"devconnect-api/internal/handler"
	"devconnect-api/internal/repository"
	"devconnect-api/internal/server"
	"devconnect-api/internal/services"
	"devconnect-api/pkg/database"
	"devconnect-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.ApplyRawMigrations("migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.Pool)
	userService := services.NewUserService(userRepo, cfg)
	userHandler := handler.NewUserHandler(userService, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{User: userHandler})

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
