package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/diettrack/backend/config"
	"github.com/diettrack/backend/internal/database"
	"github.com/diettrack/backend/internal/server"
	"github.com/diettrack/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Photo storage is optional; the upload endpoint reports unavailable
	// when S3 cannot be initialized.
	var uploads *service.UploadService
	if s3cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 storage unavailable: %v", err)
	} else {
		uploads = service.NewUploadService(s3cfg)
	}

	emailService := service.NewEmailService()
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.AdminEmail)

	srv := server.New(server.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Auth:      authService,
		Users:     service.NewUserService(db, emailService),
		Foods:     service.NewFoodService(db),
		Meals:     service.NewMealService(db),
		Assistant: service.NewAssistantService(cfg),
		Uploads:   uploads,
	})

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
