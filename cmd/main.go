package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sm8ta/webike_rental_microservice_nikita/docs"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/app"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
)

//go:generate swag init -d ../ -g cmd/main.go -o ../docs

// @title Bike Rental API
// @version 1.0
// @description API проката велосипедов: модели, байки, арендаторы, аренды и аналитика

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Create app
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	runErr := application.Run(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Printf("Failed to stop app: %v", err)
	}
	if runErr != nil {
		log.Printf("Application exited with error: %v", runErr)
		os.Exit(1)
	}
}
