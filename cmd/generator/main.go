package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	generatorapp "github.com/sm8ta/webike_rental_microservice_nikita/internal/app/generator"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application, err := generatorapp.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	runErr := application.Run(ctx)
	application.Stop()

	if runErr != nil {
		log.Printf("Generator exited with error: %v", runErr)
		os.Exit(1)
	}
}
