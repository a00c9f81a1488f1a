package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/grubdash/config"
	"github.com/Gunvolt24/grubdash/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env.local необязателен: в контейнере переменные приходят из окружения.
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "service stopped with error: %v", err)
	}
}
