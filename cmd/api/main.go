package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gestao_atendimentos/internal/adapter/http/routes"
	"gestao_atendimentos/internal/infrastructure/config"
	"gestao_atendimentos/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão de Atendimentos API
// @version         1.0
// @description     Engagement tracking for consultancy teams: stages, consultants, proposals and engagements kept in one dataset document.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Init("gestao-atendimentos", "info", "console")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logging.Init("gestao-atendimentos", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
		stop()
		os.Exit(1)
	}
}
