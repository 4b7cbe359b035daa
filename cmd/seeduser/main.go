// Command seeduser creates the default owner account when it is missing.
// Usage: go run ./cmd/seeduser
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/infra"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.OwnerPassword == "" {
		log.Fatal().Msg("OWNER_PASSWORD must be set")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, true)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	auth := service.NewAuthService(repository.NewUserRepository(db), cfg, nil)
	created, err := auth.EnsureOwner(context.Background(), cfg.OwnerEmail, cfg.OwnerPassword, cfg.OwnerName)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	if !created {
		fmt.Printf("owner %s already exists\n", cfg.OwnerEmail)
		return
	}
	fmt.Printf("owner %s created\n", cfg.OwnerEmail)
}
