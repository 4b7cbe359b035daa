// Command backfillcontacts copies the legacy clients and suppliers into the
// unified contacts table. Running it twice is harmless.
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
	db, err := infra.NewDatabase(cfg.DatabaseURL, true)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	svc := service.NewBackfillService(
		repository.NewContactRepository(db),
		repository.NewClientRepository(db),
		repository.NewSupplierRepository(db),
	)
	res, err := svc.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("backfill failed")
	}
	fmt.Printf("clients: %d, suppliers: %d, merged: %d, skipped: %d\n",
		res.Clients, res.Suppliers, res.Merged, res.Skipped)
}
