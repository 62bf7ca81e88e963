// migrate applique ou annule les migrations embarquées.
//
// Usage : go run ./cmd/migrate [up|down|version|force N]
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/gesco-erp/gesco-api/internal/infrastructure/postgres"
	"github.com/gesco-erp/gesco-api/pkg/config"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration : %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "text"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Journal : %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("initialisation des migrations")
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if len(os.Args) < 3 {
			log.Fatal().Msg("usage : migrate force <version>")
		}
		v, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("version invalide")
		}
		err = m.Force(v)
	case "version":
	default:
		log.Fatal().Str("commande", cmd).Msg("commande inconnue (up, down, version, force)")
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("commande", cmd).Msg("migration")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal().Err(err).Msg("lecture de la version")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schéma à jour")
}
