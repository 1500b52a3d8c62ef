// cmd/migrate applies or inspects the schema migrations.
// Usage: go run ./cmd/migrate [up|down|status]
package main

import (
	"os"

	"menucatalog/internal/config"
	"menucatalog/internal/infra"
	"menucatalog/internal/logging"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	// Plain connection: NewDatabase would migrate up before we get to choose.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	switch cmd {
	case "up":
		err = infra.RunMigrations(db)
	case "down":
		err = infra.RollbackMigration(db)
	case "status":
		err = infra.MigrationStatus(db)
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command, want up|down|status")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("migration failed")
	}
}
