package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/m04kA/SBN-BookingService/internal/config"
	"github.com/m04kA/SBN-BookingService/internal/infra/storage/schema"
	"github.com/m04kA/SBN-BookingService/pkg/logger"
)

// Применяет миграции схемы к базе из config.toml
// migrate            - применить все миграции
// migrate force <v>  - пометить версию как применённую
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if len(os.Args) >= 3 && os.Args[1] == "force" {
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal("Invalid version %q: %v", os.Args[2], err)
		}
		if err := schema.Force(db, version); err != nil {
			log.Fatal("Failed to force version: %v", err)
		}
		log.Info("Forced schema version to %d", version)
		return
	}

	if err := schema.Up(db, log); err != nil {
		log.Fatal("Failed to migrate: %v", err)
	}
}
