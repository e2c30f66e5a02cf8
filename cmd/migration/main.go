package main

import (
	"flag"
	"os"

	"directory/cmd/migration/initialize"
	"directory/cmd/migration/seed"
	"directory/config"
	"directory/internal/database"
	"directory/internal/logger"
)

func main() {
	runSeed := flag.Bool("seed", false, "write the default employee collection after migrating")
	fresh := flag.Bool("fresh", false, "also flush persisted view state")
	flag.Parse()

	log := logger.New("migration")

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Er("failed to create database", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := initialize.InitializeTables(db.SQL, cfg, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if *runSeed {
		if err := seed.Seed(db.SQL, cfg, log); err != nil {
			log.Er("failed to seed data", err)
			os.Exit(1)
		}
	}

	if *fresh {
		if err := db.FlushSessionCache(); err != nil {
			log.Er("failed to flush session cache", err)
			os.Exit(1)
		}
	}

	log.Info("migration complete")
}
