package main

import (
	"flag"

	"restaurant_system/internal/config"  // Custom import path (Config)
	"restaurant_system/internal/logging" // Logger setup
	"restaurant_system/internal/store"   // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	seed := flag.Bool("seed", false, "load the seed file after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.IsProd)

	db, err := store.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}
	if !*seed {
		return
	}

	data, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		logrus.Fatalf("failed to load seed data: %v", err)
	}
	if err := store.Seed(db, data); err != nil {
		logrus.Fatalf("failed to seed database: %v", err)
	}
}
