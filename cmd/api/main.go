package main

import (
	"context"
	"flag"

	"github.com/iug/student-portal/internal/bootstrap"
	"github.com/iug/student-portal/internal/pkg/logger"
	"github.com/iug/student-portal/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg, *migrationsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}

	deps := bootstrap.BuildDependencies(database)
	router := bootstrap.SetupRouter(cfg, deps)

	srv := server.New(cfg, router, database)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
