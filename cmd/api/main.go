package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bmefuto/portal/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the migrations directory (empty to skip)")
	flag.Parse()

	srv, err := server.New(*configPath, *migrationsDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		log.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
