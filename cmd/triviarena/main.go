package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/api"
	"github.com/oghanim/triviarena/internal/categorygen"
	"github.com/oghanim/triviarena/internal/config"
	"github.com/oghanim/triviarena/internal/constants"
	"github.com/oghanim/triviarena/internal/logging"
	"github.com/oghanim/triviarena/internal/service"
	"github.com/oghanim/triviarena/internal/storage"
)

func main() {
	// Load the ability catalog and server settings. Path may be provided
	// via TRIVIARENA_CONFIG or defaults to ./triviarena_config.json in
	// the current working directory. OPENAI_API_KEY is optional:
	// category generation falls back to placeholder labels without it.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./triviarena_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid triviarena configuration", err, logging.Fields{"config_path": configPath, "hint": "create a triviarena_config.json with an 'ability_list' array of {name,description} objects and an optional server.address"})
	}

	if cfg.CategoryPromptTemplate != "" {
		categorygen.SetPromptTemplate(cfg.CategoryPromptTemplate)
	}

	// Allow the DB path to be configured via TRIVIARENA_DB. Default to a
	// data/ directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/triviarena.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewSessionHandler(repo, service.SessionDefaults{
		BoardSize:          config.DefaultBoardSize,
		MaxParticipants:    config.DefaultMaxParticipants,
		UseAbilities:       true,
		RandomizeAbilities: true,
		Catalog:            cfg.Abilities,
	})

	router := gin.Default()
	api.RegisterRoutes(router, handler)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
