package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"price-tracker/src/config"
	"price-tracker/src/data_source/yahoo"
	"price-tracker/src/importer"
	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
	"price-tracker/src/network"
	"price-tracker/src/query"
	"price-tracker/src/server"
	"price-tracker/src/storage"
	"price-tracker/src/tracker"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// Storage backend
	var db interfaces.IDatabase

	switch cfg.Storage.DBType {
	case "postgres":
		db, err = storage.NewAsyncPostgresDB(cfg.MConfig, appLogger)
	default:
		// Default to SQLite
		db, err = storage.NewAsyncSQLiteDB(cfg.MConfig, appLogger)
	}

	if err != nil {
		appLogger.Critical("Failed to init db: %v", err)
	}
	if err := db.Initialize(); err != nil {
		appLogger.Critical("Failed to migrate db: %v", err)
	}
	defer db.Close()

	// Seed configured securities so imports have targets
	for _, seed := range cfg.Import.Securities {
		sec := models.MSecurity{Ticker: seed.Ticker, Name: seed.Name}
		if _, err := db.UpsertSecurity(sec); err != nil {
			appLogger.Warning("Failed to seed security %s: %v", seed.Ticker, err)
		}
	}

	// Outbound HTTP + data source
	var netMgr interfaces.INetworkManager = network.NewAsyncNetworkManager(cfg.MConfig, appLogger)
	var source interfaces.IDataSource = yahoo.NewYahooFinanceSource(netMgr, logger.NewLogger(cfg.LogLevel, "YahooFinanceSource"))

	// Import status tracker
	staleAfter := time.Duration(cfg.Import.StaleTimeoutMinutes) * time.Minute
	statusTracker := tracker.NewStatusTracker(staleAfter, logger.NewLogger(cfg.LogLevel, "StatusTracker"))
	statusTracker.Reset()

	// Query engine + import runner
	engine := query.NewEngine(db, appLogger)
	runner := importer.NewRunner(cfg.MConfig, db, source, statusTracker, logger.NewLogger(cfg.LogLevel, "Importer"))

	// HTTP server (blocks)
	srv := server.NewWebServer(cfg.MConfig, db, engine, runner, statusTracker, appLogger)
	if err := srv.Start(); err != nil {
		appLogger.Critical("Server failed: %v", err)
	}
}
