// Manual smoke harness. Spins up the full stack against a throwaway SQLite
// file, pushes synthetic price history through the store, runs the query
// engine and watches an import status subscription end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"price-tracker/src/config"
	"price-tracker/src/logger"
)

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	keepDB := flag.Bool("keep-db", false, "keep the scratch database file on exit")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 3. Setup Logger
	appLogger := logger.NewLogger("DEBUG", conf.Name+"-smoke")

	// 4. Scratch database
	db, dbPath, err := setupScratchDatabase(conf.MConfig, appLogger)
	if err != nil {
		appLogger.Error("Database setup failed: %v", err)
		os.Exit(1)
	}
	defer func() {
		db.Close()
		if !*keepDB {
			os.Remove(dbPath)
		}
	}()

	failures := 0

	// 5. Storage round trip
	if err := checkStorage(db, appLogger); err != nil {
		appLogger.Error("Storage check FAILED: %v", err)
		failures++
	} else {
		appLogger.Info("Storage check OK")
	}

	// 6. Query engine over the seeded rows
	if err := checkQueryEngine(db, appLogger); err != nil {
		appLogger.Error("Query check FAILED: %v", err)
		failures++
	} else {
		appLogger.Info("Query check OK")
	}

	// 7. Tracker lifecycle + subscription
	if err := checkTracker(appLogger); err != nil {
		appLogger.Error("Tracker check FAILED: %v", err)
		failures++
	} else {
		appLogger.Info("Tracker check OK")
	}

	if failures > 0 {
		appLogger.Error("%d check(s) failed", failures)
		os.Exit(1)
	}
	appLogger.Info("All smoke checks passed")
}
