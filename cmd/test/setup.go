package main

import (
	"fmt"
	"os"
	"path/filepath"

	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
	"price-tracker/src/storage"
)

// setupScratchDatabase builds a SQLite store on a temp file so the smoke run
// never touches the configured database.
func setupScratchDatabase(conf *models.MConfig, log *logger.Logger) (interfaces.IDatabase, string, error) {
	dbPath := filepath.Join(os.TempDir(), fmt.Sprintf("price-tracker-smoke-%d.db", os.Getpid()))

	scratch := *conf
	scratch.Storage.DBType = "sqlite"
	scratch.Storage.DBPath = dbPath

	db, err := storage.NewAsyncSQLiteDB(&scratch, log)
	if err != nil {
		return nil, "", err
	}
	if err := db.Initialize(); err != nil {
		return nil, "", err
	}

	log.Info("Scratch database at %s", dbPath)
	return db, dbPath, nil
}
