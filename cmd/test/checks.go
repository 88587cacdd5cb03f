package main

import (
	"fmt"
	"time"

	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
	"price-tracker/src/query"
	"price-tracker/src/tracker"
)

func fp(v float64) *float64 { return &v }
func ip(v int64) *int64     { return &v }

// -----------------------------------------------------------------------------

// checkStorage seeds a security with three days of history and reads it back.
func checkStorage(db interfaces.IDatabase, log *logger.Logger) error {
	id, err := db.UpsertSecurity(models.MSecurity{
		Ticker: "SMOKE", Name: "Smoke Test Corp", Type: "EQUITY", Currency: "USD",
	})
	if err != nil {
		return fmt.Errorf("security upsert: %w", err)
	}

	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	var prices []models.MDailyPrice
	for i := 0; i < 3; i++ {
		prices = append(prices, models.MDailyPrice{
			SecurityID: id,
			Date:       base.AddDate(0, 0, i),
			Open:       fp(10 + float64(i)),
			Close:      fp(11 + float64(i)),
			Volume:     ip(int64(1000 * (i + 1))),
		})
	}
	// Second write of the same keys must update, not duplicate
	if err := db.UpsertDailyPrices(prices); err != nil {
		return fmt.Errorf("first upsert: %w", err)
	}
	if err := db.UpsertDailyPrices(prices); err != nil {
		return fmt.Errorf("second upsert: %w", err)
	}

	rows, err := db.QueryDailyPrices(models.MPriceFilter{Ticker: "SMOKE"})
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(rows) != 3 {
		return fmt.Errorf("expected 3 rows after double upsert, got %d", len(rows))
	}

	tables, err := db.TableNames()
	if err != nil {
		return fmt.Errorf("table listing: %w", err)
	}
	log.Debug("Tables: %v", tables)
	return nil
}

// -----------------------------------------------------------------------------

func checkQueryEngine(db interfaces.IDatabase, log *logger.Logger) error {
	eng := query.NewEngine(db, log)

	result, err := eng.Run(models.MPriceFilter{Ticker: "SMOKE"}, nil)
	if err != nil {
		return err
	}
	if len(result.Rows) != 3 || len(result.Chart) != 1 {
		return fmt.Errorf("expected 3 rows and 1 series, got %d/%d", len(result.Rows), len(result.Chart))
	}
	if result.Rows[0].Volume != "1,000" {
		return fmt.Errorf("volume formatting broken: %q", result.Rows[0].Volume)
	}

	// Invalid filter must come back empty
	empty, err := eng.Run(models.MPriceFilter{Invalid: true}, nil)
	if err != nil {
		return err
	}
	if len(empty.Rows) != 0 {
		return fmt.Errorf("invalid filter returned %d rows", len(empty.Rows))
	}
	return nil
}

// -----------------------------------------------------------------------------

func checkTracker(log *logger.Logger) error {
	tr := tracker.NewStatusTracker(time.Minute, log)
	tr.Reset()

	ch := tr.Subscribe()
	defer tr.Unsubscribe(ch)

	if err := tr.Begin("smoke job"); err != nil {
		return err
	}
	if err := tr.Begin("second job"); err != tracker.ErrImportRunning {
		return fmt.Errorf("expected conflict, got %v", err)
	}

	tr.Progress(50, "halfway")
	tr.Finish("smoke job complete")

	// Drain the subscription and confirm the terminal state arrived
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-ch:
			if !snap.Running && snap.Message == "smoke job complete" {
				return nil
			}
		case <-deadline:
			return fmt.Errorf("terminal status never delivered")
		}
	}
}
