package storage

import (
	"path/filepath"
	"testing"
	"time"

	"price-tracker/src/logger"
	"price-tracker/src/models"
)

func newTestDB(t *testing.T) *AsyncSQLiteDB {
	t.Helper()

	cfg := &models.MConfig{}
	cfg.Storage.DBType = "sqlite"
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "test.db")

	db, err := NewAsyncSQLiteDB(cfg, logger.NewLogger("ERROR", "test"))
	if err != nil {
		t.Fatalf("NewAsyncSQLiteDB failed: %v", err)
	}
	if err := db.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func fp(v float64) *float64 { return &v }
func ip(v int64) *int64     { return &v }

func day(m, d int) time.Time {
	return time.Date(2024, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// -----------------------------------------------------------------------------

func TestUpsertSecurityByTicker(t *testing.T) {
	db := newTestDB(t)

	id1, err := db.UpsertSecurity(models.MSecurity{Ticker: "AAPL", Name: "Apple"})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// Same ticker updates in place and keeps the id
	id2, err := db.UpsertSecurity(models.MSecurity{Ticker: "AAPL", Name: "Apple Inc.", Currency: "USD"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("upsert by ticker changed id: %d != %d", id1, id2)
	}

	sec, err := db.GetSecurityByID(id1)
	if err != nil {
		t.Fatalf("GetSecurityByID failed: %v", err)
	}
	if sec == nil || sec.Name != "Apple Inc." || sec.Currency != "USD" {
		t.Errorf("update not applied: %+v", sec)
	}

	if missing, err := db.GetSecurityByID(9999); err != nil || missing != nil {
		t.Errorf("expected nil for unknown id, got %+v, %v", missing, err)
	}
}

// -----------------------------------------------------------------------------

func TestListSecuritiesOrdered(t *testing.T) {
	db := newTestDB(t)

	for _, ticker := range []string{"MSFT", "AAPL", "SPY"} {
		if _, err := db.UpsertSecurity(models.MSecurity{Ticker: ticker}); err != nil {
			t.Fatalf("upsert %s failed: %v", ticker, err)
		}
	}

	secs, err := db.ListSecurities()
	if err != nil {
		t.Fatalf("ListSecurities failed: %v", err)
	}
	if len(secs) != 3 {
		t.Fatalf("expected 3 securities, got %d", len(secs))
	}
	if secs[0].Ticker != "AAPL" || secs[1].Ticker != "MSFT" || secs[2].Ticker != "SPY" {
		t.Errorf("not ordered by ticker: %+v", secs)
	}
}

// -----------------------------------------------------------------------------

func TestUpsertDailyPricesIdempotent(t *testing.T) {
	db := newTestDB(t)

	id, _ := db.UpsertSecurity(models.MSecurity{Ticker: "AAPL"})

	prices := []models.MDailyPrice{
		{SecurityID: id, Date: day(1, 2), Open: fp(185), Close: fp(186), Volume: ip(1000)},
		{SecurityID: id, Date: day(1, 3), Close: fp(187), Volume: nil},
	}
	if err := db.UpsertDailyPrices(prices); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// Re-import with a revised close must update, not duplicate
	prices[0].Close = fp(186.5)
	if err := db.UpsertDailyPrices(prices); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	rows, err := db.QueryDailyPrices(models.MPriceFilter{Ticker: "AAPL"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Close == nil || *rows[0].Close != 186.5 {
		t.Errorf("revised close not applied: %v", rows[0].Close)
	}
	if rows[1].Volume != nil {
		t.Errorf("null volume came back non-nil: %v", *rows[1].Volume)
	}
}

// -----------------------------------------------------------------------------

func TestQueryDailyPricesFilters(t *testing.T) {
	db := newTestDB(t)

	aapl, _ := db.UpsertSecurity(models.MSecurity{Ticker: "AAPL"})
	msft, _ := db.UpsertSecurity(models.MSecurity{Ticker: "MSFT"})

	err := db.UpsertDailyPrices([]models.MDailyPrice{
		{SecurityID: aapl, Date: day(1, 2), Close: fp(186)},
		{SecurityID: aapl, Date: day(2, 2), Close: fp(188)},
		{SecurityID: aapl, Date: day(3, 2), Close: fp(190)},
		{SecurityID: msft, Date: day(1, 2), Close: fp(390)},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Unfiltered: ordered by ticker then date
	rows, err := db.QueryDailyPrices(models.MPriceFilter{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Ticker != "AAPL" || rows[3].Ticker != "MSFT" {
		t.Errorf("ticker ordering broken: %+v", rows)
	}
	if !rows[0].Date.Before(rows[1].Date) {
		t.Error("date ordering broken")
	}

	// Ticker filter
	rows, _ = db.QueryDailyPrices(models.MPriceFilter{Ticker: "MSFT"})
	if len(rows) != 1 || rows[0].Ticker != "MSFT" {
		t.Errorf("ticker filter broken: %+v", rows)
	}

	// Specific date
	rows, _ = db.QueryDailyPrices(models.MPriceFilter{SpecificDate: day(2, 2)})
	if len(rows) != 1 || !rows[0].Date.Equal(day(2, 2)) {
		t.Errorf("specific date filter broken: %+v", rows)
	}

	// Range, inclusive both ends
	rows, _ = db.QueryDailyPrices(models.MPriceFilter{StartDate: day(1, 2), EndDate: day(2, 2)})
	if len(rows) != 3 {
		t.Errorf("range filter expected 3 rows, got %d", len(rows))
	}

	// Invalid filter short-circuits to empty
	rows, err = db.QueryDailyPrices(models.MPriceFilter{Invalid: true})
	if err != nil || len(rows) != 0 {
		t.Errorf("invalid filter must yield no rows, got %d, %v", len(rows), err)
	}
}

// -----------------------------------------------------------------------------

func TestTableNamesAndPing(t *testing.T) {
	db := newTestDB(t)

	if err := db.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	tables, err := db.TableNames()
	if err != nil {
		t.Fatalf("TableNames failed: %v", err)
	}

	found := map[string]bool{}
	for _, n := range tables {
		found[n] = true
	}
	if !found["securities"] || !found["daily_prices"] {
		t.Errorf("expected schema tables, got %v", tables)
	}
}

// -----------------------------------------------------------------------------

func TestInitializeIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	id, _ := db.UpsertSecurity(models.MSecurity{Ticker: "AAPL"})
	if err := db.UpsertDailyPrices([]models.MDailyPrice{{SecurityID: id, Date: day(1, 2), Close: fp(186)}}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Re-running the migration must not drop existing data
	if err := db.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	rows, err := db.QueryDailyPrices(models.MPriceFilter{})
	if err != nil || len(rows) != 1 {
		t.Errorf("data lost across Initialize: %d rows, %v", len(rows), err)
	}
}
