package storage

import (
	"database/sql"
	"fmt"
	"time"

	"price-tracker/src/logger"
	"price-tracker/src/models"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// -----------------------------------------------------------------------------

type AsyncSQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*AsyncSQLiteDB, error) {
	return &AsyncSQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	// Open DB
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		d.Logger.Warning("Failed to enable foreign keys: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

// createTables builds the schema. Price history must survive restarts, so
// tables are only created when missing.
func (d *AsyncSQLiteDB) createTables() error {
	query := `
		CREATE TABLE IF NOT EXISTS securities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker TEXT UNIQUE NOT NULL,
			name TEXT,
			type TEXT,
			exchange TEXT,
			currency TEXT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create securities: %w", err)
	}

	query = `
		CREATE TABLE IF NOT EXISTS daily_prices (
			security_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			open REAL,
			high REAL,
			low REAL,
			close REAL,
			adj_close REAL,
			volume INTEGER,
			PRIMARY KEY (security_id, date),
			FOREIGN KEY (security_id) REFERENCES securities(id)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create daily_prices: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) UpsertSecurity(sec models.MSecurity) (int64, error) {
	query := `
		INSERT INTO securities (ticker, name, type, exchange, currency)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (ticker) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			exchange = excluded.exchange,
			currency = excluded.currency
	`
	if _, err := d.DB.Exec(query, sec.Ticker, sec.Name, sec.Type, sec.Exchange, sec.Currency); err != nil {
		return 0, err
	}

	var id int64
	if err := d.DB.QueryRow("SELECT id FROM securities WHERE ticker = ?", sec.Ticker).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) GetSecurityByID(id int64) (*models.MSecurity, error) {
	row := d.DB.QueryRow("SELECT id, ticker, name, type, exchange, currency FROM securities WHERE id = ?", id)

	var sec models.MSecurity
	var name, typ, exchange, currency sql.NullString
	err := row.Scan(&sec.ID, &sec.Ticker, &name, &typ, &exchange, &currency)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sec.Name = name.String
	sec.Type = typ.String
	sec.Exchange = exchange.String
	sec.Currency = currency.String
	return &sec, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) ListSecurities() ([]models.MSecurity, error) {
	rows, err := d.DB.Query("SELECT id, ticker, name, type, exchange, currency FROM securities ORDER BY ticker")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var secs []models.MSecurity
	for rows.Next() {
		var sec models.MSecurity
		var name, typ, exchange, currency sql.NullString
		if err := rows.Scan(&sec.ID, &sec.Ticker, &name, &typ, &exchange, &currency); err != nil {
			return nil, err
		}
		sec.Name = name.String
		sec.Type = typ.String
		sec.Exchange = exchange.String
		sec.Currency = currency.String
		secs = append(secs, sec)
	}
	return secs, rows.Err()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) UpsertDailyPrices(prices []models.MDailyPrice) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO daily_prices (security_id, date, open, high, low, close, adj_close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (security_id, date) DO UPDATE SET
			open = excluded.open,
			high = excluded.high,
			low = excluded.low,
			close = excluded.close,
			adj_close = excluded.adj_close,
			volume = excluded.volume
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range prices {
		_, err := stmt.Exec(p.SecurityID, p.Date.Format(dateLayout),
			p.Open, p.High, p.Low, p.Close, p.AdjClose, p.Volume)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) QueryDailyPrices(filter models.MPriceFilter) ([]models.MPriceRow, error) {
	if filter.Invalid {
		return nil, nil
	}

	query := `
		SELECT s.ticker, s.name, p.date, p.open, p.high, p.low, p.close, p.adj_close, p.volume
		FROM daily_prices p
		JOIN securities s ON s.id = p.security_id
	`
	var conds []string
	var args []interface{}

	if filter.Ticker != "" {
		conds = append(conds, "s.ticker = ?")
		args = append(args, filter.Ticker)
	}
	if !filter.SpecificDate.IsZero() {
		conds = append(conds, "p.date = ?")
		args = append(args, filter.SpecificDate.Format(dateLayout))
	}
	if !filter.StartDate.IsZero() {
		conds = append(conds, "p.date >= ?")
		args = append(args, filter.StartDate.Format(dateLayout))
	}
	if !filter.EndDate.IsZero() {
		conds = append(conds, "p.date <= ?")
		args = append(args, filter.EndDate.Format(dateLayout))
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY s.ticker, p.date ASC"

	rows, err := d.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MPriceRow
	for rows.Next() {
		var r models.MPriceRow
		var name sql.NullString
		var dateStr string
		if err := rows.Scan(&r.Ticker, &name, &dateStr, &r.Open, &r.High, &r.Low, &r.Close, &r.AdjClose, &r.Volume); err != nil {
			return nil, err
		}
		r.Name = name.String
		r.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in daily_prices: %w", dateStr, err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) TableNames() ([]string, error) {
	rows, err := d.DB.Query("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Ping() error {
	if d.DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return d.DB.Ping()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
