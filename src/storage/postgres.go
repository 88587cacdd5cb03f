package storage

import (
	"database/sql"
	"fmt"
	"time"

	"price-tracker/src/logger"
	"price-tracker/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type AsyncPostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncPostgresDB(cfg *models.MConfig, log *logger.Logger) (*AsyncPostgresDB, error) {
	return &AsyncPostgresDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) Initialize() error {
	db, err := sql.Open("postgres", d.Config.Storage.DBConnectionString)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	d.DB = db
	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) createTables() error {
	query := `
		CREATE TABLE IF NOT EXISTS securities (
			id BIGSERIAL PRIMARY KEY,
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
			security_id BIGINT NOT NULL REFERENCES securities(id),
			date DATE NOT NULL,
			open DOUBLE PRECISION,
			high DOUBLE PRECISION,
			low DOUBLE PRECISION,
			close DOUBLE PRECISION,
			adj_close DOUBLE PRECISION,
			volume BIGINT,
			PRIMARY KEY (security_id, date)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create daily_prices: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) UpsertSecurity(sec models.MSecurity) (int64, error) {
	query := `
		INSERT INTO securities (ticker, name, type, exchange, currency)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ticker) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			exchange = EXCLUDED.exchange,
			currency = EXCLUDED.currency
		RETURNING id
	`
	var id int64
	if err := d.DB.QueryRow(query, sec.Ticker, sec.Name, sec.Type, sec.Exchange, sec.Currency).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) GetSecurityByID(id int64) (*models.MSecurity, error) {
	row := d.DB.QueryRow("SELECT id, ticker, name, type, exchange, currency FROM securities WHERE id = $1", id)

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

func (d *AsyncPostgresDB) ListSecurities() ([]models.MSecurity, error) {
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

func (d *AsyncPostgresDB) UpsertDailyPrices(prices []models.MDailyPrice) error {
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (security_id, date) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close,
			adj_close = EXCLUDED.adj_close,
			volume = EXCLUDED.volume
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

func (d *AsyncPostgresDB) QueryDailyPrices(filter models.MPriceFilter) ([]models.MPriceRow, error) {
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
		args = append(args, filter.Ticker)
		conds = append(conds, fmt.Sprintf("s.ticker = $%d", len(args)))
	}
	if !filter.SpecificDate.IsZero() {
		args = append(args, filter.SpecificDate.Format(dateLayout))
		conds = append(conds, fmt.Sprintf("p.date = $%d", len(args)))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate.Format(dateLayout))
		conds = append(conds, fmt.Sprintf("p.date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate.Format(dateLayout))
		conds = append(conds, fmt.Sprintf("p.date <= $%d", len(args)))
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
		if err := rows.Scan(&r.Ticker, &name, &r.Date, &r.Open, &r.High, &r.Low, &r.Close, &r.AdjClose, &r.Volume); err != nil {
			return nil, err
		}
		r.Name = name.String
		result = append(result, r)
	}
	return result, rows.Err()
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) TableNames() ([]string, error) {
	rows, err := d.DB.Query("SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name")
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

func (d *AsyncPostgresDB) Ping() error {
	if d.DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return d.DB.Ping()
}

// -----------------------------------------------------------------------------

func (d *AsyncPostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
