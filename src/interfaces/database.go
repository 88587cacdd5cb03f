package interfaces

import "price-tracker/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for the price store.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize creates the securities and daily_prices tables if missing.
	Initialize() error

	// -----------------------------------------------------------------------------

	// UpsertSecurity inserts or updates a security by its unique ticker and
	// returns its id.
	UpsertSecurity(sec models.MSecurity) (int64, error)

	// -----------------------------------------------------------------------------

	// GetSecurityByID returns the security with the given id, or nil.
	GetSecurityByID(id int64) (*models.MSecurity, error)

	// -----------------------------------------------------------------------------

	// ListSecurities returns all securities ordered by ticker.
	ListSecurities() ([]models.MSecurity, error)

	// -----------------------------------------------------------------------------

	// UpsertDailyPrices writes a batch of price records. A conflicting
	// (security_id, date) pair updates the existing row.
	UpsertDailyPrices(prices []models.MDailyPrice) error

	// -----------------------------------------------------------------------------

	// QueryDailyPrices returns rows matching the filter, joined with security
	// identity, ordered by ticker then date ascending. An Invalid filter
	// yields no rows.
	QueryDailyPrices(filter models.MPriceFilter) ([]models.MPriceRow, error)

	// -----------------------------------------------------------------------------

	// TableNames lists the tables present in the store (admin status page).
	TableNames() ([]string, error)

	// -----------------------------------------------------------------------------

	// Ping verifies connectivity.
	Ping() error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
