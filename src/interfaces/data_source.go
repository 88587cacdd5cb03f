package interfaces

import (
	"time"

	"price-tracker/src/models"
)

// -----------------------------------------------------------------------------
// IDataSource interface for fetching price history from external providers.
// -----------------------------------------------------------------------------

type IDataSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchDailyHistory retrieves daily OHLCV bars for ticker between from
	// and to (inclusive), plus provider metadata about the instrument
	// (type, exchange, currency). The returned records carry no SecurityID;
	// the caller assigns it before persisting.
	FetchDailyHistory(ticker string, from, to time.Time) ([]models.MDailyPrice, models.MSecurityMeta, error)
}
