package importer

import (
	"fmt"
	"time"

	"price-tracker/src/helpers"
	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
	"price-tracker/src/tracker"
	"price-tracker/src/utils"
)

// Supported fetch windows.
const (
	Period25Years      = "25_years"
	Period1Year        = "1_year"
	PeriodCurrentPrice = "current_price"
)

// -----------------------------------------------------------------------------
// Runner executes one import job at a time on a background goroutine. The
// tracker enforces the single-job rule and carries progress to subscribers.
// -----------------------------------------------------------------------------

type Runner struct {
	Config  *models.MConfig
	DB      interfaces.IDatabase
	Source  interfaces.IDataSource
	Tracker *tracker.StatusTracker
	Logger  *logger.Logger

	// now is swappable for tests
	now func() time.Time
}

// -----------------------------------------------------------------------------

func NewRunner(cfg *models.MConfig, db interfaces.IDatabase, source interfaces.IDataSource, t *tracker.StatusTracker, log *logger.Logger) *Runner {
	return &Runner{
		Config:  cfg,
		DB:      db,
		Source:  source,
		Tracker: t,
		Logger:  log,
		now:     time.Now,
	}
}

// -----------------------------------------------------------------------------

// Start validates the request, claims the tracker and launches the job.
// It returns tracker.ErrImportRunning when another job holds the tracker,
// or a ValidationError on bad input. Both leave existing state untouched.
func (r *Runner) Start(securityID int64, timePeriod string) error {
	switch timePeriod {
	case Period25Years, Period1Year, PeriodCurrentPrice:
	default:
		return &helpers.ValidationError{PriceTrackerError: helpers.PriceTrackerError{
			Message: fmt.Sprintf("unknown time period %q", timePeriod),
		}}
	}

	sec, err := r.DB.GetSecurityByID(securityID)
	if err != nil {
		return helpers.NewStorageError("security lookup failed", err)
	}
	if sec == nil {
		return &helpers.ValidationError{PriceTrackerError: helpers.PriceTrackerError{
			Message: fmt.Sprintf("no security with id %d", securityID),
		}}
	}

	task := fmt.Sprintf("Importing %s (%s)", sec.Ticker, timePeriod)
	if err := r.Tracker.Begin(task); err != nil {
		return err
	}

	go r.run(*sec, timePeriod)
	return nil
}

// -----------------------------------------------------------------------------

func (r *Runner) run(sec models.MSecurity, timePeriod string) {
	from, to := r.window(sec.Ticker, timePeriod)

	r.Tracker.Progress(10, fmt.Sprintf("Fetching %s data from %s...", sec.Ticker, r.Source.Name()))

	prices, meta, err := r.Source.FetchDailyHistory(sec.Ticker, from, to)
	if err != nil {
		r.Logger.Error("Fetch failed for %s: %v", sec.Ticker, err)
		r.Tracker.Fail(fmt.Sprintf("Failed to fetch data for %s: %v", sec.Ticker, err))
		return
	}

	if len(prices) == 0 {
		r.Tracker.Finish(fmt.Sprintf("No new data available for %s.", sec.Ticker))
		return
	}

	// Fill in whatever instrument metadata the provider reported
	if sec.Type == "" {
		sec.Type = meta.Type
	}
	if sec.Exchange == "" {
		sec.Exchange = meta.Exchange
	}
	if sec.Currency == "" {
		sec.Currency = meta.Currency
	}

	r.Tracker.Progress(30, fmt.Sprintf("Fetched %d records for %s. Storing...", len(prices), sec.Ticker))

	id, err := r.DB.UpsertSecurity(sec)
	if err != nil {
		r.Logger.Error("Security upsert failed for %s: %v", sec.Ticker, err)
		r.Tracker.Fail(fmt.Sprintf("Failed to store security %s: %v", sec.Ticker, err))
		return
	}

	for i := range prices {
		prices[i].SecurityID = id
	}

	batchSize := r.Config.Import.BatchSize
	if batchSize <= 0 {
		batchSize = len(prices)
	}

	stored := 0
	for start := 0; start < len(prices); start += batchSize {
		end := start + batchSize
		if end > len(prices) {
			end = len(prices)
		}

		if err := r.DB.UpsertDailyPrices(prices[start:end]); err != nil {
			r.Logger.Error("Price upsert failed for %s: %v", sec.Ticker, err)
			r.Tracker.Fail(fmt.Sprintf("Storage error after %d records for %s: %v", stored, sec.Ticker, err))
			return
		}
		stored = end

		// Storage covers the 30..95 stretch of the bar
		progress := 30 + (65*stored)/len(prices)
		r.Tracker.Progress(progress, fmt.Sprintf("Stored %d/%d records for %s", stored, len(prices), sec.Ticker))
	}

	r.Tracker.Finish(fmt.Sprintf("Import complete. %d records stored for %s.", stored, sec.Ticker))
}

// -----------------------------------------------------------------------------

// window maps a time period to the fetch range. current_price resolves to
// the most recent session day on the ticker's exchange calendar.
func (r *Runner) window(ticker, timePeriod string) (time.Time, time.Time) {
	now := r.now().UTC()

	switch timePeriod {
	case Period25Years:
		return now.AddDate(-25, 0, 0), now
	case Period1Year:
		return now.AddDate(0, 0, -365), now
	default:
		day := utils.GetCalendar(ticker).LastTradingDay(now)
		return day, day
	}
}
