package query

import (
	"fmt"

	"price-tracker/src/helpers"
	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"

	"github.com/dustin/go-humanize"
)

// -----------------------------------------------------------------------------
// Engine turns a parsed filter into table rows and chart series.
// -----------------------------------------------------------------------------

type Engine struct {
	DB     interfaces.IDatabase
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewEngine(db interfaces.IDatabase, log *logger.Logger) *Engine {
	return &Engine{
		DB:     db,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

// Run executes the filter and assembles the result. Rows come back ordered
// by ticker then date, and the chart series follow that same order.
func (e *Engine) Run(filter models.MPriceFilter, notices []models.MQueryNotice) (*models.MQueryResult, error) {
	rows, err := e.DB.QueryDailyPrices(filter)
	if err != nil {
		return nil, helpers.NewStorageError("price query failed", err)
	}

	result := &models.MQueryResult{
		Rows:    make([]models.MPriceView, 0, len(rows)),
		Chart:   []models.MChartSeries{},
		Notices: notices,
	}
	if result.Notices == nil {
		result.Notices = []models.MQueryNotice{}
	}

	var series *models.MChartSeries
	for _, r := range rows {
		date := r.Date.Format(dateLayout)

		result.Rows = append(result.Rows, models.MPriceView{
			Ticker:   r.Ticker,
			Name:     r.Name,
			Date:     date,
			Open:     FormatPrice(r.Open),
			High:     FormatPrice(r.High),
			Low:      FormatPrice(r.Low),
			Close:    FormatPrice(r.Close),
			AdjClose: FormatPrice(r.AdjClose),
			Volume:   FormatVolume(r.Volume),
		})

		// Rows arrive grouped by ticker, so a ticker change starts a
		// new series. Null closes are skipped, and a security whose
		// rows are all null produces no series at all.
		if r.Close == nil {
			continue
		}
		if series == nil || series.Ticker != r.Ticker {
			result.Chart = append(result.Chart, models.MChartSeries{
				Ticker: r.Ticker,
				Label:  seriesLabel(r.Ticker, r.Name),
				Points: []models.MChartPoint{},
			})
			series = &result.Chart[len(result.Chart)-1]
		}
		series.Points = append(series.Points, models.MChartPoint{
			Date:  date,
			Close: *r.Close,
		})
	}

	return result, nil
}

// -----------------------------------------------------------------------------

func seriesLabel(ticker, name string) string {
	if name == "" {
		return ticker
	}
	return fmt.Sprintf("%s (%s)", name, ticker)
}

// FormatPrice renders a nullable price for display.
func FormatPrice(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatVolume renders a nullable volume with thousands separators.
func FormatVolume(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Comma(*v)
}
