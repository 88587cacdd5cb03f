package query

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"price-tracker/src/models"
)

const dateLayout = "2006-01-02"

// -----------------------------------------------------------------------------
// Request parsing. Bad input never aborts the request: a malformed specific
// date widens the query with a warning, while a bad or inverted range flags
// the filter invalid so the store returns nothing.
// -----------------------------------------------------------------------------

func ParseFilter(values url.Values, now time.Time) (models.MPriceFilter, []models.MQueryNotice) {
	var notices []models.MQueryNotice

	filter := models.MPriceFilter{
		Ticker: strings.TrimSpace(values.Get("security_ticker")),
	}

	mode := values.Get("date_option")
	if mode == "" {
		mode = models.DateModeAll
	}

	switch mode {
	case models.DateModeAll:
		filter.DateMode = models.DateModeAll

	case models.DateModeSpecific:
		filter.DateMode = models.DateModeSpecific
		raw := values.Get("specific_date")
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			notices = append(notices, models.MQueryNotice{
				Level: "warning",
				Text:  fmt.Sprintf("Invalid date %q. Showing all dates.", raw),
			})
		} else {
			filter.SpecificDate = d
		}

	case models.DateModeLastYear:
		filter.DateMode = models.DateModeLastYear
		filter.StartDate = now.AddDate(0, 0, -365)

	case models.DateModeRange:
		filter.DateMode = models.DateModeRange
		rawStart := values.Get("start_date")
		rawEnd := values.Get("end_date")

		start, errStart := time.Parse(dateLayout, rawStart)
		end, errEnd := time.Parse(dateLayout, rawEnd)

		if errStart != nil || errEnd != nil {
			filter.Invalid = true
			notices = append(notices, models.MQueryNotice{
				Level: "error",
				Text:  "Invalid date range. Provide both dates as YYYY-MM-DD.",
			})
		} else if start.After(end) {
			filter.Invalid = true
			notices = append(notices, models.MQueryNotice{
				Level: "error",
				Text:  fmt.Sprintf("Start date %s is after end date %s.", rawStart, rawEnd),
			})
		} else {
			filter.StartDate = start
			filter.EndDate = end
		}

	default:
		filter.DateMode = models.DateModeAll
		notices = append(notices, models.MQueryNotice{
			Level: "warning",
			Text:  fmt.Sprintf("Unknown date option %q. Showing all dates.", mode),
		})
	}

	return filter, notices
}
