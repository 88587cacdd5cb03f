package query

import (
	"net/url"
	"testing"
	"time"

	"price-tracker/src/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------

func TestParseFilterDefaults(t *testing.T) {
	filter, notices := ParseFilter(url.Values{}, testNow)

	if filter.DateMode != models.DateModeAll {
		t.Errorf("expected date mode all, got %q", filter.DateMode)
	}
	if filter.Ticker != "" || filter.Invalid {
		t.Errorf("unexpected filter: %+v", filter)
	}
	if len(notices) != 0 {
		t.Errorf("unexpected notices: %v", notices)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterTickerTrimmed(t *testing.T) {
	v := url.Values{"security_ticker": {"  AAPL  "}}
	filter, _ := ParseFilter(v, testNow)

	if filter.Ticker != "AAPL" {
		t.Errorf("expected trimmed ticker AAPL, got %q", filter.Ticker)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterSpecificDate(t *testing.T) {
	v := url.Values{
		"date_option":   {models.DateModeSpecific},
		"specific_date": {"2024-01-10"},
	}
	filter, notices := ParseFilter(v, testNow)

	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !filter.SpecificDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, filter.SpecificDate)
	}
	if len(notices) != 0 {
		t.Errorf("unexpected notices: %v", notices)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterInvalidSpecificDateWidens(t *testing.T) {
	v := url.Values{
		"date_option":   {models.DateModeSpecific},
		"specific_date": {"not-a-date"},
	}
	filter, notices := ParseFilter(v, testNow)

	if filter.Invalid {
		t.Error("invalid specific date must not invalidate the filter")
	}
	if !filter.SpecificDate.IsZero() {
		t.Errorf("expected no date restriction, got %v", filter.SpecificDate)
	}
	if len(notices) != 1 || notices[0].Level != "warning" {
		t.Errorf("expected one warning notice, got %v", notices)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterLastYear(t *testing.T) {
	v := url.Values{"date_option": {models.DateModeLastYear}}
	filter, _ := ParseFilter(v, testNow)

	want := testNow.AddDate(0, 0, -365)
	if !filter.StartDate.Equal(want) {
		t.Errorf("expected start %v, got %v", want, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		t.Errorf("last_year must be open-ended, got end %v", filter.EndDate)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterValidRange(t *testing.T) {
	v := url.Values{
		"date_option": {models.DateModeRange},
		"start_date":  {"2024-01-01"},
		"end_date":    {"2024-03-31"},
	}
	filter, notices := ParseFilter(v, testNow)

	if filter.Invalid {
		t.Error("valid range flagged invalid")
	}
	if filter.StartDate.After(filter.EndDate) {
		t.Error("bounds not applied")
	}
	if len(notices) != 0 {
		t.Errorf("unexpected notices: %v", notices)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterInvertedRangeIsInvalid(t *testing.T) {
	v := url.Values{
		"date_option": {models.DateModeRange},
		"start_date":  {"2024-03-31"},
		"end_date":    {"2024-01-01"},
	}
	filter, notices := ParseFilter(v, testNow)

	if !filter.Invalid {
		t.Error("inverted range must invalidate the filter")
	}
	if len(notices) != 1 || notices[0].Level != "error" {
		t.Errorf("expected one error notice, got %v", notices)
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterMalformedRangeIsInvalid(t *testing.T) {
	cases := []url.Values{
		{"date_option": {models.DateModeRange}, "start_date": {"2024-01-01"}},
		{"date_option": {models.DateModeRange}, "end_date": {"2024-01-01"}},
		{"date_option": {models.DateModeRange}, "start_date": {"bad"}, "end_date": {"2024-01-01"}},
		{"date_option": {models.DateModeRange}},
	}

	for i, v := range cases {
		filter, notices := ParseFilter(v, testNow)
		if !filter.Invalid {
			t.Errorf("case %d: malformed range must invalidate the filter", i)
		}
		if len(notices) == 0 || notices[0].Level != "error" {
			t.Errorf("case %d: expected error notice, got %v", i, notices)
		}
	}
}

// -----------------------------------------------------------------------------

func TestParseFilterUnknownModeFallsBack(t *testing.T) {
	v := url.Values{"date_option": {"fortnight"}}
	filter, notices := ParseFilter(v, testNow)

	if filter.DateMode != models.DateModeAll {
		t.Errorf("expected fallback to all, got %q", filter.DateMode)
	}
	if filter.Invalid {
		t.Error("unknown mode must not invalidate the filter")
	}
	if len(notices) != 1 || notices[0].Level != "warning" {
		t.Errorf("expected one warning notice, got %v", notices)
	}
}
