package models

// -----------------------------------------------------------------------------
// View models returned by the price query API. Numeric fields are already
// formatted so clients render them as-is.
// -----------------------------------------------------------------------------

type MPriceView struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	AdjClose string `json:"adj_close"`
	Volume   string `json:"volume"`
}

// MChartPoint is a single plotted close. Rows without a close price never
// become points.
type MChartPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

type MChartSeries struct {
	Ticker string        `json:"ticker"`
	Label  string        `json:"label"`
	Points []MChartPoint `json:"points"`
}

type MQueryNotice struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type MQueryResult struct {
	Rows    []MPriceView   `json:"rows"`
	Chart   []MChartSeries `json:"series"`
	Notices []MQueryNotice `json:"notices"`
}
