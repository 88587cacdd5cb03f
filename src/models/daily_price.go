package models

import "time"

// MDailyPrice is one OHLCV record for a security on a calendar date.
// Pointer fields map to nullable columns: Yahoo regularly reports gaps.
type MDailyPrice struct {
	SecurityID int64     `json:"security_id"`
	Date       time.Time `json:"date"`
	Open       *float64  `json:"open"`
	High       *float64  `json:"high"`
	Low        *float64  `json:"low"`
	Close      *float64  `json:"close"`
	AdjClose   *float64  `json:"adj_close"`
	Volume     *int64    `json:"volume"`
}

// MPriceRow is a daily price joined with its security identity, as returned
// by the filter engine for tabular display.
type MPriceRow struct {
	Ticker   string    `json:"ticker"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Open     *float64  `json:"open"`
	High     *float64  `json:"high"`
	Low      *float64  `json:"low"`
	Close    *float64  `json:"close"`
	AdjClose *float64  `json:"adj_close"`
	Volume   *int64    `json:"volume"`
}
