package yahoo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s"

// -----------------------------------------------------------------------------

type YahooFinanceSource struct {
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewYahooFinanceSource(netMgr interfaces.INetworkManager, log *logger.Logger) *YahooFinanceSource {
	return &YahooFinanceSource{
		Network: netMgr,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

func (s *YahooFinanceSource) Name() string {
	return "yahoo_finance"
}

// -----------------------------------------------------------------------------

// FetchDailyHistory pulls daily bars for the ticker between from and to
// (inclusive) via the chart API.
func (s *YahooFinanceSource) FetchDailyHistory(ticker string, from, to time.Time) ([]models.MDailyPrice, models.MSecurityMeta, error) {
	params := map[string]string{
		"interval":       "1d",
		"period1":        strconv.FormatInt(from.Unix(), 10),
		"period2":        strconv.FormatInt(to.AddDate(0, 0, 1).Unix(), 10),
		"includePrePost": "false",
		"events":         "div,splits",
	}

	url := fmt.Sprintf(chartURL, ticker)

	respBytes, err := s.Network.Get(url, params)
	if err != nil {
		return nil, models.MSecurityMeta{}, fmt.Errorf("network error for %s: %w", ticker, err)
	}

	return s.parseChartResponse(ticker, respBytes)
}

// -----------------------------------------------------------------------------

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             string `json:"currency"`
				Symbol               string `json:"symbol"`
				ExchangeName         string `json:"exchangeName"`
				InstrumentType       string `json:"instrumentType"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
				Adjclose []struct {
					Adjclose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

func (s *YahooFinanceSource) parseChartResponse(ticker string, data []byte) ([]models.MDailyPrice, models.MSecurityMeta, error) {
	var meta models.MSecurityMeta

	var resp yahooChartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, meta, fmt.Errorf("json unmarshal failed: %w", err)
	}

	if resp.Chart.Error != nil {
		return nil, meta, fmt.Errorf("yahoo api error: %s - %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, meta, fmt.Errorf("no result in response for %s", ticker)
	}

	result := resp.Chart.Result[0]
	meta = models.MSecurityMeta{
		Type:     result.Meta.InstrumentType,
		Exchange: result.Meta.ExchangeName,
		Currency: result.Meta.Currency,
	}

	if len(result.Timestamp) == 0 {
		// Valid response with no bars, e.g. a closed-market day
		return nil, meta, nil
	}

	if len(result.Indicators.Quote) == 0 {
		return nil, meta, fmt.Errorf("no quote data in response for %s", ticker)
	}
	quote := result.Indicators.Quote[0]

	// Alignment check before indexing anything
	n := len(result.Timestamp)
	if len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n ||
		len(quote.Close) != n || len(quote.Volume) != n {
		return nil, meta, fmt.Errorf("data alignment error for %s", ticker)
	}

	var adjClose []*float64
	if len(result.Indicators.Adjclose) > 0 && len(result.Indicators.Adjclose[0].Adjclose) == n {
		adjClose = result.Indicators.Adjclose[0].Adjclose
	}

	// Bars are exchange-local days. Collapsing the timestamp to its date in
	// the exchange timezone keeps late-session bars on the right calendar day.
	loc := time.UTC
	if result.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(result.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	prices := make([]models.MDailyPrice, 0, n)
	for i := 0; i < n; i++ {
		day := time.Unix(result.Timestamp[i], 0).In(loc)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		p := models.MDailyPrice{
			Date:   date,
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: quote.Volume[i],
		}
		if adjClose != nil {
			p.AdjClose = adjClose[i]
		}

		// A bar with no fields at all carries nothing worth storing
		if p.Open == nil && p.High == nil && p.Low == nil && p.Close == nil && p.Volume == nil {
			continue
		}

		prices = append(prices, p)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})

	s.Logger.Info("Fetched %s: %d daily bars", ticker, len(prices))
	return prices, meta, nil
}
