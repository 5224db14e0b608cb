package collector

import (
	"errors"
	"fmt"

	"StockBoard/internal/model"
)

// ErrNoData indicates the provider returned no rows for a request: unknown
// symbol, a closed market with no historical bars, or a provider-side error
// body. A single failed attempt is surfaced immediately; there is no retry.
var ErrNoData = errors.New("no data returned by provider")

// Period is a user-selectable time window for the dashboard chart.
type Period string

const (
	PeriodIntraday Period = "1d"
	PeriodWeek     Period = "1wk"
	PeriodMonth    Period = "1mo"
	PeriodYear     Period = "1y"
	PeriodMax      Period = "max"
)

// intervalByPeriod fixes the bar granularity for each period.
var intervalByPeriod = map[Period]string{
	PeriodIntraday: "1m",
	PeriodWeek:     "30m",
	PeriodMonth:    "1d",
	PeriodYear:     "1wk",
	PeriodMax:      "1wk",
}

// Periods lists the supported periods in selector order.
func Periods() []Period {
	return []Period{PeriodIntraday, PeriodWeek, PeriodMonth, PeriodYear, PeriodMax}
}

// Interval returns the bar granularity used for p.
func (p Period) Interval() (string, error) {
	iv, ok := intervalByPeriod[p]
	if !ok {
		return "", fmt.Errorf("unsupported period %q", string(p))
	}
	return iv, nil
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchBars retrieves the price history for symbol over the given period,
	// in the provider's native timezone. Returns ErrNoData when the provider
	// has no rows for the request.
	FetchBars(symbol string, period Period) (model.Series, error)
	// FetchQuote retrieves the latest price snapshot for symbol.
	FetchQuote(symbol string) (model.Quote, error)
	Name() string
}
