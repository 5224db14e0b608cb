package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockBoard/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	// now is swappable for deterministic window tests.
	now func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. baseURL overrides the
// public endpoint when non-empty; proxyURL is applied to the transport when set.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		now: time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchBars retrieves the chart for symbol over the given period. Every period
// except 1wk delegates window resolution to the provider's range keyword; the
// 1wk period computes an explicit now−7d..now unix window because the
// provider's native "1wk" range is unsupported at 30-minute granularity.
func (f *YahooFetcher) FetchBars(symbol string, period Period) (model.Series, error) {
	interval, err := period.Interval()
	if err != nil {
		return model.Series{}, err
	}

	q := url.Values{}
	q.Set("interval", interval)
	if period == PeriodWeek {
		end := f.now()
		start := end.AddDate(0, 0, -7)
		q.Set("period1", fmt.Sprintf("%d", start.Unix()))
		q.Set("period2", fmt.Sprintf("%d", end.Unix()))
	} else {
		q.Set("range", string(period))
	}

	bars, err := f.fetchChart(symbol, q)
	if err != nil {
		return model.Series{}, err
	}
	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: f.now()}, nil
}

// FetchQuote retrieves the current day's 1-minute bars and reduces them to a
// last-price snapshot with the day's change.
func (f *YahooFetcher) FetchQuote(symbol string) (model.Quote, error) {
	q := url.Values{}
	q.Set("interval", "1m")
	q.Set("range", "1d")
	bars, err := f.fetchChart(symbol, q)
	if err != nil {
		return model.Quote{}, err
	}

	first, last := bars[0], bars[len(bars)-1]
	quote := model.Quote{
		Symbol: symbol,
		Last:   last.Close,
		Change: last.Close - first.Open,
		AsOf:   last.Time,
	}
	if first.Open != 0 {
		quote.PctChange = quote.Change / first.Open * 100
	}
	return quote, nil
}

func (f *YahooFetcher) fetchChart(symbol string, query url.Values) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(symbol), query.Encode())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("yahoo: symbol %s: %w", symbol, ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error %s: %s: %w",
			chart.Chart.Error.Code, chart.Chart.Error.Description, ErrNoData)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: symbol %s: %w", symbol, ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: symbol %s: %w", symbol, ErrNoData)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: symbol %s: all bars null: %w", symbol, ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
