package web

import (
	"math"

	"StockBoard/internal/model"
	"StockBoard/internal/pipeline"
	"StockBoard/internal/watchlist"
)

// Row is one line of the rendered data table. Columns are nullable: missing
// provider values and the undefined leading indicator positions encode as
// null, and unselected indicators omit their column entirely.
type Row struct {
	Datetime string   `json:"Datetime"`
	Open     *float64 `json:"Open"`
	High     *float64 `json:"High"`
	Low      *float64 `json:"Low"`
	Close    *float64 `json:"Close"`
	Volume   *float64 `json:"Volume"`
	SMA20    *float64 `json:"SMA_20,omitempty"`
	EMA20    *float64 `json:"EMA_20,omitempty"`
}

type summaryBody struct {
	LastClose float64 `json:"last_close"`
	Change    float64 `json:"change"`
	PctChange float64 `json:"pct_change"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    float64 `json:"volume"`
}

type warningBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type dashboardBody struct {
	Symbol   string        `json:"symbol"`
	Period   string        `json:"period"`
	Chart    string        `json:"chart"`
	Rows     []Row         `json:"rows"`
	Summary  *summaryBody  `json:"summary,omitempty"`
	Warnings []warningBody `json:"warnings"`
}

type watchEntryBody struct {
	Symbol    string   `json:"symbol"`
	Last      *float64 `json:"last,omitempty"`
	Change    *float64 `json:"change,omitempty"`
	PctChange *float64 `json:"pct_change,omitempty"`
	Message   string   `json:"message,omitempty"`
}

const datetimeLayout = "2006-01-02T15:04:05-07:00"

// buildDashboard shapes a pipeline result into the boundary table, keeping
// only the indicator columns the request selected.
func buildDashboard(req pipeline.Request, res pipeline.Result) dashboardBody {
	body := dashboardBody{
		Symbol:   req.Symbol,
		Period:   string(req.Period),
		Chart:    string(req.Chart),
		Rows:     buildRows(res.Series, res.Indicators, req.Indicators),
		Warnings: make([]warningBody, 0, len(res.Warnings)),
	}
	if res.Summary != nil {
		body.Summary = &summaryBody{
			LastClose: zeroNaN(res.Summary.LastClose),
			Change:    zeroNaN(res.Summary.Change),
			PctChange: zeroNaN(res.Summary.PctChange),
			High:      zeroNaN(res.Summary.High),
			Low:       zeroNaN(res.Summary.Low),
			Volume:    zeroNaN(res.Summary.Volume),
		}
	}
	for _, w := range res.Warnings {
		body.Warnings = append(body.Warnings, warningBody{Kind: string(w.Kind), Message: w.Message})
	}
	return body
}

func buildRows(s model.Series, ind *model.IndicatorSet, selected []string) []Row {
	wantSMA := ind != nil && contains(selected, "SMA_20")
	wantEMA := ind != nil && contains(selected, "EMA_20")

	rows := make([]Row, len(s.Bars))
	for i, b := range s.Bars {
		rows[i] = Row{
			Datetime: b.Time.Format(datetimeLayout),
			Open:     nullable(b.Open),
			High:     nullable(b.High),
			Low:      nullable(b.Low),
			Close:    nullable(b.Close),
			Volume:   nullable(b.Volume),
		}
		if wantSMA {
			rows[i].SMA20 = nullable(ind.SMA20[i])
		}
		if wantEMA {
			rows[i].EMA20 = nullable(ind.EMA20[i])
		}
	}
	return rows
}

func buildWatchlist(entries []watchlist.Entry) []watchEntryBody {
	body := make([]watchEntryBody, len(entries))
	for i, e := range entries {
		body[i].Symbol = e.Symbol
		if e.Err != nil {
			body[i].Message = "no data available"
			continue
		}
		last, change, pct := e.Quote.Last, e.Quote.Change, e.Quote.PctChange
		body[i].Last = &last
		body[i].Change = &change
		body[i].PctChange = &pct
	}
	return body
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// zeroNaN maps undefined metric values to zero so a degraded summary still
// renders.
func zeroNaN(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
