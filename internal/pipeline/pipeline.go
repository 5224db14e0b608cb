// Package pipeline composes the fetch, normalize, indicator, and summary
// stages into one per-refresh run. Every stage catches its own failures and
// degrades; the result always carries whatever partial data survived.
package pipeline

import (
	"log"
	"time"

	"StockBoard/internal/calculator"
	"StockBoard/internal/collector"
	"StockBoard/internal/model"
	"StockBoard/internal/normalize"
	"StockBoard/internal/telemetry"
)

// ChartType selects the visual style the boundary renders.
type ChartType string

const (
	ChartCandlestick ChartType = "candlestick"
	ChartLine        ChartType = "line"
)

// Request is the immutable per-refresh parameter set. One Request produces
// one Result; no state is shared across invocations.
type Request struct {
	Symbol     string
	Period     collector.Period
	Chart      ChartType
	Indicators []string // zero or more of "SMA_20", "EMA_20"
	Reference  calculator.ReferenceMode
}

// Result is the pipeline output handed to the presentation boundary.
// Indicators and Summary are nil when their stage degraded; Warnings holds
// the user-visible failures accumulated along the way.
type Result struct {
	Series     model.Series
	Indicators *model.IndicatorSet
	Summary    *model.MetricsSummary
	Warnings   []Failure
}

// Runner wires the pipeline stages to a data source and display zone.
type Runner struct {
	Fetcher collector.Fetcher
	Zone    *time.Location
	Window  int
	Metrics *telemetry.Metrics
}

// NewRunner creates a pipeline runner.
func NewRunner(fetcher collector.Fetcher, zone *time.Location, window int, metrics *telemetry.Metrics) *Runner {
	if window <= 0 {
		window = calculator.DefaultWindow
	}
	return &Runner{Fetcher: fetcher, Zone: zone, Window: window, Metrics: metrics}
}

// Run executes one refresh: fetch, normalize, indicators, summary. An empty
// or failed fetch short-circuits with a retrieval warning; later stages
// degrade individually without aborting the run.
func (r *Runner) Run(req Request) Result {
	var res Result

	if req.Symbol == "" {
		res.Warnings = append(res.Warnings, newFailure(FailureRetrieval, "ticker symbol must not be empty"))
		return res
	}

	start := time.Now()
	series, err := r.Fetcher.FetchBars(req.Symbol, req.Period)
	r.Metrics.ObserveFetch(r.Fetcher.Name(), time.Since(start), err)
	if err != nil {
		log.Printf("[WARN] fetch %s %s: %v", req.Symbol, req.Period, err)
		res.Warnings = append(res.Warnings, newFailure(FailureRetrieval,
			"no data available for %s in the selected time period", req.Symbol))
		return res
	}

	res.Series = normalize.Normalize(series, r.Zone)

	if ind, warn := r.computeIndicators(res.Series); warn != nil {
		log.Printf("[WARN] indicators %s: %v", req.Symbol, warn)
		res.Warnings = append(res.Warnings, *warn)
	} else {
		res.Indicators = ind
	}

	if sum, warn := r.summarize(res.Series, req.Reference); warn != nil {
		log.Printf("[WARN] metrics %s: %v", req.Symbol, warn)
		res.Warnings = append(res.Warnings, *warn)
		res.Summary = &model.MetricsSummary{} // zero-valued metrics, render continues
	} else {
		res.Summary = sum
	}

	return res
}

// computeIndicators runs the indicator stage under a panic guard. A missing
// or degenerate closing column degrades to a data-quality warning; anything
// unexpected degrades to a computation warning. The series itself is never
// modified.
func (r *Runner) computeIndicators(s model.Series) (ind *model.IndicatorSet, warn *Failure) {
	defer func() {
		if rec := recover(); rec != nil {
			ind = nil
			f := newFailure(FailureComputation, "error adding technical indicators: %v", rec)
			warn = &f
		}
	}()

	set, err := calculator.ComputeIndicators(s, r.Window)
	if err != nil {
		f := newFailure(FailureDataQuality, "error adding technical indicators: %v", err)
		return nil, &f
	}
	return &set, nil
}

func (r *Runner) summarize(s model.Series, ref calculator.ReferenceMode) (sum *model.MetricsSummary, warn *Failure) {
	defer func() {
		if rec := recover(); rec != nil {
			sum = nil
			f := newFailure(FailureComputation, "error calculating metrics: %v", rec)
			warn = &f
		}
	}()

	m, err := calculator.Summarize(s, ref)
	if err != nil {
		f := newFailure(FailureComputation, "error calculating metrics: %v", err)
		return nil, &f
	}
	return &m, nil
}
