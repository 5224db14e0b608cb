package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"StockBoard/internal/collector"
	"StockBoard/internal/pipeline"
	"StockBoard/internal/watchlist"
)

var (
	errInvalidChart     = errors.New(`chart must be "candlestick" or "line"`)
	errInvalidIndicator = errors.New(`indicators must be a subset of "SMA_20,EMA_20"`)
)

// setCORS sets CORS headers for REST endpoints.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleDashboard runs the pipeline once for the requested parameters and
// returns the rendered table, metrics summary, and any stage warnings.
// GET /api/dashboard?symbol=ADBE&period=1wk&chart=line&indicators=SMA_20,EMA_20
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.metrics.CountRequest("dashboard")

	req, err := s.parseRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res := s.runner.Run(req)
	s.metrics.CountRun(len(res.Warnings))
	writeJSON(w, http.StatusOK, buildDashboard(req, res))
}

// handleWatchlist returns the sidebar snapshot for the configured symbols.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	s.metrics.CountRequest("watchlist")
	entries := watchlist.Snapshot(s.runner.Fetcher, s.watch)
	writeJSON(w, http.StatusOK, buildWatchlist(entries))
}

// handlePeriods returns the supported period/interval table for the selector.
func (s *Server) handlePeriods(w http.ResponseWriter, r *http.Request) {
	s.metrics.CountRequest("periods")
	type periodInfo struct {
		Period   string `json:"period"`
		Interval string `json:"interval"`
	}
	periods := collector.Periods()
	list := make([]periodInfo, len(periods))
	for i, p := range periods {
		iv, _ := p.Interval()
		list[i] = periodInfo{Period: string(p), Interval: iv}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) parseRequest(r *http.Request) (pipeline.Request, error) {
	q := r.URL.Query()

	req := pipeline.Request{
		Symbol:    strings.ToUpper(strings.TrimSpace(q.Get("symbol"))),
		Period:    collector.PeriodIntraday,
		Chart:     pipeline.ChartCandlestick,
		Reference: s.reference,
	}
	if req.Symbol == "" {
		req.Symbol = s.defaultSymbol
	}

	if v := q.Get("period"); v != "" {
		p := collector.Period(v)
		if _, err := p.Interval(); err != nil {
			return pipeline.Request{}, err
		}
		req.Period = p
	}

	switch q.Get("chart") {
	case "", string(pipeline.ChartCandlestick):
	case string(pipeline.ChartLine):
		req.Chart = pipeline.ChartLine
	default:
		return pipeline.Request{}, errInvalidChart
	}

	if v := q.Get("indicators"); v != "" {
		for _, name := range strings.Split(v, ",") {
			switch strings.TrimSpace(name) {
			case "SMA_20", "EMA_20":
				req.Indicators = append(req.Indicators, strings.TrimSpace(name))
			case "":
			default:
				return pipeline.Request{}, errInvalidIndicator
			}
		}
	}

	return req, nil
}
