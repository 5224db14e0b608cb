package watchlist

import (
	"errors"
	"testing"

	"StockBoard/internal/collector"
	"StockBoard/internal/model"
)

// flakyFetcher fails for the symbols listed in bad and succeeds otherwise.
type flakyFetcher struct {
	bad map[string]bool
}

func (f *flakyFetcher) Name() string { return "flaky" }

func (f *flakyFetcher) FetchBars(symbol string, period collector.Period) (model.Series, error) {
	return model.Series{}, errors.New("not used")
}

func (f *flakyFetcher) FetchQuote(symbol string) (model.Quote, error) {
	if f.bad[symbol] {
		return model.Quote{}, collector.ErrNoData
	}
	return model.Quote{Symbol: symbol, Last: 42}, nil
}

func TestSnapshot_FailureDegradesOnlyThatSymbol(t *testing.T) {
	fetcher := &flakyFetcher{bad: map[string]bool{"GOOGL": true}}
	entries := Snapshot(fetcher, []string{"AAPL", "GOOGL", "AMZN"})

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Err != nil || entries[2].Err != nil {
		t.Error("healthy symbols must not be affected by a neighbor's failure")
	}
	if entries[1].Err == nil {
		t.Error("expected the failing symbol to carry its error")
	}
	if entries[0].Quote.Last != 42 {
		t.Errorf("expected quote for AAPL, got %+v", entries[0].Quote)
	}
}

func TestSnapshot_EmptyList(t *testing.T) {
	entries := Snapshot(&flakyFetcher{}, nil)
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
