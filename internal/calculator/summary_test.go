package calculator

import (
	"testing"
	"time"

	"StockBoard/internal/model"
)

func barSeries(closes ...float64) model.Series {
	bars := make([]model.Bar, len(closes))
	base := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   base.Add(time.Duration(i) * time.Minute),
			Open:   c - 0.5,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 100,
		}
	}
	return model.Series{Symbol: "TEST", Bars: bars}
}

func TestSummarize_AgainstFirstClose(t *testing.T) {
	s := barSeries(100, 102, 98, 110)
	sum, err := Summarize(s, ReferenceClose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.LastClose != 110 {
		t.Errorf("last close: expected 110, got %.2f", sum.LastClose)
	}
	if sum.Change != 10 {
		t.Errorf("change: expected 10, got %.2f", sum.Change)
	}
	if sum.PctChange != 10 {
		t.Errorf("pct change: expected 10, got %.2f", sum.PctChange)
	}
	if sum.High != 111 || sum.Low != 97 {
		t.Errorf("range: expected 111/97, got %.2f/%.2f", sum.High, sum.Low)
	}
	if sum.Volume != 400 {
		t.Errorf("volume: expected 400, got %.2f", sum.Volume)
	}
}

func TestSummarize_AgainstFirstOpen(t *testing.T) {
	s := barSeries(100, 110)
	sum, err := Summarize(s, ReferenceOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// first open = 99.5
	if sum.Change != 10.5 {
		t.Errorf("change vs open: expected 10.5, got %.2f", sum.Change)
	}
}

func TestSummarize_ZeroReference(t *testing.T) {
	s := barSeries(0, 5)
	sum, err := Summarize(s, ReferenceClose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.PctChange != 0 {
		t.Errorf("expected pct change 0 for zero reference, got %.2f", sum.PctChange)
	}
	if sum.Change != 5 {
		t.Errorf("expected absolute change 5, got %.2f", sum.Change)
	}
}

func TestSummarize_EmptySeries(t *testing.T) {
	if _, err := Summarize(model.Series{Symbol: "TEST"}, ReferenceClose); err == nil {
		t.Fatal("expected error for empty series")
	}
}
