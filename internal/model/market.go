package model

import "time"

// Bar represents a single OHLCV candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds the ordered price history for one symbol.
// Bars are strictly increasing by timestamp as delivered by the provider.
// A Series is built fresh on every fetch and discarded after the render cycle.
type Series struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Empty reports whether the series carries no bars.
func (s Series) Empty() bool { return len(s.Bars) == 0 }

// Closes extracts the closing-price column.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Quote is a quick-glance snapshot of a symbol's latest price, used by the
// sidebar watchlist.
type Quote struct {
	Symbol    string
	Last      float64
	Change    float64
	PctChange float64
	AsOf      time.Time
}
