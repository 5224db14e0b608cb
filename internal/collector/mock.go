package collector

import (
	"time"

	"StockBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  map[Period][]model.Bar
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol string, period Period) (model.Series, error) {
	if m.Err != nil {
		return model.Series{}, m.Err
	}
	if bars, ok := m.Bars[period]; ok {
		return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
	}
	count := 60
	if period == PeriodIntraday {
		count = 390 // one trading day of 1-minute bars
	}
	return model.Series{
		Symbol:    symbol,
		Bars:      generateMockBars(m.Price, count),
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockFetcher) FetchQuote(symbol string) (model.Quote, error) {
	if m.Err != nil {
		return model.Quote{}, m.Err
	}
	return model.Quote{Symbol: symbol, Last: m.Price, AsOf: time.Now()}, nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().UTC().Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
