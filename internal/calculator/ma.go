// Package calculator derives moving-average columns and descriptive metrics
// from a price series. Undefined positions in derived columns hold math.NaN().
package calculator

import (
	"errors"
	"math"

	"StockBoard/internal/model"
)

// DefaultWindow is the trailing window for both dashboard moving averages.
const DefaultWindow = 20

// SMA computes the trailing simple moving average over period. The result is
// aligned 1:1 with prices; positions before the first full window are NaN.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}
	result := make([]float64, len(prices))
	for i := range result {
		result[i] = math.NaN()
	}
	if len(prices) < period {
		return result
	}

	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			result[i] = sum / float64(period)
		}
	}
	return result
}

// EMA computes the trailing exponential moving average over period with
// smoothing factor 2/(period+1), seeded by the simple average of the first
// full window. Positions before the seed are NaN.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}
	result := make([]float64, len(prices))
	for i := range result {
		result[i] = math.NaN()
	}
	if len(prices) < period {
		return result
	}

	multiplier := 2.0 / float64(period+1)

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += prices[i]
	}
	seed /= float64(period)
	result[period-1] = seed

	for i := period; i < len(prices); i++ {
		prev := result[i-1]
		result[i] = (prices[i]-prev)*multiplier + prev
	}
	return result
}

// ComputeIndicators derives the SMA/EMA columns for the series closes. Missing
// closes are densified by forward- then backward-fill before averaging. An
// all-missing closing column is a data-quality error; the caller keeps the
// series unmodified in that case.
func ComputeIndicators(s model.Series, window int) (model.IndicatorSet, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	closes := s.Closes()
	if !hasValue(closes) {
		return model.IndicatorSet{}, errors.New("closing-price column is missing or contains only NaN values")
	}
	dense := Densify(closes)
	return model.IndicatorSet{
		Window: window,
		SMA20:  SMA(dense, window),
		EMA20:  EMA(dense, window),
	}, nil
}

func hasValue(prices []float64) bool {
	for _, p := range prices {
		if !math.IsNaN(p) {
			return true
		}
	}
	return false
}
