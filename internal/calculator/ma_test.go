package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"StockBoard/internal/model"
)

func TestSMA_TrailingWindow(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = float64(10 + i)
	}
	result := SMA(prices, 20)
	require.Len(t, result, len(prices))

	for i := 0; i < 19; i++ {
		require.True(t, math.IsNaN(result[i]), "position %d should be undefined", i)
	}
	// Position i holds the mean of prices[i-19..i].
	for i := 19; i < len(prices); i++ {
		sum := 0.0
		for j := i - 19; j <= i; j++ {
			sum += prices[j]
		}
		require.InDelta(t, sum/20, result[i], 1e-9)
	}
	require.InDelta(t, 19.5, result[19], 1e-9)
}

func TestSMA_ShortSeries(t *testing.T) {
	result := SMA([]float64{1, 2, 3}, 20)
	require.Len(t, result, 3)
	for _, v := range result {
		require.True(t, math.IsNaN(v))
	}
	require.Empty(t, SMA(nil, 20))
	require.Empty(t, SMA([]float64{1, 2}, 0))
}

func TestEMA_SeededBySimpleAverage(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	result := EMA(data, 3)
	require.Len(t, result, len(data))
	require.True(t, math.IsNaN(result[0]))
	require.True(t, math.IsNaN(result[1]))
	require.InDelta(t, 2.0, result[2], 1e-9)
	require.InDelta(t, 3.0, result[3], 1e-9)
	require.InDelta(t, 4.0, result[4], 1e-9)
	require.InDelta(t, 5.0, result[5], 1e-9)
}

func TestConstantSeries_SMAEqualsEMA(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 10
	}
	sma := SMA(prices, 20)
	ema := EMA(prices, 20)
	require.InDelta(t, 10.0, sma[19], 1e-9)
	require.InDelta(t, 10.0, ema[19], 1e-9)
}

func TestEMA_SmootherThanPrice(t *testing.T) {
	// Alternating noise around a flat level: the EMA must carry strictly
	// lower variance than the raw series over the defined region.
	prices := make([]float64, 120)
	for i := range prices {
		noise := 5.0
		if i%2 == 1 {
			noise = -5.0
		}
		prices[i] = 100 + noise
	}
	ema := EMA(prices, 20)

	require.Less(t, variance(ema[19:]), variance(prices[19:]))
}

func variance(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	v := 0.0
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return v / float64(len(xs))
}

func TestComputeIndicators_DegenerateCloses(t *testing.T) {
	bars := make([]model.Bar, 5)
	for i := range bars {
		bars[i].Close = math.NaN()
	}
	_, err := ComputeIndicators(model.Series{Symbol: "X", Bars: bars}, 20)
	require.Error(t, err)

	_, err = ComputeIndicators(model.Series{Symbol: "X"}, 20)
	require.Error(t, err)
}

func TestComputeIndicators_FillsBeforeAveraging(t *testing.T) {
	bars := make([]model.Bar, 20)
	for i := range bars {
		bars[i].Close = 10
	}
	bars[0].Close = math.NaN()  // leading gap, backward-filled
	bars[10].Close = math.NaN() // interior gap, forward-filled

	set, err := ComputeIndicators(model.Series{Symbol: "X", Bars: bars}, 20)
	require.NoError(t, err)
	require.InDelta(t, 10.0, set.SMA20[19], 1e-9)
	require.InDelta(t, 10.0, set.EMA20[19], 1e-9)
}
