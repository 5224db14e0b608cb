package model

// IndicatorSet holds the derived moving-average columns, aligned 1:1 with the
// bars of the series they were computed from. Positions with no defined value
// hold math.NaN(); the presentation boundary renders those as null.
type IndicatorSet struct {
	Window int
	SMA20  []float64
	EMA20  []float64
}

// MetricsSummary holds the descriptive statistics for one fetched window.
type MetricsSummary struct {
	LastClose float64
	Reference float64
	Change    float64
	PctChange float64
	High      float64
	Low       float64
	Volume    float64
}
