package calculator

import (
	"errors"
	"math"

	"StockBoard/internal/model"
)

// ReferenceMode selects which price of the first bar anchors the change
// calculation.
type ReferenceMode string

const (
	ReferenceClose ReferenceMode = "close"
	ReferenceOpen  ReferenceMode = "open"
)

// Summarize derives the descriptive metrics for one fetched window: last
// close, change and percent change against the first bar, period high/low,
// and summed volume. A zero reference price yields a zero percent change
// rather than a division error.
func Summarize(s model.Series, ref ReferenceMode) (model.MetricsSummary, error) {
	if s.Empty() {
		return model.MetricsSummary{}, errors.New("no bars to summarize")
	}

	first, last := s.Bars[0], s.Bars[len(s.Bars)-1]
	reference := first.Close
	if ref == ReferenceOpen {
		reference = first.Open
	}

	sum := model.MetricsSummary{
		LastClose: last.Close,
		Reference: reference,
		Change:    last.Close - reference,
		High:      math.Inf(-1),
		Low:       math.Inf(1),
	}
	if reference != 0 {
		sum.PctChange = sum.Change / reference * 100
	}

	for _, b := range s.Bars {
		if b.High > sum.High {
			sum.High = b.High
		}
		if b.Low < sum.Low {
			sum.Low = b.Low
		}
		sum.Volume += b.Volume
	}
	return sum, nil
}
