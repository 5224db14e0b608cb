// Package normalize converts a fetched series into its canonical tabular
// form: display-zone timestamps in provider-guaranteed ascending order.
package normalize

import (
	"fmt"
	"time"

	"StockBoard/internal/model"
)

// DefaultZone is the fixed display timezone for the dashboard.
const DefaultZone = "America/New_York"

// LoadZone resolves a display-zone name, falling back to DefaultZone when
// empty.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load display zone %q: %w", name, err)
	}
	return loc, nil
}

// ParseNaive parses a timestamp that carries no zone information. The value
// is labeled UTC first and only then converted by callers; parsing straight
// into a display zone would silently apply the wrong offset.
func ParseNaive(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, time.UTC)
}

// Normalize converts every bar timestamp into the display zone. The series
// ordering is trusted as delivered by the provider; no reordering or
// deduplication happens here. Normalize is idempotent: a series already in
// the display zone passes through unchanged.
func Normalize(s model.Series, loc *time.Location) model.Series {
	bars := make([]model.Bar, len(s.Bars))
	for i, b := range s.Bars {
		bars[i] = b
		bars[i].Time = b.Time.In(loc)
	}
	return model.Series{Symbol: s.Symbol, Bars: bars, FetchedAt: s.FetchedAt}
}
