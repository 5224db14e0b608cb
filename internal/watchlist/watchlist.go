// Package watchlist produces the sidebar's per-symbol price snapshot.
package watchlist

import (
	"log"

	"StockBoard/internal/collector"
	"StockBoard/internal/model"
)

// Entry is one sidebar row. A failed retrieval sets Err and leaves the quote
// zero-valued; the boundary renders it as "no data available".
type Entry struct {
	Symbol string
	Quote  model.Quote
	Err    error
}

// Snapshot issues one blocking quote retrieval per symbol in sequence. Each
// retrieval is independent: a failure degrades only that symbol's entry and
// never affects the others.
func Snapshot(fetcher collector.Fetcher, symbols []string) []Entry {
	entries := make([]Entry, 0, len(symbols))
	for _, sym := range symbols {
		quote, err := fetcher.FetchQuote(sym)
		if err != nil {
			log.Printf("[WARN] watchlist quote %s: %v", sym, err)
			entries = append(entries, Entry{Symbol: sym, Err: err})
			continue
		}
		entries = append(entries, Entry{Symbol: sym, Quote: quote})
	}
	return entries
}
