package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SymbolSnapshot is one symbol's slice of a market snapshot. Indicator
// fields are nil when the provider could not compute them; consumers
// treat a missing indicator as a no-signal condition, not an error.
type SymbolSnapshot struct {
	Symbol   string
	Price    decimal.Decimal
	RSI      *float64
	SMAShort *float64
	SMALong  *float64
}

// MarketSnapshot is the immutable per-cycle market view, keyed by symbol.
// All entries share one timestamp.
type MarketSnapshot struct {
	Timestamp time.Time
	Entries   map[string]SymbolSnapshot
}

// Symbols returns the snapshot's symbol universe in sorted order. Cycle
// evaluation iterates in this order so cash consumption by earlier
// symbols is deterministic.
func (s MarketSnapshot) Symbols() []string {
	symbols := make([]string, 0, len(s.Entries))
	for symbol := range s.Entries {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
