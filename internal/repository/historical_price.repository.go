package repository

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// HistoricalPriceRepository returns trailing daily closes, oldest first.
// Used to compute RSI and SMA indicators for a snapshot.
type HistoricalPriceRepository interface {
	DailyCloses(symbol string, lookbackDays int) ([]float64, error)
	LatestClose(symbol string) (float64, error)
}

type historicalPriceRepositoryHandler struct{}

func NewHistoricalPriceRepository() HistoricalPriceRepository {
	return historicalPriceRepositoryHandler{}
}

func (h historicalPriceRepositoryHandler) DailyCloses(symbol string, lookbackDays int) ([]float64, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -lookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	closes := []float64{}
	for iter.Next() {
		closes = append(closes, iter.Bar().AdjClose.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get daily closes for %s: %w", symbol, err)
	}

	return closes, nil
}

func (h historicalPriceRepositoryHandler) LatestClose(symbol string) (float64, error) {
	closes, err := h.DailyCloses(symbol, 7)
	if err != nil {
		return 0, err
	}
	if len(closes) == 0 {
		return 0, fmt.Errorf("no recent closes for %s", symbol)
	}
	return closes[len(closes)-1], nil
}
