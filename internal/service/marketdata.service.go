package service

import (
	"context"
	"time"

	"agentarena/internal/domain"
	"agentarena/internal/indicators"
	"agentarena/internal/logger"
	"agentarena/internal/repository"
)

const (
	rsiPeriod      = 14
	smaShortWindow = 20
	smaLongWindow  = 50

	// calendar days of history to request; weekends and holidays thin
	// this out to roughly 65-70 trading days, comfortably above the
	// 50-close SMA window
	historyLookbackDays = 100
)

type MarketDataService interface {
	BuildSnapshot(ctx context.Context, symbols []string) (domain.MarketSnapshot, error)
}

type marketDataServiceHandler struct {
	AlpacaRepository          repository.AlpacaRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
}

func NewMarketDataService(alpacaRepository repository.AlpacaRepository, historicalPriceRepository repository.HistoricalPriceRepository) MarketDataService {
	return marketDataServiceHandler{
		AlpacaRepository:          alpacaRepository,
		HistoricalPriceRepository: historicalPriceRepository,
	}
}

// BuildSnapshot assembles the immutable per-cycle market view: latest
// quote per symbol plus RSI and SMA indicators computed from trailing
// daily closes. A symbol with no quote is omitted; a symbol whose
// history is too short keeps its price but carries nil indicators, which
// downstream evaluation treats as no-signal.
func (h marketDataServiceHandler) BuildSnapshot(ctx context.Context, symbols []string) (domain.MarketSnapshot, error) {
	log := logger.FromContext(ctx)

	prices, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return domain.MarketSnapshot{}, err
	}

	snapshot := domain.MarketSnapshot{
		Timestamp: time.Now().UTC(),
		Entries:   map[string]domain.SymbolSnapshot{},
	}

	for _, symbol := range symbols {
		price, ok := prices[symbol]
		if !ok {
			log.Warnf("no quote for %s, omitting from snapshot", symbol)
			continue
		}

		entry := domain.SymbolSnapshot{
			Symbol: symbol,
			Price:  price,
		}

		closes, err := h.HistoricalPriceRepository.DailyCloses(symbol, historyLookbackDays)
		if err != nil {
			log.Warnf("failed to load history for %s: %v", symbol, err)
			snapshot.Entries[symbol] = entry
			continue
		}

		if rsi, err := indicators.RSI(closes, rsiPeriod); err == nil {
			entry.RSI = &rsi
		}
		if smaShort, err := indicators.SMA(closes, smaShortWindow); err == nil {
			entry.SMAShort = &smaShort
		}
		if smaLong, err := indicators.SMA(closes, smaLongWindow); err == nil {
			entry.SMALong = &smaLong
		}

		snapshot.Entries[symbol] = entry
	}

	return snapshot, nil
}
