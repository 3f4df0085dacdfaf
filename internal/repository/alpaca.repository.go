package repository

import (
	"context"
	"fmt"

	"agentarena/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository supplies latest quotes for the symbol universe. The
// engine never talks to it directly - the market data service fetches
// prices up front and hands the core plain in-memory snapshots.
type AlpacaRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quotes: %w", err)
	}

	out := map[string]decimal.Decimal{}
	for symbol, result := range results {
		price := decimal.NewFromFloat(result.BidPrice)
		if price.IsZero() {
			// thin pre-market books quote zero bids; drop the symbol
			// for this cycle instead of handing the engine a bad price
			log.Warnf("zero bid for %s, skipping this cycle", symbol)
			continue
		}
		out[symbol] = price
	}

	return out, nil
}
