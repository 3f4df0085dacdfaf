package engine

import (
	"testing"
	"time"

	"agentarena/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Apply_buy(t *testing.T) {
	agentID := uuid.New()
	ts := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	t.Run("buy floors quantity and debits cash", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		trade, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         "AAPL",
			TargetFraction: 0.1,
		}, decimal.NewFromInt(100), ts)
		require.NoError(t, err)
		require.NotNil(t, trade)

		require.Equal(t, int64(100), trade.Quantity)
		require.Equal(t, domain.TradeSide_Buy, trade.Side)
		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(90000)), "cash was %s", portfolio.Cash)
		require.Equal(t, int64(100), portfolio.Positions["AAPL"].Quantity)
		require.True(t, portfolio.Positions["AAPL"].AvgEntryPrice.Equal(decimal.NewFromInt(100)))
	})

	t.Run("insufficient capital is a silent no-op", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(500))

		trade, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         "AAPL",
			TargetFraction: 0.1,
		}, decimal.NewFromInt(100), ts)
		require.NoError(t, err)
		require.Nil(t, trade)
		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(500)))
		require.Empty(t, portfolio.Positions)
	})

	t.Run("repeat buy overwrites average entry price", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		_, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         "AAPL",
			TargetFraction: 0.1,
		}, decimal.NewFromInt(100), ts)
		require.NoError(t, err)

		_, err = Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Buy,
			Symbol:         "AAPL",
			TargetFraction: 0.1,
		}, decimal.NewFromInt(90), ts)
		require.NoError(t, err)

		require.Equal(t, int64(200), portfolio.Positions["AAPL"].Quantity)
		require.True(t, portfolio.Positions["AAPL"].AvgEntryPrice.Equal(decimal.NewFromInt(90)))
	})
}

func Test_Apply_sell(t *testing.T) {
	agentID := uuid.New()
	ts := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	t.Run("full exit credits cash and removes the position", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:        "AAPL",
			Quantity:      100,
			AvgEntryPrice: decimal.NewFromInt(100),
		}

		trade, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         "AAPL",
			TargetFraction: 1.0,
		}, decimal.NewFromInt(94), ts)
		require.NoError(t, err)
		require.NotNil(t, trade)

		require.Equal(t, int64(100), trade.Quantity)
		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(99400)), "cash was %s", portfolio.Cash)
		require.NotContains(t, portfolio.Positions, "AAPL")
	})

	t.Run("partial sell floors quantity and keeps the position", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.Zero)
		portfolio.Positions["TSLA"] = &domain.Position{
			Symbol:        "TSLA",
			Quantity:      7,
			AvgEntryPrice: decimal.NewFromInt(200),
		}

		trade, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         "TSLA",
			TargetFraction: 0.5,
		}, decimal.NewFromInt(210), ts)
		require.NoError(t, err)
		require.NotNil(t, trade)

		require.Equal(t, int64(3), trade.Quantity)
		require.Equal(t, int64(4), portfolio.Positions["TSLA"].Quantity)
		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(630)))
	})

	t.Run("selling with no holdings is a silent no-op", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(1000))

		trade, err := Apply(portfolio, agentID, domain.OrderIntent{
			Side:           domain.TradeSide_Sell,
			Symbol:         "AAPL",
			TargetFraction: 1.0,
		}, decimal.NewFromInt(100), ts)
		require.NoError(t, err)
		require.Nil(t, trade)
	})
}

// solvency invariant: no sequence of intents may drive cash or any
// position quantity negative
func Test_Apply_solvency(t *testing.T) {
	agentID := uuid.New()
	ts := time.Now().UTC()
	portfolio := domain.NewPortfolio(decimal.NewFromInt(10000))

	intents := []struct {
		intent domain.OrderIntent
		price  decimal.Decimal
	}{
		{domain.OrderIntent{Side: domain.TradeSide_Buy, Symbol: "AAPL", TargetFraction: 0.9}, decimal.NewFromInt(97)},
		{domain.OrderIntent{Side: domain.TradeSide_Buy, Symbol: "TSLA", TargetFraction: 0.9}, decimal.NewFromInt(211)},
		{domain.OrderIntent{Side: domain.TradeSide_Sell, Symbol: "AAPL", TargetFraction: 0.33}, decimal.NewFromInt(80)},
		{domain.OrderIntent{Side: domain.TradeSide_Buy, Symbol: "NVDA", TargetFraction: 1.0}, decimal.NewFromFloat(512.77)},
		{domain.OrderIntent{Side: domain.TradeSide_Sell, Symbol: "AAPL", TargetFraction: 1.0}, decimal.NewFromFloat(101.5)},
		{domain.OrderIntent{Side: domain.TradeSide_Sell, Symbol: "NVDA", TargetFraction: 1.0}, decimal.NewFromInt(400)},
		{domain.OrderIntent{Side: domain.TradeSide_Buy, Symbol: "AMZN", TargetFraction: 1.0}, decimal.NewFromFloat(178.12)},
	}

	for i, step := range intents {
		_, err := Apply(portfolio, agentID, step.intent, step.price, ts)
		require.NoError(t, err, "step %d", i)
		require.False(t, portfolio.Cash.IsNegative(), "cash went negative at step %d: %s", i, portfolio.Cash)
		for symbol, position := range portfolio.Positions {
			require.Greater(t, position.Quantity, int64(0), "position %s at step %d", symbol, i)
		}
	}
}
