package engine

import (
	"testing"

	"agentarena/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func Test_Decide(t *testing.T) {
	dna := domain.DNA{
		Strategy:        domain.Strategy_MeanReversion,
		RSIPeriod:       14,
		RSILimit:        30,
		StopLossPct:     0.05,
		TakeProfitPct:   0.10,
		MaxPositionSize: 0.1,
	}

	t.Run("mean reversion entry on oversold rsi", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(100),
			RSI:    floatPtr(20),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Buy, intent.Side)
		require.Equal(t, "AAPL", intent.Symbol)
		require.Equal(t, 0.1, intent.TargetFraction)
	})

	t.Run("no entry when already holding", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:        "AAPL",
			Quantity:      100,
			AvgEntryPrice: decimal.NewFromInt(100),
		}

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(101),
			RSI:    floatPtr(20),
		})

		require.Nil(t, intent)
	})

	t.Run("mean reversion exit on overbought rsi", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:        "AAPL",
			Quantity:      100,
			AvgEntryPrice: decimal.NewFromInt(100),
		}

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(102),
			RSI:    floatPtr(75),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Sell, intent.Side)
		require.Equal(t, 1.0, intent.TargetFraction)
	})

	t.Run("missing rsi is a no-op for mean reversion", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(100),
		})

		require.Nil(t, intent)
	})

	t.Run("rsi between thresholds is a no-op", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(100),
			RSI:    floatPtr(50),
		})

		require.Nil(t, intent)
	})
}

func Test_Decide_riskExits(t *testing.T) {
	t.Run("stop loss triggers full exit", func(t *testing.T) {
		dna := domain.DefaultDNA()
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:        "AAPL",
			Quantity:      100,
			AvgEntryPrice: decimal.NewFromInt(100),
		}

		// -6% against a 5% stop
		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(94),
			RSI:    floatPtr(50),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Sell, intent.Side)
		require.Equal(t, 1.0, intent.TargetFraction)
	})

	t.Run("take profit triggers full exit", func(t *testing.T) {
		dna := domain.DefaultDNA()
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["AAPL"] = &domain.Position{
			Symbol:        "AAPL",
			Quantity:      100,
			AvgEntryPrice: decimal.NewFromInt(100),
		}

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(111),
			RSI:    floatPtr(50),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Sell, intent.Side)
	})

	t.Run("stop loss pre-empts a bullish strategy signal", func(t *testing.T) {
		dna := domain.DNA{
			Strategy:        domain.Strategy_Momentum,
			RSIPeriod:       14,
			RSILimit:        30,
			StopLossPct:     0.05,
			TakeProfitPct:   0.10,
			MaxPositionSize: 0.1,
		}
		portfolio := domain.NewPortfolio(decimal.NewFromInt(90000))
		portfolio.Positions["TSLA"] = &domain.Position{
			Symbol:        "TSLA",
			Quantity:      50,
			AvgEntryPrice: decimal.NewFromInt(200),
		}

		// the crossover is bullish, but the position is down 10%
		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol:   "TSLA",
			Price:    decimal.NewFromInt(180),
			SMAShort: floatPtr(185),
			SMALong:  floatPtr(170),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Sell, intent.Side)
		require.Equal(t, 1.0, intent.TargetFraction)
	})
}

func Test_Decide_momentum(t *testing.T) {
	dna := domain.DNA{
		Strategy:        domain.Strategy_Momentum,
		RSIPeriod:       14,
		RSILimit:        30,
		StopLossPct:     0.05,
		TakeProfitPct:   0.10,
		MaxPositionSize: 0.2,
	}

	t.Run("bullish crossover buys when flat", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol:   "NVDA",
			Price:    decimal.NewFromInt(500),
			SMAShort: floatPtr(510),
			SMALong:  floatPtr(490),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Buy, intent.Side)
		require.Equal(t, 0.2, intent.TargetFraction)
	})

	t.Run("bearish crossover sells held position", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(50000))
		portfolio.Positions["NVDA"] = &domain.Position{
			Symbol:        "NVDA",
			Quantity:      20,
			AvgEntryPrice: decimal.NewFromInt(500),
		}

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol:   "NVDA",
			Price:    decimal.NewFromInt(505),
			SMAShort: floatPtr(490),
			SMALong:  floatPtr(510),
		})

		require.NotNil(t, intent)
		require.Equal(t, domain.TradeSide_Sell, intent.Side)
	})

	t.Run("missing sma is a no-op", func(t *testing.T) {
		portfolio := domain.NewPortfolio(decimal.NewFromInt(100000))

		intent := Decide(dna, portfolio, domain.SymbolSnapshot{
			Symbol:   "NVDA",
			Price:    decimal.NewFromInt(500),
			SMAShort: floatPtr(510),
		})

		require.Nil(t, intent)
	})
}
