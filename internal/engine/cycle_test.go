package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"agentarena/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return New(DefaultConfig(), rand.New(rand.NewSource(42)))
}

func testSnapshot(entries map[string]domain.SymbolSnapshot) domain.MarketSnapshot {
	return domain.MarketSnapshot{
		Timestamp: time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC),
		Entries:   entries,
	}
}

func Test_RunMarketCycle(t *testing.T) {
	e := newTestEngine()

	t.Run("buys fill and terminated agents are skipped", func(t *testing.T) {
		buyer := domain.Agent{
			ID:        uuid.New(),
			Status:    domain.AgentStatus_Active,
			DNA:       domain.DefaultDNA(),
			Portfolio: domain.NewPortfolio(decimal.NewFromInt(100000)),
		}
		dead := domain.Agent{
			ID:        uuid.New(),
			Status:    domain.AgentStatus_Terminated,
			DNA:       domain.DefaultDNA(),
			Portfolio: domain.NewPortfolio(decimal.NewFromInt(100000)),
		}

		result, err := e.RunMarketCycle(context.Background(), []domain.Agent{buyer, dead}, testSnapshot(map[string]domain.SymbolSnapshot{
			"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(100), RSI: floatPtr(20)},
		}))
		require.NoError(t, err)

		require.Len(t, result.UpdatedStates, 1)
		require.NotContains(t, result.UpdatedStates, dead.ID)

		updated := result.UpdatedStates[buyer.ID]
		require.True(t, updated.Cash.Equal(decimal.NewFromInt(90000)), "cash was %s", updated.Cash)
		require.Equal(t, int64(100), updated.Positions["AAPL"].Quantity)

		require.Len(t, result.Trades, 1)
		require.Equal(t, buyer.ID, result.Trades[0].AgentID)
		require.Equal(t, domain.TradeSide_Buy, result.Trades[0].Side)
	})

	t.Run("input portfolios are not mutated", func(t *testing.T) {
		agent := domain.Agent{
			ID:        uuid.New(),
			Status:    domain.AgentStatus_Active,
			DNA:       domain.DefaultDNA(),
			Portfolio: domain.NewPortfolio(decimal.NewFromInt(100000)),
		}

		_, err := e.RunMarketCycle(context.Background(), []domain.Agent{agent}, testSnapshot(map[string]domain.SymbolSnapshot{
			"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(100), RSI: floatPtr(20)},
		}))
		require.NoError(t, err)

		require.True(t, agent.Portfolio.Cash.Equal(decimal.NewFromInt(100000)))
		require.Empty(t, agent.Portfolio.Positions)
	})

	t.Run("symbols evaluate in sorted order so early buys consume cash", func(t *testing.T) {
		dna := domain.DefaultDNA()
		dna.MaxPositionSize = 1.0
		agent := domain.Agent{
			ID:        uuid.New(),
			Status:    domain.AgentStatus_Active,
			DNA:       dna,
			Portfolio: domain.NewPortfolio(decimal.NewFromInt(10000)),
		}

		// both symbols signal entry; AAPL sorts first and takes all the cash
		result, err := e.RunMarketCycle(context.Background(), []domain.Agent{agent}, testSnapshot(map[string]domain.SymbolSnapshot{
			"TSLA": {Symbol: "TSLA", Price: decimal.NewFromInt(200), RSI: floatPtr(15)},
			"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(100), RSI: floatPtr(15)},
		}))
		require.NoError(t, err)

		require.Len(t, result.Trades, 1)
		require.Equal(t, "AAPL", result.Trades[0].Symbol)

		updated := result.UpdatedStates[agent.ID]
		require.NotContains(t, updated.Positions, "TSLA")
		require.Equal(t, int64(100), updated.Positions["AAPL"].Quantity)
	})

	t.Run("large rosters evaluate every agent exactly once", func(t *testing.T) {
		roster := []domain.Agent{}
		for i := 0; i < 50; i++ {
			roster = append(roster, domain.Agent{
				ID:        uuid.New(),
				Status:    domain.AgentStatus_Active,
				DNA:       domain.DefaultDNA(),
				Portfolio: domain.NewPortfolio(decimal.NewFromInt(100000)),
			})
		}

		result, err := e.RunMarketCycle(context.Background(), roster, testSnapshot(map[string]domain.SymbolSnapshot{
			"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(100), RSI: floatPtr(20)},
		}))
		require.NoError(t, err)

		require.Len(t, result.UpdatedStates, 50)
		require.Len(t, result.Trades, 50)
		for _, agent := range roster {
			require.Contains(t, result.UpdatedStates, agent.ID)
		}
	})
}
