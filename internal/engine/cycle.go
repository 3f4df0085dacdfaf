package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"agentarena/internal/domain"

	"github.com/google/uuid"
)

// CycleResult is the unit of persistence for one market cycle: callers
// must apply the whole batch or none of it.
type CycleResult struct {
	UpdatedStates map[uuid.UUID]*domain.Portfolio
	Trades        []domain.TradeRecord
}

type agentCycleResult struct {
	agentID   uuid.UUID
	portfolio *domain.Portfolio
	trades    []domain.TradeRecord
	err       error
}

// RunMarketCycle evaluates every active agent in the roster against every
// symbol in the snapshot and returns the aggregated state deltas and trade
// records. Terminated agents are skipped entirely.
//
// Agents are evaluated concurrently - each touches only its own working
// portfolio copy and the read-only snapshot. Symbols within one agent run
// sequentially in sorted order, since a buy on an earlier symbol consumes
// the cash available to later ones.
func (e *Engine) RunMarketCycle(ctx context.Context, roster []domain.Agent, snapshot domain.MarketSnapshot) (*CycleResult, error) {
	symbols := snapshot.Symbols()

	active := []domain.Agent{}
	for _, agent := range roster {
		if agent.Status == domain.AgentStatus_Active {
			active = append(active, agent)
		}
	}

	inputCh := make(chan domain.Agent, len(active))
	resultCh := make(chan agentCycleResult, len(active))
	var wg sync.WaitGroup
	for _, agent := range active {
		wg.Add(1)
		inputCh <- agent
	}
	close(inputCh)

	for i := 0; i < e.cfg.NumWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case agent, ok := <-inputCh:
					if !ok {
						return
					}
					portfolio, trades, err := evaluateAgent(agent, symbols, snapshot)
					resultCh <- agentCycleResult{
						agentID:   agent.ID,
						portfolio: portfolio,
						trades:    trades,
						err:       err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := []agentCycleResult{}
	for res := range resultCh {
		if res.err != nil {
			return nil, fmt.Errorf("failed to evaluate agent %s: %w", res.agentID, res.err)
		}
		results = append(results, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// channel drain order is nondeterministic; re-impose agent id order so
	// the batch is stable for identical inputs
	sort.Slice(results, func(i, j int) bool {
		return results[i].agentID.String() < results[j].agentID.String()
	})

	out := &CycleResult{
		UpdatedStates: map[uuid.UUID]*domain.Portfolio{},
		Trades:        []domain.TradeRecord{},
	}
	for _, res := range results {
		out.UpdatedStates[res.agentID] = res.portfolio
		out.Trades = append(out.Trades, res.trades...)
	}

	return out, nil
}

func evaluateAgent(agent domain.Agent, symbols []string, snapshot domain.MarketSnapshot) (*domain.Portfolio, []domain.TradeRecord, error) {
	working := agent.Portfolio.DeepCopy()
	trades := []domain.TradeRecord{}

	for _, symbol := range symbols {
		entry := snapshot.Entries[symbol]

		intent := Decide(agent.DNA, working, entry)
		if intent == nil {
			continue
		}

		trade, err := Apply(working, agent.ID, *intent, entry.Price, snapshot.Timestamp)
		if err != nil {
			return nil, nil, err
		}
		if trade != nil {
			trades = append(trades, *trade)
		}
	}

	return working, trades, nil
}
