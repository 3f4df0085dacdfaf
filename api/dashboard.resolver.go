package api

import (
	"fmt"
	"sort"

	"agentarena/internal/domain"
	"agentarena/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type dashboardAgentStats struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	Generation int32              `json:"generation"`
	Cash       float64            `json:"cash"`
	PnlUsd     float64            `json:"pnl_usd"`
	PnlSpx     *float64           `json:"pnl_spx,omitempty"`
	Positions  []positionResponse `json:"positions"`
}

type dashboardStatsResponse struct {
	NumAgents int                   `json:"numAgents"`
	NumActive int                   `json:"numActive"`
	SpyPrice  *float64              `json:"spyPrice,omitempty"`
	Agents    []dashboardAgentStats `json:"agents"`
}

// dashboardStats reports per-agent P&L in dollars and in SPY-share
// terms, using the latest SPY close as the benchmark unit.
func (m ApiHandler) dashboardStats(ctx *gin.Context) {
	agents, err := m.AgentRepository.List(repository.AgentListFilter{})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list agents: %w", err), ctx)
		return
	}

	var spyPrice *float64
	if m.HistoricalPriceRepository != nil {
		if close, err := m.HistoricalPriceRepository.LatestClose("SPY"); err == nil && close > 0 {
			spyPrice = &close
		}
	}

	initialCapital := decimal.NewFromInt(100000)
	out := dashboardStatsResponse{Agents: []dashboardAgentStats{}}
	for _, agent := range agents {
		out.NumAgents++
		if agent.Status == domain.AgentStatus_Active {
			out.NumActive++
		}

		pnlUsd := agent.Portfolio.Cash.Sub(initialCapital)
		stats := dashboardAgentStats{
			Name:       agent.Name,
			Status:     string(agent.Status),
			Generation: agent.Generation,
			Cash:       agent.Portfolio.Cash.InexactFloat64(),
			PnlUsd:     pnlUsd.InexactFloat64(),
			Positions:  []positionResponse{},
		}
		if spyPrice != nil {
			pnlSpx := pnlUsd.InexactFloat64() / *spyPrice
			stats.PnlSpx = &pnlSpx
		}
		for _, symbol := range agent.Portfolio.HeldSymbols() {
			position := agent.Portfolio.Positions[symbol]
			stats.Positions = append(stats.Positions, positionResponse{
				Symbol:        position.Symbol,
				Quantity:      position.Quantity,
				AvgEntryPrice: position.AvgEntryPrice.InexactFloat64(),
			})
		}
		out.Agents = append(out.Agents, stats)
	}

	sort.SliceStable(out.Agents, func(i, j int) bool {
		return out.Agents[i].PnlUsd > out.Agents[j].PnlUsd
	})

	ctx.JSON(200, out)
}
