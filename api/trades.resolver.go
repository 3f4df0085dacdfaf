package api

import (
	"fmt"

	"agentarena/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type tradeCsvRow struct {
	AgentID    string `csv:"agent_id"`
	Symbol     string `csv:"symbol"`
	Side       string `csv:"side"`
	Quantity   int64  `csv:"quantity"`
	Price      string `csv:"price"`
	ExecutedAt string `csv:"executed_at"`
}

func (m ApiHandler) exportTrades(ctx *gin.Context) {
	filter := repository.TradeListFilter{}
	if agentParam := ctx.Query("agentId"); agentParam != "" {
		agentID, err := uuid.Parse(agentParam)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid agent id: %w", err), ctx, 400)
			return
		}
		filter.AgentID = &agentID
	}

	trades, err := m.TradeRepository.List(filter)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list trades: %w", err), ctx)
		return
	}

	rows := []tradeCsvRow{}
	for _, trade := range trades {
		rows = append(rows, tradeCsvRow{
			AgentID:    trade.AgentID.String(),
			Symbol:     trade.Symbol,
			Side:       string(trade.Side),
			Quantity:   trade.Quantity,
			Price:      trade.Price.StringFixed(2),
			ExecutedAt: trade.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", "attachment; filename=trades.csv")
	if err := gocsv.Marshal(rows, ctx.Writer); err != nil {
		returnErrorJson(fmt.Errorf("failed to write csv: %w", err), ctx)
		return
	}
}
