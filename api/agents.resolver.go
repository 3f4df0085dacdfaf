package api

import (
	"fmt"

	"agentarena/internal/domain"
	"agentarena/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type positionResponse struct {
	Symbol        string  `json:"symbol"`
	Quantity      int64   `json:"qty"`
	AvgEntryPrice float64 `json:"entry"`
}

type agentResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Dna        domain.DNA         `json:"dna"`
	Status     string             `json:"status"`
	Generation int32              `json:"generation"`
	Cash       float64            `json:"cash"`
	Positions  []positionResponse `json:"positions"`
	ParentID   *uuid.UUID         `json:"parentId,omitempty"`
}

func toAgentResponse(agent domain.Agent) agentResponse {
	positions := []positionResponse{}
	for _, symbol := range agent.Portfolio.HeldSymbols() {
		position := agent.Portfolio.Positions[symbol]
		positions = append(positions, positionResponse{
			Symbol:        position.Symbol,
			Quantity:      position.Quantity,
			AvgEntryPrice: position.AvgEntryPrice.InexactFloat64(),
		})
	}
	return agentResponse{
		ID:         agent.ID,
		Name:       agent.Name,
		Dna:        agent.DNA,
		Status:     string(agent.Status),
		Generation: agent.Generation,
		Cash:       agent.Portfolio.Cash.InexactFloat64(),
		Positions:  positions,
		ParentID:   agent.ParentID,
	}
}

func (m ApiHandler) listAgents(ctx *gin.Context) {
	filter := repository.AgentListFilter{}
	if statusParam := ctx.Query("status"); statusParam != "" {
		status := domain.AgentStatus(statusParam)
		filter.Status = &status
	}

	agents, err := m.AgentRepository.List(filter)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list agents: %w", err), ctx)
		return
	}

	out := []agentResponse{}
	for _, agent := range agents {
		out = append(out, toAgentResponse(agent))
	}
	ctx.JSON(200, out)
}

func (m ApiHandler) getAgent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid agent id: %w", err), ctx, 400)
		return
	}

	agent, err := m.AgentRepository.Get(id)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("agent not found: %w", err), ctx, 404)
		return
	}

	ctx.JSON(200, toAgentResponse(*agent))
}

type createAgentRequest struct {
	Name string     `json:"name"`
	Dna  domain.DNA `json:"dna"`
	Cash *float64   `json:"cash"`
}

func (m ApiHandler) createAgent(ctx *gin.Context) {
	req := createAgentRequest{}
	if err := ctx.BindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), ctx, 400)
		return
	}
	if req.Name == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), ctx, 400)
		return
	}

	cash := decimal.NewFromInt(100000)
	if req.Cash != nil {
		cash = decimal.NewFromFloat(*req.Cash)
	}

	agent, err := m.AgentRepository.Add(nil, domain.Agent{
		Name:       req.Name,
		DNA:        req.Dna.WithDefaults(),
		Status:     domain.AgentStatus_Active,
		Generation: 1,
		Portfolio:  domain.NewPortfolio(cash),
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create agent: %w", err), ctx)
		return
	}

	ctx.JSON(200, toAgentResponse(*agent))
}
