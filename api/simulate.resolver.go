package api

import (
	"context"
	"fmt"

	"agentarena/internal/logger"

	"github.com/gin-gonic/gin"
)

type cycleResponse struct {
	AgentsEvaluated int `json:"agentsEvaluated"`
	TradesExecuted  int `json:"tradesExecuted"`
}

func (m ApiHandler) triggerCycle(c *gin.Context) {
	log := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, log)

	result, err := m.ArenaService.RunCycle(ctx)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run market cycle: %w", err), c)
		return
	}

	c.JSON(200, cycleResponse{
		AgentsEvaluated: len(result.UpdatedStates),
		TradesExecuted:  len(result.Trades),
	})
}

type evolutionResponse struct {
	Terminated int  `json:"terminated"`
	Spawned    int  `json:"spawned"`
	Skipped    bool `json:"skipped"`
}

func (m ApiHandler) triggerEvolution(c *gin.Context) {
	log := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, log)

	result, err := m.ArenaService.RunEvolution(ctx)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run evolution: %w", err), c)
		return
	}

	c.JSON(200, evolutionResponse{
		Terminated: len(result.TerminatedIDs),
		Spawned:    len(result.Spawned),
		Skipped:    result.IsEmpty(),
	})
}

type seedRequest struct {
	Count int `json:"count"`
}

func (m ApiHandler) triggerSeed(c *gin.Context) {
	log := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, log)

	req := seedRequest{}
	if err := c.BindJSON(&req); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}
	if req.Count <= 0 {
		req.Count = 20
	}

	agents, err := m.SeedService.Seed(ctx, req.Count)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to seed agents: %w", err), c)
		return
	}

	c.JSON(200, gin.H{"seeded": len(agents)})
}
