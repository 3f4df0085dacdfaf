package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"

	"agentarena/internal/domain"
	"agentarena/internal/logger"
	"agentarena/internal/repository"

	"github.com/shopspring/decimal"
)

// fallback callsigns when no GPT key is configured or the call fails
var defaultCallsigns = []string{
	"Echo", "Sage", "Voss", "Axel", "Nova", "Ivy", "Skye", "Kade",
	"Lynx", "Nico", "Juno", "Orion", "Vera", "Cato", "Rune", "Zara",
	"Rhea", "Milo", "Talon", "Nyx",
}

type SeedService interface {
	Seed(ctx context.Context, count int) ([]domain.Agent, error)
}

type seedServiceHandler struct {
	Db              *sql.DB
	AgentRepository repository.AgentRepository
	GptRepository   repository.GptRepository
	Rand            *rand.Rand
}

// NewSeedService constructs the seeder. gptRepository may be nil, in
// which case the built-in callsign list is used.
func NewSeedService(db *sql.DB, agentRepository repository.AgentRepository, gptRepository repository.GptRepository, rng *rand.Rand) SeedService {
	return seedServiceHandler{
		Db:              db,
		AgentRepository: agentRepository,
		GptRepository:   gptRepository,
		Rand:            rng,
	}
}

// Seed populates an empty arena with count generation-1 agents carrying
// randomized DNA. A non-empty arena is left untouched.
func (h seedServiceHandler) Seed(ctx context.Context, count int) ([]domain.Agent, error) {
	log := logger.FromContext(ctx)

	existing, err := h.AgentRepository.List(repository.AgentListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing agents: %w", err)
	}
	if len(existing) > 0 {
		log.Infow("arena already seeded, skipping", "agents", len(existing))
		return nil, nil
	}

	names := h.callsigns(ctx, count)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seeded := []domain.Agent{}
	for i := 0; i < count; i++ {
		// some starting cash variance so generation 1 has a ranking
		startingCash := decimal.NewFromFloat(95000 + h.Rand.Float64()*10000).Round(2)

		agent, err := h.AgentRepository.Add(tx, domain.Agent{
			Name:       fmt.Sprintf("%s_Alpha", names[i]),
			DNA:        h.randomDNA(),
			Status:     domain.AgentStatus_Active,
			Generation: 1,
			Portfolio:  domain.NewPortfolio(startingCash),
		})
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, *agent)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Infow("seeded arena", "agents", len(seeded))
	return seeded, nil
}

func (h seedServiceHandler) callsigns(ctx context.Context, count int) []string {
	log := logger.FromContext(ctx)

	if h.GptRepository != nil {
		names, err := h.GptRepository.GenerateCallsigns(ctx, count)
		if err == nil {
			return names
		}
		log.Warnf("callsign generation failed, using defaults: %v", err)
	}

	names := []string{}
	for i := 0; i < count; i++ {
		name := defaultCallsigns[i%len(defaultCallsigns)]
		if i >= len(defaultCallsigns) {
			name = fmt.Sprintf("%s%d", name, i/len(defaultCallsigns)+1)
		}
		names = append(names, name)
	}
	return names
}

func (h seedServiceHandler) randomDNA() domain.DNA {
	strategies := []domain.Strategy{domain.Strategy_Momentum, domain.Strategy_MeanReversion}
	return domain.DNA{
		Strategy:        strategies[h.Rand.Intn(len(strategies))],
		RSIPeriod:       10 + h.Rand.Intn(11),
		RSILimit:        20 + h.Rand.Intn(16),
		StopLossPct:     roundTo3(0.02 + h.Rand.Float64()*0.06),
		TakeProfitPct:   roundTo3(0.05 + h.Rand.Float64()*0.10),
		MaxPositionSize: 0.1,
	}
}

func roundTo3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
