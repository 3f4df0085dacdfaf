package service

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"

	"agentarena/internal/db/models/postgres/public/model"
	"agentarena/internal/domain"
	"agentarena/internal/engine"
	"agentarena/internal/logger"
	"agentarena/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultUniverse is the fixed symbol set every cycle evaluates.
var DefaultUniverse = []string{"AAPL", "TSLA", "SPY", "NVDA", "AMZN"}

type ArenaService interface {
	RunCycle(ctx context.Context) (*engine.CycleResult, error)
	RunEvolution(ctx context.Context) (*domain.EvolutionResult, error)
}

type arenaServiceHandler struct {
	Db                     *sql.DB
	Engine                 *engine.Engine
	AgentRepository        repository.AgentRepository
	TradeRepository        repository.TradeRepository
	SnapshotRepository     repository.PortfolioSnapshotRepository
	EvolutionRunRepository repository.EvolutionRunRepository
	MarketDataService      MarketDataService
	Universe               []string
	InitialCapital         decimal.Decimal
	Rand                   *rand.Rand
}

func NewArenaService(
	db *sql.DB,
	eng *engine.Engine,
	agentRepository repository.AgentRepository,
	tradeRepository repository.TradeRepository,
	snapshotRepository repository.PortfolioSnapshotRepository,
	evolutionRunRepository repository.EvolutionRunRepository,
	marketDataService MarketDataService,
	rng *rand.Rand,
) ArenaService {
	return arenaServiceHandler{
		Db:                     db,
		Engine:                 eng,
		AgentRepository:        agentRepository,
		TradeRepository:        tradeRepository,
		SnapshotRepository:     snapshotRepository,
		EvolutionRunRepository: evolutionRunRepository,
		MarketDataService:      marketDataService,
		Universe:               DefaultUniverse,
		InitialCapital:         decimal.NewFromInt(100000),
		Rand:                   rng,
	}
}

// RunCycle loads the active roster, builds one market snapshot, runs the
// engine over it, and persists the whole batch - updated portfolios,
// trades, and equity snapshots - in a single transaction. A failure
// anywhere rolls back everything; no cycle is ever half-applied.
func (h arenaServiceHandler) RunCycle(ctx context.Context) (*engine.CycleResult, error) {
	log := logger.FromContext(ctx)

	activeStatus := domain.AgentStatus_Active
	roster, err := h.AgentRepository.List(repository.AgentListFilter{Status: &activeStatus})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(roster) == 0 {
		log.Info("no active agents, skipping cycle")
		return &engine.CycleResult{}, nil
	}

	snapshot, err := h.MarketDataService.BuildSnapshot(ctx, h.Universe)
	if err != nil {
		return nil, fmt.Errorf("failed to build market snapshot: %w", err)
	}

	result, err := h.Engine.RunMarketCycle(ctx, roster, snapshot)
	if err != nil {
		return nil, fmt.Errorf("market cycle failed: %w", err)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	priceMap := map[string]decimal.Decimal{}
	for symbol, entry := range snapshot.Entries {
		priceMap[symbol] = entry.Price
	}

	snapshots := []model.PortfolioSnapshot{}
	for agentID, portfolio := range result.UpdatedStates {
		if err := h.AgentRepository.UpdatePortfolio(tx, agentID, portfolio); err != nil {
			return nil, err
		}

		equity, err := portfolio.TotalValue(priceMap)
		if err != nil {
			// a held symbol may have dropped out of the snapshot; fall
			// back to cash so the cycle still commits
			log.Warnf("failed to mark agent %s to market: %v", agentID, err)
			equity = portfolio.Cash
		}
		snapshots = append(snapshots, model.PortfolioSnapshot{
			AgentID:     agentID,
			TotalEquity: equity,
			Cash:        portfolio.Cash,
			Pnl:         equity.Sub(h.InitialCapital),
		})
	}

	if err := h.TradeRepository.AddMany(tx, result.Trades); err != nil {
		return nil, err
	}
	if err := h.SnapshotRepository.AddMany(tx, snapshots); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Infow("market cycle complete",
		"agents", len(result.UpdatedStates),
		"trades", len(result.Trades),
	)

	return result, nil
}

// RunEvolution ranks the roster, terminates the bottom performers, and
// spawns mutated children of the top performers, all in one transaction.
func (h arenaServiceHandler) RunEvolution(ctx context.Context) (*domain.EvolutionResult, error) {
	log := logger.FromContext(ctx)

	activeStatus := domain.AgentStatus_Active
	roster, err := h.AgentRepository.List(repository.AgentListFilter{Status: &activeStatus})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	result := h.Engine.RunEvolution(roster)
	if result.IsEmpty() {
		log.Infow("population below evolution minimum, skipping", "active", len(roster))
		return &result, nil
	}

	rosterByID := map[uuid.UUID]domain.Agent{}
	for _, agent := range roster {
		rosterByID[agent.ID] = agent
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, id := range result.TerminatedIDs {
		if err := h.AgentRepository.UpdateStatus(tx, id, domain.AgentStatus_Terminated); err != nil {
			return nil, err
		}
	}

	for _, child := range result.Spawned {
		parent := rosterByID[child.ParentID]
		parentID := child.ParentID
		_, err := h.AgentRepository.Add(tx, domain.Agent{
			Name:       h.childName(parent.Name, child.Generation),
			DNA:        child.DNA,
			Status:     domain.AgentStatus_Active,
			Generation: child.Generation,
			Portfolio:  domain.NewPortfolio(h.InitialCapital),
			ParentID:   &parentID,
		})
		if err != nil {
			return nil, err
		}
	}

	generation := int32(0)
	if len(result.Spawned) > 0 {
		generation = result.Spawned[0].Generation
	}
	_, err = h.EvolutionRunRepository.Add(tx, model.EvolutionRun{
		Generation:    generation,
		NumTerminated: int32(len(result.TerminatedIDs)),
		NumSpawned:    int32(len(result.Spawned)),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Infow("evolution complete",
		"generation", generation,
		"terminated", len(result.TerminatedIDs),
		"spawned", len(result.Spawned),
	)

	return &result, nil
}

func (h arenaServiceHandler) childName(parentName string, generation int32) string {
	stem := parentName
	if i := strings.Index(parentName, "_"); i > 0 {
		stem = parentName[:i]
	}
	return fmt.Sprintf("%s_Gen%d_%d", stem, generation, 100+h.Rand.Intn(900))
}
