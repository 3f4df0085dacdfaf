package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"agentarena/api"
	"agentarena/internal/engine"
	"agentarena/internal/repository"
	"agentarena/internal/service"
	"agentarena/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	agentRepository := repository.NewAgentRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)
	snapshotRepository := repository.NewPortfolioSnapshotRepository(dbConn)
	evolutionRunRepository := repository.NewEvolutionRunRepository(dbConn)
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	historicalPriceRepository := repository.NewHistoricalPriceRepository()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(engine.DefaultConfig(), rng)

	marketDataService := service.NewMarketDataService(alpacaRepository, historicalPriceRepository)
	arenaService := service.NewArenaService(
		dbConn,
		eng,
		agentRepository,
		tradeRepository,
		snapshotRepository,
		evolutionRunRepository,
		marketDataService,
		rng,
	)
	seedService := service.NewSeedService(dbConn, agentRepository, gptRepository, rng)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		ArenaService:              arenaService,
		SeedService:               seedService,
		AgentRepository:           agentRepository,
		TradeRepository:           tradeRepository,
		HistoricalPriceRepository: historicalPriceRepository,
		AdminJwtSecret:            secrets.AdminJwtSecret,
	}

	return apiHandler, nil
}
