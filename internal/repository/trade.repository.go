package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agentarena/internal/db/models/postgres/public/model"
	"agentarena/internal/db/models/postgres/public/table"
	"agentarena/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeRepository interface {
	AddMany(tx *sql.Tx, trades []domain.TradeRecord) error
	List(filter TradeListFilter) ([]domain.TradeRecord, error)
}

type TradeListFilter struct {
	AgentID *uuid.UUID
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) AddMany(tx *sql.Tx, trades []domain.TradeRecord) error {
	if len(trades) == 0 {
		return nil
	}

	models := []model.Trade{}
	for _, t := range trades {
		models = append(models, model.Trade{
			TradeID:    uuid.New(),
			AgentID:    t.AgentID,
			Symbol:     t.Symbol,
			Side:       model.TradeSide(t.Side),
			Quantity:   t.Quantity,
			Price:      t.Price,
			ExecutedAt: t.Timestamp,
			CreatedAt:  time.Now().UTC(),
		})
	}

	query := table.Trade.
		INSERT(table.Trade.AllColumns).
		MODELS(models)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert %d trades: %w", len(trades), err)
	}

	return nil
}

func (h tradeRepositoryHandler) List(filter TradeListFilter) ([]domain.TradeRecord, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		ORDER_BY(table.Trade.ExecutedAt.ASC())

	if filter.AgentID != nil {
		query = query.WHERE(table.Trade.AgentID.EQ(postgres.UUID(*filter.AgentID)))
	}

	models := []model.Trade{}
	err := query.Query(h.Db, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	out := []domain.TradeRecord{}
	for _, m := range models {
		out = append(out, domain.TradeRecord{
			AgentID:   m.AgentID,
			Symbol:    m.Symbol,
			Side:      domain.TradeSide(m.Side),
			Quantity:  m.Quantity,
			Price:     m.Price,
			Timestamp: m.ExecutedAt,
		})
	}

	return out, nil
}
