package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"agentarena/internal/db/models/postgres/public/model"
	"agentarena/internal/db/models/postgres/public/table"
	"agentarena/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AgentRepository interface {
	Add(tx *sql.Tx, agent domain.Agent) (*domain.Agent, error)
	Get(id uuid.UUID) (*domain.Agent, error)
	List(filter AgentListFilter) ([]domain.Agent, error)
	UpdatePortfolio(tx *sql.Tx, id uuid.UUID, portfolio *domain.Portfolio) error
	UpdateStatus(tx *sql.Tx, id uuid.UUID, status domain.AgentStatus) error
}

type AgentListFilter struct {
	Status *domain.AgentStatus
}

type agentRepositoryHandler struct {
	Db *sql.DB
}

func NewAgentRepository(db *sql.DB) AgentRepository {
	return agentRepositoryHandler{Db: db}
}

func (h agentRepositoryHandler) Add(tx *sql.Tx, agent domain.Agent) (*domain.Agent, error) {
	if agent.ID == uuid.Nil {
		agent.ID = uuid.New()
	}
	m, err := agentToModel(agent)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	query := table.Agent.
		INSERT(table.Agent.AllColumns).
		MODEL(m).
		RETURNING(table.Agent.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Agent{}
	err = query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	return agentFromModel(out)
}

func (h agentRepositoryHandler) Get(id uuid.UUID) (*domain.Agent, error) {
	query := table.Agent.
		SELECT(table.Agent.AllColumns).
		WHERE(table.Agent.AgentID.EQ(postgres.UUID(id)))

	out := model.Agent{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}

	return agentFromModel(out)
}

func (h agentRepositoryHandler) List(filter AgentListFilter) ([]domain.Agent, error) {
	query := table.Agent.
		SELECT(table.Agent.AllColumns).
		ORDER_BY(table.Agent.CreatedAt.ASC())

	if filter.Status != nil {
		query = query.WHERE(table.Agent.Status.EQ(postgres.String(string(*filter.Status))))
	}

	models := []model.Agent{}
	err := query.Query(h.Db, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	out := []domain.Agent{}
	for _, m := range models {
		agent, err := agentFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *agent)
	}

	return out, nil
}

func (h agentRepositoryHandler) UpdatePortfolio(tx *sql.Tx, id uuid.UUID, portfolio *domain.Portfolio) error {
	positions, err := marshalPositions(portfolio)
	if err != nil {
		return err
	}

	query := table.Agent.
		UPDATE(table.Agent.Cash, table.Agent.Positions, table.Agent.ModifiedAt).
		MODEL(model.Agent{
			Cash:       portfolio.Cash,
			Positions:  positions,
			ModifiedAt: time.Now().UTC(),
		}).
		WHERE(table.Agent.AgentID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err = query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update agent %s portfolio: %w", id, err)
	}

	return nil
}

func (h agentRepositoryHandler) UpdateStatus(tx *sql.Tx, id uuid.UUID, status domain.AgentStatus) error {
	query := table.Agent.
		UPDATE(table.Agent.Status, table.Agent.ModifiedAt).
		MODEL(model.Agent{
			Status:     model.AgentStatus(status),
			ModifiedAt: time.Now().UTC(),
		}).
		WHERE(table.Agent.AgentID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update agent %s status: %w", id, err)
	}

	return nil
}

// positions persist as structured records keyed by symbol, not as loose
// mixed-key entries
type positionJson struct {
	Quantity      int64           `json:"quantity"`
	AvgEntryPrice decimal.Decimal `json:"avg_entry_price"`
}

func marshalPositions(portfolio *domain.Portfolio) (string, error) {
	positions := map[string]positionJson{}
	for symbol, position := range portfolio.Positions {
		positions[symbol] = positionJson{
			Quantity:      position.Quantity,
			AvgEntryPrice: position.AvgEntryPrice,
		}
	}
	bytes, err := json.Marshal(positions)
	if err != nil {
		return "", fmt.Errorf("failed to marshal positions: %w", err)
	}
	return string(bytes), nil
}

func agentToModel(agent domain.Agent) (*model.Agent, error) {
	dnaBytes, err := json.Marshal(agent.DNA)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dna: %w", err)
	}
	positions, err := marshalPositions(agent.Portfolio)
	if err != nil {
		return nil, err
	}

	return &model.Agent{
		AgentID:       agent.ID,
		Name:          agent.Name,
		Dna:           string(dnaBytes),
		Status:        model.AgentStatus(agent.Status),
		Generation:    agent.Generation,
		Cash:          agent.Portfolio.Cash,
		Positions:     positions,
		ParentAgentID: agent.ParentID,
	}, nil
}

func agentFromModel(m model.Agent) (*domain.Agent, error) {
	dna := domain.DNA{}
	if err := json.Unmarshal([]byte(m.Dna), &dna); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dna for agent %s: %w", m.AgentID, err)
	}

	positions := map[string]positionJson{}
	if m.Positions != "" {
		if err := json.Unmarshal([]byte(m.Positions), &positions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal positions for agent %s: %w", m.AgentID, err)
		}
	}

	portfolio := domain.NewPortfolio(m.Cash)
	for symbol, p := range positions {
		portfolio.Positions[symbol] = &domain.Position{
			Symbol:        symbol,
			Quantity:      p.Quantity,
			AvgEntryPrice: p.AvgEntryPrice,
		}
	}

	return &domain.Agent{
		ID:         m.AgentID,
		Name:       m.Name,
		DNA:        dna.WithDefaults(),
		Status:     domain.AgentStatus(m.Status),
		Generation: m.Generation,
		Portfolio:  portfolio,
		ParentID:   m.ParentAgentID,
		CreatedAt:  m.CreatedAt,
	}, nil
}
