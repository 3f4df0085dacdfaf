package repository

import (
	"database/sql"
	"fmt"
	"time"

	"agentarena/internal/db/models/postgres/public/model"
	"agentarena/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type EvolutionRunRepository interface {
	Add(tx *sql.Tx, run model.EvolutionRun) (*model.EvolutionRun, error)
}

type evolutionRunRepositoryHandler struct {
	Db *sql.DB
}

func NewEvolutionRunRepository(db *sql.DB) EvolutionRunRepository {
	return evolutionRunRepositoryHandler{Db: db}
}

func (h evolutionRunRepositoryHandler) Add(tx *sql.Tx, run model.EvolutionRun) (*model.EvolutionRun, error) {
	if run.EvolutionRunID == uuid.Nil {
		run.EvolutionRunID = uuid.New()
	}
	run.CreatedAt = time.Now().UTC()

	query := table.EvolutionRun.
		INSERT(table.EvolutionRun.AllColumns).
		MODEL(run).
		RETURNING(table.EvolutionRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.EvolutionRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert evolution run: %w", err)
	}

	return &out, nil
}
