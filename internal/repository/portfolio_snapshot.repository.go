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

type PortfolioSnapshotRepository interface {
	AddMany(tx *sql.Tx, snapshots []model.PortfolioSnapshot) error
}

type portfolioSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioSnapshotRepository(db *sql.DB) PortfolioSnapshotRepository {
	return portfolioSnapshotRepositoryHandler{Db: db}
}

func (h portfolioSnapshotRepositoryHandler) AddMany(tx *sql.Tx, snapshots []model.PortfolioSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	for i := range snapshots {
		if snapshots[i].PortfolioSnapshotID == uuid.Nil {
			snapshots[i].PortfolioSnapshotID = uuid.New()
		}
		snapshots[i].CreatedAt = time.Now().UTC()
	}

	query := table.PortfolioSnapshot.
		INSERT(table.PortfolioSnapshot.AllColumns).
		MODELS(snapshots)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert %d portfolio snapshots: %w", len(snapshots), err)
	}

	return nil
}
